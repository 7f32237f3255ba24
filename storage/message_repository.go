package storage

import (
	"chat-export/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/vmihailenco/msgpack/v5"
)

const keyPrefix = "msg"

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	StoreMessages(messages []domain.Message) error
	CountMessages(channelID string) (int, error)
	IterateMessages(ctx context.Context, channelID string, r domain.Range, fn func(domain.Message) error) error
}

var _ IMessageRepository = MessageRepository{}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

type diskAuthor struct {
	ID            string `msgpack:"id"`
	Name          string `msgpack:"name"`
	Discriminator string `msgpack:"discriminator,omitempty"`
	AvatarURL     string `msgpack:"avatar_url,omitempty"`
	IsBot         bool   `msgpack:"is_bot,omitempty"`
}

type diskAttachment struct {
	ID            string `msgpack:"id"`
	URL           string `msgpack:"url"`
	FileName      string `msgpack:"file_name"`
	FileSizeBytes int64  `msgpack:"file_size_bytes"`
	ContentType   string `msgpack:"content_type,omitempty"`
}

type diskEmbed struct {
	Title       string `msgpack:"title"`
	URL         string `msgpack:"url,omitempty"`
	Description string `msgpack:"description,omitempty"`
}

// DiskMessage is the stored form of a message. Times are unix nanoseconds.
type DiskMessage struct {
	ID          string           `msgpack:"id"`
	ChannelID   string           `msgpack:"channel_id"`
	Author      diskAuthor       `msgpack:"author"`
	At          int64            `msgpack:"at"`
	EditedAt    *int64           `msgpack:"edited_at,omitempty"`
	Content     string           `msgpack:"content"`
	Attachments []diskAttachment `msgpack:"attachments,omitempty"`
	Embeds      []diskEmbed      `msgpack:"embeds,omitempty"`
}

// messageKey is formatted as "msg:{len(channel)}:{channel}:{timestamp}:{uuid}":
//  1. the channel length keeps "a" from prefixing "a:b".
//  2. the timestamp is shifted to unsigned and padded to 20 digits so that
//     lexicographical order is chronological, before 1970 included.
//  3. the UUID separates two messages posted at the same nanosecond.
func messageKey(m domain.Message) []byte {
	return fmt.Appendf(timestampKey(m.ChannelID, m.Timestamp), ":%s", m.ID)
}

func channelPrefix(channelID string) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s:", keyPrefix, len(channelID), channelID))
}

func timestampKey(channelID string, t time.Time) []byte {
	return fmt.Appendf(channelPrefix(channelID), "%020d", sortableNano(t))
}

// sortableNano flips the sign bit, mapping int64 order onto uint64 order.
func sortableNano(t time.Time) uint64 {
	return uint64(t.UnixNano()) ^ (1 << 63)
}

func (m MessageRepository) StoreMessage(message domain.Message) error {
	return m.StoreMessages([]domain.Message{message})
}

// StoreMessages persists all the messages in a single transaction.
func (m MessageRepository) StoreMessages(messages []domain.Message) error {
	return m.db.Update(func(txn *badger.Txn) error {
		for _, message := range messages {
			bytes, err := msgpack.Marshal(fromMessage(message))
			if err != nil {
				return fmt.Errorf("failed to encode message %s: %w", message.ID, err)
			}
			if err := txn.Set(messageKey(message), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (m MessageRepository) CountMessages(channelID string) (int, error) {
	count := 0
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := channelPrefix(channelID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// IterateMessages walks the channel in chronological order and hands the
// messages within r to fn one at a time. Nothing is accumulated: a large
// channel costs one decoded message at a time.
func (m MessageRepository) IterateMessages(ctx context.Context, channelID string, r domain.Range, fn func(domain.Message) error) error {
	return m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchSize = 50
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := channelPrefix(channelID)
		seekKey := prefix
		if r.After != nil {
			// Keys at exactly After are skipped by Range.Contains below
			seekKey = timestampKey(channelID, *r.After)
		}

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var disk DiskMessage
			err := it.Item().Value(func(value []byte) error {
				return msgpack.Unmarshal(value, &disk)
			})
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", it.Item().Key(), err)
			}
			if disk.ChannelID != channelID {
				m.log.Warn("Skipping message stored under another channel",
					"key", string(it.Item().Key()), "channel", disk.ChannelID)
				continue
			}
			message, err := toMessage(disk)
			if err != nil {
				return err
			}
			if r.Before != nil && !message.Timestamp.Before(*r.Before) {
				m.log.Debug("Upper bound reached", "channel", channelID, "before", *r.Before)
				return nil
			}
			if !r.Contains(message.Timestamp) {
				continue
			}
			if err := fn(message); err != nil {
				return err
			}
		}
		return nil
	})
}

func fromMessage(message domain.Message) DiskMessage {
	var editedAt *int64
	if message.EditedTimestamp != nil {
		editedAt = lo.ToPtr(message.EditedTimestamp.UnixNano())
	}
	return DiskMessage{
		ID:          message.ID.String(),
		ChannelID:   message.ChannelID,
		Author:      diskAuthor(message.Author),
		At:          message.Timestamp.UnixNano(),
		EditedAt:    editedAt,
		Content:     message.Content,
		Attachments: convert(message.Attachments, func(a domain.Attachment) diskAttachment { return diskAttachment(a) }),
		Embeds:      convert(message.Embeds, func(e domain.Embed) diskEmbed { return diskEmbed(e) }),
	}
}

func toMessage(disk DiskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Message{}, err
	}
	var edited *time.Time
	if disk.EditedAt != nil {
		edited = lo.ToPtr(time.Unix(0, *disk.EditedAt).UTC())
	}
	return domain.Message{
		ID:              parsedID,
		ChannelID:       disk.ChannelID,
		Author:          domain.Author(disk.Author),
		Timestamp:       time.Unix(0, disk.At).UTC(),
		EditedTimestamp: edited,
		Content:         disk.Content,
		Attachments:     convert(disk.Attachments, func(a diskAttachment) domain.Attachment { return domain.Attachment(a) }),
		Embeds:          convert(disk.Embeds, func(e diskEmbed) domain.Embed { return domain.Embed(e) }),
	}, nil
}

// convert keeps nil slices nil so that a stored message reads back equal.
func convert[T, R any](items []T, fn func(T) R) []R {
	if len(items) == 0 {
		return nil
	}
	return lo.Map(items, func(item T, _ int) R { return fn(item) })
}
