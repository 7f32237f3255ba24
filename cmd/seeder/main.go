package main

import (
	"chat-export/domain"
	"chat-export/storage"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

type Config struct {
	BadgerFilepath string        `envconfig:"BADGER_FILEPATH" required:"true"`
	ChannelID      string        `envconfig:"CHANNEL_ID" required:"true"`
	MessageCount   int           `envconfig:"SEED_MESSAGE_COUNT" default:"1000"`
	BatchSize      int           `envconfig:"SEED_BATCH_SIZE" default:"500"`
	MaxGap         time.Duration `envconfig:"SEED_MAX_GAP" default:"15m"`
	Seed           uint64        `envconfig:"SEED" default:"42"`
}

func (c Config) validate() error {
	switch {
	case c.MessageCount < 0:
		return fmt.Errorf("SEED_MESSAGE_COUNT must not be negative, got %d", c.MessageCount)
	case c.BatchSize <= 0:
		return fmt.Errorf("SEED_BATCH_SIZE must be positive, got %d", c.BatchSize)
	case c.MaxGap <= 0:
		return fmt.Errorf("SEED_MAX_GAP must be positive, got %s", c.MaxGap)
	}
	return nil
}

var authors = []domain.Author{
	{ID: "1001", Name: "Alice", Discriminator: "0001"},
	{ID: "1002", Name: "Bob", Discriminator: "0002"},
	{ID: "1003", Name: "Clara", Discriminator: "0003"},
	{ID: "2001", Name: "Archivist", IsBot: true},
}

var contents = []string{
	"Hello everyone!",
	"Did anyone look at the **release notes**?",
	"I pushed a fix, see `exporter/main.go`",
	"> quoting the previous message\nand answering below",
	"lunch?",
	"https://example.com/docs is the place to start",
	"_brb_",
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := config.validate(); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString("INFO")

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := storage.NewMessageRepository(db, logger)
	rng := rand.New(rand.NewPCG(config.Seed, config.Seed))
	at := time.Now().UTC().Add(-time.Duration(config.MessageCount) * config.MaxGap / 2)
	author := authors[0]

	for start := 0; start < config.MessageCount; start += config.BatchSize {
		size := min(config.BatchSize, config.MessageCount-start)
		batch := lo.Times(size, func(int) domain.Message {
			// Authors tend to post in bursts
			if rng.IntN(3) == 0 {
				author = authors[rng.IntN(len(authors))]
			}
			at = at.Add(time.Duration(rng.Int64N(int64(config.MaxGap))))
			return newMessage(rng, config.ChannelID, author, at)
		})
		if err := repository.StoreMessages(batch); err != nil {
			log.Fatalf("Failed to store messages: %v", err)
		}
	}
	fmt.Printf("Seeded %d messages into channel %s\n", config.MessageCount, config.ChannelID)
}

func newMessage(rng *rand.Rand, channelID string, author domain.Author, at time.Time) domain.Message {
	m := domain.Message{
		ID:        uuid.New(),
		ChannelID: channelID,
		Author:    author,
		Timestamp: at,
		Content:   contents[rng.IntN(len(contents))],
	}
	switch rng.IntN(20) {
	case 0:
		m.Attachments = []domain.Attachment{{
			ID:            uuid.NewString(),
			URL:           "https://cdn.example.com/attachments/screenshot.png",
			FileName:      "screenshot.png",
			FileSizeBytes: rng.Int64N(4 << 20),
		}}
	case 1:
		m.Embeds = []domain.Embed{{Title: "Example Domain", URL: "https://example.com", Description: "This domain is for use in examples."}}
	case 2:
		m.EditedTimestamp = lo.ToPtr(at.Add(time.Minute))
	}
	return m
}
