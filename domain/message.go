// Package domain contains core concepts of the chat export.
// This file defines Message entities as they are read from a channel.
// Messages are immutable once observed by a writer.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Author is the identity behind a message. Two authors are the same
// participant when their ID match, whatever their display name.
type Author struct {
	ID            string
	Name          string
	Discriminator string
	AvatarURL     string
	IsBot         bool
}

func (a Author) FullName() string {
	if a.Discriminator == "" {
		return a.Name
	}
	return a.Name + "#" + a.Discriminator
}

// Attachment is a file uploaded alongside a message.
type Attachment struct {
	ID            string
	URL           string
	FileName      string
	FileSizeBytes int64
	ContentType   string
}

// Embed is a rich preview attached to a message.
type Embed struct {
	Title       string
	URL         string
	Description string
}

// Message represents one authored entry of a conversation.
type Message struct {
	ID              uuid.UUID // unique identifier
	ChannelID       string
	Author          Author
	Timestamp       time.Time
	EditedTimestamp *time.Time
	Content         string
	Attachments     []Attachment
	Embeds          []Embed
}

func (m Message) IsEdited() bool {
	return m.EditedTimestamp != nil
}
