package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var origin = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func message(authorID string, minutes float64) Message {
	return Message{
		ID:        uuid.New(),
		Author:    Author{ID: authorID, Name: authorID},
		Timestamp: origin.Add(time.Duration(minutes * float64(time.Minute))),
		Content:   "hello",
	}
}

func TestCanJoin(t *testing.T) {
	tests := []struct {
		description string
		last        Message
		candidate   Message
		want        bool
	}{
		{"Should join same author within threshold", message("alice", 0), message("alice", 3), true},
		{"Should join same author at the exact threshold", message("alice", 0), message("alice", 7), true},
		{"Should join same author with identical timestamps", message("alice", 2), message("alice", 2), true},
		{"Should not join same author past threshold", message("alice", 0), message("alice", 7.01), false},
		{"Should not join another author", message("alice", 0), message("bob", 1), false},
		{"Should not join another author with identical timestamps", message("alice", 0), message("bob", 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, CanJoin(tt.last, tt.candidate, DefaultJoinThreshold))
		})
	}
}

func TestCanJoin_ComparesAuthorIdentityOnly(t *testing.T) {
	last := message("alice", 0)
	renamed := message("alice", 1)
	renamed.Author.Name = "Alice (away)"

	require.True(t, CanJoin(last, renamed, DefaultJoinThreshold))
}

func TestCanJoin_UsesGivenThreshold(t *testing.T) {
	req := require.New(t)
	last, candidate := message("alice", 0), message("alice", 2)

	req.False(CanJoin(last, candidate, time.Minute))
	req.True(CanJoin(last, candidate, 2*time.Minute))
}

func TestJoin(t *testing.T) {
	req := require.New(t)
	buffer := []Message{message("alice", 0), message("alice", 1), message("alice", 5)}

	group := Join(buffer)

	req.Equal(buffer[0].Author, group.Author)
	req.Equal(buffer[0].Timestamp, group.Timestamp)
	req.Equal(buffer[2].Timestamp, group.LastTimestamp)
	req.Equal(buffer, group.Messages)
	req.Equal(3, group.Len())
}

func TestJoin_DoesNotAliasBuffer(t *testing.T) {
	req := require.New(t)
	buffer := []Message{message("alice", 0), message("alice", 1)}

	group := Join(buffer)
	buffer[0] = message("bob", 9)

	req.Equal("alice", group.Messages[0].Author.ID)
}

func TestJoin_SingleMessage(t *testing.T) {
	req := require.New(t)
	m := message("alice", 4)

	group := Join([]Message{m})

	req.Equal(m.Timestamp, group.Timestamp)
	req.Equal(m.Timestamp, group.LastTimestamp)
	req.Len(group.Messages, 1)
}

func TestJoin_PanicsOnEmptyBuffer(t *testing.T) {
	require.Panics(t, func() { Join(nil) })
}
