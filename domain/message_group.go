package domain

import "time"

// DefaultJoinThreshold is the maximum gap between two consecutive messages
// of the same author for them to be rendered in the same group.
const DefaultJoinThreshold = 7 * time.Minute

// MessageGroup is a run of consecutive messages sharing the same author,
// each within the join threshold of the previous one.
type MessageGroup struct {
	Author        Author
	Timestamp     time.Time
	LastTimestamp time.Time
	Messages      []Message
}

func (g MessageGroup) Len() int {
	return len(g.Messages)
}

// CanJoin reports whether candidate may extend a group ending with last.
// Timestamps are expected to be non-decreasing, this is not enforced.
func CanJoin(last, candidate Message, threshold time.Duration) bool {
	return candidate.Author.ID == last.Author.ID &&
		candidate.Timestamp.Sub(last.Timestamp) <= threshold
}

// Join folds a non-empty buffer into a MessageGroup.
// The messages are copied, the caller keeps ownership of its buffer.
func Join(messages []Message) MessageGroup {
	if len(messages) == 0 {
		panic("domain: cannot join an empty message buffer")
	}
	first, last := messages[0], messages[len(messages)-1]
	grouped := make([]Message, len(messages))
	copy(grouped, messages)
	return MessageGroup{
		Author:        first.Author,
		Timestamp:     first.Timestamp,
		LastTimestamp: last.Timestamp,
		Messages:      grouped,
	}
}
