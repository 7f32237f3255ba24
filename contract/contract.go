//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-export/domain"
	"context"
)

// MessageWriter is implemented once per output format.
// Calls are expected in order: WritePreamble, WriteMessage (any number of
// times), WritePostamble. Close must run on every exit path.
type MessageWriter interface {
	WritePreamble(ctx context.Context) error
	WriteMessage(ctx context.Context, message domain.Message) error
	WritePostamble(ctx context.Context) error
	Close() error
}

// Renderer turns a context into output text. It holds no state the writer
// depends on.
type Renderer interface {
	RenderPreamble(ctx context.Context, layout domain.LayoutContext) (string, error)
	RenderMessageGroup(ctx context.Context, group domain.GroupContext) (string, error)
	RenderPostamble(ctx context.Context, layout domain.LayoutContext) (string, error)
}

// Sink is an ordered, append-only destination.
// Release is idempotent.
type Sink interface {
	Append(ctx context.Context, text string) error
	Release() error
}

// MessageSource yields the messages of a channel in chronological order,
// one at a time. Iteration stops at the first error returned by fn.
type MessageSource interface {
	IterateMessages(ctx context.Context, channelID string, r domain.Range, fn func(domain.Message) error) error
}
