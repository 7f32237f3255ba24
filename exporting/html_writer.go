// Package exporting drives the rendering of a conversation into a document.
// Messages are streamed: at most one open group is buffered at any time.
package exporting

import (
	"chat-export/contract"
	"chat-export/domain"
	"chat-export/errors"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type writerState int

const (
	unopened writerState = iota
	opened
	closed
	disposed
)

func (s writerState) String() string {
	switch s {
	case unopened:
		return "unopened"
	case opened:
		return "opened"
	case closed:
		return "closed"
	default:
		return "disposed"
	}
}

// Stats reports what a writer has produced so far.
type Stats struct {
	MessageCount int64
	GroupCount   int64
}

// HTMLMessageWriter groups consecutive messages of the same author and hands
// each completed group to the renderer. It is not safe for concurrent use.
type HTMLMessageWriter struct {
	sink          contract.Sink
	renderer      contract.Renderer
	request       domain.ExportRequest
	themeName     string
	joinThreshold time.Duration
	log           *slog.Logger

	state        writerState
	buffer       []domain.Message
	messageCount int64
	groupCount   int64
}

func NewHTMLMessageWriter(sink contract.Sink, renderer contract.Renderer, request domain.ExportRequest, opts ...Option) *HTMLMessageWriter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.joinThreshold < 0 {
		o.log.Warn("Negative join threshold ignored", "threshold", o.joinThreshold, "default", domain.DefaultJoinThreshold)
		o.joinThreshold = domain.DefaultJoinThreshold
	}
	return &HTMLMessageWriter{
		sink:          sink,
		renderer:      renderer,
		request:       request,
		themeName:     request.Format.ThemeName(),
		joinThreshold: o.joinThreshold,
		log:           o.log,
	}
}

// WritePreamble renders the document header with a message count of zero.
func (w *HTMLMessageWriter) WritePreamble(ctx context.Context) error {
	if err := w.expect("write preamble", unopened); err != nil {
		return err
	}
	text, err := w.renderer.RenderPreamble(ctx, w.layoutContext())
	if err != nil {
		return err
	}
	if err := w.appendLine(ctx, text); err != nil {
		return err
	}
	w.state = opened
	w.log.Debug("Preamble written", "channel", w.request.Channel.ID, "theme", w.themeName)
	return nil
}

// WriteMessage buffers the message, flushing the current group first when the
// message cannot extend it.
func (w *HTMLMessageWriter) WriteMessage(ctx context.Context, message domain.Message) error {
	if err := w.expect("write message", opened); err != nil {
		return err
	}
	if len(w.buffer) > 0 && !domain.CanJoin(w.buffer[len(w.buffer)-1], message, w.joinThreshold) {
		if err := w.flush(ctx); err != nil {
			return err
		}
	}
	w.buffer = append(w.buffer, message)
	w.messageCount++
	return nil
}

// WritePostamble flushes the last group, even a partial one, then renders the
// document footer with the final message count.
func (w *HTMLMessageWriter) WritePostamble(ctx context.Context) error {
	if err := w.expect("write postamble", opened); err != nil {
		return err
	}
	if len(w.buffer) > 0 {
		if err := w.flush(ctx); err != nil {
			return err
		}
	}
	text, err := w.renderer.RenderPostamble(ctx, w.layoutContext())
	if err != nil {
		return err
	}
	if err := w.appendLine(ctx, text); err != nil {
		return err
	}
	w.state = closed
	w.log.Debug("Postamble written",
		"channel", w.request.Channel.ID,
		"messages", w.messageCount,
		"groups", w.groupCount)
	return nil
}

// Close releases the sink. It must be called exactly once, whether the
// export succeeded or not.
func (w *HTMLMessageWriter) Close() error {
	if w.state == disposed {
		return w.misuse("close")
	}
	if w.state != closed {
		w.log.Warn("Writer disposed before postamble",
			"state", w.state.String(),
			"buffered", len(w.buffer))
	}
	w.state = disposed
	w.buffer = nil
	return w.sink.Release()
}

func (w *HTMLMessageWriter) Stats() Stats {
	return Stats{MessageCount: w.messageCount, GroupCount: w.groupCount}
}

// flush renders the buffered group. The buffer is only cleared once the
// rendered text reached the sink.
func (w *HTMLMessageWriter) flush(ctx context.Context) error {
	group := domain.Join(w.buffer)
	text, err := w.renderer.RenderMessageGroup(ctx, domain.GroupContext{Request: w.request, Group: group})
	if err != nil {
		return err
	}
	if err := w.appendLine(ctx, text); err != nil {
		return err
	}
	w.log.Debug("Message group flushed",
		"author", group.Author.ID,
		"size", group.Len(),
		"from", group.Timestamp,
		"to", group.LastTimestamp)
	w.buffer = w.buffer[:0]
	w.groupCount++
	return nil
}

func (w *HTMLMessageWriter) appendLine(ctx context.Context, text string) error {
	return w.sink.Append(ctx, text+"\n")
}

func (w *HTMLMessageWriter) layoutContext() domain.LayoutContext {
	return domain.LayoutContext{
		Request:      w.request,
		ThemeName:    w.themeName,
		MessageCount: w.messageCount,
	}
}

func (w *HTMLMessageWriter) expect(operation string, state writerState) error {
	if w.state == state {
		return nil
	}
	return w.misuse(operation)
}

func (w *HTMLMessageWriter) misuse(operation string) error {
	var err error
	switch w.state {
	case unopened:
		err = errors.ErrWriterNotOpened
	case opened:
		err = errors.ErrWriterAlreadyOpened
	case closed:
		err = errors.ErrWriterClosed
	default:
		err = errors.ErrWriterDisposed
	}
	w.log.Error("Writer protocol misuse", "operation", operation, "state", w.state.String())
	return fmt.Errorf("%s: %w", operation, err)
}
