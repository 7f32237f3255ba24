// Package sink holds the destinations receiving rendered documents.
package sink

import (
	"bufio"
	"chat-export/errors"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const defaultBufferSize = 64 * 1024

// StreamSink appends text to an underlying writer, in call order. It closes
// the writer on release when the writer is an io.Closer.
type StreamSink struct {
	w        *bufio.Writer
	closer   io.Closer
	released bool

	once       sync.Once
	releaseErr error
}

func NewStreamSink(w io.Writer) *StreamSink {
	s := &StreamSink{w: bufio.NewWriterSize(w, defaultBufferSize)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// CreateFileSink creates (or truncates) the file at path, creating missing
// parent directories.
func CreateFileSink(path string) (*StreamSink, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return NewStreamSink(f), nil
}

func (s *StreamSink) Append(ctx context.Context, text string) error {
	if s.released {
		return errors.ErrSinkReleased
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.w.WriteString(text)
	return err
}

// Release flushes pending bytes and closes the writer. Later calls return the
// result of the first one.
func (s *StreamSink) Release() error {
	s.once.Do(func() {
		s.released = true
		flushErr := s.w.Flush()
		var closeErr error
		if s.closer != nil {
			closeErr = s.closer.Close()
		}
		switch {
		case flushErr != nil:
			s.releaseErr = fmt.Errorf("failed to flush sink: %w", flushErr)
		case closeErr != nil:
			s.releaseErr = fmt.Errorf("failed to close sink: %w", closeErr)
		}
	})
	return s.releaseErr
}
