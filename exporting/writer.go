package exporting

import (
	"chat-export/contract"
	"chat-export/domain"
	"chat-export/errors"
	"fmt"
)

// NewMessageWriter returns the writer implementing the requested format.
func NewMessageWriter(sink contract.Sink, renderer contract.Renderer, request domain.ExportRequest, opts ...Option) (contract.MessageWriter, error) {
	switch {
	case request.Format.IsHTML():
		return NewHTMLMessageWriter(sink, renderer, request, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, request.Format)
	}
}
