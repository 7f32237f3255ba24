package errors

import "fmt"

var (
	ErrWriterNotOpened     = fmt.Errorf("writer has not been opened")
	ErrWriterAlreadyOpened = fmt.Errorf("writer has already been opened")
	ErrWriterClosed        = fmt.Errorf("writer has already been closed")
	ErrWriterDisposed      = fmt.Errorf("writer has been disposed")
	ErrUnsupportedFormat   = fmt.Errorf("unsupported export format")
	ErrSinkReleased        = fmt.Errorf("sink has been released")
	ErrUnknownTheme        = fmt.Errorf("unknown theme")
	ErrEmptyWords          = fmt.Errorf("no words have been found")
)
