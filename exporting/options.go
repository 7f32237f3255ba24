package exporting

import (
	"chat-export/domain"
	"log/slog"
	"time"
)

type options struct {
	joinThreshold time.Duration
	log           *slog.Logger
}

type Option func(*options)

func defaultOptions() options {
	return options{
		joinThreshold: domain.DefaultJoinThreshold,
		log:           slog.Default(),
	}
}

// WithJoinThreshold sets the maximum gap between two messages of one group.
// Zero only joins messages posted at the same instant. A negative value is
// logged and replaced by domain.DefaultJoinThreshold.
func WithJoinThreshold(threshold time.Duration) Option {
	return func(o *options) {
		o.joinThreshold = threshold
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
