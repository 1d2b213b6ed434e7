package source

import (
	"log/slog"
	"time"
)

const defaultPollInterval = 100 * time.Millisecond

type evdevOptions struct {
	pollInterval time.Duration
	grab         bool
	logger       *slog.Logger
}

// EvdevOption configures an evdev source.
type EvdevOption func(*evdevOptions)

// WithPollInterval bounds how long a read waits before checking for
// cancellation. Non-positive values keep the default.
func WithPollInterval(d time.Duration) EvdevOption {
	return func(o *evdevOptions) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}

// WithGrab takes the device exclusively so other readers stop seeing its events.
func WithGrab(grab bool) EvdevOption {
	return func(o *evdevOptions) { o.grab = grab }
}

func WithLogger(logger *slog.Logger) EvdevOption {
	return func(o *evdevOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newEvdevOptions(opts []EvdevOption) evdevOptions {
	o := evdevOptions{
		pollInterval: defaultPollInterval,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
