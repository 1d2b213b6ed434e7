// Package source provides raw input events from game controllers.
//
// A Source yields batches of (type, code, value) events named after the
// Linux input-event-codes, e.g. ("EV_ABS", "ABS_HAT0X", -1).
package source

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnsupported is returned by device sources on platforms without evdev.
	ErrUnsupported = errors.New("evdev sources are only supported on linux")
	// ErrDeviceGone is returned when the device reports a hangup, e.g. after unplugging.
	ErrDeviceGone = errors.New("input device gone")
)

// Event is a single raw input notification.
type Event struct {
	Time  time.Time
	Type  string
	Code  string
	Value int32
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s %d", e.Type, e.Code, e.Value)
}

// Source yields raw events. ReadEvents blocks until a non-empty batch is
// available, ctx is done, or the source fails.
type Source interface {
	ReadEvents(ctx context.Context) ([]Event, error)
}

// Func adapts a plain function to a Source.
type Func func(ctx context.Context) ([]Event, error)

func (f Func) ReadEvents(ctx context.Context) ([]Event, error) {
	return f(ctx)
}

// SkipSync wraps src and drops EV_SYN events. Batches that contain nothing
// else are skipped entirely.
func SkipSync(src Source) Source {
	return Func(func(ctx context.Context) ([]Event, error) {
		for {
			batch, err := src.ReadEvents(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]Event, 0, len(batch))
			for _, ev := range batch {
				if ev.Type != TypeSync {
					out = append(out, ev)
				}
			}
			if len(out) > 0 {
				return out, nil
			}
		}
	})
}
