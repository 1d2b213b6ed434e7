//go:build !linux

package source

import "context"

// Evdev is unavailable on this platform.
type Evdev struct{}

func OpenEvdev(path string, opts ...EvdevOption) (*Evdev, error) {
	return nil, ErrUnsupported
}

func (e *Evdev) Name() string { return "" }
func (e *Evdev) Path() string { return "" }

func (e *Evdev) ReadEvents(ctx context.Context) ([]Event, error) {
	return nil, ErrUnsupported
}

func (e *Evdev) Close() error { return nil }
