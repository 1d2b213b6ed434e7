//go:build linux

package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	evdev "github.com/gvalkov/golang-evdev"
	"golang.org/x/sys/unix"
)

// Evdev reads events from a /dev/input/eventN character device.
type Evdev struct {
	dev  *evdev.InputDevice
	opts evdevOptions
}

// OpenEvdev opens the event device at path.
func OpenEvdev(path string, opts ...EvdevOption) (*Evdev, error) {
	o := newEvdevOptions(opts)

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if o.grab {
		if err := dev.Grab(); err != nil {
			_ = dev.File.Close()
			return nil, fmt.Errorf("grab %s: %w", path, err)
		}
	}

	o.logger.Info("Opened input device", "path", dev.Fn, "name", dev.Name,
		"vid", fmt.Sprintf("%04x", dev.Vendor), "pid", fmt.Sprintf("%04x", dev.Product))
	return &Evdev{dev: dev, opts: o}, nil
}

// Name returns the device name reported by the kernel.
func (e *Evdev) Name() string { return e.dev.Name }

// Path returns the device node path.
func (e *Evdev) Path() string { return e.dev.Fn }

// ReadEvents waits for the device to become readable, polling at most one
// poll interval at a time so ctx cancellation is observed promptly.
func (e *Evdev) ReadEvents(ctx context.Context) ([]Event, error) {
	fd := int32(e.dev.File.Fd())
	timeout := int(e.opts.pollInterval / time.Millisecond)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fds := []unix.PollFd{{Fd: fd, Events: unix.POLLIN}}
		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return nil, fmt.Errorf("poll %s: %w", e.dev.Fn, err)
		}
		if n == 0 {
			continue
		}
		if fds[0].Revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
			return nil, fmt.Errorf("%s: %w", e.dev.Fn, ErrDeviceGone)
		}

		raw, err := e.dev.Read()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.dev.Fn, err)
		}
		if len(raw) == 0 {
			continue
		}

		batch := make([]Event, 0, len(raw))
		for _, ev := range raw {
			batch = append(batch, Event{
				Time:  time.Unix(0, ev.Time.Nano()),
				Type:  TypeName(ev.Type),
				Code:  CodeName(ev.Type, ev.Code),
				Value: ev.Value,
			})
		}
		return batch, nil
	}
}

// Close releases a grab, if any, and closes the device.
func (e *Evdev) Close() error {
	if e.opts.grab {
		_ = e.dev.Release()
	}
	return e.dev.File.Close()
}
