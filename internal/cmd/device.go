package cmd

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Alia5/padwatch/source"
)

var errNoGamepad = errors.New("no gamepad found under /dev/input/by-id; pass --device")

// DeviceFlags select the profile and the event device a command reads from.
type DeviceFlags struct {
	Profile      string        `help:"Device profile" default:"LogitechR710" env:"PADWATCH_PROFILE"`
	Device       string        `help:"Event device path (defaults to the first joystick under /dev/input/by-id)" env:"PADWATCH_DEVICE"`
	Grab         bool          `help:"Take the device exclusively while reading" env:"PADWATCH_GRAB"`
	PollInterval time.Duration `help:"How often a blocked read checks for shutdown" default:"100ms" env:"PADWATCH_POLL_INTERVAL"`
}

// deviceSource is an opened input device.
type deviceSource interface {
	source.Source
	Close() error
}

type openFunc func(path string) (deviceSource, error)

func (f *DeviceFlags) opener(logger *slog.Logger) openFunc {
	return func(path string) (deviceSource, error) {
		dev, err := source.OpenEvdev(path,
			source.WithGrab(f.Grab),
			source.WithPollInterval(f.PollInterval),
			source.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		return dev, nil
	}
}

func (f *DeviceFlags) devicePath() (string, error) {
	return resolveDevice(f.Device, source.FindGamepads)
}

func resolveDevice(path string, find func() ([]source.Device, error)) (string, error) {
	if path != "" {
		return path, nil
	}
	devices, err := find()
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", errNoGamepad
	}
	return devices[0].Path, nil
}
