package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/padwatch/controller"
	"github.com/Alia5/padwatch/internal/log"
	"github.com/Alia5/padwatch/profile"
	"github.com/Alia5/padwatch/source"
)

// Debug prints the raw events of the device, optionally restricted to the
// codes of some controls.
type Debug struct {
	Input       DeviceFlags `embed:""`
	Filter      []string    `help:"Only print events of these controls" env:"PADWATCH_FILTER"`
	IncludeSync bool        `help:"Also print EV_SYN events" env:"PADWATCH_INCLUDE_SYNC"`
}

// Run is called by Kong when the debug command is executed.
func (d *Debug) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := d.Input.devicePath()
	if err != nil {
		return err
	}
	return d.debug(ctx, logger, events, path, d.Input.opener(logger))
}

func (d *Debug) debug(ctx context.Context, logger *slog.Logger, events log.EventLogger, path string, open openFunc) error {
	c, err := profile.New(d.Input.Profile, controller.WithLogger(logger))
	if err != nil {
		return err
	}
	if len(d.Filter) > 0 {
		if _, err := c.ResolveCodes(d.Filter...); err != nil {
			return err
		}
	}

	src, err := open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	var s source.Source = src
	if !d.IncludeSync {
		s = source.SkipSync(src)
	}
	return c.Debug(ctx, s, events, d.Filter...)
}
