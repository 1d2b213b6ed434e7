package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/controller"
	"github.com/Alia5/padwatch/profile"
	"github.com/Alia5/padwatch/source"
)

// Monitor logs every input of the selected controls until interrupted.
type Monitor struct {
	Input          DeviceFlags   `embed:""`
	Control        []string      `help:"Only report these controls (default: all)" env:"PADWATCH_CONTROL"`
	Reconnect      bool          `help:"Reopen the device when reading fails" env:"PADWATCH_RECONNECT"`
	ReconnectDelay time.Duration `help:"Delay between reconnect attempts" default:"2s" env:"PADWATCH_RECONNECT_DELAY"`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := m.Input.devicePath()
	if err != nil {
		return err
	}
	return m.monitor(ctx, logger, path, m.Input.opener(logger))
}

func (m *Monitor) monitor(ctx context.Context, logger *slog.Logger, path string, open openFunc) error {
	c, err := profile.New(m.Input.Profile, controller.WithLogger(logger))
	if err != nil {
		return err
	}

	names := m.Control
	if len(names) == 0 {
		names = c.Names()
	}
	for _, name := range names {
		if err := c.RegisterCallback(name, logInput(logger)); err != nil {
			return err
		}
	}
	logger.Info("Monitoring", "profile", c.Name(), "device", path, "controls", names)

	for {
		err := readDevice(ctx, c, path, open)
		if err == nil || ctx.Err() != nil {
			return nil
		}
		if !m.Reconnect {
			return err
		}
		logger.Warn("Input device failed, reconnecting", "device", path, "delay", m.ReconnectDelay, "error", err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.ReconnectDelay):
		}
	}
}

func readDevice(ctx context.Context, c *controller.Controller, path string, open openFunc) error {
	src, err := open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	return c.Run(ctx, source.SkipSync(src))
}

func logInput(logger *slog.Logger) control.Callback {
	return func(ctx context.Context, in control.Input) {
		attrs := []any{"control", in.Control, "code", in.Code, "value", in.Value}
		if in.HasAxis() {
			attrs = append(attrs, "axis", in.Axis.String())
		}
		logger.InfoContext(ctx, "Input", attrs...)
	}
}
