package controller

import (
	"context"
	"fmt"

	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/internal/log"
	"github.com/Alia5/padwatch/source"
)

// EventSink receives raw events from the debug loop.
type EventSink interface {
	LogEvent(ev source.Event)
}

// Dispatch routes one batch of raw events. Events with unmapped codes and
// events for controls without callbacks are dropped. Callbacks run on the
// calling goroutine in registration order, one event at a time.
func (c *Controller) Dispatch(ctx context.Context, batch []source.Event) {
	for _, ev := range batch {
		r, ok := c.routes[ev.Code]
		if !ok {
			c.logger.Log(ctx, log.LevelTrace, "Unmapped event", "type", ev.Type, "code", ev.Code, "value", ev.Value)
			continue
		}
		callbacks := c.controls[r.control].Callbacks()
		if len(callbacks) == 0 {
			continue
		}

		in := control.Input{
			Control: r.control,
			Code:    ev.Code,
			Value:   ev.Value,
			Axis:    r.axis,
			Time:    ev.Time,
		}
		for _, cb := range callbacks {
			cb(ctx, in)
		}
	}
}

// Run polls src and dispatches every batch until ctx is done, which returns
// nil, or src fails, which returns the wrapped error. There is no retry.
func (c *Controller) Run(ctx context.Context, src source.Source) error {
	c.logger.Info("Dispatch loop started", "controls", len(c.order))
	defer c.logger.Info("Dispatch loop stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}
		batch, err := src.ReadEvents(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read events: %w", err)
		}
		c.Dispatch(ctx, batch)
	}
}

// Debug polls src like Run but hands every raw event to sink instead of
// invoking callbacks. With filter names, only events whose code belongs to
// one of those controls are emitted. sink is required.
func (c *Controller) Debug(ctx context.Context, src source.Source, sink EventSink, filter ...string) error {
	if sink == nil {
		return ErrNilSink
	}
	var allowed map[string]struct{}
	if len(filter) > 0 {
		codes, err := c.ResolveCodes(filter...)
		if err != nil {
			return err
		}
		allowed = make(map[string]struct{}, len(codes))
		for _, code := range codes {
			allowed[code] = struct{}{}
		}
	}

	c.logger.Info("Debug loop started", "filter", filter)
	defer c.logger.Info("Debug loop stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}
		batch, err := src.ReadEvents(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read events: %w", err)
		}
		for _, ev := range batch {
			if allowed != nil {
				if _, ok := allowed[ev.Code]; !ok {
					continue
				}
			}
			sink.LogEvent(ev)
		}
	}
}
