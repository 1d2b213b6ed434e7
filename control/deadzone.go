package control

import "fmt"

// Deadzone is a range of raw values that a consumer may treat as no input.
//
// Deadzones are recorded on the descriptor only. The dispatcher delivers raw
// values unfiltered; callbacks that want suppression check Contains.
type Deadzone interface {
	Contains(in Input) bool
}

// StickDeadzone bounds both axes of a thumbstick, inclusive.
type StickDeadzone struct {
	XMin, XMax int32
	YMin, YMax int32
}

func (s StickDeadzone) Contains(in Input) bool {
	switch in.Axis {
	case AxisX:
		return in.Value >= s.XMin && in.Value <= s.XMax
	case AxisY:
		return in.Value >= s.YMin && in.Value <= s.YMax
	default:
		return false
	}
}

// TriggerDeadzone bounds a single trigger axis, inclusive.
type TriggerDeadzone struct {
	Min, Max int32
}

func (t TriggerDeadzone) Contains(in Input) bool {
	return in.Value >= t.Min && in.Value <= t.Max
}

// SetStickDeadzone records dz on a Stick descriptor.
func (d *Descriptor) SetStickDeadzone(dz StickDeadzone) error {
	if d.kind != Stick {
		return fmt.Errorf("%w: %s %q", ErrDeadzoneUnsupported, d.kind, d.name)
	}
	if dz.XMin > dz.XMax || dz.YMin > dz.YMax {
		return fmt.Errorf("%w: %+v", ErrInvalidDeadzone, dz)
	}
	d.mu.Lock()
	d.deadzone = dz
	d.mu.Unlock()
	return nil
}

// SetTriggerDeadzone records dz on a Trigger descriptor.
func (d *Descriptor) SetTriggerDeadzone(dz TriggerDeadzone) error {
	if d.kind != Trigger {
		return fmt.Errorf("%w: %s %q", ErrDeadzoneUnsupported, d.kind, d.name)
	}
	if dz.Min > dz.Max {
		return fmt.Errorf("%w: %+v", ErrInvalidDeadzone, dz)
	}
	d.mu.Lock()
	d.deadzone = dz
	d.mu.Unlock()
	return nil
}

// Deadzone returns the recorded deadzone, if any.
func (d *Descriptor) Deadzone() (Deadzone, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.deadzone, d.deadzone != nil
}
