package control

import (
	"context"
	"fmt"
	"time"
)

// Input is the payload delivered to callbacks. Axis is AxisNone for scalar
// inputs such as buttons and triggers.
type Input struct {
	Control string
	Code    string
	Value   int32
	Axis    Axis
	Time    time.Time
}

// HasAxis reports whether the input is one component of a two-axis control.
func (in Input) HasAxis() bool {
	return in.Axis != AxisNone
}

func (in Input) String() string {
	if in.HasAxis() {
		return fmt.Sprintf("%s %s=%d axis=%s", in.Control, in.Code, in.Value, in.Axis)
	}
	return fmt.Sprintf("%s %s=%d", in.Control, in.Code, in.Value)
}

// Callback is invoked synchronously on the dispatch goroutine. Long running
// work should be handed off to another goroutine.
type Callback func(ctx context.Context, in Input)

// ValueFunc adapts a value-only handler. The axis tag is dropped.
func ValueFunc(f func(value int32)) Callback {
	return func(_ context.Context, in Input) {
		f(in.Value)
	}
}

// AxisFunc adapts a handler taking the value and the axis tag. Scalar inputs
// are delivered with AxisNone.
func AxisFunc(f func(value int32, axis Axis)) Callback {
	return func(_ context.Context, in Input) {
		f(in.Value, in.Axis)
	}
}
