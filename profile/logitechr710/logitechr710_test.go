package logitechr710_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padwatch/control"
	th "github.com/Alia5/padwatch/internal/testing"
	"github.com/Alia5/padwatch/profile"
	"github.com/Alia5/padwatch/profile/logitechr710"
	"github.com/Alia5/padwatch/source"
)

func TestLayout(t *testing.T) {
	c, err := logitechr710.New()
	require.NoError(t, err)
	assert.Equal(t, "LogitechR710", c.Name())

	assert.Equal(t, []string{
		"A", "B", "DPAD", "LEFT_SHOULDER", "LEFT_THUMB", "LEFT_TRIGGER", "MODE",
		"RIGHT_SHOULDER", "RIGHT_THUMB", "RIGHT_TRIGGER", "SELECT", "START", "X", "Y",
	}, c.Names())

	tests := []struct {
		control string
		kind    control.Kind
		codes   []string
	}{
		{control: "LEFT_THUMB", kind: control.Stick, codes: []string{"ABS_Y", "ABS_X"}},
		{control: "RIGHT_THUMB", kind: control.Stick, codes: []string{"ABS_RY", "ABS_RX"}},
		{control: "DPAD", kind: control.DirectionalPad, codes: []string{"ABS_HAT0X", "ABS_HAT0Y"}},
		{control: "X", kind: control.Button, codes: []string{"BTN_NORTH"}},
		{control: "Y", kind: control.Button, codes: []string{"BTN_WEST"}},
		{control: "A", kind: control.Button, codes: []string{"BTN_SOUTH"}},
		{control: "LEFT_TRIGGER", kind: control.Trigger, codes: []string{"ABS_Z"}},
		{control: "RIGHT_TRIGGER", kind: control.Trigger, codes: []string{"ABS_RZ"}},
	}
	for _, tt := range tests {
		t.Run(tt.control, func(t *testing.T) {
			d, err := c.Control(tt.control)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.codes, d.Codes())
		})
	}
}

func TestRegistered(t *testing.T) {
	c, err := profile.New("logitechr710")
	require.NoError(t, err)
	assert.Equal(t, logitechr710.Name, c.Name())
}

func TestFactoryReturnsFreshControllers(t *testing.T) {
	a, err := logitechr710.New()
	require.NoError(t, err)
	b, err := logitechr710.New()
	require.NoError(t, err)

	rec := &th.Recorder{}
	require.NoError(t, a.RegisterCallback("A", rec.Callback()))

	b.Dispatch(context.Background(), []source.Event{{Type: source.TypeKey, Code: "BTN_SOUTH", Value: 1}})
	assert.Empty(t, rec.Inputs())
}

func TestDispatchDPad(t *testing.T) {
	c, err := logitechr710.New()
	require.NoError(t, err)

	rec := &th.Recorder{}
	require.NoError(t, c.RegisterCallback("DPAD", rec.Callback()))
	require.NoError(t, c.RegisterCallback("RIGHT_TRIGGER", rec.Callback()))

	c.Dispatch(context.Background(), []source.Event{
		{Type: source.TypeAbsolute, Code: "ABS_HAT0Y", Value: -1},
		{Type: source.TypeAbsolute, Code: "ABS_RZ", Value: 200},
		{Type: source.TypeSync, Code: "SYN_REPORT"},
	})

	assert.Equal(t, []control.Input{
		{Control: "DPAD", Code: "ABS_HAT0Y", Value: -1, Axis: control.AxisY},
		{Control: "RIGHT_TRIGGER", Code: "ABS_RZ", Value: 200},
	}, rec.Inputs())
}
