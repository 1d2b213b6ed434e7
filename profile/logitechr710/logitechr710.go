// Package logitechr710 is the profile of the Logitech R710 gamepad as
// exposed by the Linux event interface.
package logitechr710

import (
	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/controller"
	"github.com/Alia5/padwatch/profile"
)

const Name = "LogitechR710"

func init() {
	profile.Register(Name, New)
}

var layout = []profile.Control{
	{Kind: control.Stick, Name: "LEFT_THUMB", Codes: []string{"ABS_Y", "ABS_X"}},
	{Kind: control.Stick, Name: "RIGHT_THUMB", Codes: []string{"ABS_RY", "ABS_RX"}},
	{Kind: control.DirectionalPad, Name: "DPAD", Codes: []string{"ABS_HAT0X", "ABS_HAT0Y"}},
	{Kind: control.Button, Name: "MODE", Codes: []string{"BTN_MODE"}},
	{Kind: control.Button, Name: "SELECT", Codes: []string{"BTN_SELECT"}},
	{Kind: control.Button, Name: "START", Codes: []string{"BTN_START"}},
	{Kind: control.Button, Name: "X", Codes: []string{"BTN_NORTH"}},
	{Kind: control.Button, Name: "Y", Codes: []string{"BTN_WEST"}},
	{Kind: control.Button, Name: "B", Codes: []string{"BTN_EAST"}},
	{Kind: control.Button, Name: "A", Codes: []string{"BTN_SOUTH"}},
	{Kind: control.Button, Name: "LEFT_SHOULDER", Codes: []string{"BTN_TL"}},
	{Kind: control.Button, Name: "RIGHT_SHOULDER", Codes: []string{"BTN_TR"}},
	{Kind: control.Trigger, Name: "LEFT_TRIGGER", Codes: []string{"ABS_Z"}},
	{Kind: control.Trigger, Name: "RIGHT_TRIGGER", Codes: []string{"ABS_RZ"}},
}

// New returns a LogitechR710 controller.
func New(opts ...controller.Option) (*controller.Controller, error) {
	return profile.Build(Name, layout, opts...)
}
