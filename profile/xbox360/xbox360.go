// Package xbox360 is the profile of wired Xbox 360 pads driven by the Linux
// xpad driver.
package xbox360

import (
	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/controller"
	"github.com/Alia5/padwatch/profile"
)

const Name = "Xbox360"

func init() {
	profile.Register(Name, New)
}

// xpad reports X as BTN_NORTH and Y as BTN_WEST, and the triggers as
// 0-255 on ABS_Z / ABS_RZ.
var layout = []profile.Control{
	{Kind: control.Stick, Name: "LEFT_THUMB", Codes: []string{"ABS_X", "ABS_Y"}},
	{Kind: control.Stick, Name: "RIGHT_THUMB", Codes: []string{"ABS_RX", "ABS_RY"}},
	{Kind: control.DirectionalPad, Name: "DPAD", Codes: []string{"ABS_HAT0X", "ABS_HAT0Y"}},
	{Kind: control.Button, Name: "A", Codes: []string{"BTN_SOUTH"}},
	{Kind: control.Button, Name: "B", Codes: []string{"BTN_EAST"}},
	{Kind: control.Button, Name: "X", Codes: []string{"BTN_NORTH"}},
	{Kind: control.Button, Name: "Y", Codes: []string{"BTN_WEST"}},
	{Kind: control.Button, Name: "LEFT_SHOULDER", Codes: []string{"BTN_TL"}},
	{Kind: control.Button, Name: "RIGHT_SHOULDER", Codes: []string{"BTN_TR"}},
	{Kind: control.Button, Name: "BACK", Codes: []string{"BTN_SELECT"}},
	{Kind: control.Button, Name: "START", Codes: []string{"BTN_START"}},
	{Kind: control.Button, Name: "GUIDE", Codes: []string{"BTN_MODE"}},
	{Kind: control.Button, Name: "LEFT_STICK_PRESS", Codes: []string{"BTN_THUMBL"}},
	{Kind: control.Button, Name: "RIGHT_STICK_PRESS", Codes: []string{"BTN_THUMBR"}},
	{Kind: control.Trigger, Name: "LEFT_TRIGGER", Codes: []string{"ABS_Z"}},
	{Kind: control.Trigger, Name: "RIGHT_TRIGGER", Codes: []string{"ABS_RZ"}},
}

// New returns an Xbox360 controller.
func New(opts ...controller.Option) (*controller.Controller, error) {
	return profile.Build(Name, layout, opts...)
}
