package source

import "fmt"

// Event type names.
const (
	TypeSync     = "EV_SYN"
	TypeKey      = "EV_KEY"
	TypeRelative = "EV_REL"
	TypeAbsolute = "EV_ABS"
	TypeMisc     = "EV_MSC"
)

const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03
	evMsc = 0x04
)

var typeNames = map[uint16]string{
	evSyn: TypeSync,
	evKey: TypeKey,
	evRel: TypeRelative,
	evAbs: TypeAbsolute,
	evMsc: TypeMisc,
}

// Gamepad codes carry several aliases in input-event-codes.h (BTN_A,
// BTN_GAMEPAD and BTN_SOUTH are all 0x130). Profiles use the directional
// names, so those win over whatever the generic table picks.
var gamepadKeys = map[uint16]string{
	0x130: "BTN_SOUTH",
	0x131: "BTN_EAST",
	0x132: "BTN_C",
	0x133: "BTN_NORTH",
	0x134: "BTN_WEST",
	0x135: "BTN_Z",
	0x136: "BTN_TL",
	0x137: "BTN_TR",
	0x138: "BTN_TL2",
	0x139: "BTN_TR2",
	0x13a: "BTN_SELECT",
	0x13b: "BTN_START",
	0x13c: "BTN_MODE",
	0x13d: "BTN_THUMBL",
	0x13e: "BTN_THUMBR",
	0x220: "BTN_DPAD_UP",
	0x221: "BTN_DPAD_DOWN",
	0x222: "BTN_DPAD_LEFT",
	0x223: "BTN_DPAD_RIGHT",
}

var absAxes = map[uint16]string{
	0x00: "ABS_X",
	0x01: "ABS_Y",
	0x02: "ABS_Z",
	0x03: "ABS_RX",
	0x04: "ABS_RY",
	0x05: "ABS_RZ",
	0x06: "ABS_THROTTLE",
	0x07: "ABS_RUDDER",
	0x08: "ABS_WHEEL",
	0x09: "ABS_GAS",
	0x0a: "ABS_BRAKE",
	0x10: "ABS_HAT0X",
	0x11: "ABS_HAT0Y",
	0x12: "ABS_HAT1X",
	0x13: "ABS_HAT1Y",
	0x14: "ABS_HAT2X",
	0x15: "ABS_HAT2Y",
	0x16: "ABS_HAT3X",
	0x17: "ABS_HAT3Y",
}

var syncCodes = map[uint16]string{
	0x00: "SYN_REPORT",
	0x01: "SYN_CONFIG",
	0x02: "SYN_MT_REPORT",
	0x03: "SYN_DROPPED",
}

// TypeName returns the EV_* name of an event type.
func TypeName(typ uint16) string {
	if n, ok := typeNames[typ]; ok {
		return n
	}
	if n, ok := platformTypeName(typ); ok {
		return n
	}
	return fmt.Sprintf("EV_%d", typ)
}

// CodeName returns the input-event-codes name of code within typ.
func CodeName(typ, code uint16) string {
	var table map[uint16]string
	switch typ {
	case evKey:
		table = gamepadKeys
	case evAbs:
		table = absAxes
	case evSyn:
		table = syncCodes
	}
	if n, ok := table[code]; ok {
		return n
	}
	if n, ok := platformCodeName(typ, code); ok {
		return n
	}
	return fmt.Sprintf("%s:%d", TypeName(typ), code)
}
