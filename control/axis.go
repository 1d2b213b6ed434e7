package control

import "regexp"

// Axis tags the directional component an input belongs to.
type Axis byte

const (
	AxisNone Axis = 0
	AxisX    Axis = 'X'
	AxisY    Axis = 'Y'
)

func (a Axis) String() string {
	if a == AxisNone {
		return ""
	}
	return string(rune(a))
}

// axisPattern matches codes such as ABS_X or ABS_HAT0Y. ABS_RZ and BTN_SOUTH
// do not match.
var axisPattern = regexp.MustCompile(`^[A-Z0-9]+_[A-Z0-9]*(?P<axis>[XY])$`)

// Classify reports whether code is one axis component of a two-axis input
// and, if so, which one.
func Classify(code string) (Axis, bool) {
	m := axisPattern.FindStringSubmatch(code)
	if m == nil {
		return AxisNone, false
	}
	return Axis(m[axisPattern.SubexpIndex("axis")][0]), true
}
