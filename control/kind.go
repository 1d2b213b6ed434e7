package control

// Kind identifies the family of a logical control.
type Kind uint8

const (
	Stick Kind = iota
	DirectionalPad
	Button
	Trigger
)

func (k Kind) String() string {
	switch k {
	case Stick:
		return "stick"
	case DirectionalPad:
		return "dpad"
	case Button:
		return "button"
	case Trigger:
		return "trigger"
	default:
		return "unknown"
	}
}
