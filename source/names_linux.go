//go:build linux

package source

import evdev "github.com/gvalkov/golang-evdev"

func platformTypeName(typ uint16) (string, bool) {
	n, ok := evdev.EV[int(typ)]
	return n, ok
}

func platformCodeName(typ, code uint16) (string, bool) {
	codes, ok := evdev.ByEventType[int(typ)]
	if !ok {
		return "", false
	}
	n, ok := codes[int(code)]
	return n, ok
}
