//go:build !linux

package source

func platformTypeName(uint16) (string, bool) {
	return "", false
}

func platformCodeName(uint16, uint16) (string, bool) {
	return "", false
}
