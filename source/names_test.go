package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/padwatch/source"
)

func TestCodeName(t *testing.T) {
	tests := []struct {
		typ, code uint16
		want      string
	}{
		{typ: 0x01, code: 0x130, want: "BTN_SOUTH"},
		{typ: 0x01, code: 0x133, want: "BTN_NORTH"},
		{typ: 0x01, code: 0x13c, want: "BTN_MODE"},
		{typ: 0x03, code: 0x00, want: "ABS_X"},
		{typ: 0x03, code: 0x05, want: "ABS_RZ"},
		{typ: 0x03, code: 0x11, want: "ABS_HAT0Y"},
		{typ: 0x00, code: 0x00, want: "SYN_REPORT"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, source.CodeName(tt.typ, tt.code))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, source.TypeSync, source.TypeName(0x00))
	assert.Equal(t, source.TypeKey, source.TypeName(0x01))
	assert.Equal(t, source.TypeAbsolute, source.TypeName(0x03))
}
