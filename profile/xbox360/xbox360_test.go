package xbox360_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/profile"
	"github.com/Alia5/padwatch/profile/xbox360"
)

func TestLayout(t *testing.T) {
	c, err := xbox360.New()
	require.NoError(t, err)

	codes, err := c.ResolveCodes("LEFT_THUMB", "LEFT_STICK_PRESS", "GUIDE")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABS_X", "ABS_Y", "BTN_THUMBL", "BTN_MODE"}, codes)

	name, axis, ok := c.Lookup("ABS_RY")
	assert.True(t, ok)
	assert.Equal(t, "RIGHT_THUMB", name)
	assert.Equal(t, control.AxisY, axis)

	all, err := c.ResolveCodes()
	require.NoError(t, err)
	assert.Len(t, all, 19)
}

func TestRegistered(t *testing.T) {
	_, ok := profile.Lookup("XBOX360")
	assert.True(t, ok)
}
