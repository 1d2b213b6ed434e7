package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/controller"
	"github.com/Alia5/padwatch/profile"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		name         string
		registerName string
		lookupName   string
		shouldFind   bool
	}{
		{name: "exact match", registerName: "testpad", lookupName: "testpad", shouldFind: true},
		{name: "case insensitive lookup", registerName: "TestPad", lookupName: "testpad", shouldFind: true},
		{name: "case insensitive lookup uppercase", registerName: "mypad", lookupName: "MYPAD", shouldFind: true},
		{name: "lookup non-existent profile", registerName: "pad1", lookupName: "pad2", shouldFind: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regName := tt.name + "_" + tt.registerName
			called := false
			profile.Register(regName, func(opts ...controller.Option) (*controller.Controller, error) {
				called = true
				return controller.New(regName, nil, opts...)
			})

			f, ok := profile.Lookup(tt.name + "_" + tt.lookupName)
			if !tt.shouldFind {
				assert.False(t, ok)
				assert.Nil(t, f)
				return
			}

			require.True(t, ok)
			c, err := f()
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, regName, c.Name())
			assert.Contains(t, profile.Names(), regName)
		})
	}
}

func TestNewUnknownProfile(t *testing.T) {
	_, err := profile.New("does-not-exist")
	assert.ErrorIs(t, err, profile.ErrUnknownProfile)
}

func TestBuild(t *testing.T) {
	c, err := profile.Build("pad", []profile.Control{
		{Kind: control.Button, Name: "A", Codes: []string{"BTN_SOUTH"}},
		{Kind: control.Stick, Name: "LEFT_THUMB", Codes: []string{"ABS_X", "ABS_Y"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "LEFT_THUMB"}, c.Names())

	d, err := c.Control("LEFT_THUMB")
	require.NoError(t, err)
	assert.Equal(t, control.Stick, d.Kind())
}

func TestBuildRejectsCollisions(t *testing.T) {
	_, err := profile.Build("pad", []profile.Control{
		{Kind: control.Trigger, Name: "LT", Codes: []string{"ABS_Z"}},
		{Kind: control.Trigger, Name: "RT", Codes: []string{"ABS_Z"}},
	})
	assert.ErrorIs(t, err, controller.ErrDuplicateCode)

	_, err = profile.Build("pad", []profile.Control{
		{Kind: control.Button, Name: "A", Codes: nil},
	})
	assert.ErrorIs(t, err, control.ErrInvalidDescriptor)
}
