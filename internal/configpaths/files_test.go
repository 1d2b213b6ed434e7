package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserPath(t *testing.T) {
	tests := []struct {
		name     string
		userPath string
		wantJSON bool
		wantYAML bool
		wantTOML bool
	}{
		{name: "json", userPath: "/tmp/pad.json", wantJSON: true},
		{name: "yaml", userPath: "/tmp/pad.yaml", wantYAML: true},
		{name: "yml", userPath: "/tmp/pad.yml", wantYAML: true},
		{name: "toml", userPath: "/tmp/pad.toml", wantTOML: true},
		{name: "unknown extension falls back to json", userPath: "/tmp/pad.conf", wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, y, to := ConfigCandidatePaths(tt.userPath)
			assert.Equal(t, tt.wantJSON, j[0] == tt.userPath)
			assert.Equal(t, tt.wantYAML, y[0] == tt.userPath)
			assert.Equal(t, tt.wantTOML, to[0] == tt.userPath)
		})
	}
}

func TestConfigCandidatePathsSearchOrder(t *testing.T) {
	cfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("AppData", cfg)

	wd, err := os.Getwd()
	require.NoError(t, err)

	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("")
	require.NotEmpty(t, jsonPaths)
	assert.Equal(t, filepath.Join(wd, "padwatch.json"), jsonPaths[0])
	assert.Equal(t, filepath.Join(wd, "padwatch.yaml"), yamlPaths[0])
	assert.Equal(t, filepath.Join(wd, "padwatch.yml"), yamlPaths[1])
	assert.Equal(t, filepath.Join(wd, "padwatch.toml"), tomlPaths[0])
	assert.Contains(t, jsonPaths, filepath.Join(cfg, "padwatch", "monitor.json"))
	assert.Len(t, yamlPaths, 2*len(jsonPaths))

	if runtime.GOOS != "windows" {
		assert.Equal(t, "/etc/padwatch/debug.toml", tomlPaths[len(tomlPaths)-1])
	}
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME is not used on windows")
	}
	cfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: "monitor.json"},
		{format: "yml", want: "monitor.yaml"},
		{format: "toml", want: "monitor.toml"},
		{format: "ini", want: "monitor.json"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			p, err := DefaultNamedConfigPath("monitor", tt.format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(cfg, "padwatch", tt.want), p)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "monitor.json")
	require.NoError(t, EnsureDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
