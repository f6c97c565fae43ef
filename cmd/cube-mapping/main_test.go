package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-c", "cube.toml", "--video", "-vv", "--shaders", "glsl"})
	require.NoError(t, err)
	assert.Equal(t, "cube.toml", o.configPath)
	assert.True(t, o.video)
	assert.False(t, o.watch)
	assert.Equal(t, 2, o.verbose)
	assert.Equal(t, "glsl", o.shaderDir)

	_, err = parseFlags([]string{"--nope"})
	assert.Error(t, err)
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, levelFromFlags(options{}))
	assert.Equal(t, slog.LevelInfo, levelFromFlags(options{verbose: 1}))
	assert.Equal(t, slog.LevelDebug, levelFromFlags(options{verbose: 3}))
	assert.Equal(t, slog.LevelError, levelFromFlags(options{quiet: true}))
	assert.Equal(t, slog.LevelInfo, levelFromFlags(options{verbose: 1, quiet: true}), "verbose wins")
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	cfg, err := loadConfig(options{video: true, watch: true, shaderDir: "glsl"})
	require.NoError(t, err)
	assert.True(t, cfg.Textures.Video)
	assert.True(t, cfg.Textures.Watch)
	assert.Equal(t, "glsl", cfg.Cube.ShaderDir)

	path := filepath.Join(t.TempDir(), "cube.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 640\nheight = 480\n"), 0o644))
	cfg, err = loadConfig(options{configPath: path})
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.False(t, cfg.Textures.Video)

	_, err = loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}
