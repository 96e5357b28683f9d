package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ajeetyadav1111/termfolio/internal/config"
	"github.com/ajeetyadav1111/termfolio/internal/model"
)

func TestDefaultConfigTemplateParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Nil(t, cfg.UI.TypingSpeed)
	require.Nil(t, cfg.UI.Mouse)
}

func TestValidateConfig(t *testing.T) {
	ok := model.Config{TypingSpeed: 80 * time.Millisecond, ScrollThreshold: 2, RevealThreshold: 0.1}
	require.NoError(t, validateConfig(ok))

	bad := ok
	bad.TypingSpeed = 0
	require.Error(t, validateConfig(bad))

	bad = ok
	bad.RevealThreshold = 1.5
	require.Error(t, validateConfig(bad))

	bad = ok
	bad.ScrollThreshold = -1
	require.Error(t, validateConfig(bad))
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--speed", "50"}))

	fileSpeed, fileScroll := 120, 7
	applyIntConfig(cmd, "speed", &uiSpeed, &fileSpeed)
	applyIntConfig(cmd, "scroll-threshold", &uiScrollThreshold, &fileScroll)
	require.Equal(t, 50, uiSpeed)
	require.Equal(t, 7, uiScrollThreshold)
}

func TestLoadContentFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, err := loadContent("")
	require.NoError(t, err)
	require.Equal(t, "Ajeet Yadav", c.Profile.Name)

	_, err = loadContent(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "termfolio.log")
	log, closeLog, err := openLogger(path, "debug")
	require.NoError(t, err)
	log.Debug("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")

	_, _, err = openLogger(path, "loud")
	require.Error(t, err)
}
