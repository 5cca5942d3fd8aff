package app

import (
	"flag"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-puzzle", "cat.yml", "-size", "480", "-dim", "0.4", "-flat", "-log", "debug"}))

	assert.Equal(t, "cat.yml", cfg.Puzzle)
	assert.Equal(t, 480, cfg.Size)
	assert.Equal(t, 180, cfg.HUDWidth)
	assert.Equal(t, 0.4, cfg.BackgroundAlpha)
	assert.True(t, cfg.FlatFill)
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
}

func TestLoggerFallsBackToInfo(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "chatty"
	assert.Equal(t, logrus.InfoLevel, cfg.Logger().GetLevel())
}
