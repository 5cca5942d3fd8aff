package app

import (
	"flag"

	"github.com/sirupsen/logrus"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Puzzle          string
	Image           string
	Color           string
	Size            int
	HUDWidth        int
	TPS             int
	BackgroundAlpha float64
	FlatFill        bool
	LogLevel        string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 600, HUDWidth: 180, TPS: 60, BackgroundAlpha: 1, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Puzzle, "puzzle", c.Puzzle, "puzzle file (.yaml, .toml or .json)")
	fs.StringVar(&c.Image, "image", c.Image, "background image uri, overrides the puzzle's")
	fs.StringVar(&c.Color, "color", c.Color, "initial brush color, overrides the puzzle's")
	fs.IntVar(&c.Size, "size", c.Size, "canvas side length in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "palette panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.BackgroundAlpha, "dim", c.BackgroundAlpha, "opacity of the unrevealed background (0-1)")
	fs.BoolVar(&c.FlatFill, "flat", c.FlatFill, "fill cells with their color when there is no background")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level (debug, info, warn, error)")
}

// Logger builds a logger honoring the configured level. Unknown levels fall
// back to info.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
