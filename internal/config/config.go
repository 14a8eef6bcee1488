// Package config gathers the command-line settings shared by every geoshape
// command. Each flag falls back to a GEOSHAPE_* environment variable.
package config

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// LevelOff silences logging entirely.
const LevelOff = "off"

var levels = []string{"debug", "info", "warn", "error", LevelOff}

type Config struct {
	LogLevel  string
	NoColor   bool
	NoGrid    bool
	AltScreen bool
}

// Register declares the global flags on app. The returned Config is filled
// in when app parses its arguments.
func Register(app *kingpin.Application) *Config {
	c := &Config{}
	app.Flag("log-level", "Log level: "+strings.Join(levels, ", ")+".").
		Default(LevelOff).Envar("GEOSHAPE_LOG_LEVEL").EnumVar(&c.LogLevel, levels...)
	app.Flag("no-color", "Disable colored output.").
		Envar("GEOSHAPE_NO_COLOR").BoolVar(&c.NoColor)
	app.Flag("no-grid", "Skip the text grid under each report.").
		Envar("GEOSHAPE_NO_GRID").BoolVar(&c.NoGrid)
	app.Flag("alt-screen", "Run the terminal UI in the alternate screen.").
		Default("true").Envar("GEOSHAPE_ALT_SCREEN").BoolVar(&c.AltScreen)
	return c
}

// Level maps LogLevel to a slog level. ok is false when logging is off.
func (c *Config) Level() (lvl slog.Level, ok bool, err error) {
	if c.LogLevel == "" || c.LogLevel == LevelOff {
		return 0, false, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, false, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return lvl, true, nil
}
