// Package config loads tasklist settings from defaults, a TOML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	DefaultConfigFile = "tasklist.toml"
	DefaultTheme      = "light"
	DefaultLogLevel   = "warn"
	DefaultCharLimit  = 200
	DefaultFormat     = "text"
)

// ErrFlags marks command-line errors, including a request for help.
var ErrFlags = errors.New("flags")

// Config is the resolved configuration.
type Config struct {
	Theme     string    `toml:"theme"`
	Mouse     bool      `toml:"mouse"`
	CharLimit int       `toml:"char_limit"`
	Log       LogConfig `toml:"log"`

	// Flag-only settings.
	ConfigFile string   `toml:"-"`
	NoColor    bool     `toml:"-"`
	Format     string   `toml:"-"`
	Args       []string `toml:"-"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Dark reports whether the board starts in dark mode.
func (c *Config) Dark() bool { return c.Theme == "dark" }

// LogLevel returns the parsed log level; Validate guarantees it parses.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Mouse = true
	cfg.CharLimit = DefaultCharLimit
	cfg.Log.Level = DefaultLogLevel
	cfg.Format = DefaultFormat
}

type flagValues struct {
	configFile, theme, logLevel, logFile, format string
	noMouse, noColor                             bool
}

// Load resolves the configuration. fs receives the root flags; remaining
// positional arguments end up in Config.Args.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}
	cfg := &Config{}
	setDefaults(cfg)

	var fv flagValues
	fs.StringVar(&fv.configFile, "config", "", "path to a TOML config file (default ./"+DefaultConfigFile+")")
	fs.StringVar(&fv.theme, "theme", "", "initial theme: light or dark")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&fv.logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&fv.format, "format", DefaultFormat, "run output format: text or json")
	fs.BoolVar(&fv.noMouse, "no-mouse", false, "disable mouse support in the board")
	fs.BoolVar(&fv.noColor, "no-color", false, "disable colors")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlags, err)
	}

	if err := loadFile(cfg, fv.configFile); err != nil {
		return nil, err
	}
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	applyFlags(cfg, fs, fv)
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes path, or ./tasklist.toml when path is empty and the file exists.
func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("loading config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.ConfigFile = path
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TASKLIST_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TASKLIST_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TASKLIST_MOUSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TASKLIST_MOUSE: %w", err)
		}
		cfg.Mouse = b
	}
	return nil
}

// applyFlags copies only the flags that were set on the command line.
func applyFlags(cfg *Config, fs *flag.FlagSet, fv flagValues) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = fv.theme
		case "log-level":
			cfg.Log.Level = fv.logLevel
		case "log-file":
			cfg.Log.File = fv.logFile
		case "format":
			cfg.Format = fv.format
		case "no-mouse":
			cfg.Mouse = !fv.noMouse
		case "no-color":
			cfg.NoColor = fv.noColor
		}
	})
}

// Validate rejects settings the program cannot honor.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q: want light or dark", c.Theme)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q: want text or json", c.Format)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must not be negative, got %d", c.CharLimit)
	}
	return nil
}
