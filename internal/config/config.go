package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vimode/internal/input/mode"
	"github.com/dshills/vimode/internal/logging"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidValue indicates a setting holds a value of the wrong form.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config holds the settings of the vimode binary.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile receives log output. Empty disables logging.
	LogFile string `toml:"log_file"`

	// KeymapFile is a TOML, YAML or JSON keymap applied over the defaults.
	KeymapFile string `toml:"keymap"`

	// ScriptFile is a Lua init script run at startup.
	ScriptFile string `toml:"script"`

	// StartMode is the initial mode, normal or insert.
	StartMode string `toml:"start_mode"`

	// Watch reloads KeymapFile when it changes on disk.
	Watch bool `toml:"watch"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		StartMode: mode.NameInsert,
	}
}

// DefaultPath returns the default config file location,
// ~/.config/vimode/config.toml on Unix-like systems.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "vimode", "config.toml"), nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFile reads path over the defaults. Keys missing from the file keep
// their default value.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, bytes.NewReader(data))
}

// LoadReader reads a TOML document over the defaults.
func LoadReader(r io.Reader) (Config, error) {
	return parse("<reader>", r)
}

// LoadOptional reads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, ErrFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func parse(source string, r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var se *toml.StrictMissingError
		if errors.As(err, &se) {
			pe.Message = se.String()
		}
		return Config{}, pe
	}
	return cfg, nil
}

// Validate checks that every setting holds a usable value.
func (c Config) Validate() error {
	if _, err := logging.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidValue, err)
	}
	if _, err := mode.Parse(c.StartMode); err != nil {
		return fmt.Errorf("%w: start_mode: %w", ErrInvalidValue, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logging.LogLevel {
	level, err := logging.ParseLogLevel(c.LogLevel)
	if err != nil {
		return logging.LogLevelInfo
	}
	return level
}

// Mode returns the parsed start mode, falling back to Insert.
func (c Config) Mode() mode.Mode {
	m, err := mode.Parse(c.StartMode)
	if err != nil {
		return mode.Insert
	}
	return m
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Flag names understood by ApplyFlags.
const (
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
	FlagKeymap    = "keymap"
	FlagScript    = "script"
	FlagStartMode = "mode"
	FlagWatch     = "watch"
)

// RegisterFlags defines the config flags on fs with c's values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.String(FlagLogLevel, c.LogLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogFile, c.LogFile, "write logs to `file`")
	fs.String(FlagKeymap, c.KeymapFile, "keymap `file` (.toml, .yaml, .json)")
	fs.String(FlagScript, c.ScriptFile, "Lua init `script`")
	fs.String(FlagStartMode, c.StartMode, "start mode (normal, insert)")
	fs.Bool(FlagWatch, c.Watch, "reload the keymap file when it changes")
}

// ApplyFlags copies every flag that was set on the command line into c.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		err = c.set(f.Name, f.Value.String())
	})
	return err
}

// set assigns a setting by flag name.
func (c *Config) set(name, value string) error {
	switch name {
	case FlagLogLevel:
		c.LogLevel = strings.ToLower(value)
	case FlagLogFile:
		c.LogFile = value
	case FlagKeymap:
		c.KeymapFile = value
	case FlagScript:
		c.ScriptFile = value
	case FlagStartMode:
		c.StartMode = strings.ToLower(value)
	case FlagWatch:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, name, value)
		}
		c.Watch = b
	}
	return nil
}
