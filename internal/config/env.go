package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of the environment variables read by EnvLoader.
const EnvPrefix = "VIMODE_"

// EnvLoader applies environment variables to a Config.
type EnvLoader struct {
	prefix  string                          // Environment variable prefix (e.g., "VIMODE_")
	mapping map[string]string               // Env var suffix -> flag name
	lookup  func(key string) (string, bool) // Defaults to os.LookupEnv
}

// NewEnvLoader creates a loader reading the process environment.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
	}
}

// NewEnvLoaderWithLookup creates a loader reading variables through lookup.
func NewEnvLoaderWithLookup(prefix string, lookup func(string) (string, bool)) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.lookup = lookup
	return l
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"LOG_LEVEL":  FlagLogLevel,
		"LOG_FILE":   FlagLogFile,
		"KEYMAP":     FlagKeymap,
		"SCRIPT":     FlagScript,
		"START_MODE": FlagStartMode,
		"WATCH":      FlagWatch,
	}
}

// Apply copies every set variable into c.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Apply(c *Config) error {
	names := make([]string, 0, len(l.mapping))
	for name := range l.mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		val, ok := l.lookup(l.prefix + name)
		if !ok {
			continue
		}
		if err := c.set(l.mapping[name], val); err != nil {
			return err
		}
	}
	return nil
}

// Variables returns the names of the variables the loader reads.
func (l *EnvLoader) Variables() []string {
	vars := make([]string, 0, len(l.mapping))
	for name := range l.mapping {
		vars = append(vars, l.prefix+name)
	}
	sort.Strings(vars)
	return vars
}

// WithEnvFile returns a lookup that consults base first and then the
// dotenv file at path. A missing file leaves base unchanged.
func WithEnvFile(path string, base func(string) (string, bool)) (func(string) (string, bool), error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	return func(name string) (string, bool) {
		if v, ok := base(name); ok {
			return v, true
		}
		v, ok := values[name]
		return v, ok
	}, nil
}
