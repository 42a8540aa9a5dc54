package configresolver

import (
	"fmt"
	"os"

	"github.com/holo-host/holo-auth/interfaces"
)

// DefaultConfigPathEnv names the environment variable holding the config file path.
const DefaultConfigPathEnv = "HPOS_CONFIG_PATH"

// EnvLoader implements interfaces.ConfigLoader by reading the file named by an
// environment variable.
type EnvLoader struct {
	// EnvVar is the environment variable to read the path from
	EnvVar string

	// lookupEnv is os.LookupEnv unless overridden in tests
	lookupEnv func(string) (string, bool)
}

// NewEnvLoader creates a loader reading the config path from envVar.
func NewEnvLoader(envVar string) *EnvLoader {
	if envVar == "" {
		envVar = DefaultConfigPathEnv
	}
	return &EnvLoader{EnvVar: envVar, lookupEnv: os.LookupEnv}
}

// Load resolves the config path and parses the file it points at.
func (l *EnvLoader) Load() (interfaces.Config, error) {
	lookup := l.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	path, ok := lookup(l.EnvVar)
	if !ok || path == "" {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrConfigPathUnset, l.EnvVar)
	}

	return LoadFile(path)
}

// LoadFile reads and parses the config file at path.
func LoadFile(path string) (interfaces.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrConfigUnreadable, err)
	}

	cfg, err := interfaces.ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return cfg, nil
}
