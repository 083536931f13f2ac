package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// Environment variables consulted by LoadFromEnv.
const (
	EnvConfigPath = "CREATE_LITTLEJS_CONFIG"
	EnvNoInstall  = "CREATE_LITTLEJS_NO_INSTALL"
)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

var homeDir = homedir.Dir

// DefaultPath returns ~/.config/create-littlejs/config.toml.
func DefaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", "create-littlejs", "config.toml"), nil
}

// ResolvePath returns the config path from EnvConfigPath, falling back to DefaultPath.
// A leading ~ in the env value is expanded.
func ResolvePath(lookupEnv LookupEnvFunc) (string, error) {
	if lookupEnv != nil {
		if value, ok := lookupEnv(EnvConfigPath); ok && strings.TrimSpace(value) != "" {
			expanded, err := homedir.Expand(strings.TrimSpace(value))
			if err != nil {
				return "", fmt.Errorf(messages.ConfigExpandPathFmt, value, err)
			}
			return expanded, nil
		}
	}
	return DefaultPath()
}

// LoadFromEnv resolves the config path, loads it, and applies env overrides.
func LoadFromEnv(lookupEnv LookupEnvFunc) (*Config, error) {
	path, err := ResolvePath(lookupEnv)
	if err != nil {
		return nil, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates the config at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates config TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// This catches misspelled keys that toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// ApplyEnv applies environment overrides on top of file values.
func (c *Config) ApplyEnv(lookupEnv LookupEnvFunc) error {
	if lookupEnv == nil {
		return nil
	}
	value, ok := lookupEnv(EnvNoInstall)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	noInstall, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf(messages.ConfigInvalidEnvBoolFmt, EnvNoInstall, value, err)
	}
	if noInstall {
		enabled := false
		c.Install.Enabled = &enabled
	}
	return nil
}
