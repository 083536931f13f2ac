// Package config loads the optional user configuration for create-littlejs.
package config

import "strings"

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default values applied when the config file omits a key.
const (
	DefaultInstallCommand = "npm"
	DefaultInstallArg     = "install"
)

// Config is the user configuration read from config.toml.
type Config struct {
	Install InstallConfig `toml:"install"`
	Output  OutputConfig  `toml:"output"`
}

// InstallConfig controls the package manager invocation after scaffolding.
type InstallConfig struct {
	Enabled *bool    `toml:"enabled"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// OutputConfig controls console output.
type OutputConfig struct {
	Verbose bool   `toml:"verbose"`
	Color   string `toml:"color"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// InstallEnabled reports whether dependencies should be installed.
func (c *Config) InstallEnabled() bool {
	return c.Install.Enabled == nil || *c.Install.Enabled
}

// applyDefaults fills zero values with their defaults.
func (c *Config) applyDefaults() {
	if c.Install.Enabled == nil {
		enabled := true
		c.Install.Enabled = &enabled
	}
	if strings.TrimSpace(c.Install.Command) == "" {
		c.Install.Command = DefaultInstallCommand
	}
	if c.Install.Args == nil {
		c.Install.Args = []string{DefaultInstallArg}
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
}
