package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

var validColorModes = map[string]struct{}{
	ColorAuto:   {},
	ColorAlways: {},
	ColorNever:  {},
}

// Validate ensures the config is consistent. path is used in error messages.
// Parse fills a blank install command before validating, so the command check
// only rejects configs assembled in code without defaults.
func (c *Config) Validate(path string) error {
	if c.InstallEnabled() && strings.TrimSpace(c.Install.Command) == "" {
		return fmt.Errorf(messages.ConfigCommandRequiredFmt, path)
	}
	if _, ok := validColorModes[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigInvalidColorFmt, path, c.Output.Color)
	}
	return nil
}
