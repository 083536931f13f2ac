package messages

// Config messages.
const (
	// ConfigResolveHomeFmt formats home directory resolution failures.
	ConfigResolveHomeFmt      = "resolve home dir: %w"
	ConfigExpandPathFmt       = "expand config path %s: %w"
	ConfigReadFmt             = "read config %s: %w"
	ConfigInvalidFmt          = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %w"
	ConfigCommandRequiredFmt  = "%s: install.command is required when install.enabled is true"
	ConfigInvalidColorFmt     = "%s: output.color must be one of auto, always, never (got %q)"
	ConfigInvalidEnvBoolFmt   = "invalid %s value %q: %w"
)
