package messages

// CLI messages for the root command and the outer error boundary.
const (
	// RootUse is the CLI command name.
	RootUse = "create-littlejs"
	// RootShort is the short description for the root command.
	RootShort       = "Create a new LittleJS js13k game project"
	RootLong        = "Prompts for a project name, downloads the LittleJS js13k starter template into a new directory, personalizes it, and installs its dependencies."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ErrorHeader precedes the message of any fatal pipeline error.
	ErrorHeader = "❌ An error occurred:"
	// SilentExitFmt formats SilentExitError values.
	SilentExitFmt = "exit %d"
	// GetwdFailedFmt formats working directory resolution failures.
	GetwdFailedFmt = "resolve working directory: %w"
)
