package messages

// Scaffold pipeline progress and error messages.
const (
	// Banner is printed when the tool starts.
	Banner = "🛠️  Create LittleJS js13k game"

	StepCreatingProject = "📂 Creating project directory..."
	StepUpdatingReadme  = "📝 Updating README.md..."
	StepUpdatingPackage = "📝 Updating package.json..."
	StepWindowsDeps     = "🪟 Adding Windows-specific dependencies..."
	StepUpdatingTitle   = "🎮 Updating game title..."
	StepInstalling      = "📦 Installing dependencies..."
	StepInstallSkipped  = "📦 Skipping dependency installation (install.enabled = false)"
	StepUpdatingFmt     = "📝 Updating %s..."

	// ProjectCreatedRule frames the project-created line.
	ProjectCreatedRule = "--------------------------------"
	ProjectCreatedFmt  = "✅ Project created at %s"

	NextStepsHeader  = "Next steps:"
	NextStepCdFmt    = "  cd %s"
	NextStepDevFmt   = "  %s run dev      # Start development server"
	NextStepBuildFmt = "  %s run build    # Build for production"
	NextStepZipFmt   = "  %s run zip      # Create a zip"
	NextStepsReadme  = "More instructions in README.md"
	Farewell         = "Now go make something awesome!"

	WarnReadmeMissing  = "⚠️  No README.md found in template, skipping README.md updates"
	WarnPackageMissing = "⚠️  No package.json found in template, skipping package.json updates"
	WarnTitleMissing   = "⚠️  No src/data.js found in template, skipping game title update"
	WarnMissingFmt     = "⚠️  No %s found in template, skipping %s updates"
	WarnTransformFmt   = "⚠️  %s update failed, skipping: %v"
	WarnReleaseFmt     = "⚠️  %v"

	// TargetExistsFmt reports that the target directory already exists.
	TargetExistsFmt = "directory %s already exists"
	// TargetStatFmt reports an unexpected error checking the target directory.
	TargetStatFmt = "check %s: %w"

	StagingCreateFmt  = "create staging directory in %s: %w"
	StagingReleaseFmt = "remove staging directory %s: %w"

	FetchErrorFmt             = "fetch template %s: %v"
	FetchCreateRequestFmt     = "create request: %w"
	FetchRequestFmt           = "download %s: %w"
	FetchUnexpectedStatusFmt  = "download %s: unexpected status %s"
	FetchNotFoundFmt          = "download %s: template repository not found (HTTP 404)"
	FetchGzipFmt              = "decompress archive: %w"
	FetchTarFmt               = "read archive: %w"
	FetchUnsafePathFmt        = "archive entry %q escapes the staging directory"
	FetchWriteEntryFmt        = "extract %s: %w"
	FetchThroughSymlinkFmt    = "archive entry %q is below symlink %q"
	FetchEmptyArchive         = "archive contained no files"
	FetchDestinationRequired  = "staging destination is required"
	FetchDownloadingFmt       = "Downloading %s..."
	FetchExtractedFmt         = "Extracted %d files from %s"
	FetchSkippedSymlinkFmt    = "Skipping symlink %s -> %s (points outside the template)"
	FetchUnsupportedEntryFmt  = "Skipping unsupported archive entry %s (type %q)"
	CopyErrorFmt              = "copy %s: %v"
	CopySourceNotDirFmt       = "staging path %s is not a directory"
	CopyUnsupportedFileFmt    = "unsupported file type %s at %s"
	MetadataParseErrorFmt     = "parse %s: %v"
	MetadataInvalidJSON       = "not valid JSON"
	MetadataNotObject         = "top-level value is not a JSON object"
	MetadataSetFieldFmt       = "set %s: %w"
	MetadataDevDepsNotObject  = "devDependencies is not a JSON object"
	TransformReadFmt          = "read %s: %w"
	TransformWriteFmt         = "write %s: %w"
	TransformDiffHeaderFmt    = "Changes to %s:"
	InstallErrorFmt           = "install dependencies in %s: %v"
	InstallExitFmt            = "%s exited with status %d"
	InstallCommandRequired    = "install command is required"
	InstallLookupFmt          = "find %s: %w"
	PipelineFetcherRequired   = "template fetcher is required"
	PipelinePrompterRequired  = "prompter is required"
	PipelineWorkingDirMissing = "working directory is required"
)
