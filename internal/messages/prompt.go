package messages

// Prompt messages for collecting the project name.
const (
	// ProjectNamePrompt is the question shown for the project name.
	ProjectNamePrompt = "Project name:"
	// ProjectNameDefault is used when the user submits an empty answer.
	ProjectNameDefault = "my-game"

	ProjectNameEmpty        = "Project name cannot be empty"
	ProjectNameInvalidChars = "Project name can only contain letters, numbers, spaces, hyphens, and underscores"

	// PromptLineFmt renders the line-based prompt with its default.
	PromptLineFmt = "? %s (%s) "
	// PromptRetryFmt renders a validation failure before re-prompting.
	PromptRetryFmt = ">> %s\n"
	// PromptInputClosed reports that stdin ended before a valid answer was given.
	PromptInputClosed = "input closed before a valid project name was entered"
	// PromptRequiresTerminal reports that the huh prompt was invoked without a TTY.
	PromptRequiresTerminal = "the project name prompt requires an interactive terminal"
	// PromptCancelled reports that the user aborted the prompt.
	PromptCancelled = "project creation cancelled"
)
