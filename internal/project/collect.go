package project

import (
	"strings"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// Prompter asks for a single line of text. Implementations must keep asking until
// validate accepts the answer; an empty answer is replaced by defaultValue before
// validation.
type Prompter interface {
	Input(title string, defaultValue string, validate func(string) error) (string, error)
}

// CollectName prompts for the project name and returns it trimmed.
func CollectName(p Prompter) (string, error) {
	answer, err := p.Input(messages.ProjectNamePrompt, messages.ProjectNameDefault, ValidateName)
	if err != nil {
		return "", err
	}
	if err := ValidateName(answer); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
