// Package prompt implements the interactive questions asked before scaffolding.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/create-littlejs/internal/messages"
	"github.com/conn-castle/create-littlejs/internal/terminal"
)

// ErrCancelled is returned when the user aborts a prompt with Esc or Ctrl+C.
var ErrCancelled = errors.New(messages.PromptCancelled)

// HuhUI asks questions with charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
	output     io.Writer
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that renders to stderr.
// The default implementation uses terminal.IsInteractive().
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive, output: os.Stderr}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.PromptRequiresTerminal)
}

// promptKeyMap returns the default huh keymap with Esc added as an abort key.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// formFilter converts InterruptMsg (huh's CancelCmd, or an external SIGINT)
// to QuitMsg so bubbletea takes the graceful shutdown path and clears the form.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// runForm validates terminal availability and runs the provided form.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	output := ui.output
	if output == nil {
		output = os.Stderr
	}
	form.WithKeyMap(promptKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(output),
		tea.WithFilter(formFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Input renders a text input. An empty answer becomes defaultValue; huh keeps
// the form open and shows the error until validate accepts the answer.
func (ui *HuhUI) Input(title string, defaultValue string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(defaultValue).
		Value(&value).
		Validate(func(s string) error {
			return validate(orDefault(s, defaultValue))
		})

	if err := ui.runForm(huh.NewForm(huh.NewGroup(input))); err != nil {
		return "", err
	}
	return orDefault(value, defaultValue), nil
}

func orDefault(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
