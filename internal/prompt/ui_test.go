package prompt

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptAll(string) error { return nil }

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	assert.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
	assert.NotNil(t, ui.output)
}

func TestHuhUI_EnsureInteractive_NilChecker(t *testing.T) {
	// Falls back to terminal.IsInteractive, which is false under go test.
	ui := &HuhUI{isTerminal: nil}
	err := ui.ensureInteractive()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestHuhUI_InputWithoutTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	_, err := ui.Input("Title", "def", acceptAll)
	assert.Error(t, err)
}

func TestHuhUI_InputReturnsDefaultWhenEmpty(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() { runFormFunc = origRunForm })

	called := false
	runFormFunc = func(form *huh.Form) error {
		assert.NotNil(t, form)
		called = true
		return nil
	}

	value, err := ui.Input("Project name:", "my-game", acceptAll)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "my-game", value)
}

func TestHuhUI_UserAbortMapsToCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() { runFormFunc = origRunForm })
	runFormFunc = func(*huh.Form) error { return huh.ErrUserAborted }

	_, err := ui.Input("Title", "def", acceptAll)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestHuhUI_RunFormErrorPassesThrough(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	origRunForm := runFormFunc
	t.Cleanup(func() { runFormFunc = origRunForm })
	boom := errors.New("boom")
	runFormFunc = func(*huh.Form) error { return boom }

	_, err := ui.Input("Title", "def", acceptAll)
	assert.ErrorIs(t, err, boom)
}

func TestPromptKeyMap_EscAborts(t *testing.T) {
	km := promptKeyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
}

func TestFormFilter(t *testing.T) {
	assert.Equal(t, tea.QuitMsg{}, formFilter(nil, tea.InterruptMsg{}))

	keyMsg := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, keyMsg, formFilter(nil, keyMsg))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "def", orDefault("", "def"))
	assert.Equal(t, " ", orDefault(" ", "def"))
	assert.Equal(t, "x", orDefault("x", "def"))
}
