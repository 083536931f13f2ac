package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "default", input: "my-game"},
		{name: "spaces", input: "My Game"},
		{name: "underscore and digits", input: "game_2025"},
		{name: "surrounding whitespace", input: "  padded  "},
		{name: "empty", input: "", wantErr: "Project name cannot be empty"},
		{name: "whitespace only", input: " \t ", wantErr: "Project name cannot be empty"},
		{name: "slash", input: "a/b", wantErr: "can only contain"},
		{name: "dot", input: "game.js", wantErr: "can only contain"},
		{name: "parent dir", input: "..", wantErr: "can only contain"},
		{name: "unicode letter", input: "jeu-é", wantErr: "can only contain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.input, verr.Input)
		})
	}
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"my-game":         "my-game",
		"My Game":         "my-game",
		"My   Big\tGame":  "my-big-game",
		"UPPER_case 2":    "upper_case-2",
		"already-lower":   "already-lower",
		"Two  Spaces-Mix": "two-spaces-mix",
	}
	for input, want := range tests {
		assert.Equal(t, want, PackageName(input), "input %q", input)
	}
}

func TestNew(t *testing.T) {
	parent := t.TempDir()
	p := New(parent, "My Game")

	assert.Equal(t, "My Game", p.Name)
	assert.Equal(t, "my-game", p.PackageName)
	assert.Equal(t, filepath.Join(parent, "My Game"), p.Dir)
}
