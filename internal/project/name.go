// Package project derives and validates the identity of a new project.
package project

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

var (
	allowedName = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// ValidationError reports a rejected project name. It is recovered locally by re-prompting.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateName checks raw input against the allowed character set.
// Empty and whitespace-only input is rejected.
func ValidateName(input string) error {
	if strings.TrimSpace(input) == "" {
		return &ValidationError{Input: input, Reason: messages.ProjectNameEmpty}
	}
	if !allowedName.MatchString(input) {
		return &ValidationError{Input: input, Reason: messages.ProjectNameInvalidChars}
	}
	return nil
}

// PackageName lowercases name and replaces every whitespace run with a single hyphen.
func PackageName(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(name), "-")
}

// Project holds the values derived once from a validated name.
type Project struct {
	// Name is the human-readable project name as entered.
	Name string
	// PackageName is the npm package name derived from Name.
	PackageName string
	// Dir is the absolute target directory.
	Dir string
}

// New derives a Project rooted in parent. name must already be validated.
func New(parent string, name string) Project {
	return Project{
		Name:        name,
		PackageName: PackageName(name),
		Dir:         filepath.Join(parent, name),
	}
}
