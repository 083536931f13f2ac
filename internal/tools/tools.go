//go:build tools

// Package tools pins the versions of the linter and test runner used by CI.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
