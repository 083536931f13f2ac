package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// TargetExistsError reports that the target directory is already present.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf(messages.TargetExistsFmt, e.Path)
}

var lstat = os.Lstat

// EnsureAbsent fails with TargetExistsError when path exists in any form
// (directory, file, or dangling symlink). It never mutates the filesystem.
func EnsureAbsent(path string) error {
	_, err := lstat(path)
	if err == nil {
		return &TargetExistsError{Path: path}
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf(messages.TargetStatFmt, path, err)
}
