// Package staging manages the temporary directory a template is fetched into
// before it is copied to its final location.
package staging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// Prefix starts the name of every staging directory.
const Prefix = ".create-littlejs-"

var (
	newID     = func() string { return uuid.NewString() }
	mkdir     = os.Mkdir
	removeAll = os.RemoveAll
)

// Area is an acquired staging directory. Release removes it exactly once.
type Area struct {
	path       string
	once       sync.Once
	releaseErr error
}

// Acquire creates a new, uniquely named staging directory under parent.
// The directory is created exclusively, so an existing path is never reused.
func Acquire(parent string) (*Area, error) {
	path := filepath.Join(parent, Prefix+newID())
	if err := mkdir(path, 0o700); err != nil {
		return nil, fmt.Errorf(messages.StagingCreateFmt, parent, err)
	}
	return &Area{path: path}, nil
}

// Path returns the absolute staging directory.
func (a *Area) Path() string {
	return a.path
}

// Release removes the staging directory and everything in it. Only the first
// call touches the filesystem; later calls return the first result.
func (a *Area) Release() error {
	a.once.Do(func() {
		if err := removeAll(a.path); err != nil {
			a.releaseErr = fmt.Errorf(messages.StagingReleaseFmt, a.path, err)
		}
	})
	return a.releaseErr
}

// With acquires a staging area under parent, runs fn with it, and releases the
// area on every exit path, including panics. A release failure is joined with
// fn's error.
func With(parent string, fn func(*Area) error) (err error) {
	area, err := Acquire(parent)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := area.Release(); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()
	return fn(area)
}
