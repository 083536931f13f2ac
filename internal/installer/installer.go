// Package installer runs the package manager inside a newly created project.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// InstallError reports a failed package manager run. The project directory is
// left in place when it is returned.
type InstallError struct {
	Dir      string
	Command  string
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf(messages.InstallErrorFmt, e.Dir, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Runner invokes Command with Args synchronously, inheriting the given streams.
type Runner struct {
	Command string
	Args    []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

var lookPath = exec.LookPath

// New returns a Runner attached to the process's standard streams.
func New(command string, args []string) *Runner {
	return &Runner{
		Command: command,
		Args:    args,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// String renders the command line, e.g. "npm install".
func (r *Runner) String() string {
	return strings.TrimSpace(r.Command + " " + strings.Join(r.Args, " "))
}

// Install runs the command with dir as its working directory. The calling
// process's own working directory is not changed.
func (r *Runner) Install(ctx context.Context, dir string) error {
	if strings.TrimSpace(r.Command) == "" {
		return &InstallError{Dir: dir, Err: errors.New(messages.InstallCommandRequired)}
	}
	path, err := lookPath(r.Command)
	if err != nil {
		return &InstallError{Dir: dir, Command: r.String(), Err: fmt.Errorf(messages.InstallLookupFmt, r.Command, err)}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, path, r.Args...) //nolint:gosec // command comes from the user's own config
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		installErr := &InstallError{Dir: dir, Command: r.String(), ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			installErr.ExitCode = exitErr.ExitCode()
			installErr.Err = fmt.Errorf(messages.InstallExitFmt, r.String(), exitErr.ExitCode())
		}
		return installErr
	}
	return nil
}
