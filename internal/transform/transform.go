// Package transform applies the post-copy edits that personalize a new project.
package transform

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// Params carries the values the edits substitute into the project.
type Params struct {
	// ProjectName is the human-readable name used for the game title.
	ProjectName string
	// PackageName is written to package.json.
	PackageName string
	// Windows adds the Windows-only dev dependency.
	Windows bool
}

// Status is the outcome of a single transform.
type Status int

const (
	// Applied means the file was rewritten.
	Applied Status = iota
	// Unchanged means the edit matched nothing and the file was left untouched.
	Unchanged
	// Skipped means the target file does not exist.
	Skipped
	// Failed means the edit or file I/O failed.
	Failed
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Transform is one best-effort edit of a file inside the project root.
type Transform struct {
	// Name labels the transform in messages.
	Name string
	// RelPath is the slash-separated path of the edited file.
	RelPath string
	// Edit returns the new file content.
	Edit func(p Params, content []byte) ([]byte, error)
}

// Result records what a transform did.
type Result struct {
	Transform Transform
	Status    Status
	Err       error
	// Diff is a unified diff of the edit when Status is Applied.
	Diff string
}

// Observer is notified around each transform. Started is only called when the
// target file exists.
type Observer interface {
	Started(t Transform)
	Finished(r Result)
}

// Defaults returns the README trim, package metadata rewrite, and title
// substitution, in the order they run.
func Defaults() []Transform {
	return []Transform{ReadmeTrim(), PackageMetadata(), TitleSubstitution()}
}

// Apply runs t against root. started is called once the file has been found.
func (t Transform) Apply(root string, p Params, started func()) Result {
	path := filepath.Join(root, filepath.FromSlash(t.RelPath))
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Result{Transform: t, Status: Skipped}
		}
		return Result{Transform: t, Status: Failed, Err: fmt.Errorf(messages.TransformReadFmt, t.RelPath, err)}
	}
	if started != nil {
		started()
	}

	updated, err := t.Edit(p, content)
	if err != nil {
		return Result{Transform: t, Status: Failed, Err: err}
	}
	if bytes.Equal(content, updated) {
		return Result{Transform: t, Status: Unchanged}
	}
	// os.WriteFile keeps the mode of an existing file.
	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return Result{Transform: t, Status: Failed, Err: fmt.Errorf(messages.TransformWriteFmt, t.RelPath, err)}
	}
	return Result{
		Transform: t,
		Status:    Applied,
		Diff:      udiff.Unified("a/"+t.RelPath, "b/"+t.RelPath, string(content), string(updated)),
	}
}

// IsFatal reports whether a transform error must abort the run. Only an
// unparseable package descriptor is fatal; everything else is downgraded to a warning.
func IsFatal(err error) bool {
	var parseErr *MetadataParseError
	return errors.As(err, &parseErr)
}

// ApplyAll runs every transform in order. Skips and non-fatal failures are
// reported to obs and do not stop the fold; the first fatal error is returned
// after its result has been observed.
func ApplyAll(root string, p Params, transforms []Transform, obs Observer) ([]Result, error) {
	results := make([]Result, 0, len(transforms))
	for _, t := range transforms {
		started := func() {}
		if obs != nil {
			started = func() { obs.Started(t) }
		}
		r := t.Apply(root, p, started)
		results = append(results, r)
		if obs != nil {
			obs.Finished(r)
		}
		if r.Status == Failed && IsFatal(r.Err) {
			return results, r.Err
		}
	}
	return results, nil
}
