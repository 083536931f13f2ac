package scaffold

import (
	"fmt"

	"github.com/conn-castle/create-littlejs/internal/console"
	"github.com/conn-castle/create-littlejs/internal/messages"
	"github.com/conn-castle/create-littlejs/internal/transform"
)

// progress reports transform steps on the console.
type progress struct {
	r       *console.Reporter
	windows bool
}

func (p *progress) Started(t transform.Transform) {
	switch t.RelPath {
	case transform.ReadmePath:
		p.r.Line(messages.StepUpdatingReadme)
	case transform.PackagePath:
		p.r.Line(messages.StepUpdatingPackage)
		if p.windows {
			p.r.Line(messages.StepWindowsDeps)
		}
	case transform.TitlePath:
		p.r.Line(messages.StepUpdatingTitle)
	default:
		p.r.Linef(messages.StepUpdatingFmt, t.RelPath)
	}
}

func (p *progress) Finished(res transform.Result) {
	switch res.Status {
	case transform.Skipped:
		p.r.Warn(missingWarning(res.Transform))
	case transform.Failed:
		if !transform.IsFatal(res.Err) {
			p.r.Warnf(messages.WarnTransformFmt, res.Transform.Name, res.Err)
		}
	case transform.Applied:
		if p.r.Verbose() {
			p.r.Verbosef(messages.TransformDiffHeaderFmt, res.Transform.RelPath)
			p.r.Diff(res.Diff)
		}
	}
}

func missingWarning(t transform.Transform) string {
	switch t.RelPath {
	case transform.ReadmePath:
		return messages.WarnReadmeMissing
	case transform.PackagePath:
		return messages.WarnPackageMissing
	case transform.TitlePath:
		return messages.WarnTitleMissing
	}
	return fmt.Sprintf(messages.WarnMissingFmt, t.RelPath, t.Name)
}
