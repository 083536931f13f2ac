// Package scaffold runs the create-project pipeline: name, target check, fetch,
// copy, transforms, and dependency install.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/create-littlejs/internal/console"
	"github.com/conn-castle/create-littlejs/internal/fetch"
	"github.com/conn-castle/create-littlejs/internal/materialize"
	"github.com/conn-castle/create-littlejs/internal/messages"
	"github.com/conn-castle/create-littlejs/internal/project"
	"github.com/conn-castle/create-littlejs/internal/staging"
	"github.com/conn-castle/create-littlejs/internal/transform"
)

// Installer installs the dependencies of a project directory.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// Options configures a pipeline run.
type Options struct {
	// Cwd is the directory the project is created in.
	Cwd string
	// Windows enables the Windows-only package.json additions.
	Windows bool
	Prompter project.Prompter
	Fetcher  fetch.Fetcher
	// Installer is nil when dependency installation is disabled.
	Installer Installer
	// PackageManager names the command shown in the next steps.
	PackageManager string
	Reporter       *console.Reporter
	// System defaults to materialize.RealSystem.
	System materialize.System
	// Transforms defaults to transform.Defaults().
	Transforms []transform.Transform
}

// Run creates a project and returns it. The returned project is non-nil once
// the target directory has been populated, even if a later step fails.
func Run(ctx context.Context, opts Options) (*project.Project, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	r := opts.Reporter
	if r == nil {
		r = console.New(nil, nil, false, "")
	}
	sys := opts.System
	if sys == nil {
		sys = materialize.RealSystem{}
	}
	transforms := opts.Transforms
	if transforms == nil {
		transforms = transform.Defaults()
	}
	packageManager := opts.PackageManager
	if packageManager == "" {
		packageManager = "npm"
	}

	r.Blank()
	r.Line(messages.Banner)
	r.Blank()

	name, err := project.CollectName(opts.Prompter)
	if err != nil {
		return nil, err
	}
	proj := project.New(opts.Cwd, name)
	if err := project.EnsureAbsent(proj.Dir); err != nil {
		return nil, err
	}

	r.Line(messages.StepCreatingProject)
	if err := materializeTemplate(ctx, opts.Cwd, proj.Dir, opts.Fetcher, sys, r); err != nil {
		return nil, err
	}

	params := transform.Params{
		ProjectName: proj.Name,
		PackageName: proj.PackageName,
		Windows:     opts.Windows,
	}
	if _, err := transform.ApplyAll(proj.Dir, params, transforms, &progress{r: r, windows: opts.Windows}); err != nil {
		return &proj, err
	}

	r.Blank()
	r.Line(messages.ProjectCreatedRule)
	r.Linef(messages.ProjectCreatedFmt, proj.Dir)
	r.Line(messages.ProjectCreatedRule)
	r.Blank()

	if opts.Installer == nil {
		r.Line(messages.StepInstallSkipped)
	} else {
		r.Line(messages.StepInstalling)
		if err := opts.Installer.Install(ctx, proj.Dir); err != nil {
			return &proj, err
		}
	}

	r.Blank()
	r.Line(messages.NextStepsHeader)
	r.Linef(messages.NextStepCdFmt, shellArg(proj.Name))
	r.Linef(messages.NextStepDevFmt, packageManager)
	r.Linef(messages.NextStepBuildFmt, packageManager)
	r.Linef(messages.NextStepZipFmt, packageManager)
	r.Blank()
	r.Line(messages.NextStepsReadme)
	r.Blank()
	r.Success(messages.Farewell)
	r.Blank()
	return &proj, nil
}

func (o Options) validate() error {
	if strings.TrimSpace(o.Cwd) == "" {
		return errors.New(messages.PipelineWorkingDirMissing)
	}
	if o.Prompter == nil {
		return errors.New(messages.PipelinePrompterRequired)
	}
	if o.Fetcher == nil {
		return errors.New(messages.PipelineFetcherRequired)
	}
	return nil
}

// materializeTemplate fetches into a fresh staging area under cwd and copies the
// result to dir. The staging area is removed on every path; failing to remove
// it after a successful copy is only a warning.
func materializeTemplate(ctx context.Context, cwd string, dir string, fetcher fetch.Fetcher, sys materialize.System, r *console.Reporter) error {
	acquired := false
	copied := false
	err := staging.With(cwd, func(area *staging.Area) error {
		acquired = true
		if err := fetcher.Fetch(ctx, area.Path()); err != nil {
			return err
		}
		if err := materialize.Copy(sys, area.Path(), dir); err != nil {
			return err
		}
		copied = true
		return nil
	})
	switch {
	case err == nil:
		return nil
	case !acquired:
		return &fetch.FetchError{Source: fetcher.Source(), Err: err}
	case copied:
		r.Warnf(messages.WarnReleaseFmt, cwd, err)
		return nil
	}
	return err
}

// shellArg quotes name for the cd hint when it contains whitespace.
func shellArg(name string) string {
	if strings.ContainsAny(name, " \t") {
		return fmt.Sprintf("%q", name)
	}
	return name
}
