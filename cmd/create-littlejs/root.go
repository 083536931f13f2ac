package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/conn-castle/create-littlejs/internal/config"
	"github.com/conn-castle/create-littlejs/internal/console"
	"github.com/conn-castle/create-littlejs/internal/fetch"
	"github.com/conn-castle/create-littlejs/internal/installer"
	"github.com/conn-castle/create-littlejs/internal/messages"
	"github.com/conn-castle/create-littlejs/internal/project"
	"github.com/conn-castle/create-littlejs/internal/prompt"
	"github.com/conn-castle/create-littlejs/internal/scaffold"
)

var (
	getwd       = os.Getwd
	lookupEnv   = os.LookupEnv
	goos        = runtime.GOOS
	runScaffold = scaffold.Run
)

var newPrompter = func(in io.Reader, out io.Writer) project.Prompter {
	return prompt.New(in, out)
}

var newFetcher = func(progress func(string)) fetch.Fetcher {
	f := fetch.NewGitHubTarball(fetch.TemplateRepo)
	f.Progress = progress
	return f
}

var newInstaller = func(cfg config.InstallConfig, stdout io.Writer, stderr io.Writer) scaffold.Installer {
	r := installer.New(cfg.Command, cfg.Args)
	r.Stdout = stdout
	r.Stderr = stderr
	return r
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	return cmd
}

// runCreate reports pipeline failures itself and returns a SilentExitError so
// runMain only sets the exit status.
func runCreate(cmd *cobra.Command) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := config.LoadFromEnv(lookupEnv)
	if err != nil {
		return fail(console.New(stdout, stderr, false, ""), err)
	}
	reporter := console.New(stdout, stderr, cfg.Output.Verbose, cfg.Output.Color)

	cwd, err := getwd()
	if err != nil {
		return fail(reporter, fmt.Errorf(messages.GetwdFailedFmt, err))
	}

	var inst scaffold.Installer
	if cfg.InstallEnabled() {
		inst = newInstaller(cfg.Install, stdout, stderr)
	}
	opts := scaffold.Options{
		Cwd:            cwd,
		Windows:        goos == "windows",
		Prompter:       newPrompter(cmd.InOrStdin(), stdout),
		Fetcher:        newFetcher(func(line string) { reporter.Verbosef("%s", line) }),
		Installer:      inst,
		PackageManager: cfg.Install.Command,
		Reporter:       reporter,
	}
	if _, err := runScaffold(cmd.Context(), opts); err != nil {
		return fail(reporter, err)
	}
	return nil
}

func fail(reporter *console.Reporter, err error) error {
	reporter.Error(messages.ErrorHeader, err)
	return &SilentExitError{Code: 1}
}
