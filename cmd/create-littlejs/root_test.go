package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/create-littlejs/internal/config"
	"github.com/conn-castle/create-littlejs/internal/fetch"
	"github.com/conn-castle/create-littlejs/internal/project"
	"github.com/conn-castle/create-littlejs/internal/scaffold"
)

type fixedPrompter struct {
	answer string
}

func (p fixedPrompter) Input(_ string, _ string, validate func(string) error) (string, error) {
	if err := validate(p.answer); err != nil {
		return "", err
	}
	return p.answer, nil
}

type localFetcher struct {
	err error
}

func (localFetcher) Source() string { return "local" }

func (f localFetcher) Fetch(_ context.Context, dest string) error {
	if f.err != nil {
		return &fetch.FetchError{Source: "local", Err: f.err}
	}
	if err := os.MkdirAll(filepath.Join(dest, "src"), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dest, "package.json"), []byte(`{"name":"starter"}`), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dest, "src", "data.js"), []byte("title: 'Starter'\n"), 0o644)
}

type noopInstaller struct {
	dirs *[]string
	err  error
}

func (i noopInstaller) Install(_ context.Context, dir string) error {
	*i.dirs = append(*i.dirs, dir)
	return i.err
}

type rootHarness struct {
	cwd        string
	env        map[string]string
	installed  []string
	fetchErr   error
	installErr error
}

func setupRoot(t *testing.T, answer string) *rootHarness {
	t.Helper()
	h := &rootHarness{
		cwd: t.TempDir(),
		env: map[string]string{config.EnvConfigPath: filepath.Join(t.TempDir(), "missing.toml")},
	}

	origGetwd, origLookup, origGOOS := getwd, lookupEnv, goos
	origPrompter, origFetcher, origInstaller := newPrompter, newFetcher, newInstaller
	t.Cleanup(func() {
		getwd, lookupEnv, goos = origGetwd, origLookup, origGOOS
		newPrompter, newFetcher, newInstaller = origPrompter, origFetcher, origInstaller
	})

	getwd = func() (string, error) { return h.cwd, nil }
	lookupEnv = func(key string) (string, bool) {
		value, ok := h.env[key]
		return value, ok
	}
	goos = "linux"
	newPrompter = func(io.Reader, io.Writer) project.Prompter { return fixedPrompter{answer: answer} }
	newFetcher = func(func(string)) fetch.Fetcher { return localFetcher{err: h.fetchErr} }
	newInstaller = func(config.InstallConfig, io.Writer, io.Writer) scaffold.Installer {
		return noopInstaller{dirs: &h.installed, err: h.installErr}
	}
	return h
}

func runRoot(t *testing.T) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCreatesProject(t *testing.T) {
	h := setupRoot(t, "Pixel Quest")

	stdout, stderr, err := runRoot(t)
	if err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}
	target := filepath.Join(h.cwd, "Pixel Quest")
	if !strings.Contains(stdout, "Project created at "+target) {
		t.Fatalf("expected success output, got %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(target, "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}
	if !strings.Contains(string(data), `"name": "pixel-quest"`) {
		t.Fatalf("expected rewritten name, got %q", data)
	}
	if len(h.installed) != 1 || h.installed[0] != target {
		t.Fatalf("expected install in %s, got %v", target, h.installed)
	}
}

func TestRootWindowsAddsDevDependency(t *testing.T) {
	h := setupRoot(t, "game")
	goos = "windows"

	if _, stderr, err := runRoot(t); err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}
	data, err := os.ReadFile(filepath.Join(h.cwd, "game", "package.json"))
	if err != nil {
		t.Fatalf("read package.json: %v", err)
	}
	if !strings.Contains(string(data), `"ect-bin": "^1.4.1"`) {
		t.Fatalf("expected windows dev dependency, got %q", data)
	}
}

func TestRootNoInstallEnv(t *testing.T) {
	h := setupRoot(t, "game")
	h.env[config.EnvNoInstall] = "1"

	stdout, stderr, err := runRoot(t)
	if err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}
	if len(h.installed) != 0 {
		t.Fatalf("expected no install, got %v", h.installed)
	}
	if !strings.Contains(stdout, "Skipping dependency installation") {
		t.Fatalf("expected skip message, got %q", stdout)
	}
}

func TestRootTargetExistsReportsAndFails(t *testing.T) {
	h := setupRoot(t, "game")
	if err := os.Mkdir(filepath.Join(h.cwd, "game"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, stderr, err := runRoot(t)
	var silent *SilentExitError
	if !errors.As(err, &silent) || silent.Code != 1 {
		t.Fatalf("expected silent exit 1, got %v", err)
	}
	if !strings.Contains(stderr, "❌ An error occurred:") || !strings.Contains(stderr, "already exists") {
		t.Fatalf("expected diagnostic, got %q", stderr)
	}
}

func TestRootFetchFailureLeavesCwdClean(t *testing.T) {
	h := setupRoot(t, "game")
	h.fetchErr = errors.New("offline")

	_, stderr, err := runRoot(t)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(stderr, "offline") {
		t.Fatalf("expected fetch diagnostic, got %q", stderr)
	}
	entries, err := os.ReadDir(h.cwd)
	if err != nil {
		t.Fatalf("read cwd: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty cwd, got %d entries", len(entries))
	}
}

func TestRootInstallFailureExitsNonZero(t *testing.T) {
	h := setupRoot(t, "game")
	h.installErr = errors.New("npm exited with status 1")

	_, stderr, err := runRoot(t)
	var silent *SilentExitError
	if !errors.As(err, &silent) {
		t.Fatalf("expected silent exit, got %v", err)
	}
	if !strings.Contains(stderr, "npm exited with status 1") {
		t.Fatalf("expected install diagnostic, got %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(h.cwd, "game")); err != nil {
		t.Fatalf("expected project to remain: %v", err)
	}
}

func TestRootInvalidConfig(t *testing.T) {
	h := setupRoot(t, "game")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[output]\nbogus = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	h.env[config.EnvConfigPath] = path

	_, stderr, err := runRoot(t)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(stderr, "❌ An error occurred:") {
		t.Fatalf("expected diagnostic, got %q", stderr)
	}
}

func TestRootGetwdError(t *testing.T) {
	setupRoot(t, "game")
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	_, stderr, err := runRoot(t)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(stderr, "getwd failed") {
		t.Fatalf("expected getwd diagnostic, got %q", stderr)
	}
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"my-game"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for positional args")
	}
}
