package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteStubCreatesExecutableThatSucceeds(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "ok-stub")
	WriteStub(t, dir, "ok-stub")

	info, err := os.Stat(stubPath)
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}

	cmd := exec.Command(stubPath)
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected success exit, got %v", err)
	}
}

func TestWriteStubWithExitCreatesExecutableWithRequestedExitCode(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "exit-stub")
	WriteStubWithExit(t, dir, "exit-stub", 7)

	cmd := exec.Command(stubPath)
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected non-zero exit status")
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("expected exit code 7, got %d", exitErr.ExitCode())
	}
}

func TestWriteStubExpectArgHonorsRequiredArg(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "arg-stub")
	WriteStubExpectArg(t, dir, "arg-stub", "--ready")

	cmd := exec.Command(stubPath, "--ready")
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected success with required arg, got %v", err)
	}

	cmd = exec.Command(stubPath, "--missing")
	err := cmd.Run()
	if err == nil {
		t.Fatal("expected non-zero exit without required arg")
	}
}

func TestWriteStubRecordingDirLogsWorkingDirAndArgs(t *testing.T) {
	SkipOnWindows(t)
	binDir := t.TempDir()
	workDir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "calls.log")
	stubPath := WriteStubRecordingDir(t, binDir, "npm", logPath)

	cmd := exec.Command(stubPath, "install")
	cmd.Dir = workDir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if !strings.Contains(string(out), "added 0 packages") {
		t.Fatalf("unexpected stdout %q", out)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %q", data)
	}
	workReal, err := filepath.EvalSymlinks(workDir)
	if err != nil {
		workReal = workDir
	}
	loggedReal, err := filepath.EvalSymlinks(lines[0])
	if err != nil {
		loggedReal = lines[0]
	}
	if loggedReal != workReal {
		t.Fatalf("expected cwd %q, got %q", workReal, loggedReal)
	}
	if lines[1] != "install" {
		t.Fatalf("expected args %q, got %q", "install", lines[1])
	}
}

func TestPrependPathMakesStubResolvable(t *testing.T) {
	SkipOnWindows(t)
	dir := t.TempDir()
	WriteStub(t, dir, "fake-tool-on-path")
	PrependPath(t, dir)

	path, err := exec.LookPath("fake-tool-on-path")
	if err != nil {
		t.Fatalf("look path: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("expected stub from %q, got %q", dir, path)
	}
}

func TestWithWorkingDirRunsInTargetDirectoryAndRestoresOriginal(t *testing.T) {
	targetDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd before test: %v", err)
	}

	var observedDir string
	WithWorkingDir(t, targetDir, func() {
		wd, innerErr := os.Getwd()
		if innerErr != nil {
			t.Fatalf("getwd inside callback: %v", innerErr)
		}
		observedDir = wd
	})

	targetReal, err := filepath.EvalSymlinks(targetDir)
	if err != nil {
		targetReal = targetDir
	}
	observedReal, err := filepath.EvalSymlinks(observedDir)
	if err != nil {
		observedReal = observedDir
	}
	if observedReal != targetReal {
		t.Fatalf("expected callback cwd %q (real %q), got %q (real %q)", targetDir, targetReal, observedDir, observedReal)
	}

	finalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd after callback: %v", err)
	}
	origReal, err := filepath.EvalSymlinks(origDir)
	if err != nil {
		origReal = origDir
	}
	finalReal, err := filepath.EvalSymlinks(finalDir)
	if err != nil {
		finalReal = finalDir
	}
	if finalReal != origReal {
		t.Fatalf("expected cwd restored to %q (real %q), got %q (real %q)", origDir, origReal, finalDir, finalReal)
	}
}
