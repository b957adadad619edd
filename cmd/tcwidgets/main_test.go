package main

import (
	"errors"
	"os"
	"os/exec"
	"testing"
)

func TestMainVersionExitZero(t *testing.T) {
	if os.Getenv("TCWIDGETS_HELPER") == "1" {
		os.Args = []string{"tcwidgets", "--version"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainVersionExitZero")
	cmd.Env = append(os.Environ(), "TCWIDGETS_HELPER=1")
	if err := cmd.Run(); err != nil {
		t.Fatalf("expected exit 0, got error: %v", err)
	}
}

func TestMainInvalidArgsExitOne(t *testing.T) {
	if os.Getenv("TCWIDGETS_HELPER_INVALID") == "1" {
		os.Args = []string{"tcwidgets", "--not-a-flag"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainInvalidArgsExitOne")
	cmd.Env = append(os.Environ(), "TCWIDGETS_HELPER_INVALID=1")
	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
}

func TestMainBadLayoutExitOne(t *testing.T) {
	if os.Getenv("TCWIDGETS_HELPER_LAYOUT") == "1" {
		os.Args = []string{"tcwidgets", "check", os.Getenv("TCWIDGETS_LAYOUT")}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestMainBadLayoutExitOne")
	cmd.Env = append(os.Environ(), "TCWIDGETS_HELPER_LAYOUT=1", "TCWIDGETS_LAYOUT="+t.TempDir()+"/missing.yaml")
	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
}
