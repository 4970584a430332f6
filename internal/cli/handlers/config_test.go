package handlers

import (
	"strings"
	"testing"
)

func TestShowConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{
		"Configuration:",
		"Config file:",
		"log_level:       warn",
		"theme:           dracula",
		"delete_attempts: 4",
		"create_attempts: 3",
		"retry_delay:     0s",
		"reference_path:  (none)",
		"expand_env_vars: true",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
}

func TestShowConfig_NoFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Using defaults") {
		t.Errorf("expected 'Using defaults' in output, got %q", stdout.String())
	}
}

func TestShowConfig_WithFile(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	// Initialize config file first
	InitConfig(deps)
	stdout.Reset()

	ShowConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "File exists") {
		t.Errorf("expected 'File exists' in output, got %q", stdout.String())
	}
}

func TestShowConfig_ReferencePath(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	cfg := deps.Services.Config.Get()
	cfg.Path.ReferencePath = "/srv/base"
	if err := deps.Services.Config.Update(cfg); err != nil {
		t.Fatal(err)
	}

	ShowConfig(deps)

	if !strings.Contains(stdout.String(), "reference_path:  /srv/base") {
		t.Errorf("expected reference path in output, got %q", stdout.String())
	}
}

func TestShowConfig_Backups(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	InitConfig(deps)
	if err := deps.Services.Config.Update(deps.Services.Config.Get()); err != nil {
		t.Fatal(err)
	}
	stdout.Reset()

	ShowConfig(deps)

	if !strings.Contains(stdout.String(), "Backups: "+deps.Services.Config.GetPath()+".bak.1") {
		t.Errorf("expected backup in output, got %q", stdout.String())
	}
}

func TestInitConfig(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	InitConfig(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Created config file:") {
		t.Errorf("expected 'Created config file:' in output, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Edit this file") {
		t.Errorf("expected 'Edit this file' in output, got %q", stdout.String())
	}
}

func TestInitConfig_AlreadyExists(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	InitConfig(deps)
	InitConfig(deps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Errorf("expected 'already exists' in stderr, got %q", stderr.String())
	}
}

func TestInitConfig_Error(t *testing.T) {
	deps, _, stderr, exitCode := setupBrokenConfigDeps(t)

	InitConfig(deps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("expected 'Error:' in stderr, got %q", stderr.String())
	}
}
