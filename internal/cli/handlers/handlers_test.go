package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/config"
	"github.com/xolan/rfext/internal/service"
)

// setupTestDeps creates deps backed by a config path in a temp dir and a
// zero retry delay
func setupTestDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Folder.RetryDelay = config.Duration{}
	return newTestDeps(t, filepath.Join(t.TempDir(), "config.toml"), cfg)
}

// setupBrokenConfigDeps creates deps whose config path is a directory
func setupBrokenConfigDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatal(err)
	}
	return newTestDeps(t, configPath, config.DefaultConfig())
}

func newTestDeps(t *testing.T, configPath string, cfg config.Config) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: service.NewServicesWithConfig(configPath, cfg),
	}

	return deps, stdout, stderr, &exitCode
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
