package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xolan/rfext/internal/config"
	"github.com/xolan/rfext/internal/service"
)

type cmdResult struct {
	stdout   string
	stderr   string
	exitCode int
	err      error
}

// execute runs the root command with args against captured streams. With
// services nil the root command loads them from --config.
func execute(t *testing.T, services *service.Services, args ...string) cmdResult {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0
	SetDeps(&Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
	})
	defer ResetDeps()

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), exitCode: exitCode, err: err}
}

// resetFlags puts every flag of the command tree back to its default, since
// cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func testServices(t *testing.T) *service.Services {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Folder.RetryDelay = config.Duration{}
	return service.NewServicesWithConfig(filepath.Join(t.TempDir(), "config.toml"), cfg)
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	res := execute(t, testServices(t))

	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "rfext exposes a small set of keywords") {
		t.Errorf("Expected help text, got: %s", res.stdout)
	}
}

func TestRoot_UnknownFlag(t *testing.T) {
	res := execute(t, testServices(t), "--unknownflag")

	if res.err == nil {
		t.Error("Expected an error for an unknown flag")
	}
}

func TestRoot_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[folder]\ndelete_attempts = 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, nil, "config", "--config", path)

	if res.err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", res.err, res.stderr)
	}
	if !strings.Contains(res.stdout, "Config file: "+path) {
		t.Errorf("Expected config path in output, got: %s", res.stdout)
	}
	if !strings.Contains(res.stdout, "delete_attempts: 9") {
		t.Errorf("Expected value from the config file, got: %s", res.stdout)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	res := execute(t, nil, "keywords", "--config", path)

	if res.err == nil {
		t.Fatal("Expected an error for an invalid config")
	}
	if !strings.Contains(res.stderr, "Error: Failed to load configuration") {
		t.Errorf("Expected configuration error, got: %s", res.stderr)
	}
	if strings.Contains(res.stderr, "Usage:") {
		t.Errorf("Expected no usage text after a config error, got: %s", res.stderr)
	}
	if res.stdout != "" {
		t.Errorf("Expected the command not to run, got: %s", res.stdout)
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	res := execute(t, testServices(t), "-v", "3", "pretty-print", "--data", "[1]")

	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if res.stdout != "[LIST] (1/1) > [INT]  :  1\n" {
		t.Errorf("Unexpected stdout: %q", res.stdout)
	}
	if !strings.Contains(res.stderr, "[LIST] (1/1) > [INT]  :  1") {
		t.Errorf("Expected the info log line on stderr, got: %q", res.stderr)
	}
}

func TestRoot_DefaultLevelKeepsStderrQuiet(t *testing.T) {
	res := execute(t, testServices(t), "pretty-print", "--data", "[1]")

	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if res.stderr != "" {
		t.Errorf("Expected no log output at the default level, got: %q", res.stderr)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	defer func() { rootCmd.Version = "" }()

	res := execute(t, testServices(t), "--version")

	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	for _, want := range []string{"rfext version 1.2.3", "commit: abc123", "built: 2026-01-01"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("Expected %q in version output, got: %s", want, res.stdout)
		}
	}
}
