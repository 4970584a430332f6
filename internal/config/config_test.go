package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xolan/rfext/internal/folder"
	"github.com/xolan/rfext/internal/logging"
	"github.com/xolan/rfext/internal/osutil"
	"github.com/xolan/rfext/internal/pathnorm"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.toml")
	// Always write the file, even if content is empty
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("DefaultConfig().LogLevel = %q, expected %q", cfg.LogLevel, "warn")
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("DefaultConfig().Theme = %q, expected %q", cfg.Theme, DefaultTheme)
	}
	if cfg.FolderPolicy() != folder.DefaultPolicy() {
		t.Errorf("DefaultConfig().FolderPolicy() = %+v, expected %+v", cfg.FolderPolicy(), folder.DefaultPolicy())
	}
	if cfg.PathOptions() != pathnorm.DefaultOptions() {
		t.Errorf("DefaultConfig().PathOptions() = %+v, expected %+v", cfg.PathOptions(), pathnorm.DefaultOptions())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid, got: %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		check         func(t *testing.T, cfg Config)
	}{
		{
			name: "all fields set",
			configContent: `log_level = "debug"
theme = "nord"

[folder]
delete_attempts = 6
create_attempts = 2
retry_delay = "250ms"

[path]
windows = true
reference_path = "/srv/data"
consider_blanks = true
expand_env_vars = false
mask = false`,
			check: func(t *testing.T, cfg Config) {
				want := folder.Policy{DeleteAttempts: 6, CreateAttempts: 2, Delay: 250 * time.Millisecond}
				if cfg.FolderPolicy() != want {
					t.Errorf("FolderPolicy() = %+v, expected %+v", cfg.FolderPolicy(), want)
				}
				wantOpts := pathnorm.Options{Windows: true, ReferencePath: "/srv/data", ConsiderBlanks: true}
				if cfg.PathOptions() != wantOpts {
					t.Errorf("PathOptions() = %+v, expected %+v", cfg.PathOptions(), wantOpts)
				}
				if cfg.LogLevel != "debug" || cfg.Theme != "nord" {
					t.Errorf("LogLevel/Theme = %q/%q, expected debug/nord", cfg.LogLevel, cfg.Theme)
				}
			},
		},
		{
			name:          "uppercase level is normalized",
			configContent: `log_level = "WARNING"`,
			check: func(t *testing.T, cfg Config) {
				if cfg.LogLevel != "warn" {
					t.Errorf("LogLevel = %q, expected %q", cfg.LogLevel, "warn")
				}
				if cfg.Level() != logging.WarnLevel {
					t.Errorf("Level() = %v, expected %v", cfg.Level(), logging.WarnLevel)
				}
			},
		},
		{
			name:          "zero retry delay",
			configContent: "[folder]\nretry_delay = \"0s\"",
			check: func(t *testing.T, cfg Config) {
				if cfg.Folder.RetryDelay.Duration != 0 {
					t.Errorf("RetryDelay = %v, expected 0", cfg.Folder.RetryDelay)
				}
			},
		},
		{
			name:          "windows reference path",
			configContent: "[path]\nreference_path = 'C:\\work'",
			check: func(t *testing.T, cfg Config) {
				if cfg.Path.ReferencePath != `C:\work` {
					t.Errorf("ReferencePath = %q, expected %q", cfg.Path.ReferencePath, `C:\work`)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			cfg, err := Load(tmpFile)
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	nonExistentFile := filepath.Join(tmpDir, "does_not_exist.toml")

	_, err := Load(nonExistentFile)
	if err == nil {
		t.Error("Load() should return error for non-existent file")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
	}{
		{
			name:          "malformed TOML",
			configContent: `log_level = "info`,
		},
		{
			name:          "invalid syntax",
			configContent: `this is not valid TOML at all`,
		},
		{
			name:          "missing quotes",
			configContent: `log_level = info`,
		},
		{
			name: "unclosed brackets",
			configContent: `[folder
delete_attempts = 4`,
		},
		{
			name:          "unparsable duration",
			configContent: "[folder]\nretry_delay = \"two seconds\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			_, err := Load(tmpFile)
			if err == nil {
				t.Fatal("Load() should return error for invalid TOML")
			}
			if !strings.Contains(err.Error(), "failed to parse config file") {
				t.Errorf("Error message should mention parsing failure, got: %v", err)
			}
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name           string
		configContent  string
		errorSubstring string
	}{
		{"unknown log level", `log_level = "loud"`, "LogLevel"},
		{"zero delete attempts", "[folder]\ndelete_attempts = 0", "DeleteAttempts"},
		{"too many create attempts", "[folder]\ncreate_attempts = 1000", "CreateAttempts"},
		{"negative delay", "[folder]\nretry_delay = \"-1s\"", "retry_delay"},
		{"huge delay", "[folder]\nretry_delay = \"1h\"", "retry_delay"},
		{"relative reference path", "[path]\nreference_path = \"rel/dir\"", "reference_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			_, err := Load(tmpFile)
			if err == nil {
				t.Fatal("Load() should return error for invalid value")
			}
			if !strings.Contains(err.Error(), tt.errorSubstring) {
				t.Errorf("Error should mention %q, got: %v", tt.errorSubstring, err)
			}
			if !strings.Contains(err.Error(), "invalid configuration") {
				t.Errorf("Error should be reported as invalid configuration, got: %v", err)
			}
		})
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	tmpFile := createTempConfigFile(t, "[folder]\ndelete_attempts = 9")

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	defaultCfg := DefaultConfig()
	if cfg.Folder.DeleteAttempts != 9 {
		t.Errorf("DeleteAttempts = %d, expected 9", cfg.Folder.DeleteAttempts)
	}
	if cfg.Folder.CreateAttempts != defaultCfg.Folder.CreateAttempts {
		t.Errorf("CreateAttempts = %d, expected default %d", cfg.Folder.CreateAttempts, defaultCfg.Folder.CreateAttempts)
	}
	if cfg.Folder.RetryDelay != defaultCfg.Folder.RetryDelay {
		t.Errorf("RetryDelay = %v, expected default %v", cfg.Folder.RetryDelay, defaultCfg.Folder.RetryDelay)
	}
	if cfg.PathOptions() != defaultCfg.PathOptions() {
		t.Errorf("PathOptions() = %+v, expected default %+v", cfg.PathOptions(), defaultCfg.PathOptions())
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	tmpFile := createTempConfigFile(t, "")

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() returned unexpected error for empty file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() of empty file = %+v, expected defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	tmpFile := createTempConfigFile(t, `log_level = "info"`)

	// Make file unreadable
	if err := os.Chmod(tmpFile, 0000); err != nil {
		t.Skipf("Cannot change file permissions: %v", err)
	}
	defer func() { _ = os.Chmod(tmpFile, 0644) }()
	if f, err := os.Open(tmpFile); err == nil {
		_ = f.Close()
		t.Skip("file is still readable (running as root)")
	}

	_, err := Load(tmpFile)
	if err == nil {
		t.Error("Load() should return error for unreadable file")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault() = %+v, expected defaults", cfg)
	}
}

func TestLoadOrDefault_ExistingValidFile(t *testing.T) {
	tmpFile := createTempConfigFile(t, `theme = "nord"`)

	cfg, err := LoadOrDefault(tmpFile)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error: %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, expected %q", cfg.Theme, "nord")
	}
}

func TestLoadOrDefault_ExistingInvalidFile(t *testing.T) {
	tmpFile := createTempConfigFile(t, `log_level = "loud"`)

	if _, err := LoadOrDefault(tmpFile); err == nil {
		t.Error("LoadOrDefault() should return error for invalid config, not defaults")
	}
}

func TestLoadOrDefault_StatError(t *testing.T) {
	tmpDir := t.TempDir()
	parentDir := filepath.Join(tmpDir, "parent")
	if err := os.Mkdir(parentDir, 0755); err != nil {
		t.Fatalf("Failed to create parent directory: %v", err)
	}

	configPath := filepath.Join(parentDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	// Make parent directory unreadable (this will cause stat to fail with permission error)
	if err := os.Chmod(parentDir, 0000); err != nil {
		t.Skipf("Cannot change directory permissions: %v", err)
	}
	defer func() { _ = os.Chmod(parentDir, 0755) }()
	if _, err := os.Stat(configPath); err == nil {
		t.Skip("stat still succeeds (running as root)")
	}

	if _, err := LoadOrDefault(configPath); err == nil {
		t.Error("LoadOrDefault() should return error when os.Stat fails with permission error")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		theme     string
		wantLevel string
		wantTheme string
	}{
		{"already normalized", "info", "nord", "info", "nord"},
		{"uppercase", "DEBUG", "Dracula", "debug", "dracula"},
		{"with spaces", "  error ", " nord ", "error", "nord"},
		{"warning alias", "Warning", "nord", "warn", "nord"},
		{"empty theme falls back", "info", "  ", "info", DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogLevel = tt.level
			cfg.Theme = tt.theme

			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Normalize()+Validate() returned unexpected error: %v", err)
			}
			if cfg.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %q, expected %q", cfg.LogLevel, tt.wantLevel)
			}
			if cfg.Theme != tt.wantTheme {
				t.Errorf("Theme = %q, expected %q", cfg.Theme, tt.wantTheme)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "nord"
	cfg.Folder.RetryDelay = Duration{1500 * time.Millisecond}
	cfg.Path.ReferencePath = "/srv"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() returned unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(data), "# rfext configuration file") {
		t.Errorf("Marshal() should start with header comment, got: %q", string(data)[:30])
	}
	if !strings.Contains(string(data), `retry_delay = "1.5s"`) {
		t.Errorf("Marshal() should write retry_delay as a duration string, got:\n%s", data)
	}

	tmpFile := createTempConfigFile(t, string(data))
	loaded, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() of marshaled config returned error: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Load(Marshal(cfg)) = %+v, expected %+v", loaded, cfg)
	}
}

func TestGenerateSampleConfig(t *testing.T) {
	content := GenerateSampleConfig()

	expectedStrings := []string{
		"# rfext configuration file",
		"[folder]",
		"[path]",
		"# log_level",
		"# theme",
		"# delete_attempts = 4",
		"# create_attempts = 3",
		`# retry_delay = "2s"`,
		"# expand_env_vars = true",
		"# mask = true",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(content, expected) {
			t.Errorf("GenerateSampleConfig() missing expected content: %q", expected)
		}
	}

	// An all-commented sample must load as the defaults.
	tmpFile := createTempConfigFile(t, content)
	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load() of sample config returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config = %+v, expected defaults", cfg)
	}
}

func TestGetConfigPath(t *testing.T) {
	defer osutil.ResetProvider()
	tmpDir := t.TempDir()
	osutil.SetProvider(&mockPathProvider{
		userConfigDirFn: func() (string, error) { return tmpDir, nil },
		mkdirAllFn:      os.MkdirAll,
	})

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned unexpected error: %v", err)
	}

	if filepath.Base(path) != ConfigFile {
		t.Errorf("GetConfigPath() path base = %q, expected %q", filepath.Base(path), ConfigFile)
	}

	parentDir := filepath.Dir(path)
	info, err := os.Stat(parentDir)
	if err != nil {
		t.Errorf("GetConfigPath() parent directory does not exist: %v", err)
	}
	if info != nil && !info.IsDir() {
		t.Error("GetConfigPath() parent is not a directory")
	}
	if filepath.Base(parentDir) != AppName {
		t.Errorf("GetConfigPath() parent directory = %q, expected %q", filepath.Base(parentDir), AppName)
	}
}

func TestConstants(t *testing.T) {
	if AppName != "rfext" {
		t.Errorf("AppName = %q, expected %q", AppName, "rfext")
	}
	if ConfigFile != "config.toml" {
		t.Errorf("ConfigFile = %q, expected %q", ConfigFile, "config.toml")
	}
}

func TestGetConfigPath_UserConfigDirError(t *testing.T) {
	defer osutil.ResetProvider()

	osutil.SetProvider(&mockPathProvider{
		userConfigDirFn: func() (string, error) {
			return "", os.ErrPermission
		},
	})

	if _, err := GetConfigPath(); err == nil {
		t.Error("GetConfigPath() should return error when UserConfigDir fails")
	}
}

func TestGetConfigPath_MkdirAllError(t *testing.T) {
	defer osutil.ResetProvider()

	tmpDir := t.TempDir()
	osutil.SetProvider(&mockPathProvider{
		userConfigDirFn: func() (string, error) {
			return tmpDir, nil
		},
		mkdirAllFn: func(path string, perm os.FileMode) error {
			return os.ErrPermission
		},
	})

	if _, err := GetConfigPath(); err == nil {
		t.Error("GetConfigPath() should return error when MkdirAll fails")
	}
}

// mockPathProvider is a test helper for mocking osutil.PathProvider
type mockPathProvider struct {
	userConfigDirFn func() (string, error)
	mkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *mockPathProvider) UserConfigDir() (string, error) {
	if m.userConfigDirFn != nil {
		return m.userConfigDirFn()
	}
	return "", nil
}

func (m *mockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.mkdirAllFn != nil {
		return m.mkdirAllFn(path, perm)
	}
	return nil
}
