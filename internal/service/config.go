package service

import (
	"fmt"
	"os"

	"github.com/xolan/rfext/internal/config"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the configuration the services currently run with.
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the file Init and Update write to. It need not exist.
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists reports whether a config file is present. A directory sitting at
// the config path does not count.
func (s *ConfigService) Exists() bool {
	info, err := os.Stat(s.configPath)
	return err == nil && info.Mode().IsRegular()
}

// Update validates cfg and writes it to the config file, keeping the
// previous file as backup 1. Services reading the config pick up the
// change on their next call.
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Backup(s.configPath); err != nil {
		return fmt.Errorf("failed to back up config: %w", err)
	}
	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Backups returns the backup files of the config, most recent first.
func (s *ConfigService) Backups() []string {
	return config.ListBackups(s.configPath)
}

// Init writes the commented sample config and switches to the values it
// holds. An existing file is never replaced.
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}
	if err := os.WriteFile(s.configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("sample config does not load: %w", err)
	}
	s.config = cfg
	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.config = cfg
	return nil
}

// writeConfig writes the config to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	content, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.configPath, content, 0644)
}
