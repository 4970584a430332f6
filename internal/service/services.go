package service

import (
	"github.com/xolan/rfext/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Folder *FolderService
	Path   *PathService
	Print  *PrintService
	Config *ConfigService
}

// NewServices creates a new Services instance with the default config path
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	return NewServicesFromFile(configPath)
}

// NewServicesFromFile loads the config at configPath (defaults if missing)
// and creates a Services instance around it.
func NewServicesFromFile(configPath string) (*Services, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	return NewServicesWithConfig(configPath, cfg), nil
}

// NewServicesWithConfig creates a new Services instance with a custom config (useful for testing).
// The folder service owns the single ownership registry for the process.
func NewServicesWithConfig(configPath string, cfg config.Config) *Services {
	configService := NewConfigService(configPath, cfg)

	return &Services{
		Folder: NewFolderService(configService),
		Path:   NewPathService(configService),
		Print:  NewPrintService(),
		Config: configService,
	}
}
