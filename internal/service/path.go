package service

import (
	"github.com/xolan/rfext/internal/pathnorm"
)

// PathService normalizes paths with the configured defaults.
type PathService struct {
	config *ConfigService
}

// NewPathService creates a new PathService
func NewPathService(cfg *ConfigService) *PathService {
	return &PathService{config: cfg}
}

// Options returns the configured options with o applied on top.
func (s *PathService) Options(o PathOverrides) pathnorm.Options {
	return o.Apply(s.config.Get().PathOptions())
}

// Normalize normalizes p with the configured options and o applied on top.
func (s *PathService) Normalize(p string, o PathOverrides) string {
	return pathnorm.Normalize(p, s.Options(o))
}
