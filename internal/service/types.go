// Package service provides the business logic layer for rfext.
// It wraps the folder, pathnorm, prettyprint and config packages,
// providing a clean API for the CLI, the keyword library and the TUI.
package service

import (
	"github.com/xolan/rfext/internal/pathnorm"
)

// Result is the outcome of a folder operation: a success flag and the
// message reported by the folder handle.
type Result struct {
	Success bool
	Message string
}

// PathOverrides holds per-call normalization options. A nil field keeps the
// configured default.
type PathOverrides struct {
	Windows        *bool
	ReferencePath  *string
	ConsiderBlanks *bool
	ExpandEnvVars  *bool
	Mask           *bool
}

// Apply returns base with every non-nil override applied.
func (o PathOverrides) Apply(base pathnorm.Options) pathnorm.Options {
	if o.Windows != nil {
		base.Windows = *o.Windows
	}
	if o.ReferencePath != nil {
		base.ReferencePath = *o.ReferencePath
	}
	if o.ConsiderBlanks != nil {
		base.ConsiderBlanks = *o.ConsiderBlanks
	}
	if o.ExpandEnvVars != nil {
		base.ExpandEnvVars = *o.ExpandEnvVars
	}
	if o.Mask != nil {
		base.Mask = *o.Mask
	}
	return base
}

// Format names an input encoding for structured data.
type Format string

// Supported data formats. FormatAuto picks one from the file extension or,
// failing that, from the content.
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)
