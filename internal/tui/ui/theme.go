package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"

	"github.com/xolan/rfext/internal/config"
)

// DefaultTheme is used when the configured theme is empty or unknown
const DefaultTheme = config.DefaultTheme

// ThemeProvider wraps a bubbletint registry holding every built-in tint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a provider positioned on initialTheme, or on
// DefaultTheme when initialTheme is empty or not a known tint ID.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, all...)}
	if initialTheme != "" {
		tp.registry.SetTintID(initialTheme)
	}
	return tp
}

// SetTheme switches to the named tint and reports whether it exists.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme advances to the next tint and returns its ID.
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTheme steps back one tint and returns its ID.
func (tp *ThemeProvider) PreviousTheme() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns every tint ID in sorted order.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// IndexOf returns the position of name within AvailableThemes, or -1.
func (tp *ThemeProvider) IndexOf(name string) int {
	themes := tp.AvailableThemes()
	i := sort.SearchStrings(themes, name)
	if i < len(themes) && themes[i] == name {
		return i
	}
	return -1
}

func (tp *ThemeProvider) Registry() *tint.Registry {
	return tp.registry
}

// Styles returns styles for the current tint.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
