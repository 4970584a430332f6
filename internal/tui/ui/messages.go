package ui

// ThemeChangeRequestMsg is sent when a view asks for a different theme.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// StatusMsg replaces the status bar notice. An empty Text clears it.
type StatusMsg struct {
	Text  string
	Error bool
}
