package ui

import "github.com/renato0307/swatch/internal/domain"

// themeLoadedMsg is sent once stored preferences have been read
type themeLoadedMsg struct {
	Err error
}

// colorSavedMsg reports the outcome of persisting a picked color
type colorSavedMsg struct {
	Err  error
	Hex  string
	Role domain.ColorRole
}

// darkModeChangedMsg reports the outcome of toggling dark mode
type darkModeChangedMsg struct {
	DarkMode bool
	Err      error
}

// colorsResetMsg reports the outcome of dropping the overrides
type colorsResetMsg struct {
	Err error
}

// hexEnteredMsg carries a value typed into the hex form
type hexEnteredMsg struct {
	Hex string
}
