package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	DetailSeparator = ": "
)

// Layout sizing
const (
	LogPanelMinWidth  float32 = 400
	LogPanelMinHeight float32 = 256
	LogoSize          float32 = 32
)

// LogRefreshInterval limits log panel redraws while a download runs
const LogRefreshInterval = 100 * time.Millisecond
