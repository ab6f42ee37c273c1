package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "ytdlp-shell.png"
)

// LoadLogoResource loads the window icon from the working directory. The
// icon is optional and callers fall back to no logo on error.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
