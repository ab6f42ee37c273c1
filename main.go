package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/ytdlp-shell/internal/config"
	"github.com/ytget/ytdlp-shell/internal/download"
	"github.com/ytget/ytdlp-shell/internal/session"
	"github.com/ytget/ytdlp-shell/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytdlp-shell"
	AppName = "yt-dlp shell"

	WindowWidth  = 640
	WindowHeight = 480
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow, _ := newMainWindow(myApp, cfg)
	myWindow.ShowAndRun()
}

// newMainWindow wires the runner, controller and UI into a new window. The
// returned context is cancelled when the window closes: a running
// downloader keeps going, its remaining output is drained and dropped.
func newMainWindow(a fyne.App, cfg *config.Config) (fyne.Window, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())

	myWindow := a.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	runner := download.NewRunner(cfg.Binary, cfg.LineBuffer)
	ctrl := session.New(ctx, runner, fyne.Do, cfg.OutputDir)

	localization := ui.NewLocalization()
	localization.SetLanguage(cfg.Language)

	ui.NewRootUI(myWindow, ctrl, localization)
	myWindow.SetOnClosed(cancel)

	log.Printf("using downloader %q, output dir %q", runner.Binary(), cfg.OutputDir)
	return myWindow, ctx
}
