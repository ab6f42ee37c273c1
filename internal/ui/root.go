package ui

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytdlp-shell/internal/config"
	"github.com/ytget/ytdlp-shell/internal/platform"
	"github.com/ytget/ytdlp-shell/internal/session"
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	ctrl         *session.Controller
	localization *Localization

	urlEntry      *widget.Entry
	downloadBtn   *widget.Button
	folderBtn     *widget.Button
	openFolderBtn *widget.Button
	pathLabel     *widget.Label
	noticeLabel   *widget.Label
	spinner       *widget.ProgressBarInfinite
	logLabel      *widget.Label
	logScroll     *container.Scroll

	// last rendered state, used to detect transitions
	wasBusy bool

	// log text built incrementally from the controller log
	logText        strings.Builder
	appendedLines  int
	lastLogDraw    time.Time
	flushScheduled bool
}

// NewRootUI builds the window content and subscribes it to ctrl. It must be
// called on the UI goroutine.
func NewRootUI(window fyne.Window, ctrl *session.Controller, localization *Localization) *RootUI {
	ui := &RootUI{
		window:       window,
		ctrl:         ctrl,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ctrl.OnChange(ui.render)
	ui.render(ctrl.State())

	log.Printf("UI setup completed successfully")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.ctrl.SetURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDownload), theme.DownloadIcon(), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.folderBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeySelectFolder), theme.FolderOpenIcon(), ui.onSelectFolder)
	ui.openFolderBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenFolder), theme.FolderIcon(), ui.onOpenFolder)
	ui.openFolderBtn.Importance = widget.LowImportance

	ui.pathLabel = widget.NewLabel("")
	ui.pathLabel.Wrapping = fyne.TextWrapBreak

	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Wrapping = fyne.TextWrapWord
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.logLabel = widget.NewLabel("")
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logLabel.Wrapping = fyne.TextWrapBreak
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(LogPanelMinWidth, LogPanelMinHeight))
	ui.logScroll.Hide()

	var urlRow *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		urlRow = container.NewBorder(nil, nil, logoImage, nil, ui.urlEntry)
	} else {
		urlRow = container.NewBorder(nil, nil, nil, nil, ui.urlEntry)
	}

	top := container.NewVBox(
		urlRow,
		container.NewBorder(nil, nil, nil, ui.openFolderBtn, ui.folderBtn),
		ui.pathLabel,
		ui.downloadBtn,
		ui.spinner,
		ui.noticeLabel,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.logScroll))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	languages := config.GetLanguageOptions()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		code := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language for this run only
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.folderBtn.SetText(ui.localization.GetText(KeySelectFolder))
	ui.openFolderBtn.SetText(ui.localization.GetText(KeyOpenFolder))

	// Recreate menu to update checkmarks
	ui.createMenu()
	ui.render(ui.ctrl.State())
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	ui.ctrl.SetURL(ui.urlEntry.Text)

	err := ui.ctrl.Submit()
	switch {
	case err == nil:
	case errors.Is(err, session.ErrBusy):
		log.Printf("Download already running, ignoring submit")
	case errors.Is(err, session.ErrEmptyURL):
		log.Printf("Submit with empty URL")
	default:
		log.Printf("Failed to start download: %v", err)
	}
}

// onSelectFolder shows the native folder picker
func (ui *RootUI) onSelectFolder() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder selection failed: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.ctrl.SetOutputDir(uri.Path())
	}, ui.window)

	if start := platform.BrowseStartDir(ui.ctrl.State().OutputDir); start != "" {
		if location, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			picker.SetLocation(location)
		}
	}

	picker.Show()
}

// onOpenFolder reveals the output folder in the system file manager
func (ui *RootUI) onOpenFolder() {
	dir := ui.ctrl.State().OutputDir
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Error opening folder %s: %v", dir, err)
		dialog.ShowError(fmt.Errorf("%s%s%w", ui.localization.GetText(KeyErrorOpeningFolder), DetailSeparator, err), ui.window)
	}
}

// render applies a controller state to the widgets
func (ui *RootUI) render(s session.State) {
	running := s.Status().IsActive()
	if running {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDownloading))
		ui.downloadBtn.Disable()
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
		ui.downloadBtn.Enable()
		ui.spinner.Stop()
		ui.spinner.Hide()
	}

	ui.pathLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyCurrentOutputPath), platform.DisplayPath(s.OutputDir)))

	ui.noticeLabel.SetText(ui.noticeText(s.Notice))
	if s.Notice.Kind.IsError() {
		ui.noticeLabel.Importance = widget.DangerImportance
	} else {
		ui.noticeLabel.Importance = widget.MediumImportance
	}
	ui.noticeLabel.Refresh()

	ui.renderLog(s)

	if ui.wasBusy && !running && s.Notice.Kind == session.NoticeFinished {
		ui.sendCompletionNotification(s)
	}
	ui.wasBusy = running
}

// renderLog appends new lines to the log text. While a download runs the
// label is redrawn at most once per LogRefreshInterval.
func (ui *RootUI) renderLog(s session.State) {
	reset := len(s.Log) < ui.appendedLines
	if reset {
		ui.logText.Reset()
		ui.appendedLines = 0
	}

	for _, line := range s.Log[ui.appendedLines:] {
		if ui.logText.Len() > 0 {
			ui.logText.WriteByte('\n')
		}
		ui.logText.WriteString(progressFrame(line))
	}
	ui.appendedLines = len(s.Log)

	if reset || !s.Status().IsActive() || time.Since(ui.lastLogDraw) >= LogRefreshInterval {
		ui.flushLog()
		return
	}

	if !ui.flushScheduled {
		ui.flushScheduled = true
		time.AfterFunc(LogRefreshInterval, func() {
			fyne.Do(ui.flushLog)
		})
	}
}

// flushLog shows the buffered log text and keeps the newest line visible
func (ui *RootUI) flushLog() {
	ui.flushScheduled = false
	ui.lastLogDraw = time.Now()

	text := ui.logText.String()
	if text == ui.logLabel.Text && ui.logScroll.Visible() == (ui.appendedLines > 0) {
		return
	}

	ui.logLabel.SetText(text)
	if ui.appendedLines == 0 {
		ui.logScroll.Hide()
		return
	}
	ui.logScroll.Show()
	ui.logScroll.ScrollToBottom()
}

// progressFrame returns what a terminal would show for a line redrawn with
// carriage returns: the text after the last one.
func progressFrame(line string) string {
	line = strings.TrimRight(line, "\r")
	if i := strings.LastIndexByte(line, '\r'); i >= 0 {
		return line[i+1:]
	}
	return line
}

// noticeText returns the localized message for n
func (ui *RootUI) noticeText(n session.Notice) string {
	var key string
	switch n.Kind {
	case session.NoticeEmptyURL:
		key = KeyPleaseEnterURL
	case session.NoticeStarted:
		key = KeyDownloadStarted
	case session.NoticeFinished:
		key = KeyDownloadCompleted
	case session.NoticeFailed:
		key = KeyDownloadFailed
	case session.NoticeSpawnFailed:
		key = KeyDownloaderNotFound
	default:
		return ""
	}

	text := ui.localization.GetText(key)
	if n.Detail != "" {
		text += DetailSeparator + n.Detail
	}
	return text
}

// sendCompletionNotification sends a system notification for a finished download
func (ui *RootUI) sendCompletionNotification(s session.State) {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.SendNotification(fyne.NewNotification(ui.localization.GetText(KeyDownloadCompleted), s.Request.URL))
}
