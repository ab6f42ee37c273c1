package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/ytdlp-shell/internal/download"
	"github.com/ytget/ytdlp-shell/internal/model"
	"github.com/ytget/ytdlp-shell/internal/session"
)

// pipeStarter serves processes whose output the test writes
type pipeStarter struct {
	mu     sync.Mutex
	calls  int
	stdout *io.PipeWriter
	stderr *io.PipeWriter
}

func (p *pipeStarter) Start(ctx context.Context, req model.Request) (*download.Process, error) {
	outR, outW := io.Pipe()
	errR, errW := io.Pipe()

	p.mu.Lock()
	p.calls++
	p.stdout, p.stderr = outW, errW
	p.mu.Unlock()

	return download.Attach(ctx, outR, errR, nil, 4), nil
}

func (p *pipeStarter) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newTestUI(t *testing.T, starter download.Starter) *RootUI {
	t.Helper()

	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow("test")
	ctrl := session.New(context.Background(), starter, fyne.Do, t.TempDir())
	return NewRootUI(w, ctrl, NewLocalization())
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Condition not met in time")
}

func TestRootUI_InitialState(t *testing.T) {
	ui := newTestUI(t, &pipeStarter{})

	if ui.downloadBtn.Disabled() {
		t.Error("Expected download button to be enabled")
	}
	if ui.downloadBtn.Text != "Download" {
		t.Errorf("Expected button text 'Download', got '%s'", ui.downloadBtn.Text)
	}
	if !strings.HasPrefix(ui.pathLabel.Text, "Current output path: ") {
		t.Errorf("Unexpected path label '%s'", ui.pathLabel.Text)
	}
	if ui.logScroll.Visible() {
		t.Error("Expected log panel to be hidden while empty")
	}
}

func TestRootUI_EmptyURL(t *testing.T) {
	starter := &pipeStarter{}
	ui := newTestUI(t, starter)

	test.Type(ui.urlEntry, "   ")
	test.Tap(ui.downloadBtn)

	if ui.noticeLabel.Text != ui.localization.GetText(KeyPleaseEnterURL) {
		t.Errorf("Expected validation message, got '%s'", ui.noticeLabel.Text)
	}
	if ui.downloadBtn.Disabled() {
		t.Error("Expected download button to stay enabled")
	}
	if starter.callCount() != 0 {
		t.Errorf("Expected no process, got %d", starter.callCount())
	}
}

func TestRootUI_DownloadScenario(t *testing.T) {
	starter := &pipeStarter{}
	ui := newTestUI(t, starter)

	test.Type(ui.urlEntry, "https://example.com/v")
	test.Tap(ui.downloadBtn)

	if !ui.downloadBtn.Disabled() {
		t.Fatal("Expected download button to be disabled while running")
	}
	if ui.downloadBtn.Text != "Downloading..." {
		t.Errorf("Expected 'Downloading...', got '%s'", ui.downloadBtn.Text)
	}

	// A second submission while running must not start another process
	ui.onDownloadClick()
	if starter.callCount() != 1 {
		t.Fatalf("Expected 1 process, got %d", starter.callCount())
	}

	fmt.Fprintln(starter.stdout, "[download] 10%")
	fmt.Fprintln(starter.stderr, "WARNING: foo")
	fmt.Fprintln(starter.stdout, "[download] 100%")
	starter.stdout.Close()
	starter.stderr.Close()

	waitFor(t, func() bool { return !ui.downloadBtn.Disabled() })

	text := ui.logLabel.Text
	for _, line := range []string{"[download] 10%", "WARNING: foo", "[download] 100%"} {
		if !strings.Contains(text, line) {
			t.Errorf("Expected log to contain %q, got %q", line, text)
		}
	}
	if strings.Index(text, "[download] 10%") > strings.Index(text, "[download] 100%") {
		t.Errorf("Expected stdout order to be kept, got %q", text)
	}

	if ui.noticeLabel.Text != ui.localization.GetText(KeyDownloadCompleted) {
		t.Errorf("Expected completion notice, got '%s'", ui.noticeLabel.Text)
	}
	if ui.downloadBtn.Text != "Download" {
		t.Errorf("Expected button text 'Download', got '%s'", ui.downloadBtn.Text)
	}
}

func TestRootUI_SpawnFailure(t *testing.T) {
	ui := newTestUI(t, download.NewRunner("ytgui-no-such-downloader-binary", 1))

	test.Type(ui.urlEntry, "https://example.com/v")
	test.Tap(ui.downloadBtn)

	if ui.downloadBtn.Disabled() {
		t.Error("Expected download button to be enabled after spawn failure")
	}
	if !strings.HasPrefix(ui.noticeLabel.Text, ui.localization.GetText(KeyDownloaderNotFound)) {
		t.Errorf("Expected spawn failure notice, got '%s'", ui.noticeLabel.Text)
	}
}

func TestRootUI_OutputDirLabel(t *testing.T) {
	ui := newTestUI(t, &pipeStarter{})
	dir := t.TempDir()

	ui.ctrl.SetOutputDir(dir)

	if !strings.HasSuffix(ui.pathLabel.Text, dir) {
		t.Errorf("Expected path label to end with %s, got '%s'", dir, ui.pathLabel.Text)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestUI(t, &pipeStarter{})

	ui.onLanguageChange("ru")

	if ui.downloadBtn.Text != "Скачать" {
		t.Errorf("Expected Russian button text, got '%s'", ui.downloadBtn.Text)
	}
	if ui.folderBtn.Text != "Выбрать папку" {
		t.Errorf("Expected Russian folder button text, got '%s'", ui.folderBtn.Text)
	}
	if !strings.HasPrefix(ui.pathLabel.Text, "Текущая папка: ") {
		t.Errorf("Expected Russian path label, got '%s'", ui.pathLabel.Text)
	}
}

func TestNoticeText(t *testing.T) {
	ui := &RootUI{localization: NewLocalization()}

	tests := []struct {
		notice   session.Notice
		expected string
	}{
		{session.Notice{}, ""},
		{session.Notice{Kind: session.NoticeEmptyURL}, "Please enter a YouTube URL."},
		{session.Notice{Kind: session.NoticeStarted}, "Download started..."},
		{session.Notice{Kind: session.NoticeFailed, Detail: "exit status 1"}, "Download failed: exit status 1"},
	}

	for _, test := range tests {
		if got := ui.noticeText(test.notice); got != test.expected {
			t.Errorf("noticeText(%v) = %q, expected %q", test.notice, got, test.expected)
		}
	}
}

func TestRootUI_LogRendering(t *testing.T) {
	ui := newTestUI(t, &pipeStarter{})

	ui.render(session.State{Busy: true, Log: []string{"one"}})
	if ui.logLabel.Text != "one" || !ui.logScroll.Visible() {
		t.Fatalf("Expected first line to be shown at once, got %q", ui.logLabel.Text)
	}

	// Redraws while running are batched
	ui.render(session.State{Busy: true, Log: []string{"one", "two"}})
	if ui.logLabel.Text != "one" && ui.logLabel.Text != "one\ntwo" {
		t.Errorf("Unexpected log text %q", ui.logLabel.Text)
	}
	waitFor(t, func() bool {
		var text string
		fyne.DoAndWait(func() { text = ui.logLabel.Text })
		return text == "one\ntwo"
	})

	ui.render(session.State{Busy: false, Log: []string{"one", "two", "three"}})
	if ui.logLabel.Text != "one\ntwo\nthree" {
		t.Errorf("Expected all lines once idle, got %q", ui.logLabel.Text)
	}

	// A new run starts with an empty log
	ui.render(session.State{Busy: true})
	if ui.logLabel.Text != "" || ui.logScroll.Visible() {
		t.Errorf("Expected log to be cleared and hidden, got %q", ui.logLabel.Text)
	}
}

func TestRootUI_LogShowsLatestProgressFrame(t *testing.T) {
	ui := newTestUI(t, &pipeStarter{})

	ui.render(session.State{Log: []string{"[download]  10.0%\r[download] 100.0%", "done"}})

	if ui.logLabel.Text != "[download] 100.0%\ndone" {
		t.Errorf("Expected latest progress frame, got %q", ui.logLabel.Text)
	}
}

func TestProgressFrame(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a\rb", "b"},
		{"a\rb\rc", "c"},
		{"frame\r", "frame"},
		{"\r\r", ""},
	}

	for _, test := range tests {
		if got := progressFrame(test.input); got != test.expected {
			t.Errorf("progressFrame(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
