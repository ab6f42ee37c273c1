package session

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/ytget/ytdlp-shell/internal/download"
	"github.com/ytget/ytdlp-shell/internal/model"
)

var (
	// ErrEmptyURL is returned by Submit when the URL is blank
	ErrEmptyURL = errors.New("url is empty")

	// ErrBusy is returned by Submit while a download is running
	ErrBusy = errors.New("a download is already running")
)

// Dispatcher runs fn on the goroutine that owns the controller state.
// Calls must execute in the order they were made.
type Dispatcher func(fn func())

// State is a copy of the controller state handed to observers
type State struct {
	URL       string
	OutputDir string
	Busy      bool
	Log       []string
	Notice    Notice
	Request   model.Request
}

// Status returns the run status derived from the busy flag
func (s State) Status() model.RunStatus {
	return model.StatusOf(s.Busy)
}

// Controller drives at most one download at a time. Every method except
// New must be called on the dispatcher goroutine.
type Controller struct {
	ctx      context.Context
	starter  download.Starter
	dispatch Dispatcher
	state    State
	onChange []func(State)
}

// New creates a controller in the Idle state
func New(ctx context.Context, starter download.Starter, dispatch Dispatcher, outputDir string) *Controller {
	return &Controller{
		ctx:      ctx,
		starter:  starter,
		dispatch: dispatch,
		state:    State{OutputDir: outputDir},
	}
}

// OnChange registers fn to be called after every state change. The Log
// slice passed to fn is shared and must not be modified.
func (c *Controller) OnChange(fn func(State)) {
	c.onChange = append(c.onChange, fn)
}

// State returns a copy of the current state
func (c *Controller) State() State {
	s := c.state
	s.Log = append([]string(nil), c.state.Log...)
	return s
}

// SetURL updates the URL field
func (c *Controller) SetURL(url string) {
	c.state.URL = url
}

// SetOutputDir updates the output directory used by the next submission
func (c *Controller) SetOutputDir(dir string) {
	if dir == "" || dir == c.state.OutputDir {
		return
	}
	c.state.OutputDir = dir
	c.notify()
}

// Submit starts a download for the current URL and output directory.
// It returns ErrBusy while running, ErrEmptyURL for a blank URL and the
// *download.SpawnError when the downloader could not be started.
func (c *Controller) Submit() error {
	if c.state.Busy {
		return ErrBusy
	}

	if strings.TrimSpace(c.state.URL) == "" {
		c.state.Notice = Notice{Kind: NoticeEmptyURL}
		c.notify()
		return ErrEmptyURL
	}

	req := model.NewRequest(c.state.URL, c.state.OutputDir)
	c.state.Busy = true
	c.state.Log = nil
	c.state.Request = req
	c.state.Notice = Notice{Kind: NoticeStarted}
	c.notify()

	log.Printf("Starting download %s: %s", req, c.state.Status())

	proc, err := c.starter.Start(c.ctx, req)
	if err != nil {
		c.state.Busy = false
		c.state.Notice = Notice{Kind: NoticeSpawnFailed, Detail: err.Error()}
		log.Printf("Download %s %s, %s: %v", req.ID, c.state.Notice.Kind, c.state.Status(), err)
		c.notify()
		return err
	}

	go c.pump(req, proc)

	return nil
}

// pump forwards process output to the dispatcher goroutine
func (c *Controller) pump(req model.Request, proc *download.Process) {
	for line := range proc.Lines() {
		line := line
		c.dispatch(func() {
			c.appendLine(line.Text)
		})
	}

	err := proc.Wait()
	c.dispatch(func() {
		c.finish(req, err)
	})
}

func (c *Controller) appendLine(text string) {
	c.state.Log = append(c.state.Log, text)
	c.notify()
}

func (c *Controller) finish(req model.Request, err error) {
	c.state.Busy = false
	c.state.Notice = Notice{Kind: NoticeFinished}
	if err != nil {
		c.state.Notice = Notice{Kind: NoticeFailed, Detail: err.Error()}
	}
	if err != nil {
		log.Printf("Download %s %s after %d lines, %s: %v", req.ID, c.state.Notice.Kind, len(c.state.Log), c.state.Status(), err)
	} else {
		log.Printf("Download %s %s after %d lines, %s", req.ID, c.state.Notice.Kind, len(c.state.Log), c.state.Status())
	}
	c.notify()
}

func (c *Controller) notify() {
	if len(c.onChange) == 0 {
		return
	}
	for _, fn := range c.onChange {
		fn(c.state)
	}
}
