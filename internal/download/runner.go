package download

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"

	"github.com/ytget/ytdlp-shell/internal/model"
)

// yt-dlp invocation constants
const (
	OutputFlag       = "-o"
	FilenameTemplate = "%(title)s.%(ext)s"
)

// Runner launches the downloader binary, one process per request
type Runner struct {
	binary     string
	lineBuffer int
}

// NewRunner creates a runner for binary. A bare name is resolved on PATH at
// every Start so installing yt-dlp while the app is open works.
func NewRunner(binary string, lineBuffer int) *Runner {
	if lineBuffer < 1 {
		lineBuffer = DefaultLineBuffer
	}
	return &Runner{
		binary:     binary,
		lineBuffer: lineBuffer,
	}
}

// Binary returns the configured binary name or path
func (r *Runner) Binary() string {
	return r.binary
}

// Args builds the downloader arguments for req
func (r *Runner) Args(req model.Request) []string {
	return []string{
		req.URL,
		OutputFlag, filepath.Join(req.OutputDir, FilenameTemplate),
	}
}

// Start spawns the downloader for req. The process is not tied to ctx and
// always runs to completion; ctx only stops delivery of its output.
func (r *Runner) Start(ctx context.Context, req model.Request) (*Process, error) {
	path, err := exec.LookPath(r.binary)
	if err != nil {
		return nil, &SpawnError{Binary: r.binary, Err: err}
	}

	cmd := exec.Command(path, r.Args(req)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Binary: r.binary, Err: fmt.Errorf("failed to create stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &SpawnError{Binary: r.binary, Err: fmt.Errorf("failed to create stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Binary: r.binary, Err: err}
	}

	log.Printf("Started %s (pid %d) for request %s", path, cmd.Process.Pid, req)

	return Attach(ctx, stdout, stderr, cmd.Wait, r.lineBuffer), nil
}
