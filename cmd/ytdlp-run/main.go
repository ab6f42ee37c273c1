// Command ytdlp-run runs one download with the same runner the GUI uses and
// prints the downloader output to the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ytget/ytdlp-shell/internal/config"
	"github.com/ytget/ytdlp-shell/internal/download"
	"github.com/ytget/ytdlp-shell/internal/model"
)

const usage = "usage: ytdlp-run <url> [output-dir]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 2 for usage or configuration errors,
// 1 when the downloader cannot be started, otherwise the downloader's own.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 2
	}

	outputDir := cfg.OutputDir
	if len(args) == 2 {
		outputDir = args[1]
	}

	req := model.NewRequest(args[0], outputDir)
	if req.URL == "" {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	runner := download.NewRunner(cfg.Binary, cfg.LineBuffer)
	proc, err := runner.Start(context.Background(), req)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	for line := range proc.Lines() {
		if line.Source == model.SourceStderr {
			fmt.Fprintln(stderr, line.Text)
		} else {
			fmt.Fprintln(stdout, line.Text)
		}
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "downloader failed: %v\n", err)
		return 1
	}
	return 0
}
