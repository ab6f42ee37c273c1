package download

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/ytget/ytdlp-shell/internal/model"
)

// Stream reading constants
const (
	DefaultLineBuffer = 100
	MaxLineLength     = 1024 * 1024
)

// Process is a started downloader whose output is being drained
type Process struct {
	lines chan model.Line
	done  chan struct{}
	err   error
}

// Attach starts draining stdout and stderr into a single line channel.
// wait is called once both readers reach EOF; its result is returned by Wait.
// A nil reader is treated as an already closed stream.
func Attach(ctx context.Context, stdout, stderr io.Reader, wait func() error, buffer int) *Process {
	if buffer < 1 {
		buffer = DefaultLineBuffer
	}

	p := &Process{
		lines: make(chan model.Line, buffer),
		done:  make(chan struct{}),
	}

	var readers sync.WaitGroup
	var dropped sync.Once

	streams := []struct {
		r      io.Reader
		source model.Source
	}{
		{stdout, model.SourceStdout},
		{stderr, model.SourceStderr},
	}
	for _, s := range streams {
		if s.r == nil {
			continue
		}
		readers.Add(1)
		go func(r io.Reader, source model.Source) {
			defer readers.Done()
			p.drain(ctx, r, source, &dropped)
		}(s.r, s.source)
	}

	go func() {
		readers.Wait()
		if wait != nil {
			p.err = wait()
		}
		close(p.lines)
		close(p.done)
	}()

	return p
}

// Lines returns the merged output channel. It is closed after both streams
// end and the process has exited. Lines of one stream keep their order.
func (p *Process) Lines() <-chan model.Line {
	return p.lines
}

// Wait blocks until the output is exhausted and returns the exit error
func (p *Process) Wait() error {
	<-p.done
	return p.err
}

// drain forwards every line of r. Once ctx is done lines are discarded but
// the stream is still read to EOF.
func (p *Process) drain(ctx context.Context, r io.Reader, source model.Source, dropped *sync.Once) {
	err := ReadLines(r, func(text string) {
		select {
		case p.lines <- model.Line{Source: source, Text: text}:
		case <-ctx.Done():
			dropped.Do(func() {
				log.Printf("Output receiver gone, discarding remaining downloader output: %v", ctx.Err())
			})
		}
	})
	if err == nil {
		return
	}

	log.Printf("Failed to read downloader %s: %v", source, err)
	if _, err := io.Copy(io.Discard, r); err != nil {
		log.Printf("Failed to discard downloader %s: %v", source, err)
	}
}

// ReadLines calls fn for every line of r until EOF. Lines end at '\n' and
// a '\r' directly before it is removed; any other byte, a lone '\r'
// included, is kept. A line longer than MaxLineLength is passed to fn in
// pieces of at most MaxLineLength bytes.
func ReadLines(r io.Reader, fn func(text string)) error {
	reader := bufio.NewReaderSize(r, MaxLineLength)
	continued := false

	for {
		chunk, err := reader.ReadSlice('\n')
		switch {
		case err == nil:
			text := trimLineEnd(chunk)
			// the rest of an oversized line was only its terminator
			if !(continued && len(text) == 0) {
				fn(string(text))
			}
			continued = false
		case errors.Is(err, bufio.ErrBufferFull):
			fn(string(chunk))
			continued = true
		case errors.Is(err, io.EOF):
			if len(chunk) > 0 {
				fn(string(chunk))
			}
			return nil
		default:
			if len(chunk) > 0 {
				fn(string(chunk))
			}
			return err
		}
	}
}

func trimLineEnd(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
