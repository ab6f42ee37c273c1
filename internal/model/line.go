package model

// Source identifies the process stream a line was read from
type Source int

const (
	SourceStdout Source = iota
	SourceStderr
)

// String returns the conventional stream name
func (s Source) String() string {
	switch s {
	case SourceStdout:
		return "stdout"
	case SourceStderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Line is one line of downloader output. Text is passed through untouched
// apart from the removed line terminator.
type Line struct {
	Source Source
	Text   string
}
