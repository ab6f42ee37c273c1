package download

import "fmt"

// SpawnError reports that the downloader binary could not be located or started
type SpawnError struct {
	Binary string
	Err    error
}

// Error returns the error message
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Binary, e.Err)
}

// Unwrap exposes the os/exec cause, e.g. exec.ErrNotFound
func (e *SpawnError) Unwrap() error {
	return e.Err
}
