package model

// RunStatus represents whether a download process is in flight
type RunStatus string

const (
	// RunStatusIdle means no download is running and a new one may be submitted
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means one downloader process is active
	RunStatusRunning RunStatus = "Running"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if a downloader process is in flight
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// StatusOf maps the busy flag to a RunStatus
func StatusOf(busy bool) RunStatus {
	if busy {
		return RunStatusRunning
	}
	return RunStatusIdle
}
