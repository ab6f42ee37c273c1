package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDPrefix prefixes every request ID so log lines are easy to grep
const RequestIDPrefix = "dl-"

// Request is a single download submitted by the user. It is not modified
// after creation.
type Request struct {
	ID        string
	URL       string
	OutputDir string
	CreatedAt time.Time
}

// NewRequest creates a request for url saved into outputDir
func NewRequest(url, outputDir string) Request {
	return Request{
		ID:        generateRequestID(),
		URL:       strings.TrimSpace(url),
		OutputDir: outputDir,
		CreatedAt: time.Now(),
	}
}

// String returns a short description used in log records
func (r Request) String() string {
	return fmt.Sprintf("%s url=%s dir=%s", r.ID, r.URL, r.OutputDir)
}

// generateRequestID uses UUID v7 so IDs sort by creation time
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
