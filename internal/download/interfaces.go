package download

import (
	"context"

	"github.com/ytget/ytdlp-shell/internal/model"
)

// Starter defines the interface for launching a downloader process.
type Starter interface {
	// Start spawns the downloader for req. A returned error is always a *SpawnError.
	Start(ctx context.Context, req model.Request) (*Process, error)
}
