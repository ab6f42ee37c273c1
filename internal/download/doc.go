package download

// Package download runs the external yt-dlp binary for a single request and
// streams its stdout and stderr back as lines. Both pipes are drained by
// their own goroutine into one channel so the child never blocks on a full
// pipe, whatever the consumer does.
