package session

// NoticeKind identifies the short message shown under the URL field
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeEmptyURL
	NoticeStarted
	NoticeFinished
	NoticeFailed
	NoticeSpawnFailed
)

// String returns the kind name used in run log records
func (k NoticeKind) String() string {
	switch k {
	case NoticeNone:
		return "none"
	case NoticeEmptyURL:
		return "empty_url"
	case NoticeStarted:
		return "started"
	case NoticeFinished:
		return "finished"
	case NoticeFailed:
		return "failed"
	case NoticeSpawnFailed:
		return "spawn_failed"
	default:
		return "unknown"
	}
}

// IsError returns true for notices that should be rendered as errors
func (k NoticeKind) IsError() bool {
	return k == NoticeEmptyURL || k == NoticeFailed || k == NoticeSpawnFailed
}

// Notice is a user-facing message; Detail carries error text when relevant
type Notice struct {
	Kind   NoticeKind
	Detail string
}
