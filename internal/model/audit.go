package model

// Invocation is one audited tool call. Records are written after the
// dispatch completes and are never read back on the dispatch path.
type Invocation struct {
	ID          string
	Tool        string
	Endpoint    string
	OK          bool
	ErrorKind   string
	ErrorDetail string
	DurationMS  int64
	StartedUnix int64
}
