package hr

import (
	"sync"
	"time"
)

// =============================================================================
// ID GENERATION
// =============================================================================

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a process-unique integer id derived from the wall clock
// (milliseconds since epoch). Ids generated within the same millisecond
// are bumped so two entities never share an id. Import order of existing
// data is irrelevant: ids only need to be unique, not dense or sorted.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
