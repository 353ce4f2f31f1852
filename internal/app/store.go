package app

import (
	"sync/atomic"

	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

// SnapshotStore holds the current dataset snapshot behind an atomic pointer.
// A reload builds a complete new Database and swaps the pointer wholesale,
// so concurrent searches see either the old snapshot or the new one, never
// a partially updated set of relations.  Snapshots themselves are never
// mutated after the swap.
type SnapshotStore struct {
	current atomic.Pointer[types.Database]
}

// Swap publishes a new snapshot.
func (s *SnapshotStore) Swap(db types.Database) {
	s.current.Store(&db)
}

// Current returns the live snapshot, or nil if none has been loaded.
func (s *SnapshotStore) Current() *types.Database {
	return s.current.Load()
}
