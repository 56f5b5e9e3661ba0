// Package store persists fetched raw-case snapshots per business unit, so
// reports and exports can run without refetching from the upstream API.
package store

import (
	"time"

	"coverdash/internal/testrail"
)

// DefaultDBPath is the default relative path for the SQLite DB (per-workspace).
const DefaultDBPath = ".coverdash/coverdash.db"

// Snapshot is one fetched batch of raw cases for a business unit.
type Snapshot struct {
	Unit      string
	ProjectID int
	SuiteID   int
	FetchedAt time.Time
	Cases     []testrail.RawCase
}

// Info describes a stored snapshot without its payload.
type Info struct {
	Unit      string
	FetchedAt time.Time
	CaseCount int
}

// Store persists and retrieves snapshots by business unit.
type Store interface {
	Save(snap *Snapshot) error
	Get(unit string) (*Snapshot, error) // nil when absent
	List() ([]Info, error)
}

// MemStore is an in-memory store for tests. Create with NewMemStore.
type MemStore struct {
	snapshots map[string]*Snapshot
}

// NewMemStore returns a new in-memory store (ready for Save/Get).
func NewMemStore() *MemStore {
	return &MemStore{snapshots: make(map[string]*Snapshot)}
}

// Save stores the snapshot by business unit, replacing any previous one.
func (s *MemStore) Save(snap *Snapshot) error {
	s.snapshots[snap.Unit] = snap
	return nil
}

// Get returns the snapshot for the unit, or nil if not found.
func (s *MemStore) Get(unit string) (*Snapshot, error) {
	return s.snapshots[unit], nil
}

// List returns info for every stored snapshot.
func (s *MemStore) List() ([]Info, error) {
	infos := make([]Info, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		infos = append(infos, Info{
			Unit:      snap.Unit,
			FetchedAt: snap.FetchedAt,
			CaseCount: len(snap.Cases),
		})
	}
	return infos, nil
}
