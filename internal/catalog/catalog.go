// Package catalog holds the process-wide, read-only fund catalog.
//
// A Catalog is an immutable snapshot indexed by category and by fund id.
// Refreshes build a complete new snapshot and publish it through Store with
// a single atomic pointer swap, so in-flight requests never observe a
// partially updated catalog.
package catalog

import (
	"sync/atomic"
	"time"

	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/apperrors"
	"github.com/mfadvisor/Mutual-Fund-Advisor-Backend/internal/model"
)

// Catalog is an immutable, indexed snapshot of fund records.
type Catalog struct {
	byCategory map[model.Category][]model.FundRecord
	byID       map[string]model.FundRecord
	total      int
	loadedAt   time.Time
}

// New builds a catalog from fund records, preserving input order within each
// category. Input order matters: it is the tie-break order for equal-score
// funds.
func New(funds []model.FundRecord) *Catalog {
	c := &Catalog{
		byCategory: make(map[model.Category][]model.FundRecord),
		byID:       make(map[string]model.FundRecord, len(funds)),
		total:      len(funds),
		loadedAt:   time.Now(),
	}
	for _, f := range funds {
		c.byCategory[f.Category] = append(c.byCategory[f.Category], f)
		c.byID[f.ID] = f
	}
	return c
}

// FundsByCategory returns the funds of a category in catalog order.
// The returned slice is shared and must be treated as read-only; records are
// value types, so callers copy on projection anyway.
func (c *Catalog) FundsByCategory(category model.Category) []model.FundRecord {
	return c.byCategory[category]
}

// FundByID looks up a fund by its catalog id.
func (c *Catalog) FundByID(id string) (model.FundRecord, error) {
	f, ok := c.byID[id]
	if !ok {
		return model.FundRecord{}, apperrors.ErrFundNotFound
	}
	return f, nil
}

// Size returns the total number of funds in the snapshot.
func (c *Catalog) Size() int {
	return c.total
}

// LoadedAt returns when this snapshot was built.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// Store publishes catalog snapshots to concurrent readers. The swap is the
// only synchronization point in the system; engine computations themselves
// need no locking.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store publishing the given initial snapshot.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Get returns the current snapshot. The snapshot stays valid for the
// lifetime of the request even if a refresh swaps in a newer one.
func (s *Store) Get() *Catalog {
	return s.current.Load()
}

// Swap atomically publishes a new snapshot.
func (s *Store) Swap(c *Catalog) {
	s.current.Store(c)
}
