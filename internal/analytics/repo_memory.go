package analytics

import (
	"context"
	"sync"
)

// MemoryRepo is the process-lifetime analytics table: append-only,
// insertion-ordered, discarded on exit. Concurrent appends each grow the
// table by exactly one row; ordering between concurrent appends is
// unspecified.
type MemoryRepo struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Append(ctx context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}
