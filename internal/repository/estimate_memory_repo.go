package repository

import (
	"context"
	"sync"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

// MemoryEstimateRepository keeps the most recent estimates when no
// database is configured. Older entries are dropped once capacity is reached.
type MemoryEstimateRepository struct {
	mu       sync.Mutex
	capacity int
	nextID   int64
	entries  []domain.SizeEstimate
}

func NewMemoryEstimateRepository(capacity int) *MemoryEstimateRepository {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryEstimateRepository{capacity: capacity}
}

func (r *MemoryEstimateRepository) Create(_ context.Context, e *domain.SizeEstimate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	row := *e
	row.ID = r.nextID
	if len(r.entries) == r.capacity {
		r.entries = append(r.entries[:0], r.entries[1:]...)
	}
	r.entries = append(r.entries, row)
	return row.ID, nil
}

func (r *MemoryEstimateRepository) ListRecent(_ context.Context, limit int) ([]domain.SizeEstimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]domain.SizeEstimate, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
