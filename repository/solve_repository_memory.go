package repository

import (
	"sync"

	"lp-solver/domain"
)

// SolveRepositoryMemory is an in-memory implementation of SolveRepository
// that keeps at most size records and drops the oldest first.
type SolveRepositoryMemory struct {
	mu   sync.Mutex
	size int
	data []domain.SolveRecord
}

// NewSolveRepositoryMemory creates a new in-memory history. A non-positive
// size keeps a single record.
func NewSolveRepositoryMemory(size int) *SolveRepositoryMemory {
	if size < 1 {
		size = 1
	}
	return &SolveRepositoryMemory{
		size: size,
		data: make([]domain.SolveRecord, 0, size),
	}
}

// Save stores the record in memory.
func (r *SolveRepositoryMemory) Save(record domain.SolveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.size {
		copy(r.data, r.data[1:])
		r.data = r.data[:len(r.data)-1]
	}
	r.data = append(r.data, record)
	return nil
}

func (r *SolveRepositoryMemory) Recent(n int) []domain.SolveRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.data) {
		n = len(r.data)
	}
	out := make([]domain.SolveRecord, 0, n)
	for i := len(r.data) - 1; i >= len(r.data)-n; i-- {
		out = append(out, r.data[i])
	}
	return out
}
