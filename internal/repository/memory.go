package repository

import (
	"context"
	"sync"
)

// MemoryReportStore is an in-process ReportStore. Used when no database
// is configured, and by tests.
type MemoryReportStore struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemoryReportStore creates an empty in-memory store.
func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{counts: make(map[string]int)}
}

func (m *MemoryReportStore) Get(_ context.Context, offerHash string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[offerHash], nil
}

func (m *MemoryReportStore) Increment(_ context.Context, offerHash string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[offerHash]++
	return m.counts[offerHash], nil
}
