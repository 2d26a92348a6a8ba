// Package memory provides an in-memory payroll.Store for tests and dev.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nomina/payroll-engine/payroll"
)

// Store keeps entries and settings in process memory.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]payroll.Entry
	settings *payroll.Settings
}

func New() *Store {
	return &Store{entries: make(map[string]payroll.Entry)}
}

func (m *Store) SaveEntries(_ context.Context, entries []payroll.Entry) ([]payroll.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := make([]payroll.Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.CreatedAt.IsZero() {
			e.CreatedAt = time.Now().UTC()
		}
		m.entries[e.ID] = e
		saved = append(saved, e)
	}
	return saved, nil
}

func (m *Store) ListEntries(_ context.Context, from, to time.Time) ([]payroll.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []payroll.Entry
	for _, e := range m.entries {
		if !e.Date.Before(from) && !e.Date.After(to) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (m *Store) DeleteEntry(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *Store) GetSettings(_ context.Context) (payroll.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return payroll.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *Store) PutSettings(_ context.Context, s payroll.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
	return nil
}

func (m *Store) Close() error { return nil }
