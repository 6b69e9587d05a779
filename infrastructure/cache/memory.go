package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore mantém as entradas no processo. É o backend padrão e o usado nos testes.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return copyEntry(entry), true, nil
}

func (m *MemoryStore) SetIfAbsent(_ context.Context, key string, entry Entry, staleBefore time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.entries[key]; ok && !current.WrittenAt.Before(staleBefore) {
		return false, nil
	}
	m.entries[key] = copyEntry(entry)
	return true, nil
}

func (m *MemoryStore) Put(_ context.Context, key string, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = copyEntry(entry)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *MemoryStore) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0)
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func copyEntry(e Entry) Entry {
	payload := make([]byte, len(e.Payload))
	copy(payload, e.Payload)
	return Entry{Payload: payload, WrittenAt: e.WrittenAt}
}
