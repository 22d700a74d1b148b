package store

import (
	"sort"
	"sync"

	"github.com/entforge/entforge/internal/schema"
)

// MemoryStore keeps entity documents in memory. It backs tests and dry runs.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*schema.EntityDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*schema.EntityDocument)}
}

// Load returns a private copy of the stored document.
func (m *MemoryStore) Load(name string) (*schema.EntityDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

// Save stores a private copy of the document under its entity name.
func (m *MemoryStore) Save(doc *schema.EntityDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[doc.Name] = doc.Clone()
	return nil
}

// Exists reports whether a document is stored for name.
func (m *MemoryStore) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.docs[name]
	return ok
}

// Names returns all stored entity names, sorted.
func (m *MemoryStore) Names() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.docs))
	for name := range m.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
