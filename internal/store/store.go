// Package store persists entity documents, one JSON document per entity name,
// under a configuration directory. The resolution core never touches the store
// directly; it sees only a read-only lookup function derived from it.
package store

import (
	"errors"

	"github.com/entforge/entforge/internal/resolve"
	"github.com/entforge/entforge/internal/schema"
)

// ErrNotFound is returned by Load when no document exists for the name.
var ErrNotFound = errors.New("entity document not found")

// Store is the persisted entity-document collaborator.
type Store interface {
	// Load returns the document for name, or ErrNotFound.
	Load(name string) (*schema.EntityDocument, error)
	// Save writes the document under its entity name.
	Save(doc *schema.EntityDocument) error
	// Exists reports whether a document exists for name.
	Exists(name string) bool
	// Names returns all stored entity names, sorted.
	Names() ([]string, error)
}

// SiblingLookup adapts a store into the read-only lookup capability the
// relationship resolver consumes. Load failures degrade to "not found": the
// resolver proceeds with locally-available data.
func SiblingLookup(s Store) resolve.Lookup {
	return func(name string) (*schema.EntityDocument, bool) {
		doc, err := s.Load(name)
		if err != nil {
			return nil, false
		}
		return doc, true
	}
}
