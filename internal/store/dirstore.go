package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/entforge/entforge/internal/schema"
)

// DirStore persists entity documents as pretty-printed JSON files named
// <Entity>.json in a single configuration directory.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory is created on the
// first Save.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Dir returns the configuration directory the store reads and writes.
func (s *DirStore) Dir() string {
	return s.dir
}

func (s *DirStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads and decodes the document for name.
func (s *DirStore) Load(name string) (*schema.EntityDocument, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read entity document %s: %w", name, err)
	}

	var doc schema.EntityDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode entity document %s: %w", name, err)
	}
	if doc.Name == "" {
		doc.Name = name
	}
	return &doc, nil
}

// Save encodes the document and writes it under its entity name.
func (s *DirStore) Save(doc *schema.EntityDocument) error {
	if doc.Name == "" {
		return fmt.Errorf("cannot save entity document without a name")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entity document %s: %w", doc.Name, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path(doc.Name), data, 0644); err != nil {
		return fmt.Errorf("failed to write entity document %s: %w", doc.Name, err)
	}
	return nil
}

// Exists reports whether a document file exists for name.
func (s *DirStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Names lists the entity names present in the configuration directory.
func (s *DirStore) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list configuration directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
