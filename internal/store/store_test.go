package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entforge/entforge/internal/schema"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	doc := &schema.EntityDocument{
		Name: "Order",
		Fields: []*schema.FieldSpec{
			{FieldName: "total", FieldType: schema.TypeBigDecimal},
		},
	}
	require.NoError(t, s.Save(doc))

	// The store keeps a private copy: later mutation of the saved document
	// must not be visible.
	doc.Fields[0].FieldName = "mutated"

	loaded, err := s.Load("Order")
	require.NoError(t, err)
	assert.Equal(t, "total", loaded.Fields[0].FieldName)

	assert.True(t, s.Exists("Order"))
	assert.False(t, s.Exists("Customer"))

	_, err = s.Load("Customer")
	assert.ErrorIs(t, err, ErrNotFound)

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Order"}, names)
}

func TestDirStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "entities")
	s := NewDirStore(dir)

	doc := &schema.EntityDocument{
		Name:          "Customer",
		ChangelogDate: "20260823143000",
		Fields: []*schema.FieldSpec{
			{FieldName: "name", FieldType: schema.TypeString},
		},
	}
	require.NoError(t, s.Save(doc))

	loaded, err := s.Load("Customer")
	require.NoError(t, err)
	assert.Equal(t, doc.Name, loaded.Name)
	assert.Equal(t, doc.ChangelogDate, loaded.ChangelogDate)
	require.Len(t, loaded.Fields, 1)
	assert.Equal(t, "name", loaded.Fields[0].FieldName)

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer"}, names)
}

func TestDirStoreMissingDocument(t *testing.T) {
	s := NewDirStore(t.TempDir())

	_, err := s.Load("Ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists("Ghost"))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDirStoreMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{not json"), 0644))

	s := NewDirStore(dir)
	_, err := s.Load("Broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestSiblingLookup(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(&schema.EntityDocument{Name: "Customer"}))

	lookup := SiblingLookup(s)

	doc, ok := lookup("Customer")
	require.True(t, ok)
	assert.Equal(t, "Customer", doc.Name)

	_, ok = lookup("Missing")
	assert.False(t, ok)
}
