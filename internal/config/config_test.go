package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entforge/entforge/internal/schema"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, schema.DefaultPrefix, cfg.Prefix)
	assert.Equal(t, schema.DatabaseSQL, cfg.DatabaseType)
	assert.Equal(t, ".entforge", cfg.EntitiesDir)
	assert.False(t, cfg.SkipServer)
	assert.False(t, cfg.RegenerateOnly)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Prefix: "jhi", DatabaseType: schema.DatabaseSQL, EntitiesDir: ".entforge"}, false},
		{"bad prefix", Config{Prefix: "9x", DatabaseType: schema.DatabaseSQL, EntitiesDir: ".entforge"}, true},
		{"unknown database", Config{Prefix: "jhi", DatabaseType: "oracle", EntitiesDir: ".entforge"}, true},
		{"empty dir", Config{Prefix: "jhi", DatabaseType: schema.DatabaseSQL}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := &Config{
		Prefix:       "app",
		DatabaseType: schema.DatabaseMongoDB,
		SkipServer:   true,
	}

	doc := &schema.EntityDocument{Name: "Order"}
	cfg.Apply(doc)

	assert.Equal(t, "app", doc.Prefix)
	assert.Equal(t, schema.DatabaseMongoDB, doc.DatabaseType)
	assert.True(t, doc.SkipServer)

	// Document-level settings win.
	doc2 := &schema.EntityDocument{Name: "Order", Prefix: "crm", DatabaseType: schema.DatabaseSQL}
	cfg.Apply(doc2)
	assert.Equal(t, "crm", doc2.Prefix)
	assert.Equal(t, schema.DatabaseSQL, doc2.DatabaseType)
}
