// Package config loads generator configuration from entforge.yml with
// environment-variable overrides.
package config

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"

	"github.com/entforge/entforge/internal/schema"
)

// Config holds the generator-level settings shared by every entity resolution
// run. Per-entity settings live in the entity documents themselves.
type Config struct {
	// Prefix is prepended to identifiers that collide with reserved
	// database words.
	Prefix string `mapstructure:"prefix"`
	// DatabaseType is the default database type for documents that do not
	// set one.
	DatabaseType string `mapstructure:"database_type"`
	// EntitiesDir is the configuration directory holding one JSON document
	// per entity.
	EntitiesDir string `mapstructure:"entities_dir"`
	// SkipServer disables server-side generation; reserved-keyword entity
	// names are then allowed.
	SkipServer bool `mapstructure:"skip_server"`
	// SkipCheckLengthOfIdentifier disables identifier length validation.
	SkipCheckLengthOfIdentifier bool `mapstructure:"skip_check_length_of_identifier"`
	// RegenerateOnly resolves without writing the resolved documents back
	// to the store.
	RegenerateOnly bool `mapstructure:"regenerate_only"`
}

var prefixPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Load reads entforge.yml (or entforge.yaml) from the current directory,
// falling back to defaults when no config file exists.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("prefix", schema.DefaultPrefix)
	v.SetDefault("database_type", schema.DatabaseSQL)
	v.SetDefault("entities_dir", ".entforge")

	v.SetConfigName("entforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("entforge")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Prefix != "" && !prefixPattern.MatchString(cfg.Prefix) {
		return fmt.Errorf("prefix must be alphanumeric and start with a letter, got: %s", cfg.Prefix)
	}

	switch cfg.DatabaseType {
	case schema.DatabaseSQL, schema.DatabaseMongoDB, schema.DatabaseCouchbase,
		schema.DatabaseCassandra, schema.DatabaseNone:
	default:
		return fmt.Errorf("unknown database_type: %s", cfg.DatabaseType)
	}

	if cfg.EntitiesDir == "" {
		return fmt.Errorf("entities_dir must not be empty")
	}

	return nil
}

// Apply copies generator-level settings onto a raw document for keys the
// document itself leaves unset.
func (c *Config) Apply(doc *schema.EntityDocument) {
	if doc.Prefix == "" {
		doc.Prefix = c.Prefix
	}
	if doc.DatabaseType == "" {
		doc.DatabaseType = c.DatabaseType
	}
	if c.SkipServer {
		doc.SkipServer = true
	}
	if c.SkipCheckLengthOfIdentifier {
		doc.SkipCheckLengthOfIdentifier = true
	}
}
