package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/entforge/entforge/internal/cli/ui"
	"github.com/entforge/entforge/internal/config"
	"github.com/entforge/entforge/internal/resolve"
	"github.com/entforge/entforge/internal/store"
)

var (
	resolveJSON    bool
	resolveRegen   bool
	resolveVerbose bool
	resolveNoColor bool
)

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print the resolved descriptor as JSON")
	resolveCmd.Flags().BoolVar(&resolveRegen, "regenerate", false, "Resolve without writing the resolved documents back")
	resolveCmd.Flags().BoolVar(&resolveVerbose, "verbose", false, "Show detailed resolution output")
	resolveCmd.Flags().BoolVar(&resolveNoColor, "no-color", false, "Disable colored output")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [entity...]",
	Short: "Resolve entity documents into renderer-ready descriptors",
	Long: `Resolve the named entity documents (all documents when none are named),
filling in derived naming, relationship metadata, and document-wide flags.
Resolved documents are written back to the configuration directory unless
--regenerate is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if resolveVerbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
		}
		defer logger.Sync()

		st := store.NewDirStore(cfg.EntitiesDir)

		names := args
		if len(names) == 0 {
			names, err = st.Names()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("no entity documents found in %s", cfg.EntitiesDir)
			}
		}

		resolver := &resolve.Resolver{Lookup: store.SiblingLookup(st)}
		opts := ui.Options{NoColor: resolveNoColor}

		for _, name := range names {
			logger.Debug("resolving entity", zap.String("entity", name))

			raw, err := st.Load(name)
			if err != nil {
				return loadError(st, name, err)
			}
			cfg.Apply(raw)

			desc, warnings, err := resolver.Resolve(raw)
			ui.WriteWarnings(os.Stderr, warnings, opts)
			if err != nil {
				ui.WriteError(os.Stderr, err, opts)
				return fmt.Errorf("resolution failed for %s", name)
			}

			if resolveJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(desc); err != nil {
					return err
				}
			} else {
				fmt.Println(ui.Summary(name, warnings))
			}

			if !resolveRegen && !cfg.RegenerateOnly {
				if err := st.Save(desc.Entity); err != nil {
					return err
				}
				logger.Debug("saved resolved document", zap.String("entity", name))
			}
		}

		return nil
	},
}
