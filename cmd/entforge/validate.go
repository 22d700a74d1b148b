package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/entforge/entforge/internal/cli/ui"
	"github.com/entforge/entforge/internal/config"
	"github.com/entforge/entforge/internal/resolve"
	"github.com/entforge/entforge/internal/store"
)

var validateNoColor bool

func init() {
	validateCmd.Flags().BoolVar(&validateNoColor, "no-color", false, "Disable colored output")
}

var validateCmd = &cobra.Command{
	Use:   "validate [entity...]",
	Short: "Validate entity documents without writing anything back",
	Long: `Validate runs the full resolution pipeline over the named entity documents
(all documents when none are named) and reports warnings and errors, but
never writes resolved documents back to the configuration directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

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
		opts := ui.Options{NoColor: validateNoColor}

		failed := 0
		for _, name := range names {
			raw, err := st.Load(name)
			if err != nil {
				return loadError(st, name, err)
			}
			cfg.Apply(raw)

			_, warnings, err := resolver.Resolve(raw)
			ui.WriteWarnings(os.Stderr, warnings, opts)
			if err != nil {
				ui.WriteError(os.Stderr, err, opts)
				failed++
				continue
			}
			fmt.Printf("%s is valid\n", name)
		}

		if failed > 0 {
			return fmt.Errorf("%d entity document(s) failed validation", failed)
		}
		return nil
	},
}
