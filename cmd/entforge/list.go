package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/entforge/entforge/internal/cli/ui"
	"github.com/entforge/entforge/internal/config"
	"github.com/entforge/entforge/internal/store"
)

var (
	listLong    bool
	listNoColor bool
)

func init() {
	listCmd.Flags().BoolVar(&listLong, "long", false, "Show field and relationship counts per entity")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entity documents in the configuration directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		st := store.NewDirStore(cfg.EntitiesDir)
		names, err := st.Names()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Printf("no entity documents in %s\n", cfg.EntitiesDir)
			return nil
		}

		if !listLong {
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		}

		table := ui.NewTable(os.Stdout, []string{"ENTITY", "FIELDS", "RELATIONSHIPS", "CHANGELOG"}, ui.Options{NoColor: listNoColor})
		for _, name := range names {
			doc, err := st.Load(name)
			if err != nil {
				return fmt.Errorf("failed to load entity %s: %w", name, err)
			}
			table.AddRow(name,
				strconv.Itoa(len(doc.Fields)),
				strconv.Itoa(len(doc.Relationships)),
				doc.ChangelogDate)
		}
		table.Render()
		return nil
	},
}
