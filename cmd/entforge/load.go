package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/entforge/entforge/internal/cli/ui"
	"github.com/entforge/entforge/internal/store"
)

// loadError turns a store load failure into a user-facing error, suggesting
// close entity names when the requested one does not exist.
func loadError(st store.Store, name string, err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to load entity %s: %w", name, err)
	}

	known, namesErr := st.Names()
	if namesErr != nil {
		return fmt.Errorf("entity %s not found", name)
	}
	if similar := ui.Suggest(name, known); len(similar) > 0 {
		return fmt.Errorf("entity %s not found, did you mean: %s?", name, strings.Join(similar, ", "))
	}
	return fmt.Errorf("entity %s not found", name)
}
