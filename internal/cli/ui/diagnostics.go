// Package ui renders resolution diagnostics for terminal output.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/entforge/entforge/internal/schema"
)

// Options configures diagnostic rendering.
type Options struct {
	NoColor bool
}

// WriteWarnings renders each warning on its own line.
func WriteWarnings(w io.Writer, warnings []schema.Warning, opts Options) {
	if len(warnings) == 0 {
		return
	}

	header := color.New(color.FgYellow, color.Bold)
	body := color.New(color.FgYellow)
	if opts.NoColor {
		header.DisableColor()
		body.DisableColor()
	}

	header.Fprintf(w, "%d warning(s):\n", len(warnings))
	for _, warning := range warnings {
		body.Fprintf(w, "  ! %s\n", warning)
	}
}

// WriteError renders a fatal schema error with a fix hint.
func WriteError(w io.Writer, err error, opts Options) {
	header := color.New(color.FgRed, color.Bold)
	body := color.New(color.FgRed)
	if opts.NoColor {
		header.DisableColor()
		body.DisableColor()
	}

	header.Fprintln(w, "schema error:")
	body.Fprintf(w, "  %s\n", err)

	if schemaErr, ok := err.(*schema.SchemaError); ok && schemaErr.Entity != "" {
		body.Fprintf(w, "  fix the entity document for %s and rerun\n", schemaErr.Entity)
	}
}

// Summary formats a one-line outcome for an entity resolution run.
func Summary(entity string, warnings []schema.Warning) string {
	var b strings.Builder
	fmt.Fprintf(&b, "resolved %s", entity)
	if len(warnings) > 0 {
		fmt.Fprintf(&b, " with %d warning(s)", len(warnings))
	}
	return b.String()
}
