package schema

import (
	"fmt"
	"strings"
)

// Warning reports a schema that is incomplete or suboptimal but repairable
// with a deterministic fallback. Resolution continues after a warning.
type Warning struct {
	Entity   string // entity the warning applies to
	Field    string // field or relationship name, when applicable
	Key      string // offending document key, when applicable
	Fallback string // the fallback value applied, when applicable
	Message  string
}

// String formats the warning for display.
func (w Warning) String() string {
	var b strings.Builder

	if w.Entity != "" {
		b.WriteString(w.Entity)
		if w.Field != "" {
			b.WriteString(".")
			b.WriteString(w.Field)
		}
		b.WriteString(": ")
	}

	b.WriteString(w.Message)

	if w.Key != "" && w.Fallback != "" {
		fmt.Fprintf(&b, " (using %s=%s)", w.Key, w.Fallback)
	}

	return b.String()
}

// SchemaError is the single fatal failure mode of the resolution pipeline:
// the schema cannot be repaired with a safe default, no descriptor is
// produced, and the caller halts the generation run.
type SchemaError struct {
	Entity  string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder

	if e.Entity != "" {
		b.WriteString(e.Entity)
		if e.Field != "" {
			b.WriteString(".")
			b.WriteString(e.Field)
		}
		b.WriteString(": ")
	}

	b.WriteString(e.Message)
	return b.String()
}

// Errorf builds a SchemaError for the given entity and field.
func Errorf(entity, field, format string, args ...interface{}) *SchemaError {
	return &SchemaError{
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Warningf builds a Warning for the given entity and field.
func Warningf(entity, field, format string, args ...interface{}) Warning {
	return Warning{
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// FallbackWarning builds a Warning naming the missing key and the fallback
// substituted for it.
func FallbackWarning(entity, key, fallback string) Warning {
	return Warning{
		Entity:   entity,
		Key:      key,
		Fallback: fallback,
		Message:  fmt.Sprintf("missing %s", key),
	}
}
