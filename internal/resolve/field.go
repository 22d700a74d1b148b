// Package resolve implements the resolution pipeline that turns a raw entity
// document into a renderer-ready descriptor: per-field normalization,
// relationship resolution against sibling documents, document validation, and
// descriptor assembly. Each stage takes immutable input and fills derived
// attributes on a private copy; already-derived values are never overwritten,
// so resolving an already-resolved document is a no-op.
package resolve

import (
	"strings"

	"github.com/entforge/entforge/internal/naming"
	"github.com/entforge/entforge/internal/schema"
)

// NormalizeField validates a raw field and fills in its derived attributes.
// entityName and prefix come from the owning document; prefix is applied when
// the derived column name collides with a reserved database word.
func NormalizeField(entityName, prefix string, f *schema.FieldSpec) ([]schema.Warning, error) {
	var warnings []schema.Warning

	if f.FieldName == "" {
		return nil, schema.Errorf(entityName, "", "field is missing fieldName")
	}
	if f.FieldType == "" {
		return nil, schema.Errorf(entityName, f.FieldName, "field is missing fieldType")
	}

	// Legacy temporal types are rewritten on every pass.
	f.FieldType = schema.CanonicalFieldType(f.FieldType)

	f.FieldIsEnum = !schema.IsPrimitiveType(f.FieldType)
	if f.FieldIsEnum && f.EnumInstance == "" {
		// The translation layer loads one resource bundle per enum instance.
		f.EnumInstance = naming.Decapitalize(f.FieldType)
	}

	if err := checkValidationRules(entityName, f); err != nil {
		return nil, err
	}

	if schema.IsBinaryType(f.FieldType) && len(f.FieldValidateRules) > 0 {
		warnings = append(warnings, schema.Warningf(entityName, f.FieldName,
			"binary field type %s cannot carry validation rules; rules dropped", f.FieldType))
		f.FieldValidateRules = nil
	}

	f.FieldValidate = len(f.FieldValidateRules) > 0

	if f.FieldNameCapitalized == "" {
		f.FieldNameCapitalized = naming.Capitalize(f.FieldName)
	}
	if f.FieldNameUnderscored == "" {
		f.FieldNameUnderscored = naming.SnakeCase(f.FieldName)
	}
	if f.FieldNameHumanized == "" {
		f.FieldNameHumanized = naming.StartCase(f.FieldName)
	}

	if f.ColumnName == "" {
		column, w := prefixedIdentifier(entityName, f.FieldName, naming.SnakeCase(f.FieldName), prefix)
		f.ColumnName = column
		warnings = append(warnings, w...)
	}

	return warnings, nil
}

// checkValidationRules rejects unknown rule names and rules whose companion
// parameter is absent.
func checkValidationRules(entityName string, f *schema.FieldSpec) error {
	for _, rule := range f.FieldValidateRules {
		if !schema.IsSupportedValidationRule(rule) {
			return schema.Errorf(entityName, f.FieldName, "unsupported validation rule %q", rule)
		}

		missing := false
		switch rule {
		case schema.RuleMax:
			missing = f.FieldValidateRulesMax == nil
		case schema.RuleMin:
			missing = f.FieldValidateRulesMin == nil
		case schema.RuleMaxlength:
			missing = f.FieldValidateRulesMaxlength == nil
		case schema.RuleMinlength:
			missing = f.FieldValidateRulesMinlength == nil
		case schema.RuleMaxbytes:
			missing = f.FieldValidateRulesMaxbytes == nil
		case schema.RuleMinbytes:
			missing = f.FieldValidateRulesMinbytes == nil
		case schema.RulePattern:
			missing = f.FieldValidateRulesPattern == ""
		}
		if missing {
			return schema.Errorf(entityName, f.FieldName,
				"validation rule %s requires fieldValidateRules%s", rule, naming.Capitalize(rule))
		}
	}
	return nil
}

// prefixedIdentifier applies the reserved-word prefixing rule shared by column
// names and relationship-target table names: a reserved identifier gets the
// configured prefix, or passes through with a warning when no prefix is set.
func prefixedIdentifier(entityName, fieldName, identifier, prefix string) (string, []schema.Warning) {
	if !schema.IsReservedTableWord(identifier) {
		return identifier, nil
	}
	if prefix != "" {
		return prefix + "_" + strings.ToLower(identifier), nil
	}
	return identifier, []schema.Warning{
		schema.Warningf(entityName, fieldName,
			"identifier %q is a reserved database word and no prefix is configured; the generated schema may not load", identifier),
	}
}
