package resolve

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/entforge/entforge/internal/naming"
	"github.com/entforge/entforge/internal/schema"
)

// changelogFormat lays out a timestamp as a monotonically increasing
// identifier (20060102150405).
const changelogFormat = "20060102150405"

var (
	alphanumericName = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// ValidateEntity statically checks a raw entity document and substitutes
// deterministic fallbacks for absent root-level attributes, warning on each
// substitution. Fatal conditions return a SchemaError and leave no usable
// document behind.
func (r *Resolver) ValidateEntity(doc *schema.EntityDocument) ([]schema.Warning, error) {
	var warnings []schema.Warning

	if err := validateEntityName(doc); err != nil {
		return nil, err
	}

	if doc.DatabaseType == "" {
		doc.DatabaseType = schema.DatabaseSQL
	}

	tableWarnings, err := r.validateTableName(doc)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, tableWarnings...)

	if err := validateOptions(doc); err != nil {
		return nil, err
	}

	if err := validateFieldNamesUnique(doc); err != nil {
		return nil, err
	}

	warnings = append(warnings, r.fillDefaults(doc)...)

	return warnings, nil
}

func validateEntityName(doc *schema.EntityDocument) error {
	name := doc.Name

	if name == "" {
		return schema.Errorf("", "", "entity name is empty")
	}
	if unicode.IsDigit(rune(name[0])) {
		return schema.Errorf(name, "", "entity name cannot start with a digit")
	}
	if !alphanumericName.MatchString(name) {
		return schema.Errorf(name, "", "entity name must be alphanumeric")
	}
	if strings.HasSuffix(name, schema.ReservedSuffix) {
		return schema.Errorf(name, "", "entity name cannot end with %q", schema.ReservedSuffix)
	}
	if !doc.SkipServer && schema.IsReservedKeyword(name) {
		return schema.Errorf(name, "", "entity name %q is a reserved keyword", name)
	}

	return nil
}

func (r *Resolver) validateTableName(doc *schema.EntityDocument) ([]schema.Warning, error) {
	var warnings []schema.Warning

	if doc.EntityTableName == "" {
		doc.EntityTableName = naming.SnakeCase(doc.Name)
	}
	if !tableNamePattern.MatchString(doc.EntityTableName) {
		return nil, schema.Errorf(doc.Name, "",
			"table name %q contains characters outside [A-Za-z0-9_]", doc.EntityTableName)
	}

	table, w := prefixedIdentifier(doc.Name, "", doc.EntityTableName, doc.Prefix)
	doc.EntityTableName = table
	warnings = append(warnings, w...)

	if !doc.SkipCheckLengthOfIdentifier {
		soft, hard, checked := schema.IdentifierLimits(doc.DatabaseType)
		if checked {
			switch {
			case len(doc.EntityTableName) > hard:
				return nil, schema.Errorf(doc.Name, "",
					"table name %q is longer than %d characters and will not load", doc.EntityTableName, hard)
			case len(doc.EntityTableName) > soft:
				warnings = append(warnings, schema.Warningf(doc.Name, "",
					"table name %q is longer than %d characters and may be truncated", doc.EntityTableName, soft))
			}
		}
	}

	return warnings, nil
}

// validateOptions rejects unknown option values and incompatible option
// combinations.
func validateOptions(doc *schema.EntityDocument) error {
	if doc.DTO != "" && doc.DTO != schema.DTONone && doc.DTO != schema.DTOMapstruct {
		return schema.Errorf(doc.Name, "", "unknown dto value %q", doc.DTO)
	}
	if doc.Service != "" && doc.Service != schema.ServiceNone &&
		doc.Service != schema.ServiceClass && doc.Service != schema.ServiceImpl {
		return schema.Errorf(doc.Name, "", "unknown service value %q", doc.Service)
	}
	if doc.Pagination != "" && doc.Pagination != schema.PaginationNone &&
		doc.Pagination != schema.PaginationPager && doc.Pagination != schema.PaginationInfinite {
		return schema.Errorf(doc.Name, "", "unknown pagination value %q", doc.Pagination)
	}

	if doc.DatabaseType == schema.DatabaseCassandra &&
		doc.Pagination != "" && doc.Pagination != schema.PaginationNone {
		return schema.Errorf(doc.Name, "",
			"pagination %q is not supported with database type cassandra", doc.Pagination)
	}

	return nil
}

func validateFieldNamesUnique(doc *schema.EntityDocument) error {
	seen := make(map[string]bool, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.FieldName == "" {
			continue // reported by the field normalizer
		}
		if seen[f.FieldName] {
			return schema.Errorf(doc.Name, f.FieldName, "duplicate fieldName")
		}
		seen[f.FieldName] = true
	}
	return nil
}

// fillDefaults substitutes the documented fallback for each absent root-level
// attribute and emits one warning per substitution. The changelog date is
// generated once and immutable thereafter.
func (r *Resolver) fillDefaults(doc *schema.EntityDocument) []schema.Warning {
	var warnings []schema.Warning

	if doc.ChangelogDate == "" {
		doc.ChangelogDate = r.now().UTC().Format(changelogFormat)
		warnings = append(warnings, schema.FallbackWarning(doc.Name, "changelogDate", doc.ChangelogDate))
	}
	if doc.DTO == "" {
		doc.DTO = schema.DTONone
		warnings = append(warnings, schema.FallbackWarning(doc.Name, "dto", schema.DTONone))
	}
	if doc.Service == "" {
		doc.Service = schema.ServiceNone
		warnings = append(warnings, schema.FallbackWarning(doc.Name, "service", schema.ServiceNone))
	}
	if doc.PagingMetadata == nil {
		v := true
		doc.PagingMetadata = &v
		warnings = append(warnings, schema.FallbackWarning(doc.Name, "pagingMetadata", fmt.Sprintf("%t", v)))
	}
	if doc.Pagination == "" {
		doc.Pagination = schema.PaginationNone
		warnings = append(warnings, schema.FallbackWarning(doc.Name, "pagination", schema.PaginationNone))
	}

	return warnings
}
