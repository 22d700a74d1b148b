package resolve

import (
	"strings"

	"github.com/entforge/entforge/internal/naming"
	"github.com/entforge/entforge/internal/schema"
)

// Lookup returns the sibling entity document for name, or false when that
// document has not been created yet. Resolution degrades gracefully on a
// missing sibling: reciprocal inference is skipped and locally-available data
// is used.
type Lookup func(name string) (*schema.EntityDocument, bool)

// ResolveRelationship validates a raw relationship on doc and fills in its
// derived and reciprocal attributes, consulting lookup for the sibling
// document.
func ResolveRelationship(doc *schema.EntityDocument, rel *schema.RelationshipSpec, lookup Lookup) ([]schema.Warning, error) {
	var warnings []schema.Warning

	if rel.OtherEntityName == "" {
		return nil, schema.Errorf(doc.Name, rel.RelationshipName, "relationship is missing otherEntityName")
	}

	switch rel.RelationshipType {
	case schema.OneToOne, schema.OneToMany, schema.ManyToOne, schema.ManyToMany:
	case "":
		return nil, schema.Errorf(doc.Name, rel.RelationshipName, "relationship is missing relationshipType")
	default:
		return nil, schema.Errorf(doc.Name, rel.RelationshipName,
			"unknown relationshipType %q", rel.RelationshipType)
	}

	if rel.RelationshipName == "" {
		rel.RelationshipName = rel.OtherEntityName
		warnings = append(warnings, schema.Warning{
			Entity:   doc.Name,
			Field:    rel.OtherEntityName,
			Key:      "relationshipName",
			Fallback: rel.OtherEntityName,
			Message:  "missing relationshipName",
		})
	}

	if rel.OwnerSide == nil && (rel.RelationshipType == schema.OneToOne || rel.RelationshipType == schema.ManyToMany) {
		return nil, schema.Errorf(doc.Name, rel.RelationshipName,
			"ownerSide is required for %s relationships", rel.RelationshipType)
	}

	if rel.OtherEntityField == "" && needsOtherEntityField(rel) {
		rel.OtherEntityField = "id"
		warnings = append(warnings, schema.Warning{
			Entity:   doc.Name,
			Field:    rel.RelationshipName,
			Key:      "otherEntityField",
			Fallback: "id",
			Message:  "missing otherEntityField",
		})
	}

	// A required relationship pointing back at the owning entity is
	// unsupported; validation is skipped rather than failing the run.
	if rel.HasValidateRule(schema.RuleRequired) &&
		strings.EqualFold(rel.OtherEntityName, doc.Name) {
		warnings = append(warnings, schema.Warningf(doc.Name, rel.RelationshipName,
			"required relationship to the owning entity itself is unsupported; validation skipped"))
		rel.RelationshipValidate = false
	} else {
		rel.RelationshipValidate = len(rel.RelationshipValidateRules) > 0
	}

	deriveRelationshipNames(rel)
	warnings = append(warnings, deriveOtherEntityNames(doc, rel, lookup)...)

	sibling, found := lookup(rel.OtherEntityName)
	if found {
		rel.OtherEntityIsEmbedded = sibling.Embedded
		warnings = append(warnings, inferReciprocal(doc, rel, sibling)...)
		warnings = append(warnings, checkDTOConsistency(doc, rel, sibling)...)
	}

	return warnings, nil
}

// needsOtherEntityField reports whether the relationship dereferences a display
// field on the target entity.
func needsOtherEntityField(rel *schema.RelationshipSpec) bool {
	switch rel.RelationshipType {
	case schema.ManyToOne:
		return true
	case schema.ManyToMany, schema.OneToOne:
		return rel.IsOwnerSide()
	}
	return false
}

// deriveRelationshipNames fills the relationship-name case variants, never
// overwriting values carried over from an earlier pass.
func deriveRelationshipNames(rel *schema.RelationshipSpec) {
	if rel.RelationshipNameCapitalized == "" {
		rel.RelationshipNameCapitalized = naming.Capitalize(rel.RelationshipName)
	}
	if rel.RelationshipNamePlural == "" {
		rel.RelationshipNamePlural = naming.Pluralize(rel.RelationshipName)
	}
	if rel.RelationshipFieldName == "" {
		rel.RelationshipFieldName = naming.CamelCase(rel.RelationshipName)
	}
	if rel.RelationshipFieldNamePlural == "" {
		rel.RelationshipFieldNamePlural = naming.Pluralize(naming.CamelCase(rel.RelationshipName))
	}
}

// deriveOtherEntityNames fills the target-entity case variants and table name.
// The built-in user entity always resolves to a fixed table and client name.
func deriveOtherEntityNames(doc *schema.EntityDocument, rel *schema.RelationshipSpec, lookup Lookup) []schema.Warning {
	var warnings []schema.Warning

	if rel.OtherEntityNameCapitalized == "" {
		rel.OtherEntityNameCapitalized = naming.Capitalize(rel.OtherEntityName)
	}
	if rel.OtherEntityNamePlural == "" {
		rel.OtherEntityNamePlural = naming.Pluralize(rel.OtherEntityName)
	}
	if rel.OtherEntityNameCapitalizedPlural == "" {
		rel.OtherEntityNameCapitalizedPlural = naming.Pluralize(naming.Capitalize(rel.OtherEntityName))
	}
	if rel.OtherEntityField != "" && rel.OtherEntityFieldCapitalized == "" {
		rel.OtherEntityFieldCapitalized = naming.Capitalize(rel.OtherEntityField)
	}

	if strings.EqualFold(rel.OtherEntityName, schema.UserEntityName) {
		prefix := doc.Prefix
		if prefix == "" {
			prefix = schema.DefaultPrefix
		}
		if rel.OtherEntityTableName == "" {
			rel.OtherEntityTableName = prefix + "_user"
		}
		if rel.OtherEntityAngularName == "" {
			rel.OtherEntityAngularName = "User"
		}
		return warnings
	}

	if rel.OtherEntityAngularName == "" {
		rel.OtherEntityAngularName = naming.PascalCase(rel.OtherEntityName)
	}

	if rel.OtherEntityTableName == "" {
		table := ""
		if sibling, ok := lookup(rel.OtherEntityName); ok && sibling.EntityTableName != "" {
			table = sibling.EntityTableName
		} else {
			table = naming.SnakeCase(rel.OtherEntityName)
		}
		prefixed, w := prefixedIdentifier(doc.Name, rel.RelationshipName, table, doc.Prefix)
		rel.OtherEntityTableName = prefixed
		warnings = append(warnings, w...)
	}

	return warnings
}

// inferReciprocal copies the reciprocal-naming attributes from the sibling's
// matching back-relationship. A match requires the sibling relationship to
// name this relationship as its reciprocal and to have a compatible type:
// many-to-one pairs with one-to-many, many-to-many pairs with many-to-many.
// One-to-one reciprocal inference is intentionally not performed.
func inferReciprocal(doc *schema.EntityDocument, rel *schema.RelationshipSpec, sibling *schema.EntityDocument) []schema.Warning {
	var warnings []schema.Warning

	reciprocalType := ""
	switch rel.RelationshipType {
	case schema.ManyToOne:
		reciprocalType = schema.OneToMany
	case schema.ManyToMany:
		reciprocalType = schema.ManyToMany
	default:
		return nil
	}

	for _, candidate := range sibling.Relationships {
		if !strings.EqualFold(candidate.OtherEntityName, doc.Name) {
			continue
		}
		if candidate.OtherEntityRelationshipName == "" {
			warnings = append(warnings, schema.Warningf(doc.Name, rel.RelationshipName,
				"cannot compare with relationship %q of entity %s: it does not declare otherEntityRelationshipName",
				candidate.RelationshipName, sibling.Name))
			continue
		}
		if candidate.OtherEntityRelationshipName != rel.RelationshipName {
			continue
		}
		if candidate.RelationshipType != reciprocalType {
			continue
		}

		if rel.OtherEntityRelationshipName == "" {
			rel.OtherEntityRelationshipName = candidate.RelationshipName
		}
		if rel.OtherEntityRelationshipNamePlural == "" {
			rel.OtherEntityRelationshipNamePlural = naming.Pluralize(rel.OtherEntityRelationshipName)
		}
		if rel.OtherEntityRelationshipNameCapitalized == "" {
			rel.OtherEntityRelationshipNameCapitalized = naming.Capitalize(rel.OtherEntityRelationshipName)
		}
		break
	}

	return warnings
}

// checkDTOConsistency warns when a mapstruct entity points at a target that is
// not also mapstruct. The combination fails at the mapping layer, but this
// core only reports, never blocks.
func checkDTOConsistency(doc *schema.EntityDocument, rel *schema.RelationshipSpec, sibling *schema.EntityDocument) []schema.Warning {
	if doc.DTO != schema.DTOMapstruct {
		return nil
	}
	if strings.EqualFold(rel.OtherEntityName, schema.UserEntityName) {
		return nil
	}
	if sibling.DTO == schema.DTOMapstruct {
		return nil
	}
	return []schema.Warning{
		schema.Warningf(doc.Name, rel.RelationshipName,
			"entity uses DTO mapstruct but target entity %s does not; mapping will fail downstream", rel.OtherEntityName),
	}
}
