package resolve

import (
	"time"

	"github.com/entforge/entforge/internal/naming"
	"github.com/entforge/entforge/internal/schema"
)

// Resolver runs the full resolution pipeline over raw entity documents.
// Lookup supplies sibling documents; a nil Lookup behaves as if no sibling
// exists. Now is injectable for deterministic changelog dates in tests.
type Resolver struct {
	Lookup Lookup
	Now    func() time.Time
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Resolver) lookup(name string) (*schema.EntityDocument, bool) {
	if r.Lookup == nil {
		return nil, false
	}
	return r.Lookup(name)
}

// Descriptor is the fully-resolved, renderer-ready form of an entity document.
// It carries the resolved document plus the document-wide derived flags the
// storage, API, and UI renderers branch on.
type Descriptor struct {
	Entity *schema.EntityDocument `json:"entity"`

	EntityClass         string `json:"entityClass"`
	EntityClassPlural   string `json:"entityClassPlural"`
	EntityInstance      string `json:"entityInstance"`
	EntityApiUrl        string `json:"entityApiUrl"`
	EntityFolderName    string `json:"entityFolderName"`
	EntityStateName     string `json:"entityStateName"`
	EntityNameHumanized string `json:"entityNameHumanized"`

	// Field category flags.
	FieldsContainInstant       bool `json:"fieldsContainInstant"`
	FieldsContainZonedDateTime bool `json:"fieldsContainZonedDateTime"`
	FieldsContainLocalDate     bool `json:"fieldsContainLocalDate"`
	FieldsContainDuration      bool `json:"fieldsContainDuration"`
	FieldsContainBigDecimal    bool `json:"fieldsContainBigDecimal"`
	FieldsContainNumeric       bool `json:"fieldsContainNumeric"`
	FieldsContainBlob          bool `json:"fieldsContainBlob"`

	// Validation is true when any field requires client-side validation.
	Validation bool `json:"validation"`

	// Relationship category flags.
	ContainsOwnerManyToMany      bool `json:"containsOwnerManyToMany"`
	ContainsNonOwnerOneToOne     bool `json:"containsNonOwnerOneToOne"`
	ContainsOwnerOneToOne        bool `json:"containsOwnerOneToOne"`
	ContainsOneToMany            bool `json:"containsOneToMany"`
	ContainsManyToOne            bool `json:"containsManyToOne"`
	ContainsEmbeddedTarget       bool `json:"containsEmbeddedTarget"`
	ContainsRequiredRelationship bool `json:"containsRequiredRelationship"`

	// RelatedEntities lists the distinct related-entity type names,
	// deduplicated in insertion order. RelationshipsByTarget maps each of
	// those names to the relationships targeting it, preserving order and
	// multiplicity.
	RelatedEntities       []string                              `json:"relatedEntities"`
	RelationshipsByTarget map[string][]*schema.RelationshipSpec `json:"relationshipsByTarget"`

	// EnumInstances names the translation-resource keys the localization
	// renderer must load, deduplicated in insertion order.
	EnumInstances []string `json:"enumInstances"`
}

// Resolve validates and resolves a raw entity document into a descriptor.
// The input is never mutated. On a fatal schema error no descriptor is
// returned; warnings collected before the failure are still reported.
func (r *Resolver) Resolve(raw *schema.EntityDocument) (*Descriptor, []schema.Warning, error) {
	doc := raw.Clone()
	var warnings []schema.Warning

	w, err := r.ValidateEntity(doc)
	warnings = append(warnings, w...)
	if err != nil {
		return nil, warnings, err
	}

	for _, field := range doc.Fields {
		w, err := NormalizeField(doc.Name, doc.Prefix, field)
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, err
		}
	}

	for _, rel := range doc.Relationships {
		w, err := ResolveRelationship(doc, rel, r.lookup)
		warnings = append(warnings, w...)
		if err != nil {
			return nil, warnings, err
		}
	}

	return r.assemble(doc), warnings, nil
}

// assemble computes the document-wide derived flags, scanning fields and
// relationships exactly once each.
func (r *Resolver) assemble(doc *schema.EntityDocument) *Descriptor {
	d := &Descriptor{
		Entity:                doc,
		EntityClass:           naming.PascalCase(doc.Name),
		EntityClassPlural:     naming.Pluralize(naming.PascalCase(doc.Name)),
		EntityInstance:        naming.CamelCase(doc.Name),
		EntityApiUrl:          naming.Pluralize(naming.KebabCase(doc.Name)),
		EntityFolderName:      naming.KebabCase(doc.Name),
		EntityStateName:       naming.KebabCase(doc.Name),
		EntityNameHumanized:   naming.StartCase(doc.Name),
		RelationshipsByTarget: make(map[string][]*schema.RelationshipSpec),
	}

	seenEnums := make(map[string]bool)
	for _, f := range doc.Fields {
		switch f.FieldType {
		case schema.TypeInstant:
			d.FieldsContainInstant = true
		case schema.TypeZonedDateTime:
			d.FieldsContainZonedDateTime = true
		case schema.TypeLocalDate:
			d.FieldsContainLocalDate = true
		case schema.TypeDuration:
			d.FieldsContainDuration = true
		case schema.TypeBigDecimal:
			d.FieldsContainBigDecimal = true
		}
		if schema.IsNumericType(f.FieldType) {
			d.FieldsContainNumeric = true
		}
		if schema.IsBinaryType(f.FieldType) {
			d.FieldsContainBlob = true
		}
		if f.FieldValidate {
			d.Validation = true
		}
		if f.FieldIsEnum && f.EnumInstance != "" && !seenEnums[f.EnumInstance] {
			seenEnums[f.EnumInstance] = true
			d.EnumInstances = append(d.EnumInstances, f.EnumInstance)
		}
	}

	seenTargets := make(map[string]bool)
	for _, rel := range doc.Relationships {
		switch rel.RelationshipType {
		case schema.ManyToMany:
			if rel.IsOwnerSide() {
				d.ContainsOwnerManyToMany = true
			}
		case schema.OneToOne:
			if rel.IsOwnerSide() {
				d.ContainsOwnerOneToOne = true
			} else {
				d.ContainsNonOwnerOneToOne = true
			}
		case schema.OneToMany:
			d.ContainsOneToMany = true
		case schema.ManyToOne:
			d.ContainsManyToOne = true
		}
		if rel.OtherEntityIsEmbedded {
			d.ContainsEmbeddedTarget = true
		}
		if rel.RelationshipValidate && rel.HasValidateRule(schema.RuleRequired) {
			d.ContainsRequiredRelationship = true
		}

		target := rel.OtherEntityNameCapitalized
		if !seenTargets[target] {
			seenTargets[target] = true
			d.RelatedEntities = append(d.RelatedEntities, target)
		}
		d.RelationshipsByTarget[target] = append(d.RelationshipsByTarget[target], rel)
	}

	return d
}
