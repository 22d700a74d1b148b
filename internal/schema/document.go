// Package schema defines the persisted entity-document model and the resolved
// descriptor types consumed by downstream renderers, together with the type
// tables, reserved-word tables, and diagnostics shared by the resolution
// pipeline.
package schema

// Relationship type values.
const (
	OneToOne   = "one-to-one"
	OneToMany  = "one-to-many"
	ManyToOne  = "many-to-one"
	ManyToMany = "many-to-many"
)

// DTO mode values.
const (
	DTONone      = "no"
	DTOMapstruct = "mapstruct"
)

// Service mode values.
const (
	ServiceNone  = "no"
	ServiceClass = "serviceClass"
	ServiceImpl  = "serviceImpl"
)

// Pagination mode values.
const (
	PaginationNone     = "no"
	PaginationPager    = "pagination"
	PaginationInfinite = "infinite-scroll"
)

// Database type values.
const (
	DatabaseSQL       = "sql"
	DatabaseMongoDB   = "mongodb"
	DatabaseCouchbase = "couchbase"
	DatabaseCassandra = "cassandra"
	DatabaseNone      = "no"
)

// UserEntityName is the built-in user entity. Relationships targeting it
// resolve to a fixed table and client name regardless of sibling lookup.
const UserEntityName = "user"

// DefaultPrefix is the table/column prefix applied when a derived identifier
// collides with a reserved database word.
const DefaultPrefix = "jhi"

// EntityDocument is the user-authored description of one modeled entity.
// It is persisted as one JSON document per entity name; the resolution pipeline
// mutates a private copy, attaching derived attributes next to the authored
// ones.
type EntityDocument struct {
	Name            string              `json:"name"`
	EntityTableName string              `json:"entityTableName,omitempty"`
	Fields          []*FieldSpec        `json:"fields"`
	Relationships   []*RelationshipSpec `json:"relationships"`

	DatabaseType  string `json:"databaseType,omitempty"`
	DTO           string `json:"dto,omitempty"`
	Service       string `json:"service,omitempty"`
	Pagination    string `json:"pagination,omitempty"`
	ChangelogDate string `json:"changelogDate,omitempty"`
	ReadOnly      bool   `json:"readOnly,omitempty"`
	Embedded      bool   `json:"embedded,omitempty"`
	Prefix        string `json:"jhiPrefix,omitempty"`

	// PagingMetadata controls whether list responses carry page metadata.
	// Pointer so an absent key is distinguishable from an explicit false.
	PagingMetadata *bool `json:"pagingMetadata,omitempty"`

	SkipServer                  bool `json:"skipServer,omitempty"`
	SkipCheckLengthOfIdentifier bool `json:"skipCheckLengthOfIdentifier,omitempty"`
}

// FieldSpec describes one scalar or enum-valued attribute of an entity.
// Derived attributes are only filled in when empty, so a partially-resolved
// document survives repeated resolution passes unchanged.
type FieldSpec struct {
	FieldName          string   `json:"fieldName"`
	FieldType          string   `json:"fieldType"`
	FieldValues        string   `json:"fieldValues,omitempty"`
	FieldValidateRules []string `json:"fieldValidateRules,omitempty"`

	FieldValidateRulesMax       *int   `json:"fieldValidateRulesMax,omitempty"`
	FieldValidateRulesMin       *int   `json:"fieldValidateRulesMin,omitempty"`
	FieldValidateRulesMaxlength *int   `json:"fieldValidateRulesMaxlength,omitempty"`
	FieldValidateRulesMinlength *int   `json:"fieldValidateRulesMinlength,omitempty"`
	FieldValidateRulesMaxbytes  *int   `json:"fieldValidateRulesMaxbytes,omitempty"`
	FieldValidateRulesMinbytes  *int   `json:"fieldValidateRulesMinbytes,omitempty"`
	FieldValidateRulesPattern   string `json:"fieldValidateRulesPattern,omitempty"`

	// Derived attributes.
	FieldNameCapitalized string `json:"fieldNameCapitalized,omitempty"`
	FieldNameUnderscored string `json:"fieldNameUnderscored,omitempty"`
	FieldNameHumanized   string `json:"fieldNameHumanized,omitempty"`
	ColumnName           string `json:"columnName,omitempty"`
	EnumInstance         string `json:"enumInstance,omitempty"`
	FieldIsEnum          bool   `json:"fieldIsEnum,omitempty"`
	FieldValidate        bool   `json:"fieldValidate,omitempty"`
}

// HasValidateRule reports whether the field carries the named validation rule.
func (f *FieldSpec) HasValidateRule(rule string) bool {
	for _, r := range f.FieldValidateRules {
		if r == rule {
			return true
		}
	}
	return false
}

// RelationshipSpec describes a typed association to another entity, including
// the reciprocal-naming metadata resolved from the sibling document.
type RelationshipSpec struct {
	RelationshipName          string   `json:"relationshipName,omitempty"`
	RelationshipType          string   `json:"relationshipType"`
	OtherEntityName           string   `json:"otherEntityName"`
	OwnerSide                 *bool    `json:"ownerSide,omitempty"`
	OtherEntityField          string   `json:"otherEntityField,omitempty"`
	RelationshipValidateRules []string `json:"relationshipValidateRules,omitempty"`

	// Derived attributes.
	RelationshipNameCapitalized string `json:"relationshipNameCapitalized,omitempty"`
	RelationshipNamePlural      string `json:"relationshipNamePlural,omitempty"`
	RelationshipFieldName       string `json:"relationshipFieldName,omitempty"`
	RelationshipFieldNamePlural string `json:"relationshipFieldNamePlural,omitempty"`

	OtherEntityNameCapitalized       string `json:"otherEntityNameCapitalized,omitempty"`
	OtherEntityNamePlural            string `json:"otherEntityNamePlural,omitempty"`
	OtherEntityNameCapitalizedPlural string `json:"otherEntityNameCapitalizedPlural,omitempty"`
	OtherEntityTableName             string `json:"otherEntityTableName,omitempty"`
	OtherEntityAngularName           string `json:"otherEntityAngularName,omitempty"`
	OtherEntityFieldCapitalized      string `json:"otherEntityFieldCapitalized,omitempty"`

	OtherEntityRelationshipName            string `json:"otherEntityRelationshipName,omitempty"`
	OtherEntityRelationshipNamePlural      string `json:"otherEntityRelationshipNamePlural,omitempty"`
	OtherEntityRelationshipNameCapitalized string `json:"otherEntityRelationshipNameCapitalized,omitempty"`

	OtherEntityIsEmbedded bool `json:"otherEntityIsEmbedded,omitempty"`

	// RelationshipValidate is derived from RelationshipValidateRules.
	RelationshipValidate bool `json:"relationshipValidate,omitempty"`
}

// IsOwnerSide reports whether this is the owning side of the relationship.
func (r *RelationshipSpec) IsOwnerSide() bool {
	return r.OwnerSide != nil && *r.OwnerSide
}

// HasValidateRule reports whether the relationship carries the named rule.
func (r *RelationshipSpec) HasValidateRule(rule string) bool {
	for _, v := range r.RelationshipValidateRules {
		if v == rule {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document. Resolution always operates on a
// private copy so concurrent resolution of independent entities never shares
// mutable state.
func (d *EntityDocument) Clone() *EntityDocument {
	if d == nil {
		return nil
	}
	out := *d
	if d.PagingMetadata != nil {
		v := *d.PagingMetadata
		out.PagingMetadata = &v
	}
	out.Fields = make([]*FieldSpec, len(d.Fields))
	for i, f := range d.Fields {
		out.Fields[i] = f.Clone()
	}
	out.Relationships = make([]*RelationshipSpec, len(d.Relationships))
	for i, r := range d.Relationships {
		out.Relationships[i] = r.Clone()
	}
	return &out
}

// Clone returns a deep copy of the field.
func (f *FieldSpec) Clone() *FieldSpec {
	if f == nil {
		return nil
	}
	out := *f
	out.FieldValidateRules = append([]string(nil), f.FieldValidateRules...)
	out.FieldValidateRulesMax = cloneInt(f.FieldValidateRulesMax)
	out.FieldValidateRulesMin = cloneInt(f.FieldValidateRulesMin)
	out.FieldValidateRulesMaxlength = cloneInt(f.FieldValidateRulesMaxlength)
	out.FieldValidateRulesMinlength = cloneInt(f.FieldValidateRulesMinlength)
	out.FieldValidateRulesMaxbytes = cloneInt(f.FieldValidateRulesMaxbytes)
	out.FieldValidateRulesMinbytes = cloneInt(f.FieldValidateRulesMinbytes)
	return &out
}

// Clone returns a deep copy of the relationship.
func (r *RelationshipSpec) Clone() *RelationshipSpec {
	if r == nil {
		return nil
	}
	out := *r
	out.RelationshipValidateRules = append([]string(nil), r.RelationshipValidateRules...)
	if r.OwnerSide != nil {
		v := *r.OwnerSide
		out.OwnerSide = &v
	}
	return &out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
