package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entforge/entforge/internal/schema"
)

func noSibling(string) (*schema.EntityDocument, bool) { return nil, false }

func siblings(docs ...*schema.EntityDocument) Lookup {
	byName := make(map[string]*schema.EntityDocument, len(docs))
	for _, d := range docs {
		byName[d.Name] = d
	}
	return func(name string) (*schema.EntityDocument, bool) {
		d, ok := byName[name]
		return d, ok
	}
}

func TestResolveRelationshipMissingOtherEntityName(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{RelationshipType: schema.ManyToOne}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "otherEntityName")
}

func TestResolveRelationshipMissingType(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{OtherEntityName: "customer"}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relationshipType")
}

func TestResolveRelationshipUnknownType(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{OtherEntityName: "customer", RelationshipType: "belongs-to"}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs-to")
}

func TestResolveRelationshipNameDefaultsToTarget(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{OtherEntityName: "customer", RelationshipType: schema.ManyToOne}

	warnings, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)

	assert.Equal(t, "customer", rel.RelationshipName)
	found := false
	for _, w := range warnings {
		if w.Key == "relationshipName" {
			found = true
		}
	}
	assert.True(t, found, "expected a relationshipName fallback warning")
}

func TestResolveRelationshipOwnerSideRequired(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}

	for _, typ := range []string{schema.OneToOne, schema.ManyToMany} {
		t.Run(typ, func(t *testing.T) {
			rel := &schema.RelationshipSpec{
				RelationshipName: "tags",
				OtherEntityName:  "tag",
				RelationshipType: typ,
			}
			_, err := ResolveRelationship(doc, rel, noSibling)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "ownerSide")
		})
	}

	// Unconstrained for the other types.
	rel := &schema.RelationshipSpec{
		RelationshipName: "items",
		OtherEntityName:  "orderItem",
		RelationshipType: schema.OneToMany,
	}
	_, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)
}

func TestResolveRelationshipOtherEntityFieldDefault(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	owner := true

	t.Run("many-to-one defaults to id", func(t *testing.T) {
		rel := &schema.RelationshipSpec{
			RelationshipName: "customer",
			OtherEntityName:  "customer",
			RelationshipType: schema.ManyToOne,
		}
		warnings, err := ResolveRelationship(doc, rel, noSibling)
		require.NoError(t, err)
		assert.Equal(t, "id", rel.OtherEntityField)
		assert.Equal(t, "Id", rel.OtherEntityFieldCapitalized)

		found := false
		for _, w := range warnings {
			if w.Key == "otherEntityField" && w.Fallback == "id" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("owning many-to-many defaults to id", func(t *testing.T) {
		rel := &schema.RelationshipSpec{
			RelationshipName: "tags",
			OtherEntityName:  "tag",
			RelationshipType: schema.ManyToMany,
			OwnerSide:        &owner,
		}
		_, err := ResolveRelationship(doc, rel, noSibling)
		require.NoError(t, err)
		assert.Equal(t, "id", rel.OtherEntityField)
	})

	t.Run("one-to-many gets no default", func(t *testing.T) {
		rel := &schema.RelationshipSpec{
			RelationshipName: "items",
			OtherEntityName:  "orderItem",
			RelationshipType: schema.OneToMany,
		}
		_, err := ResolveRelationship(doc, rel, noSibling)
		require.NoError(t, err)
		assert.Empty(t, rel.OtherEntityField)
	})
}

func TestResolveRelationshipSelfReferentialRequired(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Employee"}
	rel := &schema.RelationshipSpec{
		RelationshipName:          "manager",
		OtherEntityName:           "employee",
		RelationshipType:          schema.ManyToOne,
		RelationshipValidateRules: []string{schema.RuleRequired},
	}

	warnings, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)

	assert.False(t, rel.RelationshipValidate)
	found := false
	for _, w := range warnings {
		if w.Field == "manager" {
			found = true
		}
	}
	assert.True(t, found, "expected a warning for the self-referential required relationship")
}

func TestResolveRelationshipNamingDerivation(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "orderItem",
		OtherEntityName:  "orderItem",
		RelationshipType: schema.OneToMany,
	}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)

	assert.Equal(t, "OrderItem", rel.RelationshipNameCapitalized)
	assert.Equal(t, "orderItems", rel.RelationshipNamePlural)
	assert.Equal(t, "orderItem", rel.RelationshipFieldName)
	assert.Equal(t, "orderItems", rel.RelationshipFieldNamePlural)
	assert.Equal(t, "OrderItem", rel.OtherEntityNameCapitalized)
	assert.Equal(t, "orderItems", rel.OtherEntityNamePlural)
	assert.Equal(t, "OrderItems", rel.OtherEntityNameCapitalizedPlural)
	assert.Equal(t, "order_item", rel.OtherEntityTableName)
	assert.Equal(t, "OrderItem", rel.OtherEntityAngularName)
}

func TestResolveRelationshipUserSpecialCase(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order", Prefix: "app"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "owner",
		OtherEntityName:  "user",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)

	assert.Equal(t, "app_user", rel.OtherEntityTableName)
	assert.Equal(t, "User", rel.OtherEntityAngularName)
}

func TestResolveRelationshipUserDefaultPrefix(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "owner",
		OtherEntityName:  "user",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)
	assert.Equal(t, "jhi_user", rel.OtherEntityTableName)
}

func TestResolveRelationshipTargetTableFromSibling(t *testing.T) {
	sibling := &schema.EntityDocument{Name: "customer", EntityTableName: "crm_customer"}
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "customer",
		OtherEntityName:  "customer",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, siblings(sibling))
	require.NoError(t, err)
	assert.Equal(t, "crm_customer", rel.OtherEntityTableName)
}

func TestResolveRelationshipReservedTargetTable(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Member", Prefix: "jhi"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "group",
		OtherEntityName:  "group",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)
	assert.Equal(t, "jhi_group", rel.OtherEntityTableName)
}

func TestReciprocalInference(t *testing.T) {
	// Order declares many-to-one "customer" to Customer; Customer declares
	// one-to-many "order" back, naming "customer" as its reciprocal.
	customer := &schema.EntityDocument{
		Name: "Customer",
		Relationships: []*schema.RelationshipSpec{
			{
				RelationshipName:            "order",
				RelationshipType:            schema.OneToMany,
				OtherEntityName:             "order",
				OtherEntityRelationshipName: "customer",
			},
		},
	}

	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "customer",
		OtherEntityName:  "Customer",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, siblings(customer))
	require.NoError(t, err)

	assert.Equal(t, "order", rel.OtherEntityRelationshipName)
	assert.Equal(t, "orders", rel.OtherEntityRelationshipNamePlural)
	assert.Equal(t, "Order", rel.OtherEntityRelationshipNameCapitalized)
}

func TestReciprocalInferenceSymmetricNames(t *testing.T) {
	// Both sides use the same relationship name r; resolving the owning side
	// must populate otherEntityRelationshipName == r.
	b := &schema.EntityDocument{
		Name: "B",
		Relationships: []*schema.RelationshipSpec{
			{
				RelationshipName:            "r",
				RelationshipType:            schema.OneToMany,
				OtherEntityName:             "a",
				OtherEntityRelationshipName: "r",
			},
		},
	}

	a := &schema.EntityDocument{Name: "A"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "r",
		OtherEntityName:  "b",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(a, rel, siblings(b))
	require.NoError(t, err)
	assert.Equal(t, "r", rel.OtherEntityRelationshipName)
}

func TestReciprocalInferenceTypeMismatch(t *testing.T) {
	sibling := &schema.EntityDocument{
		Name: "Customer",
		Relationships: []*schema.RelationshipSpec{
			{
				RelationshipName:            "order",
				RelationshipType:            schema.ManyToMany, // incompatible with our many-to-one
				OtherEntityName:             "order",
				OtherEntityRelationshipName: "customer",
			},
		},
	}

	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "customer",
		OtherEntityName:  "customer",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, siblings(sibling))
	require.NoError(t, err)
	assert.Empty(t, rel.OtherEntityRelationshipName)
}

func TestReciprocalInferenceMissingNameWarns(t *testing.T) {
	sibling := &schema.EntityDocument{
		Name: "Customer",
		Relationships: []*schema.RelationshipSpec{
			{
				RelationshipName: "order",
				RelationshipType: schema.OneToMany,
				OtherEntityName:  "order",
				// no otherEntityRelationshipName: cannot compare
			},
		},
	}

	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "customer",
		OtherEntityName:  "customer",
		RelationshipType: schema.ManyToOne,
	}

	warnings, err := ResolveRelationship(doc, rel, siblings(sibling))
	require.NoError(t, err)

	assert.Empty(t, rel.OtherEntityRelationshipName)
	found := false
	for _, w := range warnings {
		if w.Field == "customer" {
			found = true
		}
	}
	assert.True(t, found, "expected a cannot-compare warning")
}

func TestReciprocalInferenceSkippedForOneToOne(t *testing.T) {
	owner := true
	sibling := &schema.EntityDocument{
		Name: "passport",
		Relationships: []*schema.RelationshipSpec{
			{
				RelationshipName:            "holder",
				RelationshipType:            schema.OneToOne,
				OtherEntityName:             "person",
				OtherEntityRelationshipName: "passport",
			},
		},
	}

	doc := &schema.EntityDocument{Name: "Person"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "passport",
		OtherEntityName:  "passport",
		RelationshipType: schema.OneToOne,
		OwnerSide:        &owner,
	}

	_, err := ResolveRelationship(doc, rel, siblings(sibling))
	require.NoError(t, err)
	assert.Empty(t, rel.OtherEntityRelationshipName)
}

func TestResolveRelationshipMissingSiblingTolerated(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "invoice",
		OtherEntityName:  "invoice",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, noSibling)
	require.NoError(t, err)
	assert.Equal(t, "invoice", rel.OtherEntityTableName)
}

func TestDTOConsistencyWarning(t *testing.T) {
	sibling := &schema.EntityDocument{Name: "customer", DTO: schema.DTONone}
	doc := &schema.EntityDocument{Name: "Order", DTO: schema.DTOMapstruct}
	rel := &schema.RelationshipSpec{
		RelationshipName: "customer",
		OtherEntityName:  "customer",
		RelationshipType: schema.ManyToOne,
	}

	warnings, err := ResolveRelationship(doc, rel, siblings(sibling))
	require.NoError(t, err)

	found := false
	for _, w := range warnings {
		if w.Field == "customer" && w.Entity == "Order" {
			found = true
		}
	}
	assert.True(t, found, "expected a DTO consistency warning")
}

func TestDTOConsistencySkippedForUser(t *testing.T) {
	doc := &schema.EntityDocument{Name: "Order", DTO: schema.DTOMapstruct}
	rel := &schema.RelationshipSpec{
		RelationshipName: "owner",
		OtherEntityName:  "user",
		RelationshipType: schema.ManyToOne,
	}

	warnings, err := ResolveRelationship(doc, rel, siblings(&schema.EntityDocument{Name: "user"}))
	require.NoError(t, err)

	for _, w := range warnings {
		assert.NotContains(t, w.Message, "mapstruct")
	}
}

func TestResolveRelationshipEmbeddedTarget(t *testing.T) {
	sibling := &schema.EntityDocument{Name: "address", Embedded: true}
	doc := &schema.EntityDocument{Name: "Customer"}
	rel := &schema.RelationshipSpec{
		RelationshipName: "address",
		OtherEntityName:  "address",
		RelationshipType: schema.ManyToOne,
	}

	_, err := ResolveRelationship(doc, rel, siblings(sibling))
	require.NoError(t, err)
	assert.True(t, rel.OtherEntityIsEmbedded)
}
