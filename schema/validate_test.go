package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ── Test Data ─────────────────────────────────────────────────────────────────

var cakeSchema = Config{
	Name: "cakes",
	Collections: []CollectionMeta{
		Collection("cakes", "Cakes",
			Field("cakeFlavor", KindString),
			Field("filling", KindString).OrNull(),
			List("toppings", KindString),
			Field("inStock", KindInt),
			Object("price", Field("amount", KindFloat)),
		),
	},
}

func parse(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	return &doc
}

// ============================================================================
// VALIDATION
// ============================================================================

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	doc := parse(t, `
cakes:
  - cakeFlavor: yellow
    filling: null
    toppings: [berries, edible flowers]
    inStock: 14
    price: {amount: 12}
  - cakeFlavor: honey
    filling: pastry cream
    toppings: []
    inStock: 0
    price: {amount: 10.5}
`)
	assert.NoError(t, Validate(doc, cakeSchema))
}

func TestValidateMissingField(t *testing.T) {
	doc := parse(t, `
cakes:
  - cakeFlavor: yellow
    filling: null
    toppings: [berries]
    price: {amount: 1}
`)
	err := Validate(doc, cakeSchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "cakes[0].inStock")
}

func TestValidateMissingCollection(t *testing.T) {
	err := Validate(parse(t, "pies: []\n"), cakeSchema)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "pies")
}

func TestValidateWrongKinds(t *testing.T) {
	doc := parse(t, `
cakes:
  - cakeFlavor: yellow
    filling: 3
    toppings: berries
    inStock: "14"
    price: {amount: cheap}
`)
	err := Validate(doc, cakeSchema)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldKind)
	assert.NotErrorIs(t, err, ErrMissingField)

	// every defect is reported, not just the first
	assert.Len(t, multierr.Errors(unwrapOne(err)), 4)
	for _, path := range []string{"cakes[0].filling", "cakes[0].toppings", "cakes[0].inStock", "cakes[0].price.amount"} {
		assert.Contains(t, err.Error(), path)
	}
}

func TestValidateNullOnlyWhenNullable(t *testing.T) {
	doc := parse(t, `
cakes:
  - cakeFlavor: ~
    filling: ~
    toppings: [a]
    inStock: 1
    price: {amount: 1}
`)
	err := Validate(doc, cakeSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cakes[0].cakeFlavor")
	assert.NotContains(t, err.Error(), "cakes[0].filling")
}

func TestValidateListElements(t *testing.T) {
	doc := parse(t, `
cakes:
  - cakeFlavor: yellow
    filling: null
    toppings: [berries, 7]
    inStock: 1
    price: {amount: 1}
`)
	err := Validate(doc, cakeSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cakes[0].toppings[1]")
}

func TestValidateTopLevelMustBeMapping(t *testing.T) {
	assert.ErrorIs(t, Validate(parse(t, "- a\n- b\n"), cakeSchema), ErrFieldKind)
	assert.ErrorIs(t, Validate(nil, cakeSchema), ErrFieldKind)
}

func TestOptionalFieldMayBeAbsent(t *testing.T) {
	cfg := Config{Name: "x", Collections: []CollectionMeta{
		{Key: "items", Fields: []FieldMeta{{Key: "note", Kind: KindString}}},
	}}
	assert.NoError(t, Validate(parse(t, "items:\n  - {}\n"), cfg))
}

// ============================================================================
// DESCRIPTORS
// ============================================================================

func TestDescriptorHelpers(t *testing.T) {
	assert.Equal(t, []string{"cakes"}, cakeSchema.CollectionKeys())
	assert.Equal(t, []string{"cakeFlavor", "filling", "toppings", "inStock", "price"},
		cakeSchema.Collections[0].FieldKeys())

	f := Field("filling", KindString).OrNull()
	assert.True(t, f.Required)
	assert.True(t, f.Nullable)
	assert.False(t, Field("name", KindString).Nullable)
}

// unwrapOne strips the "<name>: " wrapper Validate adds around the aggregate.
func unwrapOne(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return err
}
