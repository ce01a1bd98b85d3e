package linker

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

func TestResolveClassReference(t *testing.T) {
	idx := index.New()

	class := &ir.InformationObjectClass{
		Fields: []ir.InformationObjectClassField{{
			Identifier: ir.ObjectFieldIdentifier{Identifier: "&Type"},
			Kind:       ir.FixedTypeField,
		}},
	}

	classDef := ir.NewInformationDefinition("MY-CLASS", ir.ClassKind, ir.ClassLink{})
	classDef.Class = class
	idx.Insert(classDef)

	object := ir.NewInformationDefinition("my-object", ir.ObjectKind, ir.NewClassLinkByName("MY-CLASS"))
	idx.Insert(object)

	diagnostics := Link(idx, DefaultConfig)
	assert.Empty(t, diagnostics, "a resolvable class reference should produce no diagnostics")

	resolved, ok := idx.Lookup("my-object")
	assert.True(t, ok)

	info := resolved.(*ir.InformationDefinition)
	assert.Equal(t, ir.ByReference, info.ClassLink.State(), "the class link should transition to ByReference")
	assert.Same(t, class, info.ClassLink.Class(), "the class link should resolve to the class TLD's own class")
}

func TestExpandComponentsOf(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Base", &ir.SequenceType{
		Fields: []ir.Field{{Name: "id", Type: &ir.IntegerType{}}},
	}))

	idx.Insert(ir.NewTypeDefinition("Extended", &ir.SequenceType{
		Fields: []ir.Field{
			{Name: "before", Type: &ir.BooleanType{}},
			{Name: "after", Type: &ir.BooleanType{}},
		},
		Components: []ir.ComponentsOf{{ReferencedTypeName: "Base", Position: 1}},
	}))

	Link(idx, DefaultConfig)

	resolved, ok := idx.Lookup("Extended")
	assert.True(t, ok)

	seq := resolved.(*ir.TypeDefinition).Type.(*ir.SequenceType)
	assert.Empty(t, seq.Components, "COMPONENTS OF notations should be cleared once expanded")

	names := make([]string, len(seq.Fields))
	for i, f := range seq.Fields {
		names[i] = f.Name
	}

	assert.Equal(t, []string{"before", "id", "after"}, names, "the referenced fields should splice at the recorded position")
}

func TestExpandComponentsOfCarriesExtensibleForward(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Base", &ir.SequenceType{
		Fields:     []ir.Field{{Name: "id", Type: &ir.IntegerType{}}},
		Extensible: true,
	}))

	idx.Insert(ir.NewTypeDefinition("Extended", &ir.SequenceType{
		Fields:     []ir.Field{{Name: "before", Type: &ir.BooleanType{}}},
		Components: []ir.ComponentsOf{{ReferencedTypeName: "Base", Position: 1}},
	}))

	Link(idx, DefaultConfig)

	resolved, ok := idx.Lookup("Extended")
	assert.True(t, ok)

	seq := resolved.(*ir.TypeDefinition).Type.(*ir.SequenceType)
	assert.True(t, seq.Extensible, "an extension marker on the referenced type should carry forward onto the including type")
}

func TestLinkChoiceSelectionType(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Payload", &ir.ChoiceType{
		Alternatives: []ir.Field{
			{Name: "number", Type: &ir.IntegerType{}},
			{Name: "flag", Type: &ir.BooleanType{}},
		},
	}))

	idx.Insert(ir.NewTypeDefinition("NumberAlias", ir.ChoiceSelectionType{
		Alternative: "number",
		ChoiceName:  "Payload",
	}))

	diagnostics := Link(idx, DefaultConfig)
	assert.Empty(t, diagnostics)

	resolved, ok := idx.Lookup("NumberAlias")
	assert.True(t, ok)

	sel := resolved.(*ir.TypeDefinition).Type.(ir.ChoiceSelectionType)
	assert.Equal(t, "INTEGER", sel.Resolved.TypeName(), "the selection should resolve to the chosen alternative's own type")
}

func TestLinkChoiceSelectionTypeMissingAlternativeIsHardError(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Payload", &ir.ChoiceType{
		Alternatives: []ir.Field{{Name: "number", Type: &ir.IntegerType{}}},
	}))

	idx.Insert(ir.NewTypeDefinition("GhostAlias", ir.ChoiceSelectionType{
		Alternative: "nonexistent",
		ChoiceName:  "Payload",
	}))

	diagnostics := Link(idx, DefaultConfig)

	assert.Len(t, diagnostics, 1, "a missing choice alternative must surface exactly one diagnostic")
	assert.Equal(t, diag.MissingDependency, diagnostics[0].Kind)
	assert.Equal(t, diag.Error, diagnostics[0].Severity, "a missing choice alternative is always an error, regardless of Config")
}

func TestResolveObjectSetReference(t *testing.T) {
	idx := index.New()

	base := ir.NewInformationDefinition("BaseSet", ir.ObjectSetKind, ir.ClassLink{})
	base.ObjectSet = &ir.ObjectSetReference{Elements: []ir.InformationObject{{Fields: map[string]any{"id": 1}}}}
	idx.Insert(base)

	extended := ir.NewInformationDefinition("ExtendedSet", ir.ObjectSetKind, ir.ClassLink{})
	extended.ObjectSet = &ir.ObjectSetReference{ReferencedSetName: "BaseSet"}
	idx.Insert(extended)

	Link(idx, DefaultConfig)

	resolved, ok := idx.Lookup("ExtendedSet")
	assert.True(t, ok)

	info := resolved.(*ir.InformationDefinition)
	assert.Len(t, info.ObjectSet.Elements, 1, "the referenced set's elements should be inlined")
	assert.Empty(t, info.ObjectSet.ReferencedSetName, "the reference should be cleared once inlined")
}

func TestResolveConstraintReferenceDirectValueLookup(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewValueDefinition("max-retries", ir.NamedType{Name: "INTEGER"}, ir.IntegerValue{Value: big.NewInt(5)}))
	idx.Insert(ir.NewTypeDefinition("Retries", &ir.IntegerType{
		Constraints: []ir.Constraint{&ir.SubtypeConstraint{
			Kind: ir.ValueRangeKind,
			Min:  ir.IntegerValue{Value: big.NewInt(0)},
			Max:  ir.NamedReferenceValue{Name: "max-retries"},
		}},
	}))

	diagnostics := Link(idx, DefaultConfig)
	assert.Empty(t, diagnostics, "a directly resolvable value reference should produce no diagnostics")

	resolved, _ := idx.Lookup("Retries")
	sc := resolved.(*ir.TypeDefinition).Type.(*ir.IntegerType).Constraints[0].(*ir.SubtypeConstraint)

	maxVal, ok := sc.Max.(ir.IntegerValue)
	assert.True(t, ok, "the max bound should have been substituted with a concrete IntegerValue")
	assert.Equal(t, int64(5), maxVal.Value.Int64())
}

func TestResolveConstraintReferenceTypedEnumScan(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Color", &ir.EnumeratedType{
		Values: map[string]int64{"red": 0, "green": 1, "blue": 2},
		Order:  []string{"red", "green", "blue"},
	}))

	idx.Insert(ir.NewTypeDefinition("Favourite", ir.NamedType{
		Name: "Color",
		Constraints: []ir.Constraint{&ir.SubtypeConstraint{
			Kind:  ir.SingleValueKind,
			Value: ir.NamedReferenceValue{Name: "green"},
		}},
	}))

	diagnostics := Link(idx, DefaultConfig)
	assert.Empty(t, diagnostics)

	resolved, _ := idx.Lookup("Favourite")
	sc := resolved.(*ir.TypeDefinition).Type.(ir.NamedType).Constraints[0].(*ir.SubtypeConstraint)

	val, ok := sc.Value.(ir.EnumeratedValue)
	assert.True(t, ok, "the single-value constraint should resolve to the enumerated identifier's value")
	assert.Equal(t, "green", val.Identifier)
	assert.Equal(t, int64(1), val.Value)
}

func TestResolveConstraintReferenceUnresolvedDefaultsToWarning(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Lonely", &ir.IntegerType{
		Constraints: []ir.Constraint{&ir.SubtypeConstraint{
			Kind:  ir.SingleValueKind,
			Value: ir.NamedReferenceValue{Name: "nowhere"},
		}},
	}))

	diagnostics := Link(idx, DefaultConfig)

	assert.Len(t, diagnostics, 1)
	assert.Equal(t, diag.Warning, diagnostics[0].Severity, "an unresolved constraint reference defaults to a warning")
}

func TestResolveConstraintReferenceStrictModeEscalatesToError(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Lonely", &ir.IntegerType{
		Constraints: []ir.Constraint{&ir.SubtypeConstraint{
			Kind:  ir.SingleValueKind,
			Value: ir.NamedReferenceValue{Name: "nowhere"},
		}},
	}))

	cfg := DefaultConfig
	cfg.StrictConstraints = true

	diagnostics := Link(idx, cfg)

	assert.Len(t, diagnostics, 1)
	assert.Equal(t, diag.Error, diagnostics[0].Severity, "Config.StrictConstraints should escalate an unresolved reference to an error")
}

func TestCollectSupertypes(t *testing.T) {
	idx := index.New()

	idx.Insert(ir.NewTypeDefinition("Base", &ir.IntegerType{}))
	idx.Insert(ir.NewTypeDefinition("Middle", ir.NamedType{Name: "Base"}))
	idx.Insert(ir.NewTypeDefinition("Leaf", ir.NamedType{Name: "Middle"}))

	Link(idx, DefaultConfig)

	leaf, _ := idx.Lookup("Leaf")
	assert.Equal(t, []string{"Middle", "Base"}, leaf.Supertypes(), "the supertype chain should list every ancestor transitively")

	base, _ := idx.Lookup("Base")
	assert.Empty(t, base.Supertypes(), "a TLD with no named-type reference has no supertypes")
}

func TestBitStringToOctets(t *testing.T) {
	tests := []struct {
		name      string
		bits      []bool
		want      []byte
		wantError bool
	}{
		{"single byte", []bool{true, false, true, false, true, false, true, false}, []byte{0xAA}, false},
		{"two bytes", []bool{false, false, false, false, false, false, false, true, true, false, false, false, false, false, false, false}, []byte{0x01, 0x80}, false},
		{"misaligned length", []bool{true, false, true}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ir.NewBitVectorFromBits(tt.bits)
			octets, d := BitStringToOctets(v, "Test")

			if tt.wantError {
				assert.Nil(t, octets)
				assert.NotNil(t, d)
				assert.Equal(t, diag.LinkerError, d.Kind)
				assert.Equal(t, diag.Error, d.Severity, "a malformed BIT STRING length is always a hard error")
			} else {
				assert.Nil(t, d)
				assert.Equal(t, tt.want, octets)
			}
		})
	}
}
