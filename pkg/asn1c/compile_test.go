package asn1c

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
	"github.com/go-asn1c/asn1c/pkg/asn1/linker"
)

func TestValidateEndToEnd(t *testing.T) {
	moduleA := &ir.ModuleReference{Name: "ModuleA", Tagging: ir.Implicit}

	tldsA := []ir.TLD{
		ir.NewTypeDefinition("Base", &ir.IntegerType{}),
		ir.NewTypeDefinition("Derived", ir.NamedType{Name: "Base"}),
	}

	moduleB := &ir.ModuleReference{Name: "ModuleB", Tagging: ir.Implicit}

	tldsB := []ir.TLD{
		ir.NewTypeDefinition("Bounded", &ir.IntegerType{
			Constraints: []ir.Constraint{&ir.SubtypeConstraint{
				Kind: ir.ValueRangeKind,
				Min:  ir.IntegerValue{Value: big.NewInt(0)},
				Max:  ir.IntegerValue{Value: big.NewInt(10)},
			}},
		}),
	}

	resolved, diagnostics := Validate([]ModuleInput{
		{Module: moduleA, TLDs: tldsA},
		{Module: moduleB, TLDs: tldsB},
	}, linker.DefaultConfig)

	assert.Empty(t, diagnostics, "a clean working set should produce no diagnostics")
	assert.Len(t, resolved.TLDs, 3)
	assert.Len(t, resolved.Groups, 2)

	derived, ok := findTLD(resolved.TLDs, "Derived")
	assert.True(t, ok)
	assert.Equal(t, []string{"Base"}, derived.Supertypes(), "linking should have run before validation")

	assert.Equal(t, "ModuleA", resolved.Groups[0].Module, "groups should sort lexicographically by module name")
	assert.Equal(t, "ModuleB", resolved.Groups[1].Module)
}

func TestValidateDropsInvalidTLDButKeepsOthers(t *testing.T) {
	mod := &ir.ModuleReference{Name: "M", Tagging: ir.Implicit}

	tlds := []ir.TLD{
		ir.NewTypeDefinition("Good", &ir.IntegerType{}),
		ir.NewTypeDefinition("Bad", &ir.IntegerType{
			Constraints: []ir.Constraint{&ir.SubtypeConstraint{
				Kind: ir.ValueRangeKind,
				Min:  ir.IntegerValue{Value: big.NewInt(10)},
				Max:  ir.IntegerValue{Value: big.NewInt(0)},
			}},
		}),
	}

	resolved, diagnostics := Validate([]ModuleInput{{Module: mod, TLDs: tlds}}, linker.DefaultConfig)

	assert.Len(t, resolved.TLDs, 1)
	assert.Equal(t, "Good", resolved.TLDs[0].Name())
	assert.Len(t, diagnostics, 1)
}

func TestValidatePanicsOnNilModule(t *testing.T) {
	assert.Panics(t, func() {
		Validate([]ModuleInput{{Module: nil, TLDs: []ir.TLD{ir.NewTypeDefinition("X", &ir.IntegerType{})}}}, linker.DefaultConfig)
	})
}

func findTLD(tlds []ir.TLD, name string) (ir.TLD, bool) {
	for _, tld := range tlds {
		if tld.Name() == name {
			return tld, true
		}
	}

	return nil, false
}
