package group

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

func stamped(name, module string, position int) ir.TLD {
	td := ir.NewTypeDefinition(name, &ir.IntegerType{})
	td.Stamp(ir.NewModuleReference(module, ir.Implicit), position)

	return td
}

func TestPartitionGroupsAndOrdersByModule(t *testing.T) {
	tlds := []ir.TLD{
		stamped("Beta", "Zebra", 1),
		stamped("Alpha", "Zebra", 0),
		stamped("Gamma", "Apple", 0),
	}

	groups := Partition(tlds)

	assert.Len(t, groups, 2, "should partition into two modules")
	assert.Equal(t, "Apple", groups[0].Module, "module names should sort lexicographically")
	assert.Equal(t, "Zebra", groups[1].Module)

	assert.Equal(t, []string{"Alpha", "Beta"}, namesOf(groups[1].TLDs), "within a module, TLDs should retain positional order")
}

func TestPartitionUnnamedModuleSortsFirst(t *testing.T) {
	unstamped := ir.NewTypeDefinition("Orphan", &ir.IntegerType{})

	groups := Partition([]ir.TLD{
		stamped("Alpha", "Zebra", 0),
		unstamped,
	})

	assert.Equal(t, "", groups[0].Module, "a TLD with no module reference groups under the empty string")
	assert.Equal(t, "Zebra", groups[1].Module)
}

func namesOf(tlds []ir.TLD) []string {
	names := make([]string, len(tlds))
	for i, tld := range tlds {
		names[i] = tld.Name()
	}

	return names
}
