// Package group implements the module-grouping pass (§4.4): after
// validation, resolved TLDs are partitioned by their owning module name, in
// preparation for the emitter.
package group

import (
	"sort"

	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// Group is one module's worth of resolved TLDs, in their original positional
// order.
type Group struct {
	Module string
	TLDs   []ir.TLD
}

// Partition groups tlds by their owning module's name (the shared module
// reference's Name attribute). A TLD with no module reference — a synthetic
// or error-recovery case — groups under the empty string. Within each group,
// TLDs retain their original positional order (§3 invariant 3); groups
// themselves are returned in lexicographic order by module name for
// determinism (§8 property 2), with the empty-string group (if present)
// sorting first.
func Partition(tlds []ir.TLD) []Group {
	byModule := make(map[string][]ir.TLD)

	for _, tld := range tlds {
		name := ""
		if mod := tld.Module(); mod != nil {
			name = mod.Name
		}

		byModule[name] = append(byModule[name], tld)
	}

	names := make([]string, 0, len(byModule))
	for name := range byModule {
		names = append(names, name)
	}

	sort.Strings(names)

	groups := make([]Group, 0, len(names))

	for _, name := range names {
		members := byModule[name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Position() < members[j].Position()
		})

		groups = append(groups, Group{Module: name, TLDs: members})
	}

	return groups
}
