package linker

import (
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// collectSupertypes implements the final step of §4.2.1: after the five
// sub-tasks, walk the TLD's referenced-name chain and record the transitive
// set of supertypes for later use by the validator and the emitter. Runs once
// for every key; when the chain is empty (most TLDs have no supertypes)
// nothing is recorded and the TLD's Supertypes() stays empty.
func (l *linker) collectSupertypes(idx *index.Index, key string) {
	tld, ok := idx.Lookup(key)
	if !ok {
		return
	}

	var chain []string

	switch v := tld.(type) {
	case *ir.TypeDefinition:
		chain = followNamedTypeChain(v.Type, idx)
	case *ir.ValueDefinition:
		chain = followNamedTypeChain(v.ValueType, idx)
	}

	if len(chain) == 0 {
		return
	}

	removed, _ := idx.Remove(key)

	switch v := removed.(type) {
	case *ir.TypeDefinition:
		v.SetSupertypes(chain)
	case *ir.ValueDefinition:
		v.SetSupertypes(chain)
	case *ir.InformationDefinition:
		v.SetSupertypes(chain)
	}

	idx.Insert(removed)
}

// followNamedTypeChain follows t's chain of named-type references (and any
// resolved choice-selection type along the way) through the index, returning
// every name visited in order. A name already visited breaks the walk
// (guards against any pathological cycle slipping through, even though §9
// states the design avoids them by construction).
func followNamedTypeChain(t ir.ASN1Type, idx *index.Index) []string {
	var (
		chain   []string
		visited = make(map[string]bool)
		cur     = t
	)

	for {
		var name string

		switch v := cur.(type) {
		case ir.NamedType:
			name = v.Name
		case ir.ChoiceSelectionType:
			if v.Resolved == nil {
				return chain
			}
			cur = v.Resolved
			continue
		default:
			return chain
		}

		if name == "" || visited[name] {
			return chain
		}

		visited[name] = true
		chain = append(chain, name)

		tld, ok := idx.Lookup(name)
		if !ok {
			return chain
		}

		typeDef, ok := tld.(*ir.TypeDefinition)
		if !ok {
			return chain
		}

		cur = typeDef.Type
	}
}
