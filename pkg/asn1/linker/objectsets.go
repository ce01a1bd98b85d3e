package linker

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// resolveObjectSetReference implements §4.2.1 sub-task 4: if an information
// TLD's value references an object set by name, inline that object set's
// elements. An object set may itself reference another (`SetB ::= SetA |
// {moreObjects}`); because this sub-task runs once per key and is never
// re-enqueued (§4.2.3), a chain of object-set references longer than the
// number of remaining worklist passes over the referent may leave a residual
// unresolved reference, same as any other sub-task under the single-sweep
// contract.
func (l *linker) resolveObjectSetReference(idx *index.Index, key string) {
	tld, ok := idx.Lookup(key)
	if !ok {
		return
	}

	info, ok := tld.(*ir.InformationDefinition)
	if !ok || !info.ReferencesObjectSetByName() {
		return
	}

	referencedTLD, ok := idx.Lookup(info.ObjectSet.ReferencedSetName)
	if !ok {
		return
	}

	referenced, ok := referencedTLD.(*ir.InformationDefinition)
	if !ok || referenced.Kind != ir.ObjectSetKind || referenced.ObjectSet == nil || !referenced.ObjectSet.Resolved() {
		return
	}

	removed, _ := idx.Remove(key)
	info = removed.(*ir.InformationDefinition)
	info.ObjectSet.Elements = append(info.ObjectSet.Elements, referenced.ObjectSet.Elements...)
	info.ObjectSet.ReferencedSetName = ""
	idx.Insert(info)

	log.WithFields(log.Fields{"tld": key, "objectSet": referenced.Name()}).Debug("linker: inlined object-set reference")
}
