package linker

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// resolveClassReference implements §4.2.1 sub-task 1: if the TLD at key
// textually references a class by name and that class exists in the index
// resolved, inline the class definition and transition the link
// discriminator to ByReference. A reference to a class that is not in the
// index is left ByName without a diagnostic; the key is not re-enqueued
// (§4.2.3), so the TLD stays ByName (§4.5: a terminal, not an error, state).
func (l *linker) resolveClassReference(idx *index.Index, key string) ([]diag.Diagnostic, bool) {
	tld, ok := idx.Lookup(key)
	if !ok {
		return nil, false
	}

	info, ok := tld.(*ir.InformationDefinition)
	if !ok || info.ClassLink.State() != ir.ByName {
		return nil, false
	}

	className := info.ClassLink.Name()

	classTLD, ok := idx.Lookup(className)
	if !ok {
		return nil, false
	}

	classDef, ok := classTLD.(*ir.InformationDefinition)
	if !ok || classDef.Kind != ir.ClassKind || classDef.Class == nil {
		return nil, false
	}

	// Remove-mutate-reinsert (§9): take the TLD out of the index before
	// mutating its class link, so a lookup triggered by a later sub-task
	// cannot observe it half-updated.
	removed, ok := idx.Remove(key)
	if !ok {
		return nil, false
	}

	info = removed.(*ir.InformationDefinition)
	info.ClassLink.ResolveTo(classDef.Class)
	idx.Insert(info)

	log.WithFields(log.Fields{"tld": key, "class": className}).Debug("linker: resolved class reference")

	return nil, true
}
