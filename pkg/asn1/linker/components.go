package linker

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// expandComponentsOf implements §4.2.1 sub-task 2 and the COMPONENTS OF
// scenario of §8: replace every `COMPONENTS OF X` notation in the TLD's type
// with X's own field list, in source order, honouring any extension marker on
// X by carrying its Extensible flag forward. A referenced type that does not
// resolve (not a struct type, or the TLD doesn't exist) is left in place in
// Components; it is not retried (§4.2.3: no re-enqueueing), so an unresolved
// COMPONENTS OF stays unexpanded in the output.
func (l *linker) expandComponentsOf(idx *index.Index, key string) {
	tld, ok := idx.Lookup(key)
	if !ok {
		return
	}

	typeDef, ok := tld.(*ir.TypeDefinition)
	if !ok {
		return
	}

	if !containsComponentsOf(typeDef.Type) {
		return
	}

	removed, _ := idx.Remove(key)
	typeDef = removed.(*ir.TypeDefinition)
	typeDef.Type = expandComponentsOfType(typeDef.Type, idx)
	idx.Insert(typeDef)

	log.WithField("tld", key).Debug("linker: expanded COMPONENTS OF")
}

func containsComponentsOf(t ir.ASN1Type) bool {
	switch v := t.(type) {
	case *ir.SequenceType:
		return len(v.Components) > 0
	case *ir.SetType:
		return len(v.Components) > 0
	}
	return false
}

func expandComponentsOfType(t ir.ASN1Type, idx *index.Index) ir.ASN1Type {
	switch v := t.(type) {
	case *ir.SequenceType:
		fields, unresolved, extensible := expandComponents(v.Fields, v.Components, idx)
		v.Fields = fields
		v.Components = unresolved
		v.Extensible = v.Extensible || extensible
		return v
	case *ir.SetType:
		fields, unresolved, extensible := expandComponents(v.Fields, v.Components, idx)
		v.Fields = fields
		v.Components = unresolved
		v.Extensible = v.Extensible || extensible
		return v
	}
	return t
}

// expandComponents splices, at each recorded position, the referenced type's
// field list into fields. Positions are processed in ascending order so
// earlier splices do not invalidate later positions' offsets; each splice
// shifts subsequent recorded positions by the number of fields inserted. It
// also reports whether any spliced-in type carried an extension marker, so
// the including type's own Extensible flag can be carried forward, and
// returns the notations whose referenced type does not resolve, with their
// positions adjusted to the expanded field list.
func expandComponents(fields []ir.Field, components []ir.ComponentsOf, idx *index.Index) ([]ir.Field, []ir.ComponentsOf, bool) {
	sorted := append([]ir.ComponentsOf(nil), components...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Position < sorted[i].Position {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	offset := 0
	extensible := false

	var unresolved []ir.ComponentsOf

	for _, comp := range sorted {
		pos := comp.Position + offset
		if pos > len(fields) {
			pos = len(fields)
		}

		referenced, refExtensible := referencedFields(comp.ReferencedTypeName, idx)
		if referenced == nil {
			unresolved = append(unresolved, ir.ComponentsOf{ReferencedTypeName: comp.ReferencedTypeName, Position: pos})
			continue
		}
		extensible = extensible || refExtensible

		out := make([]ir.Field, 0, len(fields)+len(referenced))
		out = append(out, fields[:pos]...)
		out = append(out, referenced...)
		out = append(out, fields[pos:]...)
		fields = out
		offset += len(referenced)
	}

	return fields, unresolved, extensible
}

// referencedFields returns the field list of the named SEQUENCE/SET TLD and
// whether that type itself carries an extension marker, or (nil, false) if
// the name does not (yet) resolve to one.
func referencedFields(name string, idx *index.Index) ([]ir.Field, bool) {
	tld, ok := idx.Lookup(name)
	if !ok {
		return nil, false
	}

	typeDef, ok := tld.(*ir.TypeDefinition)
	if !ok {
		return nil, false
	}

	switch v := typeDef.Type.(type) {
	case *ir.SequenceType:
		return v.Fields, v.Extensible
	case *ir.SetType:
		return v.Fields, v.Extensible
	default:
		return nil, false
	}
}
