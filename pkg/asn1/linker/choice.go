package linker

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// linkChoiceSelectionType implements §4.2.1 sub-task 3 and the choice
// selection scenario of §8: for every `alternative < ChoiceType` occurrence in
// the TLD's type, record the chosen alternative's own type in the selection's
// Resolved field (the node itself stays a ChoiceSelectionType). Unlike
// the other four sub-tasks, a selection referring to an alternative that does
// not exist in the named CHOICE is a hard MissingDependency error (§7), not a
// warning — this is the scenario the specification singles out as
// error-severity within an otherwise warning-only linker.
func (l *linker) linkChoiceSelectionType(idx *index.Index, key string) *diag.Diagnostic {
	tld, ok := idx.Lookup(key)
	if !ok {
		return nil
	}

	typeDef, ok := tld.(*ir.TypeDefinition)
	if !ok || !hasChoiceSelectionType(typeDef.Type) {
		return nil
	}

	removed, _ := idx.Remove(key)
	typeDef = removed.(*ir.TypeDefinition)

	resolved, errDetail := resolveChoiceSelections(typeDef.Type, idx)
	typeDef.Type = resolved
	idx.Insert(typeDef)

	if errDetail != "" {
		d := diag.MissingDep(diag.Error, key, errDetail)
		return &d
	}

	log.WithField("tld", key).Debug("linker: linked choice-selection type")

	return nil
}

func hasChoiceSelectionType(t ir.ASN1Type) bool {
	switch v := t.(type) {
	case ir.ChoiceSelectionType:
		return v.Resolved == nil
	case *ir.SequenceType:
		return fieldsHaveSelection(v.Fields)
	case *ir.SetType:
		return fieldsHaveSelection(v.Fields)
	case *ir.ChoiceType:
		return fieldsHaveSelection(v.Alternatives)
	case *ir.SequenceOfType:
		return hasChoiceSelectionType(v.Element)
	case *ir.SetOfType:
		return hasChoiceSelectionType(v.Element)
	}
	return false
}

func fieldsHaveSelection(fields []ir.Field) bool {
	for _, f := range fields {
		if hasChoiceSelectionType(f.Type) {
			return true
		}
	}
	return false
}

// resolveChoiceSelections walks t, substituting any choice-selection type it
// finds. The first unresolvable selection short-circuits with a detail
// message; everything resolved before that point is kept.
func resolveChoiceSelections(t ir.ASN1Type, idx *index.Index) (ir.ASN1Type, string) {
	switch v := t.(type) {
	case ir.ChoiceSelectionType:
		if v.Resolved != nil {
			return v, ""
		}

		alt, ok := lookupChoiceAlternative(v.ChoiceName, v.Alternative, idx)
		if !ok {
			return v, fmt.Sprintf("alternative %q not found in CHOICE %q", v.Alternative, v.ChoiceName)
		}

		v.Resolved = alt
		return v, ""
	case *ir.SequenceType:
		if err := resolveFieldsInPlace(v.Fields, idx); err != "" {
			return v, err
		}
		return v, ""
	case *ir.SetType:
		if err := resolveFieldsInPlace(v.Fields, idx); err != "" {
			return v, err
		}
		return v, ""
	case *ir.ChoiceType:
		if err := resolveFieldsInPlace(v.Alternatives, idx); err != "" {
			return v, err
		}
		return v, ""
	case *ir.SequenceOfType:
		resolved, err := resolveChoiceSelections(v.Element, idx)
		v.Element = resolved
		return v, err
	case *ir.SetOfType:
		resolved, err := resolveChoiceSelections(v.Element, idx)
		v.Element = resolved
		return v, err
	}

	return t, ""
}

func resolveFieldsInPlace(fields []ir.Field, idx *index.Index) string {
	for i := range fields {
		resolved, err := resolveChoiceSelections(fields[i].Type, idx)
		fields[i].Type = resolved

		if err != "" {
			return err
		}
	}

	return ""
}

// lookupChoiceAlternative finds alternative within the named CHOICE TLD's
// type, per §4.2.5-style field walking but over CHOICE alternatives rather
// than class fields.
func lookupChoiceAlternative(choiceName, alternative string, idx *index.Index) (ir.ASN1Type, bool) {
	tld, ok := idx.Lookup(choiceName)
	if !ok {
		return nil, false
	}

	typeDef, ok := tld.(*ir.TypeDefinition)
	if !ok {
		return nil, false
	}

	choice, ok := typeDef.Type.(*ir.ChoiceType)
	if !ok {
		return nil, false
	}

	for _, alt := range choice.Alternatives {
		if alt.Name == alternative {
			return alt.Type, true
		}
	}

	return nil, false
}
