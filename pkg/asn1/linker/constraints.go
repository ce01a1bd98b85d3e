package linker

import (
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// resolveConstraintReferences implements §4.2.1 sub-task 5 and §4.2.2: walk
// the TLD's constraint tree and resolve every value reference via
// find_tld_or_enum_value_by_name. Unlike the choice-selection sub-task,
// failure to resolve a single reference produces only a warning (§7),
// allowing the rest of the constraint tree — and the rest of the index — to
// link. Escalates to an error when cfg.StrictConstraints is set
// (SPEC_FULL.md §A.3).
func (l *linker) resolveConstraintReferences(idx *index.Index, key string) []diag.Diagnostic {
	tld, ok := idx.Lookup(key)
	if !ok {
		return nil
	}

	typeDef, ok := tld.(*ir.TypeDefinition)
	if !ok || !hasConstraintReference(typeDef.Type) {
		return nil
	}

	removed, _ := idx.Remove(key)
	typeDef = removed.(*ir.TypeDefinition)

	var diagnostics []diag.Diagnostic

	walkTypeConstraints(typeDef.Type, func(constraints []ir.Constraint, expectedType string) {
		for _, c := range constraints {
			diagnostics = append(diagnostics, l.resolveConstraint(c, expectedType, key, idx)...)
		}
	})

	idx.Insert(typeDef)

	if len(diagnostics) > 0 {
		log.WithFields(log.Fields{"tld": key, "count": len(diagnostics)}).Debug("linker: constraint reference diagnostics")
	}

	return diagnostics
}

func (l *linker) resolveConstraint(c ir.Constraint, expectedType, element string, idx *index.Index) []diag.Diagnostic {
	sc, ok := c.(*ir.SubtypeConstraint)
	if !ok {
		return nil
	}

	var diagnostics []diag.Diagnostic

	switch sc.Kind {
	case ir.ValueRangeKind:
		if d, ok := l.resolveValueRef(&sc.Min, expectedType, element, idx); ok {
			diagnostics = append(diagnostics, d...)
		}
		if d, ok := l.resolveValueRef(&sc.Max, expectedType, element, idx); ok {
			diagnostics = append(diagnostics, d...)
		}
	case ir.SingleValueKind:
		if d, ok := l.resolveValueRef(&sc.Value, expectedType, element, idx); ok {
			diagnostics = append(diagnostics, d...)
		}
	case ir.SizeKind:
		if sc.Size != nil {
			diagnostics = append(diagnostics, l.resolveConstraint(sc.Size, expectedType, element, idx)...)
		}
	case ir.InnerTypeKind:
		for _, inner := range sc.InnerConstraints {
			for _, c := range inner {
				diagnostics = append(diagnostics, l.resolveConstraint(c, expectedType, element, idx)...)
			}
		}
	}

	return diagnostics
}

// resolveValueRef resolves *slot in place if it holds an unresolved
// NamedReferenceValue. Returns ok=false when *slot was nil or already
// resolved (nothing to report).
func (l *linker) resolveValueRef(slot *ir.ASN1Value, expectedType, element string, idx *index.Index) ([]diag.Diagnostic, bool) {
	ref, ok := (*slot).(ir.NamedReferenceValue)
	if !ok {
		return nil, false
	}

	value, stage, found := findTLDOrEnumValueByName(expectedType, ref.Name, idx, l.cfg.AllowUntypedEnumScan)
	if !found {
		severity := diag.Warning
		if l.cfg.StrictConstraints {
			severity = diag.Error
		}

		return []diag.Diagnostic{diag.MissingDep(severity, element,
			fmt.Sprintf("unresolved value reference %q in constraint", ref.Name))}, true
	}

	*slot = value

	if stage == diag.StageUntypedScan {
		return []diag.Diagnostic{diag.MissingDepHeuristic(element,
			fmt.Sprintf("value reference %q resolved only via untyped enum scan", ref.Name))}, true
	}

	return nil, true
}

// findTLDOrEnumValueByName implements §4.2.2's three-stage search, in
// deterministic index order, first match wins.
func findTLDOrEnumValueByName(expectedType, name string, idx *index.Index, allowUntyped bool) (ir.ASN1Value, diag.ResolutionStage, bool) {
	// Stage 1: direct lookup.
	if tld, ok := idx.Lookup(name); ok {
		if vd, ok := tld.(*ir.ValueDefinition); ok {
			return vd.Value, diag.StageDirect, true
		}
	}

	// Stage 2: typed enum-scan.
	var (
		found ir.ASN1Value
		ok    bool
	)

	idx.Iter(func(tld ir.TLD) {
		if ok {
			return
		}
		if v, match := distinguishedOrEnumValue(tld, expectedType, name, true); match {
			found, ok = v, true
		}
	})

	if ok {
		return found, diag.StageTypedScan, true
	}

	if !allowUntyped {
		return nil, 0, false
	}

	// Stage 3: untyped enum-scan (heuristic, §9 Open Questions).
	idx.Iter(func(tld ir.TLD) {
		if ok {
			return
		}
		if v, match := distinguishedOrEnumValue(tld, expectedType, name, false); match {
			found, ok = v, true
		}
	})

	if ok {
		return found, diag.StageUntypedScan, true
	}

	return nil, 0, false
}

// distinguishedOrEnumValue checks whether tld defines a distinguished or
// enumerated value called name. When typed is true, tld's own name must also
// equal expectedType (the containing type named at the point of reference).
func distinguishedOrEnumValue(tld ir.TLD, expectedType, name string, typed bool) (ir.ASN1Value, bool) {
	typeDef, ok := tld.(*ir.TypeDefinition)
	if !ok {
		return nil, false
	}

	if typed && (expectedType == "" || typeDef.Name() != expectedType) {
		return nil, false
	}

	switch t := typeDef.Type.(type) {
	case *ir.EnumeratedType:
		if v, ok := t.Values[name]; ok {
			return ir.EnumeratedValue{Identifier: name, Value: v}, true
		}
	case *ir.IntegerType:
		if v, ok := t.NamedValues[name]; ok {
			return ir.IntegerValue{Value: big.NewInt(v)}, true
		}
	case *ir.BitStringType:
		if pos, ok := t.NamedBits[name]; ok {
			return ir.IntegerValue{Value: big.NewInt(int64(pos))}, true
		}
	}

	return nil, false
}

// hasConstraintReference reports whether any constraint reachable from t
// still contains an unresolved value reference.
func hasConstraintReference(t ir.ASN1Type) bool {
	found := false
	walkTypeConstraints(t, func(constraints []ir.Constraint, _ string) {
		for _, c := range constraints {
			if ir.ContainsReference(c) {
				found = true
			}
		}
	})
	return found
}

// walkTypeConstraints recursively visits every constraint-bearing type node
// reachable from t, calling visit with that node's own constraint list and
// the name to use as "expected containing type" for a typed enum-scan.
func walkTypeConstraints(t ir.ASN1Type, visit func(constraints []ir.Constraint, expectedType string)) {
	switch v := t.(type) {
	case ir.NamedType:
		visit(v.Constraints, v.Name)
	case *ir.IntegerType:
		visit(v.Constraints, "")
	case *ir.BitStringType:
		visit(v.Constraints, "")
	case *ir.CharacterStringType:
		visit(v.Constraints, "")
	case *ir.SequenceType:
		walkFieldConstraints(v.Fields, visit)
	case *ir.SetType:
		walkFieldConstraints(v.Fields, visit)
	case *ir.ChoiceType:
		walkFieldConstraints(v.Alternatives, visit)
	case *ir.SequenceOfType:
		walkTypeConstraints(v.Element, visit)
	case *ir.SetOfType:
		walkTypeConstraints(v.Element, visit)
	}
}

func walkFieldConstraints(fields []ir.Field, visit func([]ir.Constraint, string)) {
	for _, f := range fields {
		walkTypeConstraints(f.Type, visit)
	}
}
