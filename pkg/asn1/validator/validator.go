// Package validator runs the per-TLD semantic checks of §4.3 over an index
// that has already been linked. It accumulates, rather than fails fast
// (§7): a TLD whose validation fails is dropped from the output set, but
// every other TLD is still validated and, if clean, returned.
package validator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// Validate dispatches on each TLD's variant (§4.3): TypeDefinition is
// recursively validated; ValueDefinition and InformationDefinition currently
// carry no per-TLD semantic checks beyond linking. Any error produced while
// validating a TypeDefinition's type has the TLD's own name stamped onto it,
// so diagnostics point at the user-visible name rather than an anonymous
// inner type.
func Validate(idx *index.Index) (valid []ir.TLD, diagnostics []diag.Diagnostic) {
	idx.Iter(func(tld ir.TLD) {
		typeDef, ok := tld.(*ir.TypeDefinition)
		if !ok {
			valid = append(valid, tld)
			return
		}

		if d := validateType(typeDef.Type); d != nil {
			d.Element = typeDef.Name()
			diagnostics = append(diagnostics, *d)

			log.WithField("tld", typeDef.Name()).Debug("validator: rejected TLD")

			return
		}

		valid = append(valid, tld)
	})

	return valid, diagnostics
}

// validateType dispatches on the ASN1Type variant (§4.3): INTEGER, BIT
// STRING, CharacterString and named-type references have their attached
// constraints validated; SEQUENCE, SET and CHOICE are validated field by
// field and SEQUENCE OF / SET OF through their element type; every other
// type is accepted as-is.
func validateType(t ir.ASN1Type) *diag.Diagnostic {
	switch v := t.(type) {
	case *ir.IntegerType:
		return validateConstraints(v.Constraints)
	case *ir.BitStringType:
		return validateConstraints(v.Constraints)
	case *ir.CharacterStringType:
		return validateConstraints(v.Constraints)
	case ir.NamedType:
		return validateConstraints(v.Constraints)
	case *ir.SequenceType:
		return validateFields(v.Fields)
	case *ir.SetType:
		return validateFields(v.Fields)
	case *ir.ChoiceType:
		return validateFields(v.Alternatives)
	case *ir.SequenceOfType:
		return validateType(v.Element)
	case *ir.SetOfType:
		return validateType(v.Element)
	default:
		return nil
	}
}

func validateFields(fields []ir.Field) *diag.Diagnostic {
	for _, f := range fields {
		if d := validateType(f.Type); d != nil {
			return d
		}
	}

	return nil
}

func validateConstraints(constraints []ir.Constraint) *diag.Diagnostic {
	for _, c := range constraints {
		if d := validateConstraint(c); d != nil {
			return d
		}
	}

	return nil
}

// validateConstraint implements §4.3's most consequential check: a
// ValueRange constraint with both bounds concrete integer literals must
// satisfy min <= max (§8 scenario 1). Size and inner-type constraints are
// checked through the constraints nested in them; every other constraint
// kind is accepted without checks.
func validateConstraint(c ir.Constraint) *diag.Diagnostic {
	sc, ok := c.(*ir.SubtypeConstraint)
	if !ok {
		return nil
	}

	if sc.Kind == ir.SizeKind && sc.Size != nil {
		return validateConstraint(sc.Size)
	}

	if sc.Kind == ir.InnerTypeKind {
		for _, inner := range sc.InnerConstraints {
			if d := validateConstraints(inner); d != nil {
				return d
			}
		}

		return nil
	}

	if sc.Kind != ir.ValueRangeKind {
		return nil
	}

	minVal, minOK := sc.Min.(ir.IntegerValue)
	maxVal, maxOK := sc.Max.(ir.IntegerValue)

	if !minOK || !maxOK || minVal.Value == nil || maxVal.Value == nil {
		return nil
	}

	if minVal.Value.Cmp(maxVal.Value) > 0 {
		d := diag.InvalidConstraints("", fmt.Sprintf(
			"minimum value %s exceeds maximum value %s", minVal.Value.String(), maxVal.Value.String()))
		return &d
	}

	return nil
}
