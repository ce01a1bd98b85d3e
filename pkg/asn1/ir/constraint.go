package ir

// Constraint is the sum of subtype constraints and contents constraints
// (X.682 §8, X.680 §51). A constraint tree may hold value references which
// are unresolved until the linker's constraint-reference sub-task (§4.2.1
// step 5) substitutes them.
type Constraint interface {
	// ConstraintKind returns a short label for diagnostics.
	ConstraintKind() string
}

// SubtypeConstraintKind discriminates the forms of SubtypeConstraint.
type SubtypeConstraintKind uint8

const (
	ValueRangeKind SubtypeConstraintKind = iota
	SingleValueKind
	SizeKind
	PermittedAlphabetKind
	ContainedSubtypeKind
	PatternKind
	InnerTypeKind
	TableKind
)

// SubtypeConstraint covers every subtype-constraint form named in §6 of the
// specification. Only the fields relevant to Kind are populated; the others
// are left at their zero value.
type SubtypeConstraint struct {
	Kind SubtypeConstraintKind

	// ValueRangeKind
	Min, Max             ASN1Value // may be NamedReferenceValue until linked
	MinExtensible        bool
	MaxExtensible        bool

	// SingleValueKind
	Value ASN1Value

	// SizeKind: a nested size constraint (itself a ValueRangeKind or
	// SingleValueKind SubtypeConstraint over the size, not the value).
	Size *SubtypeConstraint

	// PermittedAlphabetKind
	Alphabet string

	// ContainedSubtypeKind
	ContainedType ASN1Type

	// PatternKind
	Pattern string

	// InnerTypeKind: constraints on named components of a structured type
	// (WITH COMPONENTS), keyed by component name.
	InnerConstraints map[string][]Constraint

	// TableKind: a constraint relating a field to an information-object
	// class's governing object set via a `&field` reference, e.g.
	// `{ ObjectSet }{ @field }`.
	TableObjectSetName string
	TableFieldPath     []ObjectFieldIdentifier
}

func (SubtypeConstraint) ConstraintKind() string { return "SubtypeConstraint" }

// ContentsConstraint restricts an OCTET STRING/BIT STRING's contents to
// encode a value of some other type (X.680 §51).
type ContentsConstraint struct {
	ContainingType ASN1Type
}

func (ContentsConstraint) ConstraintKind() string { return "ContentsConstraint" }

// ContainsReference reports whether this constraint tree still contains an
// unresolved named-value reference anywhere within it. The linker uses this
// to decide whether a TLD needs the constraint-reference sub-task (§4.2.1
// step 5) applied.
func ContainsReference(c Constraint) bool {
	sc, ok := c.(*SubtypeConstraint)
	if !ok {
		return false
	}

	switch sc.Kind {
	case ValueRangeKind:
		return isUnresolved(sc.Min) || isUnresolved(sc.Max)
	case SingleValueKind:
		return isUnresolved(sc.Value)
	case SizeKind:
		return sc.Size != nil && ContainsReference(sc.Size)
	case InnerTypeKind:
		for _, inner := range sc.InnerConstraints {
			for _, c := range inner {
				if ContainsReference(c) {
					return true
				}
			}
		}
	}

	return false
}

func isUnresolved(v ASN1Value) bool {
	if v == nil {
		return false
	}
	_, ok := v.(NamedReferenceValue)
	return ok
}
