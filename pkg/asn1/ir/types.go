package ir

// TagClass identifies one of the four ASN.1 tag classes (X.680 §8.3).
type TagClass uint8

const (
	// Universal tags are reserved for the built-in types enumerated below.
	Universal TagClass = iota
	Application
	ContextSpecific
	Private
)

// Tag is an explicit tag override attached to a field or a type.
type Tag struct {
	Class  TagClass
	Number uint
}

// ASN1Type is the sum of all type forms this linker understands. Structural
// types carry their field/alternative list directly; a type referencing
// another TLD by name is represented as NamedType rather than inlined, so the
// reference index never contains a type-reference cycle (see DESIGN NOTES,
// "Graph cycles" in the design document).
type ASN1Type interface {
	// TypeName returns a short label for diagnostics (e.g. "INTEGER",
	// "SEQUENCE", "reference to Foo").
	TypeName() string
}

// Field is one component of a structural type: a SEQUENCE/SET field, or a
// CHOICE alternative.
type Field struct {
	Name        string
	Type        ASN1Type
	Optional    bool
	Default     ASN1Value // nil unless a DEFAULT clause is present
	TagOverride *Tag      // nil unless the field carries an explicit tag
}

// ---------------------------------------------------------------------------
// Primitive types
// ---------------------------------------------------------------------------

// IntegerType is INTEGER, optionally with named distinguished values (X.680
// §19.5) and subtype constraints.
type IntegerType struct {
	// NamedValues maps a distinguished-value identifier to its integer value,
	// e.g. `INTEGER { mon(1), tue(2) }`.
	NamedValues map[string]int64
	Constraints []Constraint
}

func (IntegerType) TypeName() string { return "INTEGER" }

// BitStringType is BIT STRING, optionally with named bit positions.
type BitStringType struct {
	NamedBits   map[string]uint
	Constraints []Constraint
}

func (BitStringType) TypeName() string { return "BIT STRING" }

// OctetStringType is OCTET STRING.
type OctetStringType struct {
	Constraints []Constraint
}

func (OctetStringType) TypeName() string { return "OCTET STRING" }

// BooleanType is BOOLEAN.
type BooleanType struct{}

func (BooleanType) TypeName() string { return "BOOLEAN" }

// NullType is NULL.
type NullType struct{}

func (NullType) TypeName() string { return "NULL" }

// ObjectIdentifierType is OBJECT IDENTIFIER.
type ObjectIdentifierType struct{}

func (ObjectIdentifierType) TypeName() string { return "OBJECT IDENTIFIER" }

// CharacterStringKind enumerates the ASN.1 character string subtypes this
// linker tracks distinctly (each has its own permitted-alphabet semantics).
type CharacterStringKind uint8

const (
	UTF8String CharacterStringKind = iota
	PrintableString
	IA5String
	VisibleString
	NumericString
	BMPString
	UniversalString
	GeneralString
	T61String
)

func (k CharacterStringKind) String() string {
	names := [...]string{
		"UTF8String", "PrintableString", "IA5String", "VisibleString",
		"NumericString", "BMPString", "UniversalString", "GeneralString", "T61String",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "CharacterString"
}

// CharacterStringType is any of the ASN.1 character string types.
type CharacterStringType struct {
	Kind        CharacterStringKind
	Constraints []Constraint
}

func (c CharacterStringType) TypeName() string { return c.Kind.String() }

// ---------------------------------------------------------------------------
// Constructed types
// ---------------------------------------------------------------------------

// EnumeratedType is ENUMERATED, a closed set of named integer values plus an
// optional extension marker.
type EnumeratedType struct {
	Values      map[string]int64
	Order       []string // declaration order, for deterministic emission
	Extensible  bool
}

func (EnumeratedType) TypeName() string { return "ENUMERATED" }

// ChoiceType is CHOICE: an ordered list of named alternatives.
type ChoiceType struct {
	Alternatives []Field
	Extensible   bool
}

func (ChoiceType) TypeName() string { return "CHOICE" }

// SequenceType is SEQUENCE: an ordered list of fields, possibly still
// containing unexpanded COMPONENTS OF notations.
type SequenceType struct {
	Fields     []Field
	Components []ComponentsOf // unresolved COMPONENTS OF notations, in source position
	Extensible bool
}

func (SequenceType) TypeName() string { return "SEQUENCE" }

// SetType is SET, structurally identical to SequenceType but order-agnostic
// on the wire (the linker treats it the same as SEQUENCE for resolution
// purposes; ordering is still preserved per §3 invariant 3).
type SetType struct {
	Fields     []Field
	Components []ComponentsOf
	Extensible bool
}

func (SetType) TypeName() string { return "SET" }

// SequenceOfType is SEQUENCE OF.
type SequenceOfType struct {
	Element ASN1Type
}

func (SequenceOfType) TypeName() string { return "SEQUENCE OF" }

// SetOfType is SET OF.
type SetOfType struct {
	Element ASN1Type
}

func (SetOfType) TypeName() string { return "SET OF" }

// ComponentsOf is an unexpanded `COMPONENTS OF X` notation appearing at a
// given position within a structural type's field list. The linker replaces
// it in place with X's own field list (§4.2.1 sub-task 2).
type ComponentsOf struct {
	// ReferencedTypeName is the textual name X.
	ReferencedTypeName string
	// Position is the index within the owning type's Fields slice at which
	// the expansion should be spliced.
	Position int
}

// ---------------------------------------------------------------------------
// Reference / deferred types
// ---------------------------------------------------------------------------

// NamedType is a reference to another TLD's type by name. It is never
// inlined by the linker (see DESIGN NOTES, "Graph cycles"); only the
// emitter's own indirection mechanism resolves it into actual storage.
type NamedType struct {
	Name string
	// Constraints holds any subtype constraint narrowing this reference at
	// the point of use, e.g. the `(green)` in `Favourite ::= Colour (green)`.
	Constraints []Constraint
}

func (n NamedType) TypeName() string { return "reference to " + n.Name }

// ClassFieldType is a reference to a field of an information-object class,
// e.g. `TYPE-IDENTIFIER.&Type`.
type ClassFieldType struct {
	ClassName string
	Path      []ObjectFieldIdentifier
}

func (c ClassFieldType) TypeName() string { return c.ClassName + " class-field reference" }

// ChoiceSelectionType is the `alternative < ChoiceType` notation (X.680
// §25.7): the type of a named alternative of a CHOICE, substituted in place
// once the alternative's own type is known (§4.2.1 sub-task 3).
type ChoiceSelectionType struct {
	Alternative string
	ChoiceName  string
	// Resolved holds the substituted type once linked; nil until then.
	Resolved ASN1Type
}

func (c ChoiceSelectionType) TypeName() string {
	if c.Resolved != nil {
		return c.Resolved.TypeName()
	}
	return c.Alternative + " < " + c.ChoiceName
}

// ParameterizedType is a type parameterised per X.683, not yet instantiated
// with its actual parameters.
type ParameterizedType struct {
	Name       string
	Parameters []ASN1Type
}

func (p ParameterizedType) TypeName() string { return p.Name + " {parameterized}" }
