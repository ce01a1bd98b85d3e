package ir

// FieldKind identifies the category of an information-object class field, per
// X.681 §8: a class field is either a fixed ASN.1 type, a type given at
// object-definition time, a single information object, or an object set.
type FieldKind uint8

const (
	// FixedTypeField carries a concrete ASN1Type shared by every object of
	// the class (e.g. `&id OBJECT IDENTIFIER`).
	FixedTypeField FieldKind = iota
	// VariableTypeField carries a type chosen per-object, governed by
	// another field of the same object (e.g. `&Type` in `&Type.&id`).
	VariableTypeField
	// ObjectField carries a single information object.
	ObjectField
	// ObjectSetField carries an open-ended set of information objects.
	ObjectSetField
)

// ObjectFieldIdentifier is a single path segment ("&Type", "&id", ...) used to
// walk into nested class-field references, e.g. resolving `TYPE-IDENTIFIER.&Type`.
type ObjectFieldIdentifier struct {
	Identifier string
}

// InformationObjectClassField identifies one field within a class
// declaration: its identifier, its kind, and (for fixed-type fields) the type
// itself.
type InformationObjectClassField struct {
	Identifier ObjectFieldIdentifier
	Kind       FieldKind
	// FixedType is populated only when Kind == FixedTypeField.
	FixedType ASN1Type
	// Optional marks a field as `OPTIONAL` within the class (absent from some
	// objects of the class without that being an error).
	Optional bool
	// Unique marks a field as the class's `UNIQUE` identifying field, used by
	// table constraints to look up a single object from an object set.
	Unique bool
}

// InformationObjectClass is the (eventually resolved) definition of an
// information-object class: an ordered field list, in source order.
type InformationObjectClass struct {
	Fields []InformationObjectClassField
}

// WalkFieldPath finds the field of fields whose identifier equals path[0].
// InformationObjectClassField has no nested field list, so for a
// multi-segment path each further segment is matched against the same
// fields list again, by identifier only; a matched field's FixedType is not
// descended into. The field matched by the last segment is returned. An empty
// path, or a segment with no matching field, yields (nil, false).
func WalkFieldPath(fields []InformationObjectClassField, path []ObjectFieldIdentifier) (*InformationObjectClassField, bool) {
	if len(path) == 0 {
		return nil, false
	}

	for i := range fields {
		if fields[i].Identifier == path[0] {
			if len(path) == 1 {
				return &fields[i], true
			}
			// No nested field list to recurse into: match the next path
			// segment against the same field list.
			return WalkFieldPath(fields, path[1:])
		}
	}

	return nil, false
}

// ClassLinkState is the two-state machine governing an information-object
// TLD's reference to its class: unresolved (by name) or resolved (inlined).
// The transition is one-way: ByName -> ByReference, never back (§3 invariant 6).
type ClassLinkState uint8

const (
	// ByName means the class has not yet been resolved; Name() holds the
	// textual reference as it appeared in source.
	ByName ClassLinkState = iota
	// ByReference means the class has been looked up and inlined.
	ByReference
)

// ClassLink is the discriminated reference from an information-object TLD to
// its governing class.
type ClassLink struct {
	state ClassLinkState
	name  string
	class *InformationObjectClass
}

// NewClassLinkByName constructs an unresolved class link.
func NewClassLinkByName(name string) ClassLink {
	return ClassLink{state: ByName, name: name}
}

// State reports whether this link has been resolved yet.
func (c ClassLink) State() ClassLinkState {
	return c.state
}

// Name returns the textual class name this link was constructed from. Valid
// in both states (kept after resolution for diagnostics).
func (c ClassLink) Name() string {
	return c.name
}

// Class returns the inlined class definition. Only valid when State() ==
// ByReference.
func (c ClassLink) Class() *InformationObjectClass {
	return c.class
}

// ResolveTo transitions this link to ByReference, inlining the given class.
// Calling this on an already-resolved link is a programming error: the
// discriminator must only ever move forward.
func (c *ClassLink) ResolveTo(class *InformationObjectClass) {
	if c.state == ByReference {
		panic("asn1/ir: class link already resolved")
	}

	c.state = ByReference
	c.class = class
}

// InformationObjectKind distinguishes what an InformationDefinition's value
// actually holds.
type InformationObjectKind uint8

const (
	// ObjectKind is a single information object (field -> value assignments).
	ObjectKind InformationObjectKind = iota
	// ObjectSetKind is an object set: either an inline list of objects, or
	// (until linked) a by-name reference to another object set.
	ObjectSetKind
	// ClassKind is a class definition itself.
	ClassKind
)

// InformationObject is a single information object's field assignments.
type InformationObject struct {
	// Fields maps a class field identifier to the value assigned to it for
	// this object. Values may be types, ASN1Values, or nested objects,
	// depending on the field's kind; stored generically as `any` since the
	// class governing the shape is not always resolved when the object
	// itself is constructed.
	Fields map[string]any
}

// ObjectSetReference is the unresolved form of an object-set value: either an
// inline element list, or a name referring to another TLD's object-set value
// which must be inlined by the linker (§4.2 sub-task 4).
type ObjectSetReference struct {
	// Elements holds inline objects already present in source.
	Elements []InformationObject
	// ReferencedSetName is non-empty when this object set extends/aliases
	// another object set by name; it is cleared (its contents spliced into
	// Elements) once resolved.
	ReferencedSetName string
}

// Resolved reports whether this object-set reference still needs linking.
func (o *ObjectSetReference) Resolved() bool {
	return o.ReferencedSetName == ""
}
