package ir

// TLD is the tagged sum of the three top-level definition variants a module
// can contain (§3). Every TLD carries a unique name, a pointer to its owning
// module's shared header, a positional index stamped at input time, and the
// tagging environment inherited from that module.
type TLD interface {
	// Name returns this TLD's unique identifier within the working set.
	Name() string
	// Module returns the shared header of the module that declared this TLD.
	Module() *ModuleReference
	// Position returns this TLD's original source-order index within its
	// module. Linking never reorders TLDs within a module (§3 invariant 3).
	Position() int
	// Tagging returns the tagging environment inherited from this TLD's
	// module.
	Tagging() TaggingEnvironment
	// Supertypes returns the transitive set of named-type supertypes
	// collected for this TLD by the linker's collect_supertypes step
	// (§4.2.1, after the five sub-tasks). Empty until linking visits this
	// TLD.
	Supertypes() []string
	// Stamp applies the input boundary's module reference and positional
	// index to this TLD (§6). Called exactly once, before the TLD is
	// inserted into the reference index.
	Stamp(module *ModuleReference, position int)
}

// index bundles the fields shared by all three TLD variants. It is not
// itself a TLD; each variant embeds it and supplies its own Name().
type index struct {
	module     *ModuleReference
	position   int
	tagging    TaggingEnvironment
	supertypes []string
}

func (i *index) Module() *ModuleReference    { return i.module }
func (i *index) Position() int               { return i.position }
func (i *index) Tagging() TaggingEnvironment { return i.tagging }
func (i *index) Supertypes() []string        { return i.supertypes }

// SetSupertypes records the transitive supertype set computed by the linker.
func (i *index) SetSupertypes(supertypes []string) { i.supertypes = supertypes }

// Stamp applies the input boundary's module reference and positional index to
// this TLD. Called exactly once, before the TLD is inserted into the
// reference index (§6).
func (i *index) Stamp(module *ModuleReference, position int) {
	i.module = module
	i.position = position
	i.tagging = module.Tagging
}

// TypeDefinition is a named ASN.1 type.
type TypeDefinition struct {
	index
	TldName string
	Type    ASN1Type
}

// NewTypeDefinition constructs a TypeDefinition. Module/Position/Tagging are
// populated later via Stamp, at input-boundary time.
func NewTypeDefinition(name string, typ ASN1Type) *TypeDefinition {
	return &TypeDefinition{TldName: name, Type: typ}
}

func (t *TypeDefinition) Name() string { return t.TldName }

// ValueDefinition is a named value together with its declared ASN.1 type.
type ValueDefinition struct {
	index
	TldName   string
	ValueType ASN1Type
	Value     ASN1Value
}

// NewValueDefinition constructs a ValueDefinition.
func NewValueDefinition(name string, valueType ASN1Type, value ASN1Value) *ValueDefinition {
	return &ValueDefinition{TldName: name, ValueType: valueType, Value: value}
}

func (v *ValueDefinition) Name() string { return v.TldName }

// InformationDefinition is a named information-object, object-set, or class
// definition (X.681).
type InformationDefinition struct {
	index
	TldName   string
	Kind      InformationObjectKind
	ClassLink ClassLink

	// Object is populated when Kind == ObjectKind.
	Object *InformationObject
	// ObjectSet is populated when Kind == ObjectSetKind.
	ObjectSet *ObjectSetReference
	// Class is populated when Kind == ClassKind.
	Class *InformationObjectClass
}

// NewInformationDefinition constructs an InformationDefinition referencing
// its class by name; the linker inlines the class definition later (§4.2.1
// step 1).
func NewInformationDefinition(name string, kind InformationObjectKind, classLink ClassLink) *InformationDefinition {
	return &InformationDefinition{TldName: name, Kind: kind, ClassLink: classLink}
}

func (d *InformationDefinition) Name() string { return d.TldName }

// ReferencesClassByName reports whether this TLD's class link still needs
// resolving (§4.2.1 sub-task 1).
func (d *InformationDefinition) ReferencesClassByName() bool {
	return d.ClassLink.State() == ByName
}

// ReferencesObjectSetByName reports whether this TLD's object-set value still
// contains an unresolved by-name reference (§4.2.1 sub-task 4).
func (d *InformationDefinition) ReferencesObjectSetByName() bool {
	return d.Kind == ObjectSetKind && d.ObjectSet != nil && !d.ObjectSet.Resolved()
}
