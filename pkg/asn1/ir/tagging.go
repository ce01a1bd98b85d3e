package ir

// ApplyTaggingEnvironment applies a TLD's module-inherited tagging
// environment to its own structural fields, per X.680 §22 ("Definition of
// tags"). Only TypeDefinition TLDs carrying SEQUENCE/SET/CHOICE types are
// affected; every other TLD variant, and every other type form, is left
// untouched.
//
// Under AUTOMATIC tagging, a field list with no pre-existing tag override on
// any of its fields is assigned sequential ContextSpecific tags, numbered
// from 0 (X.680 §22.1: automatic tagging applies only when none of the
// components already carry a tag). Under IMPLICIT and EXPLICIT tagging no
// field is assigned a tag here; EXPLICIT only changes how an already-tagged
// field's tag wraps the underlying type at emission time, which is outside
// this linker's scope (§1 Non-goals).
//
// Applying the same environment twice is a no-op (§3 invariant 2): a field
// that already carries a TagOverride is never revisited.
func ApplyTaggingEnvironment(tld TLD) {
	typeDef, ok := tld.(*TypeDefinition)
	if !ok {
		return
	}

	applyTaggingToType(typeDef.Type, tld.Tagging())
}

func applyTaggingToType(t ASN1Type, env TaggingEnvironment) {
	if env != Automatic {
		return
	}

	switch v := t.(type) {
	case *SequenceType:
		autoTagFields(v.Fields)
	case *SetType:
		autoTagFields(v.Fields)
	case *ChoiceType:
		autoTagFields(v.Alternatives)
	}
}

// autoTagFields assigns sequential ContextSpecific tags to a field list under
// AUTOMATIC tagging. It bails out, leaving every field untouched, the moment
// any field already carries a TagOverride (X.680 §22.1) — including on a
// second call, which is what makes the pass idempotent.
func autoTagFields(fields []Field) {
	for i := range fields {
		if fields[i].TagOverride != nil {
			return
		}
	}

	for i := range fields {
		fields[i].TagOverride = &Tag{Class: ContextSpecific, Number: uint(i)}
	}
}
