package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyTaggingEnvironmentAutomaticAssignsSequentialTags(t *testing.T) {
	seq := &SequenceType{
		Fields: []Field{
			{Name: "a", Type: &IntegerType{}},
			{Name: "b", Type: &BooleanType{}},
		},
	}
	td := NewTypeDefinition("Foo", seq)
	td.Stamp(NewModuleReference("M", Automatic), 0)

	ApplyTaggingEnvironment(td)

	assert.Equal(t, &Tag{Class: ContextSpecific, Number: 0}, seq.Fields[0].TagOverride)
	assert.Equal(t, &Tag{Class: ContextSpecific, Number: 1}, seq.Fields[1].TagOverride)
}

func TestApplyTaggingEnvironmentAutomaticSkipsWhenAnyFieldAlreadyTagged(t *testing.T) {
	seq := &SequenceType{
		Fields: []Field{
			{Name: "a", Type: &IntegerType{}, TagOverride: &Tag{Class: ContextSpecific, Number: 5}},
			{Name: "b", Type: &BooleanType{}},
		},
	}
	td := NewTypeDefinition("Foo", seq)
	td.Stamp(NewModuleReference("M", Automatic), 0)

	ApplyTaggingEnvironment(td)

	assert.Nil(t, seq.Fields[1].TagOverride, "automatic tagging must not apply when any sibling field already carries a tag")
}

func TestApplyTaggingEnvironmentIsNoOpUnderImplicitAndExplicit(t *testing.T) {
	for _, env := range []TaggingEnvironment{Implicit, Explicit} {
		seq := &SequenceType{Fields: []Field{{Name: "a", Type: &IntegerType{}}}}
		td := NewTypeDefinition("Foo", seq)
		td.Stamp(NewModuleReference("M", env), 0)

		ApplyTaggingEnvironment(td)

		assert.Nil(t, seq.Fields[0].TagOverride)
	}
}

func TestApplyTaggingEnvironmentReapplicationIsNoOp(t *testing.T) {
	seq := &SequenceType{
		Fields: []Field{
			{Name: "a", Type: &IntegerType{}},
			{Name: "b", Type: &BooleanType{}},
		},
	}
	td := NewTypeDefinition("Foo", seq)
	td.Stamp(NewModuleReference("M", Automatic), 0)

	ApplyTaggingEnvironment(td)
	first := []Field{seq.Fields[0], seq.Fields[1]}

	ApplyTaggingEnvironment(td)

	assert.Equal(t, first[0].TagOverride, seq.Fields[0].TagOverride, "applying the same environment twice must be a no-op")
	assert.Equal(t, first[1].TagOverride, seq.Fields[1].TagOverride)
}

func TestApplyTaggingEnvironmentIgnoresNonStructuralTLDs(t *testing.T) {
	vd := NewValueDefinition("v", NamedType{Name: "INTEGER"}, nil)
	vd.Stamp(NewModuleReference("M", Automatic), 0)

	assert.NotPanics(t, func() { ApplyTaggingEnvironment(vd) })
}
