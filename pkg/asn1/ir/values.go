package ir

import (
	"math/big"
)

// ASN1Value is the sum of all ASN.1 value literal forms this linker
// understands.
type ASN1Value interface {
	// ValueKind returns a short label for diagnostics.
	ValueKind() string
}

// IntegerValue is an arbitrary-precision INTEGER value. gnark-crypto's field
// elements (reduced modulo a prime) would misrepresent this: ASN.1 INTEGER
// has no modulus, so math/big.Int is used instead (see DESIGN.md).
type IntegerValue struct {
	Value *big.Int
}

func (IntegerValue) ValueKind() string { return "INTEGER" }

// BooleanValue is a BOOLEAN value.
type BooleanValue struct {
	Value bool
}

func (BooleanValue) ValueKind() string { return "BOOLEAN" }

// BitStringValue is a BIT STRING value, stored as a bit vector. BitVector
// follows the teacher's own hand-rolled word-array bitset
// (pkg/util/collection/bit.Set), adapted here to track a significant-length
// distinct from its backing word capacity (see bitvector.go).
type BitStringValue struct {
	Bits   *BitVector
	Length uint // number of significant bits, may be < 64*len(Bits.words)
}

func (BitStringValue) ValueKind() string { return "BIT STRING" }

// OctetStringValue is an OCTET STRING value.
type OctetStringValue struct {
	Value []byte
}

func (OctetStringValue) ValueKind() string { return "OCTET STRING" }

// StringValue is any character-string value.
type StringValue struct {
	Value string
}

func (StringValue) ValueKind() string { return "String" }

// RealValue is a REAL value.
type RealValue struct {
	Value float64
}

func (RealValue) ValueKind() string { return "REAL" }

// EnumeratedValue is a named ENUMERATED variant, carrying both its identifier
// and the underlying integer it was declared with.
type EnumeratedValue struct {
	Identifier string
	Value      int64
}

func (EnumeratedValue) ValueKind() string { return "ENUMERATED" }

// NullValue is the NULL value.
type NullValue struct{}

func (NullValue) ValueKind() string { return "NULL" }

// NamedReferenceValue is a value reference awaiting linker resolution (§4.2.2):
// a bare identifier appearing where a value was expected, e.g. inside a
// constraint bound.
type NamedReferenceValue struct {
	Name string
}

func (n NamedReferenceValue) ValueKind() string { return "reference to " + n.Name }

// SequenceValue is a structured value mirroring SEQUENCE/SET.
type SequenceValue struct {
	Fields map[string]ASN1Value
}

func (SequenceValue) ValueKind() string { return "SEQUENCE value" }

// SequenceOfValue is a structured value mirroring SEQUENCE OF/SET OF.
type SequenceOfValue struct {
	Elements []ASN1Value
}

func (SequenceOfValue) ValueKind() string { return "SEQUENCE OF value" }

// ChoiceValue is a structured value mirroring CHOICE: exactly one alternative
// populated.
type ChoiceValue struct {
	Alternative string
	Value       ASN1Value
}

func (ChoiceValue) ValueKind() string { return "CHOICE value" }
