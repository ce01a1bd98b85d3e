package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
	"github.com/go-asn1c/asn1c/pkg/asn1c"
)

// Fixture is a flat, JSON-friendly stand-in for the parser's own AST, used
// only by this command-line demo — the real module boundary (§6) takes
// []ir.TLD directly from whatever parser is wired up front. Grounded on
// pkg/binfile/json.go's own "concrete, tagged-field struct in front of an
// interface-heavy schema" approach to JSON (de)serialisation.
type Fixture struct {
	Modules []FixtureModule `json:"modules"`
}

// FixtureModule is one module's header and its TLDs in source order.
type FixtureModule struct {
	Name    string          `json:"name"`
	Tagging string          `json:"tagging"`
	TLDs    []FixtureTLD    `json:"tlds"`
}

// FixtureTLD is a tagged union of the two TLD kinds this demo supports:
// type definitions (see FixtureType) and integer value definitions.
// Information-object definitions are out of scope for
// this minimal fixture format; building them requires the richer class/path
// machinery that a real parser would supply directly as ir.TLD values.
type FixtureTLD struct {
	Kind string `json:"kind"`
	Name string `json:"name"`

	// Populated when Kind == "type".
	Type *FixtureType `json:"type,omitempty"`

	// Populated when Kind == "value".
	ValueType string `json:"valueType,omitempty"`
	Value     string `json:"value,omitempty"`
}

// FixtureType is a tagged union over the handful of ASN1Type variants this
// demo exercises end to end: INTEGER (with an optional value-range
// constraint) and a named-type reference to another TLD (for supertype
// collection and constraint-reference resolution).
type FixtureType struct {
	Kind string `json:"kind"`

	// Kind == "integer"
	Min *string `json:"min,omitempty"`
	Max *string `json:"max,omitempty"`

	// Kind == "namedType"
	ReferencedName string `json:"referencedName,omitempty"`
}

// LoadFixture reads and parses a JSON fixture file into the ir.TLD-level
// module inputs asn1c.Validate consumes.
func LoadFixture(path string) ([]asn1c.ModuleInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %q: %w", path, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture %q: %w", path, err)
	}

	modules := make([]asn1c.ModuleInput, 0, len(fixture.Modules))

	for _, m := range fixture.Modules {
		tagging, err := parseTagging(m.Tagging)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", m.Name, err)
		}

		modRef := ir.NewModuleReference(m.Name, tagging)

		tlds := make([]ir.TLD, 0, len(m.TLDs))

		for _, ft := range m.TLDs {
			tld, err := ft.toTLD()
			if err != nil {
				return nil, fmt.Errorf("module %q, TLD %q: %w", m.Name, ft.Name, err)
			}

			tlds = append(tlds, tld)
		}

		modules = append(modules, asn1c.ModuleInput{Module: modRef, TLDs: tlds})
	}

	return modules, nil
}

func parseTagging(s string) (ir.TaggingEnvironment, error) {
	switch s {
	case "", "automatic":
		return ir.Automatic, nil
	case "implicit":
		return ir.Implicit, nil
	case "explicit":
		return ir.Explicit, nil
	default:
		return 0, fmt.Errorf("unknown tagging environment %q", s)
	}
}

func (ft FixtureTLD) toTLD() (ir.TLD, error) {
	switch ft.Kind {
	case "type":
		if ft.Type == nil {
			return nil, fmt.Errorf("type TLD missing \"type\"")
		}

		t, err := ft.Type.toASN1Type()
		if err != nil {
			return nil, err
		}

		return ir.NewTypeDefinition(ft.Name, t), nil
	case "value":
		v, ok := new(big.Int).SetString(ft.Value, 10)
		if !ok {
			return nil, fmt.Errorf("malformed integer literal %q", ft.Value)
		}

		return ir.NewValueDefinition(ft.Name, ir.NamedType{Name: ft.ValueType}, ir.IntegerValue{Value: v}), nil
	default:
		return nil, fmt.Errorf("unknown TLD kind %q", ft.Kind)
	}
}

func (ft FixtureType) toASN1Type() (ir.ASN1Type, error) {
	switch ft.Kind {
	case "integer":
		var constraints []ir.Constraint

		if ft.Min != nil && ft.Max != nil {
			minVal, ok := new(big.Int).SetString(*ft.Min, 10)
			if !ok {
				return nil, fmt.Errorf("malformed minimum %q", *ft.Min)
			}

			maxVal, ok := new(big.Int).SetString(*ft.Max, 10)
			if !ok {
				return nil, fmt.Errorf("malformed maximum %q", *ft.Max)
			}

			constraints = append(constraints, &ir.SubtypeConstraint{
				Kind: ir.ValueRangeKind,
				Min:  ir.IntegerValue{Value: minVal},
				Max:  ir.IntegerValue{Value: maxVal},
			})
		}

		return &ir.IntegerType{Constraints: constraints}, nil
	case "namedType":
		if ft.ReferencedName == "" {
			return nil, fmt.Errorf("namedType missing \"referencedName\"")
		}

		return ir.NamedType{Name: ft.ReferencedName}, nil
	default:
		return nil, fmt.Errorf("unknown type kind %q", ft.Kind)
	}
}
