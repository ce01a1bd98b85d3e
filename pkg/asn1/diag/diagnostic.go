// Package diag defines the diagnostic kinds, severities and attachment the
// linker and validator accumulate rather than fail fast on (§7). It follows
// the shape of the teacher's pkg/sexp.SyntaxError: a message plus an
// attachment point, rather than a wrapped error chain.
package diag

import "fmt"

// Kind is the taxonomy of diagnostic kinds the linker and validator can
// report (§7). Kinds are not Go error types: they are a classification tag
// carried alongside a message.
type Kind uint8

const (
	// MissingDependency is a by-name reference that failed to resolve.
	// Severity depends on where the reference occurred (§7).
	MissingDependency Kind = iota
	// LinkerError is a structural failure during linking, e.g. a malformed
	// BIT STRING length (§4.2.4).
	LinkerError
	// InvalidConstraintsError is a constraint violating its own
	// well-formedness, e.g. min > max (§4.3).
	InvalidConstraintsError
	// SemanticError is the validator's catch-all.
	SemanticError
)

func (k Kind) String() string {
	switch k {
	case MissingDependency:
		return "MissingDependency"
	case LinkerError:
		return "LinkerError"
	case InvalidConstraintsError:
		return "InvalidConstraintsError"
	case SemanticError:
		return "SemanticError"
	default:
		return "Unknown"
	}
}

// Severity distinguishes diagnostics that abort downstream processing of the
// TLD from ones that merely inform the caller.
type Severity uint8

const (
	// Warning diagnostics leave the owning TLD in the output set.
	Warning Severity = iota
	// Error diagnostics remove the owning TLD from the output set (when
	// raised by the validator) or abort the current sub-task (when raised
	// structurally by the linker).
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ResolutionStage records which of the three named-value lookup stages
// (§4.2.2) produced a resolution, when that information is useful to the
// caller. Zero value (StageDirect) means "not applicable" as well as "direct
// lookup succeeded"; only StageUntypedScan is ever surfaced to callers, since
// it is the sole stage the specification calls out as heuristic.
type ResolutionStage uint8

const (
	StageDirect ResolutionStage = iota
	StageTypedScan
	StageUntypedScan
)

// Diagnostic is a single accumulated warning or error, optionally attached to
// the name of the data element that produced it.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	// Element is the offending data element's name, or "" if not applicable.
	Element string
	// Detail is a free-form human-readable message.
	Detail string
	// Stage is populated only for MissingDependency diagnostics produced by
	// the untyped enum-scan heuristic (§4.2.2 stage 3, §9 Open Questions).
	Stage ResolutionStage
}

// Error implements the error interface so a Diagnostic can be used wherever
// an error is expected (e.g. in test assertions), without this package's
// diagnostics being treated as Go errors that must be handled by propagation.
func (d Diagnostic) Error() string {
	if d.Element != "" {
		return fmt.Sprintf("%s (%s): %s [%s]", d.Kind, d.Element, d.Detail, d.Severity)
	}
	return fmt.Sprintf("%s: %s [%s]", d.Kind, d.Detail, d.Severity)
}

// MissingDep constructs a MissingDependency diagnostic at the given severity.
func MissingDep(severity Severity, element, detail string) Diagnostic {
	return Diagnostic{Kind: MissingDependency, Severity: severity, Element: element, Detail: detail}
}

// MissingDepHeuristic constructs a MissingDependency warning additionally
// tagging that it was resolved via the untyped enum-scan heuristic.
func MissingDepHeuristic(element, detail string) Diagnostic {
	return Diagnostic{Kind: MissingDependency, Severity: Warning, Element: element, Detail: detail, Stage: StageUntypedScan}
}

// Linker constructs a LinkerError diagnostic, always at Error severity.
func Linker(element, detail string) Diagnostic {
	return Diagnostic{Kind: LinkerError, Severity: Error, Element: element, Detail: detail}
}

// InvalidConstraints constructs an InvalidConstraintsError diagnostic, always
// at Error severity.
func InvalidConstraints(element, detail string) Diagnostic {
	return Diagnostic{Kind: InvalidConstraintsError, Severity: Error, Element: element, Detail: detail}
}

// Semantic constructs a SemanticError diagnostic, always at Error severity.
func Semantic(element, detail string) Diagnostic {
	return Diagnostic{Kind: SemanticError, Severity: Error, Element: element, Detail: detail}
}
