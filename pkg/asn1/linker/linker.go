// Package linker resolves by-name references among top-level definitions to
// fix-point (§4.2): class references, COMPONENTS OF inclusion,
// choice-selection types, object-set references, and constraint value
// references, followed by supertype collection. It is diagnostic
// accumulating, not failing-fast (§7): a failed resolution becomes a
// diagnostic (a warning, except for a missing choice alternative or a
// strict-mode constraint reference, which are errors) and linking continues.
package linker

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// Config carries the handful of toggles the linker needs (SPEC_FULL.md §A.3).
type Config struct {
	// StrictConstraints escalates an unresolved constraint value reference
	// (§7) from warning to error. Default false, matching the
	// specification's default propagation policy.
	StrictConstraints bool
	// AllowUntypedEnumScan permits named-value lookup's third, type-less
	// stage (§4.2.2 stage 3). Default true. Disabling it trades fewer
	// heuristic resolutions for fewer false-positive links.
	AllowUntypedEnumScan bool
}

// DefaultConfig is the specification's default propagation policy.
var DefaultConfig = Config{StrictConstraints: false, AllowUntypedEnumScan: true}

// linker packages up the state needed across a single Link call.
type linker struct {
	cfg Config
}

// Link resolves every TLD in idx to fix-point, mutating the index in place
// via the remove-mutate-reinsert discipline (§9), and returns the
// accumulated diagnostics (almost always warnings; see Config.StrictConstraints).
// A single sweep suffices for well-formed input (§4.2.3): the linker never
// re-enqueues a key.
func Link(idx *index.Index, cfg Config) []diag.Diagnostic {
	l := &linker{cfg: cfg}
	keys := initialKeyOrder(idx)

	log.WithField("count", len(keys)).Debug("linker: starting pass")

	var diagnostics []diag.Diagnostic

	for len(keys) > 0 {
		// LIFO consumption (§4.2.1): pop from the end.
		key := keys[len(keys)-1]
		keys = keys[:len(keys)-1]

		diagnostics = append(diagnostics, l.linkOne(idx, key)...)
	}

	log.WithField("diagnostics", len(diagnostics)).Debug("linker: fix-point reached")

	return diagnostics
}

// initialKeyOrder computes the scheduling order described in §4.2.1: all
// value-definitions first, then everything else, since type linking may query
// value-resolution but never the reverse (§9, "Worklist ordering"). Consumption
// is LIFO (pop from the tail), so values are placed at the tail of the
// returned slice: they pop, and so link, first.
func initialKeyOrder(idx *index.Index) []string {
	var (
		values    []string
		nonValues []string
	)

	idx.Iter(func(tld ir.TLD) {
		if _, ok := tld.(*ir.ValueDefinition); ok {
			values = append(values, tld.Name())
		} else {
			nonValues = append(nonValues, tld.Name())
		}
	})

	// nonValues first, then values on top, so values pop off the stack
	// first.
	return append(nonValues, values...)
}

// linkOne runs the five resolution sub-tasks (§4.2.1) for a single key, in
// fixed order, followed by supertype collection. Missing keys (already
// consumed by a prior TLD's resolution, e.g. via shadowing) are silently
// skipped.
func (l *linker) linkOne(idx *index.Index, key string) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic

	if d, ok := l.resolveClassReference(idx, key); ok {
		diagnostics = append(diagnostics, d...)
	}

	l.expandComponentsOf(idx, key)

	if d := l.linkChoiceSelectionType(idx, key); d != nil {
		diagnostics = append(diagnostics, *d)
	}

	l.resolveObjectSetReference(idx, key)
	diagnostics = append(diagnostics, l.resolveConstraintReferences(idx, key)...)
	l.collectSupertypes(idx, key)

	return diagnostics
}
