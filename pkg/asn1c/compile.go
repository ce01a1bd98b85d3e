// Package asn1c is the public entrypoint for the linker/validator core: it
// threads the external interface of §6 — index construction, linking,
// validation and module grouping — into the single call an emitter-side
// caller needs, mirroring the teacher's top-level
// corset.CompileSourceFiles/Compiler.Compile shape (pkg/corset/compiler.go).
package asn1c

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/group"
	"github.com/go-asn1c/asn1c/pkg/asn1/index"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
	"github.com/go-asn1c/asn1c/pkg/asn1/linker"
	"github.com/go-asn1c/asn1c/pkg/asn1/validator"
)

// ModuleInput is one (ModuleReference, []TLD) pair as delivered by the
// parser (§6's input boundary): a module header shared by every TLD in the
// slice, plus the TLDs themselves in source order.
type ModuleInput struct {
	Module *ir.ModuleReference
	TLDs   []ir.TLD
}

// Resolved is the linker/validator core's output: the flat, validated TLD
// list (§6's external interface) alongside the module-grouped view the
// emitter actually consumes (§4.4).
type Resolved struct {
	TLDs   []ir.TLD
	Groups []group.Group
}

// Validate runs the full pipeline — input-boundary stamping, linking,
// validation, module grouping — over modules and returns the resolved
// output alongside every accumulated diagnostic (§6, §7). There is no error
// return: every accumulable problem becomes a diag.Diagnostic. The only
// inputs that can make linking meaningless outright (and so panic rather
// than silently produce an empty result) are malformed at the Go level —
// e.g. a ModuleInput with a nil Module — which indicates a parser bug, not a
// user-facing ASN.1 error.
func Validate(modules []ModuleInput, cfg linker.Config) (Resolved, []diag.Diagnostic) {
	idx := buildIndex(modules)

	log.WithField("tlds", idx.Len()).Debug("asn1c: indexed input modules")

	diagnostics := linker.Link(idx, cfg)

	valid, verrs := validator.Validate(idx)
	diagnostics = append(diagnostics, verrs...)

	groups := group.Partition(valid)

	log.WithFields(log.Fields{
		"valid":       len(valid),
		"diagnostics": len(diagnostics),
	}).Debug("asn1c: validation complete")

	return Resolved{TLDs: valid, Groups: groups}, diagnostics
}

// buildIndex applies the input boundary of §6: for each TLD, before
// indexing, stamp (module, positional_index) — source order within a module
// becomes the TLD's Position(), never reordered thereafter (§3 invariant
// 3) — then apply the now-stamped module's tagging environment to the
// TLD's own type. On a name collision across the whole working set, the
// later definition shadows the earlier one (§9 Open Questions: this
// implementation's explicit default policy — see DESIGN.md).
func buildIndex(modules []ModuleInput) *index.Index {
	idx := index.New()

	for _, m := range modules {
		if m.Module == nil {
			panic(fmt.Sprintf("asn1c: ModuleInput with %d TLDs has a nil Module", len(m.TLDs)))
		}

		for position, tld := range m.TLDs {
			tld.Stamp(m.Module, position)
			ir.ApplyTaggingEnvironment(tld)
			idx.Insert(tld)
		}
	}

	return idx
}
