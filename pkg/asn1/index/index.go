// Package index implements the reference index (§4.1): a deterministic,
// name-keyed mapping from TLD name to TLD, iterated in lexicographic order.
// The linker uses a remove-mutate-reinsert discipline against this index so a
// TLD being updated is never observed mid-update by a lookup triggered from
// its own resolution (§9, "Remove-mutate-reinsert").
package index

import (
	"sort"

	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// Index is a sorted name -> TLD mapping. The zero value is not usable; use
// New.
type Index struct {
	byName map[string]ir.TLD
	// order caches the lexicographically sorted key list; invalidated (set
	// to nil) on every mutation and recomputed lazily by Iter.
	order []string
}

// New constructs an empty reference index.
func New() *Index {
	return &Index{byName: make(map[string]ir.TLD)}
}

// Insert adds a TLD to the index under its own name. On a name collision, the
// later definition shadows the earlier one (§9, Open Questions: this
// implementation's explicit policy decision — see DESIGN.md). Insert reports
// whether a TLD with that name already existed.
func (idx *Index) Insert(tld ir.TLD) (shadowed bool) {
	_, shadowed = idx.byName[tld.Name()]
	idx.byName[tld.Name()] = tld
	idx.order = nil

	return shadowed
}

// Remove deletes the TLD with the given name, returning it (and whether it
// was present). This is the first half of the linker's remove-mutate-reinsert
// discipline.
func (idx *Index) Remove(name string) (ir.TLD, bool) {
	tld, ok := idx.byName[name]
	if ok {
		delete(idx.byName, name)
		idx.order = nil
	}

	return tld, ok
}

// Lookup returns the TLD with the given name, if any.
func (idx *Index) Lookup(name string) (ir.TLD, bool) {
	tld, ok := idx.byName[name]
	return tld, ok
}

// Len returns the number of TLDs currently in the index.
func (idx *Index) Len() int {
	return len(idx.byName)
}

// Iter calls fn once per TLD in lexicographic name order, giving a
// deterministic traversal (§4.1, §8 property 2: determinism).
func (idx *Index) Iter(fn func(ir.TLD)) {
	for _, name := range idx.sortedKeys() {
		fn(idx.byName[name])
	}
}

// Names returns every TLD name currently present, in lexicographic order.
func (idx *Index) Names() []string {
	keys := idx.sortedKeys()
	out := make([]string, len(keys))
	copy(out, keys)

	return out
}

func (idx *Index) sortedKeys() []string {
	if idx.order != nil {
		return idx.order
	}

	keys := make([]string, 0, len(idx.byName))
	for name := range idx.byName {
		keys = append(keys, name)
	}

	sort.Strings(keys)
	idx.order = keys

	return keys
}
