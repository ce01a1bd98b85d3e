// Package ir defines the in-memory representation of parsed ASN.1 module
// content: top-level definitions, types, values, constraints and
// information-object class structures.  Ownership of a TLD's name is unique
// within the working set fed to the linker; a TLD's module reference is
// shared by every other TLD declared in the same module.
package ir

// TaggingEnvironment is a module-wide default governing how implicit tags are
// applied to fields which do not carry an explicit tag override.
type TaggingEnvironment uint8

const (
	// Automatic tagging assigns context tags to untagged fields based on
	// their position.
	Automatic TaggingEnvironment = iota
	// Implicit tagging replaces a field's underlying tag with its tag
	// override.
	Implicit
	// Explicit tagging always wraps a field's underlying tag, never
	// replacing it.
	Explicit
)

func (t TaggingEnvironment) String() string {
	switch t {
	case Automatic:
		return "AUTOMATIC"
	case Explicit:
		return "EXPLICIT"
	default:
		return "IMPLICIT"
	}
}

// ModuleReference is the shared header every TLD of a module points at. It is
// allocated once per module and handed out to each of that module's TLDs as a
// shared-ownership pointer; its lifetime is pinned to the last TLD that still
// references it, so it is never copied.
type ModuleReference struct {
	// Name is the module's identifier, as it appeared in the source text.
	Name string
	// Tagging is the module's default tagging environment, applied to every
	// TLD declared in it before the TLD is indexed (see §6 of the linker
	// design: tagging is stamped at the input boundary, not during linking).
	Tagging TaggingEnvironment
}

// NewModuleReference constructs a shared module header. Callers should retain
// the returned pointer and hand it to every TLD of the module; never copy the
// struct by value once TLDs reference it.
func NewModuleReference(name string, tagging TaggingEnvironment) *ModuleReference {
	return &ModuleReference{Name: name, Tagging: tagging}
}
