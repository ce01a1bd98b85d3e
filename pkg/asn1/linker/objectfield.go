package linker

import (
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// WalkObjectFieldPath implements §4.2.5: given a class's field list and a
// path of identifiers, find the terminal field the path refers to (e.g.
// resolving `TYPE-IDENTIFIER.&Type`). It is a thin re-export of
// ir.WalkFieldPath; no linker sub-task calls it.
func WalkObjectFieldPath(fields []ir.InformationObjectClassField, path []ir.ObjectFieldIdentifier) (*ir.InformationObjectClassField, bool) {
	return ir.WalkFieldPath(fields, path)
}
