package linker

import (
	"fmt"

	"github.com/go-asn1c/asn1c/pkg/asn1/diag"
	"github.com/go-asn1c/asn1c/pkg/asn1/ir"
)

// BitStringToOctets implements §4.2.4: group a BIT STRING literal's bits into
// 8-bit chunks MSB-first, each yielding the byte Σ bit_i·2^(7−i). A length not
// divisible by 8 is a structural LinkerError (§7) at Error severity, not a
// warning, and no octets are returned. Link does not call this function.
func BitStringToOctets(v *ir.BitVector, element string) ([]byte, *diag.Diagnostic) {
	if v.Len()%8 != 0 {
		d := diag.Linker(element, fmt.Sprintf(
			"BIT STRING of length %d is not a multiple of 8 bits", v.Len()))
		return nil, &d
	}

	bits := v.Bits()
	octets := make([]byte, 0, len(bits)/8)

	for i := 0; i < len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			if bits[i+j] {
				b += 1 << (7 - j)
			}
		}

		octets = append(octets, b)
	}

	return octets, nil
}
