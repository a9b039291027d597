// Package shake wraps the cSHAKE256 extendable-output function with the
// domain-separation customizations used across the PKE and KEM layers.
package shake

import (
	"golang.org/x/crypto/sha3"
)

// Domain-separation customization strings. Each use of the XOF gets its
// own tag so outputs can never collide across roles.
var (
	// TagF derives the PKE message mask from a j-invariant.
	TagF = []byte{0x00}
	// TagG derives the Fujisaki-Okamoto encryption randomness.
	TagG = []byte{0x01}
	// TagH derives the KEM shared key.
	TagH = []byte{0x02}
	// TagT derives the short ciphertext tag.
	TagT = []byte{0x03}
)

// Sum runs cSHAKE256 with the given customization over the concatenation
// of the inputs and returns outLen bytes of output.
func Sum(customization []byte, outLen int, inputs ...[]byte) []byte {
	h := sha3.NewCShake256(nil, customization)
	for _, in := range inputs {
		_, _ = h.Write(in)
	}
	out := make([]byte, outLen)
	_, _ = h.Read(out)
	return out
}
