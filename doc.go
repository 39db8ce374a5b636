// Package gnarkkeys provides binary serialization for Groth16 artifacts
// (proofs, proving keys, verifying keys and their prepared form).
//
// gnark-keys supports the following curves:
//   - BN254
//   - BLS12_377
//   - BLS12_381
package gnarkkeys

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

var Version = semver.MustParse("0.1.0")

// Curves return the curves supported by gnark-keys
func Curves() []ecc.ID {
	return []ecc.ID{
		ecc.BN254,
		ecc.BLS12_377,
		ecc.BLS12_381,
	}
}
