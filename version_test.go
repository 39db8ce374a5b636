package gnarkkeys

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert := require.New(t)
	assert.NotEqual(uint64(0), Version.Major+Version.Minor+Version.Patch)
}

func TestCurves(t *testing.T) {
	assert := require.New(t)
	assert.Contains(Curves(), ecc.BN254)
	assert.Contains(Curves(), ecc.BLS12_377)
	assert.Contains(Curves(), ecc.BLS12_381)
}
