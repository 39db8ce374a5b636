// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package groth16_test

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	bn254curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/gnark-keys/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark-keys/backend/groth16/bn254"
)

var curves = []ecc.ID{ecc.BN254, ecc.BLS12_377, ecc.BLS12_381}

func TestConstructorsCurveID(t *testing.T) {
	for _, id := range curves {
		id := id
		t.Run(id.String(), func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(id, groth16.NewProof(id).CurveID())
			assert.Equal(id, groth16.NewVerifyingKey(id).CurveID())
			assert.Equal(id, groth16.NewPreparedVerifyingKey(id).CurveID())
			assert.Equal(id, groth16.NewProvingKey(id).CurveID())
		})
	}
}

func TestConstructorsUnknownCurve(t *testing.T) {
	require.Panics(t, func() { groth16.NewProof(ecc.UNKNOWN) })
	require.Panics(t, func() { groth16.NewProvingKey(ecc.UNKNOWN) })
}

// an artifact serialized through its concrete type must be readable through
// the curve-agnostic interface, and vice versa
func TestInterfaceRoundTrip(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := bn254curve.Generators()

	var vk groth16_bn254.VerifyingKey
	vk.G1.Alpha = g1
	vk.G2.Beta = g2
	vk.G2.Gamma = g2
	vk.G2.Delta = g2
	vk.G1.GammaAbc = []bn254curve.G1Affine{g1, g1}

	var buf bytes.Buffer
	_, err := vk.WriteTo(&buf)
	assert.NoError(err)

	reloaded := groth16.NewVerifyingKey(ecc.BN254)
	_, err = reloaded.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(1, reloaded.NbPublicWitness())

	if diff := cmp.Diff(&vk, reloaded); diff != "" {
		t.Fatalf("verifying key mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareDispatch(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := bn254curve.Generators()

	var vk groth16_bn254.VerifyingKey
	vk.G1.Alpha = g1
	vk.G2.Beta = g2
	vk.G2.Gamma = g2
	vk.G2.Delta = g2
	vk.G1.GammaAbc = []bn254curve.G1Affine{g1}

	pvk, err := groth16.Prepare(&vk)
	assert.NoError(err)
	assert.Equal(ecc.BN254, pvk.CurveID())

	var buf bytes.Buffer
	written, err := pvk.WriteTo(&buf)
	assert.NoError(err)

	reloaded := groth16.NewPreparedVerifyingKey(ecc.BN254)
	read, err := reloaded.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, read)

	if diff := cmp.Diff(pvk, reloaded); diff != "" {
		t.Fatalf("prepared verifying key mismatch (-want +got):\n%s", diff)
	}
}
