// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package groth16 exposes curve-agnostic views of the Groth16 artifacts
// (Proof, VerifyingKey, PreparedVerifyingKey, ProvingKey) and constructors
// keyed on ecc.ID. Each artifact is backed by a concrete curve-typed
// implementation; the interfaces carry only what callers need to move the
// artifacts in and out of byte streams.
package groth16

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/consensys/gnark-keys/backend"
	groth16_bls377 "github.com/consensys/gnark-keys/backend/groth16/bls12-377"
	groth16_bls381 "github.com/consensys/gnark-keys/backend/groth16/bls12-381"
	groth16_bn254 "github.com/consensys/gnark-keys/backend/groth16/bn254"
	gnarkio "github.com/consensys/gnark-keys/io"
)

// Proof represents a Groth16 proof generated by groth16.Prove
//
// it's underlying implementation is curve specific (see gnark-keys/backend/groth16/...)
type Proof interface {
	io.WriterTo
	io.ReaderFrom
	gnarkio.WriterRawTo
	CurveID() ecc.ID
}

// VerifyingKey represents a Groth16 VerifyingKey
//
// it's underlying implementation is curve specific (see gnark-keys/backend/groth16/...)
type VerifyingKey interface {
	io.WriterTo
	io.ReaderFrom
	gnarkio.WriterRawTo
	gnarkio.UnsafeReaderFrom
	CurveID() ecc.ID

	// NbPublicWitness returns the number of public inputs the key commits to
	NbPublicWitness() int
}

// PreparedVerifyingKey is a VerifyingKey augmented with its cached pairing
// work; verifiers that check many proofs against the same key load this form
//
// it's underlying implementation is curve specific (see gnark-keys/backend/groth16/...)
type PreparedVerifyingKey interface {
	io.WriterTo
	io.ReaderFrom
	CurveID() ecc.ID
}

// ProvingKey represents a Groth16 ProvingKey
//
// it's underlying implementation is curve specific (see gnark-keys/backend/groth16/...)
type ProvingKey interface {
	io.WriterTo
	io.ReaderFrom
	gnarkio.WriterRawTo
	gnarkio.UnsafeReaderFrom
	gnarkio.SizedWriterTo
	CurveID() ecc.ID

	// Size returns the vector lengths needed to read back the size-guided
	// encoding written by WriteSizedTo
	Size() backend.KeySize
	ReadSizedFrom(r io.Reader, size backend.KeySize) (int64, error)
}

// NewProof instantiates a curve-typed Proof
func NewProof(curveID ecc.ID) Proof {
	switch curveID {
	case ecc.BN254:
		return &groth16_bn254.Proof{}
	case ecc.BLS12_377:
		return &groth16_bls377.Proof{}
	case ecc.BLS12_381:
		return &groth16_bls381.Proof{}
	default:
		panic("not implemented")
	}
}

// NewVerifyingKey instantiates a curve-typed VerifyingKey
func NewVerifyingKey(curveID ecc.ID) VerifyingKey {
	switch curveID {
	case ecc.BN254:
		return &groth16_bn254.VerifyingKey{}
	case ecc.BLS12_377:
		return &groth16_bls377.VerifyingKey{}
	case ecc.BLS12_381:
		return &groth16_bls381.VerifyingKey{}
	default:
		panic("not implemented")
	}
}

// NewPreparedVerifyingKey instantiates a curve-typed PreparedVerifyingKey
func NewPreparedVerifyingKey(curveID ecc.ID) PreparedVerifyingKey {
	switch curveID {
	case ecc.BN254:
		return &groth16_bn254.PreparedVerifyingKey{}
	case ecc.BLS12_377:
		return &groth16_bls377.PreparedVerifyingKey{}
	case ecc.BLS12_381:
		return &groth16_bls381.PreparedVerifyingKey{}
	default:
		panic("not implemented")
	}
}

// NewProvingKey instantiates a curve-typed ProvingKey
func NewProvingKey(curveID ecc.ID) ProvingKey {
	switch curveID {
	case ecc.BN254:
		return &groth16_bn254.ProvingKey{}
	case ecc.BLS12_377:
		return &groth16_bls377.ProvingKey{}
	case ecc.BLS12_381:
		return &groth16_bls381.ProvingKey{}
	default:
		panic("not implemented")
	}
}

// Prepare derives a PreparedVerifyingKey from vk, dispatching on its
// concrete curve type
func Prepare(vk VerifyingKey) (PreparedVerifyingKey, error) {
	switch _vk := vk.(type) {
	case *groth16_bn254.VerifyingKey:
		return groth16_bn254.Prepare(_vk)
	case *groth16_bls377.VerifyingKey:
		return groth16_bls377.Prepare(_vk)
	case *groth16_bls381.VerifyingKey:
		return groth16_bls381.Prepare(_vk)
	default:
		panic("not implemented")
	}
}
