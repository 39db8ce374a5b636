// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zkpschemes

const Groth16Keys = `
// Package groth16 implements Groth16 artifact types for the {{.Curve}} curve and
// their binary serialization.

import (
	"github.com/consensys/gnark-crypto/ecc"
	{{ template "import_curve" . }}

	"github.com/consensys/gnark-keys/backend"
)

// Proof represents a Groth16 proof: two G1 points and one G2 point.
// Produced by a prover, consumed by a verifier; fixed shape, immutable once
// constructed.
type Proof struct {
	Ar  curve.G1Affine // π_A
	Bs  curve.G2Affine // π_B
	Krs curve.G1Affine // π_C
}

// VerifyingKey is the public data needed to check a Groth16 proof.
//
// GammaAbc holds one point per public input plus the constant term at index
// 0; its order is positional and significant. A verifying key is produced
// once by a trusted setup and read-only thereafter; it is safe to share
// across concurrent verifications.
type VerifyingKey struct {
	// [α]₁, [Kvk]₁
	G1 struct {
		Alpha    curve.G1Affine
		GammaAbc []curve.G1Affine
	}

	// [β]₂, [γ]₂, [δ]₂
	G2 struct {
		Beta, Gamma, Delta curve.G2Affine
	}
}

// PreparedVerifyingKey caches the pairing work a verifier repeats on every
// proof: e([α]₁, [β]₂) and the negated [γ]₂, [δ]₂ operands ready for use in
// pairing computations. It is always derived from exactly one VerifyingKey
// (kept in VK) and never mutated afterwards.
type PreparedVerifyingKey struct {
	VK VerifyingKey

	// e([α]₁, [β]₂)
	AlphaBeta curve.GT

	// -[γ]₂, -[δ]₂
	G2 struct {
		GammaNeg, DeltaNeg curve.G2Affine
	}
}

// ProvingKey is the prover's share of a Groth16 trusted setup: the embedded
// verifying key, [β]₁, [δ]₁ and the five query vectors evaluated over the
// constraint system. Vector lengths are fixed by the setup; no relation
// between them is enforced here. Safe to share read-only across concurrent
// proving operations.
type ProvingKey struct {
	VK VerifyingKey

	// [β]₁, [δ]₁, [A(t)]₁, [B(t)]₁, [H(t)]₁, [L(t)]₁
	G1 struct {
		Beta, Delta curve.G1Affine
		A, B, H, L  []curve.G1Affine
	}

	// [B(t)]₂
	G2 struct {
		B []curve.G2Affine
	}
}

// CurveID returns the curve the artifact is defined over.
func (proof *Proof) CurveID() ecc.ID { return ecc.{{.EnumID}} }

// CurveID returns the curve the artifact is defined over.
func (vk *VerifyingKey) CurveID() ecc.ID { return ecc.{{.EnumID}} }

// CurveID returns the curve the artifact is defined over.
func (pvk *PreparedVerifyingKey) CurveID() ecc.ID { return ecc.{{.EnumID}} }

// CurveID returns the curve the artifact is defined over.
func (pk *ProvingKey) CurveID() ecc.ID { return ecc.{{.EnumID}} }

// NbPublicWitness returns the number of public inputs the key commits to;
// GammaAbc[0] is the constant term.
func (vk *VerifyingKey) NbPublicWitness() int {
	return len(vk.G1.GammaAbc) - 1
}

// Size returns the lengths of the key's variable vectors. A stream written
// with WriteSizedTo can only be read back with this exact descriptor.
func (pk *ProvingKey) Size() backend.KeySize {
	return backend.KeySize{
		VkLen:  uint64(len(pk.VK.G1.GammaAbc)),
		ALen:   uint64(len(pk.G1.A)),
		BG1Len: uint64(len(pk.G1.B)),
		BG2Len: uint64(len(pk.G2.B)),
		HLen:   uint64(len(pk.G1.H)),
		LLen:   uint64(len(pk.G1.L)),
	}
}

// Prepare derives the pairing cache for vk: e([α]₁, [β]₂) and the negated
// [γ]₂, [δ]₂ operands. The derivation is deterministic; the only failure
// mode is the pairing computation itself.
func Prepare(vk *VerifyingKey) (*PreparedVerifyingKey, error) {
	var pvk PreparedVerifyingKey
	pvk.VK = *vk

	var err error
	pvk.AlphaBeta, err = curve.Pair(
		[]curve.G1Affine{vk.G1.Alpha},
		[]curve.G2Affine{vk.G2.Beta},
	)
	if err != nil {
		return nil, err
	}
	pvk.G2.GammaNeg.Neg(&vk.G2.Gamma)
	pvk.G2.DeltaNeg.Neg(&vk.G2.Delta)

	return &pvk, nil
}
`
