// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zkpschemes

const Groth16Marshal = `
import (
	"fmt"
	"io"
	"time"

	{{ template "import_curve" . }}

	"github.com/consensys/gnark-keys/backend"
	gnarkio "github.com/consensys/gnark-keys/io"
	"github.com/consensys/gnark-keys/logger"
)

// namedField pairs a decode target with the wire name reported on failure.
type namedField struct {
	name string
	v    interface{}
}

func newEncoder(w io.Writer, raw bool) *curve.Encoder {
	if raw {
		return curve.NewEncoder(w, curve.RawEncoding())
	}
	return curve.NewEncoder(w)
}

// WriteTo writes binary encoding of the proof elements to writer,
// in order: π_A ∥ π_B ∥ π_C, points compressed.
// use WriteRawTo(...) to encode the proof without point compression
func (proof *Proof) WriteTo(w io.Writer) (int64, error) {
	return proof.writeTo(w, false)
}

// WriteRawTo writes binary encoding of the proof elements to writer,
// in order: π_A ∥ π_B ∥ π_C, points uncompressed.
// use WriteTo(...) to encode the proof with point compression
func (proof *Proof) WriteRawTo(w io.Writer) (int64, error) {
	return proof.writeTo(w, true)
}

func (proof *Proof) writeTo(w io.Writer, raw bool) (int64, error) {
	enc := newEncoder(w, raw)

	toEncode := []interface{}{
		&proof.Ar,
		&proof.Bs,
		&proof.Krs,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom attempts to decode a Proof from reader.
// The proof must be encoded through WriteTo (compressed) or WriteRawTo
// (uncompressed); the point encoding is self-delimiting either way.
func (proof *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)

	toDecode := []namedField{
		{"proof.a", &proof.Ar},
		{"proof.b", &proof.Bs},
		{"proof.c", &proof.Krs},
	}
	for _, f := range toDecode {
		if err := dec.Decode(f.v); err != nil {
			return dec.BytesRead(), gnarkio.DecodeError(f.name, err)
		}
	}
	return dec.BytesRead(), nil
}

// WriteTo writes binary encoding of the verifying key elements to writer:
//
//	[α]₁ ∥ [β]₂ ∥ [γ]₂ ∥ [δ]₂ ∥ uint32(len(GammaAbc)) ∥ [GammaAbc]₁
//
// Points are compressed; use WriteRawTo(...) to encode without compression.
// This self-describing form is the interchange default: a reader needs no
// prior knowledge of the key's shape.
func (vk *VerifyingKey) WriteTo(w io.Writer) (int64, error) {
	return vk.writeTo(w, false)
}

// WriteRawTo writes binary encoding of the verifying key elements to writer,
// points uncompressed. Same layout as WriteTo otherwise.
func (vk *VerifyingKey) WriteRawTo(w io.Writer) (int64, error) {
	return vk.writeTo(w, true)
}

func (vk *VerifyingKey) writeTo(w io.Writer, raw bool) (int64, error) {
	enc := newEncoder(w, raw)

	toEncode := []interface{}{
		&vk.G1.Alpha,
		&vk.G2.Beta,
		&vk.G2.Gamma,
		&vk.G2.Delta,
		vk.G1.GammaAbc,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom attempts to decode a VerifyingKey from its self-describing
// encoding (WriteTo or WriteRawTo).
func (vk *VerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	return vk.readFrom(r)
}

// UnsafeReadFrom behaves like ReadFrom except it doesn't check that decoded
// points are on the curve or in the correct subgroup.
func (vk *VerifyingKey) UnsafeReadFrom(r io.Reader) (int64, error) {
	return vk.readFrom(r, curve.NoSubgroupChecks())
}

func (vk *VerifyingKey) readFrom(r io.Reader, decOptions ...func(*curve.Decoder)) (int64, error) {
	dec := curve.NewDecoder(r, decOptions...)

	toDecode := []namedField{
		{"vk.alpha_g1", &vk.G1.Alpha},
		{"vk.beta_g2", &vk.G2.Beta},
		{"vk.gamma_g2", &vk.G2.Gamma},
		{"vk.delta_g2", &vk.G2.Delta},
		{"vk.gamma_abc_g1", &vk.G1.GammaAbc},
	}
	for _, f := range toDecode {
		if err := dec.Decode(f.v); err != nil {
			return dec.BytesRead(), gnarkio.DecodeError(f.name, err)
		}
	}
	return dec.BytesRead(), nil
}

// WriteSizedTo writes the compact form of the verifying key: the four fixed
// elements followed by the GammaAbc points, with no length field. The
// reader must be given len(GammaAbc) out of band, typically through a
// backend.KeySize persisted next to the stream.
func (vk *VerifyingKey) WriteSizedTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w)

	toEncode := []interface{}{
		&vk.G1.Alpha,
		&vk.G2.Beta,
		&vk.G2.Gamma,
		&vk.G2.Delta,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	for i := range vk.G1.GammaAbc {
		if err := enc.Encode(&vk.G1.GammaAbc[i]); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadSizedFrom decodes a verifying key written with WriteSizedTo.
//
// nbGammaAbc must equal the vector length used at write time: nothing in
// the stream can detect a wrong value, short of exhausting input or hitting
// bytes that do not parse as a point. Exactly nbGammaAbc points are
// consumed; any bytes that follow are left unread for the caller.
func (vk *VerifyingKey) ReadSizedFrom(r io.Reader, nbGammaAbc int) (int64, error) {
	return vk.readSizedFrom(r, nbGammaAbc)
}

func (vk *VerifyingKey) readSizedFrom(r io.Reader, nbGammaAbc int, decOptions ...func(*curve.Decoder)) (int64, error) {
	if nbGammaAbc < 0 {
		return 0, fmt.Errorf("%w: vk.gamma_abc_g1 declared length %d", gnarkio.ErrLengthMismatch, nbGammaAbc)
	}
	dec := curve.NewDecoder(r, decOptions...)

	toDecode := []namedField{
		{"vk.alpha_g1", &vk.G1.Alpha},
		{"vk.beta_g2", &vk.G2.Beta},
		{"vk.gamma_g2", &vk.G2.Gamma},
		{"vk.delta_g2", &vk.G2.Delta},
	}
	for _, f := range toDecode {
		if err := dec.Decode(f.v); err != nil {
			return dec.BytesRead(), gnarkio.DecodeError(f.name, err)
		}
	}
	vk.G1.GammaAbc = make([]curve.G1Affine, nbGammaAbc)
	for i := 0; i < nbGammaAbc; i++ {
		if err := dec.Decode(&vk.G1.GammaAbc[i]); err != nil {
			return dec.BytesRead(), gnarkio.DecodeVectorError("vk.gamma_abc_g1", i, nbGammaAbc, err)
		}
	}
	return dec.BytesRead(), nil
}

// WriteTo writes binary encoding of the prepared verifying key: the
// embedded verifying key in its self-describing form, then the cached
// pairing result e([α]₁, [β]₂), then the two negated operands. The
// prepared operands are always stored uncompressed so reloading a cache
// never pays point decompression.
func (pvk *PreparedVerifyingKey) WriteTo(w io.Writer) (int64, error) {
	n, err := pvk.VK.WriteTo(w)
	if err != nil {
		return n, err
	}

	gt := pvk.AlphaBeta.Bytes()
	written, err := w.Write(gt[:])
	n += int64(written)
	if err != nil {
		return n, err
	}

	for _, p := range []*curve.G2Affine{&pvk.G2.GammaNeg, &pvk.G2.DeltaNeg} {
		buf := p.RawBytes()
		written, err = w.Write(buf[:])
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadFrom attempts to decode a PreparedVerifyingKey from reader. The
// derived elements are read back as written; they are not recomputed from
// the embedded verifying key.
func (pvk *PreparedVerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	n, err := pvk.VK.ReadFrom(r)
	if err != nil {
		return n, err
	}

	var bufGT [curve.SizeOfGT]byte
	read, err := io.ReadFull(r, bufGT[:])
	n += int64(read)
	if err != nil {
		return n, gnarkio.DecodeError("pvk.alpha_g1_beta_g2", err)
	}
	if err := pvk.AlphaBeta.SetBytes(bufGT[:]); err != nil {
		return n, gnarkio.DecodeError("pvk.alpha_g1_beta_g2", err)
	}

	var bufG2 [curve.SizeOfG2AffineUncompressed]byte
	toDecode := []struct {
		name string
		p    *curve.G2Affine
	}{
		{"pvk.gamma_g2_neg", &pvk.G2.GammaNeg},
		{"pvk.delta_g2_neg", &pvk.G2.DeltaNeg},
	}
	for _, f := range toDecode {
		read, err = io.ReadFull(r, bufG2[:])
		n += int64(read)
		if err != nil {
			return n, gnarkio.DecodeError(f.name, err)
		}
		if _, err := f.p.SetBytes(bufG2[:]); err != nil {
			return n, gnarkio.DecodeError(f.name, err)
		}
	}
	return n, nil
}

// WriteTo writes binary encoding of the proving key elements to writer: the
// embedded verifying key in its self-describing form, then [β]₁, [δ]₁, then
// the five query vectors each with a uint32 length prefix, in order
// a ∥ b_g1 ∥ b_g2 ∥ h ∥ l. Points are compressed.
// use WriteRawTo(...) to encode the key without point compression
func (pk *ProvingKey) WriteTo(w io.Writer) (int64, error) {
	return pk.writeTo(w, false)
}

// WriteRawTo writes binary encoding of the proving key elements to writer,
// points uncompressed. Same layout as WriteTo otherwise.
func (pk *ProvingKey) WriteRawTo(w io.Writer) (int64, error) {
	return pk.writeTo(w, true)
}

func (pk *ProvingKey) writeTo(w io.Writer, raw bool) (int64, error) {
	n, err := pk.VK.writeTo(w, raw)
	if err != nil {
		return n, err
	}

	enc := newEncoder(w, raw)
	toEncode := []interface{}{
		&pk.G1.Beta,
		&pk.G1.Delta,
		pk.G1.A,
		pk.G1.B,
		pk.G2.B,
		pk.G1.H,
		pk.G1.L,
	}
	for _, v := range toEncode {
		if err := enc.Encode(v); err != nil {
			return n + enc.BytesWritten(), err
		}
	}
	return n + enc.BytesWritten(), nil
}

// ReadFrom attempts to decode a ProvingKey from its self-describing
// encoding (WriteTo or WriteRawTo).
func (pk *ProvingKey) ReadFrom(r io.Reader) (int64, error) {
	return pk.readFrom(r)
}

// UnsafeReadFrom behaves like ReadFrom except it doesn't check that decoded
// points are on the curve or in the correct subgroup. Intended for very
// large keys loaded from trusted storage.
func (pk *ProvingKey) UnsafeReadFrom(r io.Reader) (int64, error) {
	return pk.readFrom(r, curve.NoSubgroupChecks())
}

func (pk *ProvingKey) readFrom(r io.Reader, decOptions ...func(*curve.Decoder)) (int64, error) {
	start := time.Now()

	n, err := pk.VK.readFrom(r, decOptions...)
	if err != nil {
		return n, err
	}

	dec := curve.NewDecoder(r, decOptions...)
	toDecode := []namedField{
		{"pk.beta_g1", &pk.G1.Beta},
		{"pk.delta_g1", &pk.G1.Delta},
		{"pk.a_query", &pk.G1.A},
		{"pk.b_g1_query", &pk.G1.B},
		{"pk.b_g2_query", &pk.G2.B},
		{"pk.h_query", &pk.G1.H},
		{"pk.l_query", &pk.G1.L},
	}
	for _, f := range toDecode {
		if err := dec.Decode(f.v); err != nil {
			return n + dec.BytesRead(), gnarkio.DecodeError(f.name, err)
		}
	}

	n += dec.BytesRead()
	log := logger.Logger().With().Str("curve", "{{.CurveName}}").Str("backend", "groth16").Logger()
	log.Debug().Dur("took", time.Since(start)).Int64("bytes", n).Msg("proving key read")
	return n, nil
}

// WriteSizedTo writes the compact encoding of the proving key: the embedded
// verifying key in its size-guided form, then [β]₁, [δ]₁, then the five
// query vectors back to back with no length prefix anywhere in the stream.
// The result can only be reconstructed with the backend.KeySize returned by
// Size at write time.
func (pk *ProvingKey) WriteSizedTo(w io.Writer) (int64, error) {
	n, err := pk.VK.WriteSizedTo(w)
	if err != nil {
		return n, err
	}

	enc := curve.NewEncoder(w)
	if err := enc.Encode(&pk.G1.Beta); err != nil {
		return n + enc.BytesWritten(), err
	}
	if err := enc.Encode(&pk.G1.Delta); err != nil {
		return n + enc.BytesWritten(), err
	}
	for _, q := range [][]curve.G1Affine{pk.G1.A, pk.G1.B} {
		for i := range q {
			if err := enc.Encode(&q[i]); err != nil {
				return n + enc.BytesWritten(), err
			}
		}
	}
	for i := range pk.G2.B {
		if err := enc.Encode(&pk.G2.B[i]); err != nil {
			return n + enc.BytesWritten(), err
		}
	}
	for _, q := range [][]curve.G1Affine{pk.G1.H, pk.G1.L} {
		for i := range q {
			if err := enc.Encode(&q[i]); err != nil {
				return n + enc.BytesWritten(), err
			}
		}
	}
	return n + enc.BytesWritten(), nil
}

// ReadSizedFrom decodes a proving key written with WriteSizedTo, using the
// vector lengths declared in size.
//
// The stream carries no self-description: a size that understates a length
// makes this reader stop early and misalign every subsequent field, and a
// size that overstates one makes it consume bytes belonging to the next
// field. Both cases surface as ErrLengthMismatch, ErrTruncatedStream or
// ErrMalformedPoint, tagged with the vector and index being read; a
// structurally wrong key is never returned silently.
func (pk *ProvingKey) ReadSizedFrom(r io.Reader, size backend.KeySize) (int64, error) {
	return pk.readSizedFrom(r, size)
}

// UnsafeReadSizedFrom behaves like ReadSizedFrom except it doesn't check
// that decoded points are on the curve or in the correct subgroup.
func (pk *ProvingKey) UnsafeReadSizedFrom(r io.Reader, size backend.KeySize) (int64, error) {
	return pk.readSizedFrom(r, size, curve.NoSubgroupChecks())
}

func (pk *ProvingKey) readSizedFrom(r io.Reader, size backend.KeySize, decOptions ...func(*curve.Decoder)) (int64, error) {
	start := time.Now()

	n, err := pk.VK.readSizedFrom(r, int(size.VkLen), decOptions...)
	if err != nil {
		return n, err
	}

	dec := curve.NewDecoder(r, decOptions...)
	if err := dec.Decode(&pk.G1.Beta); err != nil {
		return n + dec.BytesRead(), gnarkio.DecodeError("pk.beta_g1", err)
	}
	if err := dec.Decode(&pk.G1.Delta); err != nil {
		return n + dec.BytesRead(), gnarkio.DecodeError("pk.delta_g1", err)
	}

	if pk.G1.A, err = decodeG1Vector(dec, "pk.a_query", int(size.ALen)); err != nil {
		return n + dec.BytesRead(), err
	}
	if pk.G1.B, err = decodeG1Vector(dec, "pk.b_g1_query", int(size.BG1Len)); err != nil {
		return n + dec.BytesRead(), err
	}
	if pk.G2.B, err = decodeG2Vector(dec, "pk.b_g2_query", int(size.BG2Len)); err != nil {
		return n + dec.BytesRead(), err
	}
	if pk.G1.H, err = decodeG1Vector(dec, "pk.h_query", int(size.HLen)); err != nil {
		return n + dec.BytesRead(), err
	}
	if pk.G1.L, err = decodeG1Vector(dec, "pk.l_query", int(size.LLen)); err != nil {
		return n + dec.BytesRead(), err
	}

	n += dec.BytesRead()
	log := logger.Logger().With().Str("curve", "{{.CurveName}}").Str("backend", "groth16").Logger()
	log.Debug().Dur("took", time.Since(start)).Int64("bytes", n).Msg("proving key read (size-guided)")
	return n, nil
}

func decodeG1Vector(dec *curve.Decoder, field string, n int) ([]curve.G1Affine, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %s declared length %d", gnarkio.ErrLengthMismatch, field, n)
	}
	v := make([]curve.G1Affine, n)
	for i := range v {
		if err := dec.Decode(&v[i]); err != nil {
			return nil, gnarkio.DecodeVectorError(field, i, n, err)
		}
	}
	return v, nil
}

func decodeG2Vector(dec *curve.Decoder, field string, n int) ([]curve.G2Affine, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %s declared length %d", gnarkio.ErrLengthMismatch, field, n)
	}
	v := make([]curve.G2Affine, n)
	for i := range v {
		if err := dec.Decode(&v[i]); err != nil {
			return nil, gnarkio.DecodeVectorError(field, i, n, err)
		}
	}
	return v, nil
}
`

const Groth16MarshalTest = `
import (
	"bytes"
	"errors"
	"math/big"
	"reflect"
	"testing"

	{{ template "import_curve" . }}
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	gnarkio "github.com/consensys/gnark-keys/io"
)

func TestProofSerialization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Proof -> writer -> reader -> Proof should stay constant", prop.ForAll(
		func(ar, krs curve.G1Affine, bs curve.G2Affine) bool {
			var proof, pCompressed, pRaw Proof

			// create a random proof
			proof.Ar = ar
			proof.Krs = krs
			proof.Bs = bs

			var bufCompressed bytes.Buffer
			written, err := proof.WriteTo(&bufCompressed)
			if err != nil {
				return false
			}

			read, err := pCompressed.ReadFrom(&bufCompressed)
			if err != nil {
				return false
			}

			if read != written {
				return false
			}

			var bufRaw bytes.Buffer
			written, err = proof.WriteRawTo(&bufRaw)
			if err != nil {
				return false
			}

			read, err = pRaw.ReadFrom(&bufRaw)
			if err != nil {
				return false
			}

			if read != written {
				return false
			}

			return reflect.DeepEqual(&proof, &pCompressed) && reflect.DeepEqual(&proof, &pRaw)
		},
		GenG1(),
		GenG1(),
		GenG2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestVerifyingKeySerialization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("VerifyingKey -> writer -> reader -> VerifyingKey should stay constant", prop.ForAll(
		func(p1 curve.G1Affine, p2 curve.G2Affine) bool {
			vk := sampleVerifyingKey(p1, p2, 4)

			var vkCompressed, vkRaw, vkSized VerifyingKey

			var bufCompressed bytes.Buffer
			written, err := vk.WriteTo(&bufCompressed)
			if err != nil {
				return false
			}
			read, err := vkCompressed.ReadFrom(&bufCompressed)
			if err != nil || read != written {
				return false
			}

			var bufRaw bytes.Buffer
			written, err = vk.WriteRawTo(&bufRaw)
			if err != nil {
				return false
			}
			read, err = vkRaw.UnsafeReadFrom(&bufRaw)
			if err != nil || read != written {
				return false
			}

			var bufSized bytes.Buffer
			written, err = vk.WriteSizedTo(&bufSized)
			if err != nil {
				return false
			}
			read, err = vkSized.ReadSizedFrom(&bufSized, len(vk.G1.GammaAbc))
			if err != nil || read != written {
				return false
			}

			return reflect.DeepEqual(vk, &vkCompressed) &&
				reflect.DeepEqual(vk, &vkRaw) &&
				reflect.DeepEqual(vk, &vkSized)
		},
		GenG1(),
		GenG2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProvingKeySerialization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)

	properties.Property("ProvingKey -> writer -> reader -> ProvingKey should stay constant", prop.ForAll(
		func(p1 curve.G1Affine, p2 curve.G2Affine) bool {
			pk := sampleProvingKey(p1, p2)

			var pkCompressed, pkRaw, pkSized ProvingKey

			var bufCompressed bytes.Buffer
			written, err := pk.WriteTo(&bufCompressed)
			if err != nil {
				return false
			}
			read, err := pkCompressed.ReadFrom(&bufCompressed)
			if err != nil || read != written {
				return false
			}

			var bufRaw bytes.Buffer
			written, err = pk.WriteRawTo(&bufRaw)
			if err != nil {
				return false
			}
			read, err = pkRaw.UnsafeReadFrom(&bufRaw)
			if err != nil || read != written {
				return false
			}

			var bufSized bytes.Buffer
			written, err = pk.WriteSizedTo(&bufSized)
			if err != nil {
				return false
			}
			read, err = pkSized.ReadSizedFrom(&bufSized, pk.Size())
			if err != nil || read != written {
				return false
			}

			return reflect.DeepEqual(pk, &pkCompressed) &&
				reflect.DeepEqual(pk, &pkRaw) &&
				reflect.DeepEqual(pk, &pkSized)
		},
		GenG1(),
		GenG2(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPreparedVerifyingKeySerialization(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := curve.Generators()
	vk := sampleVerifyingKey(g1, g2, 3)

	pvk, err := Prepare(vk)
	assert.NoError(err)

	var buf bytes.Buffer
	written, err := pvk.WriteTo(&buf)
	assert.NoError(err)

	var reloaded PreparedVerifyingKey
	read, err := reloaded.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, read)

	assert.True(reflect.DeepEqual(pvk, &reloaded))

	// the embedded verifying key must come back intact so the prepared form
	// can stand in for the plain key
	assert.True(reflect.DeepEqual(vk, &reloaded.VK))
	assert.Equal(2, reloaded.VK.NbPublicWitness())
}

// TestVerifyingKeySizedEncodingSize pins the size-guided encoding to its
// expected width: four fixed elements plus one compressed G1 point per
// GammaAbc entry, and exactly four bytes fewer than the self-describing
// form (the omitted uint32 length).
func TestVerifyingKeySizedEncodingSize(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := curve.Generators()
	vk := sampleVerifyingKey(g1, g2, 3)

	var bufSized, bufSelf bytes.Buffer
	nSized, err := vk.WriteSizedTo(&bufSized)
	assert.NoError(err)
	nSelf, err := vk.WriteTo(&bufSelf)
	assert.NoError(err)

	expected := int64(curve.SizeOfG1AffineCompressed + 3*curve.SizeOfG2AffineCompressed + 3*curve.SizeOfG1AffineCompressed)
	assert.Equal(expected, nSized)
	assert.Equal(nSized+4, nSelf)
}

func TestProvingKeySizedEncodingHasNoPrefixes(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := curve.Generators()
	pk := sampleProvingKey(g1, g2)
	size := pk.Size()

	var buf bytes.Buffer
	written, err := pk.WriteSizedTo(&buf)
	assert.NoError(err)

	// every byte accounted for by point data alone
	nbG1 := 3 + int64(size.VkLen+size.ALen+size.BG1Len+size.HLen+size.LLen) // α, [β]₁, [δ]₁ + vectors
	nbG2 := 3 + int64(size.BG2Len)
	expected := nbG1*int64(curve.SizeOfG1AffineCompressed) + nbG2*int64(curve.SizeOfG2AffineCompressed)
	assert.Equal(expected, written)
}

func TestProvingKeySizedReadWrongDescriptor(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := curve.Generators()
	pk := sampleProvingKey(g1, g2)

	var buf bytes.Buffer
	_, err := pk.WriteSizedTo(&buf)
	assert.NoError(err)
	stream := buf.Bytes()

	// overstated length: the reader runs off the end of the stream
	over := pk.Size()
	over.LLen += 2
	var pkOver ProvingKey
	_, err = pkOver.ReadSizedFrom(bytes.NewReader(stream), over)
	assert.Error(err)
	assert.True(errors.Is(err, gnarkio.ErrTruncatedStream) || errors.Is(err, gnarkio.ErrMalformedPoint))

	// understated length: misaligned fields surface as an error, never as a
	// silently wrong key
	under := pk.Size()
	under.ALen--
	var pkUnder ProvingKey
	_, err = pkUnder.ReadSizedFrom(bytes.NewReader(stream), under)
	assert.Error(err)
}

func TestProofReadCorrupted(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := curve.Generators()
	var proof Proof
	proof.Ar = g1
	proof.Krs = g1
	proof.Bs = g2

	var buf bytes.Buffer
	_, err := proof.WriteTo(&buf)
	assert.NoError(err)
	stream := buf.Bytes()

	// truncation
	var truncated Proof
	_, err = truncated.ReadFrom(bytes.NewReader(stream[:len(stream)-1]))
	assert.ErrorIs(err, gnarkio.ErrTruncatedStream)

	// flipping a random coordinate byte is not reliably detectable on a
	// cofactor-1 curve (about half of all x values decode to a curve
	// point), so corrupt π_A into a value no field element can take:
	// saturate the x coordinate above the modulus, keeping the
	// compression flag bits
	corrupted := make([]byte, len(stream))
	copy(corrupted, stream)
	corrupted[0] |= 0x3f
	for i := 1; i < curve.SizeOfG1AffineCompressed; i++ {
		corrupted[i] = 0xff
	}
	var bad Proof
	_, err = bad.ReadFrom(bytes.NewReader(corrupted))
	assert.ErrorIs(err, gnarkio.ErrMalformedPoint)
	assert.Contains(err.Error(), "proof.a")
}

func TestSizedReadNegativeLength(t *testing.T) {
	assert := require.New(t)

	var vk VerifyingKey
	_, err := vk.ReadSizedFrom(bytes.NewReader(nil), -1)
	assert.ErrorIs(err, gnarkio.ErrLengthMismatch)
}

// concurrent writers of a shared key must not observe each other; the key
// is read-only and each call owns its encoder state
func TestConcurrentKeyWrites(t *testing.T) {
	assert := require.New(t)

	_, _, g1, g2 := curve.Generators()
	pk := sampleProvingKey(g1, g2)

	var reference bytes.Buffer
	_, err := pk.WriteTo(&reference)
	assert.NoError(err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			var buf bytes.Buffer
			if _, err := pk.WriteTo(&buf); err != nil {
				return err
			}
			if !bytes.Equal(reference.Bytes(), buf.Bytes()) {
				return errors.New("concurrent write diverged")
			}
			return nil
		})
	}
	assert.NoError(g.Wait())
}

func sampleVerifyingKey(p1 curve.G1Affine, p2 curve.G2Affine, nbGammaAbc int) *VerifyingKey {
	var vk VerifyingKey
	vk.G1.Alpha = p1
	vk.G2.Beta = p2
	vk.G2.Gamma = p2
	vk.G2.Delta = p2
	vk.G1.GammaAbc = make([]curve.G1Affine, nbGammaAbc)
	for i := range vk.G1.GammaAbc {
		vk.G1.GammaAbc[i] = p1
	}
	return &vk
}

func sampleProvingKey(p1 curve.G1Affine, p2 curve.G2Affine) *ProvingKey {
	var pk ProvingKey
	pk.VK = *sampleVerifyingKey(p1, p2, 3)

	pk.G1.Beta = p1
	pk.G1.Delta = p1
	pk.G1.A = make([]curve.G1Affine, 6)
	pk.G1.B = make([]curve.G1Affine, 6)
	pk.G2.B = make([]curve.G2Affine, 6)
	pk.G1.H = make([]curve.G1Affine, 7)
	pk.G1.L = make([]curve.G1Affine, 4)

	pk.G1.A[2] = p1
	pk.G1.B[0] = p1
	pk.G2.B[0] = p2
	pk.G1.H[6] = p1
	pk.G1.L[1] = p1
	return &pk
}

func GenG1() gopter.Gen {
	_, _, g1GenAff, _ := curve.Generators()
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var scalar big.Int
		scalar.SetUint64(genParams.NextUint64())

		var g1 curve.G1Affine
		g1.ScalarMultiplication(&g1GenAff, &scalar)

		genResult := gopter.NewGenResult(g1, gopter.NoShrinker)
		return genResult
	}
}

func GenG2() gopter.Gen {
	_, _, _, g2GenAff := curve.Generators()
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var scalar big.Int
		scalar.SetUint64(genParams.NextUint64())

		var g2 curve.G2Affine
		g2.ScalarMultiplication(&g2GenAff, &scalar)

		genResult := gopter.NewGenResult(g2, gopter.NoShrinker)
		return genResult
	}
}
`
