// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package backend

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// KeySize describes the shape of a Groth16 proving key's variable-length
// vectors. A proving key written in its size-guided (length-prefix-free)
// form can only be reconstructed with the exact KeySize captured at write
// time; the stream itself carries no way to detect a wrong descriptor.
//
// KeySize has no identity of its own: it is either computed from an
// existing key (ProvingKey.Size) or persisted / negotiated alongside a raw
// key stream.
type KeySize struct {
	_ struct{} `cbor:",toarray"`

	VkLen  uint64 // len(vk.gamma_abc_g1)
	ALen   uint64 // len(a_query)
	BG1Len uint64 // len(b_g1_query)
	BG2Len uint64 // len(b_g2_query)
	HLen   uint64 // len(h_query)
	LLen   uint64 // len(l_query)
}

// cborEnc is the deterministic encoding mode shared by all KeySize writes;
// core deterministic options keep the integer encodings canonical.
var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// WriteTo writes the six lengths as a fixed-order CBOR array
// (vk, a, b_g1, b_g2, h, l), each integer in its canonical encoding.
func (ks *KeySize) WriteTo(w io.Writer) (int64, error) {
	data, err := cborEnc.Marshal(ks)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// byteReader hands the cbor decoder one byte per Read call. The decoder
// buffers ahead from its underlying reader, which would swallow bytes past
// the descriptor; capped at one byte, it stops exactly at the end of the
// CBOR item.
type byteReader struct {
	r io.Reader
}

func (b byteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.r.Read(p[:1])
}

// ReadFrom decodes a KeySize written with WriteTo. It consumes exactly one
// CBOR array from the stream, leaving any trailing bytes in place, so a
// descriptor can prefix the key stream it describes.
func (ks *KeySize) ReadFrom(r io.Reader) (int64, error) {
	dec := cbor.NewDecoder(byteReader{r})
	if err := dec.Decode(ks); err != nil {
		return int64(dec.NumBytesRead()), err
	}
	return int64(dec.NumBytesRead()), nil
}
