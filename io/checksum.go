// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package io

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// The key formats themselves carry no integrity guard; WriteSummed and
// ReadSummed offer one as an opt-in frame for callers caching artifacts on
// storage they do not fully trust. The frame is the object's own encoding
// followed by a blake2b-256 digest of it; the inner encoding is unchanged.

// WriteSummed writes v to w followed by a blake2b-256 digest of v's encoding.
func WriteSummed(w io.Writer, v io.WriterTo) (int64, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return 0, err
	}
	n, err := v.WriteTo(io.MultiWriter(w, h))
	if err != nil {
		return n, err
	}
	written, err := w.Write(h.Sum(nil))
	return n + int64(written), err
}

// ReadSummed decodes v from r and verifies the trailing blake2b-256 digest.
// Returns ErrInvalidChecksum if the digest does not match the bytes read.
func ReadSummed(r io.Reader, v io.ReaderFrom) (int64, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return 0, err
	}
	n, err := v.ReadFrom(io.TeeReader(r, h))
	if err != nil {
		return n, err
	}
	var expected [blake2b.Size256]byte
	read, err := io.ReadFull(r, expected[:])
	n += int64(read)
	if err != nil {
		return n, DecodeError("checksum", err)
	}
	if !bytes.Equal(h.Sum(nil), expected[:]) {
		return n, fmt.Errorf("%w: digest does not match stream content", ErrInvalidChecksum)
	}
	return n, nil
}
