// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package io

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

// blob is a minimal WriterTo/ReaderFrom pair over a fixed-size payload
type blob struct {
	data [64]byte
}

func (b *blob) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[:])
	return int64(n), err
}

func (b *blob) ReadFrom(r io.Reader) (int64, error) {
	n, err := io.ReadFull(r, b.data[:])
	return int64(n), err
}

func TestSummedRoundTrip(t *testing.T) {
	assert := require.New(t)

	var original blob
	for i := range original.data {
		original.data[i] = byte(i * 7)
	}

	var buf bytes.Buffer
	written, err := WriteSummed(&buf, &original)
	assert.NoError(err)
	assert.Equal(int64(len(original.data)+blake2b.Size256), written)

	var reloaded blob
	read, err := ReadSummed(&buf, &reloaded)
	assert.NoError(err)
	assert.Equal(written, read)
	assert.Equal(original.data, reloaded.data)
}

func TestSummedDetectsCorruption(t *testing.T) {
	assert := require.New(t)

	var original blob
	var buf bytes.Buffer
	_, err := WriteSummed(&buf, &original)
	assert.NoError(err)

	for _, offset := range []int{0, 17, len(original.data) + 3} {
		stream := make([]byte, buf.Len())
		copy(stream, buf.Bytes())
		stream[offset] ^= 0x01

		var reloaded blob
		_, err := ReadSummed(bytes.NewReader(stream), &reloaded)
		assert.ErrorIs(err, ErrInvalidChecksum)
	}
}

func TestSummedTruncatedDigest(t *testing.T) {
	assert := require.New(t)

	var original blob
	var buf bytes.Buffer
	_, err := WriteSummed(&buf, &original)
	assert.NoError(err)

	stream := buf.Bytes()[:buf.Len()-5]
	var reloaded blob
	_, err = ReadSummed(bytes.NewReader(stream), &reloaded)
	assert.ErrorIs(err, ErrTruncatedStream)
}
