// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package backend

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeySizeRoundTrip(t *testing.T) {
	assert := require.New(t)

	size := KeySize{
		VkLen:  3,
		ALen:   1024,
		BG1Len: 1024,
		BG2Len: 1024,
		HLen:   2047,
		LLen:   512,
	}

	var buf bytes.Buffer
	written, err := size.WriteTo(&buf)
	assert.NoError(err)

	var reloaded KeySize
	read, err := reloaded.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, read)
	assert.Equal(size, reloaded)
}

// the encoding is deterministic; identical descriptors must produce
// identical bytes so cached descriptors can be compared without decoding
func TestKeySizeDeterministic(t *testing.T) {
	assert := require.New(t)

	size := KeySize{VkLen: 2, ALen: 7, BG1Len: 7, BG2Len: 7, HLen: 15, LLen: 4}

	var a, b bytes.Buffer
	_, err := size.WriteTo(&a)
	assert.NoError(err)
	_, err = size.WriteTo(&b)
	assert.NoError(err)
	assert.Equal(a.Bytes(), b.Bytes())
}

// ReadFrom consumes exactly one descriptor and leaves trailing bytes in
// place, so a descriptor can prefix the key stream it describes
func TestKeySizeConsumesExactly(t *testing.T) {
	assert := require.New(t)

	size := KeySize{VkLen: 1, ALen: 2, BG1Len: 3, BG2Len: 4, HLen: 5, LLen: 6}

	var buf bytes.Buffer
	written, err := size.WriteTo(&buf)
	assert.NoError(err)
	trailer := []byte{0xde, 0xad, 0xbe, 0xef}
	buf.Write(trailer)

	var reloaded KeySize
	read, err := reloaded.ReadFrom(&buf)
	assert.NoError(err)
	assert.Equal(written, read)
	assert.Equal(trailer, buf.Bytes())
}

func TestKeySizeTruncated(t *testing.T) {
	assert := require.New(t)

	size := KeySize{VkLen: 1, ALen: 2, BG1Len: 3, BG2Len: 4, HLen: 5, LLen: 6}
	var buf bytes.Buffer
	_, err := size.WriteTo(&buf)
	assert.NoError(err)

	stream := buf.Bytes()
	var reloaded KeySize
	_, err = reloaded.ReadFrom(bytes.NewReader(stream[:len(stream)-1]))
	assert.Error(err)
}
