// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package io

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeErrorClassification(t *testing.T) {
	assert := require.New(t)

	assert.NoError(DecodeError("vk.alpha_g1", nil))

	err := DecodeError("vk.alpha_g1", io.EOF)
	assert.ErrorIs(err, ErrTruncatedStream)
	assert.ErrorIs(err, io.EOF)
	assert.Contains(err.Error(), "vk.alpha_g1")

	err = DecodeError("proof.b", io.ErrUnexpectedEOF)
	assert.ErrorIs(err, ErrTruncatedStream)

	cause := errors.New("invalid point: subgroup check failed")
	err = DecodeError("proof.a", cause)
	assert.ErrorIs(err, ErrMalformedPoint)
	assert.ErrorIs(err, cause)
	assert.NotErrorIs(err, ErrTruncatedStream)
}

func TestDecodeVectorError(t *testing.T) {
	assert := require.New(t)

	// truncation mid-vector means the declared length and the stream
	// disagree
	err := DecodeVectorError("pk.h_query", 41, 100, io.ErrUnexpectedEOF)
	assert.ErrorIs(err, ErrLengthMismatch)
	assert.ErrorIs(err, ErrTruncatedStream)
	assert.Contains(err.Error(), "pk.h_query[41/100]")

	// a parse failure is not a length problem
	err = DecodeVectorError("pk.a_query", 0, 3, errors.New("invalid compression flag"))
	assert.ErrorIs(err, ErrMalformedPoint)
	assert.NotErrorIs(err, ErrLengthMismatch)
}
