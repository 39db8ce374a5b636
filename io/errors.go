// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package io

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedPoint is returned when bytes do not decode to a valid
	// curve point or field element.
	ErrMalformedPoint = errors.New("malformed point")

	// ErrTruncatedStream is returned when fewer bytes are available than
	// the format requires.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrLengthMismatch is returned when a size-guided read's declared
	// vector length cannot be satisfied by the stream.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidChecksum is returned by ReadSummed when the trailing digest
	// does not match the bytes read.
	ErrInvalidChecksum = errors.New("invalid checksum")
)

// DecodeError classifies a decode failure and tags it with the field being
// read. Stream exhaustion maps to ErrTruncatedStream; everything else,
// including point-codec rejections, maps to ErrMalformedPoint. The original
// error stays in the chain, so underlying transport failures remain
// reachable with errors.Is / errors.As.
func DecodeError(field string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s: %w", ErrTruncatedStream, field, err)
	}
	return fmt.Errorf("%w: reading %s: %w", ErrMalformedPoint, field, err)
}

// DecodeVectorError tags a failure on element i of a vector whose expected
// length n was supplied out of band. A truncation here means the supplied
// length and the stream disagree, so the error also carries
// ErrLengthMismatch.
func DecodeVectorError(field string, i, n int, err error) error {
	err = DecodeError(fmt.Sprintf("%s[%d/%d]", field, i, n), err)
	if errors.Is(err, ErrTruncatedStream) {
		return fmt.Errorf("%w: %w", ErrLengthMismatch, err)
	}
	return err
}
