// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package io offers serialization interfaces and decode-error classification
// for gnark-keys objects.
package io

import (
	"io"
)

// WriterRawTo is the interface that wraps the WriteRawTo method.
//
// WriteRawTo writes data to w until there's no more data to write or
// when an error occurs. The return value n is the number of bytes
// written. Any error encountered during the write is also returned.
//
// WriteRawTo will not compress the data (as opposed to WriteTo)
type WriterRawTo interface {
	WriteRawTo(w io.Writer) (n int64, err error)
}

// UnsafeReaderFrom is the interface that wraps the UnsafeReadFrom method.
//
// UnsafeReadFrom reads data from reader but doesn't perform any checks, such as
// subgroup checks for elliptic curves points for example.
type UnsafeReaderFrom interface {
	UnsafeReadFrom(r io.Reader) (int64, error)
}

// SizedWriterTo is the interface that wraps the WriteSizedTo method.
//
// WriteSizedTo writes the compact, non-self-describing encoding of an
// object: variable-length vectors are written back to back with no length
// prefix. A stream produced this way can only be reconstructed by a reader
// that is given the vector lengths out of band.
type SizedWriterTo interface {
	WriteSizedTo(w io.Writer) (n int64, err error)
}
