// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package backend holds types shared by the proof-system artifact packages
// and their curve-typed implementations.
package backend

// ID represent a unique ID for a proving scheme
type ID uint16

const (
	UNKNOWN ID = iota
	GROTH16
)

// Implemented return the list of proof systems implemented in gnark-keys
func Implemented() []ID {
	return []ID{GROTH16}
}

// String returns the string representation of a proof system
func (id ID) String() string {
	switch id {
	case GROTH16:
		return "groth16"
	default:
		return "unknown"
	}
}
