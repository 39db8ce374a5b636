// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"os"

	"github.com/consensys/gnark-keys/internal/generator/backend/generator"
)

//go:generate go run main.go
func main() {

	bn254 := generator.GenerateData{
		RootPath:  "../../../backend/groth16/bn254/",
		Curve:     "BN254",
		CurveName: "bn254",
		EnumID:    "BN254",
	}
	bls377 := generator.GenerateData{
		RootPath:  "../../../backend/groth16/bls12-377/",
		Curve:     "BLS12-377",
		CurveName: "bls12_377",
		EnumID:    "BLS12_377",
	}
	bls381 := generator.GenerateData{
		RootPath:  "../../../backend/groth16/bls12-381/",
		Curve:     "BLS12-381",
		CurveName: "bls12_381",
		EnumID:    "BLS12_381",
	}
	datas := []generator.GenerateData{bn254, bls377, bls381}

	for _, d := range datas {
		if err := os.MkdirAll(d.RootPath, 0700); err != nil {
			panic(err)
		}
		if err := generator.GenerateGroth16(d); err != nil {
			panic(err)
		}
	}

}
