// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package generator

import (
	"fmt"
	"strings"

	"github.com/consensys/bavard"

	templates "github.com/consensys/gnark-keys/internal/generator/backend/template"
	"github.com/consensys/gnark-keys/internal/generator/backend/template/zkpschemes"
)

type GenerateData struct {
	RootPath  string
	Curve     string // BN254, BLS12-377, BLS12-381
	CurveName string // lowercase identifier used in log fields
	EnumID    string // matching ecc.ID constant name
}

// GenerateGroth16 writes the curve-typed groth16 package (types, marshal,
// marshal test) for d.Curve under d.RootPath.
func GenerateGroth16(d GenerateData) error {
	if !strings.HasSuffix(d.RootPath, "/") {
		d.RootPath += "/"
	}
	fmt.Println()
	fmt.Println("generating groth16 artifacts for ", d.Curve)
	fmt.Println()

	// generate groth16.go
	src := []string{
		templates.ImportCurve,
		zkpschemes.Groth16Keys,
	}
	if err := bavard.GenerateFromString(d.RootPath+"groth16.go", src, d,
		bavard.Package("groth16"),
		bavard.Apache2("Consensys Software Inc.", 2020),
		bavard.GeneratedBy("gnark-keys/internal/generator"),
	); err != nil {
		return err
	}

	// generate marshal.go
	src = []string{
		templates.ImportCurve,
		zkpschemes.Groth16Marshal,
	}
	if err := bavard.GenerateFromString(d.RootPath+"marshal.go", src, d,
		bavard.Package("groth16"),
		bavard.Apache2("Consensys Software Inc.", 2020),
		bavard.GeneratedBy("gnark-keys/internal/generator"),
	); err != nil {
		return err
	}

	// generate marshal_test.go
	src = []string{
		templates.ImportCurve,
		zkpschemes.Groth16MarshalTest,
	}
	return bavard.GenerateFromString(d.RootPath+"marshal_test.go", src, d,
		bavard.Package("groth16"),
		bavard.Apache2("Consensys Software Inc.", 2020),
		bavard.GeneratedBy("gnark-keys/internal/generator"),
	)
}
