// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package template

const ImportCurve = `
{{ define "import_curve" }}
{{if eq .Curve "BLS12-377"}}
	curve "github.com/consensys/gnark-crypto/ecc/bls12-377"
{{else if eq .Curve "BLS12-381"}}
	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
{{else if eq .Curve "BN254"}}
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
{{end}}
{{end}}
`
