// Copyright 2020 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build debug

package debug

// Debug is true when the binary is built with the debug tag.
const Debug = true
