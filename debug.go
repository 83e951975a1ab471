// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// debugVec gates the contract checks on the digit-vector layer (matching
// operand lengths, nonzero divisor, divWW_g quotient overflow, radix range).
// Normalized inputs are not checked. There is no
// "release" build of this package distinct from a "debug" one: the core has
// no recoverable error path, so these checks are always on.
const debugVec = true

// allocFailed is the package's allocation-failure hook, a package variable
// so an embedder can replace it with its own diagnostic. No function in
// this package calls it: buffers are grown with the built-in make, and a
// failed allocation is reported by the Go runtime, not through this hook.
var allocFailed = func(n int) {
	panic("bignum: allocation failure")
}
