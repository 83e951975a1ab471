// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bignum implements arbitrary-precision unsigned magnitude
// arithmetic (the APM core), a signed Int wrapper built on top of it, and a
// base-2..36 radix formatter.
//
// The unsigned layer operates on caller-owned []Word slices with explicit
// aliasing rules documented on each function; the signed Int type owns its
// digit buffer and dispatches to the unsigned layer.
package bignum

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B (_B = 2**_W) and 0 <= i < n, stored as a slice of
// length n with the digits x[i] as the slice elements, least significant
// digit first.
//
// A nat is normalized if it has no leading (high-index) zero digit; the
// normalized representation of zero is the empty slice. Most functions in
// this package require normalized inputs and always return normalized
// results; the exceptions document it explicitly.
type nat []Word

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm returns z with any leading zero digits stripped.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (x nat) normalized() bool {
	i := len(x)
	return i == 0 || x[i-1] != 0
}

// make returns a nat of length n, reusing z's storage when it has enough
// capacity. A new buffer's capacity is rounded up to a multiple of 4 words
// so that a sequence of slowly growing values doesn't reallocate every time.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const e = 4 // capacity granularity, in words
	return make(nat, n, (n+e-1)/e*e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

// bitLen returns the length of x in bits. bitLen(0) == 0.
func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + int(bitLen(x[i]))
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least-significant zero
// bits of x. It is 0 for x == 0.
func (x nat) trailingZeroBits() uint {
	if len(x) == 0 {
		return 0
	}
	var i uint
	for x[i] == 0 {
		i++
	}
	return i*_W + trailingZeros(x[i])
}

// alias reports whether x and y share the same backing array, which is the
// condition the full multiplication and squaring kernels must reject for
// their destination.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func same(x, y nat) bool {
	return len(x) == len(y) && (len(x) == 0 || &x[0] == &y[0])
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
