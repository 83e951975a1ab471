// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !bignum32

package bignum

import "math/bits"

// Word is a single digit in base 2**_W. The build tag bignum32 selects a
// 32-bit Word instead; both widths share the same source files and pass the
// same tests.
type Word uint64

const (
	_W = 64 // bits per Word
	// hshift is the number of bits in half a Word; lmask extracts the low
	// half of a Word. Used by the portable mulWW_g fallback in arith.go.
	hshift  = _W / 2
	lmask   = 1<<hshift - 1
	wordMax = 1<<_W - 1
)

// mulWW returns the 2*_W-bit product of x and y as (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	return Word(h), Word(l)
}

// divWW returns the quotient and remainder of (hi<<_W + lo) / d. It panics
// if d == 0 or if the quotient overflows a Word (hi >= d).
func divWW(hi, lo, d Word) (q, r Word) {
	qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(d))
	return Word(qq), Word(rr)
}

func addWW(x, y, c Word) (sum, carry Word) {
	s, cc := bits.Add64(uint64(x), uint64(y), uint64(c))
	return Word(s), Word(cc)
}

func subWW(x, y, b Word) (diff, borrow Word) {
	d, bb := bits.Sub64(uint64(x), uint64(y), uint64(b))
	return Word(d), Word(bb)
}

func leadingZeros(x Word) uint {
	return uint(bits.LeadingZeros64(uint64(x)))
}

func trailingZeros(x Word) uint {
	return uint(bits.TrailingZeros64(uint64(x)))
}

func bitLen(x Word) uint {
	return uint(bits.Len64(uint64(x)))
}
