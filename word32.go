// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build bignum32

package bignum

import "math/bits"

// Word is a single digit in base 2**_W. Built with -tags bignum32 to force
// the 32-bit digit width independently of the host's native int size.
type Word uint32

const (
	_W      = 32
	hshift  = _W / 2
	lmask   = 1<<hshift - 1
	wordMax = 1<<_W - 1
)

func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul32(uint32(x), uint32(y))
	return Word(h), Word(l)
}

func divWW(hi, lo, d Word) (q, r Word) {
	qq, rr := bits.Div32(uint32(hi), uint32(lo), uint32(d))
	return Word(qq), Word(rr)
}

func addWW(x, y, c Word) (sum, carry Word) {
	s, cc := bits.Add32(uint32(x), uint32(y), uint32(c))
	return Word(s), Word(cc)
}

func subWW(x, y, b Word) (diff, borrow Word) {
	d, bb := bits.Sub32(uint32(x), uint32(y), uint32(b))
	return Word(d), Word(bb)
}

func leadingZeros(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

func trailingZeros(x Word) uint {
	return uint(bits.TrailingZeros32(uint32(x)))
}

func bitLen(x Word) uint {
	return uint(bits.Len32(uint32(x)))
}
