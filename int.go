// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "fmt"

// Int is a signed arbitrary-precision integer, built on top of the unsigned
// nat layer as a sign flag plus a magnitude. There is no exponent,
// precision, rounding mode, or Inf/NaN form; Int is a plain integer.
//
// The zero value of Int is the integer 0, ready to use.
type Int struct {
	neg bool
	abs nat
}

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = uint64(-x)
	}
	if _W == 32 && ux>>32 != 0 {
		z.abs = z.abs.make(2)
		z.abs[0], z.abs[1] = Word(ux), Word(ux>>32)
	} else {
		z.abs = z.abs.setWord(Word(ux))
	}
	z.neg = neg && len(z.abs) > 0
	return z
}

// SetUint32 sets z to x and returns z. It is the direct analogue of
// spec.md's set_u32 entry point.
func (z *Int) SetUint32(x uint32) *Int {
	z.abs = z.abs.setWord(Word(x))
	z.neg = false
	return z
}

// Zero sets z to 0 and returns z, reusing z's digit buffer. This is the
// "zero" operation from the bignum wrapper's API surface: like
// z.SetInt64(0), it never shrinks the underlying capacity, so a caller
// recycling a large Int for repeated small values doesn't pay for
// reallocation.
func (z *Int) Zero() *Int {
	z.abs = z.abs[:0]
	z.neg = false
	return z
}

// Swap exchanges the values of z and y.
func (z *Int) Swap(y *Int) {
	z.abs, y.abs = y.abs, z.abs
	z.neg, y.neg = y.neg, z.neg
}

// Sign returns -1, 0, or +1 depending on whether z is negative, zero, or
// positive.
func (z *Int) Sign() int {
	if len(z.abs) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// Cmp compares z and y and returns -1, 0, or +1, comparing signs first and
// only falling through to a magnitude comparison when both operands share a
// sign. Pulled in from original_source/bignum.c's bn_cmp: spec.md's API
// surface list omits an explicit comparator, but tests need a total order
// to check results, and a signed integer type without one is not usable.
func (z *Int) Cmp(y *Int) int {
	switch {
	case z.neg && !y.neg:
		return -1
	case !z.neg && y.neg:
		return 1
	}
	c := z.abs.cmp(y.abs)
	if z.neg {
		return -c
	}
	return c
}

// setNeg canonicalizes the sign of a zero magnitude to positive (there is
// only one representation of zero) and sets z.neg otherwise.
func (z *Int) setNeg(neg bool) *Int {
	z.neg = neg && len(z.abs) > 0
	return z
}

// Add sets z = x + y and returns z, dispatching on sign: same-sign operands
// add magnitudes; opposite signs subtract the smaller magnitude from the
// larger and take the sign of the larger.
func (z *Int) Add(x, y *Int) *Int {
	switch {
	case x.neg == y.neg:
		z.abs = z.abs.add(x.abs, y.abs)
		return z.setNeg(x.neg)
	case x.abs.cmp(y.abs) >= 0:
		z.abs = z.abs.sub(x.abs, y.abs)
		return z.setNeg(x.neg)
	default:
		z.abs = z.abs.sub(y.abs, x.abs)
		return z.setNeg(y.neg)
	}
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	switch {
	case x.neg != y.neg:
		z.abs = z.abs.add(x.abs, y.abs)
		return z.setNeg(x.neg)
	case x.abs.cmp(y.abs) >= 0:
		z.abs = z.abs.sub(x.abs, y.abs)
		return z.setNeg(x.neg)
	default:
		z.abs = z.abs.sub(y.abs, x.abs)
		return z.setNeg(!x.neg)
	}
}

// Mul sets z = x * y and returns z. x and y may alias z; mul routes through
// a temporary whenever z aliases either operand (nat.mul's own alias check
// handles that), so the squaring fast path below is only a throughput
// optimization, not a correctness requirement.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	if x.abs.isSame(y.abs) {
		z.abs = z.abs.sqr(x.abs)
	} else {
		z.abs = z.abs.mul(x.abs, y.abs)
	}
	return z.setNeg(neg)
}

// Sqr sets z = x * x and returns z. Squaring never changes sign: the result
// is always non-negative.
func (z *Int) Sqr(x *Int) *Int {
	z.abs = z.abs.sqr(x.abs)
	z.neg = false
	return z
}

// Lshift sets z = x << s and returns z. s may be arbitrary (not just < _W);
// nat.shl handles whole-word moves before shifting the remainder in-word,
// matching the "new high word appears only if the shifted-out bits are
// nonzero" rule from spec §4.9.
func (z *Int) Lshift(x *Int, s uint) *Int {
	z.abs = z.abs.shl(x.abs, s)
	return z.setNeg(x.neg)
}

// SetBytes interprets buf as the big-endian bytes of an unsigned magnitude,
// sets z to that value, and returns z. Pulled in from
// original_source/bignum.c's byte-buffer constructor: the distilled spec's
// SetUint32 alone can't build seed values past 32 bits, which tests need
// for cases like 2^127-1 and 2^1024.
func (z *Int) SetBytes(buf []byte) *Int {
	words := make(nat, (len(buf)+int(_W)/8-1)/(int(_W)/8))
	bytesPerWord := int(_W) / 8
	for i := range words {
		var w Word
		lo := len(buf) - (i+1)*bytesPerWord
		hi := len(buf) - i*bytesPerWord
		if lo < 0 {
			lo = 0
		}
		for _, b := range buf[lo:hi] {
			w = w<<8 | Word(b)
		}
		words[i] = w
	}
	z.abs = words.norm()
	z.neg = false
	return z
}

// Bytes returns the big-endian byte representation of z's magnitude (the
// sign is discarded), with no leading zero bytes. The zero value of Int
// returns an empty (not nil-distinguishing) slice.
func (z *Int) Bytes() []byte {
	if len(z.abs) == 0 {
		return []byte{}
	}
	bytesPerWord := int(_W) / 8
	buf := make([]byte, len(z.abs)*bytesPerWord)
	for i, w := range z.abs {
		off := len(buf) - (i+1)*bytesPerWord
		for j := bytesPerWord - 1; j >= 0; j-- {
			buf[off+j] = byte(w)
			w >>= 8
		}
	}
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// String returns the base-10 representation of z, with a leading '-' for
// negative values. It is the String entry of spec §6's "format-to-stream"
// API surface.
func (z *Int) String() string {
	return z.Format(10)
}

// Format returns the representation of z in base, base in [MinBase,
// MaxBase], with a leading '-' for negative values.
func (z *Int) Format(base int) string {
	s := format(z.abs, uint(base))
	if z.neg {
		return "-" + s
	}
	return s
}

// GoString implements fmt.GoStringer so that %#v on an *Int prints something
// legible instead of the raw struct fields.
func (z *Int) GoString() string {
	return fmt.Sprintf("bignum.NewInt(%s)", z.String())
}
