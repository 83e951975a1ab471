// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// MulAddVWW sets z = x*y + r (r is a carry-in word) for len(z) == len(x)
// and returns the outgoing carry. Fast paths: y == 0 sets z to r (z[0] = r,
// every higher digit 0) with carry 0, or returns r as the carry when z is
// empty, exactly as the loop would; y == 1 degenerates to a plain
// add-in-place.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	if debugVec && len(z) != len(x) {
		panic("bignum: MulAddVWW: length mismatch")
	}
	if y == 0 {
		for i := range z {
			z[i] = 0
		}
		if len(z) == 0 {
			return r
		}
		z[0] = r
		return 0
	}
	if y == 1 {
		return AddVW(z, x, r)
	}
	c = r
	for i, xi := range x {
		hi, lo := mulWW(xi, y)
		lo, cc := addWW(lo, c, 0)
		hi, _ = addWW(hi, 0, cc)
		z[i] = lo
		c = hi
	}
	return c
}

// AddMulVVW sets z += x*y for len(z) == len(x) and returns the outgoing
// carry. This is the multiply-accumulate primitive ("dmul_add"): y == 1
// degenerates to a plain vector add.
func AddMulVVW(z, x []Word, y Word) (c Word) {
	if debugVec && len(z) != len(x) {
		panic("bignum: AddMulVVW: length mismatch")
	}
	if y == 0 {
		return 0
	}
	if y == 1 {
		return AddVV(z, z, x)
	}
	for i, xi := range x {
		hi, lo := mulWW(xi, y)
		lo, cc := addWW(lo, z[i], 0)
		hi, _ = addWW(hi, 0, cc)
		lo, cc = addWW(lo, c, 0)
		hi, _ = addWW(hi, 0, cc)
		z[i] = lo
		c = hi
	}
	return c
}

// mulAddWW computes z = x*y + r as a freshly normalized nat, with x a
// vector and y, r single words.
func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = MulAddVWW(z[0:m], x, y, r)
	return z.norm()
}
