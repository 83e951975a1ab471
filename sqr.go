// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// basicSqr sets z = x*x using the "cross products, doubled, plus diagonal"
// identity: for x = Σ x[i]*β^i,
//
//	x^2 = Σ x[i]^2*β^(2i)  +  2 * Σ_{i<j} x[i]*x[j]*β^(i+j)
//
// The cross-product sum (without the doubling) is accumulated into a
// scratch vector t; doubling it is done with a single MulAddVWW pass
// (t*2 + 0) rather than a left shift, which folds the "double" and the
// final carry-out into one pass over t. The diagonal is computed directly
// into z via mulWW. Requires len(x) > 0 and len(z) == 2*len(x).
func basicSqr(z, x nat) {
	n := len(x)
	tp := getNat(2 * n)
	t := *tp
	t.clear()

	z[1], z[0] = mulWW(x[0], x[0])
	for i := 1; i < n; i++ {
		d := x[i]
		z[2*i+1], z[2*i] = mulWW(d, d)
		t[2*i] = AddMulVVW(t[i:2*i], x[0:i], d)
	}
	t[2*n-1] = MulAddVWW(t[1:2*n-1], t[1:2*n-1], 2, 0)
	AddVV(z, z, t)

	putNat(tp)
}

// sqrKaratsuba squares x and leaves the result in z[0 : 2*len(x)]. len(x)
// must be a power of two times something below karatsubaSqrThreshold and
// len(z) must be >= 6*len(x); the layout mirrors mulKaratsuba's.
//
// Derivation: x = x1*b + x0, so
//
//	x^2 = x1^2*b^2 + 2*x1*x0*b + x0^2
//	    = x1^2*b^2 - (x1-x0)^2*b + (x1^2 + x0^2)*b + x0^2
//
// which needs only three squarings (x0^2, x1^2, and (x1-x0)^2) instead of
// the two squarings plus one cross multiplication the naive expansion
// would require.
func sqrKaratsuba(z, x nat) {
	n := len(x)

	if n&1 != 0 || n < karatsubaSqrThreshold || n < 2 {
		basicSqr(z[:2*n], x)
		return
	}

	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]

	sqrKaratsuba(z, x0)
	sqrKaratsuba(z[n:], x1)

	xd := z[2*n : 2*n+n2]
	if SubVV(xd, x1, x0) != 0 {
		SubVV(xd, x0, x1)
	}

	p := z[n*3:]
	sqrKaratsuba(p, xd)

	r := z[n*4:]
	copy(r, z[:n*2])

	karatsubaAdd(z[n2:], r, n)
	karatsubaAdd(z[n2:], r[n:], n)
	karatsubaSub(z[n2:], p, n) // (x1-x0)^2 is always added with a minus sign
}

// sqr sets z = x*x and returns the normalized result.
func (z nat) sqr(x nat) nat {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		d := x[0]
		z = z.make(2)
		z[1], z[0] = mulWW(d, d)
		return z.norm()
	}

	if alias(z, x) {
		z = nil
	}

	if n <= basicSqrThreshold {
		z = z.make(2 * n)
		basicMul(z, x, x)
		return z.norm()
	}
	if n < karatsubaSqrThreshold {
		z = z.make(2 * n)
		basicSqr(z, x)
		return z.norm()
	}

	k := karatsubaLen(n, karatsubaSqrThreshold)
	x0 := x[0:k]
	z = z.make(max(6*k, 2*n))
	sqrKaratsuba(z, x0)
	z = z[0 : 2*n]
	z[2*k:].clear()

	if k < n {
		tp := getNat(2 * k)
		t := *tp
		x0n := x0.norm()
		x1 := x[k:]
		t = t.mul(x0n, x1)
		addAt(z, t, k)
		addAt(z, t, k) // 2*x1*x0*b
		t = t.sqr(x1)
		addAt(z, t, 2*k)
		putNat(tp)
	}

	return z.norm()
}

// Sqr allocates and returns a freshly normalized x*x.
func Sqr(x []Word) []Word {
	var z nat
	return []Word(z.sqr(nat(x).norm()))
}
