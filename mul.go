// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// Operands shorter than karatsubaThreshold digits are multiplied with
// "grade school" multiplication; longer ones use Karatsuba. These are
// vars, not consts — like math/big's "var karatsubaThreshold int = 40
// // computed by calibrate.go" — so a calibration tool (or a test) can
// retune them for a given Word width without editing source.
var (
	karatsubaThreshold = 32 // K_MUL
	karatsubaSqrThreshold = 64 // K_SQR
	basicSqrThreshold     = 10 // K_BASE_SQR
)

// basicMul multiplies x and y and leaves the (non-normalized) result in
// z[0 : len(x)+len(y)]. z must not alias x or y.
func basicMul(z, x, y nat) {
	z[0 : len(x)+len(y)].clear()
	for i, yi := range y {
		if yi != 0 {
			z[i+len(x)] = AddMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// addAt implements z += x<<(_W*i) in place, without normalizing afterwards
// (used to accumulate Karatsuba's missing cross terms into a z that must
// keep its current length across the whole accumulation).
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := AddVV(z[i:i+n], z[i:i+n], x); c != 0 {
			j := i + n
			if j < len(z) {
				AddVW(z[j:], z[j:], c)
			}
		}
	}
}

// karatsubaLen computes the largest k <= n such that k = p<<i for some
// p <= threshold and i >= 0: the largest value that can be halved
// repeatedly down to about threshold.
func karatsubaLen(n, threshold int) int {
	i := uint(0)
	for n > threshold {
		n >>= 1
		i++
	}
	return n << i
}

func karatsubaAdd(z, x nat, n int) {
	if c := AddVV(z[0:n], z[0:n], x[:n]); c != 0 {
		AddVW(z[n:n+n>>1], z[n:n+n>>1], c)
	}
}

func karatsubaSub(z, x nat, n int) {
	if c := SubVV(z[0:n], z[0:n], x[:n]); c != 0 {
		SubVW(z[n:n+n>>1], z[n:n+n>>1], c)
	}
}

// mulKaratsuba multiplies x and y and leaves the result in z. x and y must
// have the same length n; z must have len(z) >= 6*n. n need not be a power
// of two: odd lengths (and lengths below the threshold) fall back to
// basicMul directly for the whole operand instead of only ever halving to
// an even split, so the "trailing odd digit" case is just the n == 1 (or
// n < threshold) base case of the recursion rather than a special patch
// bolted onto the even path.
//
// The (non-normalized) result occupies z[0 : 2*n].
func mulKaratsuba(z, x, y nat) {
	n := len(x)

	if x.isSame(y) {
		sqrKaratsuba(z, x)
		return
	}

	if n&1 != 0 || n < karatsubaThreshold || n < 2 {
		basicMul(z[:2*n], x, y)
		return
	}

	n2 := n >> 1
	x1, x0 := x[n2:], x[0:n2]
	y1, y0 := y[n2:], y[0:n2]

	// z = [ r: copy of x1*y1, x0*y0 | p: xd*yd | yd | xd | x1*y1 | x0*y0 ]
	//      6n                       4n         3n  2n+n2 2n      n       0
	mulKaratsuba(z, x0, y0)     // z0 = x0*y0
	mulKaratsuba(z[n:], x1, y1) // z2 = x1*y1

	neg := Word(0)
	xd := z[2*n : 2*n+n2]
	c := SubVV(xd, x1, x0)
	if c != 0 {
		SubVV(xd, x0, x1)
	}
	neg ^= c

	yd := z[2*n+n2 : 3*n]
	c = SubVV(yd, y0, y1)
	if c != 0 {
		SubVV(yd, y1, y0)
	}
	neg ^= c

	p := z[3*n:]
	mulKaratsuba(p, xd, yd)

	r := z[4*n:]
	copy(r, z[:2*n])

	zn2 := z[n2 : 2*n]
	karatsubaAdd(zn2, r, n)
	karatsubaAdd(zn2, r[n:], n)
	if neg == 0 {
		karatsubaAdd(zn2, p, n)
	} else {
		karatsubaSub(zn2, p, n)
	}
}

func (x nat) isSame(y nat) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// mul sets z = x*y and returns the normalized result. z may alias x or y:
// for multi-digit y an aliasing z is dropped and the product is built in a
// freshly allocated buffer.
func (z nat) mul(x, y nat) nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	// m >= n > 1

	if alias(z, x) || alias(z, y) {
		z = nil
	}

	if n < karatsubaThreshold {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}

	k := karatsubaLen(n, karatsubaThreshold)
	x0 := x[0:k]
	y0 := y[0:k]
	z = z.make(max(6*k, m+n))
	mulKaratsuba(z, x0, y0)
	z = z[0 : m+n]
	z[2*k:].clear()

	if k < n || m != n {
		tp := getNat(3 * k)
		t := *tp

		x0n := x0.norm()
		y1 := y[k:]
		t = t.mul(x0n, y1)
		addAt(z, t, k)

		y0n := y0.norm()
		for i := k; i < len(x); i += k {
			xi := x[i:]
			if len(xi) > k {
				xi = xi[:k]
			}
			xi = xi.norm()
			t = t.mul(xi, y0n)
			addAt(z, t, i)
			t = t.mul(xi, y1)
			addAt(z, t, i+k)
		}

		putNat(tp)
	}

	return z.norm()
}

// Mul allocates and returns a freshly normalized x*y. The result never
// aliases x or y.
func Mul(x, y []Word) []Word {
	var z nat
	return []Word(z.mul(nat(x).norm(), nat(y).norm()))
}
