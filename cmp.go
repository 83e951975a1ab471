// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// CmpVV compares two equal-length digit vectors by scanning from the high
// word down and returns -1, 0, or +1.
func CmpVV(x, y []Word) (r int) {
	if debugVec && len(x) != len(y) {
		panic("bignum: CmpVV: length mismatch")
	}
	for i := len(x) - 1; i >= 0; i-- {
		if xi, yi := x[i], y[i]; xi != yi {
			if xi < yi {
				return -1
			}
			return 1
		}
	}
	return 0
}

// cmp normalizes x and y, compares their lengths first (normalized vectors
// of different lengths can't be equal) and then compares digits, returning
// -1, 0, or +1.
func (x nat) cmp(y nat) int {
	x, y = x.norm(), y.norm()
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	if m == 0 {
		return 0
	}
	return CmpVV(x, y)
}
