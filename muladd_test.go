// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

type prodVWWArg struct {
	z, x nat
	y, r Word
	c    Word
}

var prodVWW = []prodVWWArg{
	{},
	{nat{0}, nat{0}, 0, 0, 0},
	{nat{991}, nat{0}, 0, 991, 0},
	{nat{0}, nat{wordMax}, 0, 0, 0},
	{nat{1}, nat{1}, 1, 0, 0},
	{nat{992}, nat{1}, 1, 991, 0},
	{nat{wordMax - 1}, nat{wordMax}, 2, 0, 1},
}

func TestMulAddVWW(t *testing.T) {
	for _, a := range prodVWW {
		z := make(nat, len(a.z))
		c := MulAddVWW(z, a.x, a.y, a.r)
		for i, zi := range z {
			if zi != a.z[i] {
				t.Errorf("MulAddVWW%+v:\n\tgot z[%d] = %#x; want %#x", a, i, zi, a.z[i])
			}
		}
		if c != a.c {
			t.Errorf("MulAddVWW%+v:\n\tgot c = %#x; want %#x", a, c, a.c)
		}
	}
}

func TestMulAddVWWFastPaths(t *testing.T) {
	x := rndVec(20)
	z := make(nat, 20)
	if c := MulAddVWW(z, x, 0, 7); c != 0 {
		t.Fatalf("MulAddVWW(x, 0, 7) carry = %#x; want 0", c)
	}
	if z[0] != 7 {
		t.Fatalf("MulAddVWW(x, 0, 7): z[0] = %#x; want 7", z[0])
	}
	for _, w := range z[1:] {
		if w != 0 {
			t.Fatalf("MulAddVWW(x, 0, r): expected z[1:] to be all zero, got %#x", w)
		}
	}

	want := make(nat, 20)
	AddVW(want, x, 3)
	got := make(nat, 20)
	MulAddVWW(got, x, 1, 3)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("MulAddVWW(x, 1, r) disagrees with AddVW(x, r) at word %d: %#x != %#x", i, got[i], want[i])
		}
	}
}

func TestAddMulVVW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := rnd.Intn(20)
		x := rndVec(n)
		y := rndWord()
		z := rndVec(n)

		want := make(nat, n+1)
		copy(want, z)
		prod := make(nat, n+1)
		prod[n] = MulAddVWW(prod[:n], x, y, 0)
		AddVV(want, want, prod)

		got := make(nat, n)
		copy(got, z)
		c := AddMulVVW(got, x, y)

		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("AddMulVVW mismatch at word %d: got %#x want %#x (n=%d)", j, got[j], want[j], n)
			}
		}
		if Word(c) != want[n] {
			t.Fatalf("AddMulVVW carry = %#x; want %#x (n=%d)", c, want[n], n)
		}
	}
}
