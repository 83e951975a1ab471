// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "testing"

type sumVVArg struct {
	z, x, y nat
	c       Word
}

var sumVV = []sumVVArg{
	{},
	{nat{0}, nat{0}, nat{0}, 0},
	{nat{1}, nat{1}, nat{0}, 0},
	{nat{0}, nat{wordMax}, nat{1}, 1},
	{nat{wordMax - 1}, nat{wordMax}, nat{wordMax}, 1},
	{nat{0, 0, 0, 0}, nat{wordMax, wordMax, wordMax, wordMax}, nat{1, 0, 0, 0}, 1},
	{nat{0, 0, 0, wordMax}, nat{wordMax, wordMax, wordMax, wordMax - 1}, nat{1, 0, 0, 0}, 0},
}

func testAddVV(t *testing.T, a sumVVArg) {
	z := make(nat, len(a.z))
	c := AddVV(z, a.x, a.y)
	for i, zi := range z {
		if zi != a.z[i] {
			t.Errorf("AddVV%+v:\n\tgot z[%d] = %#x; want %#x", a, i, zi, a.z[i])
		}
	}
	if c != a.c {
		t.Errorf("AddVV%+v:\n\tgot c = %d; want %d", a, c, a.c)
	}
}

func testSubVV(t *testing.T, z, x, y nat, c Word) {
	got := make(nat, len(z))
	gc := SubVV(got, x, y)
	for i, zi := range got {
		if zi != z[i] {
			t.Errorf("SubVV(%v, %v):\n\tgot z[%d] = %#x; want %#x", x, y, i, zi, z[i])
		}
	}
	if gc != c {
		t.Errorf("SubVV(%v, %v):\n\tgot c = %d; want %d", x, y, gc, c)
	}
}

func TestAddVV(t *testing.T) {
	for _, a := range sumVV {
		testAddVV(t, a)
		// addition commutes
		testAddVV(t, sumVVArg{a.z, a.y, a.x, a.c})
	}
}

func TestSubVV(t *testing.T) {
	for _, a := range sumVV {
		// z = x + y  =>  x = z - y, y = z - x
		testSubVV(t, a.x, a.z, a.y, a.c)
		testSubVV(t, a.y, a.z, a.x, a.c)
	}
}

func TestAddVVAliasing(t *testing.T) {
	x := rndVec(20)
	y := rndVec(20)
	want := make(nat, 20)
	AddVV(want, x, y)
	AddVV(x, x, y) // z aliases x
	for i := range x {
		if x[i] != want[i] {
			t.Fatalf("AddVV with z aliasing x: word %d = %#x; want %#x", i, x[i], want[i])
		}
	}
}

func TestIncDecVVZeroLength(t *testing.T) {
	if c := IncVV(nil); c != 1 {
		t.Errorf("IncVV(nil) = %d; want 1", c)
	}
	if c := DecVV(nil); c != 1 {
		t.Errorf("DecVV(nil) = %d; want 1", c)
	}
}

func TestIncDecVVRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17} {
		x := rndVec1(n)
		orig := make(nat, n)
		copy(orig, x)
		IncVV(x)
		DecVV(x)
		for i := range x {
			if x[i] != orig[i] {
				t.Fatalf("n=%d: IncVV then DecVV did not round-trip at word %d: got %#x want %#x", n, i, x[i], orig[i])
			}
		}
	}
}

func TestIncVVOverflow(t *testing.T) {
	x := nat{wordMax, wordMax}
	if c := IncVV(x); c != 1 {
		t.Errorf("IncVV(all-ones) carry = %d; want 1", c)
	}
	for i, w := range x {
		if w != 0 {
			t.Errorf("IncVV(all-ones): word %d = %#x; want 0", i, w)
		}
	}
}

func TestAddVWFastExit(t *testing.T) {
	x := rndVec(100)
	z := make(nat, len(x))
	c := AddVW(z, x, 0)
	if c != 0 {
		t.Fatalf("AddVW(x, 0) carry = %d; want 0", c)
	}
	for i := range x {
		if z[i] != x[i] {
			t.Fatalf("AddVW(x, 0): word %d = %#x; want %#x", i, z[i], x[i])
		}
	}
}

func TestNatAddSubUnequalLength(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndVec1(rnd.Intn(30))
		y := rndVec1(rnd.Intn(30))
		var s nat
		s = s.add(x, y)
		var back nat
		back = back.sub(s, y)
		if back.cmp(x) != 0 {
			t.Fatalf("sub(add(x, y), y) != x\nx = %v\ny = %v\ns = %v\nback = %v", x, y, s, back)
		}
	}
}

func TestNatSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("sub(x, y) with x < y did not panic")
		}
	}()
	var z nat
	z.sub(nat{1}, nat{2})
}
