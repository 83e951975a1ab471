// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fib prints the n-th Fibonacci number, n read from argv[1], computed
// by matrix-doubling recurrence over the bignum package. It is a sample
// application exercising the library, not part of its core deliverable.
package main

import (
	"fmt"
	"math/bits"
	"os"
	"strconv"

	"github.com/db47h/bignum"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: fib N")
		os.Exit(1)
	}
	n, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil || n == 0 {
		fmt.Fprintf(os.Stderr, "fib: invalid argument %q\n", os.Args[1])
		os.Exit(1)
	}
	fmt.Printf("Fib(%d)=%s\n", n, fib(n).String())
}

// fib computes F_n by scanning the bits of n from the second-highest set bit
// downward, maintaining a0 = F_{k-1} and a1 = F_k and doubling k at every
// step:
//
//	a' = 2*a0 + a1
//	a0 <- a0^2 + a1^2
//	a1 <- a1 * a'
//	if the current bit of n is set: swap(a0, a1); a1 <- a1 + a0
//
// One multiply, two squares, two adds, and one shift per bit.
func fib(n uint64) *bignum.Int {
	a0 := bignum.NewInt(0)
	a1 := bignum.NewInt(1)

	for i := bits.Len64(n) - 2; i >= 0; i-- {
		aPrime := new(bignum.Int).Lshift(a0, 1)
		aPrime.Add(aPrime, a1)

		sq0 := new(bignum.Int).Sqr(a0)
		sq1 := new(bignum.Int).Sqr(a1)
		newA0 := new(bignum.Int).Add(sq0, sq1)
		newA1 := new(bignum.Int).Mul(a1, aPrime)
		a0, a1 = newA0, newA1

		if n&(1<<uint(i)) != 0 {
			a0, a1 = a1, a0
			a1 = new(bignum.Int).Add(a1, a0)
		}
	}
	return a1
}
