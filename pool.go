// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "sync"

// natPool recycles the scratch buffers Karatsuba multiplication and
// squaring allocate at every recursion level. A quality implementation
// could go further and pre-size a single arena for an entire recursion, but
// pooling individual scratch buffers already removes most of the allocator
// churn the straightforward recursive implementation would otherwise incur.
var natPool sync.Pool

func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	} else {
		z = new(nat)
	}
	if cap(*z) < n {
		*z = make(nat, n)
	} else {
		*z = (*z)[:n]
	}
	return z
}

func putNat(z *nat) {
	natPool.Put(z)
}
