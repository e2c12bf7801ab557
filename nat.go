// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

const debugFloat = false // enable for debugging

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// As a Float significand, a nat is left-aligned: its most significant bit is
// set and the unused low bits of x[0] are zero. During arithmetic operations,
// scratch nats may hold leading or trailing zero words.
type nat []Word

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most significands are a single word; don't over-allocate.
		return make(nat, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(nat, n, n+e)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// clear zeroes all words of z.
func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm removes leading zero words.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z nat) setUint64(x uint64) nat {
	if _W == 32 {
		hi, lo := Word(x>>32), Word(x)
		if hi == 0 {
			z = z.make(1)
			z[0] = lo
			return z.norm()
		}
		z = z.make(2)
		z[1], z[0] = hi, lo
		return z
	}
	z = z.make(1)
	z[0] = Word(x)
	return z.norm()
}

// bitLen returns the length of x in bits.
func (x nat) bitLen() uint {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(i)*_W + _W - nlz(x[i])
		}
	}
	return 0
}

// trailingZeroBits returns the number of consecutive least significant zero
// bits of x. x must not be zero.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_W + ntz(w)
		}
	}
	panic("trailingZeroBits of zero")
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

// sticky reports whether any of the i least significant bits of x is set.
func (x nat) sticky(i uint) bool {
	j := i / _W
	if j >= uint(len(x)) {
		return nonZero(x)
	}
	if nonZero(x[:j]) {
		return true
	}
	return x[j]&lowMask(i%_W) != 0
}

// shr sets z to x >> s and returns z. z may be x.
func (z nat) shr(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0
	z = z.make(n)
	shrVU(z, x[m-n:], s%_W)
	return z.norm()
}

// shl sets z to x << s and returns z. z may be x.
func (z nat) shl(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0
	n := m + int(s/_W)
	z = z.make(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	z[0 : n-m].clear()
	return z.norm()
}

// cmp compares x and y and returns -1, 0 or +1. x and y need not be
// normalized.
func (x nat) cmp(y nat) (r int) {
	x, y = x.norm(), y.norm()
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	return cmpVV(x, y)
}
