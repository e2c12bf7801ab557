// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides Go implementations of elementary multi-precision
// arithmetic operations on word vectors. These have the suffix _g.

package bfloat

import (
	"math/big"
	"math/bits"
)

// A Word represents a single digit of a multi-precision unsigned integer.
// It is the same type as big.Word so that significands can be exchanged
// with big.Int without conversion.
type Word = big.Word

const (
	_S = _W / 8 // word size in bytes

	_W = bits.UintSize // word size in bits
	_B = 1 << _W       // digit base
	_M = _B - 1        // digit mask

	msb = Word(1) << (_W - 1) // most significant bit of a word
)

// Many of the loops in this file are of the form
//
//	for i := 0; i < len(z) && i < len(x) && i < len(y); i++
//
// i < len(z) is the real condition. Checking the other lengths as well
// lets the compiler drop the bounds checks in the loop body.

// nlz returns the number of leading zeros in x.
func nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// ntz returns the number of trailing zeros in x.
func ntz(x Word) uint {
	return uint(bits.TrailingZeros(uint(x)))
}

// lowMask returns a word with the n least significant bits set, n <= _W.
func lowMask(n uint) Word {
	if n >= _W {
		return _M
	}
	return Word(1)<<n - 1
}

// z1<<_W + z0 = x + y + c, with c == 0 or 1
func addWW_g(x, y, c Word) (z1, z0 Word) {
	s, cc := bits.Add(uint(x), uint(y), uint(c))
	return Word(cc), Word(s)
}

// The resulting carry c is either 0 or 1.
func addVV_g(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// The resulting borrow c is either 0 or 1.
func subVV_g(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// addVW adds y to x. The resulting carry c is either 0 or 1.
func addVW_g(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return
		}
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// subVW subtracts y from x. The resulting borrow c is either 0 or 1.
func subVW_g(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z[i:], x[i:]) {
				copy(z[i:], x[i:])
			}
			return
		}
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// shlVU sets z to x<<s, 0 <= s < _W, and returns the bits shifted out of
// the top word. z may be x.
func shlVU_g(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1 // hint to the compiler that shifts by s don't need guard code
	ŝ := _W - s
	ŝ &= _W - 1 // ditto
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// shrVU sets z to x>>s, 0 <= s < _W, and returns the bits shifted out of
// the bottom word, left aligned. z may be x.
func shrVU_g(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 {
		return
	}
	s &= _W - 1 // hint to the compiler that shifts by s don't need guard code
	ŝ := _W - s
	ŝ &= _W - 1 // ditto
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// cmpVV compares the equal length vectors x and y and returns -1, 0 or +1.
func cmpVV(x, y []Word) (r int) {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// nonZero reports whether any word of x is non-zero.
func nonZero(x []Word) bool {
	for _, w := range x {
		if w != 0 {
			return true
		}
	}
	return false
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
