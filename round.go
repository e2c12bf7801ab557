// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

var errInexact = ErrInexact{"bfloat: inexact result in Exact rounding mode"}

// roundUp decides whether a magnitude truncated to its retained bits must be
// incremented by one unit in the last place. lsb is the least significant
// retained bit, rbit the most significant discarded bit and sbit the logical
// or of all other discarded bits. The returned Ordering describes the rounded
// value relative to the exact one.
//
// In Exact mode, roundUp panics with ErrInexact if any discarded bit is set.
func roundUp(mode RoundingMode, neg bool, lsb, rbit, sbit uint) (inc bool, ord Ordering) {
	if rbit|sbit == 0 {
		return false, Equal
	}
	switch mode {
	case Nearest:
		inc = rbit != 0 && (sbit != 0 || lsb != 0)
	case Down:
		// truncate
	case Up:
		inc = true
	case Floor:
		inc = neg
	case Ceiling:
		inc = !neg
	case Exact:
		panic(errInexact)
	default:
		panic("unreachable")
	}
	return inc, makeOrd(inc != neg)
}

// zeroSign returns the sign of an exact zero sum of two operands of opposite
// signs: -0 when rounding toward -Inf, +0 otherwise.
func zeroSign(mode RoundingMode) bool {
	return mode == Floor
}

// round sets z to the non-zero magnitude x rounded to prec bits and returns
// z, the bit length of the rounded magnitude in units of x's least
// significant bit, and the Ordering of the result. If sticky is set, the
// exact magnitude is x plus some mass strictly between 0 and x's least
// significant bit; in that case x.bitLen() must exceed prec.
//
// The result is left-aligned in exactly ceil(prec/_W) words. z may alias x.
// If round panics (Exact mode), neither z nor x are modified.
func (z nat) round(x nat, sticky bool, prec uint32, mode RoundingMode, neg bool) (nat, int64, Ordering) {
	n := x.bitLen()
	if debugFloat && (n == 0 || sticky && n <= uint(prec)) {
		panic("round: not enough bits")
	}
	zl := (uint(prec) + _W - 1) / _W
	pad := zl*_W - uint(prec)

	var lsb, rbit, sbit uint
	if n > uint(prec) {
		t := n - uint(prec)
		lsb, rbit = x.bit(t), x.bit(t-1)
		if sticky || x.sticky(t-1) {
			sbit = 1
		}
	}
	inc, ord := roundUp(mode, neg, lsb, rbit, sbit)

	if w := zl * _W; n > w {
		z = z.shr(x, n-w)
	} else {
		z = z.shl(x, w-n)
	}
	z[0] &^= lowMask(pad)
	if inc && addVW(z, z, Word(1)<<pad) != 0 {
		// all ones rolled over to the next power of two
		z[zl-1] = msb
		n++
	}
	return z, int64(n), ord
}
