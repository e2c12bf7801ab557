// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import "sync"

// lsbExp returns the exponent of the least significant bit of x's mantissa
// words: x == mant × 2**lsbExp with mant read as an integer.
func (x *Float) lsbExp() int64 {
	return int64(x.exp) - int64(len(x.mant))*_W
}

// place writes x × 2**s into z, which must be zeroed and large enough to
// hold the result. Bits that fall below z's least significant bit are
// discarded; place reports whether any of them was set.
func (z nat) place(x nat, s int64) bool {
	if s >= 0 {
		q, r := int(s/_W), uint(s%_W)
		m := len(x)
		c := shlVU(z[q:q+m], x, r)
		if q+m < len(z) {
			z[q+m] = c
		} else if debugFloat && c != 0 {
			panic("place: overflow")
		}
		return false
	}
	t := uint(-s)
	st := x.sticky(t)
	if q := int(t / _W); q < len(x) {
		shrVU(z[:len(x)-q], x[q:], t%_W)
	}
	return st
}

// addGeneral sets z to the rounded value of |x| + |y| (or |x| - |y| if sub is
// set) with the sign neg applied to the magnitude, and returns the Ordering
// of the result. x and y must be finite and nonzero. For subtraction, neg
// must be the sign of the result, which must be nonzero: |x| != |y|.
//
// Both operands are aligned in a single buffer whose least significant bit
// lies at least one word below the result's rounding position, or at the
// least significant bit of the operands if that is higher. Bits of the
// smaller operand below the buffer are folded into a sticky flag. z may alias
// x or y.
func (z *Float) addGeneral(x, y *Float, neg, sub bool, prec uint32, mode RoundingMode) Ordering {
	if sub {
		if x.ucmp(y) < 0 {
			x, y = y, x
		}
	} else if x.exp < y.exp {
		x, y = y, x
	}
	// |x| >= |y| for subtraction, x.exp >= y.exp otherwise.
	ex := int64(x.exp)
	lx, ly := x.lsbExp(), y.lsbExp()

	lo := ly
	if !sub || ex-int64(y.exp) >= 2 {
		// The result's exponent is at least ex-1: bits of y below
		// cut only contribute to the sticky bit.
		if cut := ex - int64(prec) - _W; lo < cut {
			lo = cut
		}
	}
	if lx < lo {
		lo = lx
	}

	// one extra bit for the carry of an addition
	n := int((ex - lo + _W) / _W)
	bx, by := getNat(n), getNat(n)
	defer putNat(bx)
	defer putNat(by)
	b, c := *bx, *by
	b.clear()
	c.clear()
	b.place(x.mant, lx-lo)
	sticky := c.place(y.mant, ly-lo)

	if sub {
		subVV(b, b, c)
		if sticky {
			// x - (y' + ε) == (x - y' - 1) + (1 - ε), 0 < 1 - ε < 1
			subVW(b, b, 1)
		}
	} else {
		addVV(b, b, c)
	}
	b = b.norm()
	if len(b) == 0 {
		// exact cancellation is handled by callers
		panic("addGeneral: zero result")
	}

	m, e, ord := nat(nil).round(b, sticky, prec, mode, neg)
	return z.setResult(neg, m, lo+e, prec, mode, ord)
}

// usub sets z to the rounded value of |x| - |y|, with sign neg for |x| > |y|
// and !neg for |x| < |y|, and returns the Ordering of the result. x and y must
// be finite and nonzero.
func (z *Float) usub(x, y *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	switch x.ucmp(y) {
	case 0:
		z.prec = prec
		z.SetZero(zeroSign(mode))
		return Equal
	case -1:
		neg = !neg
	}
	return z.addGeneral(x, y, neg, true, prec, mode)
}

// setRounded sets z to the finite nonzero x rounded to prec bits, with sign
// neg, and returns the Ordering of the result. z may be x.
func (z *Float) setRounded(x *Float, neg bool, prec uint32, mode RoundingMode) Ordering {
	if x.prec == prec {
		if z != x {
			z.mant = z.mant.set(x.mant)
			z.exp = x.exp
			z.form = finite
		}
		z.neg, z.prec = neg, prec
		return Equal
	}
	m, e, ord := nat(nil).round(x.mant, false, prec, mode, neg)
	return z.setResult(neg, m, x.lsbExp()+e, prec, mode, ord)
}

// getNat returns a *nat of len n. The contents may not be zero.
// The pool holds *nat to avoid allocation when converting to interface{}.
func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
	}
	*z = z.make(n)
	return z
}

func putNat(x *nat) {
	natPool.Put(x)
}

var natPool sync.Pool
