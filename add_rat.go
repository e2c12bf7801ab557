// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math/big"
)

// ratBits yields the binary expansion of a non-zero rational number, a
// window of bits at a time.
type ratBits struct {
	num, den big.Int // |x| == num/den
	neg      bool
	lg       int64 // 2**(lg-1) <= |x| < 2**lg
}

func newRatBits(x *big.Rat) *ratBits {
	r := new(ratBits)
	r.num.Abs(x.Num())
	r.den.Set(x.Denom())
	r.neg = x.Sign() < 0
	a, b := int64(r.num.BitLen()), int64(r.den.BitLen())
	// 2**(a-b-1) < |x| < 2**(a-b+1)
	var t big.Int
	r.lg = a - b
	if a >= b {
		t.Lsh(&r.den, uint(a-b))
		if r.num.Cmp(&t) >= 0 {
			r.lg++
		}
	} else {
		t.Lsh(&r.num, uint(b-a))
		if t.Cmp(&r.den) >= 0 {
			r.lg++
		}
	}
	return r
}

// window returns the n most significant bits of |x| as an integer m, and the
// exponent lsb of its least significant bit, such that
//
//	m × 2**lsb <= |x| < (m+1) × 2**lsb
//
// It also reports whether |x| == m × 2**lsb.
func (r *ratBits) window(n uint) (m nat, lsb int64, exact bool) {
	lsb = r.lg - int64(n)
	var q, rem, t big.Int
	if lsb <= 0 {
		t.Lsh(&r.num, uint(-lsb))
		q.QuoRem(&t, &r.den, &rem)
	} else {
		t.Lsh(&r.den, uint(lsb))
		q.QuoRem(&r.num, &t, &rem)
	}
	return nat(q.Bits()), lsb, rem.Sign() == 0
}

// dyadic reports whether the denominator of x is a power of two, that is
// whether x has a finite binary expansion.
func (r *ratBits) dyadic() bool {
	return r.den.TrailingZeroBits()+1 == uint(r.den.BitLen())
}

// AddRationalPrecRound sets z to the sum x+y rounded to prec bits according
// to mode, and returns z and the Ordering of z relative to the exact sum. z
// may be x. The value of y is expanded in binary only as far as needed to
// determine the correctly rounded result.
//
// If x is NaN or ±Inf, the result is x. If y is 0 the result is x rounded,
// including the sign of a zero x.
//
// AddRationalPrecRound panics with ErrInexact in Exact mode if the sum is not
// representable with prec bits, which is always the case when y's denominator
// is not a power of two.
func (z *Float) AddRationalPrecRound(x *Float, y *big.Rat, prec uint, mode RoundingMode) (*Float, Ordering) {
	p := validPrec(prec)
	return z, z.addRat(x, y, false, p, mode)
}

// AddRationalPrec is like AddRationalPrecRound with mode Nearest.
func (z *Float) AddRationalPrec(x *Float, y *big.Rat, prec uint) (*Float, Ordering) {
	return z.AddRationalPrecRound(x, y, prec, Nearest)
}

// AddRationalRound is like AddRationalPrecRound with x's precision.
func (z *Float) AddRationalRound(x *Float, y *big.Rat, mode RoundingMode) (*Float, Ordering) {
	return z.AddRationalPrecRound(x, y, uint(x.prec), mode)
}

// AddRational sets z to x+y rounded to nearest at x's precision and returns
// z.
func (z *Float) AddRational(x *Float, y *big.Rat) *Float {
	z, _ = z.AddRationalRound(x, y, Nearest)
	return z
}

// AddRationalPrecRoundAssign sets x to x+y as in x.AddRationalPrecRound(x, y,
// prec, mode), and returns the Ordering of the result.
func (x *Float) AddRationalPrecRoundAssign(y *big.Rat, prec uint, mode RoundingMode) Ordering {
	_, o := x.AddRationalPrecRound(x, y, prec, mode)
	return o
}

// AddRationalAssign sets x to x+y as in x.AddRational(x, y).
func (x *Float) AddRationalAssign(y *big.Rat) {
	x.AddRational(x, y)
}

// AddRationalPrecRound returns a new Float set to x+y as in
// z.AddRationalPrecRound(x, y, prec, mode).
func AddRationalPrecRound(x *Float, y *big.Rat, prec uint, mode RoundingMode) (*Float, Ordering) {
	return new(Float).AddRationalPrecRound(x, y, prec, mode)
}

// SubRationalPrecRound sets z to the difference x-y rounded to prec bits
// according to mode, and returns z and the Ordering of the result, as
// AddRationalPrecRound does for x+(-y).
func (z *Float) SubRationalPrecRound(x *Float, y *big.Rat, prec uint, mode RoundingMode) (*Float, Ordering) {
	p := validPrec(prec)
	return z, z.addRat(x, y, true, p, mode)
}

// SubRationalRound is like SubRationalPrecRound with x's precision.
func (z *Float) SubRationalRound(x *Float, y *big.Rat, mode RoundingMode) (*Float, Ordering) {
	return z.SubRationalPrecRound(x, y, uint(x.prec), mode)
}

// SubRational sets z to x-y rounded to nearest at x's precision and returns
// z.
func (z *Float) SubRational(x *Float, y *big.Rat) *Float {
	z, _ = z.SubRationalRound(x, y, Nearest)
	return z
}

// SubRationalPrecRoundAssign sets x to x-y as in x.SubRationalPrecRound(x, y,
// prec, mode), and returns the Ordering of the result.
func (x *Float) SubRationalPrecRoundAssign(y *big.Rat, prec uint, mode RoundingMode) Ordering {
	_, o := x.SubRationalPrecRound(x, y, prec, mode)
	return o
}

func (z *Float) addRat(x *Float, y *big.Rat, sub bool, prec uint32, mode RoundingMode) Ordering {
	switch {
	case x.form == nan || x.form == inf:
		z.Set(x)
		z.prec = prec
		return Equal
	case y.Sign() == 0:
		if x.form == zero {
			z.prec = prec
			z.SetZero(x.neg)
			return Equal
		}
		return z.setRounded(x, x.neg, prec, mode)
	}

	r := newRatBits(y)
	if sub {
		r.neg = !r.neg
	}
	if r.dyadic() {
		// the expansion is finite: its bits are those of the numerator
		m, lsb, _ := r.window(uint(r.num.BitLen()))
		var t Float
		t.setBits(r.neg, m, lsb, false, uint32(r.num.BitLen()), Exact)
		return z.add(x, &t, t.neg, prec, mode)
	}
	if mode == Exact {
		// a finite binary value plus a rational with an infinite binary
		// expansion cannot be exact
		panic(errInexact)
	}
	// start with a word of guard bits
	return z.addRatProbe(x, r, uint(prec)+_W, prec, mode)
}

// addRatProbe adds the w most significant bits of r's binary expansion to x.
// r must not be dyadic, so the window is never exact: the exact sum lies
// strictly between the sums of x with the two window bounds. If both round to
// the same value, and that value lies on the same side of both bounds, it is
// the correctly rounded result.
// Otherwise addRatProbe recurses with twice as many bits.
func (z *Float) addRatProbe(x *Float, r *ratBits, w uint, prec uint32, mode RoundingMode) Ordering {
	m, lsb, _ := r.window(w)

	var lo Float
	lo.setBits(r.neg, m, lsb, false, uint32(w), Exact)

	// hi = lo + 1ulp, in magnitude
	var hi Float
	hm := nat(nil).make(len(m) + 1)
	hm[len(m)] = addVW(hm[:len(m)], m, 1)
	hi.setBits(r.neg, hm, lsb, false, uint32(w)+1, Exact)

	var a, b Float
	oa := a.add(x, &lo, lo.neg, prec, mode)
	ob := b.add(x, &hi, hi.neg, prec, mode)
	if a.Identical(&b) {
		// the exact sum is strictly between x+lo and x+hi
		lower, upper := oa, ob
		if r.neg {
			lower, upper = ob, oa
		}
		switch {
		case upper >= Equal:
			z.Set(&a)
			return Greater
		case lower <= Equal:
			z.Set(&a)
			return Less
		}
	}
	return z.addRatProbe(x, r, 2*w, prec, mode)
}
