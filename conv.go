// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Floats and other numeric types.

package bfloat

import (
	"math"
	"math/big"
)

// setBits sets z to ±(m × 2**lsb) rounded to prec bits, and returns the
// Ordering of the result. If sticky is set, the exact magnitude is slightly
// larger than m × 2**lsb (see nat.round). m may be modified.
func (z *Float) setBits(neg bool, m nat, lsb int64, sticky bool, prec uint32, mode RoundingMode) Ordering {
	m = m.norm()
	if len(m) == 0 {
		z.prec = prec
		z.SetZero(neg)
		return Equal
	}
	r, e, ord := nat(nil).round(m, sticky, prec, mode, neg)
	return z.setResult(neg, r, lsb+e, prec, mode, ord)
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to 64 (and rounding will have no effect).
// Otherwise the result is rounded to nearest at z's precision.
func (z *Float) SetUint64(x uint64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	z.setBits(false, nat(nil).setUint64(x), 0, false, z.prec, Nearest)
	return z
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to 64 (and rounding will have no effect).
func (z *Float) SetInt64(x int64) *Float {
	if z.prec == 0 {
		z.prec = 64
	}
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	z.setBits(x < 0, nat(nil).setUint64(u), 0, false, z.prec, Nearest)
	return z
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z. If
// z's precision is 0, it is changed to 53 (and rounding will have no effect).
// A NaN x yields a NaN.
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = 53
	}
	switch {
	case math.IsNaN(x):
		return z.SetNaN()
	case math.IsInf(x, 0):
		return z.SetInf(x < 0)
	case x == 0:
		return z.SetZero(math.Signbit(x))
	}
	neg := x < 0
	frac, exp := math.Frexp(math.Abs(x))
	// frac in [0.5, 1): 53 bits of integer mantissa
	m := uint64(math.Ldexp(frac, 53))
	z.setBits(neg, nat(nil).setUint64(m), int64(exp)-53, false, z.prec, Nearest)
	return z
}

// SetInt sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the larger of x.BitLen() or 64 (and
// rounding will have no effect).
func (z *Float) SetInt(x *big.Int) *Float {
	if z.prec == 0 {
		z.prec = umax32(uint32(x.BitLen()), 64)
	}
	z.SetIntPrecRound(x, uint(z.prec), Nearest)
	return z
}

// SetIntPrecRound sets z to the value of x rounded to prec bits according to
// mode, and returns the Ordering of the result.
func (z *Float) SetIntPrecRound(x *big.Int, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	m := nat(nil).set(x.Bits())
	return z.setBits(x.Sign() < 0, m, 0, false, p, mode)
}

// SetRat sets z to the (possibly rounded) value of x and returns z. If z's
// precision is 0, it is changed to the largest of a.BitLen(), b.BitLen(), or
// 64; with x = a/b.
func (z *Float) SetRat(x *big.Rat) *Float {
	if z.prec == 0 {
		a, b := x.Num().BitLen(), x.Denom().BitLen()
		z.prec = umax32(umax32(uint32(a), uint32(b)), 64)
	}
	z.SetRatPrecRound(x, uint(z.prec), Nearest)
	return z
}

// SetRatPrecRound sets z to the value of x rounded to prec bits according to
// mode, and returns the Ordering of the result. In Exact mode, it panics with
// ErrInexact unless x's denominator is a power of two and its numerator fits
// in prec bits.
func (z *Float) SetRatPrecRound(x *big.Rat, prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	if x.Sign() == 0 {
		z.prec = p
		z.SetZero(false)
		return Equal
	}
	r := newRatBits(x)
	m, lsb, exact := r.window(uint(p) + 2)
	return z.setBits(r.neg, m, lsb, !exact, p, mode)
}

// SetBigFloat sets z to the exact value of x, with x's precision, and
// returns z.
func (z *Float) SetBigFloat(x *big.Float) *Float {
	z.prec = uint32(x.Prec())
	if z.prec == 0 {
		// a zero big.Float may have precision 0
		z.prec = 1
	}
	switch {
	case x.IsInf():
		return z.SetInf(x.Signbit())
	case x.Sign() == 0:
		return z.SetZero(x.Signbit())
	}
	var mant big.Float
	exp := x.MantExp(&mant)
	// scale the mantissa to an integer
	mant.SetMantExp(&mant, int(z.prec))
	i, _ := mant.Int(nil)
	z.setBits(x.Signbit(), nat(nil).set(i.Bits()), int64(exp)-int64(z.prec), false, z.prec, Exact)
	return z
}

// BigFloat sets z to the exact value of x and returns z. If z is nil, a new
// big.Float is allocated. The precision of z is set to x's and its rounding
// mode to big.ToNearestEven. BigFloat panics with ErrNaN if x is a NaN.
func (x *Float) BigFloat(z *big.Float) *big.Float {
	if z == nil {
		z = new(big.Float)
	}
	if x.form == nan {
		panic(ErrNaN{"bfloat: NaN cannot be converted to a big.Float"})
	}
	prec := uint(x.prec)
	if prec == 0 {
		prec = 1
	}
	z.SetMode(big.ToNearestEven).SetPrec(prec)
	switch x.form {
	case zero:
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
		return z
	case inf:
		return z.SetInf(x.neg)
	}
	var i big.Int
	i.SetBits(nat(nil).set(x.mant))
	if x.neg {
		i.Neg(&i)
	}
	z.SetInt(&i)
	return z.SetMantExp(z, int(x.lsbExp()))
}

// Float64 returns the float64 value nearest to x, and the Ordering of the
// result. A NaN x yields a NaN and Equal.
func (x *Float) Float64() (float64, Ordering) {
	if x.form == nan {
		return math.NaN(), Equal
	}
	f, acc := x.BigFloat(nil).Float64()
	return f, Ordering(acc)
}

// Int returns the result of truncating x towards zero; or nil if x is an
// infinity or NaN. The result is Exact if x.IsInt(); otherwise it is Less
// for x > 0, and Greater for x < 0. If a non-nil *big.Int argument z is
// provided, Int stores the result in z instead of allocating a new big.Int.
func (x *Float) Int(z *big.Int) (*big.Int, Ordering) {
	if x.form == nan || x.form == inf {
		return nil, Equal
	}
	i, acc := x.BigFloat(nil).Int(z)
	return i, Ordering(acc)
}

// Rat returns the rational number corresponding to x; or nil if x is an
// infinity or NaN. If a non-nil *big.Rat argument z is provided, Rat stores
// the result in z instead of allocating a new big.Rat.
func (x *Float) Rat(z *big.Rat) *big.Rat {
	if x.form == nan || x.form == inf {
		return nil
	}
	if z == nil {
		z = new(big.Rat)
	}
	if x.form == zero {
		return z.SetInt64(0)
	}
	var num, den big.Int
	num.SetBits(nat(nil).set(x.mant))
	if e := x.lsbExp(); e >= 0 {
		num.Lsh(&num, uint(e))
		den.SetInt64(1)
	} else {
		den.Lsh(den.SetInt64(1), uint(-e))
	}
	if x.neg {
		num.Neg(&num)
	}
	return z.SetFrac(&num, &den)
}

// IsInt reports whether x is an integer. ±Inf and NaN are not integers.
func (x *Float) IsInt() bool {
	if x.form != finite {
		return x.form == zero
	}
	if x.exp <= 0 {
		return false
	}
	return uint(x.exp) >= x.MinPrec()
}
