// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"fmt"
)

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//	sign × mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. A Float may
// also be zero (+0, -0), infinite (+Inf, -Inf) or NaN.
//
// Each Float value has its own precision, the number of bits of its mantissa.
// Operations take the precision and the rounding mode of their result as
// explicit arguments and return an Ordering reporting how the returned value
// compares to the exact result.
//
// The zero value for a Float is +0 with precision 0, ready to use as an
// operand or result.
type Float struct {
	mant nat
	exp  int32
	prec uint32
	form form
	neg  bool
}

// NewFloat allocates and returns a new Float set to x, with precision 53.
// NewFloat panics with ErrNaN if x is a NaN.
func NewFloat(x float64) *Float {
	return new(Float).SetFloat64(x)
}

// NewNaN returns a new NaN with precision 1.
func NewNaN() *Float {
	return &Float{prec: 1, form: nan}
}

// Prec returns the mantissa precision of x in bits.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.SetPrec(prec) would start rounding x).
// The result is 0 for |x| == 0, |x| == Inf and NaN.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - x.mant.trailingZeroBits()
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	if x.form == zero || x.form == nan {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero. It is false for
// NaN.
func (x *Float) Signbit() bool {
	return x.neg && x.form != nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsNaN reports whether x is a NaN.
func (x *Float) IsNaN() bool {
	return x.form == nan
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	return x.form == zero
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x *Float) IsFinite() bool {
	return x.form == zero || x.form == finite
}

// MantExp breaks x into its mantissa and exponent components and returns the
// exponent. If a non-nil mant argument is provided its value is set to the
// mantissa of x, with the same precision as x. The components satisfy
// x == mant × 2**exp, with 0.5 <= |mant| < 1.0. Calling MantExp with a nil
// argument is an efficient way to get the exponent of the receiver.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//	( NaN).MantExp(mant) = 0, with mant set to  NaN
func (x *Float) MantExp(mant *Float) (exp int) {
	if x.form == finite {
		exp = int(x.exp)
	}
	if mant != nil {
		mant.Set(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// Set sets z to the exact value of x, with x's precision, and returns z.
func (z *Float) Set(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.form = x.form
		z.neg = x.neg
		z.prec = x.prec
		if x.form == finite {
			z.exp = x.exp
			z.mant = z.mant.set(x.mant)
		}
	}
	return z
}

// Copy is an alias for Set.
func (z *Float) Copy(x *Float) *Float {
	return z.Set(x)
}

// SetPrec sets z's precision to prec, rounding to nearest (ties to even) if
// necessary, and returns the Ordering of the result.
func (z *Float) SetPrec(prec uint) Ordering {
	return z.SetPrecRound(prec, Nearest)
}

// SetPrecRound sets z's precision to prec and returns the Ordering of the
// (possibly rounded) result. SetPrecRound panics with ErrPrecision if prec is
// 0 or larger than MaxPrec. In Exact mode, it panics with ErrInexact if z is
// not representable with prec bits, and z is left unchanged.
func (z *Float) SetPrecRound(prec uint, mode RoundingMode) Ordering {
	p := validPrec(prec)
	if z.form != finite {
		z.prec = p
		return Equal
	}
	old := z.prec
	if p >= old {
		// exact: extend the mantissa with zero words
		n := int((p + _W - 1) / _W)
		if m := len(z.mant); n > m {
			t := nat(nil).make(n)
			copy(t[n-m:], z.mant)
			t[:n-m].clear()
			z.mant = t
		}
		z.prec = p
		return Equal
	}
	m, e, ord := nat(nil).round(z.mant, false, p, mode, z.neg)
	exp := int64(z.exp) + e - int64(len(z.mant))*_W
	z.checkExp(exp, mode)
	z.mant = m
	z.prec = p
	return z.setExp(exp, mode, ord)
}

// SetInf sets z to the infinite Float -Inf if signbit is set, or +Inf if
// signbit is not set, and returns z. The precision of z is unchanged.
func (z *Float) SetInf(signbit bool) *Float {
	z.form = inf
	z.neg = signbit
	return z
}

// SetZero sets z to -0 if signbit is set, or +0 otherwise, and returns z.
// The precision of z is unchanged.
func (z *Float) SetZero(signbit bool) *Float {
	z.form = zero
	z.neg = signbit
	return z
}

// SetNaN sets z to NaN and returns z. The precision of z is unchanged.
func (z *Float) SetNaN() *Float {
	z.form = nan
	z.neg = false
	return z
}

// Neg sets z to the exact value of x with its sign negated, and returns z.
// The negation of NaN is NaN.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	if z.form != nan {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to the exact value |x| and returns z.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	z.neg = false
	return z
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// Cmp panics with ErrNaN if x or y is a NaN.
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == nan || y.form == nan {
		panic(ErrNaN{"bfloat: comparison with NaN"})
	}
	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1 as
// Cmp does. CmpAbs panics with ErrNaN if x or y is a NaN.
func (x *Float) CmpAbs(y *Float) int {
	var ax, ay Float
	ax.Abs(x)
	ay.Abs(y)
	return ax.Cmp(&ay)
}

// Identical reports whether x and y have the same value, sign, and
// precision. Unlike Cmp, Identical distinguishes -0 from +0 and reports NaNs
// as identical to each other.
func (x *Float) Identical(y *Float) bool {
	if x.form != y.form || x.prec != y.prec {
		return false
	}
	switch x.form {
	case nan:
		return true
	case zero, inf:
		return x.neg == y.neg
	}
	return x.neg == y.neg && x.exp == y.exp && x.mant.cmp(y.mant) == 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
func (x *Float) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// ucmp returns -1, 0, or +1, depending on whether
// |x| < |y|, |x| == |y|, or |x| > |y|.
// x and y must have a non-empty mantissa and valid exponent.
func (x *Float) ucmp(y *Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp

	// compare mantissas
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return +1
		}
	}

	return 0
}

// checkExp panics with ErrInexact if exp is out of range in Exact mode. It
// must be called before any result is written to z.
func (z *Float) checkExp(exp int64, mode RoundingMode) {
	if mode == Exact && (exp > MaxExp || exp < MinExp) {
		panic(ErrInexact{"bfloat: exponent out of range in Exact rounding mode"})
	}
}

// setExp sets the exponent of the finite Float z, whose mantissa and sign
// are already set, and returns ord adjusted for exponent overflow or
// underflow.
//
// On overflow, the result is ±Inf, or the largest finite value of z's
// precision when mode rounds toward zero for z's sign. On underflow, the
// result is ±0, or the smallest finite value when mode rounds away from zero
// for z's sign.
func (z *Float) setExp(exp int64, mode RoundingMode, ord Ordering) Ordering {
	z.form = finite
	switch {
	case exp > MaxExp:
		if mode == Down || mode == Floor && !z.neg || mode == Ceiling && z.neg {
			z.setMaxFinite()
			return makeOrd(z.neg)
		}
		z.form = inf
		return makeOrd(!z.neg)
	case exp < MinExp:
		if mode == Up || mode == Floor && z.neg || mode == Ceiling && !z.neg {
			z.mant.clear()
			z.mant[len(z.mant)-1] = msb
			z.exp = MinExp
			return makeOrd(!z.neg)
		}
		z.form = zero
		return makeOrd(z.neg)
	}
	z.exp = int32(exp)
	return ord
}

// setMaxFinite sets the mantissa and exponent of z to the largest finite
// magnitude of precision z.prec.
func (z *Float) setMaxFinite() {
	n := int((z.prec + _W - 1) / _W)
	z.mant = z.mant.make(n)
	for i := range z.mant {
		z.mant[i] = _M
	}
	z.mant[0] &^= lowMask(uint(n)*_W - uint(z.prec))
	z.exp = MaxExp
	z.form = finite
}

func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	if x.mant[m-1]&msb == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of %s", x.mant[m-1], x.Text('p', 0)))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
	if n := int((x.prec + _W - 1) / _W); m != n {
		panic(fmt.Sprintf("mantissa length %d != %d words for precision %d", m, n, x.prec))
	}
	if x.mant[0]&lowMask(uint(m)*_W-uint(x.prec)) != 0 {
		panic(fmt.Sprintf("bits below precision %d are not zero", x.prec))
	}
}
