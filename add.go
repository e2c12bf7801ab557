// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

// AddPrecRound sets z to the sum x+y rounded to prec bits according to mode,
// and returns z and the Ordering of z relative to the exact sum. z may be x
// or y, in which case the operand's storage is reused for the result.
//
// Special cases:
//
//	NaN + y = x + NaN = NaN (Ordering Equal)
//	±Inf + ±Inf = ±Inf, ±Inf + ∓Inf = NaN
//	±Inf + finite = ±Inf
//	+0 + -0 = -0 in Floor mode, +0 otherwise
//
// AddPrecRound panics with ErrPrecision if prec is 0 or larger than MaxPrec,
// and with ErrInexact if mode is Exact and the sum is not representable with
// prec bits. In that case, z is left unchanged.
func (z *Float) AddPrecRound(x, y *Float, prec uint, mode RoundingMode) (*Float, Ordering) {
	p := validPrec(prec)
	return z, z.add(x, y, y.neg, p, mode)
}

// AddPrec is like AddPrecRound with mode Nearest.
func (z *Float) AddPrec(x, y *Float, prec uint) (*Float, Ordering) {
	return z.AddPrecRound(x, y, prec, Nearest)
}

// AddRound is like AddPrecRound with a precision equal to the larger of x's
// and y's precisions.
func (z *Float) AddRound(x, y *Float, mode RoundingMode) (*Float, Ordering) {
	return z.AddPrecRound(x, y, uint(umax32(x.prec, y.prec)), mode)
}

// Add sets z to the sum x+y rounded to nearest, with ties to even, at the
// larger of x's and y's precisions, and returns z.
func (z *Float) Add(x, y *Float) *Float {
	z, _ = z.AddRound(x, y, Nearest)
	return z
}

// AddPrecRoundAssign sets x to x+y as in x.AddPrecRound(x, y, prec, mode),
// and returns the Ordering of the result.
func (x *Float) AddPrecRoundAssign(y *Float, prec uint, mode RoundingMode) Ordering {
	_, o := x.AddPrecRound(x, y, prec, mode)
	return o
}

// AddPrecAssign sets x to x+y as in x.AddPrec(x, y, prec), and returns the
// Ordering of the result.
func (x *Float) AddPrecAssign(y *Float, prec uint) Ordering {
	_, o := x.AddPrec(x, y, prec)
	return o
}

// AddRoundAssign sets x to x+y as in x.AddRound(x, y, mode), and returns the
// Ordering of the result.
func (x *Float) AddRoundAssign(y *Float, mode RoundingMode) Ordering {
	_, o := x.AddRound(x, y, mode)
	return o
}

// AddAssign sets x to x+y as in x.Add(x, y).
func (x *Float) AddAssign(y *Float) {
	x.Add(x, y)
}

// AddPrecRound returns a new Float set to x+y as in z.AddPrecRound(x, y,
// prec, mode). Neither x nor y are modified.
func AddPrecRound(x, y *Float, prec uint, mode RoundingMode) (*Float, Ordering) {
	return new(Float).AddPrecRound(x, y, prec, mode)
}

// AddPrec returns a new Float set to x+y as in z.AddPrec(x, y, prec).
func AddPrec(x, y *Float, prec uint) (*Float, Ordering) {
	return new(Float).AddPrec(x, y, prec)
}

// AddRound returns a new Float set to x+y as in z.AddRound(x, y, mode).
func AddRound(x, y *Float, mode RoundingMode) (*Float, Ordering) {
	return new(Float).AddRound(x, y, mode)
}

// Add returns a new Float set to x+y as in z.Add(x, y).
func Add(x, y *Float) *Float {
	return new(Float).Add(x, y)
}

// add sets z to x + (±|y|), where the sign of the second operand is yneg,
// rounded to prec bits, and returns the Ordering of the result.
func (z *Float) add(x, y *Float, yneg bool, prec uint32, mode RoundingMode) Ordering {
	if debugFloat {
		x.validate()
		y.validate()
	}
	if x.form == finite && y.form == finite {
		if x.neg == yneg {
			// the kernels only read the sign of x
			return z.uadd(x, y, prec, mode)
		}
		return z.usub(x, y, x.neg, prec, mode)
	}
	return z.addSpecial(x, y, yneg, prec, mode)
}

// addSpecial handles x + (±|y|) when x or y is not a finite nonzero value.
func (z *Float) addSpecial(x, y *Float, yneg bool, prec uint32, mode RoundingMode) Ordering {
	if x.form == nan || y.form == nan {
		z.prec = prec
		z.SetNaN()
		return Equal
	}
	if x.form == inf || y.form == inf {
		if x.form == inf && y.form == inf && x.neg != yneg {
			// +Inf + -Inf
			z.prec = prec
			z.SetNaN()
			return Equal
		}
		neg := yneg
		if x.form == inf {
			neg = x.neg
		}
		z.prec = prec
		z.SetInf(neg)
		return Equal
	}
	if x.form == zero && y.form == zero {
		neg := x.neg
		if x.neg != yneg {
			neg = zeroSign(mode)
		}
		z.prec = prec
		z.SetZero(neg)
		return Equal
	}
	if x.form == zero {
		return z.setRounded(y, yneg, prec, mode)
	}
	return z.setRounded(x, x.neg, prec, mode)
}
