// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides functions operating on many bfloat.Floats at once.
package math

import (
	"math/bits"

	"github.com/db47h/bfloat"
)

// Sum sets z to the sum of xs rounded once to prec bits according to mode,
// and returns z and the Ordering of z relative to the exact sum. z may be one
// of the xs. The sum of no values is +0.
//
// The intermediate sum is exact: its precision spans the exponent range of
// the finite terms, so memory use grows with that range rather than with the
// number of terms.
//
// Special values follow the rules of bfloat.AddPrecRound: a NaN term or
// infinities of opposite signs yield NaN, and an exact zero sum is +0 (-0 in
// Floor mode) unless all terms are zeros of the same sign.
//
// Sum panics with bfloat.ErrInexact in Exact mode if the sum is not
// representable with prec bits, in which case z is left unchanged, and with
// bfloat.ErrPrecision if prec is invalid.
func Sum(z *bfloat.Float, prec uint, mode bfloat.RoundingMode, xs ...*bfloat.Float) (*bfloat.Float, bfloat.Ordering) {
	validPrec(prec)

	var (
		nan, posInf, negInf bool
		finite              int
		top, lsb            int64
		zneg                = true // all terms are -0
		zpos                = true // all terms are +0
	)
	for _, x := range xs {
		switch {
		case x.IsNaN():
			nan = true
		case x.IsInf():
			if x.Signbit() {
				negInf = true
			} else {
				posInf = true
			}
		case x.IsZero():
			if x.Signbit() {
				zpos = false
			} else {
				zneg = false
			}
		default:
			zneg, zpos = false, false
			e := int64(x.MantExp(nil))
			l := e - int64(x.MinPrec())
			if finite == 0 || e > top {
				top = e
			}
			if finite == 0 || l < lsb {
				lsb = l
			}
			finite++
		}
	}

	switch {
	case nan || posInf && negInf:
		return special(z, prec).SetNaN(), bfloat.Equal
	case posInf || negInf:
		return special(z, prec).SetInf(negInf), bfloat.Equal
	case finite == 0:
		return special(z, prec).SetZero(len(xs) > 0 && zneg || !zpos && mode == bfloat.Floor), bfloat.Equal
	}

	// room for the carries of all additions
	width := uint(top-lsb) + uint(bits.Len(uint(finite))) + 1
	validPrec(width)

	acc := new(bfloat.Float)
	for _, x := range xs {
		if x.IsFinite() && !x.IsZero() {
			acc.AddPrecRoundAssign(x, width, bfloat.Exact)
		}
	}
	if acc.IsZero() {
		// exact cancellation
		return special(z, prec).SetZero(mode == bfloat.Floor), bfloat.Equal
	}
	o := acc.SetPrecRound(prec, mode)
	return z.Set(acc), o
}

// special sets z to +0 with precision prec, ready to be set to a special
// value, and returns z.
func special(z *bfloat.Float, prec uint) *bfloat.Float {
	z.SetZero(false).SetPrecRound(prec, bfloat.Nearest)
	return z
}

// validPrec panics with bfloat.ErrPrecision if prec is out of range.
func validPrec(prec uint) {
	new(bfloat.Float).SetPrecRound(prec, bfloat.Nearest)
}
