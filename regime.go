// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

// A regime selects the addition kernel for a pair of same-sign finite
// operands.
type regime byte

const (
	regimeGeneral regime = iota // mixed precisions: variable-length kernel
	regimeLtW                   // prec < _W
	regimeW                     // prec == _W
	regimeLt2W                  // _W < prec < 2*_W
	regime2W                    // prec == 2*_W
	regimeLt3W                  // 2*_W < prec < 3*_W
	regimeGe3W                  // prec >= 3*_W
)

// fixedRegimes maps the word count of a precision, and whether the precision
// is a multiple of _W, to its fixed-width regime.
var fixedRegimes = [...][2]regime{
	1: {regimeLtW, regimeW},
	2: {regimeLt2W, regime2W},
	3: {regimeLt3W, regimeGe3W},
}

// classify returns the regime for adding operands of precision xprec and
// yprec into a result of precision prec. Fixed regimes require the three
// precisions to be equal.
func classify(xprec, yprec, prec uint32) regime {
	if xprec != prec || yprec != prec {
		return regimeGeneral
	}
	n := (prec + _W - 1) / _W
	if n >= uint32(len(fixedRegimes)) {
		return regimeGe3W
	}
	k := 0
	if prec%_W == 0 {
		k = 1
	}
	return fixedRegimes[n][k]
}

// uadd sets z to the rounded sum of the finite, nonzero, same-sign operands
// x and y and returns the Ordering of the result. The sign of z is x's.
func (z *Float) uadd(x, y *Float, prec uint32, mode RoundingMode) Ordering {
	switch classify(x.prec, y.prec, prec) {
	case regimeLtW:
		return z.addLtW(x, y, mode)
	case regimeW:
		return z.addW(x, y, mode)
	case regimeLt2W:
		return z.addLt2W(x, y, mode)
	case regime2W:
		return z.add2W(x, y, mode)
	case regimeLt3W:
		return z.addLt3W(x, y, mode)
	case regimeGe3W:
		return z.addGe3W(x, y, mode)
	}
	return z.addGeneral(x, y, x.neg, false, prec, mode)
}
