// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

// SubPrecRound sets z to the difference x-y rounded to prec bits according
// to mode, and returns z and the Ordering of z relative to the exact
// difference. z may be x or y. Special values, panics and the sign of an
// exact zero difference follow AddPrecRound, with x - y == x + (-y).
func (z *Float) SubPrecRound(x, y *Float, prec uint, mode RoundingMode) (*Float, Ordering) {
	p := validPrec(prec)
	return z, z.add(x, y, !y.neg, p, mode)
}

// SubPrec is like SubPrecRound with mode Nearest.
func (z *Float) SubPrec(x, y *Float, prec uint) (*Float, Ordering) {
	return z.SubPrecRound(x, y, prec, Nearest)
}

// SubRound is like SubPrecRound with a precision equal to the larger of x's
// and y's precisions.
func (z *Float) SubRound(x, y *Float, mode RoundingMode) (*Float, Ordering) {
	return z.SubPrecRound(x, y, uint(umax32(x.prec, y.prec)), mode)
}

// Sub sets z to the difference x-y rounded to nearest at the larger of x's
// and y's precisions, and returns z.
func (z *Float) Sub(x, y *Float) *Float {
	z, _ = z.SubRound(x, y, Nearest)
	return z
}

// SubPrecRoundAssign sets x to x-y as in x.SubPrecRound(x, y, prec, mode),
// and returns the Ordering of the result.
func (x *Float) SubPrecRoundAssign(y *Float, prec uint, mode RoundingMode) Ordering {
	_, o := x.SubPrecRound(x, y, prec, mode)
	return o
}

// SubPrecAssign sets x to x-y as in x.SubPrec(x, y, prec).
func (x *Float) SubPrecAssign(y *Float, prec uint) Ordering {
	_, o := x.SubPrec(x, y, prec)
	return o
}

// SubRoundAssign sets x to x-y as in x.SubRound(x, y, mode).
func (x *Float) SubRoundAssign(y *Float, mode RoundingMode) Ordering {
	_, o := x.SubRound(x, y, mode)
	return o
}

// SubAssign sets x to x-y as in x.Sub(x, y).
func (x *Float) SubAssign(y *Float) {
	x.Sub(x, y)
}

// SubPrecRound returns a new Float set to x-y as in z.SubPrecRound(x, y,
// prec, mode).
func SubPrecRound(x, y *Float, prec uint, mode RoundingMode) (*Float, Ordering) {
	return new(Float).SubPrecRound(x, y, prec, mode)
}

// SubPrec returns a new Float set to x-y as in z.SubPrec(x, y, prec).
func SubPrec(x, y *Float, prec uint) (*Float, Ordering) {
	return new(Float).SubPrec(x, y, prec)
}

// SubRound returns a new Float set to x-y as in z.SubRound(x, y, mode).
func SubRound(x, y *Float, mode RoundingMode) (*Float, Ordering) {
	return new(Float).SubRound(x, y, mode)
}

// Sub returns a new Float set to x-y as in z.Sub(x, y).
func Sub(x, y *Float) *Float {
	return new(Float).Sub(x, y)
}
