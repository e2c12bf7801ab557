// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import "github.com/db47h/bfloat"

// Add sets z to x + y, rounded to prec bits according to mode, and returns z
// and the Ordering of the result.
//
// This function is a proxy for z.AddPrecRound(x, y, prec, mode).
func Add(z, x, y *bfloat.Float, prec uint, mode bfloat.RoundingMode) (*bfloat.Float, bfloat.Ordering) {
	return z.AddPrecRound(x, y, prec, mode)
}

// Sub sets z to x - y, rounded to prec bits according to mode, and returns z
// and the Ordering of the result.
//
// This function is a proxy for z.SubPrecRound(x, y, prec, mode).
func Sub(z, x, y *bfloat.Float, prec uint, mode bfloat.RoundingMode) (*bfloat.Float, bfloat.Ordering) {
	return z.SubPrecRound(x, y, prec, mode)
}
