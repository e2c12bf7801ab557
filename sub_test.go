// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		xp := testPrecs[rng.Intn(len(testPrecs))]
		yp := xp
		if i%2 == 0 {
			yp = testPrecs[rng.Intn(len(testPrecs))]
		}
		prec := uint(testPrecs[rng.Intn(len(testPrecs))])
		mode := inexactModes[rng.Intn(len(inexactModes))]
		ex := int32(rng.Intn(21) - 10)
		d := int32(rng.Intn(int(xp+yp) + 2*_W + 3))
		if i%3 == 0 {
			// massive cancellation
			d = int32(rng.Intn(2))
		}
		x := randFloat(rng, xp, ex)
		y := randFloat(rng, yp, ex-d)
		if i%2 == 0 {
			x, y = y, x
		}
		checkAdd(t, x, y, prec, mode, true)
		// adding values of opposite signs goes through the same path
		y.neg = !x.neg
		checkAdd(t, x, y, prec, mode, false)
	}
}

// TestSubCancellation subtracts values that agree on all but their last few
// bits.
func TestSubCancellation(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, prec := range testPrecs {
		for _, mode := range inexactModes {
			x := randFloat(rng, prec, 0)
			x.neg = false
			y := new(Float).Set(x)
			// one ulp below x, unless x is a power of two
			n := uint(len(y.mant))*_W - uint(prec)
			subVW(y.mant, y.mant, 1<<n)
			if y.mant[len(y.mant)-1]&msb == 0 {
				continue
			}
			checkAdd(t, x, y, uint(prec), mode, true)
			checkAdd(t, y, x, uint(prec), mode, true)

			z, o := SubPrecRound(x, x, uint(prec), mode)
			require.True(t, z.IsZero(), "x - x = %s", z)
			require.Equal(t, mode == Floor, z.Signbit(), "sign of x - x in mode %v", mode)
			require.Equal(t, Equal, o)
		}
	}
}

func TestSubForms(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 500; i++ {
		xp := testPrecs[rng.Intn(len(testPrecs))]
		yp := testPrecs[rng.Intn(len(testPrecs))]
		prec := uint(testPrecs[rng.Intn(len(testPrecs))])
		mode := inexactModes[rng.Intn(len(inexactModes))]
		x := randFloat(rng, xp, int32(rng.Intn(41)-20))
		y := randFloat(rng, yp, int32(rng.Intn(41)-20))

		want, wantOrd := AddPrecRound(x, new(Float).Neg(y), prec, mode)

		z, o := new(Float).SubPrecRound(x, y, prec, mode)
		require.True(t, z.Identical(want) && o == wantOrd, "%s - %s: SubPrecRound = %s; want %s", x, y, z, want)

		z = new(Float).Set(x)
		o = z.SubPrecRoundAssign(y, prec, mode)
		require.True(t, z.Identical(want) && o == wantOrd, "SubPrecRoundAssign = %s; want %s", z, want)

		z = new(Float).Set(y)
		z.SubPrecRound(x, z, prec, mode)
		require.True(t, z.Identical(want), "SubPrecRound with z == y = %s; want %s", z, want)

		z, o = SubPrec(x, y, prec)
		w, wo := AddPrecRound(x, new(Float).Neg(y), prec, Nearest)
		require.True(t, z.Identical(w) && o == wo, "SubPrec = %s; want %s", z, w)

		z = new(Float).Set(x)
		o = z.SubPrecAssign(y, prec)
		require.True(t, z.Identical(w) && o == wo, "SubPrecAssign = %s; want %s", z, w)

		z, o = SubRound(x, y, mode)
		w, wo = AddRound(x, new(Float).Neg(y), mode)
		require.True(t, z.Identical(w) && o == wo, "SubRound = %s; want %s", z, w)

		z = new(Float).Set(x)
		o = z.SubRoundAssign(y, mode)
		require.True(t, z.Identical(w) && o == wo, "SubRoundAssign = %s; want %s", z, w)

		z = Sub(x, y)
		w = Add(x, new(Float).Neg(y))
		require.True(t, z.Identical(w), "Sub = %s; want %s", z, w)

		z = new(Float).Set(x)
		z.SubAssign(y)
		require.True(t, z.Identical(w), "SubAssign = %s; want %s", z, w)
	}
}

func TestSubUnderflow(t *testing.T) {
	// 0.11b × 2**MinExp - 0.1b × 2**MinExp == 2**(MinExp-2)
	x := &Float{mant: nat{3 << (_W - 2)}, exp: MinExp, prec: 2, form: finite}
	y := &Float{mant: nat{msb}, exp: MinExp, prec: 1, form: finite}

	for _, test := range []struct {
		mode RoundingMode
		neg  bool
		tiny bool
		ord  Ordering
	}{
		{Nearest, false, false, Less},
		{Down, false, false, Less},
		{Up, false, true, Greater},
		{Floor, false, false, Less},
		{Ceiling, false, true, Greater},
		{Nearest, true, false, Greater},
		{Up, true, true, Less},
		{Floor, true, true, Less},
		{Ceiling, true, false, Greater},
	} {
		a, b := x, y
		if test.neg {
			a, b = y, x
		}
		z, o := SubPrecRound(a, b, 5, test.mode)
		require.Equal(t, test.ord, o, "%v, neg=%v", test.mode, test.neg)
		require.Equal(t, test.neg, z.Signbit(), "%v, neg=%v", test.mode, test.neg)
		require.Equal(t, uint(5), z.Prec())
		if test.tiny {
			require.True(t, z.IsFinite() && !z.IsZero(), "%v: got %s", test.mode, z)
			require.Equal(t, int32(MinExp), z.exp)
			require.Equal(t, uint(1), z.MinPrec())
		} else {
			require.True(t, z.IsZero(), "%v: got %s", test.mode, z)
		}
	}

	z := NewFloat(1)
	require.PanicsWithError(t, "bfloat: exponent out of range in Exact rounding mode", func() { z.SubPrecRound(x, y, 5, Exact) })
	require.Equal(t, 1.0, func() float64 { f, _ := z.Float64(); return f }())
}
