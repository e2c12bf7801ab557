// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/bfloat"
)

var bigModes = [...]big.RoundingMode{
	bfloat.Nearest: big.ToNearestEven,
	bfloat.Down:    big.ToZero,
	bfloat.Up:      big.AwayFromZero,
	bfloat.Floor:   big.ToNegativeInf,
	bfloat.Ceiling: big.ToPositiveInf,
	bfloat.Exact:   big.ToNearestEven,
}

var modes = []bfloat.RoundingMode{bfloat.Nearest, bfloat.Down, bfloat.Up, bfloat.Floor, bfloat.Ceiling}

func mustParse(t *testing.T, s string) *bfloat.Float {
	t.Helper()
	x, err := bfloat.ParseFloat(s)
	require.NoError(t, err)
	return x
}

// randTerm returns a random finite Float with a random precision and an
// exponent in [-100, 100].
func randTerm(rng *rand.Rand) *bfloat.Float {
	var f big.Float
	f.SetPrec(53).SetFloat64(rng.NormFloat64())
	f.SetMantExp(&f, rng.Intn(201)-100)
	x := new(bfloat.Float).SetBigFloat(&f)
	x.SetPrecRound(uint(rng.Intn(130)+1), bfloat.Nearest)
	return x
}

// refSum computes the sum of xs with math/big.
func refSum(xs []*bfloat.Float, prec uint, mode bfloat.RoundingMode) (*bfloat.Float, bfloat.Ordering) {
	var sum big.Rat
	for _, x := range xs {
		sum.Add(&sum, x.Rat(nil))
	}
	r := new(big.Float).SetPrec(prec).SetMode(bigModes[mode]).SetRat(&sum)
	z := new(bfloat.Float).SetBigFloat(r)
	if z.IsZero() {
		z.SetZero(mode == bfloat.Floor)
	}
	return z, bfloat.Ordering(r.Acc())
}

func TestSum(t *testing.T) {
	rng := rand.New(rand.NewSource(61))
	for i := 0; i < 2000; i++ {
		xs := make([]*bfloat.Float, rng.Intn(10)+1)
		for j := range xs {
			if j > 0 && rng.Intn(4) == 0 {
				// cancel an earlier term
				xs[j] = new(bfloat.Float).Neg(xs[rng.Intn(j)])
				continue
			}
			xs[j] = randTerm(rng)
		}
		prec := uint(rng.Intn(200) + 1)
		mode := modes[rng.Intn(len(modes))]

		want, wantOrd := refSum(xs, prec, mode)
		z, o := Sum(new(bfloat.Float), prec, mode, xs...)
		if !z.Identical(want) || o != wantOrd {
			t.Fatalf("Sum(%v) (prec %d, %v) = %s, %v; want %s, %v", xs, prec, mode, z, o, want, wantOrd)
		}
	}
}

func TestSumSpecial(t *testing.T) {
	for _, test := range []struct {
		xs   []string
		mode bfloat.RoundingMode
		want string
	}{
		{nil, bfloat.Nearest, "0.0#10"},
		{nil, bfloat.Floor, "0.0#10"},
		{[]string{"-0.0#3"}, bfloat.Nearest, "-0.0#10"},
		{[]string{"-0.0#3", "-0.0#5"}, bfloat.Ceiling, "-0.0#10"},
		{[]string{"-0.0#3", "0.0#5"}, bfloat.Ceiling, "0.0#10"},
		{[]string{"-0.0#3", "0.0#5"}, bfloat.Floor, "-0.0#10"},
		{[]string{"0x1p+00#1", "-0x1p+00#1"}, bfloat.Nearest, "0.0#10"},
		{[]string{"0x1p+00#1", "-0x1p+00#1"}, bfloat.Floor, "-0.0#10"},
		{[]string{"0x1p+00#1", "-0.0#1", "-0x1p+00#1"}, bfloat.Up, "0.0#10"},
		{[]string{"0x1p+00#1", "NaN"}, bfloat.Nearest, "NaN#10"},
		{[]string{"Inf#1", "-Inf#1"}, bfloat.Nearest, "NaN#10"},
		{[]string{"Inf#1", "0x1p+00#1", "Inf#4"}, bfloat.Exact, "Inf#10"},
		{[]string{"0x1p+00#1", "-Inf#1"}, bfloat.Exact, "-Inf#10"},
		{[]string{"0x1p+00#1", "0x1p-01#1", "0x1p-02#1"}, bfloat.Exact, "0x1.cp+00#10"},
		{[]string{"0x1p+00#1", "0x1p-60#1", "0x1p-60#1"}, bfloat.Nearest, "0x1p+00#10"},
		{[]string{"0x1p+100#1", "0x1p-100#1", "-0x1p+100#1"}, bfloat.Nearest, "0x1p-100#10"},
	} {
		xs := make([]*bfloat.Float, len(test.xs))
		for i, s := range test.xs {
			xs[i] = mustParse(t, s)
		}
		z, o := Sum(new(bfloat.Float), 10, test.mode, xs...)
		require.Equal(t, test.want, z.String(), "Sum(%v, %v)", test.xs, test.mode)
		if test.want != "0x1p+00#10" {
			require.Equal(t, bfloat.Equal, o, "Sum(%v, %v)", test.xs, test.mode)
		} else {
			require.Equal(t, bfloat.Less, o, "Sum(%v, %v)", test.xs, test.mode)
		}
	}
}

func TestSumExact(t *testing.T) {
	z := mustParse(t, "0x1.8p+00#2")
	xs := []*bfloat.Float{mustParse(t, "0x1p+00#1"), mustParse(t, "0x1p-20#1")}
	require.PanicsWithError(t, "bfloat: inexact result in Exact rounding mode", func() { Sum(z, 20, bfloat.Exact, xs...) })
	require.Equal(t, "0x1.8p+00#2", z.String())

	_, o := Sum(z, 21, bfloat.Exact, xs...)
	require.Equal(t, "0x1.00001p+00#21", z.String())
	require.Equal(t, bfloat.Equal, o)

	require.Panics(t, func() { Sum(z, 0, bfloat.Nearest, xs...) })
}

func TestSumAlias(t *testing.T) {
	xs := []*bfloat.Float{mustParse(t, "0x1p+00#1"), mustParse(t, "0x1p+01#1"), mustParse(t, "0x1p+02#1")}
	z, o := Sum(xs[0], 3, bfloat.Nearest, xs...)
	require.Same(t, xs[0], z)
	require.Equal(t, "0x1.cp+02#3", z.String())
	require.Equal(t, bfloat.Equal, o)
	require.Equal(t, "0x1p+01#1", xs[1].String())
}

func TestProxies(t *testing.T) {
	x, y := mustParse(t, "0x1p+00#1"), mustParse(t, "0x1p-02#1")
	z, o := Add(new(bfloat.Float), x, y, 2, bfloat.Up)
	require.Equal(t, "0x1.8p+00#2", z.String())
	require.Equal(t, bfloat.Greater, o)

	z, o = Sub(new(bfloat.Float), x, y, 2, bfloat.Down)
	require.Equal(t, "0x1.8p-01#2", z.String())
	require.Equal(t, bfloat.Equal, o)
}
