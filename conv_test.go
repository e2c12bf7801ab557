// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatSetFloat64(t *testing.T) {
	for _, x := range []float64{
		0, 1, -1, 0.5, 1.5, 3.0 / 7, math.Pi, -math.E, 1e300, -1e-300,
		math.MaxFloat64, math.SmallestNonzeroFloat64, 0x1p-1030,
		math.Inf(1), math.Inf(-1),
	} {
		z := new(Float).SetFloat64(x)
		require.Equal(t, uint(53), z.Prec())
		got, o := z.Float64()
		require.Equal(t, x, got, "SetFloat64(%g)", x)
		require.Equal(t, Equal, o)
	}

	z := new(Float).SetFloat64(math.Copysign(0, -1))
	require.True(t, z.IsZero() && z.Signbit())

	z = new(Float).SetFloat64(math.NaN())
	require.True(t, z.IsNaN())
	f, o := z.Float64()
	require.True(t, math.IsNaN(f))
	require.Equal(t, Equal, o)

	// rounding to z's precision
	z = &Float{prec: 2}
	z.SetFloat64(1.75)
	require.Equal(t, "0x1p+01#2", z.String())
}

func TestFloatSetInt(t *testing.T) {
	for _, test := range []struct {
		x    int64
		want string
	}{
		{0, "0.0#64"},
		{1, "0x1p+00#64"},
		{-3, "-0x1.8p+01#64"},
		{math.MinInt64, "-0x1p+63#64"},
		{math.MaxInt64, "0x1.fffffffffffffffcp+62#64"},
	} {
		if got := new(Float).SetInt64(test.x).String(); got != test.want {
			t.Errorf("SetInt64(%d) = %s; want %s", test.x, got, test.want)
		}
		if got := new(Float).SetInt(big.NewInt(test.x)).String(); got != test.want {
			t.Errorf("SetInt(%d) = %s; want %s", test.x, got, test.want)
		}
	}
	if got := new(Float).SetUint64(math.MaxUint64).String(); got != "0x1.fffffffffffffffep+63#64" {
		t.Errorf("SetUint64(MaxUint64) = %s", got)
	}

	// large integers keep all their bits
	i := new(big.Int).Lsh(big.NewInt(1), 200)
	i.Sub(i, big.NewInt(1))
	z := new(Float).SetInt(i)
	require.Equal(t, uint(200), z.Prec())
	back, o := z.Int(nil)
	require.Equal(t, 0, back.Cmp(i))
	require.Equal(t, Equal, o)

	// ... unless asked not to
	o = z.SetIntPrecRound(i, 10, Down)
	require.Equal(t, Less, o)
	require.Equal(t, uint(10), z.MinPrec())
	o = z.SetIntPrecRound(i, 10, Up)
	require.Equal(t, Greater, o)
	require.Equal(t, "0x1p+200#10", z.String())
}

func TestFloatInt(t *testing.T) {
	for _, test := range []struct {
		x    string
		want string
		ord  Ordering
	}{
		{"0.0#1", "0", Equal},
		{"0x1.8p+00#2", "1", Less},
		{"-0x1.8p+00#2", "-1", Greater},
		{"0x1p-10#1", "0", Less},
		{"0x1.8p+100#2", "1901475900342344102245054808064", Equal},
	} {
		x := mustParse(t, test.x)
		got, o := x.Int(nil)
		if got.String() != test.want || o != test.ord {
			t.Errorf("%s.Int() = %s, %v; want %s, %v", test.x, got, o, test.want, test.ord)
		}
	}
	for _, s := range []string{"NaN", "Inf#1", "-Inf#1"} {
		got, _ := mustParse(t, s).Int(nil)
		require.Nil(t, got, s)
		require.Nil(t, mustParse(t, s).Rat(nil), s)
	}
}

func TestFloatRat(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, prec := range testPrecs {
		x := randFloat(rng, prec, int32(rng.Intn(401)-200))
		r := x.Rat(nil)
		z := new(Float)
		o := z.SetRatPrecRound(r, uint(prec), Exact)
		require.True(t, z.Identical(x) && o == Equal, "SetRatPrecRound(%s.Rat()) = %s", x, z)
	}
	require.Equal(t, "0/1", mustParse(t, "-0.0#3").Rat(nil).String())
	require.Equal(t, "-3/4", mustParse(t, "-0x1.8p-01#3").Rat(nil).String())
	require.Equal(t, "6/1", mustParse(t, "0x1.8p+02#3").Rat(nil).String())
}

func TestFloatSetRat(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	for i := 0; i < 2000; i++ {
		r := randRat(rng)
		prec := uint(testPrecs[rng.Intn(len(testPrecs))])
		mode := inexactModes[rng.Intn(len(inexactModes))]

		want := new(big.Float).SetPrec(prec).SetMode(bigModes[mode]).SetRat(r)
		z := new(Float)
		o := z.SetRatPrecRound(r, prec, mode)
		if !z.Identical(new(Float).SetBigFloat(want)) || o != Ordering(want.Acc()) {
			t.Fatalf("SetRatPrecRound(%s, %d, %v) = %s, %v; want %s, %v", r, prec, mode, z, o, want.Text('p', 0), Ordering(want.Acc()))
		}
	}

	z := new(Float)
	require.PanicsWithError(t, errInexact.Error(), func() { z.SetRatPrecRound(big.NewRat(1, 3), 100, Exact) })
	o := z.SetRatPrecRound(big.NewRat(-5, 8), 3, Exact)
	require.Equal(t, "-0x1.4p-01#3", z.String())
	require.Equal(t, Equal, o)

	z = new(Float).SetRat(big.NewRat(1, 3))
	require.Equal(t, uint(64), z.Prec())
	require.Equal(t, "0/1", new(Float).SetRat(new(big.Rat)).Rat(nil).String())
}

func TestFloatBigFloat(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	for _, prec := range testPrecs {
		x := randFloat(rng, prec, int32(rng.Intn(401)-200))
		b := x.BigFloat(nil)
		require.Equal(t, uint(prec), b.Prec())
		require.True(t, new(Float).SetBigFloat(b).Identical(x))

		// a supplied big.Float is reused
		var c big.Float
		require.Same(t, &c, x.BigFloat(&c))
	}
	for _, s := range []string{"-0.0#5", "Inf#5", "-Inf#5"} {
		x := mustParse(t, s)
		require.True(t, new(Float).SetBigFloat(x.BigFloat(nil)).Identical(x), s)
	}
	require.PanicsWithError(t, "bfloat: NaN cannot be converted to a big.Float", func() { NewNaN().BigFloat(nil) })
}

func TestFloatIsInt(t *testing.T) {
	for _, test := range []struct {
		x    string
		want bool
	}{
		{"0.0#1", true},
		{"-0.0#1", true},
		{"Inf#1", false},
		{"NaN", false},
		{"0x1p-01#1", false},
		{"0x1p+00#1", true},
		{"0x1.8p+00#2", false},
		{"0x1.8p+01#2", true},
		{"0x1.fffffffffffffffep+63#64", true},
		{"0x1.fffffffffffffffep+62#64", false},
	} {
		if got := mustParse(t, test.x).IsInt(); got != test.want {
			t.Errorf("%s.IsInt() = %v; want %v", test.x, got, test.want)
		}
	}
}
