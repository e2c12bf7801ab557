// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for bfloat.Floats.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *bfloat.Float
//
// create a new bfloat.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to a function of other arguments like:
//
//	func (c *Context) UnaryOp(z, x *bfloat.Float) *bfloat.Float
//	func (c *Context) BinaryOp(z, x, y *bfloat.Float) *bfloat.Float
//
// set z to the result of the operation, rounded using c's precision and
// rounding mode, and return z.
//
// A Context catches the errors raised by bfloat as panics: an inexact result
// in Exact mode (bfloat.ErrInexact), an invalid precision
// (bfloat.ErrPrecision) or a NaN conversion (bfloat.ErrNaN). The failing
// operation silently succeeds with an undefined result. Further operations
// with the context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
//
// A Context also records whether any operation since the last call to
// (*Context).Inexact had to round its result, like the IEEE-754 inexact flag.
package context

import (
	"math/big"

	"github.com/db47h/bfloat"
	"github.com/db47h/bfloat/math"
	"golang.org/x/xerrors"
)

// DefaultPrec is the precision of a Context created with a precision of 0.
const DefaultPrec = 64

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec    uint32
	mode    bfloat.RoundingMode
	err     error
	inexact bool
}

// New creates a new context with the given precision and rounding mode. If
// prec is 0, it will be set to DefaultPrec.
func New(prec uint, mode bfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() bfloat.RoundingMode {
	return c.mode
}

// Prec returns the precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode bfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > bfloat.MaxPrec {
		prec = bfloat.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// New returns a new bfloat.Float with value +0 and precision set to c's
// precision.
func (c *Context) New() *bfloat.Float {
	z := new(bfloat.Float)
	z.SetPrecRound(uint(c.prec), bfloat.Nearest)
	return z
}

// NewInt returns a new *bfloat.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewInt(x *big.Int) (z *bfloat.Float) {
	z = c.New()
	if c.err != nil {
		return z
	}
	defer c.catch(&z, z)
	c.flag(z.SetIntPrecRound(x, uint(c.prec), c.mode))
	return z
}

// NewInt64 returns a new *bfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *bfloat.Float {
	return c.NewInt(big.NewInt(x))
}

// NewUint64 returns a new *bfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *bfloat.Float {
	return c.NewInt(new(big.Int).SetUint64(x))
}

// NewFloat64 returns a new *bfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewFloat64(x float64) *bfloat.Float {
	return c.Round(c.New(), new(bfloat.Float).SetFloat64(x))
}

// NewBigFloat returns a new *bfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewBigFloat(x *big.Float) *bfloat.Float {
	return c.Round(c.New(), new(bfloat.Float).SetBigFloat(x))
}

// NewRat returns a new *bfloat.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewRat(x *big.Rat) (z *bfloat.Float) {
	z = c.New()
	if c.err != nil {
		return z
	}
	defer c.catch(&z, z)
	c.flag(z.SetRatPrecRound(x, uint(c.prec), c.mode))
	return z
}

// NewString returns a new *bfloat.Float set to the (possibly rounded) value
// of the literal s, as accepted by bfloat.ParseFloat. A parse error is
// recorded in c and the returned value is +0.
func (c *Context) NewString(s string) *bfloat.Float {
	x, err := bfloat.ParseFloat(s)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return c.New()
	}
	return c.Round(c.New(), x)
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Inexact reports whether any operation since the last call to Inexact
// returned a rounded result, and clears the flag.
func (c *Context) Inexact() (inexact bool) {
	inexact = c.inexact
	c.inexact = false
	return
}

// flag records the Ordering of an operation.
func (c *Context) flag(o bfloat.Ordering) {
	if o != bfloat.Equal {
		c.inexact = true
	}
}

// catch recovers the errors raised as panics by bfloat into c.err and sets
// *r to z. Other panics are propagated. It must be deferred.
func (c *Context) catch(r **bfloat.Float, z *bfloat.Float) {
	e := recover()
	if e == nil {
		return
	}
	err, ok := e.(error)
	if !ok {
		panic(e)
	}
	var (
		errInexact bfloat.ErrInexact
		errPrec    bfloat.ErrPrecision
		errNaN     bfloat.ErrNaN
	)
	if !xerrors.As(err, &errInexact) && !xerrors.As(err, &errPrec) && !xerrors.As(err, &errNaN) {
		panic(e)
	}
	c.err = err
	*r = z
}

// Round sets z to the value of x rounded using c's precision and rounding
// mode, and returns z.
func (c *Context) Round(z, x *bfloat.Float) (r *bfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(&r, z)
	// round a copy so that z is untouched on failure
	t := new(bfloat.Float).Set(x)
	c.flag(t.SetPrecRound(uint(c.prec), c.mode))
	return z.Set(t)
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *bfloat.Float) (r *bfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(&r, z)
	r, o := z.AddPrecRound(x, y, uint(c.prec), c.mode)
	c.flag(o)
	return r
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *bfloat.Float) (r *bfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(&r, z)
	r, o := z.SubPrecRound(x, y, uint(c.prec), c.mode)
	c.flag(o)
	return r
}

// AddRational sets z to the rounded sum x+y and returns z.
func (c *Context) AddRational(z, x *bfloat.Float, y *big.Rat) (r *bfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(&r, z)
	r, o := z.AddRationalPrecRound(x, y, uint(c.prec), c.mode)
	c.flag(o)
	return r
}

// SubRational sets z to the rounded difference x-y and returns z.
func (c *Context) SubRational(z, x *bfloat.Float, y *big.Rat) (r *bfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(&r, z)
	r, o := z.SubRationalPrecRound(x, y, uint(c.prec), c.mode)
	c.flag(o)
	return r
}

// Sum sets z to the sum of xs, rounded once, and returns z.
func (c *Context) Sum(z *bfloat.Float, xs ...*bfloat.Float) (r *bfloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.catch(&r, z)
	r, o := math.Sum(z, uint(c.prec), c.mode, xs...)
	c.flag(o)
	return r
}

// Neg sets z to the (possibly rounded) value of x with its sign negated, and
// returns z.
func (c *Context) Neg(z, x *bfloat.Float) *bfloat.Float {
	if c.err != nil {
		return z
	}
	return c.Round(z, new(bfloat.Float).Neg(x))
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *bfloat.Float) *bfloat.Float {
	if c.err != nil {
		return z
	}
	return c.Round(z, new(bfloat.Float).Abs(x))
}
