// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and constants from math/big.

package bfloat

import (
	"fmt"
	"math"
)

// Exponent and precision limits.
const (
	MaxExp  = math.MaxInt32  // largest supported exponent
	MinExp  = math.MinInt32  // smallest supported exponent
	MaxPrec = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
)

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a nat slice of exactly ceil(x.prec/_W) words. The
// most significant bit of the top word is always set, and the bits below
// x.prec in the least significant word are always 0. The value is
//
//	x = ±0.x.mant × 2**x.exp
//
// with 0.5 <= 0.x.mant < 1.0.
//
// A zero, infinite or NaN Float x ignores x.mant and x.exp.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                zero      sign     -            -
// 0 < |x| < +Inf    finite    sign     mantissa     exponent
// ±Inf              inf       sign     -            -
// NaN               nan       -        -            -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
	nan
)

// RoundingMode determines how a Float value is rounded to the
// desired precision. Rounding may change the Float value; the
// rounding error is described by the returned Ordering.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	Nearest RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	Down                        // == IEEE 754-2008 roundTowardZero
	Up                          // no IEEE 754-2008 equivalent
	Floor                       // == IEEE 754-2008 roundTowardNegative
	Ceiling                     // == IEEE 754-2008 roundTowardPositive
	Exact                       // the result must be representable; panics otherwise
)

//go:generate stringer -type=RoundingMode,Ordering

// Ordering describes how the value returned by an operation compares to the
// exact, infinitely precise, result.
type Ordering int8

// Constants describing an Ordering.
const (
	Less    Ordering = -1 // returned value < exact result
	Equal   Ordering = 0  // returned value == exact result
	Greater Ordering = +1 // returned value > exact result
)

func makeOrd(above bool) Ordering {
	if above {
		return Greater
	}
	return Less
}

// Reverse returns the ordering of the exact result relative to the returned
// value, that is -o.
func (o Ordering) Reverse() Ordering {
	return -o
}

// An ErrNaN panic is raised by a Float conversion that cannot represent a
// NaN. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// An ErrInexact panic is raised by an operation in Exact rounding mode whose
// result cannot be represented with the requested precision. The destination
// of the operation is left unchanged.
type ErrInexact struct {
	msg string
}

func (err ErrInexact) Error() string {
	return err.msg
}

// An ErrPrecision panic is raised when an operation is given a precision of 0
// or larger than MaxPrec.
type ErrPrecision struct {
	prec uint
}

func (err ErrPrecision) Error() string {
	return fmt.Sprintf("bfloat: invalid precision %d", err.prec)
}

// validPrec panics with ErrPrecision if prec is out of range.
func validPrec(prec uint) uint32 {
	if prec == 0 || prec > MaxPrec {
		panic(ErrPrecision{prec})
	}
	return uint32(prec)
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}
