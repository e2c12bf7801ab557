// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bfloat implements arbitrary-precision binary floating-point numbers
with correctly rounded addition and subtraction.

The representation follows big.Float: a finite nonzero Float is
sign × 0.mantissa × 2**exponent, where the mantissa is stored in a
little-endian Word slice. Unlike big.Float, a Float carries no rounding mode
or accuracy: every operation takes the precision and rounding mode of its
result as arguments, and returns an Ordering telling whether the result is
below, equal to, or above the exact, infinitely precise value.

The zero value for a Float corresponds to +0 with precision 0. Thus, new
values can be declared in the usual ways and denote 0 without further
initialization:

	x := new(Float)  // x is a *Float of value 0

Alternatively, new Float values can be allocated and initialized with the
functions:

	func NewFloat(f float64) *Float
	func ParseFloat(s string) (*Float, error)

ParseFloat accepts the literal form printed by String, a hexadecimal mantissa
with a binary exponent followed by the precision in bits:

	x, _ := ParseFloat("0x1.8p+01#2")    // 3.0 with 2 bits of precision

Addition comes in several flavors that all compute the same correctly rounded
result. The canonical operation is

	func (z *Float) AddPrecRound(x, y *Float, prec uint, mode RoundingMode) (*Float, Ordering)

which sets z to x+y rounded to prec bits according to mode. AddPrec uses
Nearest (ties to even), AddRound uses the larger of the operand precisions,
and Add does both. The package-level functions of the same names allocate a
new result and leave their operands untouched, while the methods of the form

	func (x *Float) AddPrecRoundAssign(y *Float, prec uint, mode RoundingMode) Ordering

update x in place. For all methods, the result is the receiver; if it is one
of the operands x or y, its memory is reused. The Sub family mirrors Add, and
AddRational adds a *big.Rat operand whose binary expansion may be infinite,
with a single correct rounding.

In Exact mode, an operation whose result is not representable with the
requested precision panics with ErrInexact, leaving the receiver untouched.
An invalid precision panics with ErrPrecision. The context subpackage turns
these panics into errors.

Notational convention: Incoming method parameters (including the receiver)
are named consistently in the API to clarify their use. Incoming operands are
usually named x, y, a, b, and so on, but never z. A parameter specifying the
result is named z (typically the receiver).

Finally, *Float satisfies the fmt package's Scanner interface for scanning and
the Formatter interface for formatted printing, and implements gob and text
marshaling.
*/
package bfloat
