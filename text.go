// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the literal syntax of Floats, formatting and
// scanning. Base conversion is delegated to math/big.

package bfloat

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/xerrors"
)

// ErrSyntax is wrapped by the errors returned when parsing a malformed Float
// literal.
var ErrSyntax = xerrors.New("invalid syntax")

// defaultPrec is the precision of parsed literals that do not specify one.
const defaultPrec = 64

var floatZero Float

// String formats x in its literal form:
//
//	[-]0x1.<hex digits>p±<exponent>#<precision>
//
// with the minimal number of hexadecimal digits needed to represent x
// exactly. Zeros format as 0.0#<precision> or -0.0#<precision>, infinities as
// Inf#<precision> or -Inf#<precision> and a NaN as NaN#<precision>, or NaN
// when its precision is 1. ParseFloat accepts this form and restores a value
// identical to x.
func (x *Float) String() string {
	var sign string
	if x.neg && x.form != nan {
		sign = "-"
	}
	switch x.form {
	case nan:
		if x.prec == 1 {
			return "NaN"
		}
		return "NaN#" + strconv.FormatUint(uint64(x.prec), 10)
	case zero:
		return sign + "0.0#" + strconv.FormatUint(uint64(x.prec), 10)
	case inf:
		return sign + "Inf#" + strconv.FormatUint(uint64(x.prec), 10)
	}
	return x.BigFloat(nil).Text('x', -1) + "#" + strconv.FormatUint(uint64(x.prec), 10)
}

// Text converts x to a string according to the given format and precision,
// as math/big.Float.Text does. A NaN x yields "NaN".
func (x *Float) Text(format byte, prec int) string {
	if x.form == nan {
		return "NaN"
	}
	return x.BigFloat(nil).Text(format, prec)
}

// ParseFloat returns a new Float set to the value of the literal s. See
// (*Float).Parse.
func ParseFloat(s string) (*Float, error) {
	return new(Float).Parse(s)
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. If the operation failed, the value of z is undefined but the
// returned value is nil.
func (z *Float) SetString(s string) (*Float, bool) {
	if f, err := z.Parse(s); err == nil {
		return f, true
	}
	return nil, false
}

// Parse sets z to the value of the literal s and returns z. s has the form
//
//	number = ( [ sign ] ( float | "Inf" | "inf" ) | "NaN" ) [ "#" precision ] .
//
// where float is any floating-point literal accepted by math/big.Float.Parse
// with base 0 (hexadecimal mantissas with a binary exponent are the canonical
// form). The precision of z is set to the given precision, or 64 if none is
// given (1 for a NaN), and the value of the literal must be exactly
// representable with that many bits. A precision of 0 is only valid for
// zeros, infinities and NaNs, as in the zero value of Float.
//
// The returned *Float is nil and the value of z is undefined if an error is
// reported.
func (z *Float) Parse(s string) (*Float, error) {
	body, prec, hasPrec := s, uint64(defaultPrec), false
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		var err error
		body, hasPrec = s[:i], true
		if prec, err = strconv.ParseUint(s[i+1:], 10, 32); err != nil {
			return nil, xerrors.Errorf("bfloat: parsing %q: precision %q: %w", s, s[i+1:], ErrSyntax)
		}
	}
	if body == "NaN" {
		if !hasPrec {
			prec = 1
		}
		z.prec = uint32(prec)
		return z.SetNaN(), nil
	}

	neg := false
	if body != "" && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if body == "" || body[0] == '-' || body[0] == '+' {
		return nil, xerrors.Errorf("bfloat: parsing %q: %w", s, ErrSyntax)
	}

	var f big.Float
	f.SetPrec(uint(prec)).SetMode(big.ToNearestEven)
	if _, _, err := f.Parse(body, 0); err != nil {
		return nil, xerrors.Errorf("bfloat: parsing %q: %v: %w", s, err, ErrSyntax)
	}
	if f.Acc() != big.Exact {
		return nil, xerrors.Errorf("bfloat: parsing %q: value not representable with %d bits: %w", s, prec, ErrSyntax)
	}
	z.SetBigFloat(&f)
	if prec == 0 && z.form == finite {
		return nil, xerrors.Errorf("bfloat: parsing %q: nonzero value with precision 0: %w", s, ErrSyntax)
	}
	z.prec = uint32(prec)
	if z.form != nan {
		z.neg = neg
	}
	return z, nil
}

var _ fmt.Formatter = &floatZero // *Float must implement fmt.Formatter

// Format implements fmt.Formatter. The verbs 's' and 'v' print the literal
// form returned by String. All other verbs are handled as in
// math/big.Float.Format, for which a NaN prints as "NaN".
func (x *Float) Format(s fmt.State, verb rune) {
	switch {
	case verb == 's' || verb == 'v':
		fmt.Fprintf(s, fmt.FormatString(s, 's'), x.String())
	case x.form == nan:
		fmt.Fprintf(s, fmt.FormatString(s, 's'), "NaN")
	default:
		x.BigFloat(nil).Format(s, verb)
	}
}

var _ fmt.Scanner = &floatZero // *Float must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned literal, which must be followed by a space or the end of input.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	tok, err := s.Token(false, func(r rune) bool { return !unicode.IsSpace(r) })
	if err != nil {
		return err
	}
	_, err = z.Parse(string(tok))
	return err
}
