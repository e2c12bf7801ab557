// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the fixed-width addition kernels. All of them add two
// finite, nonzero, same-sign operands of identical precision into a result
// of that same precision:
//
//  1. the significand of the operand with the smaller exponent is shifted
//     right by the exponent difference; the first discarded word is kept in
//     lo, and st records whether anything below it was set,
//  2. the significands are added,
//  3. a carry out of the top word shifts the sum right by one bit,
//  4. the padding bits, lo and st yield the round and sticky bits; rounding
//     up may carry out of the top word again.
//
// The one to three word kernels work on scalar words only.

package bfloat

import "math/bits"

func b2u(b bool) uint {
	if b {
		return 1
	}
	return 0
}

// shr1 shifts the significand c0 right by d bits. It returns the shifted
// word, the word of discarded bits just below it and whether any bit below
// that was set.
func shr1(c0 Word, d uint64) (r0, lo Word, st bool) {
	switch {
	case d < _W:
		return c0 >> d, c0 << (_W - d), false
	case d < 2*_W:
		s := d - _W
		return 0, c0 >> s, c0<<(_W-s) != 0
	}
	return 0, 0, true
}

// shr2 is like shr1 for a two word significand.
func shr2(c1, c0 Word, d uint64) (r1, r0, lo Word, st bool) {
	switch {
	case d < _W:
		return c1 >> d, c0>>d | c1<<(_W-d), c0 << (_W - d), false
	case d < 2*_W:
		s := d - _W
		return 0, c1 >> s, c0>>s | c1<<(_W-s), c0<<(_W-s) != 0
	case d < 3*_W:
		s := d - 2*_W
		return 0, 0, c1 >> s, c0 != 0 || c1<<(_W-s) != 0
	}
	return 0, 0, 0, true
}

// shr3 is like shr1 for a three word significand.
func shr3(c2, c1, c0 Word, d uint64) (r2, r1, r0, lo Word, st bool) {
	switch {
	case d < _W:
		return c2 >> d, c1>>d | c2<<(_W-d), c0>>d | c1<<(_W-d), c0 << (_W - d), false
	case d < 2*_W:
		s := d - _W
		return 0, c2 >> s, c1>>s | c2<<(_W-s), c0>>s | c1<<(_W-s), c0<<(_W-s) != 0
	case d < 3*_W:
		s := d - 2*_W
		return 0, 0, c2 >> s, c1>>s | c2<<(_W-s), c0 != 0 || c1<<(_W-s) != 0
	case d < 4*_W:
		s := d - 3*_W
		return 0, 0, 0, c2 >> s, c0 != 0 || c1 != 0 || c2<<(_W-s) != 0
	}
	return 0, 0, 0, 0, true
}

// addLtW adds operands of precision < _W.
func (z *Float) addLtW(x, y *Float, mode RoundingMode) Ordering {
	neg, prec := x.neg, x.prec
	ex, b0 := int64(x.exp), x.mant[0]
	ey, c0 := int64(y.exp), y.mant[0]
	if ex < ey {
		ex, ey = ey, ex
		b0, c0 = c0, b0
	}
	pad := _W - uint(prec) // pad >= 1

	c0, lo, st := shr1(c0, uint64(ex-ey))
	c, a0 := addWW(b0, c0, 0)
	if c != 0 {
		st = st || lo&1 != 0
		lo = a0<<(_W-1) | lo>>1
		a0 = a0>>1 | msb
		ex++
	}

	half := Word(1) << (pad - 1)
	rbit := b2u(a0&half != 0)
	sbit := b2u(a0&(half-1) != 0 || lo != 0 || st)
	lsb := uint(a0>>pad) & 1
	a := a0 &^ lowMask(pad)
	inc, ord := roundUp(mode, neg, lsb, rbit, sbit)
	if inc {
		a += Word(1) << pad
		if a == 0 {
			a = msb
			ex++
		}
	}
	return z.setResult(neg, []Word{a}, ex, prec, mode, ord)
}

// addW adds operands of precision _W.
func (z *Float) addW(x, y *Float, mode RoundingMode) Ordering {
	neg, prec := x.neg, x.prec
	ex, b0 := int64(x.exp), x.mant[0]
	ey, c0 := int64(y.exp), y.mant[0]
	if ex < ey {
		ex, ey = ey, ex
		b0, c0 = c0, b0
	}

	c0, lo, st := shr1(c0, uint64(ex-ey))
	c, a0 := addWW(b0, c0, 0)
	if c != 0 {
		st = st || lo&1 != 0
		lo = a0<<(_W-1) | lo>>1
		a0 = a0>>1 | msb
		ex++
	}

	// no padding: lo holds the round bit
	rbit := uint(lo >> (_W - 1))
	sbit := b2u(lo<<1 != 0 || st)
	a := a0
	inc, ord := roundUp(mode, neg, uint(a&1), rbit, sbit)
	if inc {
		a++
		if a == 0 {
			a = msb
			ex++
		}
	}
	return z.setResult(neg, []Word{a}, ex, prec, mode, ord)
}

// addLt2W adds operands of precision _W < prec < 2*_W.
func (z *Float) addLt2W(x, y *Float, mode RoundingMode) Ordering {
	neg, prec := x.neg, x.prec
	ex, b1, b0 := int64(x.exp), uint(x.mant[1]), uint(x.mant[0])
	ey, c1, c0 := int64(y.exp), uint(y.mant[1]), uint(y.mant[0])
	if ex < ey {
		ex, ey = ey, ex
		b1, c1 = c1, b1
		b0, c0 = c0, b0
	}
	pad := 2*_W - uint(prec) // pad >= 1

	s1, s0, lo, st := shr2(Word(c1), Word(c0), uint64(ex-ey))
	a0, c := bits.Add(b0, uint(s0), 0)
	a1, c := bits.Add(b1, uint(s1), c)
	if c != 0 {
		st = st || lo&1 != 0
		lo = Word(a0)<<(_W-1) | lo>>1
		a0 = a1<<(_W-1) | a0>>1
		a1 = a1>>1 | uint(msb)
		ex++
	}

	half := uint(1) << (pad - 1)
	rbit := b2u(a0&half != 0)
	sbit := b2u(a0&(half-1) != 0 || lo != 0 || st)
	lsb := (a0 >> pad) & 1
	a0 &^= uint(lowMask(pad))
	inc, ord := roundUp(mode, neg, lsb, rbit, sbit)
	if inc {
		a0, c = bits.Add(a0, 1<<pad, 0)
		a1, c = bits.Add(a1, 0, c)
		if c != 0 {
			a1 = uint(msb)
			ex++
		}
	}
	return z.setResult(neg, []Word{Word(a0), Word(a1)}, ex, prec, mode, ord)
}

// add2W adds operands of precision 2*_W.
func (z *Float) add2W(x, y *Float, mode RoundingMode) Ordering {
	neg, prec := x.neg, x.prec
	ex, b1, b0 := int64(x.exp), uint(x.mant[1]), uint(x.mant[0])
	ey, c1, c0 := int64(y.exp), uint(y.mant[1]), uint(y.mant[0])
	if ex < ey {
		ex, ey = ey, ex
		b1, c1 = c1, b1
		b0, c0 = c0, b0
	}

	s1, s0, lo, st := shr2(Word(c1), Word(c0), uint64(ex-ey))
	a0, c := bits.Add(b0, uint(s0), 0)
	a1, c := bits.Add(b1, uint(s1), c)
	if c != 0 {
		st = st || lo&1 != 0
		lo = Word(a0)<<(_W-1) | lo>>1
		a0 = a1<<(_W-1) | a0>>1
		a1 = a1>>1 | uint(msb)
		ex++
	}

	rbit := uint(lo >> (_W - 1))
	sbit := b2u(lo<<1 != 0 || st)
	inc, ord := roundUp(mode, neg, a0&1, rbit, sbit)
	if inc {
		a0, c = bits.Add(a0, 1, 0)
		a1, c = bits.Add(a1, 0, c)
		if c != 0 {
			a1 = uint(msb)
			ex++
		}
	}
	return z.setResult(neg, []Word{Word(a0), Word(a1)}, ex, prec, mode, ord)
}

// addLt3W adds operands of precision 2*_W < prec < 3*_W.
func (z *Float) addLt3W(x, y *Float, mode RoundingMode) Ordering {
	neg, prec := x.neg, x.prec
	ex, b2, b1, b0 := int64(x.exp), uint(x.mant[2]), uint(x.mant[1]), uint(x.mant[0])
	ey, c2, c1, c0 := int64(y.exp), uint(y.mant[2]), uint(y.mant[1]), uint(y.mant[0])
	if ex < ey {
		ex, ey = ey, ex
		b2, c2 = c2, b2
		b1, c1 = c1, b1
		b0, c0 = c0, b0
	}
	pad := 3*_W - uint(prec) // pad >= 1

	s2, s1, s0, lo, st := shr3(Word(c2), Word(c1), Word(c0), uint64(ex-ey))
	a0, c := bits.Add(b0, uint(s0), 0)
	a1, c := bits.Add(b1, uint(s1), c)
	a2, c := bits.Add(b2, uint(s2), c)
	if c != 0 {
		st = st || lo&1 != 0
		lo = Word(a0)<<(_W-1) | lo>>1
		a0 = a1<<(_W-1) | a0>>1
		a1 = a2<<(_W-1) | a1>>1
		a2 = a2>>1 | uint(msb)
		ex++
	}

	half := uint(1) << (pad - 1)
	rbit := b2u(a0&half != 0)
	sbit := b2u(a0&(half-1) != 0 || lo != 0 || st)
	lsb := (a0 >> pad) & 1
	a0 &^= uint(lowMask(pad))
	inc, ord := roundUp(mode, neg, lsb, rbit, sbit)
	if inc {
		a0, c = bits.Add(a0, 1<<pad, 0)
		a1, c = bits.Add(a1, 0, c)
		a2, c = bits.Add(a2, 0, c)
		if c != 0 {
			a2 = uint(msb)
			ex++
		}
	}
	return z.setResult(neg, []Word{Word(a0), Word(a1), Word(a2)}, ex, prec, mode, ord)
}

// addGe3W adds operands of precision >= 3*_W. It is the slice based
// counterpart of the kernels above.
func (z *Float) addGe3W(x, y *Float, mode RoundingMode) Ordering {
	neg, prec := x.neg, x.prec
	if x.exp < y.exp {
		x, y = y, x
	}
	ex, d := int64(x.exp), uint64(int64(x.exp)-int64(y.exp))
	n := len(x.mant)
	pad := uint(n)*_W - uint(prec)

	// scratch layout: a (n words) | w (n+1 words) | e (n+1 words)
	// w[0] receives the discarded word, w[1:] the aligned y.
	buf := getNat(3*n + 2)
	defer putNat(buf)
	s := *buf
	a, w, e := s[:n], s[n:2*n+1], s[2*n+1:]
	w.clear()

	var st bool
	if q := d / _W; q <= uint64(n) {
		e[0] = 0
		copy(e[1:], y.mant)
		st = e.sticky(uint(d))
		shrVU(w[:uint64(n+1)-q], e[q:], uint(d%_W))
	} else {
		st = true
	}

	lo := w[0]
	if addVV(a, x.mant, w[1:]) != 0 {
		st = st || lo&1 != 0
		lo = a[0]<<(_W-1) | lo>>1
		shrVU(a, a, 1)
		a[n-1] |= msb
		ex++
	}

	var rbit, sbit uint
	if pad > 0 {
		half := Word(1) << (pad - 1)
		rbit = b2u(a[0]&half != 0)
		sbit = b2u(a[0]&(half-1) != 0 || lo != 0 || st)
	} else {
		rbit = uint(lo >> (_W - 1))
		sbit = b2u(lo<<1 != 0 || st)
	}
	lsb := uint(a[0]>>pad) & 1
	a[0] &^= lowMask(pad)
	inc, ord := roundUp(mode, neg, lsb, rbit, sbit)
	if inc && addVW(a, a, Word(1)<<pad) != 0 {
		a[n-1] = msb
		ex++
	}
	return z.setResult(neg, a, ex, prec, mode, ord)
}

// setResult sets z to the finite value ±0.a × 2**exp of precision prec and
// returns ord adjusted for exponent overflow. a must be left-aligned and may
// alias z.mant.
func (z *Float) setResult(neg bool, a []Word, exp int64, prec uint32, mode RoundingMode, ord Ordering) Ordering {
	z.checkExp(exp, mode)
	z.mant = z.mant.set(a)
	z.prec = prec
	z.neg = neg
	return z.setExp(exp, mode, ord)
}
