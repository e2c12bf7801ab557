// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package bfloat

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/xerrors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The Float value and its
// precision are marshaled. The encoding does not depend on the machine word
// size.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	var m []byte
	if x.form == finite {
		// the prec-bit integer mantissa, without the pad bits
		var i big.Int
		i.SetBits(nat(nil).set(x.mant))
		i.Rsh(&i, uint(len(x.mant))*_W-uint(x.prec))
		m = i.Bytes()
	}

	buf := make([]byte, 1+1+4, 1+1+4+4+len(m)) // version + form|neg + prec
	buf[0] = floatGobVersion
	b := byte(x.form&3) << 1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)

	if x.form == finite {
		buf = binary.BigEndian.AppendUint32(buf, uint32(x.exp))
		buf = append(buf, m...)
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface. z is set to the exact
// decoded value, with its precision.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if buf[0] != floatGobVersion {
		return xerrors.Errorf("Float.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 6 {
		return xerrors.Errorf("Float.GobDecode: buffer too short (%d bytes)", len(buf))
	}

	b := buf[1]
	f := form((b >> 1) & 3)
	neg := b&1 != 0
	prec := binary.BigEndian.Uint32(buf[2:])

	if f != finite {
		z.prec = prec
		z.form = f
		z.neg = neg && f != nan
		return nil
	}

	if len(buf) < 10 || prec == 0 {
		return xerrors.Errorf("Float.GobDecode: invalid finite value encoding")
	}
	exp := int32(binary.BigEndian.Uint32(buf[6:]))
	var i big.Int
	i.SetBytes(buf[10:])
	if uint32(i.BitLen()) != prec {
		return xerrors.Errorf("Float.GobDecode: mantissa has %d bits, want %d", i.BitLen(), prec)
	}
	z.setBits(neg, nat(nil).set(i.Bits()), int64(exp)-int64(prec), false, prec, Exact)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The Float is
// marshaled in its literal form (see String), including its precision.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. See Parse
// for the accepted syntax.
func (z *Float) UnmarshalText(text []byte) error {
	_, err := z.Parse(string(text))
	if err != nil {
		err = xerrors.Errorf("bfloat: cannot unmarshal %q into a *bfloat.Float: %w", text, err)
	}
	return err
}
