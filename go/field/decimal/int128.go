/*
Copyright 2026 The Quark Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package decimal

import (
	"encoding/binary"
	"math/big"
	"math/bits"
	"strconv"
)

// Int128 is a signed 128-bit integer in two's complement, used as the
// magnitude of the widest decimal representation. The zero value is 0.
type Int128 struct {
	hi, lo uint64
}

const signBit = 1 << 63

var (
	two128      = new(big.Int).Lsh(big.NewInt(1), 128)
	maxInt128   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128   = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	pow10Uint64 = [19]uint64{
		1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
	}
)

// Int128FromInt64 sign-extends v to 128 bits.
func Int128FromInt64(v int64) Int128 {
	return Int128{hi: uint64(v >> 63), lo: uint64(v)}
}

// Int128FromUint64 zero-extends v to 128 bits.
func Int128FromUint64(v uint64) Int128 {
	return Int128{lo: v}
}

// Int128FromBig converts b, reporting false when b does not fit in 128
// signed bits.
func Int128FromBig(b *big.Int) (Int128, bool) {
	if b.Cmp(minInt128) < 0 || b.Cmp(maxInt128) > 0 {
		return Int128{}, false
	}
	v := b
	if b.Sign() < 0 {
		v = new(big.Int).Add(b, two128)
	}
	var buf [16]byte
	v.FillBytes(buf[:])
	return Int128{
		hi: binary.BigEndian.Uint64(buf[:8]),
		lo: binary.BigEndian.Uint64(buf[8:]),
	}, true
}

// Hi returns the upper 64 bits of the two's complement representation.
func (x Int128) Hi() uint64 { return x.hi }

// Lo returns the lower 64 bits of the two's complement representation.
func (x Int128) Lo() uint64 { return x.lo }

// IsZero reports whether x is 0.
func (x Int128) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// Sign returns -1, 0 or 1 according to the sign of x.
func (x Int128) Sign() int {
	if x.hi&signBit != 0 {
		return -1
	}
	if x.hi == 0 && x.lo == 0 {
		return 0
	}
	return 1
}

// Neg returns -x. Negating the minimum value wraps around to itself.
func (x Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, x.lo, 0)
	hi, _ := bits.Sub64(0, x.hi, borrow)
	return Int128{hi: hi, lo: lo}
}

// Cmp returns -1, 0 or 1 comparing x and y as signed integers.
func (x Int128) Cmp(y Int128) int {
	xh, yh := x.hi^signBit, y.hi^signBit
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// Add returns x + y, reporting false on signed overflow.
func (x Int128) Add(y Int128) (Int128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	z := Int128{hi: hi, lo: lo}
	if (x.hi^y.hi)&signBit == 0 && (x.hi^z.hi)&signBit != 0 {
		return z, false
	}
	return z, true
}

// MulPow10 returns x * 10**n, reporting false on overflow. n must be
// non-negative.
func (x Int128) MulPow10(n int32) (Int128, bool) {
	neg := x.Sign() < 0
	u := x
	if neg {
		u = x.Neg()
	}
	hi, lo := u.hi, u.lo
	for i := int32(0); i < n; i++ {
		h1, l1 := bits.Mul64(lo, 10)
		h2, l2 := bits.Mul64(hi, 10)
		if h2 != 0 {
			return Int128{}, false
		}
		nh, carry := bits.Add64(l2, h1, 0)
		if carry != 0 {
			return Int128{}, false
		}
		hi, lo = nh, l1
	}
	if hi&signBit != 0 {
		return Int128{}, false
	}
	z := Int128{hi: hi, lo: lo}
	if neg {
		z = z.Neg()
	}
	return z, true
}

// DivPow10 returns x / 10**n truncated toward zero. A non-positive n
// leaves x unchanged.
func (x Int128) DivPow10(n int32) Int128 {
	if n <= 0 {
		return x
	}
	if v, ok := x.Int64(); ok {
		if n > 18 {
			// |x| < 10**19, so the quotient is zero.
			return Int128{}
		}
		return Int128FromInt64(v / int64(pow10Uint64[n]))
	}
	q := new(big.Int).Quo(x.BigInt(), bigPow10(n))
	z, _ := Int128FromBig(q)
	return z
}

// Int64 converts x to int64, reporting false when the value does not fit.
func (x Int128) Int64() (int64, bool) {
	v := int64(x.lo)
	return v, Int128FromInt64(v) == x
}

// Int32 converts x to int32, reporting false when the value does not fit.
func (x Int128) Int32() (int32, bool) {
	v, ok := x.Int64()
	if !ok || int64(int32(v)) != v {
		return 0, false
	}
	return int32(v), true
}

// Uint64 converts x to uint64, reporting false when the value does not fit.
func (x Int128) Uint64() (uint64, bool) {
	return x.lo, x.hi == 0
}

// Float64 returns the nearest float64 to x.
func (x Int128) Float64() float64 {
	const two64 = 1 << 64
	if x.Sign() >= 0 {
		return float64(x.hi)*two64 + float64(x.lo)
	}
	m := x.Neg()
	return -(float64(m.hi)*two64 + float64(m.lo))
}

// BigInt returns x as a big.Int.
func (x Int128) BigInt() *big.Int {
	m, neg := x, x.Sign() < 0
	if neg {
		m = x.Neg()
	}
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], m.hi)
	binary.BigEndian.PutUint64(buf[8:], m.lo)
	b := new(big.Int).SetBytes(buf[:])
	if neg {
		b.Neg(b)
	}
	return b
}

func (x Int128) String() string {
	if v, ok := x.Int64(); ok {
		return strconv.FormatInt(v, 10)
	}
	return x.BigInt().String()
}

func bigPow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
