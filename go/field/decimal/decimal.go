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

// Package decimal implements fixed-point decimal arithmetic for field
// values: a signed integer magnitude plus a scale exponent giving the
// position of the implied decimal point. The magnitude is carried as a
// 128-bit integer regardless of the declared width of the source column;
// width checks are the caller's concern.
package decimal

import (
	"math"
	"strings"
)

// Dec is a fixed-point decimal: Value * 10**-Scale.
type Dec struct {
	Value Int128
	Scale int32
}

// New returns a decimal with the given magnitude and scale. The scale is
// a digit count and cannot be negative; a negative scale is treated as
// zero.
func New(value Int128, scale int32) Dec {
	return Dec{Value: value, Scale: clampScale(scale)}
}

// FromInt64 returns v as a zero-scale decimal unless another scale is given.
func FromInt64(v int64, scale int32) Dec {
	return Dec{Value: Int128FromInt64(v), Scale: clampScale(scale)}
}

// FromUint64 returns v as a decimal with the given scale.
func FromUint64(v uint64, scale int32) Dec {
	return Dec{Value: Int128FromUint64(v), Scale: clampScale(scale)}
}

func clampScale(scale int32) int32 {
	if scale < 0 {
		return 0
	}
	return scale
}

// IsZero reports whether the magnitude is zero, at any scale.
func (d Dec) IsZero() bool {
	return d.Value.IsZero()
}

// Float64 returns the nearest float64 to d.
func (d Dec) Float64() float64 {
	return d.Value.Float64() / math.Pow10(int(d.Scale))
}

// Whole returns the integral part of d, truncated toward zero.
func (d Dec) Whole() Int128 {
	return d.Value.DivPow10(d.Scale)
}

// String renders d with its implied decimal point, e.g. {150, 2} as "1.50".
// A Dec built directly with a negative Scale renders as if the scale were
// zero, matching the constructors.
func (d Dec) String() string {
	s := d.Value.String()
	if d.Scale <= 0 {
		return s
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if int32(len(s)) <= d.Scale {
		s = strings.Repeat("0", int(d.Scale)-len(s)+1) + s
	}
	point := len(s) - int(d.Scale)
	s = s[:point] + "." + s[point:]
	if neg {
		s = "-" + s
	}
	return s
}

// Compare returns -1, 0 or 1 comparing a and b after aligning scales.
// The smaller-scale operand's magnitude is multiplied up; when that would
// overflow 128 bits the comparison is carried out in arbitrary precision.
func Compare(a, b Dec) int {
	switch {
	case a.Scale == b.Scale:
		return a.Value.Cmp(b.Value)
	case a.Scale < b.Scale:
		if av, ok := a.Value.MulPow10(b.Scale - a.Scale); ok {
			return av.Cmp(b.Value)
		}
	default:
		if bv, ok := b.Value.MulPow10(a.Scale - b.Scale); ok {
			return a.Value.Cmp(bv)
		}
	}
	ab, bb := a.Value.BigInt(), b.Value.BigInt()
	if a.Scale < b.Scale {
		ab.Mul(ab, bigPow10(b.Scale-a.Scale))
	} else {
		bb.Mul(bb, bigPow10(a.Scale-b.Scale))
	}
	return ab.Cmp(bb)
}

// Add returns a + b, reporting false on 128-bit overflow. Both operands
// must have the same scale; callers are responsible for checking that and
// for enforcing any narrower width bound on the result.
func Add(a, b Dec) (Dec, bool) {
	sum, ok := a.Value.Add(b.Value)
	return Dec{Value: sum, Scale: a.Scale}, ok
}
