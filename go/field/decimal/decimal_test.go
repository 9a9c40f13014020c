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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		value int64
		scale int32
		want  string
	}{
		{150, 2, "1.50"},
		{-150, 2, "-1.50"},
		{2, 0, "2"},
		{0, 0, "0"},
		{0, 2, "0.00"},
		{5, 3, "0.005"},
		{-5, 3, "-0.005"},
		{123456789, 4, "12345.6789"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromInt64(tt.value, tt.scale).String())
	}
}

func TestCompareAlignsScales(t *testing.T) {
	tests := []struct {
		a, b Dec
		want int
	}{
		// 1.50 < 2
		{FromInt64(150, 2), FromInt64(2, 0), -1},
		// 1.50 == 1.5
		{FromInt64(150, 2), FromInt64(15, 1), 0},
		// 2 > 1.50
		{FromInt64(2, 0), FromInt64(150, 2), 1},
		// -0.5 < 0.05
		{FromInt64(-5, 1), FromInt64(5, 2), -1},
		// same scale fast path
		{FromInt64(3, 2), FromInt64(4, 2), -1},
		{FromUint64(7, 0), FromInt64(7, 0), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(tt.a, tt.b), "%s cmp %s", tt.a, tt.b)
		assert.Equal(t, -tt.want, Compare(tt.b, tt.a), "%s cmp %s", tt.b, tt.a)
	}
}

func TestCompareWideMagnitudes(t *testing.T) {
	// Aligning these scales overflows 128 bits, forcing the arbitrary
	// precision fallback.
	big1, ok := Int128FromInt64(1).MulPow10(37)
	require.True(t, ok)

	a := New(big1, 0)
	b := FromInt64(5, 5)
	assert.Equal(t, 1, Compare(a, b))
	assert.Equal(t, -1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))

	// Equal values at maximally distant scales.
	c := New(big1, 37) // 1.000...0
	d := FromInt64(1, 0)
	assert.Equal(t, 0, Compare(c, d))
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 1.5, FromInt64(150, 2).Float64())
	assert.Equal(t, -0.25, FromInt64(-25, 2).Float64())
	assert.Equal(t, 42.0, FromInt64(42, 0).Float64())
}

func TestWhole(t *testing.T) {
	assert.Equal(t, Int128FromInt64(1), FromInt64(150, 2).Whole())
	assert.Equal(t, Int128FromInt64(-1), FromInt64(-199, 2).Whole())
	assert.Equal(t, Int128FromInt64(42), FromInt64(42, 0).Whole())
}

func TestAdd(t *testing.T) {
	sum, ok := Add(FromInt64(150, 2), FromInt64(50, 2))
	require.True(t, ok)
	assert.Equal(t, FromInt64(200, 2), sum)
	assert.Equal(t, "2.00", sum.String())

	sum, ok = Add(FromInt64(5, 1), FromInt64(-5, 1))
	require.True(t, ok)
	assert.True(t, sum.IsZero())
}

func TestNegativeScaleClamped(t *testing.T) {
	// Scale is a digit count; the constructors floor a negative one at zero.
	assert.Equal(t, int32(0), FromInt64(5, -1).Scale)
	assert.Equal(t, int32(0), FromUint64(5, -1).Scale)
	assert.Equal(t, int32(0), New(Int128FromInt64(5), -3).Scale)
	assert.Equal(t, "5", FromInt64(5, -1).String())

	// A Dec assembled directly can still carry a negative Scale; String
	// and Whole treat it as zero instead of slicing out of range.
	d := Dec{Value: Int128FromInt64(42), Scale: -2}
	assert.Equal(t, "42", d.String())
	v, ok := d.Whole().Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), v)
}
