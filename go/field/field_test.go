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

package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarkdb/quark/go/field/decimal"
)

func TestZeroValueIsNull(t *testing.T) {
	var f Field
	assert.Equal(t, KindNull, f.Kind())
	assert.True(t, f.IsNull())
}

func TestConstructorsAndAccessors(t *testing.T) {
	tests := []struct {
		f    Field
		kind Kind
	}{
		{NewNull(), KindNull},
		{NewUInt64(42), KindUInt64},
		{NewInt64(-42), KindInt64},
		{NewFloat64(1.5), KindFloat64},
		{NewString("abc"), KindString},
		{NewBytes([]byte{0, 1}), KindString},
		{NewArray(NewUInt64(1), NewUInt64(2)), KindArray},
		{NewTuple(NewInt64(1), NewString("x")), KindTuple},
		{NewUInt128(UInt128{Hi: 1, Lo: 2}), KindUInt128},
		{NewDecimal32(150, 2), KindDecimal32},
		{NewDecimal64(150, 2), KindDecimal64},
		{NewDecimal128(decimal.Int128FromInt64(150), 2), KindDecimal128},
		{NewAggregateState("sumState", []byte{1, 2, 3}), KindAggregateState},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.f.Kind())
		})
	}

	u, ok := NewUInt64(42).Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(42), u)

	i, ok := NewInt64(-42).Int64()
	require.True(t, ok)
	assert.Equal(t, int64(-42), i)

	fv, ok := NewFloat64(1.5).Float64()
	require.True(t, ok)
	assert.Equal(t, 1.5, fv)

	s, ok := NewString("abc").StringBytes()
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), s)

	arr, ok := NewArray(NewUInt64(1)).Array()
	require.True(t, ok)
	assert.Len(t, arr, 1)

	tup, ok := NewTuple(NewUInt64(1), NewUInt64(2)).Tuple()
	require.True(t, ok)
	assert.Len(t, tup, 2)

	raw, ok := NewUInt128(UInt128{Hi: 1, Lo: 2}).UInt128()
	require.True(t, ok)
	assert.Equal(t, UInt128{Hi: 1, Lo: 2}, raw)

	d, ok := NewDecimal64(150, 2).Decimal()
	require.True(t, ok)
	assert.Equal(t, decimal.FromInt64(150, 2), d)

	agg, ok := NewAggregateState("sumState", []byte{9}).AggregateState()
	require.True(t, ok)
	assert.Equal(t, "sumState", agg.Name)

	// Accessors for the wrong kind report !ok.
	_, ok = NewUInt64(1).Int64()
	assert.False(t, ok)
	_, ok = NewString("x").Decimal()
	assert.False(t, ok)
	_, ok = NewNull().Uint64()
	assert.False(t, ok)
}

func TestDecimalConstructorsShareRepresentation(t *testing.T) {
	// All three widths carry the same magnitude/scale payload; only the
	// kind differs.
	d32 := NewDecimal32(150, 2)
	d64 := NewDecimal64(150, 2)
	d128 := NewDecimal128(decimal.Int128FromInt64(150), 2)

	a, _ := d32.Decimal()
	b, _ := d64.Decimal()
	c, _ := d128.Decimal()
	assert.Empty(t, cmp.Diff(a, b, cmp.AllowUnexported(decimal.Int128{})))
	assert.Empty(t, cmp.Diff(a, c, cmp.AllowUnexported(decimal.Int128{})))
}

// mutating visitor: doubling a UInt64 through the dispatcher must be
// visible in the original field.
type doubleVisitor struct{ nopVisitor }

func (doubleVisitor) VisitUInt64(x *uint64) error {
	*x *= 2
	return nil
}

// nopVisitor satisfies Visitor with no-ops so tests can override a method.
type nopVisitor struct{}

func (nopVisitor) VisitNull() error { return nil }
func (nopVisitor) VisitUInt64(*uint64) error { return nil }
func (nopVisitor) VisitInt64(*int64) error { return nil }
func (nopVisitor) VisitFloat64(*float64) error { return nil }
func (nopVisitor) VisitString(*[]byte) error { return nil }
func (nopVisitor) VisitArray(*[]Field) error { return nil }
func (nopVisitor) VisitTuple(*[]Field) error { return nil }
func (nopVisitor) VisitUInt128(*UInt128) error { return nil }
func (nopVisitor) VisitDecimal32(*decimal.Dec) error { return nil }
func (nopVisitor) VisitDecimal64(*decimal.Dec) error { return nil }
func (nopVisitor) VisitDecimal128(*decimal.Dec) error { return nil }
func (nopVisitor) VisitAggregateState(*AggregateState) error { return nil }

func TestApplyForwardsByReference(t *testing.T) {
	f := NewUInt64(21)
	require.NoError(t, Apply(doubleVisitor{}, &f))
	u, _ := f.Uint64()
	assert.Equal(t, uint64(42), u)
}

// kindRecorder checks that Apply picks the branch matching the active kind.
type kindRecorder struct {
	nopVisitor
	got string
}

func (k *kindRecorder) VisitFloat64(*float64) error { k.got = "Float64"; return nil }
func (k *kindRecorder) VisitTuple(*[]Field) error   { k.got = "Tuple"; return nil }

func TestApplyDispatchesOnActiveKind(t *testing.T) {
	var rec kindRecorder
	f := NewFloat64(3.14)
	require.NoError(t, Apply(&rec, &f))
	assert.Equal(t, "Float64", rec.got)

	f = NewTuple(NewUInt64(1))
	require.NoError(t, Apply(&rec, &f))
	assert.Equal(t, "Tuple", rec.got)
}

func TestParseUUIDRoundTrip(t *testing.T) {
	const text = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	u, err := ParseUUID(text)
	require.NoError(t, err)
	assert.Equal(t, text, FormatUUID(u))

	_, err = ParseUUID("not-a-uuid")
	require.Error(t, err)
}

func TestUInt128Cmp(t *testing.T) {
	tests := []struct {
		a, b UInt128
		want int
	}{
		{UInt128{0, 1}, UInt128{0, 2}, -1},
		{UInt128{1, 0}, UInt128{0, ^uint64(0)}, 1},
		{UInt128{3, 4}, UInt128{3, 4}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Cmp(tt.b))
		assert.Equal(t, -tt.want, tt.b.Cmp(tt.a))
	}
}
