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

// Package field implements the dynamically-tagged value type used across
// query execution and storage to carry literals, column elements and
// intermediate results whose static type is only known at runtime.
//
// A Field holds exactly one of a closed set of kinds (see Kind). Every
// operation first resolves the active kind, either through the Visitor
// dispatch in Apply or, for two-field operations, through nested kind
// switches. Fields are immutable snapshots with a single documented
// exception: Sum updates its receiver in place.
package field

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/quarkdb/quark/go/field/decimal"
	"github.com/quarkdb/quark/go/qerrors"
)

// Kind identifies the active variant of a Field.
type Kind int8

// All the kinds. The set is closed: no kind is ever added at runtime.
const (
	KindNull Kind = iota
	KindUInt64
	KindInt64
	KindFloat64
	KindString
	KindArray
	KindTuple
	KindUInt128
	KindDecimal32
	KindDecimal64
	KindDecimal128
	KindAggregateState
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindUInt64:
		return "UInt64"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindUInt128:
		return "UInt128"
	case KindDecimal32:
		return "Decimal32"
	case KindDecimal64:
		return "Decimal64"
	case KindDecimal128:
		return "Decimal128"
	case KindAggregateState:
		return "AggregateFunctionState"
	}
	return "Invalid"
}

// IsDecimal reports whether k is one of the fixed-point decimal kinds.
func (k Kind) IsDecimal() bool {
	return k == KindDecimal32 || k == KindDecimal64 || k == KindDecimal128
}

// UInt128 is a raw 128-bit unsigned integer. By convention it also carries
// UUIDs, with the canonical text form mapping onto the value in big-endian
// byte order.
type UInt128 struct {
	Hi, Lo uint64
}

// Cmp returns -1, 0 or 1 comparing u and v as unsigned integers.
func (u UInt128) Cmp(v UInt128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// ParseUUID interprets text as canonical UUID text and returns the raw
// 128-bit value. The error carries CannotConvertType.
func ParseUUID(text string) (UInt128, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return UInt128{}, qerrors.Errorf(qerrors.CannotConvertType, "cannot interpret %q as UUID: %v", text, err)
	}
	return UInt128{
		Hi: binary.BigEndian.Uint64(id[:8]),
		Lo: binary.BigEndian.Uint64(id[8:]),
	}, nil
}

// FormatUUID renders u as canonical UUID text.
func FormatUUID(u UInt128) string {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], u.Hi)
	binary.BigEndian.PutUint64(id[8:], u.Lo)
	return id.String()
}

// AggregateState is the opaque serialized state of an aggregate function,
// tagged with the identity of the function that produced it. It supports
// equality of the payload and nothing else: no conversion, no ordering,
// no accumulation.
type AggregateState struct {
	Name string
	Data []byte
}

// Field is the closed tagged union. The zero value is the Null field.
type Field struct {
	kind Kind
	uval uint64
	ival int64
	fval float64
	dec  decimal.Dec
	u128 UInt128
	str  []byte
	seq  []Field
	agg  AggregateState
}

// NewNull returns the Null field.
func NewNull() Field {
	return Field{kind: KindNull}
}

// NewUInt64 returns a UInt64 field.
func NewUInt64(v uint64) Field {
	return Field{kind: KindUInt64, uval: v}
}

// NewInt64 returns an Int64 field.
func NewInt64(v int64) Field {
	return Field{kind: KindInt64, ival: v}
}

// NewFloat64 returns a Float64 field.
func NewFloat64(v float64) Field {
	return Field{kind: KindFloat64, fval: v}
}

// NewString returns a String field holding a copy of s.
func NewString(s string) Field {
	return Field{kind: KindString, str: []byte(s)}
}

// NewBytes returns a String field holding b. The field takes ownership of
// the slice; callers must not modify it afterwards.
func NewBytes(b []byte) Field {
	return Field{kind: KindString, str: b}
}

// NewArray returns an Array field over the given elements.
func NewArray(elems ...Field) Field {
	return Field{kind: KindArray, seq: elems}
}

// NewTuple returns a Tuple field over the given elements.
func NewTuple(elems ...Field) Field {
	return Field{kind: KindTuple, seq: elems}
}

// NewUInt128 returns a UInt128 field.
func NewUInt128(v UInt128) Field {
	return Field{kind: KindUInt128, u128: v}
}

// NewDecimal32 returns a Decimal32 field with the given magnitude and scale.
func NewDecimal32(v int32, scale int32) Field {
	return Field{kind: KindDecimal32, dec: decimal.FromInt64(int64(v), scale)}
}

// NewDecimal64 returns a Decimal64 field with the given magnitude and scale.
func NewDecimal64(v int64, scale int32) Field {
	return Field{kind: KindDecimal64, dec: decimal.FromInt64(v, scale)}
}

// NewDecimal128 returns a Decimal128 field with the given magnitude and scale.
func NewDecimal128(v decimal.Int128, scale int32) Field {
	return Field{kind: KindDecimal128, dec: decimal.New(v, scale)}
}

// NewAggregateState returns an AggregateFunctionState field.
func NewAggregateState(name string, data []byte) Field {
	return Field{kind: KindAggregateState, agg: AggregateState{Name: name, Data: data}}
}

// Kind returns the active kind of f.
func (f Field) Kind() Kind {
	return f.kind
}

// IsNull reports whether f is the Null field.
func (f Field) IsNull() bool {
	return f.kind == KindNull
}

// Uint64 returns the UInt64 content of f.
func (f Field) Uint64() (uint64, bool) {
	return f.uval, f.kind == KindUInt64
}

// Int64 returns the Int64 content of f.
func (f Field) Int64() (int64, bool) {
	return f.ival, f.kind == KindInt64
}

// Float64 returns the Float64 content of f.
func (f Field) Float64() (float64, bool) {
	return f.fval, f.kind == KindFloat64
}

// StringBytes returns the String content of f. The returned slice aliases
// the field's storage.
func (f Field) StringBytes() ([]byte, bool) {
	return f.str, f.kind == KindString
}

// Array returns the elements of an Array field.
func (f Field) Array() ([]Field, bool) {
	return f.seq, f.kind == KindArray
}

// Tuple returns the elements of a Tuple field.
func (f Field) Tuple() ([]Field, bool) {
	return f.seq, f.kind == KindTuple
}

// UInt128 returns the UInt128 content of f.
func (f Field) UInt128() (UInt128, bool) {
	return f.u128, f.kind == KindUInt128
}

// Decimal returns the magnitude and scale of any decimal field.
func (f Field) Decimal() (decimal.Dec, bool) {
	return f.dec, f.kind.IsDecimal()
}

// AggregateState returns the aggregate state content of f.
func (f Field) AggregateState() (AggregateState, bool) {
	return f.agg, f.kind == KindAggregateState
}

// String renders f as a literal; it is shorthand for ToString.
func (f Field) String() string {
	return ToString(f)
}
