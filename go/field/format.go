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
	"strconv"
	"strings"

	"github.com/quarkdb/quark/go/field/decimal"
)

// ToString renders f in literal syntax: re-parsing the output under the
// literal grammar reconstructs an equivalent field. It never fails.
func ToString(f Field) string {
	var v toStringVisitor
	_ = Apply(&v, &f)
	return v.sb.String()
}

// Dump renders f for diagnostics, prefixing the value with its kind. The
// output is unambiguous but not meant to be re-parsed. It never fails.
func Dump(f Field) string {
	var v dumpVisitor
	_ = Apply(&v, &f)
	return v.sb.String()
}

type toStringVisitor struct {
	sb strings.Builder
}

func (v *toStringVisitor) VisitNull() error {
	v.sb.WriteString("NULL")
	return nil
}

func (v *toStringVisitor) VisitUInt64(x *uint64) error {
	v.sb.WriteString(strconv.FormatUint(*x, 10))
	return nil
}

func (v *toStringVisitor) VisitInt64(x *int64) error {
	v.sb.WriteString(strconv.FormatInt(*x, 10))
	return nil
}

func (v *toStringVisitor) VisitFloat64(x *float64) error {
	v.sb.WriteString(strconv.FormatFloat(*x, 'g', -1, 64))
	return nil
}

func (v *toStringVisitor) VisitString(x *[]byte) error {
	writeQuoted(&v.sb, *x)
	return nil
}

func (v *toStringVisitor) VisitArray(x *[]Field) error {
	v.writeSeq(*x, '[', ']')
	return nil
}

func (v *toStringVisitor) VisitTuple(x *[]Field) error {
	v.writeSeq(*x, '(', ')')
	return nil
}

func (v *toStringVisitor) VisitUInt128(x *UInt128) error {
	writeQuoted(&v.sb, []byte(FormatUUID(*x)))
	return nil
}

func (v *toStringVisitor) VisitDecimal32(x *decimal.Dec) error {
	v.sb.WriteString(x.String())
	return nil
}

func (v *toStringVisitor) VisitDecimal64(x *decimal.Dec) error {
	v.sb.WriteString(x.String())
	return nil
}

func (v *toStringVisitor) VisitDecimal128(x *decimal.Dec) error {
	v.sb.WriteString(x.String())
	return nil
}

func (v *toStringVisitor) VisitAggregateState(x *AggregateState) error {
	writeQuoted(&v.sb, x.Data)
	return nil
}

func (v *toStringVisitor) writeSeq(elems []Field, open, closing byte) {
	v.sb.WriteByte(open)
	for i := range elems {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		_ = Apply(v, &elems[i])
	}
	v.sb.WriteByte(closing)
}

type dumpVisitor struct {
	sb strings.Builder
}

func (v *dumpVisitor) VisitNull() error {
	v.sb.WriteString("NULL")
	return nil
}

func (v *dumpVisitor) VisitUInt64(x *uint64) error {
	v.sb.WriteString("UInt64_")
	v.sb.WriteString(strconv.FormatUint(*x, 10))
	return nil
}

func (v *dumpVisitor) VisitInt64(x *int64) error {
	v.sb.WriteString("Int64_")
	v.sb.WriteString(strconv.FormatInt(*x, 10))
	return nil
}

func (v *dumpVisitor) VisitFloat64(x *float64) error {
	v.sb.WriteString("Float64_")
	v.sb.WriteString(strconv.FormatFloat(*x, 'g', -1, 64))
	return nil
}

func (v *dumpVisitor) VisitString(x *[]byte) error {
	v.sb.WriteString("String_")
	writeQuoted(&v.sb, *x)
	return nil
}

func (v *dumpVisitor) VisitArray(x *[]Field) error {
	v.sb.WriteString("Array_")
	v.writeSeq(*x, '[', ']')
	return nil
}

func (v *dumpVisitor) VisitTuple(x *[]Field) error {
	v.sb.WriteString("Tuple_")
	v.writeSeq(*x, '(', ')')
	return nil
}

func (v *dumpVisitor) VisitUInt128(x *UInt128) error {
	v.sb.WriteString("UInt128_")
	v.sb.WriteString(FormatUUID(*x))
	return nil
}

func (v *dumpVisitor) VisitDecimal32(x *decimal.Dec) error {
	v.writeDecimal("Decimal32_", x)
	return nil
}

func (v *dumpVisitor) VisitDecimal64(x *decimal.Dec) error {
	v.writeDecimal("Decimal64_", x)
	return nil
}

func (v *dumpVisitor) VisitDecimal128(x *decimal.Dec) error {
	v.writeDecimal("Decimal128_", x)
	return nil
}

func (v *dumpVisitor) VisitAggregateState(x *AggregateState) error {
	v.sb.WriteString("AggregateFunctionState_(")
	v.sb.WriteString(x.Name)
	v.sb.WriteString(", ")
	writeQuoted(&v.sb, x.Data)
	v.sb.WriteByte(')')
	return nil
}

// writeDecimal shows the raw magnitude and the scale, since the rendered
// decimal alone does not distinguish values of different scales.
func (v *dumpVisitor) writeDecimal(prefix string, x *decimal.Dec) {
	v.sb.WriteString(prefix)
	v.sb.WriteByte('(')
	v.sb.WriteString(x.Value.String())
	v.sb.WriteString(", ")
	v.sb.WriteString(strconv.FormatInt(int64(x.Scale), 10))
	v.sb.WriteByte(')')
}

func (v *dumpVisitor) writeSeq(elems []Field, open, closing byte) {
	v.sb.WriteByte(open)
	for i := range elems {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		_ = Apply(v, &elems[i])
	}
	v.sb.WriteByte(closing)
}

// writeQuoted renders data as a single-quoted literal with backslash
// escapes for the quote, the backslash and control characters.
func writeQuoted(sb *strings.Builder, data []byte) {
	sb.WriteByte('\'')
	for _, c := range data {
		switch c {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('\'')
}
