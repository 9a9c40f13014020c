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

import "github.com/quarkdb/quark/go/field/decimal"

// Visitor has one method per kind. Apply invokes the method matching a
// field's active kind, passing a pointer into the field's storage, so a
// visitor that writes through the pointer mutates the original field.
//
// The method set is the complete kind set; adding a kind means adding a
// method here, and the compiler will then flag every visitor that does
// not handle it.
type Visitor interface {
	VisitNull() error
	VisitUInt64(x *uint64) error
	VisitInt64(x *int64) error
	VisitFloat64(x *float64) error
	VisitString(x *[]byte) error
	VisitArray(x *[]Field) error
	VisitTuple(x *[]Field) error
	VisitUInt128(x *UInt128) error
	VisitDecimal32(x *decimal.Dec) error
	VisitDecimal64(x *decimal.Dec) error
	VisitDecimal128(x *decimal.Dec) error
	VisitAggregateState(x *AggregateState) error
}

// Apply dispatches f to the visitor method matching its active kind.
// Two-field operations (AccurateEquals, AccurateLess) resolve both kinds
// with nested switches instead; see compare.go.
func Apply(v Visitor, f *Field) error {
	switch f.kind {
	case KindNull:
		return v.VisitNull()
	case KindUInt64:
		return v.VisitUInt64(&f.uval)
	case KindInt64:
		return v.VisitInt64(&f.ival)
	case KindFloat64:
		return v.VisitFloat64(&f.fval)
	case KindString:
		return v.VisitString(&f.str)
	case KindArray:
		return v.VisitArray(&f.seq)
	case KindTuple:
		return v.VisitTuple(&f.seq)
	case KindUInt128:
		return v.VisitUInt128(&f.u128)
	case KindDecimal32:
		return v.VisitDecimal32(&f.dec)
	case KindDecimal64:
		return v.VisitDecimal64(&f.dec)
	case KindDecimal128:
		return v.VisitDecimal128(&f.dec)
	case KindAggregateState:
		return v.VisitAggregateState(&f.agg)
	}
	panic("field: invalid kind " + f.kind.String())
}
