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
	"github.com/quarkdb/quark/go/field/decimal"
	"github.com/quarkdb/quark/go/qerrors"
)

// Sum adds src into dst in place and reports whether the result is
// nonzero, letting accumulator callers prune zero-valued entries. Both
// fields must hold the same numeric kind; decimals must also agree on
// scale. Non-numeric kinds fail with LogicalError. This is the one
// operation in the package that mutates a field.
func Sum(dst *Field, src Field) (bool, error) {
	v := sumVisitor{rhs: src}
	if err := Apply(&v, dst); err != nil {
		return false, err
	}
	return v.nonzero, nil
}

type sumVisitor struct {
	rhs     Field
	nonzero bool
}

func (v *sumVisitor) operand(k Kind) error {
	if v.rhs.kind != k {
		return qerrors.Errorf(qerrors.LogicalError, "cannot sum %s with %s", k, v.rhs.kind)
	}
	return nil
}

func errCantSum(k Kind) error {
	return qerrors.Errorf(qerrors.LogicalError, "cannot sum %s fields", k)
}

func (v *sumVisitor) VisitUInt64(x *uint64) error {
	if err := v.operand(KindUInt64); err != nil {
		return err
	}
	*x += v.rhs.uval
	v.nonzero = *x != 0
	return nil
}

func (v *sumVisitor) VisitInt64(x *int64) error {
	if err := v.operand(KindInt64); err != nil {
		return err
	}
	*x += v.rhs.ival
	v.nonzero = *x != 0
	return nil
}

func (v *sumVisitor) VisitFloat64(x *float64) error {
	if err := v.operand(KindFloat64); err != nil {
		return err
	}
	*x += v.rhs.fval
	v.nonzero = *x != 0
	return nil
}

func (v *sumVisitor) VisitDecimal32(x *decimal.Dec) error {
	return v.addDecimal(KindDecimal32, x)
}

func (v *sumVisitor) VisitDecimal64(x *decimal.Dec) error {
	return v.addDecimal(KindDecimal64, x)
}

func (v *sumVisitor) VisitDecimal128(x *decimal.Dec) error {
	return v.addDecimal(KindDecimal128, x)
}

func (v *sumVisitor) addDecimal(k Kind, x *decimal.Dec) error {
	if err := v.operand(k); err != nil {
		return err
	}
	rhs := v.rhs.dec
	if rhs.Scale != x.Scale {
		return qerrors.Errorf(qerrors.LogicalError, "cannot sum decimals with scales %d and %d", x.Scale, rhs.Scale)
	}
	sum, ok := decimal.Add(*x, rhs)
	if ok {
		switch k {
		case KindDecimal32:
			_, ok = sum.Value.Int32()
		case KindDecimal64:
			_, ok = sum.Value.Int64()
		}
	}
	if !ok {
		return qerrors.Errorf(qerrors.ValueIsOutOfRangeOfDataType, "decimal sum overflows %s", k)
	}
	*x = sum
	v.nonzero = !sum.IsZero()
	return nil
}

func (v *sumVisitor) VisitNull() error                   { return errCantSum(KindNull) }
func (v *sumVisitor) VisitString(*[]byte) error          { return errCantSum(KindString) }
func (v *sumVisitor) VisitArray(*[]Field) error          { return errCantSum(KindArray) }
func (v *sumVisitor) VisitTuple(*[]Field) error          { return errCantSum(KindTuple) }
func (v *sumVisitor) VisitUInt128(*UInt128) error        { return errCantSum(KindUInt128) }
func (v *sumVisitor) VisitAggregateState(*AggregateState) error {
	return errCantSum(KindAggregateState)
}
