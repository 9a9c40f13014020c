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
	"bytes"
	"math"

	"github.com/quarkdb/quark/go/field/decimal"
	"github.com/quarkdb/quark/go/qerrors"
)

// AccurateEquals reports whether l and r are equal under the comparison
// rules of expression evaluation. Unlike a bitwise comparison it crosses
// kinds: mixed signed/unsigned/floating pairs compare without precision
// loss, integers lift into decimals, and a String compares against a
// UInt128 through UUID text.
//
// For pairs with no comparison rule, a Null right-hand side compares
// unequal and everything else fails with BadTypeOfField. A Decimal×Float64
// pair always fails. A String that is not valid UUID text fails with
// CannotConvertType when compared against a UInt128.
func AccurateEquals(l, r Field) (bool, error) {
	switch l.kind {
	case KindNull:
		return r.kind == KindNull, nil

	case KindUInt64:
		switch r.kind {
		case KindUInt64:
			return l.uval == r.uval, nil
		case KindInt64:
			return cmpUint64Int64(l.uval, r.ival) == 0, nil
		case KindFloat64:
			c, ord := cmpUint64Float64(l.uval, r.fval)
			return ord && c == 0, nil
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return decimal.Compare(decimal.FromUint64(l.uval, 0), r.dec) == 0, nil
		}

	case KindInt64:
		switch r.kind {
		case KindUInt64:
			return cmpUint64Int64(r.uval, l.ival) == 0, nil
		case KindInt64:
			return l.ival == r.ival, nil
		case KindFloat64:
			c, ord := cmpInt64Float64(l.ival, r.fval)
			return ord && c == 0, nil
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return decimal.Compare(decimal.FromInt64(l.ival, 0), r.dec) == 0, nil
		}

	case KindFloat64:
		switch r.kind {
		case KindUInt64:
			c, ord := cmpUint64Float64(r.uval, l.fval)
			return ord && c == 0, nil
		case KindInt64:
			c, ord := cmpInt64Float64(r.ival, l.fval)
			return ord && c == 0, nil
		case KindFloat64:
			return l.fval == r.fval, nil
		}

	case KindString:
		switch r.kind {
		case KindString:
			return bytes.Equal(l.str, r.str), nil
		case KindUInt128:
			u, err := ParseUUID(string(l.str))
			if err != nil {
				return false, err
			}
			return u == r.u128, nil
		}

	case KindUInt128:
		switch r.kind {
		case KindUInt128:
			return l.u128 == r.u128, nil
		case KindString:
			u, err := ParseUUID(string(r.str))
			if err != nil {
				return false, err
			}
			return l.u128 == u, nil
		}

	case KindArray:
		if r.kind == KindArray {
			return sequencesEqual(l.seq, r.seq)
		}

	case KindTuple:
		if r.kind == KindTuple {
			return sequencesEqual(l.seq, r.seq)
		}

	case KindDecimal32, KindDecimal64, KindDecimal128:
		switch r.kind {
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return decimal.Compare(l.dec, r.dec) == 0, nil
		case KindUInt64:
			return decimal.Compare(l.dec, decimal.FromUint64(r.uval, 0)) == 0, nil
		case KindInt64:
			return decimal.Compare(l.dec, decimal.FromInt64(r.ival, 0)) == 0, nil
		}

	case KindAggregateState:
		if r.kind == KindAggregateState {
			return l.agg.Name == r.agg.Name && bytes.Equal(l.agg.Data, r.agg.Data), nil
		}
	}

	// No rule for this pair: unequal to Null, an error against anything else.
	if r.kind == KindNull {
		return false, nil
	}
	return false, errCantCompare(l.kind, r.kind)
}

// AccurateLess reports whether l orders before r under the same rules as
// AccurateEquals. Null orders before every non-Null value. Pairs with no
// ordering rule fail with BadTypeOfField, including x < Null for non-Null
// x, and AggregateFunctionState against anything. "Not equal" is a safe
// answer for an unordered pair; an arbitrary ordering is not.
//
// One asymmetry is kept from the expression-evaluation rules: Float64 on
// the left of a decimal reports false instead of failing, while a decimal
// on the left of a Float64 fails.
func AccurateLess(l, r Field) (bool, error) {
	switch l.kind {
	case KindNull:
		return r.kind != KindNull, nil

	case KindUInt64:
		switch r.kind {
		case KindUInt64:
			return l.uval < r.uval, nil
		case KindInt64:
			return cmpUint64Int64(l.uval, r.ival) < 0, nil
		case KindFloat64:
			c, ord := cmpUint64Float64(l.uval, r.fval)
			return ord && c < 0, nil
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return decimal.Compare(decimal.FromUint64(l.uval, 0), r.dec) < 0, nil
		}

	case KindInt64:
		switch r.kind {
		case KindUInt64:
			return cmpUint64Int64(r.uval, l.ival) > 0, nil
		case KindInt64:
			return l.ival < r.ival, nil
		case KindFloat64:
			c, ord := cmpInt64Float64(l.ival, r.fval)
			return ord && c < 0, nil
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return decimal.Compare(decimal.FromInt64(l.ival, 0), r.dec) < 0, nil
		}

	case KindFloat64:
		switch r.kind {
		case KindUInt64:
			c, ord := cmpUint64Float64(r.uval, l.fval)
			return ord && c > 0, nil
		case KindInt64:
			c, ord := cmpInt64Float64(r.ival, l.fval)
			return ord && c > 0, nil
		case KindFloat64:
			return l.fval < r.fval, nil
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return false, nil
		}

	case KindString:
		switch r.kind {
		case KindString:
			return bytes.Compare(l.str, r.str) < 0, nil
		case KindUInt128:
			u, err := ParseUUID(string(l.str))
			if err != nil {
				return false, err
			}
			return u.Cmp(r.u128) < 0, nil
		}

	case KindUInt128:
		switch r.kind {
		case KindUInt128:
			return l.u128.Cmp(r.u128) < 0, nil
		case KindString:
			u, err := ParseUUID(string(r.str))
			if err != nil {
				return false, err
			}
			return l.u128.Cmp(u) < 0, nil
		}

	case KindArray:
		if r.kind == KindArray {
			return sequenceLess(l.seq, r.seq)
		}

	case KindTuple:
		if r.kind == KindTuple {
			return sequenceLess(l.seq, r.seq)
		}

	case KindDecimal32, KindDecimal64, KindDecimal128:
		switch r.kind {
		case KindDecimal32, KindDecimal64, KindDecimal128:
			return decimal.Compare(l.dec, r.dec) < 0, nil
		case KindUInt64:
			return decimal.Compare(l.dec, decimal.FromUint64(r.uval, 0)) < 0, nil
		case KindInt64:
			return decimal.Compare(l.dec, decimal.FromInt64(r.ival, 0)) < 0, nil
		}

	case KindAggregateState:
		// Aggregate states are never ordered, not even against each other.
	}

	return false, errCantCompare(l.kind, r.kind)
}

func errCantCompare(l, r Kind) error {
	return qerrors.Errorf(qerrors.BadTypeOfField, "cannot compare %s with %s", l, r)
}

func sequencesEqual(a, b []Field) (bool, error) {
	if len(a) != len(b) {
		return false, nil
	}
	for i := range a {
		eq, err := AccurateEquals(a[i], b[i])
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

// sequenceLess orders element-wise, each element pair compared with the
// accurate rules; a strict prefix orders before its extension.
func sequenceLess(a, b []Field) (bool, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		eq, err := AccurateEquals(a[i], b[i])
		if err != nil {
			return false, err
		}
		if !eq {
			return AccurateLess(a[i], b[i])
		}
	}
	return len(a) < len(b), nil
}

const (
	two63 = 1 << 63
	two64 = 1 << 64
)

// cmpUint64Int64 compares u and i exactly, without converting either side
// into the other's representation.
func cmpUint64Int64(u uint64, i int64) int {
	if i < 0 {
		return 1
	}
	return cmpOrdered(u, uint64(i))
}

// cmpUint64Float64 compares u and f exactly. The second result is false
// when the pair is unordered (f is NaN).
func cmpUint64Float64(u uint64, f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f < 0:
		return 1, true
	case f >= two64:
		return -1, true
	}
	// f is in [0, 2^64): its integral part fits in uint64 exactly.
	t := math.Trunc(f)
	if c := cmpOrdered(u, uint64(t)); c != 0 {
		return c, true
	}
	if t < f {
		return -1, true
	}
	return 0, true
}

// cmpInt64Float64 compares i and f exactly. The second result is false
// when the pair is unordered (f is NaN).
func cmpInt64Float64(i int64, f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= two63:
		return -1, true
	case f < -two63:
		return 1, true
	}
	// f is in [-2^63, 2^63): its integral part fits in int64 exactly.
	t := math.Trunc(f)
	if c := cmpOrdered(i, int64(t)); c != 0 {
		return c, true
	}
	// Equal integral parts: the fraction decides. Trunc rounds toward
	// zero, so t < f for positive fractions and t > f for negative ones.
	switch {
	case t < f:
		return -1, true
	case t > f:
		return 1, true
	}
	return 0, true
}

func cmpOrdered[T uint64 | int64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
