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
	"github.com/quarkdb/quark/go/qerrors"
)

// Cast converts f to the numeric representation T, verifying that the
// conversion is exact: the result must compare equal to the source value
// under precision-safe comparison, which detects truncation, overflow and
// float precision loss. A lossy conversion fails with
// ValueIsOutOfRangeOfDataType; a source kind with no conversion path to T
// at all (anything but UInt64, Int64 and Float64; Cast is strictly
// narrower than general parsing) fails with TypeMismatch. The same
// source/destination pair can therefore succeed for one value and fail
// for another.
func Cast[T Numeric](f Field) (T, error) {
	var dest T
	var ok bool
	switch f.kind {
	case KindUInt64:
		dest, ok = castFromUint64[T](f.uval)
	case KindInt64:
		dest, ok = castFromInt64[T](f.ival)
	case KindFloat64:
		dest, ok = castFromFloat64[T](f.fval)
	default:
		return dest, qerrors.Errorf(qerrors.TypeMismatch, "cannot cast field of type %s to %T", f.kind, dest)
	}
	if !ok {
		var zero T
		return zero, qerrors.Errorf(qerrors.ValueIsOutOfRangeOfDataType,
			"cannot cast field value %s of type %s to %T", ToString(f), f.kind, zero)
	}
	return dest, nil
}

func castFromUint64[T Numeric](v uint64) (T, bool) {
	dest := T(v)
	switch d := any(dest).(type) {
	case uint8:
		return dest, uint64(d) == v
	case uint16:
		return dest, uint64(d) == v
	case uint32:
		return dest, uint64(d) == v
	case uint64:
		return dest, d == v
	case int8:
		return dest, cmpUint64Int64(v, int64(d)) == 0
	case int16:
		return dest, cmpUint64Int64(v, int64(d)) == 0
	case int32:
		return dest, cmpUint64Int64(v, int64(d)) == 0
	case int64:
		return dest, cmpUint64Int64(v, d) == 0
	case float32:
		c, ord := cmpUint64Float64(v, float64(d))
		return dest, ord && c == 0
	case float64:
		c, ord := cmpUint64Float64(v, d)
		return dest, ord && c == 0
	}
	return dest, false
}

func castFromInt64[T Numeric](v int64) (T, bool) {
	dest := T(v)
	switch d := any(dest).(type) {
	case uint8:
		return dest, cmpUint64Int64(uint64(d), v) == 0
	case uint16:
		return dest, cmpUint64Int64(uint64(d), v) == 0
	case uint32:
		return dest, cmpUint64Int64(uint64(d), v) == 0
	case uint64:
		return dest, cmpUint64Int64(d, v) == 0
	case int8:
		return dest, int64(d) == v
	case int16:
		return dest, int64(d) == v
	case int32:
		return dest, int64(d) == v
	case int64:
		return dest, d == v
	case float32:
		c, ord := cmpInt64Float64(v, float64(d))
		return dest, ord && c == 0
	case float64:
		c, ord := cmpInt64Float64(v, d)
		return dest, ord && c == 0
	}
	return dest, false
}

func castFromFloat64[T Numeric](v float64) (T, bool) {
	// Go defines float-to-integer conversion of an out-of-range value as
	// implementation-dependent rather than trapping; whatever comes out,
	// the round-trip comparison below rejects it.
	dest := T(v)
	switch d := any(dest).(type) {
	case uint8:
		c, ord := cmpUint64Float64(uint64(d), v)
		return dest, ord && c == 0
	case uint16:
		c, ord := cmpUint64Float64(uint64(d), v)
		return dest, ord && c == 0
	case uint32:
		c, ord := cmpUint64Float64(uint64(d), v)
		return dest, ord && c == 0
	case uint64:
		c, ord := cmpUint64Float64(d, v)
		return dest, ord && c == 0
	case int8:
		c, ord := cmpInt64Float64(int64(d), v)
		return dest, ord && c == 0
	case int16:
		c, ord := cmpInt64Float64(int64(d), v)
		return dest, ord && c == 0
	case int32:
		c, ord := cmpInt64Float64(int64(d), v)
		return dest, ord && c == 0
	case int64:
		c, ord := cmpInt64Float64(d, v)
		return dest, ord && c == 0
	case float32:
		return dest, float64(d) == v
	case float64:
		return dest, d == v
	}
	return dest, false
}
