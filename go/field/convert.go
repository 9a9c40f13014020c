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

// Numeric is the closed set of scalar representations that fields convert
// and cast to. It deliberately lists exact types, not type classes: the
// operators over it branch on the concrete destination type.
type Numeric interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// ConvertToNumber returns f viewed as T. UInt64, Int64 and Float64 sources
// convert directly; precision loss between float and integer representations
// is accepted silently. Decimal sources divide the magnitude by the scale
// multiplier, truncating for integral targets. Every other kind fails with
// CannotConvertType.
func ConvertToNumber[T Numeric](f Field) (T, error) {
	switch f.kind {
	case KindUInt64:
		return T(f.uval), nil
	case KindInt64:
		return T(f.ival), nil
	case KindFloat64:
		return T(f.fval), nil
	case KindDecimal32, KindDecimal64, KindDecimal128:
		var zero T
		switch any(zero).(type) {
		case float32, float64:
			return T(f.dec.Float64()), nil
		}
		whole := f.dec.Whole()
		if v, ok := whole.Int64(); ok {
			return T(v), nil
		}
		// The integral part exceeds 64 bits; go through the float
		// representation, accepting the precision loss.
		return T(whole.Float64()), nil
	default:
		var zero T
		return zero, qerrors.Errorf(qerrors.CannotConvertType, "cannot convert %s to %T", f.kind, zero)
	}
}
