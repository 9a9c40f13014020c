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

package qerrors

// Code classifies an error.
type Code int32

// All the error codes.
const (
	OK Code = iota
	Unknown

	// CannotConvertType means the source kind has no numeric or canonical
	// interpretation for the requested coercion.
	CannotConvertType

	// BadTypeOfField means a comparison was attempted between kinds that
	// are not comparable.
	BadTypeOfField

	// TypeMismatch means a cast was attempted with no conversion path
	// between the representations.
	TypeMismatch

	// ValueIsOutOfRangeOfDataType means a cast's value does not survive an
	// exact round trip through the destination representation.
	ValueIsOutOfRangeOfDataType

	// LogicalError marks a violation of a programming contract, not a data
	// problem.
	LogicalError
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case CannotConvertType:
		return "CannotConvertType"
	case BadTypeOfField:
		return "BadTypeOfField"
	case TypeMismatch:
		return "TypeMismatch"
	case ValueIsOutOfRangeOfDataType:
		return "ValueIsOutOfRangeOfDataType"
	case LogicalError:
		return "LogicalError"
	default:
		return "Unknown"
	}
}
