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
	"encoding/binary"
	"math"

	"github.com/quarkdb/quark/go/field/decimal"
)

// Hasher is the incremental hash accumulator Hash feeds. qhash.Hasher and
// any hash.Hash satisfy it. Implementations must not fail; write errors
// are ignored.
type Hasher interface {
	Write(p []byte) (int, error)
}

// Hash mixes the kind tag and the raw content of f into h. Two fields are
// guaranteed to hash identically only when they are bit-identical in kind
// and content; hash equality is strictly narrower than AccurateEquals.
func Hash(f Field, h Hasher) {
	v := hashVisitor{h: h}
	_ = Apply(&v, &f)
}

type hashVisitor struct {
	h Hasher
}

func (v *hashVisitor) tag(k Kind) {
	_, _ = v.h.Write([]byte{byte(k)})
}

func (v *hashVisitor) writeUint32(u uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], u)
	_, _ = v.h.Write(buf[:])
}

func (v *hashVisitor) writeUint64(u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = v.h.Write(buf[:])
}

func (v *hashVisitor) writeBytes(b []byte) {
	v.writeUint64(uint64(len(b)))
	_, _ = v.h.Write(b)
}

func (v *hashVisitor) VisitNull() error {
	v.tag(KindNull)
	return nil
}

func (v *hashVisitor) VisitUInt64(x *uint64) error {
	v.tag(KindUInt64)
	v.writeUint64(*x)
	return nil
}

func (v *hashVisitor) VisitInt64(x *int64) error {
	v.tag(KindInt64)
	v.writeUint64(uint64(*x))
	return nil
}

func (v *hashVisitor) VisitFloat64(x *float64) error {
	v.tag(KindFloat64)
	v.writeUint64(math.Float64bits(*x))
	return nil
}

func (v *hashVisitor) VisitString(x *[]byte) error {
	v.tag(KindString)
	v.writeBytes(*x)
	return nil
}

func (v *hashVisitor) VisitArray(x *[]Field) error {
	v.seq(KindArray, *x)
	return nil
}

func (v *hashVisitor) VisitTuple(x *[]Field) error {
	v.seq(KindTuple, *x)
	return nil
}

func (v *hashVisitor) VisitUInt128(x *UInt128) error {
	v.tag(KindUInt128)
	v.writeUint64(x.Hi)
	v.writeUint64(x.Lo)
	return nil
}

func (v *hashVisitor) VisitDecimal32(x *decimal.Dec) error {
	v.dec(KindDecimal32, x)
	return nil
}

func (v *hashVisitor) VisitDecimal64(x *decimal.Dec) error {
	v.dec(KindDecimal64, x)
	return nil
}

func (v *hashVisitor) VisitDecimal128(x *decimal.Dec) error {
	v.dec(KindDecimal128, x)
	return nil
}

func (v *hashVisitor) VisitAggregateState(x *AggregateState) error {
	v.tag(KindAggregateState)
	v.writeBytes([]byte(x.Name))
	v.writeBytes(x.Data)
	return nil
}

func (v *hashVisitor) seq(k Kind, elems []Field) {
	v.tag(k)
	v.writeUint64(uint64(len(elems)))
	for i := range elems {
		_ = Apply(v, &elems[i])
	}
}

// dec includes the scale: decimals of equal magnitude but different scales
// are different values.
func (v *hashVisitor) dec(k Kind, x *decimal.Dec) {
	v.tag(k)
	v.writeUint32(uint32(x.Scale))
	v.writeUint64(x.Value.Hi())
	v.writeUint64(x.Value.Lo())
}
