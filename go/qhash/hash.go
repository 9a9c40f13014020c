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

// Package qhash provides the incremental hash accumulator used for field
// hashing and hash-based containers. It is a thin wrapper around xxhash;
// a Hasher is not safe for concurrent use.
package qhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates bytes and produces a 64-bit hash.
type Hasher struct {
	d *xxhash.Digest
}

// New returns an empty Hasher.
func New() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Write adds p to the running hash. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.d.Write(p)
}

// WriteString adds s to the running hash.
func (h *Hasher) WriteString(s string) {
	_, _ = h.d.WriteString(s)
}

// WriteUint8 adds a single byte to the running hash.
func (h *Hasher) WriteUint8(b byte) {
	_, _ = h.d.Write([]byte{b})
}

// WriteUint16 adds u in little-endian order to the running hash.
func (h *Hasher) WriteUint16(u uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], u)
	_, _ = h.d.Write(buf[:])
}

// WriteUint32 adds u in little-endian order to the running hash.
func (h *Hasher) WriteUint32(u uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], u)
	_, _ = h.d.Write(buf[:])
}

// WriteUint64 adds u in little-endian order to the running hash.
func (h *Hasher) WriteUint64(u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	_, _ = h.d.Write(buf[:])
}

// Sum64 returns the hash of everything written so far. It does not change
// the accumulator state.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

// Reset restores the Hasher to its initial state.
func (h *Hasher) Reset() {
	h.d.Reset()
}
