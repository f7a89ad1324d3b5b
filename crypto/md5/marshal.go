// Copyright 2026 The go-md5 Authors
// This file is part of the go-md5 library.
//
// The go-md5 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-md5 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-md5 library. If not, see <http://www.gnu.org/licenses/>.

package md5

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidCheckpoint is returned when a marshaled Hasher state is malformed.
var ErrInvalidCheckpoint = errors.New("md5: invalid checkpoint")

// Checkpoint layout: magic | A B C D | pending block | total byte count.
const (
	magic          = "md5\x01"
	checkpointSize = len(magic) + 4*4 + BlockSize + 8
)

var (
	_ encoding.BinaryMarshaler   = (*Hasher)(nil)
	_ encoding.BinaryUnmarshaler = (*Hasher)(nil)
)

// MarshalBinary captures an unfinalized Hasher so hashing can be resumed
// later, possibly by another process.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	if h.done {
		return nil, ErrInvalidState
	}
	b := make([]byte, 0, checkpointSize)
	b = append(b, magic...)
	for _, v := range h.s {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	b = append(b, h.x[:h.nx]...)
	b = b[:len(b)+BlockSize-h.nx] // already zero
	b = binary.LittleEndian.AppendUint64(b, h.len+uint64(h.nx))
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. The receiver
// must not be finalized.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	if h.done {
		return ErrInvalidState
	}
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return fmt.Errorf("%w: unknown identifier", ErrInvalidCheckpoint)
	}
	if len(b) != checkpointSize {
		return fmt.Errorf("%w: size %d, want %d", ErrInvalidCheckpoint, len(b), checkpointSize)
	}
	b = b[len(magic):]
	for i := range h.s {
		h.s[i] = binary.LittleEndian.Uint32(b)
		b = b[4:]
	}
	b = b[copy(h.x[:], b):]
	total := binary.LittleEndian.Uint64(b)
	h.nx = int(total % BlockSize)
	h.len = total - uint64(h.nx)
	h.blocks = h.len / BlockSize
	return nil
}
