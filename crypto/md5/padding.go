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

import "encoding/binary"

// lengthSize is the width of the bit-length trailer.
const lengthSize = 8

// pad returns the final one or two blocks of a message: the unprocessed
// tail of pending, a 0x80 marker, zero fill and the little-endian bit
// length of a total byte count. Only the last len(pending)%BlockSize bytes
// of pending are used.
func pad(pending []byte, total uint64) [][BlockSize]byte {
	r := len(pending) % BlockSize
	zeros := (BlockSize + 55 - r) % BlockSize

	var tmp [2 * BlockSize]byte
	copy(tmp[:], pending[len(pending)-r:])
	tmp[r] = 0x80
	end := r + 1 + zeros + lengthSize
	binary.LittleEndian.PutUint64(tmp[end-lengthSize:end], total<<3)

	blocks := make([][BlockSize]byte, end/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], tmp[i*BlockSize:])
	}
	return blocks
}
