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
	"encoding/binary"
	"math/bits"
)

// state holds the A, B, C and D registers.
type state [4]uint32

// block is one 512 bit unit of input as sixteen little-endian words.
type block [16]uint32

var initState = state{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// table holds the round constants T[i] = floor(abs(sin(i+1)) * 2^32).
var table = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,

	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,

	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,

	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// round identifies one of the four 16-step phases of the compression
// function.
type round int

const (
	round1 round = iota
	round2
	round3
	round4
)

// shifts holds the left-rotate amounts of each round, cycling every four
// steps. All amounts are below 32.
var shifts = [4][4]int{
	round1: {7, 12, 17, 22},
	round2: {5, 9, 14, 20},
	round3: {4, 11, 16, 23},
	round4: {6, 10, 15, 21},
}

// roundOf returns the round that step i (0-63) belongs to.
func roundOf(i int) round {
	return round(i / 16)
}

// mix applies the round's selection function F, G, H or I.
func (r round) mix(x, y, z uint32) uint32 {
	switch r {
	case round1:
		return (x & y) | (^x & z)
	case round2:
		return (x & z) | (y &^ z)
	case round3:
		return x ^ y ^ z
	default:
		return y ^ (x | ^z)
	}
}

// word returns the index of the message word consumed by step i.
func (r round) word(i int) int {
	switch r {
	case round1:
		return i % 16
	case round2:
		return (1 + 5*i) % 16
	case round3:
		return (5 + 3*i) % 16
	default:
		return (7 * i) % 16
	}
}

// shift returns the rotation amount of step i.
func (r round) shift(i int) int {
	return shifts[r][i%4]
}

// decodeBlock reads sixteen little-endian words from p, which must hold at
// least BlockSize bytes.
func decodeBlock(p []byte) (x block) {
	_ = p[BlockSize-1] // bounds check hint to compiler
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[4*i:])
	}
	return x
}

// compress folds a single block into the running state.
func compress(s *state, x *block) {
	a, b, c, d := s[0], s[1], s[2], s[3]
	for i := 0; i < 64; i++ {
		r := roundOf(i)
		t := a + r.mix(b, c, d) + x[r.word(i)] + table[i]
		a, b, c, d = d, b+bits.RotateLeft32(t, r.shift(i)), b, c
	}
	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}

// bytes serializes the registers in A, B, C, D order, each little-endian.
func (s *state) bytes() (out [Size]byte) {
	for i, v := range s {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
	return out
}
