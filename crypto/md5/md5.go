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

// Package md5 implements a streaming MD5 digest engine as defined in RFC 1321.
//
// A Hasher absorbs input through any number of Update calls and produces the
// 16 byte digest once through Finalize. MD5 is cryptographically broken and
// must not be used where collision resistance matters.
package md5

import (
	"errors"
	"hash"

	"github.com/ethereum/go-md5/log"
)

// Size is the size of an MD5 digest in bytes.
const Size = 16

// BlockSize is the size of an MD5 input block in bytes.
const BlockSize = 64

// ErrInvalidState is returned when a finalized Hasher is used again.
var ErrInvalidState = errors.New("md5: hasher already finalized")

// Hasher is a single-use streaming MD5 engine. It is not safe for concurrent
// use; independent instances share no mutable state.
type Hasher struct {
	s      state
	x      [BlockSize]byte // pending bytes not yet forming a block
	nx     int
	len    uint64 // bytes consumed by compressed blocks
	blocks uint64
	done   bool
	sum    [Size]byte

	cfg Config
	log log.Logger
}

var _ hash.Hash = (*Hasher)(nil)

// New creates a Hasher with the registers set to their initial values.
func New(opts ...Option) *Hasher {
	h := &Hasher{
		cfg: DefaultConfig,
		log: log.Root(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.cfg.Label != "" {
		h.log = h.log.New("hasher", h.cfg.Label)
	}
	h.Reset()
	return h
}

// Update absorbs p, compressing every block that becomes complete. Bytes
// that do not fill a block stay pending until the next call.
func (h *Hasher) Update(p []byte) error {
	if h.done {
		return ErrInvalidState
	}
	if h.nx > 0 {
		n := copy(h.x[h.nx:], p)
		h.nx += n
		p = p[n:]
		if h.nx < BlockSize {
			return nil
		}
		h.process(h.x[:])
		h.nx = 0
	}
	for len(p) >= BlockSize {
		h.process(p[:BlockSize])
		p = p[BlockSize:]
	}
	h.nx = copy(h.x[:], p)
	return nil
}

func (h *Hasher) process(p []byte) {
	x := decodeBlock(p)
	compress(&h.s, &x)
	h.len += BlockSize
	h.blocks++
	if h.cfg.TraceBlocks {
		h.log.Trace("Compressed block", "index", h.blocks-1, "bytes", h.len)
	}
}

// Finalize pads the pending input, compresses the padding blocks and returns
// the digest. The Hasher rejects any further Update or Finalize.
func (h *Hasher) Finalize() ([Size]byte, error) {
	if h.done {
		return [Size]byte{}, ErrInvalidState
	}
	total := h.len + uint64(h.nx)
	padblocks := h.finish()
	h.done = true
	h.sum = h.s.bytes()

	h.log.Debug("Finalized digest", "bytes", total, "blocks", h.blocks+uint64(padblocks), "padblocks", padblocks)
	return h.sum, nil
}

// finish compresses the padding blocks into the registers and reports how
// many there were.
func (h *Hasher) finish() int {
	padded := pad(h.x[:h.nx], h.len+uint64(h.nx))
	for i := range padded {
		x := decodeBlock(padded[i][:])
		compress(&h.s, &x)
	}
	return len(padded)
}

// Write implements io.Writer on top of Update.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the digest of the input absorbed so far to b. Unlike Finalize
// it leaves the Hasher untouched, so writing may continue afterwards.
func (h *Hasher) Sum(b []byte) []byte {
	if h.done {
		return append(b, h.sum[:]...)
	}
	d := *h
	d.finish()
	sum := d.s.bytes()
	return append(b, sum[:]...)
}

// Reset returns the Hasher to its initial state, clearing finalization.
func (h *Hasher) Reset() {
	h.s = initState
	h.x = [BlockSize]byte{}
	h.nx = 0
	h.len = 0
	h.blocks = 0
	h.done = false
	h.sum = [Size]byte{}
}

// Size returns the number of bytes Sum will append.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (h *Hasher) BlockSize() int { return BlockSize }

// Digest returns the MD5 digest of data.
func Digest(data []byte) [Size]byte {
	return DigestChunks(data)
}

// DigestChunks returns the MD5 digest of the concatenation of chunks.
func DigestChunks(chunks ...[]byte) [Size]byte {
	h := New()
	for _, c := range chunks {
		h.Update(c)
	}
	sum, _ := h.Finalize()
	return sum
}
