package huffman

import (
	"encoding/binary"
	"fmt"
)

// Pack appends the coded form of literals to dst, followed by the
// end-of-stream code, and returns the extended slice. Codes fill a
// 64-bit group from the most significant bit down; each full group is
// flushed as eight big-endian bytes and the final partial group is
// flushed to a byte boundary, zero padded.
func (m *CodeMap) Pack(dst []byte, literals []byte) ([]byte, error) {
	var (
		acc       uint64
		remaining uint = 64
	)
	put := func(c Bits) {
		n := uint(c.Len)
		if n <= remaining {
			remaining -= n
			acc |= c.Pattern << remaining
			return
		}
		// The code straddles a group boundary: its high bits finish
		// the current group, its low bits start the next one at the
		// top.
		spill := n - remaining
		acc |= c.Pattern >> spill
		dst = appendGroup(dst, acc, 8)
		remaining = 64 - spill
		acc = c.Pattern << remaining
	}
	for _, b := range literals {
		c := m.codes[b]
		if c.Len == 0 {
			return dst, fmt.Errorf("%w 0x%02x", ErrMissingCode, b)
		}
		put(c)
	}
	put(m.end)
	if remaining < 64 {
		dst = appendGroup(dst, acc, (64-remaining+7)/8)
	}
	return dst, nil
}

func appendGroup(dst []byte, acc uint64, n uint) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], acc)
	return append(dst, buf[:n]...)
}

// An Unpacker decodes a packed bit stream one byte at a time. It keeps
// its position in the tree between calls, so a code may straddle any
// number of input boundaries.
type Unpacker struct {
	tree *Tree
	pos  *node
	done bool
}

// NewUnpacker returns an Unpacker positioned at the root of t.
func NewUnpacker(t *Tree) *Unpacker {
	return &Unpacker{tree: t, pos: t.root}
}

// Feed consumes one packed byte, most significant bit first, appending
// any completed literals to dst. Once the end-of-stream code has been
// seen all further bits are padding and are discarded.
func (u *Unpacker) Feed(dst []byte, b byte) []byte {
	if u.done {
		return dst
	}
	for i := 7; i >= 0; i-- {
		if b>>uint(i)&1 == 0 {
			u.pos = u.pos.left
		} else {
			u.pos = u.pos.right
		}
		switch u.pos.kind {
		case nodeLeaf:
			dst = append(dst, u.pos.value)
			u.pos = u.tree.root
		case nodeEnd:
			u.done = true
			return dst
		}
	}
	return dst
}

// Done reports whether the end-of-stream code has been decoded.
func (u *Unpacker) Done() bool { return u.done }

// Reset rewinds the Unpacker to the root of the tree for a new stream.
func (u *Unpacker) Reset() {
	u.pos = u.tree.root
	u.done = false
}
