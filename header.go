package lizard

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lizardpack/lizard/huffman"
)

// A Header is the first record of a compressed stream: the lookback
// window length the stream was encoded against and the code tree for
// its literals.
type Header struct {
	Tree        *huffman.Tree
	MaxLookback uint64
}

// MarshalBinary renders the header: a big-endian uint16 total length
// counting itself, the big-endian uint64 lookback length, then the
// serialized tree.
func (h *Header) MarshalBinary() ([]byte, error) {
	tree, err := h.Tree.MarshalBinary()
	if err != nil {
		return nil, err
	}
	total := headerLenSize + 8 + len(tree)
	if total > math.MaxUint16 {
		return nil, fmt.Errorf("lizard: %d byte header exceeds its length field", total)
	}
	buf := make([]byte, 0, total)
	buf = binary.BigEndian.AppendUint16(buf, uint16(total))
	buf = binary.BigEndian.AppendUint64(buf, h.MaxLookback)
	return append(buf, tree...), nil
}

// parseHeaderBody parses everything after the length field.
func parseHeaderBody(body []byte) (*Header, error) {
	if len(body) < 8+1 {
		return nil, fmt.Errorf("%w: %d byte body", ErrMalformedHeader, len(body))
	}
	tree, err := huffman.UnmarshalTree(body[8:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return &Header{
		Tree:        tree,
		MaxLookback: binary.BigEndian.Uint64(body),
	}, nil
}
