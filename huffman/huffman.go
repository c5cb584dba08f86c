// Package huffman builds prefix-code models for byte streams and packs
// and unpacks bit streams against them. Every model carries one extra
// leaf beyond the byte alphabet, the end-of-stream marker, so a packed
// stream is self-terminating.
package huffman

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrEmptyModel is returned by Build when the frequency table holds
	// no counted bytes at all.
	ErrEmptyModel = errors.New("huffman: empty frequency model")

	// ErrMissingCode is returned when a byte has no code in the model,
	// which means the model was built from a different stream.
	ErrMissingCode = errors.New("huffman: no code for byte")

	// ErrCodeTooLong is returned when a code would exceed 64 bits. It
	// takes Fibonacci-skewed counts over an enormous stream to get a
	// tree that deep.
	ErrCodeTooLong = errors.New("huffman: code exceeds 64 bits")
)

// A FreqTable counts how often each byte value occurs in a stream. It
// implements io.Writer, so a source can be counted with io.Copy.
type FreqTable [256]uint64

func (t *FreqTable) Write(p []byte) (int, error) {
	for _, b := range p {
		t[b]++
	}
	return len(p), nil
}

// Total returns the number of bytes counted so far.
func (t *FreqTable) Total() uint64 {
	var n uint64
	for _, c := range t {
		n += c
	}
	return n
}

type nodeKind uint8

const (
	nodeInternal nodeKind = iota
	nodeLeaf
	nodeEnd
)

// A node is one vertex of a code tree: an internal node with two
// children, a leaf carrying a byte value, or the end-of-stream leaf.
type node struct {
	kind        nodeKind
	value       byte
	left, right *node
}

func (n *node) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}

// A Tree is a prefix-code tree over the byte values of one stream plus a
// single end-of-stream leaf. Build grows one from a FreqTable;
// UnmarshalTree reads one back from its serialized form.
type Tree struct {
	root *node
}

// Size returns the number of nodes in the tree, counting leaves, the
// end-of-stream leaf and internal nodes.
func (t *Tree) Size() int { return t.root.size() }

// Build constructs the code tree for t. Equal inputs always produce
// equal trees: ties between equal weights break toward the earlier
// queued node, and leaves are queued in ascending byte order. The
// end-of-stream leaf is paired with the rarest byte before any merging,
// so its code sits among the longest, and it adds no weight of its own.
func Build(t *FreqTable) (*Tree, error) {
	h := make(buildHeap, 0, 257)
	seq := 0
	for b := 0; b < 256; b++ {
		if t[b] == 0 {
			continue
		}
		h = append(h, buildItem{
			n:      &node{kind: nodeLeaf, value: byte(b)},
			weight: t[b],
			seq:    seq,
		})
		seq++
	}
	if len(h) == 0 {
		return nil, ErrEmptyModel
	}
	heap.Init(&h)

	first := heap.Pop(&h).(buildItem)
	heap.Push(&h, buildItem{
		n:      &node{kind: nodeInternal, left: first.n, right: &node{kind: nodeEnd}},
		weight: first.weight,
		seq:    seq,
	})
	seq++

	for h.Len() > 1 {
		a := heap.Pop(&h).(buildItem)
		b := heap.Pop(&h).(buildItem)
		heap.Push(&h, buildItem{
			n:      &node{kind: nodeInternal, left: a.n, right: b.n},
			weight: a.weight + b.weight,
			seq:    seq,
		})
		seq++
	}
	return &Tree{root: heap.Pop(&h).(buildItem).n}, nil
}

type buildItem struct {
	n      *node
	weight uint64
	seq    int
}

type buildHeap []buildItem

func (h buildHeap) Len() int { return len(h) }

func (h buildHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h buildHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *buildHeap) Push(x interface{}) { *h = append(*h, x.(buildItem)) }

func (h *buildHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Bits is a single prefix code: the low Len bits of Pattern, most
// significant code bit first.
type Bits struct {
	Pattern uint64
	Len     uint8
}

// String renders the code as its bit string.
func (b Bits) String() string {
	if b.Len == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(b.Len), b.Pattern)
}

// A CodeMap assigns a code to every byte present in a model, plus the
// end-of-stream code. Bytes outside the model have no code.
type CodeMap struct {
	codes [256]Bits
	end   Bits
}

// NewCodeMap derives the code table from t by a preorder walk: a left
// edge appends a 0 bit, a right edge a 1 bit.
func NewCodeMap(t *Tree) (*CodeMap, error) {
	m := new(CodeMap)
	if err := m.walk(t.root, Bits{}); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *CodeMap) walk(n *node, prefix Bits) error {
	switch n.kind {
	case nodeLeaf:
		m.codes[n.value] = prefix
	case nodeEnd:
		m.end = prefix
	case nodeInternal:
		if prefix.Len == 64 {
			return ErrCodeTooLong
		}
		if err := m.walk(n.left, Bits{Pattern: prefix.Pattern << 1, Len: prefix.Len + 1}); err != nil {
			return err
		}
		return m.walk(n.right, Bits{Pattern: prefix.Pattern<<1 | 1, Len: prefix.Len + 1})
	}
	return nil
}

// Code returns the code for b, or ErrMissingCode if b is not in the
// model.
func (m *CodeMap) Code(b byte) (Bits, error) {
	c := m.codes[b]
	if c.Len == 0 {
		return Bits{}, fmt.Errorf("%w 0x%02x", ErrMissingCode, b)
	}
	return c, nil
}

// End returns the end-of-stream code.
func (m *CodeMap) End() Bits { return m.end }
