package huffman

import (
	"errors"
	"fmt"
)

// Tree serialization tags, written in preorder.
const (
	tagInternal = 0x00 // followed by the left then the right subtree
	tagLeaf     = 0x01 // followed by the leaf's byte value
	tagEnd      = 0x02 // the end-of-stream leaf
)

// MarshalBinary serializes the tree in preorder so that it can be
// rebuilt without knowing its size in advance.
func (t *Tree) MarshalBinary() ([]byte, error) {
	return t.root.appendTo(nil), nil
}

func (n *node) appendTo(dst []byte) []byte {
	switch n.kind {
	case nodeInternal:
		dst = append(dst, tagInternal)
		dst = n.left.appendTo(dst)
		return n.right.appendTo(dst)
	case nodeLeaf:
		return append(dst, tagLeaf, n.value)
	default:
		return append(dst, tagEnd)
	}
}

// UnmarshalTree parses a tree serialized by MarshalBinary, consuming
// the whole input. It rejects trees that could not have come from
// Build: a bare leaf at the root, a repeated byte value, or anything
// but exactly one end-of-stream leaf.
func UnmarshalTree(data []byte) (*Tree, error) {
	p := &treeParser{data: data}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.off != len(data) {
		return nil, fmt.Errorf("huffman: %d trailing bytes after tree", len(data)-p.off)
	}
	if root.kind != nodeInternal {
		return nil, errors.New("huffman: tree root is not an internal node")
	}
	if p.ends != 1 {
		return nil, fmt.Errorf("huffman: tree has %d end leaves, want 1", p.ends)
	}
	return &Tree{root: root}, nil
}

type treeParser struct {
	data []byte
	off  int
	ends int
	seen [256]bool
}

func (p *treeParser) parse() (*node, error) {
	if p.off >= len(p.data) {
		return nil, errors.New("huffman: truncated tree")
	}
	tag := p.data[p.off]
	p.off++
	switch tag {
	case tagInternal:
		left, err := p.parse()
		if err != nil {
			return nil, err
		}
		right, err := p.parse()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeInternal, left: left, right: right}, nil
	case tagLeaf:
		if p.off >= len(p.data) {
			return nil, errors.New("huffman: truncated tree")
		}
		v := p.data[p.off]
		p.off++
		if p.seen[v] {
			return nil, fmt.Errorf("huffman: byte 0x%02x appears twice in tree", v)
		}
		p.seen[v] = true
		return &node{kind: nodeLeaf, value: v}, nil
	case tagEnd:
		p.ends++
		return &node{kind: nodeEnd}, nil
	default:
		return nil, fmt.Errorf("huffman: unknown tree tag 0x%02x", tag)
	}
}
