package huffman

import (
	"bufio"
	"fmt"
	"io"
)

// Dot writes the tree in Graphviz dot form. Internal nodes are points,
// leaves are labeled with their byte value, the end-of-stream leaf with
// END; left edges are labeled 0 and right edges 1.
func (t *Tree) Dot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph code_tree {")
	next := 0
	var walk func(n *node) int
	walk = func(n *node) int {
		id := next
		next++
		switch n.kind {
		case nodeLeaf:
			fmt.Fprintf(bw, "\tn%d [label=%q];\n", id, leafLabel(n.value))
		case nodeEnd:
			fmt.Fprintf(bw, "\tn%d [label=\"END\"];\n", id)
		case nodeInternal:
			fmt.Fprintf(bw, "\tn%d [shape=point];\n", id)
			left := walk(n.left)
			right := walk(n.right)
			fmt.Fprintf(bw, "\tn%d -> n%d [label=\"0\"];\n", id, left)
			fmt.Fprintf(bw, "\tn%d -> n%d [label=\"1\"];\n", id, right)
		}
		return id
	}
	walk(t.root)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func leafLabel(b byte) string {
	if b >= 0x21 && b <= 0x7e {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
