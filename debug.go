package lizard

import (
	"bufio"
	"fmt"
	"hash"
	"io"
	"unicode/utf8"

	"github.com/pierrec/xxHash/xxHash32"

	"github.com/lizardpack/lizard/huffman"
)

// A Transcript is a human-readable account of one compression: the
// model, every record as it is written, and closing statistics. It is
// purely diagnostic and is never read back. All methods are no-ops on
// a nil Transcript.
type Transcript struct {
	w      *bufio.Writer
	digest hash.Hash32
	record int
	err    error
}

// NewTranscript returns a Transcript writing to w. The first write
// error sticks and comes back from Compress.
func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: bufio.NewWriter(w), digest: xxHash32.New(0)}
}

func (t *Transcript) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// header describes the model: window geometry, the code table and the
// tree in Graphviz form.
func (t *Transcript) header(h *Header, codes *huffman.CodeMap) {
	if t == nil {
		return
	}
	t.printf("header: lookback window %d bytes, tree %d nodes\n", h.MaxLookback, h.Tree.Size())
	t.printf("code table:\n")
	for b := 0; b <= 0xff; b++ {
		c, err := codes.Code(byte(b))
		if err != nil {
			continue
		}
		t.printf("\t%s  %s\n", byteLabel(byte(b)), c)
	}
	t.printf("\tEND  %s\n", codes.End())
	if t.err == nil {
		t.err = h.Tree.Dot(t.w)
	}
}

// run introduces one literal run ahead of its chunk records.
func (t *Transcript) run(lits []byte) {
	if t == nil {
		return
	}
	t.printf("literal run, %d bytes: %s\n", len(lits), textOrHex(lits))
}

// chunk accounts for one literal chunk record.
func (t *Transcript) chunk(payload []byte) {
	if t == nil {
		return
	}
	t.record++
	t.printf("%d\tchunk %d bytes: %x\n", t.record, len(payload), payload)
}

// match accounts for one copy record and the bytes it stands for.
func (t *Transcript) match(ol OffsetLen, matched, record []byte) {
	if t == nil {
		return
	}
	t.record++
	t.printf("%d\tcopy offset %d len %d: %s  [% x]\n", t.record, ol.Offset, ol.Len, textOrHex(matched), record)
}

// close writes the closing statistics and flushes.
func (t *Transcript) close(inBytes, outBytes uint64) error {
	if t == nil {
		return nil
	}
	t.printf("input %d bytes, xxh32 %08x\n", inBytes, t.digest.Sum32())
	t.printf("output %d bytes\n", outBytes)
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

func byteLabel(b byte) string {
	if b >= 0x21 && b <= 0x7e {
		return fmt.Sprintf("0x%02x %q", b, b)
	}
	return fmt.Sprintf("0x%02x", b)
}

func textOrHex(p []byte) string {
	if utf8.Valid(p) {
		return fmt.Sprintf("%q", p)
	}
	return fmt.Sprintf("[% x]", p)
}

// A countingWriter counts the bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}
