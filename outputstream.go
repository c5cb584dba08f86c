package lizard

import (
	"io"

	"github.com/lizardpack/lizard/huffman"
)

// An outputStream turns copies and literals into container records on
// an io.Writer. Literals accumulate into a run until a copy record or
// the end of input forces the run out as Huffman-coded chunk records.
type outputStream struct {
	w       io.Writer
	codes   *huffman.CodeMap
	run     []byte // literals of the open run
	scratch []byte
	tr      *Transcript
}

func newOutputStream(w io.Writer, codes *huffman.CodeMap, tr *Transcript) *outputStream {
	return &outputStream{w: w, codes: codes, tr: tr}
}

// literal queues one byte onto the open run.
func (o *outputStream) literal(b byte) {
	o.run = append(o.run, b)
}

// match closes the open run and writes a copy record.
func (o *outputStream) match(ol OffsetLen, matched []byte) error {
	if err := o.endRun(); err != nil {
		return err
	}
	o.scratch = ol.appendRecord(o.scratch[:0])
	if _, err := o.w.Write(o.scratch); err != nil {
		return err
	}
	o.tr.match(ol, matched, o.scratch)
	return nil
}

// endRun packs the open run into one continuous bit stream, ending
// with the end-of-stream code, and writes it as chunk records of at
// most maxChunkPayload bytes each.
func (o *outputStream) endRun() error {
	if len(o.run) == 0 {
		return nil
	}
	packed, err := o.codes.Pack(o.scratch[:0], o.run)
	if err != nil {
		return err
	}
	o.tr.run(o.run)
	o.run = o.run[:0]
	for start := 0; start < len(packed); start += maxChunkPayload {
		end := start + maxChunkPayload
		if end > len(packed) {
			end = len(packed)
		}
		chunk := packed[start:end]
		if _, err := o.w.Write([]byte{markerLiteral | byte(len(chunk))}); err != nil {
			return err
		}
		if _, err := o.w.Write(chunk); err != nil {
			return err
		}
		o.tr.chunk(chunk)
	}
	o.scratch = packed[:0]
	return nil
}

// finalise flushes the open run. The container needs no trailer; the
// stream simply ends at the last record.
func (o *outputStream) finalise() error {
	return o.endRun()
}
