package lizard

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/lizardpack/lizard/huffman"
)

// Decompress decodes a stream produced by Compress into dst. opts may
// be nil for defaults. The input is consumed byte by byte through a
// small state machine, so memory stays bounded by the window length
// the header declares no matter what the records claim.
func Decompress(dst io.Writer, src io.Reader, opts *DecompressOptions) error {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	d := &decoder{
		out:  bufio.NewWriter(dst),
		opts: opts,
	}
	br := bufio.NewReader(src)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			if err := d.finish(); err != nil {
				return err
			}
			return d.out.Flush()
		}
		if err != nil {
			return err
		}
		if err := d.feed(b); err != nil {
			return err
		}
	}
}

type decodeState int

const (
	stateHeaderLen decodeState = iota
	stateHeaderBody
	stateMarker
	stateMatchPayload
	stateChunkPayload
)

func (s decodeState) String() string {
	switch s {
	case stateHeaderLen:
		return "header length"
	case stateHeaderBody:
		return "header body"
	case stateMarker:
		return "record marker"
	case stateMatchPayload:
		return "copy payload"
	case stateChunkPayload:
		return "literal chunk"
	}
	return "unknown state"
}

type decoder struct {
	out    *bufio.Writer
	opts   *DecompressOptions
	state  decodeState
	buf    []byte // bytes collected for the current state
	need   int    // bytes the current state still wants
	marker byte
	window *window
	unp    *huffman.Unpacker
	inRun  bool
	lits   []byte
}

func (d *decoder) feed(b byte) error {
	switch d.state {
	case stateHeaderLen:
		d.buf = append(d.buf, b)
		if len(d.buf) < headerLenSize {
			return nil
		}
		total := int(binary.BigEndian.Uint16(d.buf))
		if total < minHeaderLen {
			return fmt.Errorf("%w: declared length %d", ErrMalformedHeader, total)
		}
		d.buf = d.buf[:0]
		d.need = total - headerLenSize
		d.state = stateHeaderBody

	case stateHeaderBody:
		d.buf = append(d.buf, b)
		if len(d.buf) < d.need {
			return nil
		}
		hdr, err := parseHeaderBody(d.buf)
		if err != nil {
			return err
		}
		if hdr.MaxLookback > d.opts.MaxWindowMem || hdr.MaxLookback > math.MaxInt {
			return fmt.Errorf("%w: window %d bytes exceeds limit %d",
				ErrMalformedHeader, hdr.MaxLookback, d.opts.MaxWindowMem)
		}
		d.window = newWindow(int(hdr.MaxLookback))
		d.unp = huffman.NewUnpacker(hdr.Tree)
		d.buf = d.buf[:0]
		d.state = stateMarker

	case stateMarker:
		switch b & markerKindMask {
		case markerMatch:
			// A copy record closes any open literal run.
			d.inRun = false
			d.marker = b
			offW, lenW := matchWidths(b)
			d.need = offW + lenW
			d.state = stateMatchPayload
		case markerLiteral:
			if !d.inRun {
				d.unp.Reset()
				d.inRun = true
			}
			n := int(b &^ markerKindMask)
			if n == 0 {
				return nil // empty chunk carries nothing
			}
			d.need = n
			d.state = stateChunkPayload
		default:
			return fmt.Errorf("%w: 0x%02x", ErrUnknownMarker, b)
		}

	case stateMatchPayload:
		d.buf = append(d.buf, b)
		if len(d.buf) < d.need {
			return nil
		}
		ol, err := parseOffsetLen(d.marker, d.buf)
		if err != nil {
			return err
		}
		if err := d.copy(ol); err != nil {
			return err
		}
		d.buf = d.buf[:0]
		d.state = stateMarker

	case stateChunkPayload:
		d.lits = d.unp.Feed(d.lits[:0], b)
		if err := d.emit(d.lits); err != nil {
			return err
		}
		d.need--
		if d.need == 0 {
			d.state = stateMarker
		}
	}
	return nil
}

// copy replays a copy record against the window one byte at a time, so
// a copy may overlap the bytes it is itself producing. The source
// index tracks the window front: every appended byte moves the source
// one ahead, every eviction pulls it one back, and it can never fall
// off the front because the record's start was inside the window.
func (d *decoder) copy(ol OffsetLen) error {
	held := uint64(d.window.Len())
	if ol.Offset > held || (ol.Offset == held && ol.Len > 0) {
		return fmt.Errorf("%w: offset %d len %d, window holds %d",
			ErrRangeOutOfBounds, ol.Offset, ol.Len, held)
	}
	src := int(ol.Offset)
	for n := uint64(0); n < ol.Len; n++ {
		b := d.window.At(src)
		evicted, ok := d.window.Append(b)
		if ok {
			if err := d.out.WriteByte(evicted); err != nil {
				return err
			}
		} else {
			src++
		}
	}
	return nil
}

// emit pushes decoded literals through the window, streaming whatever
// the window evicts on to the output.
func (d *decoder) emit(p []byte) error {
	for _, b := range p {
		if evicted, ok := d.window.Append(b); ok {
			if err := d.out.WriteByte(evicted); err != nil {
				return err
			}
		}
	}
	return nil
}

// finish checks that the stream may end here and drains the window.
// Only the gap between records is a valid end of input.
func (d *decoder) finish() error {
	if d.state != stateMarker {
		return fmt.Errorf("%w: EOF during %s", ErrTruncatedStream, d.state)
	}
	_, err := d.window.WriteTo(d.out)
	return err
}
