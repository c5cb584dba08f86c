package lizard

import (
	"bufio"
	"io"

	"github.com/lizardpack/lizard/huffman"
)

// Compress encodes src into dst. It reads src twice, once to model
// byte frequencies and once to emit records, which is why it takes an
// io.ReadSeeker. opts may be nil for defaults.
func Compress(dst io.Writer, src io.ReadSeeker, opts *CompressOptions) error {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if err := opts.validate(); err != nil {
		return err
	}

	var freq huffman.FreqTable
	counter := io.Writer(&freq)
	if opts.Transcript != nil {
		counter = io.MultiWriter(&freq, opts.Transcript.digest)
	}
	if _, err := io.Copy(counter, src); err != nil {
		return err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if freq.Total() == 0 {
		// An empty stream still needs a model to carry the
		// end-of-stream code.
		freq[0] = 1
	}
	tree, err := huffman.Build(&freq)
	if err != nil {
		return err
	}
	codes, err := huffman.NewCodeMap(tree)
	if err != nil {
		return err
	}

	hdr := &Header{Tree: tree, MaxLookback: uint64(opts.MaxLookback)}
	hb, err := hdr.MarshalBinary()
	if err != nil {
		return err
	}
	count := &countingWriter{w: dst}
	out := bufio.NewWriter(count)
	if _, err := out.Write(hb); err != nil {
		return err
	}
	opts.Transcript.header(hdr, codes)

	e := &encoder{
		src:      bufio.NewReader(src),
		out:      newOutputStream(out, codes, opts.Transcript),
		lookback: newWindow(opts.MaxLookback),
		pending:  newWindow(opts.MaxPending),
		finder:   matchFinder{minMatch: opts.MinMatch},
	}
	if err := e.encode(); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	return opts.Transcript.close(freq.Total(), count.n)
}

// An encoder drives one compression: it keeps the pending window
// filled from the source, asks the match finder what to emit, and
// slides consumed bytes from pending into the lookback window.
type encoder struct {
	src      *bufio.Reader
	out      *outputStream
	lookback *window
	pending  *window
	finder   matchFinder
	eof      bool
	matched  []byte
}

func (e *encoder) encode() error {
	if err := e.fill(); err != nil {
		return err
	}
	for e.pending.Len() > 0 {
		ol, ok := e.finder.findMatch(e.lookback, e.pending)
		if !ok {
			e.out.literal(e.pending.At(0))
			if err := e.advance(1); err != nil {
				return err
			}
			continue
		}
		e.matched = e.matched[:0]
		for i := 0; i < int(ol.Len); i++ {
			e.matched = append(e.matched, e.pending.At(i))
		}
		if err := e.out.match(ol, e.matched); err != nil {
			return err
		}
		if err := e.advance(int(ol.Len)); err != nil {
			return err
		}
	}
	return e.out.finalise()
}

// advance slides n bytes from the front of pending into the lookback
// window, evicting its oldest bytes at capacity, then refills pending.
func (e *encoder) advance(n int) error {
	for i := 0; i < n; i++ {
		e.lookback.Append(e.pending.PopFront())
	}
	return e.fill()
}

// fill tops the pending window up from the source.
func (e *encoder) fill() error {
	for !e.eof && e.pending.Len() < e.pending.Cap() {
		b, err := e.src.ReadByte()
		if err == io.EOF {
			e.eof = true
			return nil
		}
		if err != nil {
			return err
		}
		e.pending.Append(b)
	}
	return nil
}
