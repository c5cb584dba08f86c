package lizard

import "io"

// A window is a fixed-capacity byte queue over a ring buffer.
// Appending to a full window evicts the oldest byte. Indexing is
// front-relative: At(0) is the oldest byte held.
type window struct {
	buf   []byte
	start int
	n     int
}

func newWindow(capacity int) *window {
	return &window{buf: make([]byte, capacity)}
}

// Len returns the number of bytes held.
func (w *window) Len() int { return w.n }

// Cap returns the fixed capacity.
func (w *window) Cap() int { return len(w.buf) }

// At returns the byte i positions behind the front. i must be below
// Len.
func (w *window) At(i int) byte {
	return w.buf[(w.start+i)%len(w.buf)]
}

// Append adds b at the back. If the window is full the front byte is
// evicted and returned with ok set; a zero-capacity window evicts b
// itself.
func (w *window) Append(b byte) (evicted byte, ok bool) {
	if len(w.buf) == 0 {
		return b, true
	}
	if w.n == len(w.buf) {
		evicted = w.buf[w.start]
		w.buf[w.start] = b
		w.start = (w.start + 1) % len(w.buf)
		return evicted, true
	}
	w.buf[(w.start+w.n)%len(w.buf)] = b
	w.n++
	return 0, false
}

// PopFront removes and returns the oldest byte. The window must not be
// empty.
func (w *window) PopFront() byte {
	b := w.buf[w.start]
	w.start = (w.start + 1) % len(w.buf)
	w.n--
	return b
}

// WriteTo drains the window front to back into wr.
func (w *window) WriteTo(wr io.Writer) (int64, error) {
	if w.n == 0 {
		return 0, nil
	}
	end := w.start + w.n
	if end <= len(w.buf) {
		n, err := wr.Write(w.buf[w.start:end])
		w.start, w.n = 0, 0
		return int64(n), err
	}
	n1, err := wr.Write(w.buf[w.start:])
	if err != nil {
		return int64(n1), err
	}
	n2, err := wr.Write(w.buf[:end-len(w.buf)])
	w.start, w.n = 0, 0
	return int64(n1 + n2), err
}
