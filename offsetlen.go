package lizard

import "fmt"

// An OffsetLen locates a copy inside the window: Len bytes starting at
// index Offset, counted from the oldest byte the window holds. A copy
// may run past the window's current end, in which case it reads bytes
// it has itself produced.
type OffsetLen struct {
	Offset uint64
	Len    uint64
}

// appendRecord appends the copy record for ol to dst: the marker byte
// carrying both widths, then the offset and the length, each in the
// fewest bytes that hold it, least significant byte first.
func (ol OffsetLen) appendRecord(dst []byte) []byte {
	ow := byteWidth(ol.Offset)
	lw := byteWidth(ol.Len)
	dst = append(dst, markerMatch|byte(ow-1)<<3|byte(lw-1))
	dst = appendLE(dst, ol.Offset, ow)
	return appendLE(dst, ol.Len, lw)
}

// recordLen returns the encoded size of the record in bytes.
func (ol OffsetLen) recordLen() int {
	return 1 + byteWidth(ol.Offset) + byteWidth(ol.Len)
}

// matchWidths decodes the offset and length byte counts from a copy
// record marker.
func matchWidths(marker byte) (offW, lenW int) {
	return int(marker>>3&0x07) + 1, int(marker&0x07) + 1
}

// parseOffsetLen rebuilds an OffsetLen from its marker and payload.
func parseOffsetLen(marker byte, payload []byte) (OffsetLen, error) {
	offW, lenW := matchWidths(marker)
	if len(payload) != offW+lenW {
		return OffsetLen{}, fmt.Errorf("%w: copy payload %d bytes, marker wants %d",
			ErrTruncatedStream, len(payload), offW+lenW)
	}
	return OffsetLen{
		Offset: leUint(payload[:offW]),
		Len:    leUint(payload[offW:]),
	}, nil
}

// byteWidth returns how many bytes are needed to store v, at least one.
func byteWidth(v uint64) int {
	w := 1
	for v > 0xff {
		v >>= 8
		w++
	}
	return w
}

func appendLE(dst []byte, v uint64, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v))
		v >>= 8
	}
	return dst
}

func leUint(p []byte) uint64 {
	var v uint64
	for i := len(p) - 1; i >= 0; i-- {
		v = v<<8 | uint64(p[i])
	}
	return v
}
