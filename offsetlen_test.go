package lizard

import (
	"bytes"
	"errors"
	"testing"
)

func TestOffsetLenRecordLayout(t *testing.T) {
	for _, tc := range []struct {
		ol   OffsetLen
		want []byte
	}{
		{OffsetLen{0, 0}, []byte{0x80, 0x00, 0x00}},
		{OffsetLen{5, 7}, []byte{0x80, 0x05, 0x07}},
		{OffsetLen{255, 255}, []byte{0x80, 0xff, 0xff}},
		{OffsetLen{256, 3}, []byte{0x88, 0x00, 0x01, 0x03}},
		{OffsetLen{3, 256}, []byte{0x81, 0x03, 0x00, 0x01}},
		{OffsetLen{0x01020304, 2}, []byte{0x98, 0x04, 0x03, 0x02, 0x01, 0x02}},
		{OffsetLen{1<<64 - 1, 255}, append(append([]byte{0xb8}, bytes.Repeat([]byte{0xff}, 8)...), 0xff)},
	} {
		got := tc.ol.appendRecord(nil)
		if !bytes.Equal(got, tc.want) {
			t.Errorf("appendRecord(%+v) = %x, want %x", tc.ol, got, tc.want)
		}
		if n := tc.ol.recordLen(); n != len(tc.want) {
			t.Errorf("recordLen(%+v) = %d, want %d", tc.ol, n, len(tc.want))
		}
	}
}

// Each width boundary, one below it and one above it must all survive
// a record round trip.
func TestOffsetLenWidthBoundaries(t *testing.T) {
	var values []uint64
	for w := 1; w < 8; w++ {
		edge := uint64(1)<<(8*w) - 1
		values = append(values, edge-1, edge, edge+1)
	}
	values = append(values, 1<<63, 1<<64-1, 0, 1)

	for _, off := range values {
		for _, length := range values {
			ol := OffsetLen{Offset: off, Len: length}
			rec := ol.appendRecord(nil)
			got, err := parseOffsetLen(rec[0], rec[1:])
			if err != nil {
				t.Fatalf("parseOffsetLen(%+v): %v", ol, err)
			}
			if got != ol {
				t.Fatalf("round trip %+v -> %+v", ol, got)
			}
		}
	}
}

func TestByteWidth(t *testing.T) {
	for _, tc := range []struct {
		v    uint64
		want int
	}{
		{0, 1}, {1, 1}, {255, 1}, {256, 2}, {65535, 2}, {65536, 3},
		{1<<24 - 1, 3}, {1 << 24, 4}, {1<<32 - 1, 4}, {1 << 32, 5},
		{1 << 56, 8}, {1<<64 - 1, 8},
	} {
		if got := byteWidth(tc.v); got != tc.want {
			t.Errorf("byteWidth(%d) = %d, want %d", tc.v, got, tc.want)
		}
	}
}

func TestMatchWidths(t *testing.T) {
	if o, l := matchWidths(0x80); o != 1 || l != 1 {
		t.Errorf("matchWidths(0x80) = %d,%d, want 1,1", o, l)
	}
	if o, l := matchWidths(0xbf); o != 8 || l != 8 {
		t.Errorf("matchWidths(0xbf) = %d,%d, want 8,8", o, l)
	}
	if o, l := matchWidths(0x9a); o != 4 || l != 3 {
		t.Errorf("matchWidths(0x9a) = %d,%d, want 4,3", o, l)
	}
}

func TestParseOffsetLenShortPayload(t *testing.T) {
	rec := OffsetLen{256, 256}.appendRecord(nil)
	if _, err := parseOffsetLen(rec[0], rec[1:len(rec)-1]); !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("short payload: %v, want ErrTruncatedStream", err)
	}
}
