package lizard

// Record markers. The top two bits of the first byte of every record
// select its kind; the low six bits belong to the kind.
const (
	markerKindMask = 0xc0
	markerMatch    = 0x80 // 10oooLLL: offset and length widths, each minus one
	markerLiteral  = 0xc0 // 11nnnnnn: chunk payload length in bytes

	// maxChunkPayload is the largest payload one literal chunk record
	// can carry, the largest value of the marker's six low bits.
	maxChunkPayload = 63
)

// Default window geometry. A larger lookback window finds more distant
// repetitions at a linear cost in search time per emitted byte.
const (
	DefaultMaxLookback = 128
	DefaultMaxPending  = 64
	DefaultMinMatch    = 3
)

// DefaultMaxWindowMem caps the decode window a header may request, so
// a corrupt or hostile header cannot make Decompress allocate without
// bound.
const DefaultMaxWindowMem = 1 << 30

// headerLenSize is the width of the header's leading length field,
// which counts itself.
const headerLenSize = 2

// minHeaderLen is the smallest structurally possible header: the
// length field, the lookback length, and at least one tree byte.
const minHeaderLen = headerLenSize + 8 + 1
