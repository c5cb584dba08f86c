package lizard

import "errors"

// Errors reported while decoding a compressed stream. Decompress wraps
// them with detail about the failing record; match with errors.Is.
var (
	// ErrMalformedHeader reports a header whose declared length, window
	// length or tree bytes cannot describe a valid stream.
	ErrMalformedHeader = errors.New("lizard: malformed header")

	// ErrTruncatedStream reports input that ends inside the header or
	// inside a record.
	ErrTruncatedStream = errors.New("lizard: truncated stream")

	// ErrRangeOutOfBounds reports a copy record whose source does not
	// begin inside the window.
	ErrRangeOutOfBounds = errors.New("lizard: copy range out of bounds")

	// ErrUnknownMarker reports a record marker with an unassigned kind.
	ErrUnknownMarker = errors.New("lizard: unknown record marker")

	// ErrInvalidOptions reports compression options that do not
	// describe a usable window geometry.
	ErrInvalidOptions = errors.New("lizard: invalid options")
)
