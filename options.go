package lizard

import "fmt"

// CompressOptions configure Compress. A nil options pointer means
// DefaultCompressOptions.
type CompressOptions struct {
	// MaxLookback bounds the dictionary window and with it how far
	// back a copy may reach. It is recorded in the header, so the
	// decoder needs no matching setting.
	MaxLookback int

	// MaxPending bounds the lookahead window and with it the longest
	// single copy.
	MaxPending int

	// MinMatch is the shortest repetition worth a copy record instead
	// of literals.
	MinMatch int

	// Transcript, when non-nil, receives a human-readable account of
	// the model and of every record written.
	Transcript *Transcript
}

// DefaultCompressOptions returns the default window geometry.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		MaxLookback: DefaultMaxLookback,
		MaxPending:  DefaultMaxPending,
		MinMatch:    DefaultMinMatch,
	}
}

func (o *CompressOptions) validate() error {
	if o.MaxLookback < 1 {
		return fmt.Errorf("%w: max lookback %d", ErrInvalidOptions, o.MaxLookback)
	}
	if o.MaxPending < 1 {
		return fmt.Errorf("%w: max pending %d", ErrInvalidOptions, o.MaxPending)
	}
	if o.MinMatch < 1 {
		return fmt.Errorf("%w: min match %d", ErrInvalidOptions, o.MinMatch)
	}
	return nil
}

// DecompressOptions configure Decompress. A nil options pointer means
// DefaultDecompressOptions.
type DecompressOptions struct {
	// MaxWindowMem rejects headers that ask for a larger decode
	// window, bounding memory against corrupt or hostile input.
	MaxWindowMem uint64
}

// DefaultDecompressOptions returns the default decoding limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{MaxWindowMem: DefaultMaxWindowMem}
}
