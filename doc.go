// Package lizard implements a lossless byte-stream compressor that
// combines LZ77 dictionary substitution over a bounded lookback window
// with Huffman coding of the remaining literals.
//
// A compressed stream opens with a header record: a big-endian uint16
// holding the total header length (the two length bytes included), a
// big-endian uint64 holding the lookback window length the stream was
// encoded against, and the serialized code tree for its literals. After
// the header the stream is a sequence of records, each introduced by a
// marker byte whose top two bits select the kind:
//
//	10oooLLL  copy record: ooo+1 offset bytes then LLL+1 length bytes
//	          follow, least significant byte first. The copy reads
//	          length bytes starting at offset, counted from the oldest
//	          byte of the window, and may overlap its own output.
//	11nnnnnn  literal chunk record: n packed bytes follow.
//
// Literals between copies form runs. One run is Huffman coded as a
// single bit stream, terminated by the tree's end-of-stream code, and
// carved into chunk records of at most 63 bytes; the bit stream runs
// continuously across the chunks of a run, so a code may straddle any
// chunk boundary.
//
// Compressing reads the source twice, once to count byte frequencies
// and once to emit records, so it wants an io.ReadSeeker:
//
//	var out bytes.Buffer
//	err := lizard.Compress(&out, bytes.NewReader(data), nil)
//
// Decompressing is single pass:
//
//	err := lizard.Decompress(&restored, &out, nil)
//
// Window geometry is configurable through CompressOptions; the decoder
// learns the window length from the header and needs no matching
// configuration.
package lizard
