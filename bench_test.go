package lizard

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/pierrec/lz4/v4"
)

// benchCorpus builds a deterministic 256 KiB mix of prose, byte runs
// and noise, so the codecs below compete on the same ground.
func benchCorpus() []byte {
	rng := rand.New(rand.NewSource(42))
	prose := []byte("the lizard basked on the warm stone and watched the river fold over itself. ")
	var buf bytes.Buffer
	chunk := make([]byte, 64)
	for buf.Len() < 256<<10 {
		switch rng.Intn(4) {
		case 0, 1:
			buf.Write(prose)
		case 2:
			buf.Write(bytes.Repeat([]byte{byte(rng.Intn(256))}, 64))
		case 3:
			rng.Read(chunk)
			buf.Write(chunk)
		}
	}
	return buf.Bytes()
}

func BenchmarkCompress(b *testing.B) {
	corpus := benchCorpus()
	src := bytes.NewReader(corpus)
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	var n int
	for i := 0; i < b.N; i++ {
		src.Seek(0, io.SeekStart)
		var buf bytes.Buffer
		if err := Compress(&buf, src, nil); err != nil {
			b.Fatal(err)
		}
		n = buf.Len()
	}
	b.ReportMetric(float64(n)/float64(len(corpus)), "ratio")
}

func BenchmarkDecompress(b *testing.B) {
	corpus := benchCorpus()
	var comp bytes.Buffer
	if err := Compress(&comp, bytes.NewReader(corpus), nil); err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Decompress(io.Discard, bytes.NewReader(comp.Bytes()), nil); err != nil {
			b.Fatal(err)
		}
	}
}

// The reference codecs below are not compatible with this container;
// they are here to keep an eye on how far the simple scan-and-pack
// scheme sits from the production ones on the same corpus.

func BenchmarkFlate(b *testing.B) {
	corpus := benchCorpus()
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	var n int
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := zw.Write(corpus); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
		n = buf.Len()
	}
	b.ReportMetric(float64(n)/float64(len(corpus)), "ratio")
}

func BenchmarkSnappy(b *testing.B) {
	corpus := benchCorpus()
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	var n int
	for i := 0; i < b.N; i++ {
		n = len(snappy.Encode(nil, corpus))
	}
	b.ReportMetric(float64(n)/float64(len(corpus)), "ratio")
}

func BenchmarkBrotli(b *testing.B) {
	corpus := benchCorpus()
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	var n int
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		zw := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
		if _, err := zw.Write(corpus); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
		n = buf.Len()
	}
	b.ReportMetric(float64(n)/float64(len(corpus)), "ratio")
}

func BenchmarkLZ4(b *testing.B) {
	corpus := benchCorpus()
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	var n int
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(corpus); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
		n = buf.Len()
	}
	b.ReportMetric(float64(n)/float64(len(corpus)), "ratio")
}
