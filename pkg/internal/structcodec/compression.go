package structcodec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Compression selects the payload compression algorithm.
type Compression byte

const (
	CompressNone    Compression = 0
	CompressDeflate Compression = 1
	CompressSnappy  Compression = 2
	CompressZstd    Compression = 3
	CompressBrotli  Compression = 4
	CompressLz4     Compression = 5
)

func compress(data []byte, algorithm Compression) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case CompressNone:
		return data, nil
	case CompressDeflate:
		w = gzip.NewWriter(&b)
	case CompressSnappy:
		w = snappy.NewBufferedWriter(&b)
	case CompressZstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case CompressBrotli:
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case CompressLz4:
		w = lz4.NewWriter(&b)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, algorithm)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decompress(data []byte, algorithm Compression) ([]byte, error) {
	var b bytes.Buffer
	var r io.Reader

	switch algorithm {
	case CompressNone:
		return data, nil
	case CompressDeflate:
		var err error
		r, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	case CompressSnappy:
		r = snappy.NewReader(bytes.NewReader(data))
	case CompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case CompressBrotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case CompressLz4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, algorithm)
	}

	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
