// Package huff implements a lossless static Huffman codec. The encoder
// counts byte frequencies over the whole input, builds a prefix-free
// code from them and writes the frequency table followed by the packed
// bitstream. The decoder rebuilds the identical tree from the
// transmitted frequencies, so the tree shape itself is never sent.
package huff

import (
	"bytes"
	"errors"
	"io"
)

var (
	// ErrInvalidBit is returned when a value other than 0 or 1 reaches
	// the bit writer.
	ErrInvalidBit = errors.New("huff: bit value out of range")

	// ErrFieldOverflow is returned when a frequency count or the total
	// encoded bit count does not fit the 4-byte header fields.
	ErrFieldOverflow = errors.New("huff: value exceeds 32-bit header field")

	// ErrMalformedStream is returned when a compressed stream is
	// truncated or inconsistent with its own header.
	ErrMalformedStream = errors.New("huff: malformed stream")

	// ErrClosed is returned on use of a closed Writer.
	ErrClosed = errors.New("huff: writer is closed")
)

// Compress encodes data as a single Huffman stream and returns the
// header plus packed bitstream.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes a stream produced by Compress or Writer.
func Decompress(data []byte) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
