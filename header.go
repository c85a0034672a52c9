package huff

import (
	"encoding/binary"
	"io"
	"math"
)

// Wire layout: 256 big-endian uint32 frequency counts indexed by byte
// value, then one big-endian uint32 with the total encoded bit count.
// The packed bitstream follows immediately after.
const headerSize = 257 * 4

type header struct {
	freqs    freqTable
	totalBit uint64
}

func (h *header) marshalBinary() ([]byte, error) {
	if err := h.freqs.verifyFields(); err != nil {
		return nil, err
	}
	if h.totalBit > math.MaxUint32 {
		return nil, ErrFieldOverflow
	}

	data := make([]byte, headerSize)
	for v, c := range h.freqs.counts {
		binary.BigEndian.PutUint32(data[v*4:], uint32(c))
	}
	binary.BigEndian.PutUint32(data[256*4:], uint32(h.totalBit))
	return data, nil
}

func (h *header) unmarshalBinary(data []byte) error {
	if len(data) != headerSize {
		return ErrMalformedStream
	}
	h.freqs = freqTable{}
	for v := range h.freqs.counts {
		c := uint64(binary.BigEndian.Uint32(data[v*4:]))
		h.freqs.counts[v] = c
		h.freqs.total += c
	}
	h.totalBit = uint64(binary.BigEndian.Uint32(data[256*4:]))
	return nil
}

// readHeader consumes exactly headerSize bytes from r. A stream too
// short to hold a header is malformed, not an I/O error.
func readHeader(r io.Reader) (*header, error) {
	data := make([]byte, headerSize)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrMalformedStream
		}
		return nil, err
	}
	h := new(header)
	if err := h.unmarshalBinary(data); err != nil {
		return nil, err
	}
	return h, nil
}
