package huff

import (
	"io"

	"github.com/icza/bitio"
)

// bitReader yields exactly the number of bits the header declared.
// Zero-padding in the final byte is never surfaced as data.
type bitReader struct {
	br   *bitio.Reader
	left uint64 // bits still to deliver
}

func newBitReader(r io.Reader, total uint64) *bitReader {
	return &bitReader{br: bitio.NewReader(r), left: total}
}

// readBit returns the next data bit, io.EOF once the budget is spent.
// An underlying stream shorter than the budget is ErrMalformedStream.
func (r *bitReader) readBit() (byte, error) {
	if r.left == 0 {
		return 0, io.EOF
	}
	b, err := r.br.ReadBool()
	if err != nil {
		// The header promised more bits than the body holds.
		return 0, ErrMalformedStream
	}
	r.left--
	if b {
		return 1, nil
	}
	return 0, nil
}
