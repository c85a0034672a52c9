package huff

import (
	"io"

	"github.com/icza/bitio"
)

// bitWriter packs bits most-significant-first into bytes and keeps a
// running count for the header's total-bit field.
type bitWriter struct {
	bw *bitio.Writer
	n  uint64 // bits written so far, padding excluded
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{bw: bitio.NewWriter(w)}
}

// writeBit accepts 0 or 1 only.
func (w *bitWriter) writeBit(b byte) error {
	if b > 1 {
		return ErrInvalidBit
	}
	if err := w.bw.WriteBool(b == 1); err != nil {
		return err
	}
	w.n++
	return nil
}

// writeCode emits c bit by bit, most significant first.
func (w *bitWriter) writeCode(c code) error {
	for i := int(c.n) - 1; i >= 0; i-- {
		if err := w.writeBit(byte(c.bits>>uint(i)) & 1); err != nil {
			return err
		}
	}
	return nil
}

// close zero-pads any trailing partial byte so the stream ends on a
// byte boundary. Padding bits are not counted in n.
func (w *bitWriter) close() error {
	return w.bw.Close()
}
