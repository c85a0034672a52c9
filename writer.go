package huff

import (
	"bytes"
	"errors"
	"io"
)

// WriterConfig carries optional compression parameters.
type WriterConfig struct {
	// Progress, if set, is called while the bitstream is emitted with
	// the number of input bytes encoded so far and the input total.
	// Purely observational; it never affects the output bytes.
	Progress func(processed, total int64)
}

func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("huff: WriterConfig is nil")
	}
	return nil
}

// Writer compresses everything written to it as one static Huffman
// stream. The whole input is buffered; the header and bitstream are
// emitted on Close, once the frequency table is complete.
type Writer struct {
	c      WriterConfig
	dst    io.Writer
	buf    bytes.Buffer
	freqs  freqTable
	closed bool
}

func NewWriter(w io.Writer) (*Writer, error) {
	return WriterConfig{}.NewWriter(w)
}

func (c WriterConfig) NewWriter(w io.Writer) (*Writer, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return &Writer{c: c, dst: w}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	w.freqs.add(p)
	return w.buf.Write(p)
}

// Close builds the tree and code table, writes the header and then the
// code of every buffered byte in input order. The total bit count is
// known from the table before emission (sum of freq times code length),
// so the header is written complete and the sink needs no seeking.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	codes := buildCodes(buildTree(&w.freqs))
	h := header{freqs: w.freqs, totalBit: codes.totalBits(&w.freqs)}
	data, err := h.marshalBinary()
	if err != nil {
		return err
	}
	if _, err = w.dst.Write(data); err != nil {
		return err
	}

	bw := newBitWriter(w.dst)
	in := w.buf.Bytes()
	total := int64(len(in))
	for i, b := range in {
		if err = bw.writeCode(codes[b]); err != nil {
			return err
		}
		if w.c.Progress != nil {
			w.c.Progress(int64(i)+1, total)
		}
	}
	return bw.close()
}
