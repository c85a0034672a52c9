package huff

import (
	"errors"
	"io"
)

// ReaderConfig carries optional decompression parameters.
type ReaderConfig struct {
	// Progress, if set, is called after each Read with the number of
	// bytes decoded so far. Purely observational.
	Progress func(decoded int64)
}

func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("huff: ReaderConfig is nil")
	}
	return nil
}

// Reader decompresses a static Huffman stream. NewReader consumes the
// header eagerly and rebuilds the tree from the transmitted frequency
// table; decoded bytes then stream out of Read. Decoding consumes
// exactly the declared number of bits; padding in the final byte is
// discarded, never interpreted.
type Reader struct {
	c       ReaderConfig
	br      *bitReader
	root    *node
	cur     *node
	decoded int64
	err     error
}

func NewReader(r io.Reader) (*Reader, error) {
	return ReaderConfig{}.NewReader(r)
}

func (c ReaderConfig) NewReader(r io.Reader) (*Reader, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	root := buildTree(&h.freqs)
	if root == nil && h.totalBit != 0 {
		// Bits declared but no symbol to decode them with.
		return nil, ErrMalformedStream
	}
	return &Reader{
		c:    c,
		br:   newBitReader(r, h.totalBit),
		root: root,
		cur:  root,
	}, nil
}

// Read walks the tree one bit at a time, emitting a byte and resetting
// to the root at every leaf. Exhausting the bit budget anywhere but at
// the root means the stream is inconsistent with its header.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int
	for n < len(p) {
		bit, err := r.br.readBit()
		if err == io.EOF {
			if r.cur != r.root {
				err = ErrMalformedStream
			}
			r.err = err
			break
		}
		if err != nil {
			r.err = err
			break
		}
		if r.root.leaf {
			// Single-symbol tree: every budgeted bit emits the leaf.
			p[n] = r.root.value
			n++
			continue
		}
		if bit == 0 {
			r.cur = r.cur.left
		} else {
			r.cur = r.cur.right
		}
		if r.cur.leaf {
			p[n] = r.cur.value
			n++
			r.cur = r.root
		}
	}
	if n > 0 {
		r.decoded += int64(n)
		if r.c.Progress != nil {
			r.c.Progress(r.decoded)
		}
		return n, nil
	}
	return 0, r.err
}
