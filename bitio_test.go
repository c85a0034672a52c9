package huff

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBitWriterPacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	for _, b := range []byte{1, 0, 1, 1} {
		if err := w.writeBit(b); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.close(); err != nil {
		t.Fatal(err)
	}
	if w.n != 4 {
		t.Errorf("bit count = %d, want 4", w.n)
	}
	// 1011 in the high bits, zero-padded low.
	if !bytes.Equal(buf.Bytes(), []byte{0xb0}) {
		t.Errorf("packed bytes = %x, want b0", buf.Bytes())
	}
}

func TestBitWriterRejectsInvalidBit(t *testing.T) {
	w := newBitWriter(io.Discard)
	if err := w.writeBit(2); !errors.Is(err, ErrInvalidBit) {
		t.Errorf("writeBit(2) = %v, want ErrInvalidBit", err)
	}
	if w.n != 0 {
		t.Errorf("rejected bit was counted: n = %d", w.n)
	}
}

func TestBitWriterWriteCode(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	if err := w.writeCode(code{bits: 0b101, n: 3}); err != nil {
		t.Fatal(err)
	}
	if err := w.close(); err != nil {
		t.Fatal(err)
	}
	if w.n != 3 || !bytes.Equal(buf.Bytes(), []byte{0xa0}) {
		t.Errorf("got n=%d bytes=%x, want n=3 bytes=a0", w.n, buf.Bytes())
	}
}

func TestBitReaderStopsAtBudget(t *testing.T) {
	r := newBitReader(bytes.NewReader([]byte{0xb0}), 4)
	want := []byte{1, 0, 1, 1}
	for i, wb := range want {
		b, err := r.readBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if b != wb {
			t.Errorf("bit %d = %d, want %d", i, b, wb)
		}
	}
	// The four padding bits must never surface.
	for i := 0; i < 3; i++ {
		if _, err := r.readBit(); err != io.EOF {
			t.Fatalf("past budget: err = %v, want io.EOF", err)
		}
	}
}

func TestBitReaderTruncated(t *testing.T) {
	r := newBitReader(bytes.NewReader(nil), 3)
	if _, err := r.readBit(); !errors.Is(err, ErrMalformedStream) {
		t.Errorf("readBit on empty source = %v, want ErrMalformedStream", err)
	}
}

func TestBitReaderZeroBudget(t *testing.T) {
	r := newBitReader(bytes.NewReader([]byte{0xff}), 0)
	if _, err := r.readBit(); err != io.EOF {
		t.Errorf("zero budget: err = %v, want io.EOF", err)
	}
}
