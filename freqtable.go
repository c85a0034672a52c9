package huff

import "math"

// freqTable counts occurrences of each of the 256 byte values. The sum
// of all counts equals the number of bytes fed to add.
type freqTable struct {
	counts [256]uint64
	total  uint64
}

func (t *freqTable) add(p []byte) {
	for _, b := range p {
		t.counts[b]++
	}
	t.total += uint64(len(p))
}

// distinct returns the number of byte values with a nonzero count.
func (t *freqTable) distinct() int {
	var n int
	for _, c := range t.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// verifyFields checks that every count fits the 4-byte wire fields.
func (t *freqTable) verifyFields() error {
	for _, c := range t.counts {
		if c > math.MaxUint32 {
			return ErrFieldOverflow
		}
	}
	return nil
}
