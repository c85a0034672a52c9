package huff

// code is a root-to-leaf path. The path is held in the low n bits of
// bits, most significant bit first; left child is 0, right child is 1.
// With 32-bit frequency fields the deepest reachable leaf stays well
// under 64 levels, so a uint64 holds any path.
type code struct {
	bits uint64
	n    uint8
}

// codeTable maps byte values to their codes; n == 0 marks a value that
// is absent from the input.
type codeTable [256]code

// buildCodes walks the tree with an explicit stack and records the
// accumulated path at every leaf. A degenerate single-leaf tree gets
// the one-bit code "0" so encode and decode stay well-defined.
func buildCodes(root *node) codeTable {
	var ct codeTable
	if root == nil {
		return ct
	}
	if root.leaf {
		ct[root.value] = code{bits: 0, n: 1}
		return ct
	}
	type frame struct {
		n *node
		c code
	}
	stack := []frame{{root, code{}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.leaf {
			ct[f.n.value] = f.c
			continue
		}
		stack = append(stack,
			frame{f.n.right, code{bits: f.c.bits<<1 | 1, n: f.c.n + 1}},
			frame{f.n.left, code{bits: f.c.bits << 1, n: f.c.n + 1}},
		)
	}
	return ct
}

// totalBits is the exact bit length of the packed body for the given
// frequency table.
func (ct *codeTable) totalBits(t *freqTable) uint64 {
	var n uint64
	for v, c := range ct {
		n += t.counts[v] * uint64(c.n)
	}
	return n
}
