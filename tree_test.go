package huff

import "testing"

func TestBuildTreeEmpty(t *testing.T) {
	var ft freqTable
	if root := buildTree(&ft); root != nil {
		t.Errorf("buildTree of all-zero table = %v, want nil", root)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	var ft freqTable
	ft.add([]byte{42, 42, 42})
	root := buildTree(&ft)
	if root == nil || !root.leaf {
		t.Fatalf("want a bare leaf root, got %+v", root)
	}
	if root.value != 42 || root.freq != 3 {
		t.Errorf("leaf = (%d, %d), want (42, 3)", root.value, root.freq)
	}
}

// Every internal node's frequency must equal the sum of its children's,
// and the leaves must be exactly the nonzero table entries.
func TestTreeInvariants(t *testing.T) {
	var ft freqTable
	ft.add([]byte("abracadabra, a magic incantation"))
	root := buildTree(&ft)

	leaves := 0
	var walk func(n *node) uint64
	walk = func(n *node) uint64 {
		if n.leaf {
			leaves++
			if n.freq != ft.counts[n.value] {
				t.Errorf("leaf %q has freq %d, table says %d", n.value, n.freq, ft.counts[n.value])
			}
			return n.freq
		}
		sum := walk(n.left) + walk(n.right)
		if n.freq != sum {
			t.Errorf("internal freq = %d, children sum to %d", n.freq, sum)
		}
		return n.freq
	}
	if got := walk(root); got != ft.total {
		t.Errorf("root freq = %d, want input length %d", got, ft.total)
	}
	if leaves != ft.distinct() {
		t.Errorf("tree has %d leaves, table has %d distinct values", leaves, ft.distinct())
	}
}

// With frequencies a=1 b=1 c=2, the leaves a and b merge first (FIFO
// among equal frequencies), and the merged pair then ties with c at
// freq 2; c arrived earlier, so c becomes the left child of the root.
func TestTieBreakFIFO(t *testing.T) {
	var ft freqTable
	ft.add([]byte("abcc"))
	codes := buildCodes(buildTree(&ft))

	want := map[byte]code{
		'c': {bits: 0b0, n: 1},
		'a': {bits: 0b10, n: 2},
		'b': {bits: 0b11, n: 2},
	}
	for v, c := range want {
		if codes[v] != c {
			t.Errorf("code[%q] = {%b, %d}, want {%b, %d}", v, codes[v].bits, codes[v].n, c.bits, c.n)
		}
	}
}

// 256 equally frequent symbols must produce a perfectly balanced tree:
// every code is exactly 8 bits.
func TestBalancedTree(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	var ft freqTable
	ft.add(in)
	codes := buildCodes(buildTree(&ft))
	for v := 0; v < 256; v++ {
		if codes[v].n != 8 {
			t.Fatalf("code[%d] is %d bits, want 8", v, codes[v].n)
		}
	}
}
