package format

import "testing"

func TestNodeValueRoundtrip(t *testing.T) {
	var n Node
	n, err := n.SetValue(5)
	if err != nil {
		t.Fatalf("SetValue(5): %v", err)
	}
	if !n.IsLeaf() {
		t.Fatalf("expected leaf after SetValue")
	}
	if got := n.Value(); got != 5 {
		t.Fatalf("Value() = %d, want 5", got)
	}

	n, err = n.SetValue(MaxValue)
	if err != nil {
		t.Fatalf("SetValue(MaxValue): %v", err)
	}
	if got := n.Value(); got != MaxValue {
		t.Fatalf("Value() = %d, want %d", got, MaxValue)
	}

	if _, err := n.SetValue(MaxValue + 1); err == nil {
		t.Fatalf("expected ErrValueOverflow for value > 31 bits")
	}
}

func TestNodeLabel(t *testing.T) {
	var n Node
	if got := n.Label(); got != 0 {
		t.Fatalf("zero-value Label() = %d, want 0", got)
	}

	for _, l := range []byte{0, 1, 127, 255} {
		n := Node(0).SetLabel(l)
		if got := n.Label(); got != uint32(l) {
			t.Fatalf("SetLabel(%d).Label() = %d", l, got)
		}
	}

	leaf, err := Node(0).SetValue(1)
	if err != nil {
		t.Fatal(err)
	}
	if leaf.Label() <= 255 {
		t.Fatalf("leaf node Label() = %d, want > 255", leaf.Label())
	}
}

func TestNodeHasLeaf(t *testing.T) {
	var n Node
	if n.HasLeaf() {
		t.Fatalf("zero-value HasLeaf() should be false")
	}
	n = n.SetHasLeaf(true)
	if !n.HasLeaf() {
		t.Fatalf("SetHasLeaf(true) did not stick")
	}
	n = n.SetHasLeaf(false)
	if n.HasLeaf() {
		t.Fatalf("SetHasLeaf(false) did not stick")
	}
}

func TestNodeOffsetRoundtrip(t *testing.T) {
	cases := []uint32{0, 1, extendBoundary - 1, extendBoundary, 1 << 28}
	for _, off := range cases {
		n, err := Node(0).SetOffset(off)
		if err != nil {
			t.Fatalf("SetOffset(%d): %v", off, err)
		}
		if got := n.Offset(); got != off {
			t.Fatalf("SetOffset(%d).Offset() = %d", off, got)
		}
	}
}

func TestNodeOffsetRejectsUnalignedExtended(t *testing.T) {
	if _, err := Node(0).SetOffset(extendBoundary + 1); err == nil {
		t.Fatalf("expected ErrOffsetOverflow for extended offset with nonzero low byte")
	}
}

func TestNodeOffsetRejectsTooWide(t *testing.T) {
	if _, err := Node(0).SetOffset(MaxOffset); err == nil {
		t.Fatalf("expected ErrOffsetOverflow for offset >= 2^29")
	}
}

func TestValidOffset(t *testing.T) {
	cases := []struct {
		offset uint32
		want   bool
	}{
		{0, true},
		{extendBoundary - 1, true},
		{extendBoundary, true},
		{extendBoundary + 1, false},
		{extendBoundary + 0x100, true},
		{MaxOffset - 1, false},
		{MaxOffset, false},
	}
	for _, c := range cases {
		if got := ValidOffset(c.offset); got != c.want {
			t.Fatalf("ValidOffset(%d) = %v, want %v", c.offset, got, c.want)
		}
	}
}

func TestNodeSetOffsetPreservesLabelAndHasLeaf(t *testing.T) {
	n := Node(0).SetLabel('a').SetHasLeaf(true)
	n, err := n.SetOffset(12345)
	if err != nil {
		t.Fatal(err)
	}
	if n.Label() != 'a' {
		t.Fatalf("Label() = %d, want 'a'", n.Label())
	}
	if !n.HasLeaf() {
		t.Fatalf("HasLeaf() lost across SetOffset")
	}
	if n.Offset() != 12345 {
		t.Fatalf("Offset() = %d, want 12345", n.Offset())
	}
}
