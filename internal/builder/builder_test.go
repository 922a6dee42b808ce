package builder

import (
	"testing"

	"github.com/dtrie-go/dtrie/internal/format"
)

func entries(pairs ...any) []Entry {
	out := make([]Entry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Entry{Key: []byte(pairs[i].(string)), Value: pairs[i+1].(uint32)})
	}
	return out
}

func wordAt(image []byte, id uint32) format.Node {
	off := int(id) * format.WordSize
	return format.Node(format.ReadU32(image, off))
}

func TestBuildEmptyKeysetYieldsOneBlock(t *testing.T) {
	image, err := Build(nil)
	if err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if len(image) != format.BlockSize*format.WordSize {
		t.Fatalf("len(image) = %d, want %d", len(image), format.BlockSize*format.WordSize)
	}
}

func TestBuildImageSizeIsBlockAligned(t *testing.T) {
	image, err := Build(entries("a", uint32(0), "ab", uint32(1), "abc", uint32(2)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(image)%(format.BlockSize*format.WordSize) != 0 {
		t.Fatalf("image length %d not block-aligned", len(image))
	}
}

func TestBuildRejectsUnsorted(t *testing.T) {
	_, err := Build(entries("b", uint32(1), "a", uint32(2)))
	if err == nil {
		t.Fatalf("expected error for unsorted keyset")
	}
}

func TestBuildRejectsDuplicate(t *testing.T) {
	_, err := Build(entries("a", uint32(1), "a", uint32(2)))
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
}

func TestBuildRejectsEmbeddedNUL(t *testing.T) {
	_, err := Build(entries("a\x00b", uint32(1)))
	if err == nil {
		t.Fatalf("expected error for embedded NUL byte")
	}
}

func TestBuildRejectsOversizedValue(t *testing.T) {
	_, err := Build(entries("a", uint32(format.MaxValue+1)))
	if err == nil {
		t.Fatalf("expected error for value exceeding 31 bits")
	}
}

// TestNodeLevelInvariant checks that for every key inserted, walking the
// image byte-for-byte from the root reproduces the stored value, directly
// exercising the node-level invariant without going through the reader
// package.
func TestNodeLevelInvariant(t *testing.T) {
	keyset := entries(
		"a", uint32(0), "ab", uint32(1), "aba", uint32(2),
		"ac", uint32(3), "acb", uint32(4), "acc", uint32(5),
		"ad", uint32(6), "ba", uint32(7), "bb", uint32(8),
		"bc", uint32(9), "c", uint32(10), "caa", uint32(11),
	)
	image, err := Build(keyset)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, e := range keyset {
		var id uint32
		unit := wordAt(image, id)
		for _, c := range e.Key {
			id = unit.Offset() ^ uint32(c)
			unit = wordAt(image, id)
			if byte(unit.Label()) != c {
				t.Fatalf("key %q: label mismatch at byte %q", e.Key, c)
			}
		}
		if !unit.HasLeaf() {
			t.Fatalf("key %q: expected has_leaf at terminal node", e.Key)
		}
		leaf := wordAt(image, unit.Offset())
		if !leaf.IsLeaf() {
			t.Fatalf("key %q: terminal offset does not point to a leaf", e.Key)
		}
		if leaf.Value() != e.Value {
			t.Fatalf("key %q: value = %d, want %d", e.Key, leaf.Value(), e.Value)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	keyset := entries("a", uint32(1), "ab", uint32(2), "b", uint32(3))
	first, err := Build(keyset)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	second, err := Build(keyset)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("non-deterministic image length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-deterministic image byte at offset %d", i)
		}
	}
}
