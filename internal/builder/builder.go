// Package builder constructs a double-array trie image from a sorted,
// deduplicated keyset. It implements the depth-first construction algorithm:
// group the active key range by the byte at the current depth, find a base
// offset that places every sibling in unused cells, write the parent and
// its children, then recurse into each non-terminator run.
//
// Keys follow the implicit-terminator contract: callers supply raw byte
// strings with no trailing NUL, and the builder treats "key exhausted at
// this depth" as the terminator edge. This mirrors how the rest of the
// package handles string keys elsewhere and avoids callers having to
// remember to append a sentinel byte.
//
// Offsets are kept globally unique: once a block/offset pair is handed to a
// parent node, no other parent may reuse it. This trades image density for
// a simpler invariant at query time — an offset never needs reinterpreting
// based on who holds it.
package builder

import (
	"bytes"
	"fmt"

	"github.com/dtrie-go/dtrie/internal/block"
	"github.com/dtrie-go/dtrie/internal/format"
)

// windowSize bounds how many of the most recently allocated blocks are
// searched for a free offset. Real keysets exhaust earlier blocks quickly,
// so searching only the tail keeps offset selection near-constant time
// without materially hurting image density.
const windowSize = 16

// maxBlocks bounds how far the builder will grow before giving up on
// satisfying the offset-uniqueness constraint. format.MaxOffset divided by
// format.BlockSize is the point at which no block index can yield an
// in-range absolute offset at all.
const maxBlocks = format.MaxOffset / format.BlockSize

// Entry is one key/value pair to insert. Value must fit in 31 bits.
type Entry struct {
	Key   []byte
	Value uint32
}

// Build constructs a trie image from entries, which must already be sorted
// ascending by Key under unsigned byte comparison, contain no duplicate
// keys, no key containing the byte 0x00, and no value exceeding
// format.MaxValue. Violating any precondition aborts the build and returns
// an error; no partial image is produced.
func Build(entries []Entry) ([]byte, error) {
	if err := validate(entries); err != nil {
		return nil, err
	}

	bd := &state{
		blocks:      []*block.Block{block.New()},
		usedOffsets: make(map[uint32]struct{}),
	}
	bd.reserve(0)

	if len(entries) > 0 {
		if err := bd.run(entries, 0, 0, len(entries), 0); err != nil {
			return nil, err
		}
	}

	return bd.serialize(), nil
}

func validate(entries []Entry) error {
	for i, e := range entries {
		if bytes.IndexByte(e.Key, 0) >= 0 {
			return fmt.Errorf("builder: key %q contains forbidden 0x00 byte", e.Key)
		}
		if e.Value > format.MaxValue {
			return fmt.Errorf("builder: value %d for key %q exceeds %d bits", e.Value, e.Key, 31)
		}
		if i == 0 {
			continue
		}
		switch bytes.Compare(entries[i-1].Key, e.Key) {
		case 0:
			return fmt.Errorf("builder: duplicate key %q", e.Key)
		case 1:
			return fmt.Errorf("builder: keyset not sorted ascending at index %d (%q > %q)", i, entries[i-1].Key, e.Key)
		}
	}
	return nil
}

// state carries the block vector and offset-uniqueness set across the
// recursive construction. It is discarded once the image is serialized.
type state struct {
	blocks      []*block.Block
	usedOffsets map[uint32]struct{}
}

// run is the explicit-stack equivalent of the depth-first recursive
// construction described for the builder: each work item groups the
// keyset range sharing a prefix at unitID, and its children are pushed so
// they are visited in ascending label order before returning to the
// caller's siblings.
type workItem struct {
	depth  int
	begin  int
	end    int
	unitID uint32
}

func (bd *state) run(entries []Entry, depth, begin, end int, unitID uint32) error {
	stack := []workItem{{depth, begin, end, unitID}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := bd.expand(entries, item)
		if err != nil {
			return err
		}
		// Push in reverse so the first (smallest-label) child is processed next.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

type labelRun struct {
	label byte
	begin int
	end   int
}

// expand processes one internal node: it groups the active range into
// label runs, allocates an offset, writes the parent and every child cell,
// and returns the non-terminator runs as further work items.
func (bd *state) expand(entries []Entry, item workItem) ([]workItem, error) {
	runs, terminatorValue, hasTerminator := groupByLabel(entries, item.depth, item.begin, item.end)
	if len(runs) == 0 {
		return nil, fmt.Errorf("builder: empty label run at depth %d", item.depth)
	}

	labels := make([]byte, len(runs))
	for i, r := range runs {
		labels[i] = r.label
	}

	offset, err := bd.findOffset(labels)
	if err != nil {
		return nil, err
	}

	parent := bd.node(item.unitID)
	if parent.Offset() != 0 || parent.HasLeaf() {
		return nil, fmt.Errorf("builder: internal node %d written twice", item.unitID)
	}
	parent, err = parent.SetOffset(offset)
	if err != nil {
		return nil, err
	}
	parent = parent.SetHasLeaf(hasTerminator)
	bd.setNode(item.unitID, parent)

	children := make([]workItem, 0, len(runs))
	for _, r := range runs {
		childID := offset ^ uint32(r.label)
		bd.reserve(childID)

		child := bd.node(childID)
		if r.label == 0 {
			child, err = child.SetValue(terminatorValue)
			if err != nil {
				return nil, err
			}
			bd.setNode(childID, child)
			continue
		}
		child = child.SetLabel(r.label)
		bd.setNode(childID, child)
		children = append(children, workItem{item.depth + 1, r.begin, r.end, childID})
	}

	return children, nil
}

// groupByLabel partitions entries[begin:end] into runs sharing the same
// byte at depth, using 0 for keys exhausted at this depth (the implicit
// terminator). entries is assumed sorted, so equal labels are contiguous.
func groupByLabel(entries []Entry, depth, begin, end int) (runs []labelRun, terminatorValue uint32, hasTerminator bool) {
	for i := begin; i < end; i++ {
		key := entries[i].Key
		var label byte
		if depth < len(key) {
			label = key[depth]
		}
		if label == 0 {
			hasTerminator = true
			terminatorValue = entries[i].Value
		}
		if n := len(runs); n > 0 && runs[n-1].label == label {
			runs[n-1].end = i + 1
			continue
		}
		runs = append(runs, labelRun{label: label, begin: i, end: i + 1})
	}
	return runs, terminatorValue, hasTerminator
}

// findOffset searches the trailing window of blocks for a base offset that
// places every label in an unused cell, extending the block vector when
// the window is exhausted.
func (bd *state) findOffset(labels []byte) (uint32, error) {
	for {
		head := 0
		if len(bd.blocks) > windowSize {
			head = len(bd.blocks) - windowSize
		}
		for bi := head; bi < len(bd.blocks); bi++ {
			blk := bd.blocks[bi]
			var (
				found uint32
				ok    bool
			)
			blk.CandidateOffsets(labels[0], func(local byte) bool {
				abs := uint32(bi)<<8 | uint32(local)
				if !format.ValidOffset(abs) {
					return true
				}
				if !blk.FitsLabels(local, labels) {
					return true
				}
				if _, used := bd.usedOffsets[abs]; used {
					return true
				}
				found, ok = abs, true
				return false
			})
			if ok {
				bd.usedOffsets[found] = struct{}{}
				return found, nil
			}
		}
		if len(bd.blocks) >= maxBlocks {
			return 0, fmt.Errorf("builder: exhausted %d blocks without finding a usable offset", maxBlocks)
		}
		bd.blocks = append(bd.blocks, block.New())
	}
}

func (bd *state) reserve(id uint32) {
	bi, local := bd.locate(id)
	bd.blocks[bi].Reserve(local)
}

func (bd *state) node(id uint32) format.Node {
	bi, local := bd.locate(id)
	return bd.blocks[bi].Nodes[local]
}

func (bd *state) setNode(id uint32, n format.Node) {
	bi, local := bd.locate(id)
	bd.blocks[bi].Nodes[local] = n
}

func (bd *state) locate(id uint32) (blockIdx int, local byte) {
	blockIdx = int(id / format.BlockSize)
	local = byte(id % format.BlockSize)
	for blockIdx >= len(bd.blocks) {
		bd.blocks = append(bd.blocks, block.New())
	}
	return blockIdx, local
}

func (bd *state) serialize() []byte {
	out := make([]byte, 0, len(bd.blocks)*format.BlockSize*format.WordSize)
	for _, blk := range bd.blocks {
		for _, n := range blk.Nodes {
			var word [format.WordSize]byte
			format.PutU32(word[:], 0, uint32(n))
			out = append(out, word[:]...)
		}
	}
	return out
}
