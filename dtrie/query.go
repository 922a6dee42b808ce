package dtrie

// ExactMatch looks up key and reports whether it was stored, returning its
// 31-bit value on success. A miss (absent key, or an out-of-bounds fetch
// caused by a corrupted image) simply returns ok=false; this is not
// distinguished from a legitimate absence.
func (img *Image) ExactMatch(key []byte) (value uint32, ok bool) {
	var unitID uint32
	unit, ok := img.node(unitID)
	if !ok {
		return 0, false
	}

	for _, c := range key {
		unitID = unit.Offset() ^ uint32(c)
		unit, ok = img.node(unitID)
		if !ok {
			return 0, false
		}
		if byte(unit.Label()) != c || unit.IsLeaf() {
			return 0, false
		}
	}

	if !unit.HasLeaf() {
		return 0, false
	}
	leaf, ok := img.node(unit.Offset())
	if !ok || !leaf.IsLeaf() {
		return 0, false
	}
	return leaf.Value(), true
}

// PrefixIter is a single-pass, non-allocating cursor over every stored key
// that is a prefix of a probe string, yielded in ascending order of key
// length. Obtain one via Image.PrefixSearch.
type PrefixIter struct {
	img    *Image
	key    []byte
	pos    int
	unitID uint32
	done   bool
}

// PrefixSearch returns an iterator over the stored keys that are a prefix
// of key. Each call to Next consumes bytes of key until it reaches the next
// stored key, a byte fails to match, or key is exhausted.
func (img *Image) PrefixSearch(key []byte) *PrefixIter {
	return &PrefixIter{img: img, key: key}
}

// Next advances the iterator, reporting the next matching (value, length)
// pair. ok is false once the probe is exhausted, a byte fails to match, or
// the image is truncated at the current position; once false, all further
// calls also return false.
func (it *PrefixIter) Next() (value uint32, length int, ok bool) {
	if it.done {
		return 0, 0, false
	}

	for it.pos < len(it.key) {
		parent, present := it.img.node(it.unitID)
		if !present {
			it.done = true
			return 0, 0, false
		}

		c := it.key[it.pos]
		it.pos++

		it.unitID = parent.Offset() ^ uint32(c)
		child, present := it.img.node(it.unitID)
		if !present {
			it.done = true
			return 0, 0, false
		}
		if byte(child.Label()) != c || child.IsLeaf() {
			it.done = true
			return 0, 0, false
		}

		if child.HasLeaf() {
			leaf, present := it.img.node(child.Offset())
			if !present || !leaf.IsLeaf() {
				it.done = true
				return 0, 0, false
			}
			return leaf.Value(), it.pos, true
		}
	}

	it.done = true
	return 0, 0, false
}
