package diffview

import "hash/fnv"

// element is the unit the Myers engine compares: a line (hash-augmented)
// or a grapheme cluster (plain text). A hash mismatch is a cheap proof of
// inequality, but a hash match is never sufficient on its own: equalTo
// still falls back to a full comparison, so hash collisions can't cause
// false equality.
type element interface {
	equalTo(other element) bool
}

// lineElement is one line of split text, carrying a precomputed FNV-1a
// hash so that line comparison during the Myers search is a single
// integer compare in the common (unequal) case.
type lineElement struct {
	text string
	hash uint64
}

// newLineElement wraps s with its FNV-1a hash.
func newLineElement(s string) lineElement {
	return lineElement{text: s, hash: hashString(s)}
}

func (l lineElement) equalTo(other element) bool {
	o, ok := other.(lineElement)
	if !ok {
		return false
	}
	return l.hash == o.hash && l.text == o.text
}

// graphemeElement is a single grapheme cluster, compared by exact text
// equality (the segmenter already guarantees clusters are the comparison
// unit, so no hash pre-filter is worth the allocation).
type graphemeElement string

func (g graphemeElement) equalTo(other element) bool {
	o, ok := other.(graphemeElement)
	return ok && g == o
}

// hashString computes the 64-bit FNV-1a hash of s. This is the same
// algorithm hash/fnv's New64a implements; using the standard library
// avoids hand-rolling the FNV constants for no benefit, since no
// third-party hashing library appears anywhere in the retrieved corpus.
func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func linesToElements(lines []string) []element {
	elems := make([]element, len(lines))
	for i, l := range lines {
		elems[i] = newLineElement(l)
	}
	return elems
}

func graphemesToElements(clusters []string) []element {
	elems := make([]element, len(clusters))
	for i, c := range clusters {
		elems[i] = graphemeElement(c)
	}
	return elems
}
