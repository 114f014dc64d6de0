package diffview

// DiffChars computes a grapheme-cluster-granular diff between old and
// new: segment both into UAX #29 clusters, run the same Myers engine used
// by DiffLines (this time with plain cluster-text equality), then walk
// the resulting script coalescing adjacent same-op clusters into
// segments. OldSegments carries only Equal/Delete; NewSegments carries
// only Equal/Insert. Concatenating each side's segment text reproduces
// that side's original input exactly.
func DiffChars(old, new string) *CharDiffResult {
	oldGraphemes := segmentGraphemes(old)
	newGraphemes := segmentGraphemes(new)

	script := diffOps(graphemesToElements(oldGraphemes), graphemesToElements(newGraphemes))

	result := &CharDiffResult{}
	var oldIdx, newIdx int
	for _, op := range script {
		switch op {
		case Equal:
			appendSegment(&result.OldSegments, Equal, oldGraphemes[oldIdx])
			appendSegment(&result.NewSegments, Equal, newGraphemes[newIdx])
			oldIdx++
			newIdx++
		case Delete:
			appendSegment(&result.OldSegments, Delete, oldGraphemes[oldIdx])
			oldIdx++
		case Insert:
			appendSegment(&result.NewSegments, Insert, newGraphemes[newIdx])
			newIdx++
		}
	}
	return result
}

// appendSegment implements the coalescing rule: if the last segment on
// this side already carries op, its text is extended; otherwise a new
// segment is pushed.
func appendSegment(segments *[]CharDiffSegment, op Op, text string) {
	if n := len(*segments); n > 0 && (*segments)[n-1].Op == op {
		(*segments)[n-1].Text += text
		return
	}
	*segments = append(*segments, CharDiffSegment{Op: op, Text: text})
}
