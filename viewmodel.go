package diffview

// similarityThreshold gates whether a modified {Removed, Added} row pair
// gets inline highlights: below it the lines are considered structurally
// different and whole-line emphasis is left to the renderer instead.
const similarityThreshold = 0.5

// CreateViewModel builds a two-pane view model from oldText and newText:
// it runs DiffLines, then walks the resulting hunks pairing deletions
// with insertions into modified rows, computing grapheme-level inline
// highlights on sufficiently similar pairs, and emitting one Connector
// band per hunk. See SPEC_FULL.md §4.7 for the full row-assembly
// algorithm this implements line-for-line.
func CreateViewModel(oldText, newText string, context int) *ViewModel {
	vm := &ViewModel{
		OldLines: splitLines(oldText),
		NewLines: splitLines(newText),
	}

	diff := DiffLinesSlices(vm.OldLines, vm.NewLines, context)
	if len(diff.Hunks) == 0 {
		emitUnchangedFastPath(vm)
		return vm
	}

	var oldPos, newPos uint
	for _, hunk := range diff.Hunks {
		oldPos, newPos = emitPreHunkContext(vm, oldPos, newPos, hunk)
		connectorTop := uint32(len(vm.Lines))

		var conn Connector
		conn, oldPos, newPos = assembleHunkRows(vm, hunk, oldPos, newPos)

		sortHunkRows(vm.Lines[connectorTop:])
		computeHunkHighlights(vm, connectorTop)

		if connectorBottom := uint32(len(vm.Lines)) - 1; connectorBottom >= connectorTop {
			conn.Top, conn.Bottom = connectorTop, connectorBottom
			vm.Connectors = append(vm.Connectors, conn)
		}
	}

	for oldPos < uint(len(vm.OldLines)) && newPos < uint(len(vm.NewLines)) {
		vm.Lines = append(vm.Lines, ViewLine{
			Left:  SideInfo{Kind: Context, LineNo: uint32(oldPos + 1)},
			Right: SideInfo{Kind: Context, LineNo: uint32(newPos + 1)},
		})
		oldPos++
		newPos++
	}

	return vm
}

// emitUnchangedFastPath handles the empty-hunk-list case: one row per
// line index up to the longer side's length, Blank on whichever side has
// no line at that index. No connectors or highlights are produced.
func emitUnchangedFastPath(vm *ViewModel) {
	maxLines := len(vm.OldLines)
	if len(vm.NewLines) > maxLines {
		maxLines = len(vm.NewLines)
	}
	vm.Lines = make([]ViewLine, maxLines)
	for i := 0; i < maxLines; i++ {
		var vl ViewLine
		if i < len(vm.OldLines) {
			vl.Left = SideInfo{Kind: Context, LineNo: uint32(i + 1)}
		}
		if i < len(vm.NewLines) {
			vl.Right = SideInfo{Kind: Context, LineNo: uint32(i + 1)}
		}
		vm.Lines[i] = vl
	}
}

// emitPreHunkContext emits the run of paired equal-context rows between
// the carried cursors and hunk's first line, then returns the advanced
// cursors. The number of rows to emit is driven by whichever side
// actually has lines in hunk: a side with Count == 0 (a pure-insert or
// pure-delete hunk) leaves its Start at the Go zero value (see
// DiffHunk's doc comment) and must not be used to bound the loop, or the
// real cursor on the other side either gets skipped entirely or paired
// against the wrong line once the hunk is behind us.
func emitPreHunkContext(vm *ViewModel, oldPos, newPos uint, hunk DiffHunk) (uint, uint) {
	var count uint
	switch {
	case hunk.OldCount > 0:
		count = hunk.OldStart - oldPos
	case hunk.NewCount > 0:
		count = hunk.NewStart - newPos
	}

	for i := uint(0); i < count; i++ {
		vm.Lines = append(vm.Lines, ViewLine{
			Left:  SideInfo{Kind: Context, LineNo: uint32(oldPos + 1)},
			Right: SideInfo{Kind: Context, LineNo: uint32(newPos + 1)},
		})
		oldPos++
		newPos++
	}
	return oldPos, newPos
}

// assembleHunkRows emits the rows for one hunk's DiffLines, pairing
// deletions with insertions positionally (first delete with first
// insert, and so on, up to the shorter list) and tracking the change
// line-number ranges for the hunk's Connector. oldPos/newPos are the
// cursor positions carried in from before the hunk; they are advanced
// in step with the emission loop (as view_model.cpp does inline) rather
// than re-derived from hunk.OldStart/NewStart afterward, since a side
// with zero lines in the hunk leaves its Start at the Go zero value and
// re-deriving from it would lose the carried cursor.
func assembleHunkRows(vm *ViewModel, hunk DiffHunk, oldPos, newPos uint) (Connector, uint, uint) {
	var deletes, inserts []uint
	for _, line := range hunk.Lines {
		switch line.Op {
		case Delete:
			deletes = append(deletes, line.OldIndex)
		case Insert:
			inserts = append(inserts, line.NewIndex)
		}
	}
	pairCount := len(deletes)
	if len(inserts) < pairCount {
		pairCount = len(inserts)
	}
	pairedInserts := make(map[uint]bool, pairCount)
	for i := 0; i < pairCount; i++ {
		pairedInserts[inserts[i]] = true
	}

	var conn Connector
	delI := 0
	for _, line := range hunk.Lines {
		switch line.Op {
		case Equal:
			vm.Lines = append(vm.Lines, ViewLine{
				Left:  SideInfo{Kind: Context, LineNo: uint32(line.OldIndex + 1)},
				Right: SideInfo{Kind: Context, LineNo: uint32(line.NewIndex + 1)},
			})
			oldPos, newPos = line.OldIndex+1, line.NewIndex+1
		case Delete:
			lineNo := uint32(line.OldIndex + 1)
			oldPos = line.OldIndex + 1
			if conn.LeftStart == 0 {
				conn.LeftStart = lineNo
			}
			conn.LeftEnd = lineNo
			if delI < len(inserts) {
				insLineNo := uint32(inserts[delI] + 1)
				vm.Lines = append(vm.Lines, ViewLine{
					Left:  SideInfo{Kind: Removed, LineNo: lineNo},
					Right: SideInfo{Kind: Added, LineNo: insLineNo},
				})
				if conn.RightStart == 0 {
					conn.RightStart = insLineNo
				}
				conn.RightEnd = insLineNo
				newPos = uint(insLineNo)
				delI++
			} else {
				vm.Lines = append(vm.Lines, ViewLine{
					Left: SideInfo{Kind: Removed, LineNo: lineNo},
				})
			}
		case Insert:
			if pairedInserts[line.NewIndex] {
				newPos = line.NewIndex + 1
				continue
			}
			lineNo := uint32(line.NewIndex + 1)
			newPos = line.NewIndex + 1
			if conn.RightStart == 0 {
				conn.RightStart = lineNo
			}
			conn.RightEnd = lineNo
			vm.Lines = append(vm.Lines, ViewLine{
				Right: SideInfo{Kind: Added, LineNo: lineNo},
			})
		}
	}
	return conn, oldPos, newPos
}

// sortHunkRows re-sorts one hunk's freshly emitted rows in ascending
// order of display key (right.LineNo when the right side isn't Blank,
// else left.LineNo), repairing display order when unpaired deletes
// precede unpaired inserts. Keys are unique within a hunk, so a plain
// unstable sort matches the spec's behavioral requirement.
func sortHunkRows(rows []ViewLine) {
	key := func(vl ViewLine) uint32 {
		if vl.Right.Kind != Blank {
			return vl.Right.LineNo
		}
		return vl.Left.LineNo
	}
	// Small hunks are the overwhelmingly common case; insertion sort
	// avoids pulling in sort.Slice's reflection-based comparator for
	// what's usually a handful of rows.
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && key(rows[j-1]) > key(rows[j]); j-- {
			rows[j-1], rows[j] = rows[j], rows[j-1]
		}
	}
}

// computeHunkHighlights scans rows[connectorTop:] for {Removed, Added}
// pairs and, for each sufficiently similar pair, appends inline
// highlights for the grapheme runs that actually differ.
func computeHunkHighlights(vm *ViewModel, connectorTop uint32) {
	for rowIdx := int(connectorTop); rowIdx < len(vm.Lines); rowIdx++ {
		row := vm.Lines[rowIdx]
		if row.Left.Kind != Removed || row.Right.Kind != Added {
			continue
		}
		oldLine := vm.OldLines[row.Left.LineNo-1]
		newLine := vm.NewLines[row.Right.LineNo-1]

		charDiff := DiffChars(oldLine, newLine)
		if calculateSimilarity(charDiff) < similarityThreshold {
			continue
		}

		vm.Highlights = append(vm.Highlights, highlightsForRow(uint32(rowIdx), oldLine, charDiff.OldSegments, Delete, true)...)
		vm.Highlights = append(vm.Highlights, highlightsForRow(uint32(rowIdx), newLine, charDiff.NewSegments, Insert, false)...)
	}
}

// calculateSimilarity is the fraction of the longer line's bytes that
// diff_chars preserved as Equal on the old side. Both-empty lines are
// defined as fully similar.
func calculateSimilarity(cd *CharDiffResult) float64 {
	var equalBytes, oldBytes, newBytes int
	for _, seg := range cd.OldSegments {
		oldBytes += len(seg.Text)
		if seg.Op == Equal {
			equalBytes += len(seg.Text)
		}
	}
	for _, seg := range cd.NewSegments {
		newBytes += len(seg.Text)
	}
	total := oldBytes
	if newBytes > total {
		total = newBytes
	}
	if total == 0 {
		return 1.0
	}
	return float64(equalBytes) / float64(total)
}

// highlightsForRow emits one InlineHighlight per segment of wantOp in
// segments, with byte offsets computed by re-segmenting line into
// grapheme clusters and summing cluster lengths up to each segment's
// grapheme boundary.
func highlightsForRow(row uint32, line string, segments []CharDiffSegment, wantOp Op, isLeft bool) []InlineHighlight {
	graphemes := segmentGraphemes(line)
	var highlights []InlineHighlight
	graphemePos := 0
	for _, seg := range segments {
		segLen := len(segmentGraphemes(seg.Text))
		if seg.Op == wantOp {
			highlights = append(highlights, InlineHighlight{
				Row:    row,
				Start:  uint32(graphemeByteOffset(graphemes, graphemePos)),
				End:    uint32(graphemeByteOffset(graphemes, graphemePos+segLen)),
				IsLeft: isLeft,
			})
		}
		graphemePos += segLen
	}
	return highlights
}

// graphemeByteOffset sums the byte lengths of graphemes[:idx], clamped
// to the slice's length.
func graphemeByteOffset(graphemes []string, idx int) int {
	if idx > len(graphemes) {
		idx = len(graphemes)
	}
	offset := 0
	for i := 0; i < idx; i++ {
		offset += len(graphemes[i])
	}
	return offset
}
