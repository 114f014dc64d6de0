package diffview

// DiffLines computes the line-level diff between oldText and newText:
// split both into lines, run the Myers engine with hash-augmented line
// equality, materialize the script against both cursors, then group the
// non-equal runs into hunks with context lines of context on each side.
func DiffLines(oldText, newText string, context int) *DiffResult {
	return DiffLinesSlices(splitLines(oldText), splitLines(newText), context)
}

// DiffLinesSlices is the pre-split entry point: it takes ownership of
// oldLines/newLines and diffs them directly, skipping the split step.
func DiffLinesSlices(oldLines, newLines []string, context int) *DiffResult {
	result := &DiffResult{
		OldLines: oldLines,
		NewLines: newLines,
	}

	script := diffOps(linesToElements(oldLines), linesToElements(newLines))
	allLines := materializeDiffLines(script)
	changeRanges := findChangeRanges(allLines)
	merged := mergeRanges(changeRanges, context)
	result.Hunks = buildHunks(allLines, merged, context)
	return result
}
