package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffLines_NoChanges(t *testing.T) {
	result := DiffLines("a\nb\nc", "a\nb\nc", 3)
	assert.Empty(t, result.Hunks)
}

func TestDiffLines_S1(t *testing.T) {
	result := DiffLines("line1\nline3", "line1\nline2\nline3", 3)
	require.Len(t, result.Hunks, 1)
	assert.EqualValues(t, 2, result.Hunks[0].OldCount)
	assert.EqualValues(t, 3, result.Hunks[0].NewCount)
}

func TestDiffLines_S2(t *testing.T) {
	result := DiffLines("line1\nold\nline3", "line1\nnew\nline3", 3)
	require.Len(t, result.Hunks, 1)

	var hasDelete, hasInsert bool
	for _, line := range result.Hunks[0].Lines {
		switch line.Op {
		case Delete:
			hasDelete = true
			assert.Equal(t, "old", result.OldLines[line.OldIndex])
		case Insert:
			hasInsert = true
			assert.Equal(t, "new", result.NewLines[line.NewIndex])
		}
	}
	assert.True(t, hasDelete)
	assert.True(t, hasInsert)
}

func TestDiffLines_S4MergesGapWithinThreshold(t *testing.T) {
	old := strings.Split("1\n2\n3\n4\n5\n6\n7\n8\n9\n10", "\n")
	new := strings.Split("1\nA\n3\n4\n5\nB\n7\n8\n9\n10", "\n")
	result := DiffLinesSlices(old, new, 2)
	assert.Len(t, result.Hunks, 1)
}

func TestDiffLines_S8MixedTerminatorsNoHunks(t *testing.T) {
	result := DiffLines("a\r\nb\rc", "a\nb\nc", 3)
	assert.Empty(t, result.Hunks)
}

func TestDiffLines_HunkLineIndicesMatchOps(t *testing.T) {
	// invariant 1: replaying every hunk's lines against OldLines/NewLines
	// never desyncs from the DiffResult's own recorded indices.
	old := "alpha\nbeta\ngamma\ndelta"
	new := "alpha\nBETA\ngamma\nDELTA"
	result := DiffLines(old, new, 1)

	for _, hunk := range result.Hunks {
		for _, line := range hunk.Lines {
			switch line.Op {
			case Equal:
				assert.Equal(t, result.OldLines[line.OldIndex], result.NewLines[line.NewIndex])
			case Delete:
				assert.True(t, line.HasOld())
				assert.False(t, line.HasNew())
			case Insert:
				assert.True(t, line.HasNew())
				assert.False(t, line.HasOld())
			}
		}
	}
}

func TestDiffLinesSlices_ContextZero(t *testing.T) {
	result := DiffLinesSlices([]string{"a", "b", "c"}, []string{"a", "x", "c"}, 0)
	require.Len(t, result.Hunks, 1)
	hunk := result.Hunks[0]
	// With no context, the hunk covers exactly the changed line(s).
	assert.EqualValues(t, 1, hunk.OldCount)
	assert.EqualValues(t, 1, hunk.NewCount)
}
