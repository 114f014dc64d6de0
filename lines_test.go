package diffview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no terminator", "abc", []string{"abc"}},
		{"trailing lf", "a\n", []string{"a", ""}},
		{"lf separated", "a\nb", []string{"a", "b"}},
		{"crlf separated", "a\r\nb", []string{"a", "b"}},
		{"lone cr separated", "a\rb", []string{"a", "b"}},
		{"mixed terminators", "a\r\nb\rc", []string{"a", "b", "c"}},
		{"mixed terminators s8 new side", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing crlf", "a\r\n", []string{"a", ""}},
		{"multiple blank lines", "a\n\n\nb", []string{"a", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.in))
		})
	}
}

func TestSplitLines_S8Scenario(t *testing.T) {
	// S8: oldText and newText are terminator-different but line-content
	// identical, so diffing them must produce no hunks at all.
	oldLines := splitLines("a\r\nb\rc")
	newLines := splitLines("a\nb\nc")
	assert.Equal(t, oldLines, newLines)
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", joinLines([]string{"a", "b", "c"}, "\n"))
	assert.Equal(t, "", joinLines(nil, "\n"))
}
