package diffview_test

import (
	"fmt"

	"github.com/dacharyc/diffview"
)

func Example() {
	old := "The quick brown fox jumps"
	new := "The quick red fox leaps"

	result := diffview.DiffLines(old, new, 3)
	for _, hunk := range result.Hunks {
		for _, line := range hunk.Lines {
			switch line.Op {
			case diffview.Equal:
				fmt.Printf("  %s\n", result.OldLines[line.OldIndex])
			case diffview.Delete:
				fmt.Printf("- %s\n", result.OldLines[line.OldIndex])
			case diffview.Insert:
				fmt.Printf("+ %s\n", result.NewLines[line.NewIndex])
			}
		}
	}
	// Output:
	// - The quick brown fox jumps
	// + The quick red fox leaps
}

func ExampleDiffChars() {
	result := diffview.DiffChars("abc", "axc")

	for _, seg := range result.OldSegments {
		fmt.Printf("old %s: %q\n", seg.Op, seg.Text)
	}
	for _, seg := range result.NewSegments {
		fmt.Printf("new %s: %q\n", seg.Op, seg.Text)
	}
	// Output:
	// old Equal: "a"
	// old Delete: "b"
	// old Equal: "c"
	// new Equal: "a"
	// new Insert: "x"
	// new Equal: "c"
}

func ExampleCreateViewModel() {
	vm := diffview.CreateViewModel("line1\nold\nline3", "line1\nnew\nline3", 3)

	for _, line := range vm.Lines {
		fmt.Printf("%v | %v\n", line.Left.Kind, line.Right.Kind)
	}
	// Output:
	// Context | Context
	// Removed | Added
	// Context | Context
}
