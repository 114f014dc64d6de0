package diffview

import "strings"

// splitLines splits s on line terminators (LF, lone CR, CRLF), each
// recognized independently so mixed terminators within one input are
// handled correctly. The terminator itself is never included in the
// emitted line. An input ending in a terminator yields a trailing empty
// line ("a\n" -> ["a", ""]); an input not ending in one yields its
// trailing fragment as the final line. Empty input yields an empty slice.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// joinLines is the inverse convenience used by tests to reconstruct the
// original terminator-neutral text for comparison.
func joinLines(lines []string, sep string) string {
	return strings.Join(lines, sep)
}
