package diffview

import "github.com/clipperhouse/uax29/v2/graphemes"

// segmentGraphemes splits s into its ordered grapheme clusters under
// UAX #29 (base + combining marks, emoji with modifiers, ZWJ sequences
// each count as one cluster). Concatenating the result reproduces s
// byte-for-byte. This is the concrete binding of the "external
// collaborator" grapheme segmenter the core's design assumes, following
// the wrapping pattern of codalotl's internal/q/uni package.
func segmentGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	iter := graphemes.FromString(s)
	for iter.Next() {
		clusters = append(clusters, iter.Value())
	}
	return clusters
}
