// Package diffview computes side-by-side text diffs.
//
// It implements the Myers O((N+M)·D) shortest-edit-script algorithm over
// lines and, separately, over Unicode grapheme clusters; groups the
// resulting edit script into hunks with surrounding context; and pairs
// deletions with insertions into a row-aligned two-pane view model with
// inline, grapheme-accurate highlights. The package is a pure, synchronous
// library: every exported function is a deterministic function of its
// arguments, performs no I/O, and returns a result owned by the caller.
//
// See cmd/diffview for a small terminal renderer built on top of this
// package.
package diffview

// DefaultContext is the default context-line width: cmd/diffview's
// -context flag defaults to it, and its -check cross-check always uses
// it. Go has no default-argument syntax, so callers that want the
// default of 3 context lines pass this constant explicitly.
const DefaultContext = 3
