package diffview

// myersTrace holds the state of one run of the classical Myers
// shortest-edit-script search: the furthest-reaching x coordinate on
// each diagonal, snapshotted at every edit distance d so the backtrack
// pass can recover the path. This is the full-trace variant of Myers
// 1986 ("An O(ND) Difference Algorithm and Its Variations"), not the
// teacher's linear-space divide-and-conquer search: SPEC_FULL.md §4.3
// explains why the heuristic-driven divide-and-conquer search isn't
// reused here, and the tie-break below is pinned to match it exactly.
type myersTrace struct {
	a, b   []element
	offset int     // shift applied to diagonal k so indices stay non-negative
	trace  [][]int // trace[d] is a snapshot of v taken before processing edit distance d (its state after d-1)
}

// diffOps computes the minimal edit script turning a into b, as a
// sequence of Equal/Delete/Insert operations. Both empty yields an empty
// script; one side empty yields a script of only that side's op.
//
// Tie-break (matches the reference implementation exactly): when deciding
// whether a step came from the "down" (insert) or "right" (delete)
// neighbor diagonal, ties (v[k-1] == v[k+1]) resolve to delete. This
// determines the exact shape of the script, not just its length.
func diffOps(a, b []element) []Op {
	n, m := len(a), len(b)
	maxD := n + m
	if maxD == 0 {
		return nil
	}

	t := &myersTrace{a: a, b: b, offset: maxD}
	v := make([]int, 2*maxD+1)

	found := false
	for d := 0; d <= maxD && !found; d++ {
		snapshot := make([]int, len(v))
		copy(snapshot, v)
		t.trace = append(t.trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[t.idx(k-1)] < v[t.idx(k+1)]) {
				x = v[t.idx(k+1)] // move down: insert
			} else {
				x = v[t.idx(k-1)] + 1 // move right: delete
			}
			y := x - k
			for x < n && y < m && a[x].equalTo(b[y]) {
				x++
				y++
			}
			v[t.idx(k)] = x
			if x >= n && y >= m {
				found = true
				break
			}
		}
	}

	return t.backtrack()
}

// idx converts diagonal k into an index into a (non-shifted) v slice.
func (t *myersTrace) idx(k int) int { return k + t.offset }

// backtrack walks t.trace from the final edit distance back to 0,
// recovering the path taken and emitting Equal runs plus the single
// Insert/Delete step that produced each successive trace snapshot. The
// result is built in reverse (from (n,m) down to (0,0)) and reversed
// once at the end.
func (t *myersTrace) backtrack() []Op {
	n, m := len(t.a), len(t.b)
	x, y := n, m
	var result []Op

	for d := len(t.trace) - 1; d >= 0 && (x > 0 || y > 0); d-- {
		v := t.trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[t.idx(k-1)] < v[t.idx(k+1)]) {
			prevK = k + 1 // came from above: insert
		} else {
			prevK = k - 1 // came from the left: delete
		}
		prevX := v[t.idx(prevK)]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			result = append(result, Equal)
			x--
			y--
		}
		if d > 0 {
			if x == prevX {
				result = append(result, Insert)
				y--
			} else {
				result = append(result, Delete)
				x--
			}
		}
	}

	reverseOps(result)
	return result
}

func reverseOps(ops []Op) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}
