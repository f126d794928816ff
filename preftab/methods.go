package preftab

// Len returns the current length of p's list, or 0 for an invalid p.
//
// Complexity: O(1).
func (t *Table) Len(p int) int {
	if p < 0 || p >= t.n {
		return 0
	}

	return t.size[p]
}

// First returns the most-preferred remaining candidate of p.
// ok is false when p is invalid or the list is empty.
//
// Complexity: O(1) amortized — the head cursor only ever advances.
func (t *Table) First(p int) (int, bool) {
	if p < 0 || p >= t.n || t.size[p] == 0 {
		return 0, false
	}
	// Skip deleted entries; deletions are permanent, so this progress is
	// never undone and the cursor advances at most n-1 times in total.
	for !t.present[p][t.head[p]] {
		t.head[p]++
	}

	return t.order[p][t.head[p]], true
}

// Second returns the second remaining candidate of p.
// ok is false when p is invalid or the list is shorter than two.
//
// Complexity: O(gap) — forward scan from First.
func (t *Table) Second(p int) (int, bool) {
	if p < 0 || p >= t.n || t.size[p] < 2 {
		return 0, false
	}
	if _, ok := t.First(p); !ok { // settle the head cursor
		return 0, false
	}
	for i := t.head[p] + 1; i < len(t.order[p]); i++ {
		if t.present[p][i] {
			return t.order[p][i], true
		}
	}

	return 0, false // unreachable while size[p] >= 2
}

// Last returns the least-preferred remaining candidate of p.
// ok is false when p is invalid or the list is empty.
//
// Complexity: O(1) amortized — the tail cursor only ever retreats.
func (t *Table) Last(p int) (int, bool) {
	if p < 0 || p >= t.n || t.size[p] == 0 {
		return 0, false
	}
	for !t.present[p][t.tail[p]] {
		t.tail[p]--
	}

	return t.order[p][t.tail[p]], true
}

// Contains reports whether q is still in p's list.
//
// Complexity: O(1).
func (t *Table) Contains(p, q int) bool {
	if p < 0 || p >= t.n || q < 0 || q >= t.n || q == p {
		return false
	}

	return t.present[p][t.rank[p][q]]
}

// Rank returns the position of q in p's ORIGINAL ranking (0 = most
// preferred). The value is unaffected by deletions, which makes it the
// right basis for preference comparisons after lists have shrunk.
// ok is false when p or q is invalid or q == p.
//
// Complexity: O(1).
func (t *Table) Rank(p, q int) (int, bool) {
	if p < 0 || p >= t.n || q < 0 || q >= t.n || q == p {
		return 0, false
	}

	return t.rank[p][q], true
}

// Prefers reports whether p ranks a strictly above b in p's original
// ranking. Returns false when any argument is invalid or a == b.
//
// Complexity: O(1).
func (t *Table) Prefers(p, a, b int) bool {
	ra, okA := t.Rank(p, a)
	rb, okB := t.Rank(p, b)
	if !okA || !okB {
		return false
	}

	return ra < rb
}

// Remaining returns a fresh snapshot of p's current list, in preference
// order. Returns nil for an invalid p. Intended for extraction, tests and
// debugging; the solver's hot path uses First/Second/Last instead.
//
// Complexity: O(n).
func (t *Table) Remaining(p int) []int {
	if p < 0 || p >= t.n {
		return nil
	}
	out := make([]int, 0, t.size[p])
	for i, q := range t.order[p] {
		if t.present[p][i] {
			out = append(out, q)
		}
	}

	return out
}

// RemoveSymmetric deletes q from p's list and p from q's list in one
// logical step. This is the only mutation primitive: both solver phases
// express every elimination as a sequence of these calls, which is what
// keeps the two sides of every relation mutually consistent.
//
// No-op when either participant is invalid, p == q, or the pair is already
// absent (each side is cleared independently, so a half-present pair —
// which the solver never creates — would still converge to fully absent).
//
// Complexity: O(1).
func (t *Table) RemoveSymmetric(p, q int) {
	if p < 0 || p >= t.n || q < 0 || q >= t.n || p == q {
		return
	}
	if i := t.rank[p][q]; t.present[p][i] {
		t.present[p][i] = false
		t.size[p]--
	}
	if i := t.rank[q][p]; t.present[q][i] {
		t.present[q][i] = false
		t.size[q]--
	}
}
