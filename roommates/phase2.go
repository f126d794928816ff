package roommates

// Phase 2 — rotation elimination.
//
// A rotation is the cyclic structure exposed by a participant whose list
// still has two or more entries: following qᵢ = second(pᵢ),
// pᵢ₊₁ = last(qᵢ) must eventually revisit a p-value, because the table's
// duality (first(p) = q iff last(q) = p) keeps every step inside the set
// of participants with list length ≥ 2. The cyclic part of that walk is
// the rotation; the acyclic prefix is discarded.
//
// Eliminating the rotation models each qᵢ rejecting its current holder
// pᵢ₊₁ and settling for pᵢ instead: qᵢ's list is truncated below pᵢ.
// This removes at least the pair (pᵢ₊₁, qᵢ) per member — so total
// remaining length strictly decreases and the phase terminates — and
// leaves the duality intact for the next discovery round.

// findRotation walks the second/last chain from pivot until a p-value
// repeats, then returns the cyclic part as parallel slices (ps[i], qs[i]).
// pivot's list must have length ≥ 2; on a table satisfying the duality
// every subsequent pᵢ does too.
//
// The seen arena maps each visited p to its index in the walk, giving the
// cycle's start in O(1) when the repeat shows up.
//
// Complexity: O(n) walk steps, O(n) memory.
func (r *runner) findRotation(pivot int) (ps, qs []int) {
	seen := make([]int, r.n)
	for i := range seen {
		seen[i] = -1
	}

	p := pivot
	for {
		q, ok := r.t.Second(p)
		if !ok {
			return nil, nil // duality broken; Solve reports errInternal
		}
		seen[p] = len(ps)
		ps = append(ps, p)
		qs = append(qs, q)

		next, ok := r.t.Last(q)
		if !ok {
			return nil, nil
		}
		if j := seen[next]; j >= 0 {
			return ps[j:], qs[j:]
		}
		p = next
	}
}

// eliminate removes the rotation: each qs[i]'s list is truncated below
// ps[i]. Every deletion is symmetric; emptied lists are caught by the
// status scan that follows.
//
// Complexity: O(removed) amortized.
func (r *runner) eliminate(ps, qs []int) {
	for i := range ps {
		r.truncateBelow(qs[i], ps[i])
	}
}
