package roommates

// Phase 1 — proposal reduction.
//
// Every participant is Free until some receiver holds its proposal; a
// receiver holds at most one proposal and trades up whenever a preferred
// proposer arrives. Each rejection is a symmetric deletion, so a rejected
// proposer's next target is always the new front of its list.
//
// The loop ends with acceptance forming a bijection: n proposers, each
// held by a distinct receiver, hence every receiver holds exactly one
// proposal. If anyone runs out of candidates first, no stable matching
// exists and the whole solve stops.

// propose drives the proposal/rejection loop to quiescence.
//
// Working set: a FIFO queue seeded 0..n-1. A proposer rejected by the
// current front of its list retries immediately with the next entry; a
// proposer bumped by a rival re-enters at the back of the queue. The final
// reduced table is the same under any processing order.
//
// Complexity: O(n²) — every retry consumes one symmetric deletion.
func (r *runner) propose() error {
	// 1) All participants start Free (held by nobody).
	r.held = make([]int, r.n)
	for i := range r.held {
		r.held[i] = -1
	}
	queue := make([]int, 0, r.n)
	for p := 0; p < r.n; p++ {
		queue = append(queue, p)
	}

	// 2) Drain the working set.
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for {
			// 2a) p proposes to the best candidate it has left.
			q, ok := r.t.First(p)
			if !ok {
				return ErrNoStableMatching // p exhausted its list
			}

			// 2b) A free receiver holds the proposal outright.
			rival := r.held[q]
			if rival < 0 {
				r.held[q] = p
				break
			}

			// 2c) q compares p against its currently held proposer, by
			//     q's own ranking.
			if r.t.Prefers(q, p, rival) {
				// q trades up: the old holder is rejected and must
				// propose again from the back of the queue.
				r.t.RemoveSymmetric(rival, q)
				r.held[q] = p
				if r.t.Len(rival) == 0 {
					return ErrNoStableMatching
				}
				queue = append(queue, rival)
				break
			}

			// 2d) q keeps its holder; p is rejected and retries with the
			//     next entry of its shrunken list.
			r.t.RemoveSymmetric(p, q)
			if r.t.Len(p) == 0 {
				return ErrNoStableMatching
			}
		}
	}

	return nil
}

// reduce applies the post-proposal truncation: once q holds p, q will
// never accept anyone it ranks below p, so all such entries are deleted —
// symmetrically, keeping every list mutually consistent.
//
// Afterwards the table satisfies the duality the rotation phase relies
// on: q is the first entry of p's list iff p is the last entry of q's.
//
// Complexity: O(n²) total deletions.
func (r *runner) reduce() error {
	for q := 0; q < r.n; q++ {
		r.truncateBelow(q, r.held[q])
	}

	// Truncation shrinks other participants' lists too; an empty list
	// anywhere means no stable matching.
	for p := 0; p < r.n; p++ {
		if r.t.Len(p) == 0 {
			return ErrNoStableMatching
		}
	}

	return nil
}
