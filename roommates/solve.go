package roommates

import (
	"fmt"

	"github.com/katalvlaran/stablematch/preftab"
)

// Solve runs Irving's algorithm over the given preference table and
// returns the stable matching, or ErrNoStableMatching when the instance
// provably has none.
//
// By default the table is cloned and the caller's copy is left untouched;
// see WithInPlace. The result is unique for a given instance — neither the
// proposal order nor the rotation pivot rule affects it.
//
// Complexity: O(n²) time, O(n²) memory (the clone dominates).
func Solve(t *preftab.Table, opts ...Option) (*Matching, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the table.
	if t == nil {
		return nil, ErrNilTable
	}

	// 3) Work on a private copy unless the caller handed over ownership.
	work := t
	if !cfg.InPlace {
		work = t.Clone()
	}

	// 4) Phase 1: proposal/rejection loop, then held-proposal truncation.
	r := &runner{t: work, n: work.N()}
	if err := r.propose(); err != nil {
		return nil, err
	}
	if err := r.reduce(); err != nil {
		return nil, err
	}

	// 5) Phase 2: eliminate rotations until every list is a singleton
	//    (success) or some list empties (failure). Skipped entirely when
	//    Phase 1 already left singletons everywhere.
	for {
		solved, pivot, err := r.status()
		if err != nil {
			return nil, err
		}
		if solved {
			break
		}
		ps, qs := r.findRotation(pivot)
		if len(ps) == 0 {
			return nil, fmt.Errorf("%w: rotation discovery from %d stalled", errInternal, pivot)
		}
		r.eliminate(ps, qs)
	}

	// 6) Read off the pairs.
	m, err := r.extract()
	if err != nil {
		return nil, err
	}

	// 7) Optional post-hoc stability check against the original rankings.
	//    Rank values are immutable, so this works even in-place.
	if cfg.Verify {
		stable, verr := IsStable(t, m)
		if verr != nil {
			return nil, verr
		}
		if !stable {
			return nil, ErrUnstableResult
		}
	}

	return m, nil
}

// runner holds the mutable state of a single solve.
type runner struct {
	t    *preftab.Table
	n    int
	held []int // held[q] — proposer whose offer q currently holds; -1 when free
}

// status scans all lists once. It fails on any empty list, otherwise
// reports whether the table is fully reduced and, if not, the lowest
// participant whose list still has two or more entries.
//
// Complexity: O(n).
func (r *runner) status() (solved bool, pivot int, err error) {
	pivot = -1
	for p := 0; p < r.n; p++ {
		switch l := r.t.Len(p); {
		case l == 0:
			return false, -1, ErrNoStableMatching
		case l >= 2 && pivot < 0:
			pivot = p
		}
	}

	return pivot < 0, pivot, nil
}

// truncateBelow removes from q's list every entry ranked strictly worse
// than keep, one symmetric deletion at a time. Both phases express their
// eliminations through this helper.
//
// Complexity: O(removed) amortized.
func (r *runner) truncateBelow(q, keep int) {
	limit, ok := r.t.Rank(q, keep)
	if !ok {
		return
	}
	for {
		last, ok := r.t.Last(q)
		if !ok {
			return // list emptied; the caller's scan reports failure
		}
		lr, _ := r.t.Rank(q, last)
		if lr <= limit {
			return
		}
		r.t.RemoveSymmetric(q, last)
	}
}

// extract reads the matching off a fully reduced table (every list a
// singleton) and asserts the mutuality postcondition.
//
// Complexity: O(n).
func (r *runner) extract() (*Matching, error) {
	partner := make([]int, r.n)
	for p := 0; p < r.n; p++ {
		q, ok := r.t.First(p)
		if !ok {
			return nil, fmt.Errorf("%w: participant %d has no remaining entry", errInternal, p)
		}
		partner[p] = q
	}

	// Postcondition: the relation is symmetric, hence a perfect pairing.
	for p, q := range partner {
		if q < 0 || q >= r.n || partner[q] != p {
			return nil, fmt.Errorf("%w: %d holds %d but %d holds %d", errInternal, p, q, q, partner[q])
		}
	}

	return &Matching{Partner: partner}, nil
}
