package preftab

import "fmt"

// Table holds, per participant 0..n-1, an ordered sequence of remaining
// candidates (most-preferred first). Lists are created once from the input
// rankings and only ever shrink, via RemoveSymmetric.
//
// The zero value is not usable; construct with New.
type Table struct {
	n       int      // number of participants
	order   [][]int  // order[p] — original strict ranking of all others; immutable
	rank    [][]int  // rank[p][q] — position of q in order[p]; rank[p][p] == -1
	present [][]bool // present[p][i] — order[p][i] still in p's list
	size    []int    // size[p] — current list length
	head    []int    // head[p] — first possibly-present index in order[p]; monotone
	tail    []int    // tail[p] — last possibly-present index in order[p]; monotone
}

// New builds a Table from a complete preference mapping: prefs[p] must be a
// strict total order over every participant other than p. The slice is
// copied; the caller's data is never retained.
//
// Validation (in order):
//  1. prefs non-empty (ErrNilPrefs).
//  2. at least two participants (ErrTooFewParticipants).
//  3. even participant count (ErrOddParticipants).
//  4. each ranking has length n-1 (ErrIncompleteRanking).
//  5. entries within 0..n-1 (ErrOutOfRange), not the owner
//     (ErrSelfReference), not repeated (ErrDuplicateEntry).
//
// Length n-1 plus distinct, in-range, non-self entries implies every other
// participant appears exactly once, so no separate coverage pass is needed.
//
// Complexity: O(n²) time and space.
func New(prefs [][]int) (*Table, error) {
	// 1) Reject absent input before touching sizes.
	if len(prefs) == 0 {
		return nil, ErrNilPrefs
	}
	n := len(prefs)

	// 2) A pairing needs at least one pair.
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewParticipants, n)
	}

	// 3) A perfect pairing over n participants needs n even.
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddParticipants, n)
	}

	// 4) Allocate all per-participant state up front.
	t := &Table{
		n:       n,
		order:   make([][]int, n),
		rank:    make([][]int, n),
		present: make([][]bool, n),
		size:    make([]int, n),
		head:    make([]int, n),
		tail:    make([]int, n),
	}

	// 5) Copy and validate each ranking, filling the rank index as we go.
	for p := 0; p < n; p++ {
		if len(prefs[p]) != n-1 {
			return nil, fmt.Errorf("%w: participant %d lists %d of %d candidates",
				ErrIncompleteRanking, p, len(prefs[p]), n-1)
		}

		t.rank[p] = make([]int, n)
		for q := 0; q < n; q++ {
			t.rank[p][q] = -1 // -1 marks "not seen yet"; stays -1 only for q == p
		}

		t.order[p] = make([]int, n-1)
		t.present[p] = make([]bool, n-1)
		for i, q := range prefs[p] {
			switch {
			case q < 0 || q >= n:
				return nil, fmt.Errorf("%w: participant %d ranks %d (n=%d)", ErrOutOfRange, p, q, n)
			case q == p:
				return nil, fmt.Errorf("%w: participant %d", ErrSelfReference, p)
			case t.rank[p][q] >= 0:
				return nil, fmt.Errorf("%w: participant %d ranks %d twice", ErrDuplicateEntry, p, q)
			}
			t.order[p][i] = q
			t.rank[p][q] = i
			t.present[p][i] = true
		}

		t.size[p] = n - 1
		t.head[p] = 0
		t.tail[p] = n - 2
	}

	return t, nil
}

// Clone returns an independent deep copy of the table. The copy shares no
// state with the receiver, so a solver can consume it while the original
// stays intact for later solves or post-hoc stability checks.
//
// Complexity: O(n²).
func (t *Table) Clone() *Table {
	c := &Table{
		n:       t.n,
		order:   make([][]int, t.n),
		rank:    make([][]int, t.n),
		present: make([][]bool, t.n),
		size:    append([]int(nil), t.size...),
		head:    append([]int(nil), t.head...),
		tail:    append([]int(nil), t.tail...),
	}
	for p := 0; p < t.n; p++ {
		c.order[p] = append([]int(nil), t.order[p]...)
		c.rank[p] = append([]int(nil), t.rank[p]...)
		c.present[p] = append([]bool(nil), t.present[p]...)
	}

	return c
}

// N returns the number of participants.
func (t *Table) N() int { return t.n }
