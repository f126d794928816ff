package roommates

import (
	"fmt"

	"github.com/katalvlaran/stablematch/preftab"
)

// IsStable reports whether m is a stable matching of t: a perfect, mutual
// pairing in which no two participants, not paired together, both prefer
// each other over their assigned partners.
//
// Preferences are judged by t's original rankings (preftab.Table.Rank is
// unaffected by deletions), so the check is valid even against a table a
// previous in-place Solve has consumed.
//
// Errors: ErrNilTable for a nil table; ErrBadMatching when m is nil, has
// the wrong size, or is not a mutual pairing.
//
// Complexity: O(n²).
func IsStable(t *preftab.Table, m *Matching) (bool, error) {
	// 1) Validate inputs.
	if t == nil {
		return false, ErrNilTable
	}
	n := t.N()
	if m == nil || len(m.Partner) != n {
		return false, fmt.Errorf("%w: want %d participants", ErrBadMatching, n)
	}
	for p, q := range m.Partner {
		if q < 0 || q >= n || q == p || m.Partner[q] != p {
			return false, fmt.Errorf("%w: participant %d paired with %d", ErrBadMatching, p, q)
		}
	}

	// 2) Scan all unordered non-partner pairs for a blocking pair.
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if m.Partner[a] == b {
				continue
			}
			if t.Prefers(a, b, m.Partner[a]) && t.Prefers(b, a, m.Partner[b]) {
				return false, nil // a and b would elope
			}
		}
	}

	return true, nil
}
