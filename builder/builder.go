package builder

import (
	"fmt"

	"github.com/katalvlaran/stablematch/preftab"
)

// Random returns a preference table for n participants in which every
// ranking is an independent uniform shuffle of all other participants.
// Deterministic for a given seed; seed 0 selects the fixed default seed.
//
// n must be even and at least 2; violations surface as preftab sentinels.
//
// Complexity: O(n²).
func Random(n int, seed int64) (*preftab.Table, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", preftab.ErrTooFewParticipants, n)
	}

	rng := rngFromSeed(seed)
	prefs := make([][]int, n)
	for p := range prefs {
		row := make([]int, 0, n-1)
		for q := 0; q < n; q++ {
			if q != p {
				row = append(row, q)
			}
		}
		shuffleIntsInPlace(row, rng)
		prefs[p] = row
	}

	return preftab.New(prefs)
}

// Ring returns the cyclic instance over n participants: participant i
// ranks i+1, i+2, …, i+n-1 (mod n), i.e. the others in increasing cyclic
// distance. For even n the antipodal pairing (i, i+n/2) is stable, so the
// instance always has a solution — and reaching it requires rotation
// elimination, which makes Ring a handy Phase-2 fixture.
//
// n must be even and at least 2; violations surface as preftab sentinels.
//
// Complexity: O(n²).
func Ring(n int) (*preftab.Table, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", preftab.ErrTooFewParticipants, n)
	}

	prefs := make([][]int, n)
	for p := range prefs {
		row := make([]int, 0, n-1)
		for d := 1; d < n; d++ {
			row = append(row, (p+d)%n)
		}
		prefs[p] = row
	}

	return preftab.New(prefs)
}
