// Package roommates implements Irving's two-phase algorithm for the
// stable-roommates problem: given an even cohort in which every
// participant strictly ranks all others, find a perfect pairing with no
// blocking pair, or prove that none exists.
//
// A blocking pair is two participants, not paired together, who both
// prefer each other over their assigned partners. A matching without
// blocking pairs is stable.
//
// Algorithm outline:
//
//  1. Phase 1 (proposal reduction): every participant proposes down its
//     list; receivers hold the best proposal seen so far and reject the
//     rest. Once everyone holds exactly one proposer, each list is
//     truncated below the held proposer. All removals are symmetric.
//  2. Phase 2 (rotation elimination): while some list still has two or
//     more entries, the exposed rotation starting at the lowest such
//     participant — the cycle generated by qᵢ = second(pᵢ),
//     pᵢ₊₁ = last(qᵢ) — is found and eliminated. Elimination truncates
//     each qᵢ's list below pᵢ, which preserves the table's first/last
//     duality so the next rotation is well defined.
//  3. Extraction: when every list is a singleton, the sole entries form
//     the (unique) resulting matching.
//
// If any list empties, in either phase, the instance provably has no
// stable matching and Solve returns ErrNoStableMatching. No partial
// result accompanies the error.
//
// Complexity:
//
//   - Time:   O(n²) for n participants — at most n(n-1)/2 symmetric
//     deletions across both phases, each O(1).
//   - Memory: O(n²) for the preference table, O(n) solver state.
//
// Errors (sentinel):
//
//   - ErrNilTable         if the provided table is nil.
//   - ErrNoStableMatching if the instance has no stable matching.
//   - ErrBadMatching      if IsStable receives a malformed matching.
//   - ErrUnstableResult   if WithVerify detects a blocking pair (an
//     internal self-check; it should never fire).
//
// Example usage:
//
//	t, _ := preftab.New(prefs)
//	m, err := roommates.Solve(t)
//	if errors.Is(err, roommates.ErrNoStableMatching) {
//	    // definite negative: no pairing of this cohort is stable
//	}
//	for _, pair := range m.Pairs() {
//	    fmt.Println(pair[0], "↔", pair[1])
//	}
package roommates
