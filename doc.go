// Package stablematch decides whether a group of mutual-preference
// participants admits a stable roommate matching, and produces it when
// one exists.
//
// 🚀 What is stablematch?
//
//	A small, deterministic, pure-Go implementation of Irving's two-phase
//	stable-roommates algorithm:
//	  • Phase 1: proposal/rejection reduction of every preference list
//	  • Phase 2: rotation discovery and elimination
//	  • Exact failure detection — "no stable matching exists" is a
//	    definite, provable negative, never a timeout or approximation
//
// ✨ Why choose stablematch?
//
//   - Precise contracts – either a perfect pairing or a sentinel error,
//     never a partial or best-effort result
//   - Deterministic – fixed selection rules, seedable generators
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	preftab/   — the preference table: ranked candidate lists with
//	             symmetric deletion as the single mutation primitive
//	roommates/ — the two-phase solver, matching extraction and a
//	             stability validator
//	builder/   — deterministic instance generators for tests, benchmarks
//	             and experiments
//
// Quick example:
//
//	t, _ := preftab.New([][]int{{1, 2, 3}, {0, 2, 3}, {3, 0, 1}, {2, 0, 1}})
//	m, err := roommates.Solve(t)
//	// m.Pairs() == [[0 1] [2 3]], err == nil
//
// Complexity: O(n²) for n participants, both phases included.
//
//	go get github.com/katalvlaran/stablematch
package stablematch
