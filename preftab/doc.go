// Package preftab implements the preference table underlying the
// stable-roommates solver: one strictly-ordered candidate list per
// participant, shrunk only by symmetric deletion.
//
// The table is the single owner of all lists. Mutation happens through
// exactly one primitive, RemoveSymmetric, which deletes q from p's list
// and p from q's list in the same step; every higher-level elimination in
// the solver decomposes into sequences of that call. All other operations
// are pure reads.
//
// Representation:
//
//   - The original ranking of each participant is kept immutable; a rank
//     index (rank[p][q] = original position of q in p's ranking) gives
//     O(1) preference comparisons and O(1) location of any entry.
//   - Deletion flips a presence flag, so RemoveSymmetric is O(1).
//   - First/Last navigate via monotone head/tail cursors: entries are
//     never re-inserted, so each cursor only ever advances, giving O(1)
//     amortized access. Second scans forward from First.
//
// Complexity:
//
//   - Space: O(n²) for n participants.
//   - RemoveSymmetric, Len, Rank, Prefers, Contains: O(1).
//   - First, Last: O(1) amortized. Second: O(gap) scan.
//
// Lists shrink monotonically and never reorder; a list's entries are
// always distinct and never include the owning participant.
package preftab
