// Package builder constructs ready-to-solve preference tables for the
// stable-roommates solver: deterministic synthetic instances for tests,
// benchmarks and experiments.
//
// Two shapes are provided:
//
//   - Random(n, seed) — every participant ranks the others in an
//     independently shuffled order. Deterministic: the same seed always
//     produces the same instance (seed 0 selects a fixed default seed).
//   - Ring(n) — participant i ranks i+1, i+2, … (mod n) in increasing
//     cyclic distance. Always solvable for even n: the antipodal pairing
//     (i, i+n/2) is stable, since two participants cannot both be within
//     the closer half of each other's ring. Reaching it exercises the
//     rotation-elimination phase.
//
// All validation is delegated to preftab.New, so the generators return
// the same sentinel errors (e.g. preftab.ErrOddParticipants for odd n).
package builder
