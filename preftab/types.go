// Package preftab defines the preference table type and the sentinel
// errors reported by its validating constructor.
package preftab

import "errors"

// Sentinel errors returned by New. Construction is the upstream guard for
// the solver: a *Table that exists is well-formed by contract, so the
// engines never re-validate.
var (
	// ErrNilPrefs indicates that a nil or empty preference mapping was supplied.
	ErrNilPrefs = errors.New("preftab: preferences are nil or empty")

	// ErrTooFewParticipants indicates fewer than two participants.
	ErrTooFewParticipants = errors.New("preftab: need at least two participants")

	// ErrOddParticipants indicates an odd participant count; a perfect
	// pairing requires an even cohort.
	ErrOddParticipants = errors.New("preftab: participant count must be even")

	// ErrIncompleteRanking indicates a ranking that does not list every
	// other participant exactly once.
	ErrIncompleteRanking = errors.New("preftab: ranking must cover all other participants")

	// ErrSelfReference indicates a participant ranking itself.
	ErrSelfReference = errors.New("preftab: ranking contains the owner")

	// ErrDuplicateEntry indicates a participant appearing twice in one ranking.
	ErrDuplicateEntry = errors.New("preftab: duplicate entry in ranking")

	// ErrOutOfRange indicates a ranking entry outside 0..n-1.
	ErrOutOfRange = errors.New("preftab: ranking entry out of range")
)
