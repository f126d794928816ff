// Package roommates defines the solver's result type, configuration
// options and sentinel errors.
package roommates

import "errors"

// Sentinel errors returned by the solver.
var (
	// ErrNilTable indicates that a nil *preftab.Table was passed to Solve.
	ErrNilTable = errors.New("roommates: table is nil")

	// ErrNoStableMatching indicates a definite, provable negative: some
	// participant's list emptied during reduction, so no pairing of this
	// cohort is stable. It is never accompanied by a partial result.
	ErrNoStableMatching = errors.New("roommates: no stable matching exists")

	// ErrBadMatching indicates a matching that does not form a perfect,
	// mutual pairing over the table's participants.
	ErrBadMatching = errors.New("roommates: malformed matching")

	// ErrUnstableResult indicates that WithVerify found a blocking pair in
	// a computed matching. This is an internal self-check failure.
	ErrUnstableResult = errors.New("roommates: result failed stability verification")
)

// errInternal flags a broken solver invariant (a phase-1-reduced table
// losing its first/last duality, or a non-mutual extraction). Reaching it
// means a bug in this package, not bad input.
var errInternal = errors.New("roommates: internal invariant violated")

// Matching is a stable perfect pairing over participants 0..n-1.
type Matching struct {
	// Partner maps each participant to its partner: Partner[p] == q
	// implies Partner[q] == p.
	Partner []int
}

// Pairs returns the n/2 unordered pairs of the matching, each as
// {low, high}, sorted by their lower participant.
//
// Complexity: O(n).
func (m *Matching) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(m.Partner)/2)
	for p, q := range m.Partner {
		if p < q {
			pairs = append(pairs, [2]int{p, q})
		}
	}

	return pairs
}

// Options configures a Solve run.
//
// InPlace — operate directly on the caller's table instead of a private
// clone. The table is consumed: after Solve it holds the reduced lists
// (singletons on success). Default false, so a table can be reused across
// independent solves.
//
// Verify — on success, re-check the computed matching for blocking pairs
// against the original rankings before returning it. Costs O(n²).
type Options struct {
	InPlace bool
	Verify  bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithInPlace makes Solve consume the caller's table rather than cloning
// it. Use when the table was built only to be solved once.
func WithInPlace() Option {
	return func(o *Options) {
		o.InPlace = true
	}
}

// WithVerify enables the post-hoc stability check on the returned
// matching. A failure surfaces as ErrUnstableResult.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// DefaultOptions returns the default configuration: clone the input table,
// skip verification.
func DefaultOptions() Options {
	return Options{
		InPlace: false,
		Verify:  false,
	}
}
