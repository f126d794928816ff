package roommates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/roommates"
)

func TestIsStable_NilTable(t *testing.T) {
	_, err := roommates.IsStable(nil, &roommates.Matching{Partner: []int{1, 0}})
	assert.ErrorIs(t, err, roommates.ErrNilTable)
}

func TestIsStable_MalformedMatching(t *testing.T) {
	tab := mustTable(t, [][]int{
		{1, 2, 3},
		{0, 2, 3},
		{3, 0, 1},
		{2, 0, 1},
	})

	cases := []struct {
		name string
		m    *roommates.Matching
	}{
		{"nil matching", nil},
		{"wrong size", &roommates.Matching{Partner: []int{1, 0}}},
		{"self pairing", &roommates.Matching{Partner: []int{0, 1, 3, 2}}},
		{"out of range", &roommates.Matching{Partner: []int{4, 0, 3, 2}}},
		{"not mutual", &roommates.Matching{Partner: []int{1, 2, 0, 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := roommates.IsStable(tab, tc.m)
			assert.ErrorIs(t, err, roommates.ErrBadMatching)
		})
	}
}

func TestIsStable_DetectsBlockingPair(t *testing.T) {
	tab := mustTable(t, [][]int{
		{1, 2, 3},
		{0, 2, 3},
		{3, 0, 1},
		{2, 0, 1},
	})

	// (0,1) and (2,3) pair mutual first choices: stable.
	stable, err := roommates.IsStable(tab, &roommates.Matching{Partner: []int{1, 0, 3, 2}})
	require.NoError(t, err)
	assert.True(t, stable)

	// Cross the pairs and 0 and 1 both prefer each other over their
	// assigned partners: blocking.
	stable, err = roommates.IsStable(tab, &roommates.Matching{Partner: []int{2, 3, 0, 1}})
	require.NoError(t, err)
	assert.False(t, stable)
}

func TestIsStable_AfterInPlaceSolve(t *testing.T) {
	// Rank is immune to deletions, so the check stays meaningful on a table
	// that an in-place solve already reduced to singletons.
	tab := mustTable(t, irvingSix())

	m, err := roommates.Solve(tab, roommates.WithInPlace())
	require.NoError(t, err)

	stable, err := roommates.IsStable(tab, m)
	require.NoError(t, err)
	assert.True(t, stable)
}
