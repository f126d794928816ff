package roommates_test

import (
	"testing"

	"github.com/katalvlaran/stablematch/builder"
	"github.com/katalvlaran/stablematch/preftab"
	"github.com/katalvlaran/stablematch/roommates"
)

// benchSolve measures a full solve over a prebuilt table. The default
// clone-per-call mode keeps iterations independent.
func benchSolve(b *testing.B, tab *preftab.Table) {
	b.Helper()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roommates.Solve(tab); err != nil && err != roommates.ErrNoStableMatching {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Random64(b *testing.B) {
	tab, err := builder.Random(64, 42)
	if err != nil {
		b.Fatal(err)
	}
	benchSolve(b, tab)
}

func BenchmarkSolve_Random256(b *testing.B) {
	tab, err := builder.Random(256, 42)
	if err != nil {
		b.Fatal(err)
	}
	benchSolve(b, tab)
}

func BenchmarkSolve_Ring256(b *testing.B) {
	tab, err := builder.Ring(256)
	if err != nil {
		b.Fatal(err)
	}
	benchSolve(b, tab)
}

func BenchmarkIsStable_Random256(b *testing.B) {
	tab, err := builder.Random(256, 7)
	if err != nil {
		b.Fatal(err)
	}
	m, err := roommates.Solve(tab)
	if err != nil {
		b.Skip("instance has no stable matching")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := roommates.IsStable(tab, m); err != nil {
			b.Fatal(err)
		}
	}
}
