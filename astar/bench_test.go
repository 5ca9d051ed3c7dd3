package astar_test

import (
	"testing"

	"github.com/katalvlaran/micromouse/astar"
	"github.com/katalvlaran/micromouse/grid"
)

// BenchmarkSearch measures corner-to-corner search on a 64×64-cell generated maze.
func BenchmarkSearch(b *testing.B) {
	board, err := grid.Generate(64, 64, grid.WithSeed(42), grid.WithBraid(0.3))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(board.Passable, board.Bounds(), board.Start(), board.Goal())
	}
}
