package solver_test

import (
	"fmt"

	"github.com/katalvlaran/navicust/bitmap"
	"github.com/katalvlaran/navicust/part"
	"github.com/katalvlaran/navicust/solver"
)

// ExampleSolve places a single 1x1 "plus" part onto a 3x3 board with no
// out-of-bounds ring, unconstrained, and prints the first solution's
// position.
func ExampleSolve() {
	mask, err := bitmap.From([]bool{true}, 1, 1)
	if err != nil {
		panic(err)
	}
	parts := []part.Part{{IsSolid: false, Color: 0, CompressedMask: mask, UncompressedMask: mask}}
	reqs := []part.Requirement{{PartIndex: 0}}
	gs := part.GridSettings{Height: 3, Width: 3, CommandLineRow: 0}

	search := solver.Solve(parts, reqs, gs, []bool{false})
	for sol := range search.Solutions() {
		fmt.Println(sol[0].Loc.Position)
		break
	}
	// Output:
	// {0 0}
}
