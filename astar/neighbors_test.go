package astar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilenav/tilenav/gridmap"
)

// neighborCoords collects the generated neighbor set of (x,y) as coords.
func neighborCoords(p *Pathfinder, x, y int, diagonal bool) map[gridmap.Coord]bool {
	var buf [8]*gridmap.Node
	out := make(map[gridmap.Coord]bool)
	for _, n := range p.neighborsOf(p.grid.Node(gridmap.Coord{X: x, Y: y}), diagonal, buf[:0]) {
		out[n.Pos] = true
	}

	return out
}

// setup builds a 3×3 fully tiled pathfinder and applies the obstacle set.
func setup(t *testing.T, obstacles ...gridmap.Coord) *Pathfinder {
	t.Helper()
	p := New()
	require.NoError(t, p.InitializeGrid(Bounds{Width: 3, Height: 3}, func(gridmap.Coord) bool { return true }))
	// Endpoints parked on (2,2) so they never interfere with the cells
	// under test around (0,0).
	require.NoError(t, p.RefreshWalkability(obstacles, gridmap.Coord{X: 2, Y: 2}, gridmap.Coord{X: 2, Y: 2}))

	return p
}

// TestNeighbors_CardinalAlwaysConsidered verifies the 4 cardinal offsets
// are generated regardless of the diagonal flag, clipped at map edges.
func TestNeighbors_CardinalAlwaysConsidered(t *testing.T) {
	p := setup(t)

	nbs := neighborCoords(p, 1, 1, false)
	require.Len(t, nbs, 4)
	for _, want := range []gridmap.Coord{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}} {
		require.True(t, nbs[want], "missing cardinal neighbor %v", want)
	}

	// Corner cell: map edge simply excludes the absent cells.
	nbs = neighborCoords(p, 0, 0, false)
	require.Len(t, nbs, 2)
}

// TestNeighbors_DiagonalEnabled verifies all 8 offsets appear on an open
// interior cell when diagonals are on.
func TestNeighbors_DiagonalEnabled(t *testing.T) {
	p := setup(t)
	require.Len(t, neighborCoords(p, 1, 1, true), 8)
}

// TestNeighbors_CornerCutting_BothCornersBlocked pins the hard rule: when
// both cardinal corners of a diagonal move are unwalkable, that diagonal
// neighbor must never be generated.
func TestNeighbors_CornerCutting_BothCornersBlocked(t *testing.T) {
	// Corners of the (0,0)→(1,1) move are (1,0) and (0,1).
	p := setup(t, gridmap.Coord{X: 1, Y: 0}, gridmap.Coord{X: 0, Y: 1})

	nbs := neighborCoords(p, 0, 0, true)
	require.False(t, nbs[gridmap.Coord{X: 1, Y: 1}],
		"diagonal through a fully solid corner must be cut")
	// The blocked cardinals themselves are still generated; the engine
	// filters them on walkability afterwards.
	require.True(t, nbs[gridmap.Coord{X: 1, Y: 0}])
	require.True(t, nbs[gridmap.Coord{X: 0, Y: 1}])
}

// TestNeighbors_CornerCutting_EitherCornerAdmits documents the permissive
// either-corner policy: one clear corner is enough to admit the diagonal,
// allowing movement past a single-sided obstacle. This is intentional
// behavior, looser than the common both-corners-clear rule.
func TestNeighbors_CornerCutting_EitherCornerAdmits(t *testing.T) {
	for _, corner := range []gridmap.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}} {
		p := setup(t, corner)
		nbs := neighborCoords(p, 0, 0, true)
		require.True(t, nbs[gridmap.Coord{X: 1, Y: 1}],
			"diagonal must be admitted with only corner %v blocked", corner)
	}
}

// TestNeighbors_CornerCutting_AbsentCornerCountsAsClear checks that a
// corner beyond the map edge behaves as walkable for the corner rule.
func TestNeighbors_CornerCutting_AbsentCornerCountsAsClear(t *testing.T) {
	// 1×3 column: the (0,1)→(1,0)-style corners of any diagonal from the
	// column fall outside the grid.
	p := New()
	require.NoError(t, p.InitializeGrid(Bounds{Width: 1, Height: 3}, func(gridmap.Coord) bool { return true }))
	require.NoError(t, p.RefreshWalkability(nil, gridmap.Coord{X: 0, Y: 0}, gridmap.Coord{X: 0, Y: 2}))

	// All diagonals leave the 1-wide map, so only cardinals remain; the
	// point is that cornerClear must not treat absence as blocked.
	require.True(t, p.cornerClear(gridmap.Coord{X: -1, Y: 0}), "absent corner must count as clear")
	require.True(t, p.cornerClear(gridmap.Coord{X: 0, Y: 1}), "walkable corner must count as clear")
}

// TestFindPath_NeverCutsSolidCorner asserts end-to-end that a path cannot
// squeeze diagonally between two blocked cardinals.
func TestFindPath_NeverCutsSolidCorner(t *testing.T) {
	// 2×2 map: (1,0) and (0,1) blocked. (0,0)→(1,1) would need the cut.
	p := New(WithDiagonalMovement())
	require.NoError(t, p.InitializeGrid(Bounds{Width: 2, Height: 2}, func(gridmap.Coord) bool { return true }))
	obstacles := []gridmap.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}
	require.NoError(t, p.RefreshWalkability(obstacles, gridmap.Coord{X: 0, Y: 0}, gridmap.Coord{X: 1, Y: 1}))

	_, err := p.FindPath(gridmap.Coord{X: 0, Y: 0}, gridmap.Coord{X: 1, Y: 1})
	require.ErrorIs(t, err, ErrNoPath)
}
