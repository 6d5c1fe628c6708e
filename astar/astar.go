package astar

import (
	"fmt"

	"github.com/tilenav/tilenav/gridmap"
	"github.com/tilenav/tilenav/openset"
)

// Neighbor offsets. Cardinal offsets are always considered; diagonal
// offsets only when AllowDiagonal is set. For each diagonal offset the
// two cardinal cells it cuts across are its "corners".
var (
	cardinalOffsets = [4]gridmap.Coord{
		{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
	}
	diagonalOffsets = [4]gridmap.Coord{
		{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}
)

// Pathfinder runs A* searches over one grid. It retains the bounds and
// tile predicate from InitializeGrid so the grid can be rebuilt on
// demand, and reuses the grid's nodes across searches.
//
// AllowDiagonal may be toggled by the host at any time between searches;
// it is read once at the start of neighbor generation and never
// re-read mid-search. A Pathfinder is not safe for concurrent use.
type Pathfinder struct {
	AllowDiagonal bool

	warnf  WarnFunc
	bounds Bounds
	tileAt TilePredicate
	grid   *gridmap.Grid
}

// New constructs a Pathfinder. The grid does not exist until
// InitializeGrid is called.
func New(opts ...Option) *Pathfinder {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Pathfinder{
		AllowDiagonal: cfg.AllowDiagonal,
		warnf:         cfg.Warnf,
	}
}

// InitializeGrid (re)builds the node storage from the host map's extent
// and per-cell tile presence. On ErrBadBounds no grid is built and any
// previous grid is discarded, leaving the pathfinder safely inert rather
// than partially configured.
// Complexity: O(W×H).
func (p *Pathfinder) InitializeGrid(bounds Bounds, tileAt TilePredicate) error {
	// Any failure below must leave the pathfinder safely inert, not
	// partially built: no grid, no retained configuration.
	p.grid = nil
	p.bounds = Bounds{}
	p.tileAt = nil
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return fmt.Errorf("%w: got %d×%d", ErrBadBounds, bounds.Width, bounds.Height)
	}
	p.bounds = bounds
	p.tileAt = tileAt

	grid, err := gridmap.New(bounds.Origin, bounds.Width, bounds.Height, p.initialWalkable)
	if err != nil {
		// Unreachable after the dimension check above; surface it anyway.
		return fmt.Errorf("%w: %v", ErrBadBounds, err)
	}
	p.grid = grid

	return nil
}

// initialWalkable seeds construction-time walkability from tile presence
// alone; the obstacle set is applied later by RefreshWalkability.
func (p *Pathfinder) initialWalkable(c gridmap.Coord) bool {
	if p.tileAt == nil {
		return true
	}

	return p.tileAt(c)
}

// RefreshWalkability resets every node's search state and recomputes its
// walkability from the current obstacle set:
//
//  1. A node in obstacles is unwalkable.
//  2. Otherwise a node with no underlying tile is unwalkable, unless it
//     is start or end.
//  3. Start and end are always forced walkable regardless of the above,
//     so a search is never rejected purely because an endpoint sits on
//     bare terrain.
//
// Must be invoked before every FindPath call whose obstacle set may have
// changed; it is also the explicit reset pass that keeps one search's
// costs from leaking into the next. If the grid was discarded it is
// rebuilt from the retained bounds and predicate; ErrGridNotInitialized
// is returned when InitializeGrid has never succeeded.
//
// Calling RefreshWalkability twice with the same arguments yields
// identical walkability state.
// Complexity: O(W×H).
func (p *Pathfinder) RefreshWalkability(obstacles []gridmap.Coord, start, end gridmap.Coord) error {
	if p.grid == nil {
		if p.bounds.Width <= 0 || p.bounds.Height <= 0 {
			return ErrGridNotInitialized
		}
		if err := p.InitializeGrid(p.bounds, p.tileAt); err != nil {
			return err
		}
	}

	blocked := make(map[gridmap.Coord]struct{}, len(obstacles))
	for _, c := range obstacles {
		blocked[c] = struct{}{}
	}

	p.grid.ResetCosts()
	var endpoint bool
	for _, n := range p.grid.Nodes() {
		endpoint = n.Pos == start || n.Pos == end
		switch {
		case endpoint:
			n.Walkable = true
		case hasCoord(blocked, n.Pos):
			n.Walkable = false
		default:
			n.Walkable = p.initialWalkable(n.Pos)
		}
	}

	return nil
}

// warn routes an advisory condition to the configured hook, if any.
func (p *Pathfinder) warn(format string, args ...any) {
	if p.warnf != nil {
		p.warnf(format, args...)
	}
}

// hasCoord reports membership in an obstacle set.
func hasCoord(set map[gridmap.Coord]struct{}, c gridmap.Coord) bool {
	_, ok := set[c]

	return ok
}

// FindPath runs A* from start to end and returns the path as an ordered
// coordinate sequence inclusive of both endpoints.
//
// Failure classes:
//
//   - ErrGridNotInitialized — no grid exists (configuration error).
//   - ErrOutOfBounds        — start or end has no grid node (request
//     error; wrapped with the offending coordinate, no state mutated).
//   - ErrNoPath             — the frontier drained without reaching end
//     (expected negative result).
//
// An unwalkable start or end is advisory, not fatal: it is reported
// through the Warnf hook and the search still runs, since
// RefreshWalkability forces endpoint walkability in the usual flow.
//
// The caller must have invoked RefreshWalkability since the last search
// or obstacle change; FindPath itself performs no reset.
func (p *Pathfinder) FindPath(start, end gridmap.Coord) ([]gridmap.Coord, error) {
	// 1) Configuration and request validation. Nothing below this block
	//    mutates grid state until the seed step.
	if p.grid == nil {
		return nil, ErrGridNotInitialized
	}
	startNode := p.grid.Node(start)
	if startNode == nil {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.X, start.Y)
	}
	endNode := p.grid.Node(end)
	if endNode == nil {
		return nil, fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, end.X, end.Y)
	}

	// 2) Advisory endpoints: warn and proceed, so the caller receives a
	//    definitive "no path" instead of a premature rejection.
	if !startNode.Walkable {
		p.warn("astar: start (%d,%d) is not walkable", start.X, start.Y)
	}
	if !endNode.Walkable {
		p.warn("astar: end (%d,%d) is not walkable", end.X, end.Y)
	}

	// 3) Read the diagonal flag once for the whole search.
	diagonal := p.AllowDiagonal

	// 4) Seed the frontier with the start node.
	open := openset.New(p.grid.Len())
	closed := make(map[gridmap.Coord]struct{}, p.grid.Len())
	startNode.GCost = 0
	startNode.HCost = Octile(start, end)
	if err := open.Insert(startNode); err != nil {
		return nil, err
	}

	// 5) Main loop: finalize the cheapest frontier node, test the goal,
	//    relax its neighbors.
	var neighbors [8]*gridmap.Node
	for open.Len() > 0 {
		current, err := open.ExtractMin()
		if err != nil {
			return nil, err
		}

		// Goal reached: current.GCost is optimal (consistent heuristic),
		// walk the parent tree back to start.
		if current == endNode {
			return reconstructPath(startNode, endNode), nil
		}

		// Finalize: never re-opened within this search.
		closed[current.Pos] = struct{}{}

		for _, nb := range p.neighborsOf(current, diagonal, neighbors[:0]) {
			if !nb.Walkable {
				continue
			}
			if _, done := closed[nb.Pos]; done {
				continue
			}

			tentativeG := current.GCost + Octile(current.Pos, nb.Pos)
			inOpen := open.Contains(nb)
			if tentativeG >= nb.GCost && inOpen {
				continue
			}

			// Relax: first discovery, or a strictly cheaper route.
			nb.GCost = tentativeG
			nb.HCost = Octile(nb.Pos, end)
			nb.Parent = current
			if inOpen {
				err = open.DecreaseKey(nb)
			} else {
				err = open.Insert(nb)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	// 6) Frontier drained without reaching end.
	return nil, ErrNoPath
}

// neighborsOf appends current's admissible neighbors to buf and returns
// it. Cardinal cells need only exist; a diagonal cell is admitted when at
// least ONE of the two cardinal corners it cuts across is
// walkable-or-absent. The either-corner rule is deliberately permissive:
// it blocks squeezing through a fully solid corner while still allowing
// diagonal movement past a single-sided obstacle. Cells beyond the map
// edge are simply skipped.
//
// Walkability of the neighbor itself is the caller's concern; filtering
// it here would hide unwalkable cells from corner checks.
func (p *Pathfinder) neighborsOf(current *gridmap.Node, diagonal bool, buf []*gridmap.Node) []*gridmap.Node {
	pos := current.Pos
	for _, d := range cardinalOffsets {
		if n := p.grid.Node(gridmap.Coord{X: pos.X + d.X, Y: pos.Y + d.Y}); n != nil {
			buf = append(buf, n)
		}
	}
	if !diagonal {
		return buf
	}
	for _, d := range diagonalOffsets {
		n := p.grid.Node(gridmap.Coord{X: pos.X + d.X, Y: pos.Y + d.Y})
		if n == nil {
			continue
		}
		if p.cornerClear(gridmap.Coord{X: pos.X + d.X, Y: pos.Y}) ||
			p.cornerClear(gridmap.Coord{X: pos.X, Y: pos.Y + d.Y}) {
			buf = append(buf, n)
		}
	}

	return buf
}

// cornerClear reports whether a corner cell permits the adjacent diagonal
// move: walkable, or absent from the grid entirely.
func (p *Pathfinder) cornerClear(c gridmap.Coord) bool {
	n := p.grid.Node(c)

	return n == nil || n.Walkable
}

// reconstructPath walks parent links from end back to start, then
// reverses the collection so it runs start→end inclusive. The walk also
// stops on a nil parent, which terminates defensively if the chain is
// malformed.
func reconstructPath(start, end *gridmap.Node) []gridmap.Coord {
	var rev []gridmap.Coord
	for n := end; ; n = n.Parent {
		rev = append(rev, n.Pos)
		if n == start || n.Parent == nil {
			break
		}
	}

	path := make([]gridmap.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}

// Octile returns the octile distance between a and b:
// 14·min(dx,dy) + 10·(max(dx,dy)−min(dx,dy)) over absolute axis deltas.
// It is both the search heuristic (admissible and consistent under these
// edge weights) and the exact edge cost between adjacent cells, where it
// degenerates to 10 for cardinal and 14 for diagonal steps.
func Octile(a, b gridmap.Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx < dy {
		dx, dy = dy, dx
	}

	return DiagonalCost*dy + CardinalCost*(dx-dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
