package gridmap

// Grid is a fixed-shape 2D array of Nodes with an origin offset.
// It covers every coordinate in [Origin, Origin+size); the shape is
// immutable once built, only per-node state mutates between searches.
// Storage is row-major: index = (y-Origin.Y)*Width + (x-Origin.X).
type Grid struct {
	Origin        Coord
	Width, Height int
	nodes         []Node
	rowMajor      []*Node // precomputed traversal order over nodes
}

// New allocates a Width×Height grid anchored at origin and seeds each
// node's walkability by querying walkable exactly once per coordinate.
// Returns ErrBadDimensions if width or height is not positive; no grid is
// built in that case.
// Complexity: O(W×H) time and memory.
func New(origin Coord, width, height int, walkable func(Coord) bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	g := &Grid{
		Origin:   origin,
		Width:    width,
		Height:   height,
		nodes:    make([]Node, width*height),
		rowMajor: make([]*Node, width*height),
	}
	var i int
	var c Coord
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c = Coord{X: origin.X + x, Y: origin.Y + y}
			i = y*width + x
			g.nodes[i] = Node{
				Pos:      c,
				Walkable: walkable(c),
				GCost:    Unreached,
			}
			g.rowMajor[i] = &g.nodes[i]
		}
	}

	return g, nil
}

// Contains reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(c Coord) bool {
	return c.X >= g.Origin.X && c.X < g.Origin.X+g.Width &&
		c.Y >= g.Origin.Y && c.Y < g.Origin.Y+g.Height
}

// Node returns the node at c, or nil when c lies outside the grid.
// Absent is a normal answer ("no neighbor there"), not a fault; callers
// must treat nil as out-of-map.
// Complexity: O(1) via offset arithmetic.
func (g *Grid) Node(c Coord) *Node {
	if !g.Contains(c) {
		return nil
	}

	return &g.nodes[g.index(c)]
}

// Nodes returns the grid's nodes in deterministic row-major order
// (left-to-right, top row first). The returned slice is shared and must
// not be modified; it exists for full-grid sweeps such as the walkability
// refresh.
func (g *Grid) Nodes() []*Node {
	return g.rowMajor
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int {
	return len(g.nodes)
}

// ResetCosts applies the per-search reset pass to every node: g-cost back
// to Unreached, h-cost to zero, parent cleared. Run before each
// walkability refresh so no search state leaks into the next query.
// Complexity: O(W×H).
func (g *Grid) ResetCosts() {
	for i := range g.nodes {
		g.nodes[i].ResetCosts()
	}
}

// index maps a world coordinate to its row-major slot. Callers must
// bounds-check first.
func (g *Grid) index(c Coord) int {
	return (c.Y-g.Origin.Y)*g.Width + (c.X - g.Origin.X)
}
