// Package gridmap defines the core types and sentinel errors for the
// grid storage layer of github.com/tilenav/tilenav.
package gridmap

import (
	"errors"
	"math"
)

// Sentinel errors for gridmap operations.
var (
	// ErrBadDimensions indicates a grid was requested with a non-positive
	// width or height.
	ErrBadDimensions = errors.New("gridmap: width and height must be positive")
)

// Unreached is the sentinel g-cost of a node not yet discovered by the
// current search. ResetCosts assigns it to every node; any real relaxation
// produces a strictly smaller value.
const Unreached = math.MaxInt

// Coord is an integer cell coordinate. Two Coords with equal X and Y
// denote the same location; Coord is the sole stable identity for nodes.
type Coord struct {
	X, Y int
}

// Node is the per-cell search state. Exactly one Node exists per grid
// cell, owned by the Grid for the lifetime of the map.
//
// GCost is the best known cost from the search start to this node,
// Unreached until discovered. HCost is the heuristic estimate to the
// current goal, recomputed every search. Parent is the predecessor on the
// best known path: a back-reference into the Grid's storage, never an
// owning pointer, relaxed only on first discovery or strict improvement
// so the parent links always form a tree.
type Node struct {
	Pos      Coord // immutable after construction
	Walkable bool
	GCost    int
	HCost    int
	Parent   *Node
}

// FCost returns the total estimated cost through this node. It is always
// derived from the current GCost and HCost, never cached, so it can not
// go stale after a relaxation.
func (n *Node) FCost() int {
	return n.GCost + n.HCost
}

// ResetCosts clears the node's per-search state: GCost=Unreached, HCost=0,
// Parent=nil. Walkability is untouched; it is owned by the walkability
// refresh, not the search.
func (n *Node) ResetCosts() {
	n.GCost = Unreached
	n.HCost = 0
	n.Parent = nil
}
