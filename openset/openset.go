// Package openset defines the indexed min-heap frontier and its sentinel
// errors for the astar subpackage of github.com/tilenav/tilenav.
package openset

import (
	"errors"

	"github.com/tilenav/tilenav/gridmap"
)

// Sentinel errors for open-set operations.
var (
	// ErrEmptyOpenSet indicates ExtractMin was called on an empty set.
	ErrEmptyOpenSet = errors.New("openset: extract from empty open set")
	// ErrDuplicateNode indicates Insert of a node that is already enqueued.
	ErrDuplicateNode = errors.New("openset: node already in open set")
	// ErrNotInOpenSet indicates DecreaseKey for a node that is not enqueued.
	ErrNotInOpenSet = errors.New("openset: node not in open set")
)

// OpenSet is an indexed binary min-heap over grid nodes, keyed by
// (FCost, HCost) ascending. The heap array and the coordinate→slot map
// are kept in lockstep on every swap.
type OpenSet struct {
	nodes []*gridmap.Node
	slots map[gridmap.Coord]int
}

// New returns an empty OpenSet with room for capacity nodes before the
// first reallocation.
func New(capacity int) *OpenSet {
	if capacity < 0 {
		capacity = 0
	}

	return &OpenSet{
		nodes: make([]*gridmap.Node, 0, capacity),
		slots: make(map[gridmap.Coord]int, capacity),
	}
}

// Len returns the number of enqueued nodes.
func (os *OpenSet) Len() int {
	return len(os.nodes)
}

// Contains reports whether n is currently enqueued.
// Complexity: O(1) via the slot index.
func (os *OpenSet) Contains(n *gridmap.Node) bool {
	_, ok := os.slots[n.Pos]

	return ok
}

// Insert appends n and sifts it up into heap position.
// Returns ErrDuplicateNode if n is already enqueued; callers that may
// re-relax a frontier node use DecreaseKey instead.
// Complexity: O(log n).
func (os *OpenSet) Insert(n *gridmap.Node) error {
	if _, ok := os.slots[n.Pos]; ok {
		return ErrDuplicateNode
	}
	os.nodes = append(os.nodes, n)
	os.slots[n.Pos] = len(os.nodes) - 1
	os.siftUp(len(os.nodes) - 1)

	return nil
}

// ExtractMin removes and returns the minimum-key node: the root is
// replaced by the last slot, which then sifts down past its smaller
// child until heap order holds.
// Returns ErrEmptyOpenSet if nothing is enqueued; callers check Len first.
// Complexity: O(log n).
func (os *OpenSet) ExtractMin() (*gridmap.Node, error) {
	if len(os.nodes) == 0 {
		return nil, ErrEmptyOpenSet
	}
	min := os.nodes[0]
	last := len(os.nodes) - 1
	os.swap(0, last)
	os.nodes[last] = nil
	os.nodes = os.nodes[:last]
	delete(os.slots, min.Pos)
	if last > 0 {
		os.siftDown(0)
	}

	return min, nil
}

// DecreaseKey repositions n after its g-cost or h-cost has been lowered
// while enqueued. Only an upward sift is needed: keys can only decrease
// through this entry point, never increase.
// Returns ErrNotInOpenSet if n is not enqueued.
// Complexity: O(log n).
func (os *OpenSet) DecreaseKey(n *gridmap.Node) error {
	slot, ok := os.slots[n.Pos]
	if !ok {
		return ErrNotInOpenSet
	}
	os.siftUp(slot)

	return nil
}

// less orders the heap: primary key FCost ascending, ties broken by
// smaller HCost (prefer the node believed closer to the goal).
func (os *OpenSet) less(i, j int) bool {
	a, b := os.nodes[i], os.nodes[j]
	if a.FCost() != b.FCost() {
		return a.FCost() < b.FCost()
	}

	return a.HCost < b.HCost
}

// swap exchanges two heap slots and mirrors the move in the slot index.
// Both containers change together or not at all.
func (os *OpenSet) swap(i, j int) {
	os.nodes[i], os.nodes[j] = os.nodes[j], os.nodes[i]
	os.slots[os.nodes[i].Pos] = i
	os.slots[os.nodes[j].Pos] = j
}

// siftUp moves slot i toward the root while its key is strictly smaller
// than its parent's.
func (os *OpenSet) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !os.less(i, parent) {
			return
		}
		os.swap(i, parent)
		i = parent
	}
}

// siftDown moves slot i toward the leaves, swapping with the smaller of
// its two children until heap order holds.
func (os *OpenSet) siftDown(i int) {
	n := len(os.nodes)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && os.less(left, smallest) {
			smallest = left
		}
		if right < n && os.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		os.swap(i, smallest)
		i = smallest
	}
}
