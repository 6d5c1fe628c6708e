// Package tilenav is an in-memory A* pathfinding toolkit for tile-based
// maps with dynamically mutable obstacles.
//
// 🚀 What is tilenav?
//
//	A small, focused library that brings together:
//		• gridmap — fixed-shape 2D node storage with O(1) coordinate lookup
//		• openset — an indexed binary min-heap frontier with O(1) membership
//		• astar   — the A* engine: walkability refresh, octile costs,
//		  diagonal corner-cutting rules and path reconstruction
//
// ✨ Why choose tilenav?
//
//   - Predictable costs – O(log n) per frontier operation, O(1) lookups
//   - Rock-solid guarantees – sentinel errors, no panics on bad requests
//   - Pure Go – no cgo, no hidden runtime deps
//   - Host-friendly – walkability comes from your map via a predicate;
//     advisory conditions surface through an injectable warn hook
//
// The host application owns rendering, input and camera concerns; tilenav
// only needs a rectangular bounds, a per-cell "is there a tile here"
// predicate, and start/end coordinates plus the current obstacle set.
//
// Quick ASCII example:
//
//	S . . # .
//	. # . # .
//	. # . . E
//
//	S→E threads the gaps; '#' cells are obstacles refreshed per search.
//
// Dive into astar for the three-call contract: InitializeGrid,
// RefreshWalkability, FindPath.
//
//	go get github.com/tilenav/tilenav
package tilenav
