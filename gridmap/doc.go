// Package gridmap provides the node storage layer for grid pathfinding:
// a fixed-shape 2D array of per-cell search state with an origin offset.
//
// What:
//
//   - Coord is an integer cell coordinate; equal X and Y means the same
//     location (value identity).
//   - Node holds one cell's search state: walkability, g/h costs and the
//     parent back-reference used for path reconstruction.
//   - Grid owns every Node, maps coordinates to nodes in O(1) via offset
//     arithmetic, and exposes a deterministic row-major traversal.
//
// Why:
//
//   - A flat row-major array beats a coordinate→node map for dense maps:
//     no hashing, no pointer chasing on lookup, cache-friendly sweeps.
//   - Nodes are reused across searches; ResetCosts is the explicit
//     per-search reset pass that keeps stale state from leaking between
//     queries.
//
// Complexity:
//
//   - New:        O(W×H) time and memory (one predicate call per cell).
//   - Node:       O(1).
//   - Nodes:      O(1) (precomputed row-major sequence).
//   - ResetCosts: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//
// The Grid is not safe for concurrent mutation; see package astar for the
// single-search-at-a-time ownership contract.
package gridmap
