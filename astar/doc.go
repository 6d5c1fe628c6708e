// Package astar implements single-pair A* shortest-path search on a
// bounded 2D grid with dynamically mutable obstacles.
//
// What:
//
//   - Pathfinder exposes the full host contract in three calls:
//     InitializeGrid (build node storage from map bounds and a per-cell
//     tile predicate), RefreshWalkability (apply the current obstacle set
//     and reset all search state), FindPath (run A* and return the
//     coordinate sequence, start and end inclusive).
//   - Octile distance (10 per cardinal step, 14 per diagonal step) serves
//     as both the heuristic and the exact adjacent-cell edge cost. It
//     never overestimates true grid distance under these weights, so it
//     is admissible and consistent: every node is finalized at most once
//     and its g-cost is optimal at that moment.
//   - Diagonal movement is optional (AllowDiagonal, readable and
//     writable between searches). A diagonal step is admitted only if at
//     least one of the two cardinal cells it cuts across is
//     walkable-or-absent; see FindPath for the exact policy.
//
// Why:
//
//   - Game maps: unit movement across tilemaps with player-placed
//     blockers.
//   - Simulation: agent routing on editable occupancy grids.
//
// Complexity (V = cells, b = branching 4 or 8):
//
//   - RefreshWalkability: O(V) sweep.
//   - FindPath: O(V·b·log V) worst case; each cell is finalized at most
//     once and every frontier operation costs O(log V).
//
// Errors:
//
//   - ErrGridNotInitialized: search or refresh before InitializeGrid.
//   - ErrBadBounds: bounds with non-positive width or height.
//   - ErrOutOfBounds: start or end outside the grid (per request, no
//     state mutation).
//   - ErrNoPath: open set drained without reaching the end — the
//     expected negative result, not a fault.
//
// Concurrency: a Pathfinder is single-threaded and non-reentrant. One
// search runs to completion before the next begins; the grid and its
// nodes are mutable state owned by the engine for the whole call.
// Callers needing parallel searches run one Pathfinder per goroutine or
// serialize with an external lock. There is no internal cancellation,
// timeout or retry.
package astar
