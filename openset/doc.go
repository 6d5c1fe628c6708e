// Package openset implements the A* frontier as an indexed binary
// min-heap of grid nodes.
//
// What:
//
//   - OpenSet orders nodes by their (FCost, HCost) key, ascending; ties on
//     FCost prefer the smaller HCost (the node believed closer to the
//     goal).
//   - Two parallel containers back the structure: the heap array of node
//     references and a coordinate→slot map. Every swap updates both, so
//     they can never desynchronize.
//
// Why:
//
//   - Re-sorting a frontier slice on every pop is O(n log n) per
//     iteration and dominates search time on large maps. The indexed heap
//     amortizes every operation to O(log n) and answers membership in
//     O(1) — the single most consequential performance decision in the
//     engine.
//   - container/heap is deliberately not used: it hides element slots, so
//     O(1) Contains and DecreaseKey addressed by node identity would
//     still need the side index plus heap.Fix bookkeeping; the explicit
//     sift routines keep both containers in lockstep in one place.
//
// Complexity:
//
//   - Insert:      O(log n)
//   - ExtractMin:  O(log n)
//   - DecreaseKey: O(log n) (sift-up only; keys only ever decrease)
//   - Contains:    O(1)
//
// Errors:
//
//   - ErrEmptyOpenSet:  ExtractMin on an empty set.
//   - ErrDuplicateNode: Insert of a node already enqueued.
//   - ErrNotInOpenSet:  DecreaseKey for a node not enqueued.
//
// OpenSet is not safe for concurrent use; it is owned by a single search.
package openset
