// Package circuit owns the partition of a point set into circuits (connected
// components) and performs the merges that shrink it.
//
// What & Why
//
//	The forest is the union-find half of Kruskal's algorithm, specialized for
//	questions about component sizes. Instead of parent pointers it keeps an
//	arena indexed by circuit id:
//
//	  owner[p]:    id of the circuit that currently holds point p;
//	  members[id]: the points of a live circuit (nil once absorbed).
//
//	Find is a single slice read. A structural merge re-owns every point of the
//	smaller circuit, so each point moves at most log₂N times over a full run.
//
// Merge rules
//
//   - Same circuit: no-op. Nothing changes and Merge.Structural is false.
//   - Different circuits: union by size. The smaller circuit is folded into
//     the larger; on equal sizes the circuit holding the edge's From endpoint
//     survives. The absorbed id is retired.
//
// Invariants (checked by Validate)
//
//   - every point is owned by exactly one live circuit;
//   - the sizes of live circuits sum to N;
//   - Count() == N − (structural merges so far).
//
// Errors (sentinel):
//
//	ErrBadSize      - New called with a negative point count.
//	ErrUnknownPoint - an edge endpoint is outside [0, N); a bookkeeping defect.
//	ErrCorrupt      - Validate found a broken partition.
//
// Complexity: New O(N); Find O(1); Consume O(k) where k is the size of the
// absorbed circuit, O(N log N) amortized over a full run.
package circuit
