// Package edges enumerates every candidate merge of a point set.
//
// Generate walks the index combinations (i, j), i < j, in row-major order and
// emits one core.Edge per pair, so N points always yield exactly N·(N−1)/2
// edges with no deduplication step. Pairs of points with identical
// coordinates produce a zero-length edge; they are never merged implicitly.
//
// Distances are computed with gonum's spatial/r3 vector helpers. The squared
// distance drives ordering and the Euclidean distance is derived from it with
// a single square root, so both values agree exactly for every edge.
//
// Complexity: O(N²) time and memory.
package edges
