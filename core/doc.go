// Package core defines the value types shared by every stage of the circuit
// builder: Point, the immutable 3D coordinate triple, and Edge, a candidate
// merge between two points ranked by Euclidean distance.
//
// Identity
//
//	Points are identified by their index in the input sequence, never by their
//	coordinates. Two points with identical coordinates are two distinct points
//	joined by a zero-length edge; they merge only when that edge is consumed.
//
// Ordering
//
//	Edges order by squared distance (Dist2) ascending and then by generation
//	sequence (Seq). Dist2 is exact for integer coordinates and monotonic with
//	Distance, so ordering on it never depends on square-root rounding.
//	Ties are rare in real data, but when two pairs are exactly equidistant the
//	earlier generated pair wins, not the one with smaller coordinates; a tool
//	that breaks ties by coordinate value may consume them in another order.
//
// Errors (sentinel):
//
//	ErrNoPoints  - the point sequence is empty.
//	ErrNonFinite - a coordinate is NaN or ±Inf.
//
// Complexity:
//
//	All methods in this package are O(1) except ValidatePoints, which is O(N).
package core
