// Package circuitry joins points in 3D space into circuits, shortest link
// first, the way Kruskal's algorithm grows a minimum spanning forest.
//
// What is computed?
//
//	Every pair of points is a candidate edge. Edges are consumed in order of
//	increasing Euclidean distance; an edge between two different circuits
//	merges them, an edge inside one circuit changes nothing. Two values are
//	reported:
//
//	  • after a fixed number of consumed edges, the product of the three
//	    largest circuit sizes;
//	  • once everything forms a single circuit, the product of the X
//	    coordinates of the last pair joined.
//
// Packages, leaves first:
//
//	core/    — Point and Edge value types, input validation
//	edges/   — complete pairwise edge generation (gonum spatial/r3)
//	queue/   — min-ordered edge queue (tidwall/btree)
//	circuit/ — arena disjoint-set forest with union by size
//	merge/   — bounded and convergence phases, Run
//	dataset/ — x,y,z text parsing and the embedded reference sample
//	config/  — YAML run configuration
//	metrics/ — Prometheus observer for a run
//
// Quick example:
//
//	res, err := merge.Run(dataset.Sample(), dataset.SampleLimit)
//	// res.SizeProduct == 40, res.Final.Product == 25272
//
// The circuitry command in cmd/circuitry wraps the same flow for files.
package circuitry
