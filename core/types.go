package core

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for point and edge construction.
var (
	// ErrNoPoints indicates that an operation received an empty point sequence.
	ErrNoPoints = errors.New("core: point set is empty")

	// ErrNonFinite indicates that a point carries a NaN or infinite coordinate,
	// which would poison every distance computed from it.
	ErrNonFinite = errors.New("core: non-finite coordinate")
)

// Point is an immutable position in three-dimensional Euclidean space.
// Equality is by value; identity inside a point set is by index.
type Point struct {
	X, Y, Z float64
}

// Vec returns p as a gonum r3 vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Finite reports whether every coordinate of p is a finite number.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}

// String renders p in the same comma-separated form the input files use.
func (p Point) String() string {
	return fmt.Sprintf("%g,%g,%g", p.X, p.Y, p.Z)
}

// Edge is a candidate merge between points From and To (indices, From < To).
//
// Seq is the position at which the edge was generated and breaks ties
// between edges of equal length. Dist2 is the squared Euclidean distance
// used for ordering; Distance is its square root, kept for reporting.
type Edge struct {
	Seq      int
	From     int
	To       int
	Dist2    float64
	Distance float64
}

// Less reports whether e orders strictly before o: shorter first, then
// earlier generated first.
func (e Edge) Less(o Edge) bool {
	if e.Dist2 != o.Dist2 {
		return e.Dist2 < o.Dist2
	}

	return e.Seq < o.Seq
}

// EdgeCount returns the number of unordered pairs of n points, n·(n−1)/2.
// Negative n yields 0.
func EdgeCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// ValidatePoints checks that points is non-empty and that every coordinate
// is finite. The returned error wraps ErrNoPoints or ErrNonFinite.
func ValidatePoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	for i, p := range points {
		if !p.Finite() {
			return fmt.Errorf("%w: point %d (%s)", ErrNonFinite, i, p)
		}
	}

	return nil
}
