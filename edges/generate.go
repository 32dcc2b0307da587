package edges

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/circuitry/core"
)

// SquaredDistance returns |a − b|².
func SquaredDistance(a, b core.Point) float64 {
	return r3.Norm2(r3.Sub(a.Vec(), b.Vec()))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b core.Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Generate returns the complete edge set of points.
//
// Edge i in the result has Seq == i; From < To always holds.
// Errors: core.ErrNoPoints for an empty input, core.ErrNonFinite when a
// coordinate is NaN or infinite.
func Generate(points []core.Point) ([]core.Edge, error) {
	if err := core.ValidatePoints(points); err != nil {
		return nil, err
	}

	n := len(points)
	vecs := make([]r3.Vec, n)
	for i, p := range points {
		vecs[i] = p.Vec()
	}

	out := make([]core.Edge, 0, core.EdgeCount(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d2 := r3.Norm2(r3.Sub(vecs[i], vecs[j]))
			out = append(out, core.Edge{
				Seq:      len(out),
				From:     i,
				To:       j,
				Dist2:    d2,
				Distance: math.Sqrt(d2),
			})
		}
	}

	return out, nil
}
