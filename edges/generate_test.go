package edges_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circuitry/core"
	"github.com/katalvlaran/circuitry/edges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a := core.Point{X: 0, Y: 0, Z: 0}
	b := core.Point{X: 1, Y: 2, Z: 2}
	assert.Equal(t, 9.0, edges.SquaredDistance(a, b))
	assert.Equal(t, 3.0, edges.Distance(a, b))
	assert.Equal(t, edges.Distance(a, b), edges.Distance(b, a), "distance is symmetric")

	// 162,817,812 to 425,690,689 is the closest pair of the sample set.
	p := core.Point{X: 162, Y: 817, Z: 812}
	q := core.Point{X: 425, Y: 690, Z: 689}
	assert.Equal(t, 100427.0, edges.SquaredDistance(p, q))
	assert.InDelta(t, 316.9022, edges.Distance(p, q), 1e-4)
}

// TestGenerate_CompleteAndOrdered checks count, index combination order and
// the Seq/From/To contract.
func TestGenerate_CompleteAndOrdered(t *testing.T) {
	points := []core.Point{{X: 0}, {X: 1}, {X: 3}, {X: 7}}
	all, err := edges.Generate(points)
	require.NoError(t, err)
	require.Len(t, all, core.EdgeCount(len(points)))

	wantPairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for i, e := range all {
		assert.Equal(t, i, e.Seq)
		assert.Equal(t, wantPairs[i], [2]int{e.From, e.To})
		assert.Less(t, e.From, e.To)
		d := math.Abs(points[e.From].X - points[e.To].X)
		assert.Equal(t, d*d, e.Dist2)
		assert.Equal(t, d, e.Distance)
	}
}

func TestGenerate_UniquePairs(t *testing.T) {
	points := make([]core.Point, 12)
	for i := range points {
		points[i] = core.Point{X: float64(i * i), Y: float64(-i), Z: 1}
	}
	all, err := edges.Generate(points)
	require.NoError(t, err)

	seen := make(map[[2]int]bool, len(all))
	for _, e := range all {
		key := [2]int{e.From, e.To}
		assert.False(t, seen[key], "pair %v generated twice", key)
		seen[key] = true
	}
	assert.Len(t, seen, 66)
}

// TestGenerate_DuplicateCoordinates documents that identical coordinates are
// distinct points joined by a zero-length edge.
func TestGenerate_DuplicateCoordinates(t *testing.T) {
	p := core.Point{X: 5, Y: 5, Z: 5}
	all, err := edges.Generate([]core.Point{p, p})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 0, all[0].From)
	assert.Equal(t, 1, all[0].To)
	assert.Zero(t, all[0].Distance)
}

func TestGenerate_SinglePoint(t *testing.T) {
	all, err := edges.Generate([]core.Point{{X: 1}})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := edges.Generate(nil)
	assert.ErrorIs(t, err, core.ErrNoPoints)

	_, err = edges.Generate([]core.Point{{X: 1}, {Y: math.Inf(1)}})
	assert.ErrorIs(t, err, core.ErrNonFinite)
}
