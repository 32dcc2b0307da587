package merge_test

import (
	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/core"
)

// samplePoints is the 20-point reference set. With limit 10 the bounded
// phase yields 40 and convergence yields 25272.
func samplePoints() []core.Point {
	return []core.Point{
		{X: 162, Y: 817, Z: 812},
		{X: 57, Y: 618, Z: 57},
		{X: 906, Y: 360, Z: 560},
		{X: 592, Y: 479, Z: 940},
		{X: 352, Y: 342, Z: 300},
		{X: 466, Y: 668, Z: 158},
		{X: 542, Y: 29, Z: 236},
		{X: 431, Y: 825, Z: 988},
		{X: 739, Y: 650, Z: 466},
		{X: 52, Y: 470, Z: 668},
		{X: 216, Y: 146, Z: 977},
		{X: 819, Y: 987, Z: 18},
		{X: 117, Y: 168, Z: 530},
		{X: 805, Y: 96, Z: 715},
		{X: 346, Y: 949, Z: 466},
		{X: 970, Y: 615, Z: 88},
		{X: 941, Y: 993, Z: 340},
		{X: 862, Y: 61, Z: 35},
		{X: 984, Y: 92, Z: 344},
		{X: 425, Y: 690, Z: 689},
	}
}

// recorder is an Observer that keeps every callback.
type recorder struct {
	merges     []circuit.Merge
	counts     []int
	phases     []string
	phaseSteps []int
}

func (r *recorder) OnMerge(m circuit.Merge, circuits int) {
	r.merges = append(r.merges, m)
	r.counts = append(r.counts, circuits)
}

func (r *recorder) OnPhase(phase string, steps, _ int) {
	r.phases = append(r.phases, phase)
	r.phaseSteps = append(r.phaseSteps, steps)
}
