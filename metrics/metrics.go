// Package metrics records driver progress as Prometheus metrics.
//
// A Recorder satisfies merge.Observer. It registers its collectors on a
// private registry rather than the global default, so several runs in one
// process never collide, and WriteText renders that registry in the text
// exposition format.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/circuitry/circuit"
)

// Merge kinds used as the "kind" label.
const (
	KindStructural = "structural"
	KindNoOp       = "noop"
)

// Recorder collects merge and phase metrics.
type Recorder struct {
	registry *prometheus.Registry

	// EdgesConsumed counts consumed edges by kind.
	EdgesConsumed *prometheus.CounterVec
	// Circuits is the live circuit count after the latest step.
	Circuits prometheus.Gauge
	// LargestCircuit is the largest circuit size seen so far.
	LargestCircuit prometheus.Gauge
	// PhaseSteps is the number of steps each completed phase took.
	PhaseSteps *prometheus.GaugeVec

	largest int
}

// NewRecorder builds a Recorder on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		EdgesConsumed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuitry_edges_consumed_total",
				Help: "Edges popped from the queue and consumed by the forest.",
			},
			[]string{"kind"},
		),
		Circuits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "circuitry_circuits",
			Help: "Live circuits after the latest consumed edge.",
		}),
		LargestCircuit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "circuitry_largest_circuit_size",
			Help: "Largest circuit size reached so far.",
		}),
		PhaseSteps: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuitry_phase_steps",
				Help: "Edges consumed by each completed phase.",
			},
			[]string{"phase"},
		),
	}
	r.registry.MustRegister(r.EdgesConsumed, r.Circuits, r.LargestCircuit, r.PhaseSteps)

	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// OnMerge implements merge.Observer.
func (r *Recorder) OnMerge(m circuit.Merge, circuits int) {
	kind := KindNoOp
	if m.Structural {
		kind = KindStructural
	}
	r.EdgesConsumed.WithLabelValues(kind).Inc()
	r.Circuits.Set(float64(circuits))

	if m.Size > r.largest {
		r.largest = m.Size
		r.LargestCircuit.Set(float64(m.Size))
	}
}

// OnPhase implements merge.Observer.
func (r *Recorder) OnPhase(phase string, steps, circuits int) {
	r.PhaseSteps.WithLabelValues(phase).Set(float64(steps))
	r.Circuits.Set(float64(circuits))
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
