package merge

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/core"
	"github.com/katalvlaran/circuitry/edges"
	"github.com/katalvlaran/circuitry/queue"
)

// Driver owns the edge queue and the forest for one point set. It is not
// safe for concurrent use.
type Driver struct {
	points []core.Point
	queue  *queue.Queue
	forest *circuit.Forest
	opts   Options
	steps  int
}

// New generates every edge of points, queues them and builds a singleton
// forest.
func New(points []core.Point, opts ...Option) (*Driver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	all, err := edges.Generate(points)
	if err != nil {
		return nil, err
	}
	q, err := queue.FromEdges(all)
	if err != nil {
		return nil, err
	}
	f, err := circuit.New(len(points))
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("driver ready", slog.Int("points", len(points)), slog.Int("edges", len(all)))

	return &Driver{points: points, queue: q, forest: f, opts: o}, nil
}

// Forest exposes the driver's forest for read-only inspection.
func (d *Driver) Forest() *circuit.Forest { return d.forest }

// Steps returns the number of edges consumed so far.
func (d *Driver) Steps() int { return d.steps }

// Remaining returns the number of edges still queued.
func (d *Driver) Remaining() int { return d.queue.Len() }

// Step pops the shortest remaining edge and consumes it.
func (d *Driver) Step() (circuit.Merge, error) {
	e, err := d.queue.PopMin()
	if err != nil {
		return circuit.Merge{}, fmt.Errorf("%w: %d circuits left after %d steps: %w",
			ErrDisconnected, d.forest.Count(), d.steps, err)
	}

	m, err := d.forest.Consume(e)
	if err != nil {
		return circuit.Merge{}, fmt.Errorf("merge: consume edge %d (%d-%d): %w", e.Seq, e.From, e.To, err)
	}
	d.steps++

	d.opts.Logger.Debug("edge consumed",
		slog.Int("step", d.steps),
		slog.Int("from", e.From),
		slog.Int("to", e.To),
		slog.Float64("distance", e.Distance),
		slog.Bool("structural", m.Structural),
		slog.Int("circuits", d.forest.Count()),
	)
	if d.opts.Observer != nil {
		d.opts.Observer.OnMerge(m, d.forest.Count())
	}

	return m, nil
}

// Advance performs exactly limit steps and returns how many were structural.
func (d *Driver) Advance(limit int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}

	structural := 0
	for i := 0; i < limit; i++ {
		m, err := d.Step()
		if err != nil {
			return structural, err
		}
		if m.Structural {
			structural++
		}
	}

	d.opts.Logger.Info("bounded phase done",
		slog.Int("steps", limit),
		slog.Int("structural", structural),
		slog.Int("circuits", d.forest.Count()),
	)
	if d.opts.Observer != nil {
		d.opts.Observer.OnPhase(PhaseBounded, limit, d.forest.Count())
	}

	return structural, nil
}

// LargestProduct returns the product of the k largest circuit sizes together
// with those sizes, largest first.
func (d *Driver) LargestProduct(k int) (int, []int, error) {
	sizes := d.forest.Sizes()
	if k < 0 || len(sizes) < k {
		return 0, nil, fmt.Errorf("%w: want %d, have %d", ErrTooFewCircuits, k, len(sizes))
	}

	product := 1
	for _, s := range sizes[:k] {
		product *= s
	}

	return product, sizes[:k:k], nil
}

// Converge consumes edges until a single circuit remains and reports the last
// consumed pair. At least one edge is always consumed, so calling Converge
// on an already spanning forest reports the next (no-op) edge.
func (d *Driver) Converge() (Final, error) {
	start := d.steps
	for {
		m, err := d.Step()
		if err != nil {
			return Final{}, err
		}
		if !d.forest.Spanning() {
			continue
		}

		a, b := d.points[m.From], d.points[m.To]
		product, err := truncProduct(a.X, b.X)
		if err != nil {
			return Final{}, fmt.Errorf("%w: %s * %s", err, a, b)
		}
		fin := Final{
			From:    m.From,
			To:      m.To,
			A:       a,
			B:       b,
			Product: product,
			Steps:   d.steps - start,
		}

		d.opts.Logger.Info("convergence phase done",
			slog.Int("steps", fin.Steps),
			slog.String("a", a.String()),
			slog.String("b", b.String()),
			slog.Int64("product", fin.Product),
		)
		if d.opts.Observer != nil {
			d.opts.Observer.OnPhase(PhaseConvergence, fin.Steps, d.forest.Count())
		}

		return fin, nil
	}
}

// truncProduct returns x·y truncated toward zero. Products outside the
// int64 range yield ErrProductOverflow.
func truncProduct(x, y float64) (int64, error) {
	t := math.Trunc(x * y)
	if t < -0x1p63 || t >= 0x1p63 {
		return 0, ErrProductOverflow
	}

	return int64(t), nil
}
