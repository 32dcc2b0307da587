package merge

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/circuitry/circuit"
	"github.com/katalvlaran/circuitry/core"
)

// Sentinel errors returned by the driver.
var (
	// ErrBadLimit indicates a negative limit or one larger than the edge count.
	ErrBadLimit = errors.New("merge: limit out of range")

	// ErrTooFewPoints indicates an input too small for the three-largest query.
	ErrTooFewPoints = errors.New("merge: at least three points required")

	// ErrTooFewCircuits indicates that fewer circuits remain than the size
	// product asks for.
	ErrTooFewCircuits = errors.New("merge: too few circuits for size product")

	// ErrDisconnected indicates that every edge was consumed before the forest
	// reached a single circuit.
	ErrDisconnected = errors.New("merge: edges exhausted before convergence")

	// ErrProductOverflow indicates that the final pair's X product does not
	// fit in an int64.
	ErrProductOverflow = errors.New("merge: final product overflows int64")
)

// Phase names reported to an Observer.
const (
	PhaseBounded     = "bounded"
	PhaseConvergence = "convergence"
)

// Observer receives progress callbacks from a Driver. Calls happen on the
// driver's goroutine, in consumption order.
type Observer interface {
	// OnMerge is called after every consumed edge with the resulting live
	// circuit count.
	OnMerge(m circuit.Merge, circuits int)

	// OnPhase is called when a phase completes with the number of steps it
	// took and the live circuit count.
	OnPhase(phase string, steps, circuits int)
}

// Options configures a Driver.
type Options struct {
	Logger   *slog.Logger
	Observer Observer
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the structured logger. Per-edge records are logged at
// debug level, phase summaries at info.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// DefaultOptions returns Options with a discarding logger and no observer.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Final is the outcome of the convergence phase.
type Final struct {
	From    int        // index of the first endpoint of the last consumed edge
	To      int        // index of the second endpoint
	A       core.Point // points[From]
	B       core.Point // points[To]
	Product int64      // A.X · B.X truncated toward zero
	Steps   int        // edges consumed during convergence
}

// Result is the outcome of Run.
type Result struct {
	// SizeProduct is the product of the three largest circuit sizes after
	// the bounded phase.
	SizeProduct int

	// Largest holds those three sizes, largest first.
	Largest []int

	// Structural counts the structural merges of the bounded phase.
	Structural int

	// Final describes the edge that completed the spanning circuit.
	Final Final
}
