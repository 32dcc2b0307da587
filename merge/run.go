package merge

import (
	"fmt"

	"github.com/katalvlaran/circuitry/core"
)

// Run performs the bounded phase with the given limit, takes the product of
// the three largest circuit sizes, then converges the forest.
func Run(points []core.Point, limit int, opts ...Option) (Result, error) {
	if err := Validate(len(points), limit); err != nil {
		return Result{}, err
	}

	d, err := New(points, opts...)
	if err != nil {
		return Result{}, err
	}

	structural, err := d.Advance(limit)
	if err != nil {
		return Result{}, err
	}
	product, largest, err := d.LargestProduct(3)
	if err != nil {
		return Result{}, err
	}
	fin, err := d.Converge()
	if err != nil {
		return Result{}, err
	}

	return Result{
		SizeProduct: product,
		Largest:     largest,
		Structural:  structural,
		Final:       fin,
	}, nil
}

// Validate checks the statically known preconditions of Run for n points.
func Validate(n, limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d is negative", ErrBadLimit, limit)
	}
	if n < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	if total := core.EdgeCount(n); limit > total {
		return fmt.Errorf("%w: %d exceeds %d edges", ErrBadLimit, limit, total)
	}

	return nil
}
