// Package merge drives the circuit builder: it pops edges shortest-first from
// a queue.Queue, feeds them to a circuit.Forest, and extracts the two reported
// values.
//
// Phases
//
//   - Bounded: exactly `limit` pop+consume steps, structural or not. Afterwards
//     the product of the three largest circuit sizes is taken.
//   - Convergence: steps continue with no bound until a single circuit remains.
//     The endpoints of the last consumed edge give the second value, the
//     product of their X coordinates truncated toward zero.
//
// Preconditions checked by Run before any edge is consumed:
//
//   - limit ≥ 0 and limit ≤ N·(N−1)/2 (ErrBadLimit);
//   - N ≥ 3 (ErrTooFewPoints).
//
// Whether three circuits survive the bounded phase depends on the data, so it
// is re-checked after that phase (ErrTooFewCircuits); no partial result is
// returned on any failure.
//
// Errors (sentinel):
//
//	ErrBadLimit        - limit is negative or exceeds the number of edges.
//	ErrTooFewPoints    - fewer than three points for the size query.
//	ErrTooFewCircuits  - fewer than k circuits for the k-largest product.
//	ErrDisconnected    - the queue ran out before the forest converged; wraps
//	                     queue.ErrExhausted.
//	ErrProductOverflow - the final X product is outside the int64 range.
//
// Invariant violations from the forest (circuit.ErrUnknownPoint) are returned
// unchanged and are fatal.
//
// Example:
//
//	res, err := merge.Run(points, 10, merge.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.SizeProduct)
//	fmt.Println(res.Final.Product)
package merge
