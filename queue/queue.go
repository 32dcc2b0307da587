// Package queue provides the min-ordered edge queue that feeds the merge
// driver.
//
// The queue is a B-tree (github.com/tidwall/btree) keyed by core.Edge.Less,
// so PopMin always yields the shortest remaining edge and, among equal
// lengths, the one generated first. Only Push and PopMin are needed: edges
// whose endpoints were already joined stay queued and are recognized as
// no-ops by the consumer (lazy deletion), so there is no decrease-key or
// arbitrary removal.
//
// A Queue is not safe for concurrent use.
package queue

import (
	"errors"
	"fmt"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/circuitry/core"
)

var (
	// ErrExhausted is returned by PopMin and Peek on an empty queue.
	ErrExhausted = errors.New("queue: exhausted")

	// ErrDuplicateEdge indicates a Push of an edge whose ordering key
	// (distance and Seq) is already queued. edges.Generate assigns unique Seq
	// values, so only callers building edges by hand can trigger it.
	ErrDuplicateEdge = errors.New("queue: duplicate edge")
)

// Queue is a min-priority queue of edges.
type Queue struct {
	tree *btree.BTreeG[core.Edge]
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{
		tree: btree.NewBTreeGOptions(core.Edge.Less, btree.Options{NoLocks: true}),
	}
}

// FromEdges returns a queue holding every edge in es.
// Complexity: O(E log E).
func FromEdges(es []core.Edge) (*Queue, error) {
	q := New()
	for _, e := range es {
		if err := q.Push(e); err != nil {
			return nil, err
		}
	}

	return q, nil
}

// Push adds e to the queue. Pushing an edge that compares equal to a queued
// one leaves the queue unchanged and returns ErrDuplicateEdge.
func (q *Queue) Push(e core.Edge) error {
	if prev, replaced := q.tree.Set(e); replaced {
		q.tree.Set(prev)
		return fmt.Errorf("%w: seq %d", ErrDuplicateEdge, e.Seq)
	}

	return nil
}

// PopMin removes and returns the shortest queued edge.
func (q *Queue) PopMin() (core.Edge, error) {
	e, ok := q.tree.PopMin()
	if !ok {
		return core.Edge{}, ErrExhausted
	}

	return e, nil
}

// Peek returns the shortest queued edge without removing it.
func (q *Queue) Peek() (core.Edge, error) {
	e, ok := q.tree.Min()
	if !ok {
		return core.Edge{}, ErrExhausted
	}

	return e, nil
}

// Len returns the number of queued edges.
func (q *Queue) Len() int { return q.tree.Len() }
