package circuit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/circuitry/core"
)

var (
	// ErrBadSize indicates a negative point count.
	ErrBadSize = errors.New("circuit: point count must be non-negative")

	// ErrUnknownPoint indicates a point that belongs to no circuit. Edges are
	// generated from the same point set the forest was built for, so this
	// always signals an internal defect.
	ErrUnknownPoint = errors.New("circuit: point belongs to no circuit")

	// ErrCorrupt indicates that the partition invariant no longer holds.
	ErrCorrupt = errors.New("circuit: partition invariant violated")
)

// Merge describes the outcome of consuming one edge.
//
// From and To are the edge endpoints as given, whether or not the merge was
// structural. For a no-op, Survivor is the shared circuit and Absorbed is -1.
type Merge struct {
	From       int
	To         int
	Structural bool
	Survivor   int // circuit that holds both endpoints afterwards
	Absorbed   int // retired circuit id, or -1
	Size       int // size of Survivor afterwards
}

// Forest is a partition of points 0..N-1 into circuits.
// The zero value is an empty forest; use New to size it.
type Forest struct {
	owner   []int   // point → circuit id
	members [][]int // circuit id → points; nil when retired
	count   int     // live circuits
}

// New returns a forest of n singleton circuits. Circuit i initially holds
// point i.
func New(n int) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}

	f := &Forest{
		owner:   make([]int, n),
		members: make([][]int, n),
		count:   n,
	}
	for p := 0; p < n; p++ {
		f.owner[p] = p
		f.members[p] = []int{p}
	}

	return f, nil
}

// Len returns the number of points N.
func (f *Forest) Len() int { return len(f.owner) }

// Count returns the number of live circuits.
func (f *Forest) Count() int { return f.count }

// Spanning reports whether every point sits in one circuit.
func (f *Forest) Spanning() bool { return f.count == 1 }

// Find returns the id of the circuit holding point p.
func (f *Forest) Find(p int) (int, error) {
	if p < 0 || p >= len(f.owner) {
		return -1, fmt.Errorf("%w: point %d of %d", ErrUnknownPoint, p, len(f.owner))
	}

	return f.owner[p], nil
}

// Connected reports whether a and b share a circuit.
func (f *Forest) Connected(a, b int) (bool, error) {
	ca, err := f.Find(a)
	if err != nil {
		return false, err
	}
	cb, err := f.Find(b)
	if err != nil {
		return false, err
	}

	return ca == cb, nil
}

// Size returns the number of points in circuit id, or 0 when id is retired
// or out of range.
func (f *Forest) Size(id int) int {
	if id < 0 || id >= len(f.members) {
		return 0
	}

	return len(f.members[id])
}

// Members returns a sorted copy of the points held by circuit id.
func (f *Forest) Members(id int) []int {
	if id < 0 || id >= len(f.members) || f.members[id] == nil {
		return nil
	}
	out := append([]int(nil), f.members[id]...)
	sort.Ints(out)

	return out
}

// Circuits returns the ids of all live circuits in ascending order.
func (f *Forest) Circuits() []int {
	ids := make([]int, 0, f.count)
	for id, m := range f.members {
		if m != nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// Sizes returns the sizes of all live circuits, largest first.
func (f *Forest) Sizes() []int {
	sizes := make([]int, 0, f.count)
	for _, m := range f.members {
		if m != nil {
			sizes = append(sizes, len(m))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// Consume merges the circuits holding e.From and e.To.
// See Union for the merge rules.
func (f *Forest) Consume(e core.Edge) (Merge, error) {
	return f.Union(e.From, e.To)
}

// Union merges the circuits holding points a and b.
//
// Steps:
//  1. Resolve both owners; an unknown point is an invariant violation.
//  2. Same owner → no-op, forest unchanged.
//  3. Pick the survivor: the larger circuit, or a's circuit on a size tie.
//  4. Re-own every point of the absorbed circuit and append it to the survivor.
//  5. Retire the absorbed id and decrement the live count.
func (f *Forest) Union(a, b int) (Merge, error) {
	// 1. Resolve owners.
	ca, err := f.Find(a)
	if err != nil {
		return Merge{}, err
	}
	cb, err := f.Find(b)
	if err != nil {
		return Merge{}, err
	}

	// 2. Already connected.
	if ca == cb {
		return Merge{From: a, To: b, Survivor: ca, Absorbed: -1, Size: len(f.members[ca])}, nil
	}

	// 3. Union by size; b's circuit survives only when strictly larger.
	survivor, absorbed := ca, cb
	if len(f.members[cb]) > len(f.members[ca]) {
		survivor, absorbed = cb, ca
	}

	// 4. Move the smaller circuit's points.
	for _, p := range f.members[absorbed] {
		f.owner[p] = survivor
	}
	f.members[survivor] = append(f.members[survivor], f.members[absorbed]...)

	// 5. Retire.
	f.members[absorbed] = nil
	f.count--

	return Merge{
		From:       a,
		To:         b,
		Structural: true,
		Survivor:   survivor,
		Absorbed:   absorbed,
		Size:       len(f.members[survivor]),
	}, nil
}

// Validate checks the partition invariants and returns an error wrapping
// ErrCorrupt on the first violation found.
func (f *Forest) Validate() error {
	seen := make([]bool, len(f.owner))
	live, total := 0, 0
	for id, m := range f.members {
		if m == nil {
			continue
		}
		live++
		total += len(m)
		for _, p := range m {
			if p < 0 || p >= len(f.owner) {
				return fmt.Errorf("%w: circuit %d holds unknown point %d", ErrCorrupt, id, p)
			}
			if seen[p] {
				return fmt.Errorf("%w: point %d held by more than one circuit", ErrCorrupt, p)
			}
			seen[p] = true
			if f.owner[p] != id {
				return fmt.Errorf("%w: point %d owned by %d but held by %d", ErrCorrupt, p, f.owner[p], id)
			}
		}
	}
	if total != len(f.owner) {
		return fmt.Errorf("%w: sizes sum to %d, want %d", ErrCorrupt, total, len(f.owner))
	}
	if live != f.count {
		return fmt.Errorf("%w: %d live circuits, count says %d", ErrCorrupt, live, f.count)
	}

	return nil
}
