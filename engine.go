// Package fenwickviz implements the engine behind an interactive
// Fenwick tree visualizer: a logical array, the binary indexed tree
// derived from it, and a record of which cells every query and update
// touched.
//
// All indices are 1-based. An Engine is not safe for concurrent use.
package fenwickviz

import (
	"fmt"

	"github.com/caio/go-fenwickviz/internal/fenwick"
	"golang.org/x/exp/slices"
)

// MaxValue bounds the magnitude of values accepted by Update. Sums over
// up to 2^22 cells of this magnitude fit an int64.
const MaxValue int64 = 1 << 40

// Touched lists the cells that took part in an operation, in the order
// they were visited. It is what a renderer highlights.
type Touched struct {
	Array []int
	Tree  []int
}

// Mask expands t into two highlight vectors of length n; element k
// refers to index k+1. Indices outside 1..n are ignored.
func (t Touched) Mask(n int) (array, tree []bool) {
	array = make([]bool, n)
	tree = make([]bool, n)
	for _, i := range t.Array {
		if i >= 1 && i <= n {
			array[i-1] = true
		}
	}
	for _, i := range t.Tree {
		if i >= 1 && i <= n {
			tree[i-1] = true
		}
	}
	return array, tree
}

// Engine owns an array of N values and its Fenwick tree.
type Engine struct {
	values []int64
	tree   *fenwick.List[int64]

	result    int64
	hasResult bool

	rng           RNG
	clearOnUpdate bool
}

// New creates an engine holding n zero values.
func New(n int, options ...Option) (*Engine, error) {
	if n < 1 {
		return nil, fmt.Errorf("new engine of length %d: %w", n, ErrInvalidLength)
	}

	e := &Engine{
		values: make([]int64, n),
		tree:   fenwick.New[int64](n),
		rng:    &globalRNG{},
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Len returns N.
func (e *Engine) Len() int {
	return len(e.values)
}

// Resize rebuilds the engine with n zero values. Prior values are
// discarded whenever n differs from Len(); n == Len() is a no-op.
func (e *Engine) Resize(n int) error {
	if n < 1 {
		return fmt.Errorf("resize to %d: %w", n, ErrInvalidLength)
	}
	if n == len(e.values) {
		return nil
	}
	e.values = make([]int64, n)
	e.tree = fenwick.New[int64](n)
	e.clearResult()
	return nil
}

// Query returns the sum of values 1 through i and stores it as the last
// result. The touched tree cells are the descent path from i.
func (e *Engine) Query(i int) (int64, Touched, error) {
	if err := e.checkIndex(i); err != nil {
		return 0, Touched{}, fmt.Errorf("query: %w", err)
	}

	touched := Touched{Array: make([]int, i)}
	for k := range touched.Array {
		touched.Array[k] = k + 1
	}
	sum := e.tree.Sum(i, func(j int) {
		touched.Tree = append(touched.Tree, j)
	})

	e.result, e.hasResult = sum, true
	return sum, touched, nil
}

// Update sets value i to v and propagates the difference up the tree.
func (e *Engine) Update(i int, v int64) (Touched, error) {
	if err := e.checkIndex(i); err != nil {
		return Touched{}, fmt.Errorf("update: %w", err)
	}
	if v > MaxValue || v < -MaxValue {
		return Touched{}, fmt.Errorf("update: %d: %w", v, ErrValueOutOfRange)
	}

	touched := Touched{Array: []int{i}}
	e.set(i, v, func(j int) {
		touched.Tree = append(touched.Tree, j)
	})

	if e.clearOnUpdate {
		e.clearResult()
	}
	return touched, nil
}

// Reset zeroes every value and clears the last result. Len is kept.
func (e *Engine) Reset() {
	for i := range e.values {
		e.values[i] = 0
	}
	e.tree.Reset()
	e.clearResult()
}

// Randomize resets the engine and then fills it, index by index, with
// values drawn uniformly from [lo, hi]. Nothing is left touched.
func (e *Engine) Randomize(lo, hi int64) error {
	if lo > hi || lo < -MaxValue || hi > MaxValue {
		return fmt.Errorf("randomize in [%d, %d]: %w", lo, hi, ErrInvalidRange)
	}

	e.Reset()
	for i := 1; i <= len(e.values); i++ {
		e.set(i, int64Between(e.rng, lo, hi), nil)
	}
	return nil
}

// Value returns value i.
func (e *Engine) Value(i int) (int64, error) {
	if err := e.checkIndex(i); err != nil {
		return 0, err
	}
	return e.values[i-1], nil
}

// Node returns tree cell i, the sum of values i-lowbit(i)+1 through i.
func (e *Engine) Node(i int) (int64, error) {
	if err := e.checkIndex(i); err != nil {
		return 0, err
	}
	return e.tree.Node(i), nil
}

// Values returns a copy of the values; element k holds index k+1.
func (e *Engine) Values() []int64 {
	return slices.Clone(e.values)
}

// Nodes returns a copy of the tree cells; element k holds index k+1.
func (e *Engine) Nodes() []int64 {
	return e.tree.Nodes()
}

// LastResult returns the result of the last query, if there is one.
func (e *Engine) LastResult() (int64, bool) {
	return e.result, e.hasResult
}

func (e *Engine) String() string {
	if e.hasResult {
		return fmt.Sprintf("Fenwick<len=%d, values=%v, result=%d>", len(e.values), e.values, e.result)
	}
	return fmt.Sprintf("Fenwick<len=%d, values=%v>", len(e.values), e.values)
}

func (e *Engine) set(i int, v int64, visit func(int)) {
	diff := v - e.values[i-1]
	e.values[i-1] = v
	e.tree.Add(i, diff, visit)
}

func (e *Engine) checkIndex(i int) error {
	if i < 1 || i > len(e.values) {
		return fmt.Errorf("index %d not in [1, %d]: %w", i, len(e.values), ErrIndexOutOfRange)
	}
	return nil
}

func (e *Engine) clearResult() {
	e.result, e.hasResult = 0, false
}
