// Package fenwick provides a list data structure supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, is a space-efficient list
// data structure that can efficiently update elements and calculate
// prefix sums in a list of numbers. Both operations run in O(log n)
// time while using the same amount of memory as a plain array.
//
// Indices are 1-based: node i holds the sum of the elements
// i-Lowbit(i)+1 through i. Traversals accept an optional visit
// function which is called with every node index they touch, in order.
package fenwick

import "golang.org/x/exp/constraints"

// List represents a list of signed numbers with support for efficient
// prefix sum computation.
type List[T constraints.Signed] struct {
	// tree[i-1] stores the range sum of elements i-Lowbit(i)+1 .. i.
	//
	// For example, the sum of the 13 first elements is computed by
	// adding the nodes visited while clearing the low bits of
	// 13 = 1101₂: nodes 1101₂, 1100₂ and 1000₂, holding the range
	// sums of element 13, elements 9..12 and elements 1..8.
	tree []T
}

// Lowbit returns the value of the least significant set bit of i.
// Lowbit(12) is 4. Lowbit(0) is 0.
func Lowbit(i int) int {
	return i & -i
}

// New creates a new list of n zero elements.
func New[T constraints.Signed](n int) *List[T] {
	return &List[T]{
		tree: make([]T, n),
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.tree)
}

// Node returns the range sum stored at node i.
func (l *List[T]) Node(i int) T {
	return l.tree[i-1]
}

// Nodes returns a copy of the node sums; element k holds node k+1.
func (l *List[T]) Nodes() []T {
	t := make([]T, len(l.tree))
	copy(t, l.tree)
	return t
}

// Add adds delta to element i, walking up through i, i+Lowbit(i), ...
// while the index stays within the list.
func (l *List[T]) Add(i int, delta T, visit func(int)) {
	for n := len(l.tree); i <= n; i += Lowbit(i) {
		l.tree[i-1] += delta
		if visit != nil {
			visit(i)
		}
	}
}

// Sum returns the sum of elements 1 through i, walking down through
// i, i-Lowbit(i), ... until the index reaches zero.
func (l *List[T]) Sum(i int, visit func(int)) T {
	var sum T
	for ; i > 0; i -= Lowbit(i) {
		sum += l.tree[i-1]
		if visit != nil {
			visit(i)
		}
	}
	return sum
}

// Get returns element i, recovered from the nodes alone.
func (l *List[T]) Get(i int) T {
	sum := l.tree[i-1]
	j := i - Lowbit(i)
	for i--; i > j; i -= Lowbit(i) {
		sum -= l.tree[i-1]
	}
	return sum
}

// Reset sets every element to zero.
func (l *List[T]) Reset() {
	for i := range l.tree {
		l.tree[i] = 0
	}
}
