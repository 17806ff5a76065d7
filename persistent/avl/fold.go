package avl

import (
	"iter"

	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/maybe"
)

// FoldLeft visits the values of t in ascending order, threading an accumulator
// through f:
//
//	f(…f(f(seed, v1), v2)…, vn)
func FoldLeft[A, B any](t Tree[A], seed B, f func(B, A) B) B {
	return foldLeft(t.root, seed, f)
}

func foldLeft[A, B any](n *node[A], acc B, f func(B, A) B) B {
	if n == nil {
		return acc
	}
	acc = foldLeft(n.left, acc, f)
	acc = f(acc, n.value)
	return foldLeft(n.right, acc, f)
}

// FoldRight visits the values of t in descending order, threading an accumulator
// through f:
//
//	f(v1, f(v2, …f(vn, seed)…))
//
// FoldRight does not recurse; it walks the tree with an explicit stack of at most
// Height() nodes.
func FoldRight[A, B any](t Tree[A], seed B, f func(A, B) B) B {
	acc := seed
	for v := range t.Backward() {
		acc = f(v, acc)
	}
	return acc
}

// All returns an iterator over the values of t in ascending order.
func (t Tree[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		stack := make([]*node[A], 0, t.root.depth())
		n := t.root
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.left {
				stack = append(stack, n)
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.right
		}
	}
}

// Backward returns an iterator over the values of t in descending order.
func (t Tree[A]) Backward() iter.Seq[A] {
	return func(yield func(A) bool) {
		stack := make([]*node[A], 0, t.root.depth())
		n := t.root
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.right {
				stack = append(stack, n)
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			n = n.left
		}
	}
}

// ToList returns the values of t in ascending order.
func (t Tree[A]) ToList() []A {
	return FoldLeft(t, make([]A, 0, t.Size()), func(l []A, v A) []A {
		return append(l, v)
	})
}

// Min returns the smallest value of t, if any. O(log n).
func (t Tree[A]) Min() maybe.Maybe[A] {
	n := t.root
	if n == nil {
		return maybe.Nothing[A]()
	}
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.value)
}

// Max returns the largest value of t, if any. O(log n).
func (t Tree[A]) Max() maybe.Maybe[A] {
	n := t.root
	if n == nil {
		return maybe.Nothing[A]()
	}
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.value)
}

// Find returns the smallest value satisfying pred, if any.
func (t Tree[A]) Find(pred func(A) bool) maybe.Maybe[A] {
	v, found := find(t.root, pred)
	return maybe.Of(v, found)
}

func find[A any](n *node[A], pred func(A) bool) (A, bool) {
	if n == nil {
		var none A
		return none, false
	}
	if v, ok := find(n.left, pred); ok {
		return v, true
	}
	if pred(n.value) {
		return n.value, true
	}
	return find(n.right, pred)
}

// Filter returns a tree with all values of t satisfying pred.
func (t Tree[A]) Filter(pred func(A) bool) Tree[A] {
	return FoldLeft(t, Tree[A]{order: t.order}, func(acc Tree[A], v A) Tree[A] {
		if pred(v) {
			return acc.Add(v)
		}
		return acc
	})
}

// Map applies f to every value of t and collects the results in a tree ordered by
// order. Results which are equal with respect to order collapse into one, the last
// one (in the order of t) wins.
func Map[A, B any](t Tree[A], order fpset.Order[B], f func(A) B) Tree[B] {
	return FoldLeft(t, Empty(order), func(acc Tree[B], v A) Tree[B] {
		return acc.Add(f(v))
	})
}

// FlatMap applies f to every value of t and collects the union of the results in a
// tree ordered by order.
func FlatMap[A, B any](t Tree[A], order fpset.Order[B], f func(A) Tree[B]) Tree[B] {
	return FoldLeft(t, Empty(order), func(acc Tree[B], v A) Tree[B] {
		return acc.Union(f(v))
	})
}
