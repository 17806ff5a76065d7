package avl

import (
	"cmp"
	"iter"

	"github.com/npillmayer/fpset"
)

// Tree is a persistent ordered set of values of type A, without duplicates.
//
// A Tree is bound to an order at construction time, see Empty. The zero value of
// Tree is a valid empty tree for all read operations, but it has no order and
// therefore panics if a value is added:
//
//	var none avl.Tree[string]
//	none.Size()                                 // 0
//	tree := avl.Empty(fpset.Natural[string]())   // ready to use
type Tree[A any] struct {
	root  *node[A]
	order fpset.Order[A]
}

// Empty creates an empty tree ordered by order.
func Empty[A any](order fpset.Order[A]) Tree[A] {
	assertThat(order != nil, "tree needs an order")
	return Tree[A]{order: order}
}

// Of creates a tree of ordered values, using their natural order.
func Of[A cmp.Ordered](items ...A) Tree[A] {
	return FromSequence(fpset.Natural[A](), items)
}

// FromSequence inserts all items into a new tree. For items which are equal with
// respect to order, the last one wins.
func FromSequence[A any](order fpset.Order[A], items []A) Tree[A] {
	tree := Empty(order)
	for _, x := range items {
		tree = tree.Add(x)
	}
	return tree
}

// Collect inserts all values produced by seq into a new tree.
func Collect[A any](order fpset.Order[A], seq iter.Seq[A]) Tree[A] {
	tree := Empty(order)
	for x := range seq {
		tree = tree.Add(x)
	}
	return tree
}

// Order returns the order the tree has been created with.
func (t Tree[A]) Order() fpset.Order[A] {
	return t.order
}

// Size returns the number of values in t. O(1).
func (t Tree[A]) Size() int {
	return t.root.len()
}

// IsEmpty is true for a tree without values. O(1).
func (t Tree[A]) IsEmpty() bool {
	return t.root == nil
}

// Height is the number of nodes on the longest path from the root to a leaf.
func (t Tree[A]) Height() int {
	return t.root.depth()
}

// Contains reports whether a value equal to x is an element of t.
func (t Tree[A]) Contains(x A) bool {
	if t.root == nil {
		return false
	}
	return lookup(t.root, t.probe(x)) != nil
}

// Add returns a copy of t with x inserted. If t contains a value equal to x, it is
// replaced by x (in a new incarnation of the tree, nevertheless).
func (t Tree[A]) Add(x A) Tree[A] {
	t.root = insert(t.root, x, t.probe(x), nil)
	return t
}

// Remove returns a copy of t without x. If x is not an element of t, t is returned
// unchanged.
func (t Tree[A]) Remove(x A) Tree[A] {
	if t.root == nil {
		return t
	}
	if root, found := remove(t.root, t.probe(x)); found {
		t.root = root
	}
	return t
}

// --- Descent engine --------------------------------------------------------

// probe compares a search target against the value of a node. It returns the
// position of the target relative to the value, the same way an Order does.
// Plain operations probe with the tree's order, keyed operations compare the
// target against a projection of the node's value.
type probe[A any] func(value A) int

func (t Tree[A]) probe(x A) probe[A] {
	order := t.order
	assertThat(order != nil, "tree has no order; create trees with avl.Empty(…)")
	return func(value A) int {
		return order(x, value)
	}
}

func lookup[A any](n *node[A], p probe[A]) *node[A] {
	for n != nil {
		c := p(n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insert places x at the position p leads to. If there already is a matching value,
// it is replaced by x, or by merge(old, x) if merge is given.
func insert[A any](n *node[A], x A, p probe[A], merge func(prev, next A) A) *node[A] {
	if n == nil {
		return branch[A](x, nil, nil)
	}
	c := p(n.value)
	switch {
	case c < 0:
		return balance(branch(n.value, insert(n.left, x, p, merge), n.right))
	case c > 0:
		return balance(branch(n.value, n.left, insert(n.right, x, p, merge)))
	}
	if merge != nil {
		x = merge(n.value, x)
	}
	return n.withValue(x)
}

// remove deletes the value p matches. If there is none, n is returned unchanged
// together with found=false, leaving callers free to share the original tree.
func remove[A any](n *node[A], p probe[A]) (*node[A], bool) {
	if n == nil {
		return nil, false
	}
	c := p(n.value)
	switch {
	case c < 0:
		left, found := remove(n.left, p)
		if !found {
			return n, false
		}
		return balance(branch(n.value, left, n.right)), true
	case c > 0:
		right, found := remove(n.right, p)
		if !found {
			return n, false
		}
		return balance(branch(n.value, n.left, right)), true
	}
	tracer().Debugf("remove: delete node %v", n)
	if n.right == nil {
		return n.left, true
	}
	succ, right := removeMin(n.right)
	return balance(branch(succ, n.left, right)), true
}

// removeMin cuts the leftmost value from a non-empty tree.
func removeMin[A any](n *node[A]) (A, *node[A]) {
	if n.left == nil {
		return n.value, n.right
	}
	least, left := removeMin(n.left)
	return least, balance(branch(n.value, left, n.right))
}
