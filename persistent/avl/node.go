package avl

import "fmt"

/*
Remarks:
--------

- A nil *node is the empty tree. All node methods are safe to call on nil.

- Nodes are immutable. Size and height are computed once, in branch(…), and never
  touched again. Re-balancing builds new nodes around shared subtrees.

- 'skew' is the balance factor height(left) - height(right). A valid tree has
  skew ∈ [-1, 1] at every node.
*/

type node[A any] struct {
	value  A
	left   *node[A]
	right  *node[A]
	size   int
	height int
}

// branch creates a new inner node and caches its size and height.
func branch[A any](value A, left, right *node[A]) *node[A] {
	return &node[A]{
		value:  value,
		left:   left,
		right:  right,
		size:   left.len() + right.len() + 1,
		height: max(left.depth(), right.depth()) + 1,
	}
}

func (n *node[A]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[A]) depth() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[A]) skew() int {
	if n == nil {
		return 0
	}
	return n.left.depth() - n.right.depth()
}

func (n *node[A]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// withValue returns a copy of n carrying v. The shape of the tree does not change.
func (n *node[A]) withValue(v A) *node[A] {
	return &node[A]{
		value:  v,
		left:   n.left,
		right:  n.right,
		size:   n.size,
		height: n.height,
	}
}

func (n *node[A]) String() string {
	if n == nil {
		return "⊥"
	}
	return fmt.Sprintf("%v ⟨h=%d n=%d⟩", n.value, n.height, n.size)
}

// --- Balancing -------------------------------------------------------------

// balance restores the AVL property for a node whose subtrees differ in height by
// at most 2, which is all a single insertion or deletion below it can cause.
// Both subtrees have to be valid AVL trees already.
func balance[A any](n *node[A]) *node[A] {
	switch sk := n.skew(); {
	case sk > 1:
		if n.left.skew() < 0 {
			tracer().Debugf("balance: rotate left-right at %v", n.value)
			return rotateLeftRight(n)
		}
		tracer().Debugf("balance: rotate right at %v", n.value)
		return rotateRight(n)
	case sk < -1:
		if n.right.skew() > 0 {
			tracer().Debugf("balance: rotate right-left at %v", n.value)
			return rotateRightLeft(n)
		}
		tracer().Debugf("balance: rotate left at %v", n.value)
		return rotateLeft(n)
	}
	return n
}

// rotateRight turns (y (x a b) c) into (x a (y b c)).
func rotateRight[A any](y *node[A]) *node[A] {
	x := y.left
	assertThat(x != nil, "attempt to rotate right without left child")
	return branch(x.value, x.left, branch(y.value, x.right, y.right))
}

// rotateLeft turns (x a (y b c)) into (y (x a b) c).
func rotateLeft[A any](x *node[A]) *node[A] {
	y := x.right
	assertThat(y != nil, "attempt to rotate left without right child")
	return branch(y.value, branch(x.value, x.left, y.left), y.right)
}

// rotateLeftRight turns (z (x a (y b c)) d) into (y (x a b) (z c d)).
func rotateLeftRight[A any](z *node[A]) *node[A] {
	x := z.left
	assertThat(x != nil && x.right != nil, "attempt to double-rotate without left-right grandchild")
	y := x.right
	return branch(y.value, branch(x.value, x.left, y.left), branch(z.value, y.right, z.right))
}

// rotateRightLeft turns (z a (x (y b c) d)) into (y (z a b) (x c d)).
func rotateRightLeft[A any](z *node[A]) *node[A] {
	x := z.right
	assertThat(x != nil && x.left != nil, "attempt to double-rotate without right-left grandchild")
	y := x.left
	return branch(y.value, branch(z.value, z.left, y.left), branch(x.value, y.right, x.right))
}
