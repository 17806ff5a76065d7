package avl

import (
	"errors"
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// String renders t as "Set(v1, v2, …)", values in ascending order.
func (t Tree[A]) String() string {
	var sb strings.Builder
	sb.WriteString("Set(")
	first := true
	for v := range t.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	sb.WriteByte(')')
	return sb.String()
}

// Dump renders the structure of t, i.e. every node with its height and size.
// It is intended for debugging.
func (t Tree[A]) Dump() string {
	header := fmt.Sprintf("\nTree(size=%d, height=%d)\n", t.Size(), t.Height())
	p := tp.New()
	dumpNode(p, t.root)
	return header + p.String() + "\n"
}

func dumpNode[A any](p tp.Tree, n *node[A]) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		p.AddNode(n.String())
		return
	}
	sub := p.AddBranch(n.String())
	for _, ch := range [2]*node[A]{n.left, n.right} {
		if ch == nil {
			sub.AddNode("⊥")
		} else {
			dumpNode(sub, ch)
		}
	}
}

// --- Invariants ------------------------------------------------------------

// Errors reported by Check.
var (
	ErrUnordered  = errors.New("values out of order")
	ErrUnbalanced = errors.New("subtree heights differ by more than 1")
	ErrIncoherent = errors.New("cached size or height is wrong")
)

// Check verifies the invariants of t: values are strictly ascending with respect to
// the order of t, every node is balanced and every node caches its true size and
// height. Trees built with the operations of this package always pass; Check exists
// to detect orders which are not consistent total orders.
func (t Tree[A]) Check() error {
	if err := checkNode(t.root); err != nil {
		return err
	}
	if t.root != nil && t.order == nil {
		return fmt.Errorf("%w: non-empty tree without order", ErrUnordered)
	}
	var prev A
	seen := false
	for v := range t.All() {
		if seen && t.order(prev, v) >= 0 {
			return fmt.Errorf("%w: %v is followed by %v", ErrUnordered, prev, v)
		}
		prev, seen = v, true
	}
	return nil
}

func checkNode[A any](n *node[A]) error {
	if n == nil {
		return nil
	}
	if err := checkNode(n.left); err != nil {
		return err
	}
	if err := checkNode(n.right); err != nil {
		return err
	}
	if sk := n.skew(); sk < -1 || sk > 1 {
		return fmt.Errorf("%w: skew %d at %v", ErrUnbalanced, sk, n)
	}
	if n.size != n.left.len()+n.right.len()+1 || n.height != max(n.left.depth(), n.right.depth())+1 {
		return fmt.Errorf("%w: at %v", ErrIncoherent, n)
	}
	return nil
}
