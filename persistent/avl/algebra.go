package avl

// Set algebra. None of the operations modifies an operand. The result is ordered by
// the order of the receiver.

// Union returns a tree holding the values of both t and other. Where both trees hold
// equal values, the one from other ends up in the result. O(m log(n+m)).
//
// The union of the zero tree and other is other, with the order of other.
func (t Tree[A]) Union(other Tree[A]) Tree[A] {
	if other.IsEmpty() {
		return t
	}
	if t.order == nil && t.root == nil {
		return other
	}
	return FoldLeft(other, t, Tree[A].Add)
}

// Intersect returns a tree holding the values present in both t and other.
// The smaller of the two trees drives the iteration, the values in the result
// are taken from it. O(min(n,m) log max(n,m)).
func (t Tree[A]) Intersect(other Tree[A]) Tree[A] {
	if t.IsEmpty() || other.IsEmpty() {
		return Tree[A]{order: t.order}
	}
	driver, probed := t, other
	if other.Size() < t.Size() {
		driver, probed = other, t
	}
	tracer().Debugf("intersect: iterating %d values, probing %d", driver.Size(), probed.Size())
	return FoldLeft(driver, Tree[A]{order: t.order}, func(acc Tree[A], v A) Tree[A] {
		if probed.Contains(v) {
			return acc.Add(v)
		}
		return acc
	})
}

// Diff returns a tree holding the values of t which are not in removals.
// O(m log n).
func (t Tree[A]) Diff(removals Tree[A]) Tree[A] {
	if t.IsEmpty() {
		return t
	}
	return FoldLeft(removals, t, Tree[A].Remove)
}

// Or is an alias for Union.
func (t Tree[A]) Or(other Tree[A]) Tree[A] {
	return t.Union(other)
}

// And is an alias for Intersect.
func (t Tree[A]) And(other Tree[A]) Tree[A] {
	return t.Intersect(other)
}

// AndNot is an alias for Diff.
func (t Tree[A]) AndNot(removals Tree[A]) Tree[A] {
	return t.Diff(removals)
}

// SubsetOf reports whether every value of t is contained in other.
func (t Tree[A]) SubsetOf(other Tree[A]) bool {
	if t.Size() > other.Size() {
		return false
	}
	for v := range t.All() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Equal reports whether t and other hold the same values, regardless of the shape of
// the trees.
func (t Tree[A]) Equal(other Tree[A]) bool {
	if t.root == other.root {
		return true
	}
	return t.Size() == other.Size() && t.SubsetOf(other)
}
