package fpset

import "cmp"

// Order is a total order on A. It returns a negative number if a orders before b,
// zero if a and b are equal and a positive number if a orders after b.
//
// An Order has to be consistent for the lifetime of every container it is bound to.
// Supplying a non-transitive or changing order leaves containers in an undefined state.
type Order[A any] func(a, b A) int

// Natural returns the standard Go ordering for ordered types.
func Natural[A cmp.Ordered]() Order[A] {
	return cmp.Compare[A]
}

// Reverse returns the inverse of an order.
func Reverse[A any](order Order[A]) Order[A] {
	return func(a, b A) int {
		return order(b, a)
	}
}

// ByKey orders composite values solely by a projected key. Values with equal keys
// compare as equal, whatever else they contain.
//
//	byName := fpset.ByKey(func(p Person) string { return p.Name }, fpset.Natural[string]())
func ByKey[A, K any](proj func(A) K, order Order[K]) Order[A] {
	return func(a, b A) int {
		return order(proj(a), proj(b))
	}
}

// Then breaks ties of order by consulting next.
func (order Order[A]) Then(next Order[A]) Order[A] {
	return func(a, b A) int {
		if c := order(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}
