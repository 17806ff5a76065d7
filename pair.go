package fpset

import "fmt"

// Pair is a tuple of two values. Maps store their entries as pairs of key and value.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Key is the projection to the left component.
func Key[A, B any](p Pair[A, B]) A {
	return p.Left
}

// Value is the projection to the right component.
func Value[A, B any](p Pair[A, B]) B {
	return p.Right
}

// Decompose returns both components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("%v -> %v", p.Left, p.Right)
}
