/*
Package fpset provides the small functional building blocks shared by the
persistent containers of this module: total orders, key projections and pairs.

The containers themselves live in sub-packages:

	persistent/avl        persistent ordered set (AVL tree)
	persistent/sortedmap  persistent ordered map built on top of it

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fpset

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}
