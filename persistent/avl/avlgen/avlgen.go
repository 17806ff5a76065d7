/*
Package avlgen provides rapid generators of values and of valid trees for
property-based tests.

	rapid.Check(t, func(t *rapid.T) {
		trees := avlgen.Trees(fpset.Natural[int](), avlgen.IntsBetween(0, 100), 50)
		a, b := trees.Draw(t, "a"), trees.Draw(t, "b")
		…
	})

Trees are built by folding drawn values through avl.Tree.Add. They are valid by
construction, there is no separate validation. Failing cases shrink through the
drawn values.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package avlgen

import (
	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/persistent/avl"
	"pgregory.net/rapid"
)

// IntsBetween generates integers in [lo, hi].
func IntsBetween(lo, hi int) *rapid.Generator[int] {
	if hi < lo {
		lo, hi = hi, lo
	}
	return rapid.IntRange(lo, hi)
}

// Strings generates strings of up to maxLen runes drawn from alphabet.
func Strings(alphabet string, maxLen int) *rapid.Generator[string] {
	runes := []rune(alphabet)
	if len(runes) == 0 || maxLen <= 0 {
		return rapid.Just("")
	}
	return rapid.StringOfN(rapid.SampledFrom(runes), 0, maxLen, -1)
}

// SliceOf generates slices of up to maxLen values drawn from g.
func SliceOf[A any](g *rapid.Generator[A], maxLen int) *rapid.Generator[[]A] {
	if maxLen < 0 {
		maxLen = 0
	}
	return rapid.SliceOfN(g, 0, maxLen)
}

// Pairs combines a key generator and a value generator.
func Pairs[K, V any](keys *rapid.Generator[K], values *rapid.Generator[V]) *rapid.Generator[fpset.Pair[K, V]] {
	return rapid.Custom(func(t *rapid.T) fpset.Pair[K, V] {
		return fpset.P(keys.Draw(t, "key"), values.Draw(t, "value"))
	})
}

// Trees generates trees holding up to maxSize draws from g. Draws which are equal
// with respect to order collapse, so a tree may hold fewer values than drawn.
func Trees[A any](order fpset.Order[A], g *rapid.Generator[A], maxSize int) *rapid.Generator[avl.Tree[A]] {
	draws := SliceOf(g, maxSize)
	return rapid.Custom(func(t *rapid.T) avl.Tree[A] {
		return avl.FromSequence(order, draws.Draw(t, "values"))
	})
}
