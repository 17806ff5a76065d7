/*
Package sortedmap implements a persistent (immutable) map, ordered by keys.

A Map stores its entries as key/value pairs in an AVL tree (package avl), ordered
by the key only. Values never take part in ordering or equality. Like the tree,
every modification returns a new map sharing most of its structure with the
original.

	m := sortedmap.Natural[string, int]()
	m = m.Put("a", 1).Put("a", 2)                     // overwrite: a -> 2
	m = m.PutWith("a", 3, func(x, y int) int {        // combine:   a -> 5
	    return x + y
	})

A map may be created with a default combine function, which turns Put into
a combining upsert:

	counts := sortedmap.Natural[string](sortedmap.Combine(func(x, y int) int { return x + y }))

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sortedmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.sortedmap'.
func tracer() tracing.Trace {
	return tracing.Select("fp.sortedmap")
}
