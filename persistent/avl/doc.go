/*
Package avl implements a persistent (immutable) ordered set, backed by an AVL tree.

Every “modification” of a tree (insertion, deletion, set algebra) creates a new
incarnation of the tree, leaving the original unmodified. Only the nodes on the path
from the root to the modified position are copied, all other subtrees are shared
between the original and the copy. Nodes are never changed after construction,
therefore trees are inherently safe for concurrent readers.

A tree is bound to a total order at construction time:

	nums := avl.Of(3, 1, 2)                            // natural order
	desc := avl.Empty(fpset.Reverse(fpset.Natural[int]())).Add(1).Add(2)
	fmt.Println(nums.Union(avl.Of(2, 3, 4)))          // Set(1, 2, 3, 4)

The same tree machinery serves keyed containers: LookupKey, RemoveKey and UpsertKey
locate values by a projection of the stored value (e.g. the key of a key/value pair)
instead of the value itself. Package sortedmap is built this way.

A good introduction to AVL trees may be found at
https://en.wikipedia.org/wiki/AVL_tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package avl

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.avl'.
func tracer() tracing.Trace {
	return tracing.Select("fp.avl")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("avl: "+msg, msgargs...)
		panic(msg)
	}
}
