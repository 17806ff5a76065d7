package avl

import (
	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/maybe"
)

// Keyed operations locate values by a projection of the stored values, e.g. the key
// of a key/value pair, rather than by the values themselves. This makes it possible to
// find or delete an entry knowing the key only.
//
// The tree has to be ordered consistently with the projection, i.e. its order has to
// be fpset.ByKey(proj, order) or an equivalent one. This is not checked.

func keyProbe[A, K any](key K, proj func(A) K, order fpset.Order[K]) probe[A] {
	return func(value A) int {
		return order(key, proj(value))
	}
}

// LookupKey finds the value whose projection equals key.
func LookupKey[A, K any](t Tree[A], key K, proj func(A) K, order fpset.Order[K]) maybe.Maybe[A] {
	if n := lookup(t.root, keyProbe(key, proj, order)); n != nil {
		return maybe.Just(n.value)
	}
	return maybe.Nothing[A]()
}

// RemoveKey returns a copy of t without the value whose projection equals key.
// If there is no such value, t is returned unchanged.
func RemoveKey[A, K any](t Tree[A], key K, proj func(A) K, order fpset.Order[K]) Tree[A] {
	if root, found := remove(t.root, keyProbe(key, proj, order)); found {
		t.root = root
	}
	return t
}

// UpsertKey returns a copy of t with value inserted at the position of its key
// proj(value). If t already holds a value with this key, the new tree holds
// combine(existing, value) instead. A nil combine overwrites the existing value.
//
// combine should be associative if the outcome of repeated upserts is expected to be
// independent of their grouping. This is the caller's obligation.
func UpsertKey[A, K any](t Tree[A], value A, proj func(A) K, order fpset.Order[K],
	combine func(existing, value A) A) Tree[A] {
	//
	assertThat(t.order != nil, "tree has no order; create trees with avl.Empty(…)")
	t.root = insert(t.root, value, keyProbe(proj(value), proj, order), combine)
	return t
}
