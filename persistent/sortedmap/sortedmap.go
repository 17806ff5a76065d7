package sortedmap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/maybe"
	"github.com/npillmayer/fpset/persistent/avl"
)

// Map is a persistent map from keys K to values V, ordered by K. It holds at most
// one entry per key.
//
// The zero value of Map is an empty map for all read operations. Maps have to be
// created with New or Natural before entries can be put into them.
type Map[K, V any] struct {
	props[V]
	tree  avl.Tree[fpset.Pair[K, V]]
	order fpset.Order[K]
}

type props[V any] struct {
	combine func(prev, next V) V
}

// Option is a type to help initializing maps at creation time.
type Option[V any] struct {
	config func(props[V]) props[V]
}

// Combine is an option to merge values on key collision instead of overwriting
// them. Put(k, v) for an existing entry (k, old) will result in (k, f(old, v)).
//
// f should be associative if the outcome of repeated puts is expected to be
// independent of their grouping.
func Combine[V any](f func(prev, next V) V) Option[V] {
	return Option[V]{config: func(p props[V]) props[V] {
		p.combine = f
		return p
	}}
}

// New creates an empty map ordered by keys with respect to order.
func New[K, V any](order fpset.Order[K], opts ...Option[V]) Map[K, V] {
	m := Map[K, V]{
		tree:  avl.Empty(fpset.ByKey(fpset.Key[K, V], order)),
		order: order,
	}
	for _, option := range opts {
		m.props = option.config(m.props)
	}
	return m
}

// Natural creates an empty map for ordered keys, using their natural order.
func Natural[K cmp.Ordered, V any](opts ...Option[V]) Map[K, V] {
	return New[K, V](fpset.Natural[K](), opts...)
}

// --- API -------------------------------------------------------------------

// Size returns the number of entries. O(1).
func (m Map[K, V]) Size() int {
	return m.tree.Size()
}

// IsEmpty is true for a map without entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Get returns the value associated with key. If key is not present, the zero value
// for V is returned, together with found=false.
func (m Map[K, V]) Get(key K) (V, bool) {
	if entry, found := m.lookup(key).Get(); found {
		return entry.Right, true
	}
	var none V
	return none, false
}

// Contains reports whether key is present.
func (m Map[K, V]) Contains(key K) bool {
	return !m.lookup(key).IsNothing()
}

func (m Map[K, V]) lookup(key K) maybe.Maybe[fpset.Pair[K, V]] {
	return avl.LookupKey(m.tree, key, fpset.Key[K, V], m.order)
}

// Put returns a copy of m with key associated to value. If key is already present,
// its value is replaced, unless m has been created with option Combine.
func (m Map[K, V]) Put(key K, value V) Map[K, V] {
	return m.PutWith(key, value, m.combine)
}

// PutWith returns a copy of m with key associated to value. If key is already
// present with value old, it will be associated to combine(old, value) instead.
// A nil combine overwrites.
func (m Map[K, V]) PutWith(key K, value V, combine func(prev, next V) V) Map[K, V] {
	var merge func(existing, entry fpset.Pair[K, V]) fpset.Pair[K, V]
	if combine != nil {
		merge = func(existing, entry fpset.Pair[K, V]) fpset.Pair[K, V] {
			return fpset.P(existing.Left, combine(existing.Right, entry.Right))
		}
	}
	m.tree = avl.UpsertKey(m.tree, fpset.P(key, value), fpset.Key[K, V], m.order, merge)
	return m
}

// Remove returns a copy of m without key. If key is not present, m is returned
// unchanged.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	m.tree = avl.RemoveKey(m.tree, key, fpset.Key[K, V], m.order)
	return m
}

// Merge puts all entries of other into a copy of m, combining values of keys present
// in both maps with combine. A nil combine lets values of other win.
func (m Map[K, V]) Merge(other Map[K, V], combine func(prev, next V) V) Map[K, V] {
	tracer().Debugf("merge: %d entries into map of size %d", other.Size(), m.Size())
	return avl.FoldLeft(other.tree, m, func(acc Map[K, V], entry fpset.Pair[K, V]) Map[K, V] {
		return acc.PutWith(entry.Left, entry.Right, combine)
	})
}

// First returns the entry with the smallest key, if any.
func (m Map[K, V]) First() maybe.Maybe[fpset.Pair[K, V]] {
	return m.tree.Min()
}

// Last returns the entry with the largest key, if any.
func (m Map[K, V]) Last() maybe.Maybe[fpset.Pair[K, V]] {
	return m.tree.Max()
}

// ToList returns all entries in ascending key order.
func (m Map[K, V]) ToList() []fpset.Pair[K, V] {
	return m.tree.ToList()
}

// All returns an iterator over all entries in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for entry := range m.tree.All() {
			if !yield(entry.Left, entry.Right) {
				return
			}
		}
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in ascending order of their keys.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// KeySet returns the keys of m as a set.
func (m Map[K, V]) KeySet() avl.Tree[K] {
	if m.order == nil {
		return avl.Tree[K]{}
	}
	return avl.Map(m.tree, m.order, fpset.Key[K, V])
}

// String renders m as "Map(k1 -> v1, k2 -> v2, …)".
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Map(")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v -> %v", k, v)
		first = false
	}
	sb.WriteByte(')')
	return sb.String()
}
