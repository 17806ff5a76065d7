package avl_test

import (
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/fpset"
	"github.com/npillmayer/fpset/persistent/avl"
	"github.com/npillmayer/fpset/persistent/avl/avlgen"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var natural = fpset.Natural[int]()

func TestInsertOrder(t *testing.T) {
	tree := avl.Empty(natural).Add(3).Add(1).Add(2)
	require.Equal(t, []int{1, 2, 3}, tree.ToList())
	require.Equal(t, 3, tree.Size())
	require.NoError(t, tree.Check())
}

func TestRemove(t *testing.T) {
	tree := avl.Of(1, 2, 3).Remove(2)
	require.Equal(t, []int{1, 3}, tree.ToList())
	assert.False(t, tree.Contains(2))
	assert.Equal(t, []int{1, 3}, tree.Remove(2).ToList())
}

func TestSetAlgebra(t *testing.T) {
	a, b := avl.Of(1, 2, 3), avl.Of(2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).ToList())
	assert.Equal(t, []int{2, 3}, a.Intersect(b).ToList())
	assert.Equal(t, []int{1}, a.Diff(b).ToList())
	assert.True(t, a.Or(b).Equal(a.Union(b)))
	assert.True(t, a.And(b).Equal(a.Intersect(b)))
	assert.True(t, a.AndNot(b).Equal(a.Diff(b)))
	// operands are untouched
	assert.Equal(t, []int{1, 2, 3}, a.ToList())
	assert.Equal(t, []int{2, 3, 4}, b.ToList())
}

func TestSetAlgebraWithEmptyOperands(t *testing.T) {
	a := avl.Of(1, 2)
	var none avl.Tree[int]
	assert.Equal(t, []int{1, 2}, a.Union(none).ToList())
	assert.True(t, a.Intersect(none).IsEmpty())
	assert.True(t, none.Intersect(a).IsEmpty())
	assert.Equal(t, []int{1, 2}, a.Diff(none).ToList())
	assert.True(t, none.Diff(a).IsEmpty())
}

func TestIntersectTakesValuesFromSmallerTree(t *testing.T) {
	type entry = fpset.Pair[string, int]
	byKey := fpset.ByKey(fpset.Key[string, int], fpset.Natural[string]())
	big := avl.FromSequence(byKey, []entry{{Left: "a", Right: 1}, {Left: "b", Right: 1}, {Left: "c", Right: 1}})
	small := avl.FromSequence(byKey, []entry{{Left: "b", Right: 2}})
	assert.Equal(t, []entry{{Left: "b", Right: 2}}, big.Intersect(small).ToList())
	assert.Equal(t, []entry{{Left: "b", Right: 2}}, small.Intersect(big).ToList())
}

func TestSubsetAndEqual(t *testing.T) {
	assert.True(t, avl.Of(1, 2).SubsetOf(avl.Of(1, 2, 3)))
	assert.False(t, avl.Of(1, 4).SubsetOf(avl.Of(1, 2, 3)))
	assert.True(t, avl.Of(3, 2, 1).Equal(avl.Of(1, 2, 3)))
	assert.False(t, avl.Of(1, 2).Equal(avl.Of(1, 2, 3)))
	var none avl.Tree[int]
	assert.True(t, none.Equal(avl.Empty(natural)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Set(1, 2, 3)", avl.Of(3, 2, 1).String())
	assert.Equal(t, "Set()", avl.Empty(natural).String())
	assert.Equal(t, "Set(a, b)", fmt.Sprint(avl.Of("b", "a")))
}

func TestMinMaxFind(t *testing.T) {
	tree := avl.Of(5, 3, 8, 1, 4, 9)
	lo, ok := tree.Min().Get()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := tree.Max().Get()
	assert.True(t, ok)
	assert.Equal(t, 9, hi)
	even, ok := tree.Find(func(n int) bool { return n%2 == 0 }).Get()
	assert.True(t, ok)
	assert.Equal(t, 4, even)
	assert.True(t, tree.Find(func(n int) bool { return n > 100 }).IsNothing())
	empty := avl.Empty(natural)
	assert.True(t, empty.Min().IsNothing())
	assert.True(t, empty.Max().IsNothing())
	assert.True(t, empty.Find(func(int) bool { return true }).IsNothing())
}

func TestFolds(t *testing.T) {
	tree := avl.Of(1, 2, 3)
	left := avl.FoldLeft(tree, "", func(acc string, n int) string {
		return acc + strconv.Itoa(n)
	})
	assert.Equal(t, "123", left)
	right := avl.FoldRight(tree, "", func(n int, acc string) string {
		return acc + strconv.Itoa(n)
	})
	assert.Equal(t, "321", right)
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(tree.Backward()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(tree.All()))
}

func TestFoldRightOnLargeTree(t *testing.T) {
	defer quiet(t)()
	const n = 100000
	tree := avl.Collect(natural, func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	})
	count := avl.FoldRight(tree, 0, func(_ int, acc int) int { return acc + 1 })
	require.Equal(t, n, count)
	require.LessOrEqual(t, tree.Height(), 25)
}

func TestEarlyBreakInIterators(t *testing.T) {
	var seen []int
	for v := range avl.Of(1, 2, 3, 4, 5).All() {
		if v > 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestMapAndFlatMap(t *testing.T) {
	tree := avl.Of(1, 2, 3)
	parity := avl.Map(tree, natural, func(n int) int { return n % 2 })
	assert.Equal(t, []int{0, 1}, parity.ToList())
	names := avl.Map(tree, fpset.Natural[string](), strconv.Itoa)
	assert.Equal(t, "Set(1, 2, 3)", names.String())
	flat := avl.FlatMap(avl.Of(1, 2), natural, func(n int) avl.Tree[int] {
		return avl.Of(n, n*10)
	})
	assert.Equal(t, []int{1, 2, 10, 20}, flat.ToList())
	odd := tree.Filter(func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3}, odd.ToList())
}

func TestReverseOrder(t *testing.T) {
	tree := avl.FromSequence(fpset.Reverse(natural), []int{1, 3, 2})
	assert.Equal(t, []int{3, 2, 1}, tree.ToList())
	assert.True(t, tree.Contains(2))
	assert.NoError(t, tree.Check())
}

func TestLastWriteWins(t *testing.T) {
	type entry = fpset.Pair[int, string]
	byKey := fpset.ByKey(fpset.Key[int, string], natural)
	tree := avl.FromSequence(byKey, []entry{{Left: 1, Right: "a"}, {Left: 2, Right: "x"}, {Left: 1, Right: "b"}})
	assert.Equal(t, []entry{{Left: 1, Right: "b"}, {Left: 2, Right: "x"}}, tree.ToList())
}

func TestKeyedOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.avl")
	defer teardown()
	//
	type entry = fpset.Pair[string, int]
	key := fpset.Key[string, int]
	strs := fpset.Natural[string]()
	sum := func(prev, next entry) entry { return fpset.P(prev.Left, prev.Right+next.Right) }
	tree := avl.Empty(fpset.ByKey(key, strs))
	tree = avl.UpsertKey(tree, fpset.P("a", 1), key, strs, nil)
	tree = avl.UpsertKey(tree, fpset.P("b", 5), key, strs, nil)
	tree = avl.UpsertKey(tree, fpset.P("a", 2), key, strs, sum)
	a, ok := avl.LookupKey(tree, "a", key, strs).Get()
	require.True(t, ok)
	assert.Equal(t, 3, a.Right)
	tree = avl.UpsertKey(tree, fpset.P("a", 7), key, strs, nil)
	a, _ = avl.LookupKey(tree, "a", key, strs).Get()
	assert.Equal(t, 7, a.Right)
	assert.True(t, avl.LookupKey(tree, "z", key, strs).IsNothing())
	tree = avl.RemoveKey(tree, "a", key, strs)
	assert.Equal(t, []entry{{Left: "b", Right: 5}}, tree.ToList())
	assert.Equal(t, tree.ToList(), avl.RemoveKey(tree, "zz", key, strs).ToList())
}

// --- Properties ------------------------------------------------------------

func TestPropertyRoundTrip(t *testing.T) {
	defer quiet(t)()
	draws := avlgen.SliceOf(avlgen.IntsBetween(-50, 50), 60)
	rapid.Check(t, func(t *rapid.T) {
		xs := draws.Draw(t, "xs")
		tree := avl.FromSequence(natural, xs)
		require.Equal(t, sortedSet(xs...), tree.ToList(), "round trip of %v", xs)
		require.Equal(t, len(tree.ToList()), tree.Size())
		require.NoError(t, tree.Check())
	})
}

func TestPropertyMembership(t *testing.T) {
	defer quiet(t)()
	trees := avlgen.Trees(natural, avlgen.IntsBetween(0, 40), 30)
	elems := avlgen.IntsBetween(0, 40)
	rapid.Check(t, func(t *rapid.T) {
		tree, x := trees.Draw(t, "tree"), elems.Draw(t, "x")
		require.True(t, tree.Add(x).Contains(x))
		require.False(t, tree.Remove(x).Contains(x))
		if !tree.Contains(x) {
			require.True(t, tree.Remove(x).Equal(tree))
		}
	})
}

func TestPropertyBalanceUnderChurn(t *testing.T) {
	defer quiet(t)()
	steps := avlgen.SliceOf(avlgen.Pairs(rapid.Bool(), avlgen.IntsBetween(0, 300)), 500)
	rapid.Check(t, func(t *rapid.T) {
		tree := avl.Empty(natural)
		model := map[int]bool{}
		for i, step := range steps.Draw(t, "steps") {
			remove, x := step.Decompose()
			if remove {
				tree = tree.Remove(x)
				delete(model, x)
			} else {
				tree = tree.Add(x)
				model[x] = true
			}
			if err := tree.Check(); err != nil {
				t.Logf("tree =\n%s", tree.Dump())
				t.Fatalf("step %d: %v", i, err)
			}
		}
		require.Equal(t, keysOf(model), tree.ToList())
	})
}

func TestPropertySetAlgebraLaws(t *testing.T) {
	defer quiet(t)()
	trees := avlgen.Trees(natural, avlgen.IntsBetween(0, 50), 40)
	rapid.Check(t, func(t *rapid.T) {
		a, b := trees.Draw(t, "a"), trees.Draw(t, "b")
		inA, inB := memberOf(a), memberOf(b)
		var union, inter, diff []int
		for x := 0; x <= 50; x++ {
			if inA[x] || inB[x] {
				union = append(union, x)
			}
			if inA[x] && inB[x] {
				inter = append(inter, x)
			}
			if inA[x] && !inB[x] {
				diff = append(diff, x)
			}
		}
		require.Equal(t, orEmpty(union), a.Union(b).ToList())
		require.Equal(t, orEmpty(inter), a.Intersect(b).ToList())
		require.Equal(t, orEmpty(diff), a.Diff(b).ToList())
		require.NoError(t, a.Union(b).Check())
		require.NoError(t, a.Diff(b).Check())
	})
}

// ---------------------------------------------------------------------------

// quiet routes traces to the test log and drops rotation chatter.
func quiet(t *testing.T) func() {
	teardown := gotestingadapter.QuickConfig(t, "fp.avl")
	tracing.Select("fp.avl").SetTraceLevel(tracing.LevelError)
	return teardown
}

func sortedSet(xs ...int) []int {
	m := map[int]bool{}
	for _, x := range xs {
		m[x] = true
	}
	return keysOf(m)
}

func keysOf(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func memberOf(tree avl.Tree[int]) map[int]bool {
	m := map[int]bool{}
	for v := range tree.All() {
		m[v] = true
	}
	return m
}

func orEmpty(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
