package bst

import (
	"iter"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTraversalOrders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkage.bst")
	defer teardown()
	//
	tree := buildTree(10, 5, 1, 9, 15, 30, 11)
	t.Logf("tree = %s", tree)
	tests := []struct {
		name     string
		walk     func(func(int))
		expected []int
	}{
		{"in-order", tree.InOrder, []int{1, 5, 9, 10, 11, 15, 30}},
		{"pre-order", tree.PreOrder, []int{10, 5, 1, 9, 15, 11, 30}},
		{"post-order", tree.PostOrder, []int{1, 9, 5, 11, 30, 15, 10}},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, collect(test.walk), test.name)
	}
}

func TestTraversalSequences(t *testing.T) {
	tree := buildTree(10, 5, 1, 9, 15, 30, 11)
	assert.Equal(t, []int{1, 5, 9, 10, 11, 15, 30}, slices.Collect(tree.All()))
	assert.Equal(t, []int{1, 5, 9, 10, 11, 15, 30}, slices.Collect(tree.InOrderSeq()))
	assert.Equal(t, []int{10, 5, 1, 9, 15, 11, 30}, slices.Collect(tree.PreOrderSeq()))
	assert.Equal(t, []int{1, 9, 5, 11, 30, 15, 10}, slices.Collect(tree.PostOrderSeq()))
}

func TestTraversalSequenceRestartable(t *testing.T) {
	tree := buildTree(2, 1, 3)
	seq := tree.PostOrderSeq()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("expected two ranges over a sequence to agree, have %v and %v", first, second)
	}
}

func TestTraversalSequenceBreak(t *testing.T) {
	tree := buildTree(10, 5, 1, 9, 15, 30, 11)
	for _, seq := range []func() []int{
		func() []int { return firstN(tree.InOrderSeq(), 3) },
		func() []int { return firstN(tree.PreOrderSeq(), 3) },
		func() []int { return firstN(tree.PostOrderSeq(), 3) },
	} {
		assert.Len(t, seq(), 3)
	}
	assert.Equal(t, []int{1, 5, 9}, firstN(tree.All(), 3))
	assert.Equal(t, []int{10, 5, 1}, firstN(tree.PreOrderSeq(), 3))
	assert.Equal(t, []int{1, 9, 5}, firstN(tree.PostOrderSeq(), 3))
}

func TestTraversalEmpty(t *testing.T) {
	tree := NewEmpty[string]()
	assert.Empty(t, slices.Collect(tree.All()))
	assert.Empty(t, slices.Collect(tree.PreOrderSeq()))
	assert.Empty(t, slices.Collect(tree.PostOrderSeq()))
}

func TestTraversalDegenerateTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkage.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 5000
	tree := NewEmpty[int]()
	for i := 0; i < n; i++ { // sorted input degenerates the tree into a list
		tree.Add(i)
	}
	assert.Equal(t, n, tree.Height())
	vals := collect(tree.PostOrder)
	if len(vals) != n || vals[0] != n-1 || vals[n-1] != 0 {
		t.Errorf("unexpected post-order of right-leaning chain")
	}
	for i := 0; i < n; i += 2 {
		tree.Delete(i)
	}
	assert.Equal(t, n/2, tree.Len())
	checkInvariants(t, tree)
	tree.Clear()
	assert.True(t, tree.IsEmpty())
}

func firstN[T any](seq iter.Seq[T], n int) []T {
	var vals []T
	for v := range seq {
		if len(vals) == n {
			break
		}
		vals = append(vals, v)
	}
	return vals
}
