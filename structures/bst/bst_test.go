package bst

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_InsertAndContains(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	assert.False(t, tree.Contains(1))

	for _, v := range []int{5, 3, 7, 2, 4} {
		assert.True(t, tree.Insert(v))
	}

	for _, v := range []int{5, 3, 7, 2, 4} {
		assert.Truef(t, tree.Contains(v), "value %d", v)
	}
	assert.False(t, tree.Contains(1))
	assert.False(t, tree.Contains(6))

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, []int{2, 3, 4, 5, 7}, slices.Collect(tree.All()))

	require.NotNil(t, tree.root)
	assert.Equal(t, 5, tree.root.value)
	assert.Equal(t, 3, tree.root.left.value)
	assert.Equal(t, 7, tree.root.right.value)
	assert.Equal(t, 2, tree.root.left.left.value)
	assert.Equal(t, 4, tree.root.left.right.value)
}

func TestTree_InsertDuplicate(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	assert.True(t, tree.Insert(1))
	assert.False(t, tree.Insert(1))

	assert.True(t, tree.Contains(1))
	assert.Equal(t, 1, tree.Len())

	require.NotNil(t, tree.root)
	assert.Nil(t, tree.root.left)
	assert.Nil(t, tree.root.right)
}

func TestTree_NewFunc(t *testing.T) {
	t.Parallel()

	tree := NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	assert.True(t, tree.Insert("Raft"))
	assert.False(t, tree.Insert("raft"), "case-insensitive duplicates are rejected")
	assert.True(t, tree.Insert("paxos"))

	assert.True(t, tree.Contains("RAFT"))
	assert.Equal(t, []string{"paxos", "Raft"}, slices.Collect(tree.All()))
}

func TestTree_MatchesBTree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	tree := New[int]()
	reference := btree.NewOrderedG[int](4)

	for range 500 {
		v := rng.IntN(200)
		_, replaced := reference.ReplaceOrInsert(v)
		assert.Equal(t, !replaced, tree.Insert(v))
	}

	assert.Equal(t, reference.Len(), tree.Len())
	for v := range 200 {
		assert.Equalf(t, reference.Has(v), tree.Contains(v), "value %d", v)
	}

	var want []int
	reference.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	assert.Equal(t, want, slices.Collect(tree.All()))
}

func TestTree_AllStopsEarly(t *testing.T) {
	t.Parallel()

	tree := New[int]()
	for _, v := range []int{4, 2, 6, 1, 3} {
		tree.Insert(v)
	}

	var got []int
	for v := range tree.All() {
		if v > 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}
