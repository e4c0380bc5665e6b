package bst

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Keys of the testkeys corpora are stored sorted. Inserting them in that order
// would produce a degenerate tree, so they are shuffled first.

const maxKeysPerAsset = 3000

var keyCache = map[string][]string{}

func shuffledKeys(name string, seed int64) []string {
	keys, ok := keyCache[name]
	if !ok {
		keys = testkeys.Load(name)
		keyCache[name] = keys
	}
	if len(keys) > maxKeysPerAsset {
		keys = keys[:maxKeysPerAsset]
	}
	keys = slices.Clone(keys)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

func TestKeysInsertLookupDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkage.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for _, name := range testkeys.AssetNames() {
		keys := shuffledKeys(name, 42)
		if len(keys) == 0 {
			continue
		}
		t.Run(name, func(t *testing.T) {
			tree := NewEmpty[string]()
			distinct := map[string]bool{}
			for _, k := range keys {
				tree.Add(k)
				distinct[k] = true
			}
			require.Equal(t, len(distinct), tree.Len())
			// in-order yields sorted keys
			inorder := slices.Collect(tree.All())
			require.True(t, sort.StringsAreSorted(inorder), "in-order traversal not sorted")
			require.Len(t, inorder, len(distinct))
			for _, k := range keys {
				v, ok := tree.Find(k)
				require.True(t, ok, "expected to find %q", k)
				require.Equal(t, k, v)
			}
			assert.True(t, tree.Get("\x00not-a-key").IsNothing())
			// delete every other key, the rest must survive
			deleted := map[string]bool{}
			for i, k := range keys {
				if i%2 == 0 && !deleted[k] {
					require.True(t, tree.Remove(k), "expected to remove %q", k)
					deleted[k] = true
				}
			}
			checkInvariants(t, tree)
			for k := range distinct {
				if deleted[k] {
					assert.True(t, tree.Get(k).IsNothing(), "expected %q to be deleted", k)
				} else {
					assert.False(t, tree.Get(k).IsNothing(), "expected %q to survive", k)
				}
			}
			assert.Equal(t, len(distinct)-len(deleted), tree.Len())
		})
	}
}

func TestRandomOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkage.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	r := rand.New(rand.NewSource(7))
	tree := NewEmpty[int]()
	present := map[int]bool{}
	for i := 0; i < 20000; i++ {
		v := r.Intn(500)
		if r.Intn(3) == 0 {
			removed := tree.Remove(v)
			require.Equal(t, present[v], removed, "remove %d", v)
			delete(present, v)
		} else {
			inserted := tree.Insert(v)
			require.Equal(t, !present[v], inserted, "insert %d", v)
			present[v] = true
		}
	}
	checkInvariants(t, tree)
	require.Equal(t, len(present), tree.Len())
	for v := 0; v < 500; v++ {
		assert.Equal(t, present[v], tree.Contains(v), "contains %d", v)
	}
}

func BenchmarkKeysInsert(b *testing.B) {
	for _, name := range testkeys.AssetNames() {
		keys := shuffledKeys(name, 1)
		if len(keys) < 1000 {
			continue
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tree := NewEmpty[string]()
				for _, k := range keys {
					tree.Add(k)
				}
			}
		})
	}
}

func BenchmarkKeysGet(b *testing.B) {
	for _, name := range testkeys.AssetNames() {
		keys := shuffledKeys(name, 1)
		if len(keys) < 1000 {
			continue
		}
		tree := NewEmpty[string]()
		for _, k := range keys {
			tree.Add(k)
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tree.Get(keys[i%len(keys)])
			}
		})
	}
}
