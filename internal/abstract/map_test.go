// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"cmp"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{Unbalanced, AVL, Splay}

func forEachStrategy(t *testing.T, f func(t *testing.T, s Strategy)) {
	for _, s := range strategies {
		s := s
		t.Run(s.String(), func(t *testing.T) { f(t, s) })
	}
}

func makeIntMap(s Strategy, keys ...int) Map[int, int] {
	m := MakeMap[int, int](s, cmp.Compare[int], nil)
	for _, k := range keys {
		m.Insert(k, k)
	}
	return m
}

func inOrderKeys[V any](m *Map[int, V]) []int {
	keys := []int{}
	Traverse(m.root, InOrder, func(n *Node[int, V]) {
		keys = append(keys, n.key)
	})
	return keys
}

func sortedCopy(keys []int) []int {
	out := append([]int{}, keys...)
	sort.Ints(out)
	return out
}

func TestInsertRemoveRandom(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		rng := rand.New(rand.NewSource(int64(s) + 1))
		m := makeIntMap(s)
		var ref []int
		for i := 0; i < 2000; i++ {
			k := rng.Intn(64)
			switch op := rng.Intn(4); {
			case op < 2:
				n := m.Insert(k, i)
				require.Equal(t, k, n.Key())
				require.Equal(t, i, n.Value())
				j := sort.SearchInts(ref, k+1)
				ref = append(ref[:j], append([]int{k}, ref[j:]...)...)
			case op == 2:
				n := m.Remove(k)
				j := sort.SearchInts(ref, k)
				if j < len(ref) && ref[j] == k {
					require.NotNil(t, n)
					require.Equal(t, k, n.Key())
					require.Nil(t, n.Parent())
					require.Nil(t, n.Left())
					require.Nil(t, n.Right())
					ref = append(ref[:j], ref[j+1:]...)
					m.Free(n)
				} else {
					require.Nil(t, n)
				}
			default:
				n := m.Find(k)
				j := sort.SearchInts(ref, k)
				if j < len(ref) && ref[j] == k {
					require.NotNil(t, n)
					require.Equal(t, k, n.Key())
				} else {
					require.Nil(t, n)
				}
			}
			require.NoError(t, m.Verify())
			require.Equal(t, len(ref), m.Len())
			require.Equal(t, len(ref) == 0, m.Root() == nil)
		}
		require.Equal(t, ref, inOrderKeys(&m))
		require.True(t, m.Validate())
	})
}

func TestRoundTrip(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		m := MakeMap[int, string](s, cmp.Compare[int], nil)
		for i, k := range []int{42, 7, 99, 13, 64} {
			n := m.Insert(k, fmt.Sprint("v", i))
			found := m.Find(k)
			require.NotNil(t, found)
			require.Equal(t, n.Value(), found.Value())
		}
		require.True(t, m.Delete(13))
		require.Nil(t, m.Find(13))
		require.False(t, m.Delete(13))
		require.NoError(t, m.Verify())
	})
}

func TestAVLScenario(t *testing.T) {
	m := makeIntMap(AVL, 5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, inOrderKeys(&m))
	require.LessOrEqual(t, m.Height(), 3)
	require.Equal(t, subtreeHeight(m.root), m.Height())
	require.NoError(t, m.Verify())
}

func TestAVLSequentialInsertStaysBalanced(t *testing.T) {
	m := makeIntMap(AVL)
	for i := 1; i <= 1024; i++ {
		m.Insert(i, i)
	}
	require.NoError(t, m.Verify())
	// The height of an AVL tree with n nodes is below 1.45*log2(n+2).
	require.LessOrEqual(t, m.Height(), 14)
	for i := 1; i <= 1024; i += 2 {
		require.True(t, m.Delete(i))
	}
	require.NoError(t, m.Verify())
	require.Equal(t, 512, m.Len())
}

func TestAVLRotations(t *testing.T) {
	for _, tc := range []struct {
		name string
		keys []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"right-right", []int{1, 2, 3}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := makeIntMap(AVL, tc.keys...)
			require.NoError(t, m.Verify())
			require.Equal(t, 2, m.Root().Key())
			require.Equal(t, 1, m.Root().Left().Key())
			require.Equal(t, 3, m.Root().Right().Key())
			require.Equal(t, 2, m.Height())
		})
	}
}

func TestRemoveSplicesRightChild(t *testing.T) {
	m := makeIntMap(Unbalanced, 1, 2, 3, 4, 5)
	four := m.Find(4)
	require.Nil(t, four.Left())
	require.Equal(t, 5, four.Right().Key())
	three := four.Parent()

	n := m.Remove(4)
	require.Equal(t, 4, n.Key())
	require.Equal(t, []int{1, 2, 3, 5}, inOrderKeys(&m))
	require.Equal(t, 5, three.Right().Key())
	require.Equal(t, three, three.Right().Parent())
	require.NoError(t, m.Verify())
}

func TestRemovePromotesSuccessor(t *testing.T) {
	//	    5
	//	   / \
	//	  2   8
	//	     / \
	//	    7   9
	//	   /
	//	  6
	m := makeIntMap(Unbalanced, 5, 2, 8, 7, 9, 6)
	m.Free(m.Remove(5))
	root := m.Root()
	require.Equal(t, 6, root.Key())
	require.Nil(t, root.Parent())
	require.Equal(t, 2, root.Left().Key())
	require.Equal(t, 8, root.Right().Key())
	require.Nil(t, m.Find(7).Left())
	require.Equal(t, 5, root.Size())
	require.NoError(t, m.Verify())

	// The successor of 8 is its immediate right child.
	m.Free(m.Remove(8))
	nine := m.Root().Right()
	require.Equal(t, 9, nine.Key())
	require.Equal(t, 7, nine.Left().Key())
	require.Nil(t, nine.Right())
	require.Equal(t, []int{2, 6, 7, 9}, inOrderKeys(&m))
	require.NoError(t, m.Verify())
}

func TestRemoveRootWithoutRightChild(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		m := makeIntMap(s, 2, 1)
		m.Free(m.Remove(2))
		require.Equal(t, 1, m.Root().Key())
		require.Nil(t, m.Root().Parent())
		m.Free(m.Remove(1))
		require.Nil(t, m.Root())
		require.Nil(t, m.Remove(1))
		require.NoError(t, m.Verify())
	})
}

func TestDuplicateKeysOrderAfterExisting(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		m := MakeMap[int, string](s, cmp.Compare[int], nil)
		m.Insert(2, "x")
		m.Insert(1, "a")
		m.Insert(3, "y")
		m.Insert(1, "b")
		m.Insert(1, "c")
		var got []string
		Traverse(m.root, InOrder, func(n *Node[int, string]) {
			got = append(got, n.Value())
		})
		require.Equal(t, []string{"a", "b", "c", "x", "y"}, got)
		require.NoError(t, m.Verify())
		require.Equal(t, 5, m.Len())

		var ranged []string
		m.Range(1, 1, func(n *Node[int, string]) { ranged = append(ranged, n.Value()) })
		require.Equal(t, []string{"a", "b", "c"}, ranged)
		require.Equal(t, 0, m.Rank(1))
		require.Equal(t, 3, m.Rank(2))
	})
}

func TestUnbalancedDuplicateGoesRight(t *testing.T) {
	m := MakeMap[int, string](Unbalanced, cmp.Compare[int], nil)
	first := m.Insert(1, "a")
	second := m.Insert(1, "b")
	require.Equal(t, first, m.Root())
	require.Equal(t, second, first.Right())
	require.Nil(t, first.Left())
}

func TestSplitMerge(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		rng := rand.New(rand.NewSource(42))
		var keys []int
		for i := 0; i < 200; i++ {
			keys = append(keys, rng.Intn(100))
		}
		sorted := sortedCopy(keys)
		for _, at := range []int{-1, 0, sorted[len(sorted)/2], 37, 99, 100, 1000} {
			t.Run(fmt.Sprint(at), func(t *testing.T) {
				m := makeIntMap(s, keys...)
				left, right := m.Split(at)
				require.Nil(t, m.Root())
				require.NoError(t, left.Verify())
				require.NoError(t, right.Verify())
				for _, k := range inOrderKeys(&left) {
					require.Less(t, k, at)
				}
				for _, k := range inOrderKeys(&right) {
					require.GreaterOrEqual(t, k, at)
				}
				require.Equal(t, sort.SearchInts(sorted, at), left.Len())
				require.Equal(t, len(keys), left.Len()+right.Len())

				merged := Merge(&left, &right)
				require.Nil(t, left.Root())
				require.Nil(t, right.Root())
				require.NoError(t, merged.Verify())
				require.Equal(t, sorted, inOrderKeys(&merged))
			})
		}
	})
}

func TestSplitEmpty(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		m := makeIntMap(s)
		left, right := m.Split(3)
		require.Nil(t, left.Root())
		require.Nil(t, right.Root())
		merged := Merge(&left, &right)
		require.Nil(t, merged.Root())
	})
}

func TestMergeAVLScenario(t *testing.T) {
	left := makeIntMap(AVL, 1, 2, 3)
	right := makeIntMap(AVL, 5, 6, 7)
	merged := Merge(&left, &right)
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, inOrderKeys(&merged))
	require.NoError(t, merged.Verify())
}

func TestMergeUnevenHeights(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		for _, tc := range []struct{ nLeft, nRight int }{
			{0, 10}, {10, 0}, {1, 500}, {500, 1}, {3, 300}, {300, 3},
		} {
			left := makeIntMap(s)
			right := makeIntMap(s)
			var exp []int
			for i := 0; i < tc.nLeft; i++ {
				left.Insert(i, i)
				exp = append(exp, i)
			}
			for i := 0; i < tc.nRight; i++ {
				right.Insert(tc.nLeft+i, i)
				exp = append(exp, tc.nLeft+i)
			}
			merged := Merge(&left, &right)
			require.NoError(t, merged.Verify(), "%d/%d", tc.nLeft, tc.nRight)
			if exp == nil {
				exp = []int{}
			}
			require.Equal(t, exp, inOrderKeys(&merged))
		}
	})
}

func TestKth(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		keys := rand.New(rand.NewSource(7)).Perm(300)
		m := makeIntMap(s, keys...)
		m.Insert(150, -1)
		sorted := sortedCopy(append(keys, 150))
		for k := 1; k <= len(sorted); k++ {
			n := m.Kth(k)
			require.NotNil(t, n)
			require.Equal(t, sorted[k-1], n.Key())
		}
		require.Nil(t, m.Kth(0))
		require.Nil(t, m.Kth(-3))
		require.Nil(t, m.Kth(len(sorted)+1))
	})
}

func TestRange(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		m := makeIntMap(s, 10, 20, 30, 40, 50, 60)
		collect := func(lo, hi int) []int {
			out := []int{}
			m.Range(lo, hi, func(n *Node[int, int]) { out = append(out, n.Key()) })
			return out
		}
		assert.Equal(t, []int{20, 30, 40}, collect(15, 45))
		assert.Equal(t, []int{20, 30, 40}, collect(20, 40))
		assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, collect(0, 100))
		assert.Equal(t, []int{}, collect(61, 100))
		assert.Equal(t, []int{}, collect(0, 9))
		assert.Equal(t, []int{}, collect(41, 49))
		assert.Equal(t, []int{}, collect(40, 30))
	})
}

func TestSplayFindMovesToRoot(t *testing.T) {
	keys := rand.New(rand.NewSource(3)).Perm(100)
	m := makeIntMap(Splay, keys...)
	for _, k := range []int{0, 99, 50, 17, 17} {
		n := m.Find(k)
		require.NotNil(t, n)
		require.Equal(t, n, m.Root())
		require.Nil(t, n.Parent())
		require.NoError(t, m.Verify())
	}

	m = makeIntMap(Splay, 10, 20, 30)
	require.Nil(t, m.Find(25))
	require.Contains(t, []int{20, 30}, m.Root().Key())
	require.NoError(t, m.Verify())
}

func TestSplayInsertMovesToRoot(t *testing.T) {
	m := makeIntMap(Splay, 5, 3, 8, 1)
	n := m.Insert(4, 4)
	require.Equal(t, n, m.Root())
	require.NoError(t, m.Verify())
}

func TestRelease(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		released := map[int]int{}
		m := MakeMap[int, int](s, cmp.Compare[int], func(k, v int) {
			released[k]++
		})
		for i := 0; i < 20; i++ {
			m.Insert(i, i)
		}
		n := m.Remove(3)
		require.Empty(t, released)
		m.Free(n)
		require.Equal(t, map[int]int{3: 1}, released)
		require.True(t, m.Delete(4))
		require.Equal(t, 1, released[4])

		left, right := m.Split(10)
		merged := Merge(&left, &right)
		require.Len(t, released, 2)

		merged.Reset()
		require.Nil(t, merged.Root())
		require.Len(t, released, 20)
		for k, c := range released {
			require.Equal(t, 1, c, "key %d", k)
		}
	})
}

func TestNavigation(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		keys := rand.New(rand.NewSource(11)).Perm(64)
		m := makeIntMap(s, keys...)
		var fwd, back []int
		for n := m.First(); n != nil; n = n.Next() {
			fwd = append(fwd, n.Key())
		}
		for n := m.Last(); n != nil; n = n.Prev() {
			back = append(back, n.Key())
		}
		require.Equal(t, sortedCopy(keys), fwd)
		for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
			back[i], back[j] = back[j], back[i]
		}
		require.Equal(t, fwd, back)

		empty := makeIntMap(s)
		require.Nil(t, empty.First())
		require.Nil(t, empty.Last())
	})
}

func TestSide(t *testing.T) {
	m := makeIntMap(AVL, 2, 1, 3)
	require.Equal(t, Root, m.Root().Side())
	require.Equal(t, LeftChild, m.Root().Left().Side())
	require.Equal(t, RightChild, m.Root().Right().Side())
	var nilNode *Node[int, int]
	require.Equal(t, Detached, nilNode.Side())

	n := m.Remove(1)
	n.parent = m.Root()
	require.Equal(t, Detached, n.Side())
}

func TestParentFind(t *testing.T) {
	m := makeIntMap(Unbalanced, 10, 5, 15)
	require.Equal(t, 10, m.ParentFind(10).Key())
	require.Equal(t, 5, m.ParentFind(3).Key())
	require.Equal(t, 15, m.ParentFind(20).Key())
	require.Equal(t, 5, m.ParentFind(7).Key())
	empty := makeIntMap(Unbalanced)
	require.Nil(t, empty.ParentFind(1))
}

func TestTraverseOrders(t *testing.T) {
	m := makeIntMap(AVL, 4, 2, 6, 1, 3, 5, 7)
	collect := func(o Order) []int {
		var out []int
		Traverse(m.root, o, func(n *Node[int, int]) { out = append(out, n.Key()) })
		return out
	}
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(PreOrder))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(InOrder))
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(PostOrder))

	var sub []int
	Traverse(m.Root().Right(), InOrder, func(n *Node[int, int]) { sub = append(sub, n.Key()) })
	require.Equal(t, []int{5, 6, 7}, sub)
}

func TestDegenerateUnbalancedTree(t *testing.T) {
	const n = 5000
	released := 0
	m := MakeMap[int, int](Unbalanced, cmp.Compare[int], func(int, int) { released++ })
	for i := 0; i < n; i++ {
		m.Insert(i, i)
	}
	require.Equal(t, n, m.Height())
	require.NoError(t, m.Verify())
	require.Equal(t, n, len(inOrderKeys(&m)))
	require.Equal(t, 2500, m.Kth(2501).Key())
	m.Reset()
	require.Equal(t, n, released)
}

func TestString(t *testing.T) {
	m := MakeMap[int, string](AVL, cmp.Compare[int], nil)
	require.Equal(t, ";", m.String())
	m.Insert(2, "b")
	m.Insert(1, "a")
	m.Insert(3, "c")
	require.Equal(t, "(1:a,3:c)2:b", m.String())
	m.Insert(4, "d")
	require.Equal(t, "(1:a,(,4:d)3:c)2:b", m.String())
}

func TestVerifyDetectsCorruption(t *testing.T) {
	m := makeIntMap(AVL, 2, 1, 3)
	m.Root().Left().size = 7
	require.Equal(t, errSize, errors.Cause(m.Verify()))

	m = makeIntMap(AVL, 2, 1, 3)
	m.Root().key = 0
	require.Error(t, m.Verify())
	require.False(t, m.Validate())

	m = makeIntMap(Unbalanced, 1, 2, 3)
	m.cfg.avl = true
	m.root.height, m.root.right.height, m.root.right.right.height = 3, 2, 1
	require.Equal(t, errBalance, errors.Cause(m.Verify()))

	m = makeIntMap(Splay, 1, 2)
	m.Root().Left().parent = nil
	require.Error(t, m.Verify())
}

func TestIterator(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s Strategy) {
		m := makeIntMap(s, 10, 20, 30)
		it := m.MakeIter()
		require.False(t, it.Valid())
		it.SeekGE(15)
		require.Equal(t, 20, it.Key())
		it.SeekGE(20)
		require.Equal(t, 20, it.Key())
		it.SeekGE(31)
		require.False(t, it.Valid())
		it.SeekLT(20)
		require.Equal(t, 10, it.Key())
		it.SeekLT(100)
		require.Equal(t, 30, it.Key())
		it.SeekLT(10)
		require.False(t, it.Valid())
		it.Last()
		it.Prev()
		require.Equal(t, 20, it.Key())
		require.Equal(t, 20, it.Value())
		it.Next()
		it.Next()
		require.False(t, it.Valid())
		it.Next()
		require.False(t, it.Valid())
	})
}
