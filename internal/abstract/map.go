// Copyright 2018 The Cockroach Authors.
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

import "strings"

// Map is an ordered multimap implemented as a binary search tree augmented
// with subtree sizes. The balancing strategy is chosen at construction.
//
// A Map is not safe for concurrent use. Under the Splay strategy even
// lookups restructure the tree, so all operations must be serialized.
type Map[K, V any] struct {
	root *Node[K, V]
	cfg  *config[K, V]
}

// MakeMap constructs a new Map with the given balancing strategy, key
// comparison function and optional release callback. The release callback,
// if non-nil, is invoked exactly once for each payload whose node is
// destroyed by Free, Delete or Reset. It is never invoked by Split or Merge.
func MakeMap[K, V any](s Strategy, cmp func(K, K) int, release func(K, V)) Map[K, V] {
	return Map[K, V]{cfg: makeConfig(s, cmp, release)}
}

// Config returns the Map's config.
func (t *Map[K, V]) Config() *Config[K, V] {
	return &t.cfg.Config
}

// Root returns the root node of the tree, or nil if it is empty.
func (t *Map[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of entries currently in the tree.
func (t *Map[K, V]) Len() int {
	return size(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Map[K, V]) Height() int {
	if t.cfg.avl {
		return height(t.root)
	}
	return subtreeHeight(t.root)
}

// Insert adds an entry and returns its node. Entries with keys equal to
// existing ones are kept; the new entry orders after them.
func (t *Map[K, V]) Insert(k K, v V) *Node[K, V] {
	n := t.cfg.np.get(k, v)
	t.cfg.ops.insert(t.cfg, &t.root, n)
	return n
}

// Remove unlinks the first entry found with a key equal to k and returns
// its node, or nil if there is none. The payload is not released; pass the
// node to Free once it is no longer needed.
func (t *Map[K, V]) Remove(k K) *Node[K, V] {
	return t.cfg.ops.remove(t.cfg, &t.root, k)
}

// Delete removes an entry equal to k and frees it. It returns whether an
// entry was found.
func (t *Map[K, V]) Delete(k K) (found bool) {
	n := t.Remove(k)
	if n == nil {
		return false
	}
	t.Free(n)
	return true
}

// Free releases the payload of a node returned by Remove and recycles the
// node. It is illegal to use n afterwards.
func (t *Map[K, V]) Free(n *Node[K, V]) {
	if n == nil {
		return
	}
	if t.cfg.release != nil {
		t.cfg.release(n.key, n.value)
	}
	t.cfg.np.put(n)
}

// Reset removes all entries from the tree, releasing every payload. Nodes
// are destroyed children first.
func (t *Map[K, V]) Reset() {
	Traverse(t.root, PostOrder, t.Free)
	t.root = nil
}

// Find returns a node with a key equal to k, or nil. Under the Splay
// strategy the last node visited is moved to the root, hit or miss.
func (t *Map[K, V]) Find(k K) *Node[K, V] {
	return t.cfg.ops.find(t.cfg, &t.root, k)
}

// ParentFind returns the node with a key equal to k if there is one,
// otherwise the last node visited searching for k, which is where k would
// be attached. It does not restructure the tree.
func (t *Map[K, V]) ParentFind(k K) *Node[K, V] {
	return t.cfg.parentFind(t.root, k)
}

// First returns the node with the smallest key.
func (t *Map[K, V]) First() *Node[K, V] { return t.root.Min() }

// Last returns the node with the largest key.
func (t *Map[K, V]) Last() *Node[K, V] { return t.root.Max() }

// Kth returns the node holding the k-th smallest key, counting from 1, or
// nil if k is outside [1, Len()].
func (t *Map[K, V]) Kth(k int) *Node[K, V] {
	return kth(t.root, k)
}

// Rank returns the number of entries with keys strictly less than k.
func (t *Map[K, V]) Rank(k K) int {
	return t.cfg.rank(t.root, k)
}

// Range calls fn, in key order, for every entry with low <= key <= high.
func (t *Map[K, V]) Range(low, high K, fn func(*Node[K, V])) {
	n, _ := t.cfg.lowerBound(t.root, low)
	for ; n != nil && t.cfg.cmp(n.key, high) <= 0; n = n.Next() {
		fn(n)
	}
}

// Split moves the entries with keys less than k into left and the rest into
// right. Both share t's configuration; t is left empty.
//
// Under the Unbalanced strategy the split recurses once per level of the
// tree, which for adversarial insertion orders is once per entry.
func (t *Map[K, V]) Split(k K) (left, right Map[K, V]) {
	l, r := t.cfg.ops.split(t.cfg, t.root, k)
	t.root = nil
	return Map[K, V]{root: l, cfg: t.cfg}, Map[K, V]{root: r, cfg: t.cfg}
}

// Merge combines left and right into one tree using left's configuration.
// Every key in left must order before every key in right; this is not
// checked. Both inputs are left empty.
func Merge[K, V any](left, right *Map[K, V]) Map[K, V] {
	root := left.cfg.ops.merge(left.cfg, left.root, right.root)
	left.root, right.root = nil, nil
	return Map[K, V]{root: root, cfg: left.cfg}
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	writeString(&b, t.root)
	return b.String()
}
