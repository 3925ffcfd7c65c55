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

// Package bst implements an ordered binary search tree with a choice of
// balancing strategy: none, height balancing (AVL) or self-adjustment
// (splay). Every node is augmented with the size of its subtree, which
// makes order statistics available in time proportional to the height.
//
// Keys are ordered by a caller-supplied comparison function. Equal keys
// are permitted; a newly inserted key orders after every equal key already
// in the tree.
//
// A Tree is not safe for concurrent use.
package bst

import "github.com/ajwerner/bst/internal/abstract"

// Strategy selects the balancing discipline of a Tree.
type Strategy = abstract.Strategy

const (
	Unbalanced = abstract.Unbalanced
	AVL        = abstract.AVL
	Splay      = abstract.Splay
)

// Order is the visitation order of Traverse.
type Order = abstract.Order

const (
	PreOrder  = abstract.PreOrder
	InOrder   = abstract.InOrder
	PostOrder = abstract.PostOrder
)

// Side classifies a node relative to its parent.
type Side = abstract.Side

const (
	Detached   = abstract.Detached
	Root       = abstract.Root
	LeftChild  = abstract.LeftChild
	RightChild = abstract.RightChild
)

// Node is an entry of a Tree. Nodes are only valid while they belong to a
// tree or, after Remove, until they are passed to Free.
type Node[K, V any] = abstract.Node[K, V]

// Tree is a binary search tree mapping keys of type K to payloads of type V.
type Tree[K, V any] struct {
	t abstract.Map[K, V]
}

// New constructs an empty tree. The comparison function must define a strict
// total order and may not change over the life of the tree. The release
// callback may be nil; otherwise it is called once for every payload
// destroyed by Free, Delete or Reset.
func New[K, V any](s Strategy, cmp func(K, K) int, release func(K, V)) *Tree[K, V] {
	return &Tree[K, V]{t: abstract.MakeMap[K, V](s, cmp, release)}
}

// Strategy returns the tree's balancing strategy.
func (t *Tree[K, V]) Strategy() Strategy { return t.t.Config().Strategy() }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.t.Root() }

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int { return t.t.Len() }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int { return t.t.Height() }

// Insert adds v under k and returns its node.
func (t *Tree[K, V]) Insert(k K, v V) *Node[K, V] { return t.t.Insert(k, v) }

// Remove unlinks an entry with key k and returns it, or nil if there is none.
// The payload is released only when the node is passed to Free.
func (t *Tree[K, V]) Remove(k K) *Node[K, V] { return t.t.Remove(k) }

// Free releases the payload of a removed node and recycles it.
func (t *Tree[K, V]) Free(n *Node[K, V]) { t.t.Free(n) }

// Delete removes and frees an entry with key k, reporting whether one existed.
func (t *Tree[K, V]) Delete(k K) bool { return t.t.Delete(k) }

// Find returns a node with key k, or nil. Under the Splay strategy the
// search moves the last node it visits to the root.
func (t *Tree[K, V]) Find(k K) *Node[K, V] { return t.t.Find(k) }

// ParentFind returns the node with key k or, failing that, the node at which
// the search for k ended.
func (t *Tree[K, V]) ParentFind(k K) *Node[K, V] { return t.t.ParentFind(k) }

// First returns the node with the smallest key.
func (t *Tree[K, V]) First() *Node[K, V] { return t.t.First() }

// Last returns the node with the largest key.
func (t *Tree[K, V]) Last() *Node[K, V] { return t.t.Last() }

// Next returns the in-order successor of n.
func (t *Tree[K, V]) Next(n *Node[K, V]) *Node[K, V] { return n.Next() }

// Prev returns the in-order predecessor of n.
func (t *Tree[K, V]) Prev(n *Node[K, V]) *Node[K, V] { return n.Prev() }

// Kth returns the node with the k-th smallest key, counting from 1.
func (t *Tree[K, V]) Kth(k int) *Node[K, V] { return t.t.Kth(k) }

// Rank returns the number of entries with keys less than k.
func (t *Tree[K, V]) Rank(k K) int { return t.t.Rank(k) }

// Range calls fn in key order for every entry with low <= key <= high.
func (t *Tree[K, V]) Range(low, high K, fn func(K, V)) {
	t.t.Range(low, high, func(n *Node[K, V]) { fn(n.Key(), n.Value()) })
}

// Traverse calls fn for each entry of the subtree rooted at root in the
// given order.
func Traverse[K, V any](root *Node[K, V], o Order, fn func(K, V)) {
	abstract.Traverse(root, o, func(n *Node[K, V]) { fn(n.Key(), n.Value()) })
}

// Split partitions t into a tree holding the keys less than k and a tree
// holding the rest. Nodes are moved, not copied; t is left empty.
func (t *Tree[K, V]) Split(k K) (left, right *Tree[K, V]) {
	l, r := t.t.Split(k)
	return &Tree[K, V]{t: l}, &Tree[K, V]{t: r}
}

// Merge joins two trees where every key of left orders before every key of
// right. The result uses left's configuration; both inputs are left empty.
// Overlapping inputs produce an invalid tree.
func Merge[K, V any](left, right *Tree[K, V]) *Tree[K, V] {
	return &Tree[K, V]{t: abstract.Merge(&left.t, &right.t)}
}

// Reset removes every entry, releasing each payload.
func (t *Tree[K, V]) Reset() { t.t.Reset() }

// Validate reports whether the keys are in order.
func (t *Tree[K, V]) Validate() bool { return t.t.Validate() }

// Verify checks all structural invariants of the tree.
func (t *Tree[K, V]) Verify() error { return t.t.Verify() }

// String returns a parenthesized description of the tree's shape.
func (t *Tree[K, V]) String() string { return t.t.String() }

// Iterator walks a Tree in key order.
type Iterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

// MakeIter returns an unpositioned iterator over t. It must not be used
// after t is modified.
func (t *Tree[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{t.t.MakeIter()}
}

// Seek positions the iterator at n, which must be a node of the tree or nil.
func (it *Iterator[K, V]) Seek(n *Node[K, V]) { it.it.Seek(n) }

func (it *Iterator[K, V]) First()            { it.it.First() }
func (it *Iterator[K, V]) Last()             { it.it.Last() }
func (it *Iterator[K, V]) Next()             { it.it.Next() }
func (it *Iterator[K, V]) Prev()             { it.it.Prev() }
func (it *Iterator[K, V]) SeekGE(k K)        { it.it.SeekGE(k) }
func (it *Iterator[K, V]) SeekLT(k K)        { it.it.SeekLT(k) }
func (it *Iterator[K, V]) Valid() bool       { return it.it.Valid() }
func (it *Iterator[K, V]) Key() K            { return it.it.Key() }
func (it *Iterator[K, V]) Value() V          { return it.it.Value() }
func (it *Iterator[K, V]) Node() *Node[K, V] { return it.it.Node() }
