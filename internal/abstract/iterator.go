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

// Iterator is responsible for search and traversal within a Map. It moves
// along parent references and so carries no stack. Seeking never
// restructures the tree, including under the Splay strategy.
type Iterator[K, V any] struct {
	r    *Map[K, V]
	node *Node[K, V]
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Map[K, V]) MakeIter() Iterator[K, V] {
	return Iterator[K, V]{r: t}
}

// Reset invalidates the iterator.
func (i *Iterator[K, V]) Reset() {
	i.node = nil
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V]) SeekGE(key K) {
	i.node, _ = i.r.cfg.lowerBound(i.r.root, key)
}

// SeekLT seeks to the last key less-than the provided key.
func (i *Iterator[K, V]) SeekLT(key K) {
	ge, last := i.r.cfg.lowerBound(i.r.root, key)
	switch {
	case ge != nil:
		i.node = ge.Prev()
	default:
		// Every key is less than key; the descent ended at the maximum.
		i.node = last
	}
}

// Seek positions the iterator at the given node, which must belong to the
// iterator's tree.
func (i *Iterator[K, V]) Seek(n *Node[K, V]) {
	i.node = n
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V]) First() {
	i.node = i.r.root.Min()
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V]) Last() {
	i.node = i.r.root.Max()
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V]) Next() {
	if i.node == nil {
		return
	}
	i.node = i.node.Next()
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V]) Prev() {
	if i.node == nil {
		return
	}
	i.node = i.node.Prev()
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V]) Valid() bool {
	return i.node != nil
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V]) Key() K {
	return i.node.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V]) Value() V {
	return i.node.value
}

// Node returns the node at the Iterator's current position, or nil.
func (i *Iterator[K, V]) Node() *Node[K, V] {
	return i.node
}
