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

// Node is a single entry of a tree. A node owns its children; the parent
// reference is only used for navigation and restructuring.
type Node[K, V any] struct {
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	key    K
	value  V

	// size is the number of nodes in the subtree rooted here, this node
	// included.
	size int

	// height is 1 + the height of the taller child. It is only maintained
	// by the AVL strategy.
	height int
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the node's payload.
func (n *Node[K, V]) Value() V { return n.value }

// SetValue replaces the node's payload without touching the release
// callback.
func (n *Node[K, V]) SetValue(v V) { n.value = v }

// Parent returns the node's parent or nil if it is a root.
func (n *Node[K, V]) Parent() *Node[K, V] { return n.parent }

// Left returns the node's left child.
func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

// Right returns the node's right child.
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[K, V]) Size() int { return size(n) }

// Side classifies a node relative to its parent.
type Side int

const (
	// Detached is reported for a nil node or for a node whose parent does
	// not reference it.
	Detached Side = iota
	// Root is a node without a parent.
	Root
	// LeftChild is the left child of its parent.
	LeftChild
	// RightChild is the right child of its parent.
	RightChild
)

func (s Side) String() string {
	switch s {
	case Root:
		return "root"
	case LeftChild:
		return "left"
	case RightChild:
		return "right"
	default:
		return "detached"
	}
}

// Side reports where n hangs from its parent.
func (n *Node[K, V]) Side() Side {
	if n == nil {
		return Detached
	}
	p := n.parent
	switch {
	case p == nil:
		return Root
	case p.left == n:
		return LeftChild
	case p.right == n:
		return RightChild
	default:
		return Detached
	}
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[K, V]) Min() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[K, V]) Max() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns the in-order successor of n, or nil if n is the last node.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n.right != nil {
		return n.right.Min()
	}
	for n.Side() == RightChild {
		n = n.parent
	}
	if n.Side() == LeftChild {
		return n.parent
	}
	return nil
}

// Prev returns the in-order predecessor of n, or nil if n is the first node.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n.left != nil {
		return n.left.Max()
	}
	for n.Side() == LeftChild {
		n = n.parent
	}
	if n.Side() == RightChild {
		return n.parent
	}
	return nil
}

func size[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// detach clears every link of n.
func (n *Node[K, V]) detach() {
	n.parent, n.left, n.right = nil, nil, nil
	n.size, n.height = 1, 1
}

// refresh recomputes the augmentation of n from its children.
func (c *config[K, V]) refresh(n *Node[K, V]) {
	n.size = 1 + size(n.left) + size(n.right)
	if c.avl {
		n.height = 1 + max(height(n.left), height(n.right))
	}
}

// updatePath refreshes n and every one of its ancestors.
func (c *config[K, V]) updatePath(n *Node[K, V]) {
	for ; n != nil; n = n.parent {
		c.refresh(n)
	}
}

// replace puts with in the position old occupies below its parent, or in
// *root if old has no parent. The links of old are left untouched.
func replace[K, V any](root **Node[K, V], old, with *Node[K, V]) {
	p := old.parent
	switch old.Side() {
	case LeftChild:
		p.left = with
	case RightChild:
		p.right = with
	default:
		*root = with
	}
	if with != nil {
		with.parent = p
	}
}

// rotateLeft lifts the right child of n into its place and returns it.
//
// Before:
//
//	    n
//	   / \
//	  a   r
//	     / \
//	    b   c
//
// After:
//
//	      r
//	     / \
//	    n   c
//	   / \
//	  a   b
func (c *config[K, V]) rotateLeft(root **Node[K, V], n *Node[K, V]) *Node[K, V] {
	r := n.right
	replace(root, n, r)
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	n.parent = r
	c.refresh(n)
	c.refresh(r)
	return r
}

// rotateRight lifts the left child of n into its place and returns it.
func (c *config[K, V]) rotateRight(root **Node[K, V], n *Node[K, V]) *Node[K, V] {
	l := n.left
	replace(root, n, l)
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	n.parent = l
	c.refresh(n)
	c.refresh(l)
	return l
}

// find descends from n and returns the first node whose key equals key.
func (c *config[K, V]) find(n *Node[K, V], key K) *Node[K, V] {
	for n != nil {
		switch cmp := c.cmp(key, n.key); {
		case cmp == 0:
			return n
		case cmp < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// parentFind descends like find but returns the last node visited when
// there is no exact match.
func (c *config[K, V]) parentFind(n *Node[K, V], key K) *Node[K, V] {
	var last *Node[K, V]
	for n != nil {
		last = n
		switch cmp := c.cmp(key, n.key); {
		case cmp == 0:
			return n
		case cmp < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return last
}

// lowerBound returns the first node in order whose key is not less than
// key, and the last node visited on the way down. The latter is adjacent in
// order to the boundary.
func (c *config[K, V]) lowerBound(n *Node[K, V], key K) (ge, last *Node[K, V]) {
	for n != nil {
		last = n
		if c.cmp(n.key, key) >= 0 {
			ge = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return ge, last
}

// kth returns the k-th smallest node (1-based) of the subtree rooted at n.
func kth[K, V any](n *Node[K, V], k int) *Node[K, V] {
	if k < 1 || k > size(n) {
		return nil
	}
	for n != nil {
		ls := size(n.left)
		switch {
		case k <= ls:
			n = n.left
		case k == ls+1:
			return n
		default:
			k -= ls + 1
			n = n.right
		}
	}
	return nil
}

// rank returns the number of keys in the subtree rooted at n which are
// strictly less than key.
func (c *config[K, V]) rank(n *Node[K, V], key K) int {
	var r int
	for n != nil {
		if c.cmp(n.key, key) < 0 {
			r += size(n.left) + 1
			n = n.right
		} else {
			n = n.left
		}
	}
	return r
}
