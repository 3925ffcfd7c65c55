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

// unbalanced inserts and removes nodes while preserving the binary search
// tree ordering but without applying any balancing. The other strategies
// are built on its structural primitives.
type unbalanced[K, V any] struct{}

func (unbalanced[K, V]) find(c *config[K, V], root **Node[K, V], key K) *Node[K, V] {
	return c.find(*root, key)
}

func (unbalanced[K, V]) insert(c *config[K, V], root **Node[K, V], n *Node[K, V]) {
	c.insertLeaf(root, n)
}

func (unbalanced[K, V]) remove(c *config[K, V], root **Node[K, V], key K) *Node[K, V] {
	n := c.find(*root, key)
	if n == nil {
		return nil
	}
	c.removeNode(root, n)
	return n
}

func (unbalanced[K, V]) split(c *config[K, V], root *Node[K, V], key K) (left, right *Node[K, V]) {
	return c.splitWith(root, key, c.join)
}

func (unbalanced[K, V]) merge(c *config[K, V], left, right *Node[K, V]) *Node[K, V] {
	last := left.Max()
	if last == nil {
		return right
	}
	c.removeNode(&left, last)
	return c.join(left, last, right)
}

// insertLeaf attaches n as a new leaf. Keys equal to a node's key continue
// into its right subtree so that n ends up after every equal key already
// present.
func (c *config[K, V]) insertLeaf(root **Node[K, V], n *Node[K, V]) {
	var parent *Node[K, V]
	var left bool
	for cur := *root; cur != nil; {
		parent = cur
		if left = c.cmp(n.key, cur.key) < 0; left {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	n.parent = parent
	switch {
	case parent == nil:
		*root = n
	case left:
		parent.left = n
	default:
		parent.right = n
	}
	c.updatePath(n)
}

// removeNode unlinks n from the tree rooted at *root and returns the lowest
// node whose subtree changed shape, from which the caller may rebalance. The
// returned node is nil when n was the root and had no right child.
//
// When n has no right child its left subtree takes its place. Otherwise its
// in-order successor s takes its place:
//
//	    n              s
//	   / \            / \
//	  a   r    =>    a   r
//	     /              /
//	   ...            ...
//	   /              /
//	  s              x
//	   \
//	    x
func (c *config[K, V]) removeNode(root **Node[K, V], n *Node[K, V]) (start *Node[K, V]) {
	if n.right == nil {
		start = n.parent
		replace(root, n, n.left)
	} else {
		next := n.right.Min()
		start = next
		if next != n.right {
			start = next.parent
			next.parent.left = next.right
			if next.right != nil {
				next.right.parent = next.parent
			}
			next.right = n.right
			n.right.parent = next
		}
		replace(root, n, next)
		next.left = n.left
		if n.left != nil {
			n.left.parent = next
		}
	}
	c.updatePath(start)
	n.detach()
	return start
}

// join makes mid the root of a tree with left and right as its subtrees.
// Every key of left must order before mid and every key of right after it.
func (c *config[K, V]) join(left, mid, right *Node[K, V]) *Node[K, V] {
	mid.parent = nil
	mid.left = left
	mid.right = right
	if left != nil {
		left.parent = mid
	}
	if right != nil {
		right.parent = mid
	}
	c.refresh(mid)
	return mid
}

// splitWith partitions the detached tree rooted at n into the nodes with
// keys less than key and the rest. Each level is reassembled with join, so
// the recursion depth equals the height of the tree.
func (c *config[K, V]) splitWith(
	n *Node[K, V], key K, join func(left, mid, right *Node[K, V]) *Node[K, V],
) (left, right *Node[K, V]) {
	if n == nil {
		return nil, nil
	}
	l, r := n.left, n.right
	if l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}
	n.detach()
	if c.cmp(n.key, key) < 0 {
		rl, rr := c.splitWith(r, key, join)
		return join(l, n, rl), rr
	}
	ll, lr := c.splitWith(l, key, join)
	return ll, join(lr, n, r)
}
