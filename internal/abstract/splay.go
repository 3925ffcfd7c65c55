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

// splay moves every node it touches to the root. There is no balance
// invariant; the cost of a sequence of operations is amortized
// O(log n) each.
type splay[K, V any] struct{}

// find splays the last node visited by the search, hit or miss, and
// reports it only if its key matches.
func (splay[K, V]) find(c *config[K, V], root **Node[K, V], key K) *Node[K, V] {
	n := c.parentFind(*root, key)
	if n == nil {
		return nil
	}
	c.splay(root, n)
	if c.cmp(key, n.key) != 0 {
		return nil
	}
	return n
}

func (splay[K, V]) insert(c *config[K, V], root **Node[K, V], n *Node[K, V]) {
	c.insertLeaf(root, n)
	c.splay(root, n)
}

func (s splay[K, V]) remove(c *config[K, V], root **Node[K, V], key K) *Node[K, V] {
	n := s.find(c, root, key)
	if n == nil {
		return nil
	}
	left, right := n.left, n.right
	n.detach()
	if right != nil {
		right.parent = nil
	}
	if left == nil {
		*root = right
		return n
	}
	left.parent = nil
	last := left.Max()
	c.splay(&left, last)
	last.right = right
	if right != nil {
		right.parent = last
	}
	c.refresh(last)
	*root = last
	return n
}

// split splays the node bordering the boundary to the root and cuts the
// one edge crossing it.
func (splay[K, V]) split(c *config[K, V], root *Node[K, V], key K) (left, right *Node[K, V]) {
	_, n := c.lowerBound(root, key)
	if n == nil {
		return nil, nil
	}
	c.splay(&root, n)
	if c.cmp(n.key, key) < 0 {
		right = n.right
		n.right = nil
		if right != nil {
			right.parent = nil
		}
		c.refresh(n)
		return n, right
	}
	left = n.left
	n.left = nil
	if left != nil {
		left.parent = nil
	}
	c.refresh(n)
	return left, n
}

func (splay[K, V]) merge(c *config[K, V], left, right *Node[K, V]) *Node[K, V] {
	last := left.Max()
	if last == nil {
		return right
	}
	c.splay(&left, last)
	last.right = right
	if right != nil {
		right.parent = last
	}
	c.refresh(last)
	return last
}

// rotateUp lifts n above its parent.
func (c *config[K, V]) rotateUp(root **Node[K, V], n *Node[K, V]) {
	if n.Side() == LeftChild {
		c.rotateRight(root, n.parent)
	} else {
		c.rotateLeft(root, n.parent)
	}
}

// splay moves n to the top of the tree held in *root.
func (c *config[K, V]) splay(root **Node[K, V], n *Node[K, V]) {
	for n.parent != nil {
		p := n.parent
		switch {
		case p.parent == nil:
			// zig
			c.rotateUp(root, n)
		case n.Side() == p.Side():
			// zig-zig
			c.rotateUp(root, p)
			c.rotateUp(root, n)
		default:
			// zig-zag
			c.rotateUp(root, n)
			c.rotateUp(root, n)
		}
	}
}
