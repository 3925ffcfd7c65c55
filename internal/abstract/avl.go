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

// avl keeps, for every node, the heights of its two subtrees within one of
// each other. Structural changes are delegated to the unbalanced primitives
// and followed by a rebalance from the lowest changed node.
type avl[K, V any] struct{}

func (avl[K, V]) find(c *config[K, V], root **Node[K, V], key K) *Node[K, V] {
	return c.find(*root, key)
}

func (avl[K, V]) insert(c *config[K, V], root **Node[K, V], n *Node[K, V]) {
	c.insertLeaf(root, n)
	c.rebalance(root, n)
}

func (avl[K, V]) remove(c *config[K, V], root **Node[K, V], key K) *Node[K, V] {
	n := c.find(*root, key)
	if n == nil {
		return nil
	}
	c.rebalance(root, c.removeNode(root, n))
	return n
}

func (avl[K, V]) split(c *config[K, V], root *Node[K, V], key K) (left, right *Node[K, V]) {
	return c.splitWith(root, key, c.joinAVL)
}

func (avl[K, V]) merge(c *config[K, V], left, right *Node[K, V]) *Node[K, V] {
	last := left.Max()
	if last == nil {
		return right
	}
	c.rebalance(&left, c.removeNode(&left, last))
	return c.joinAVL(left, last, right)
}

// rebalance walks from n to the root restoring the height invariant at
// every node on the way. A single insertion or removal may need a rotation
// at every level.
func (c *config[K, V]) rebalance(root **Node[K, V], n *Node[K, V]) {
	for n != nil {
		c.refresh(n)
		n = c.balance(root, n).parent
	}
}

// balance restores the height invariant at n, assuming both of its subtrees
// satisfy it and their heights differ by at most two, and returns the node
// now at n's position.
func (c *config[K, V]) balance(root **Node[K, V], n *Node[K, V]) *Node[K, V] {
	switch diff := height(n.left) - height(n.right); {
	case diff > 1:
		if l := n.left; height(l.right) > height(l.left) {
			c.rotateLeft(root, l)
		}
		return c.rotateRight(root, n)
	case diff < -1:
		if r := n.right; height(r.left) > height(r.right) {
			c.rotateRight(root, r)
		}
		return c.rotateLeft(root, n)
	default:
		return n
	}
}

// joinAVL is join for height-balanced trees. When the heights of left and
// right are too far apart it descends along the inner spine of the taller
// one until it finds a subtree of matching height, joins there and
// rebalances on the way back up. The cost is proportional to the height
// difference.
func (c *config[K, V]) joinAVL(left, mid, right *Node[K, V]) *Node[K, V] {
	lh, rh := height(left), height(right)
	switch {
	case lh > rh+1:
		sub := left.right
		left.right = nil
		if sub != nil {
			sub.parent = nil
		}
		t := c.joinAVL(sub, mid, right)
		left.right = t
		t.parent = left
		c.refresh(left)
		return c.balance(&left, left)
	case rh > lh+1:
		sub := right.left
		right.left = nil
		if sub != nil {
			sub.parent = nil
		}
		t := c.joinAVL(left, mid, sub)
		right.left = t
		t.parent = right
		c.refresh(right)
		return c.balance(&right, right)
	default:
		return c.join(left, mid, right)
	}
}
