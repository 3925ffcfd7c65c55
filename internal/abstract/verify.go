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

import "github.com/pkg/errors"

// Validate reports whether an in-order walk yields non-decreasing keys.
func (t *Map[K, V]) Validate() bool {
	var prev *Node[K, V]
	ok := true
	Traverse(t.root, InOrder, func(n *Node[K, V]) {
		if prev != nil && t.cfg.cmp(prev.key, n.key) > 0 {
			ok = false
		}
		prev = n
	})
	return ok
}

// Verify checks every structural invariant of the tree: key order, parent
// links, subtree sizes and, under the AVL strategy, cached heights and
// balance. It returns an error describing the first violation found.
func (t *Map[K, V]) Verify() error {
	if t.root != nil && t.root.parent != nil {
		return errors.Errorf("root %v has parent %v", t.root.key, t.root.parent.key)
	}
	var prev *Node[K, V]
	var err error
	Traverse(t.root, PostOrder, func(n *Node[K, V]) {
		if err == nil {
			err = t.verifyNode(n)
		}
	})
	if err != nil {
		return err
	}
	Traverse(t.root, InOrder, func(n *Node[K, V]) {
		if err == nil && prev != nil && t.cfg.cmp(prev.key, n.key) > 0 {
			err = errors.Errorf("key %v orders after its successor %v", prev.key, n.key)
		}
		prev = n
	})
	return err
}

func (t *Map[K, V]) verifyNode(n *Node[K, V]) error {
	for _, child := range [2]*Node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return errors.Errorf("child %v of %v does not point back to it", child.key, n.key)
		}
	}
	if exp := 1 + size(n.left) + size(n.right); n.size != exp {
		return errors.Wrapf(errSize, "node %v: have %d, expected %d", n.key, n.size, exp)
	}
	if !t.cfg.avl {
		return nil
	}
	lh, rh := height(n.left), height(n.right)
	if exp := 1 + max(lh, rh); n.height != exp {
		return errors.Wrapf(errHeight, "node %v: have %d, expected %d", n.key, n.height, exp)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return errors.Wrapf(errBalance, "node %v: left %d, right %d", n.key, lh, rh)
	}
	return nil
}

var (
	errSize    = errors.New("subtree size mismatch")
	errHeight  = errors.New("cached height mismatch")
	errBalance = errors.New("height imbalance")
)
