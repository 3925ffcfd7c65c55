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

import "fmt"

// Strategy selects the balancing discipline of a Map.
type Strategy int

const (
	// Unbalanced performs plain binary search tree insertion and removal.
	Unbalanced Strategy = iota
	// AVL keeps the heights of sibling subtrees within one of each other.
	AVL
	// Splay moves every accessed node to the root.
	Splay
)

func (s Strategy) String() string {
	switch s {
	case Unbalanced:
		return "unbalanced"
	case AVL:
		return "avl"
	case Splay:
		return "splay"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Config is used to configure the tree. It consists of a comparison function
// for keys, an optional release callback for payloads and the balancing
// strategy. It is shared by every Map produced from the same tree by Split.
type Config[K, V any] struct {
	strategy Strategy
	cmp      func(K, K) int
	release  func(K, V)
}

// Compare compares two keys using the same comparison function as the Map.
func (c *Config[K, V]) Compare(a, b K) int { return c.cmp(a, b) }

// Strategy returns the configured balancing strategy.
func (c *Config[K, V]) Strategy() Strategy { return c.strategy }

type config[K, V any] struct {
	Config[K, V]
	np  *nodePool[K, V]
	ops strategy[K, V]
	avl bool // maintain node heights
}

func makeConfig[K, V any](
	s Strategy, cmp func(K, K) int, release func(K, V),
) *config[K, V] {
	c := &config[K, V]{}
	c.strategy = s
	c.cmp = cmp
	c.release = release
	c.np = getNodePool[K, V]()
	switch s {
	case AVL:
		c.ops = avl[K, V]{}
		c.avl = true
	case Splay:
		c.ops = splay[K, V]{}
	default:
		c.ops = unbalanced[K, V]{}
	}
	return c
}

// strategy is the capability set every balancing discipline provides. The
// root argument is the slot holding the top of the tree being restructured;
// it is updated whenever that top changes.
type strategy[K, V any] interface {
	find(c *config[K, V], root **Node[K, V], key K) *Node[K, V]
	insert(c *config[K, V], root **Node[K, V], n *Node[K, V])
	remove(c *config[K, V], root **Node[K, V], key K) *Node[K, V]
	split(c *config[K, V], root *Node[K, V], key K) (left, right *Node[K, V])
	merge(c *config[K, V], left, right *Node[K, V]) *Node[K, V]
}
