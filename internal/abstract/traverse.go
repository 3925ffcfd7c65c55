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
	"fmt"
	"strings"
)

// Order is the visitation order of Traverse.
type Order int

const (
	// PreOrder visits a node before its subtrees.
	PreOrder Order = iota
	// InOrder visits a node between its left and right subtrees.
	InOrder
	// PostOrder visits a node after its subtrees.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Traverse calls fn for every node of the subtree rooted at root in the
// given order. The walk keeps its own stack, so its depth is not limited by
// the goroutine stack even for degenerate unbalanced trees. In PostOrder fn
// may unlink or recycle the node it is given.
func Traverse[K, V any](root *Node[K, V], o Order, fn func(*Node[K, V])) {
	if root == nil {
		return
	}
	var s iterStack[K, V]
	s.push(iterFrame[K, V]{Node: root})
	for s.len() > 0 {
		f := s.pop()
		n := f.Node
		switch f.pos {
		case 0:
			if o == PreOrder {
				fn(n)
			}
			s.push(iterFrame[K, V]{Node: n, pos: 1})
			if n.left != nil {
				s.push(iterFrame[K, V]{Node: n.left})
			}
		case 1:
			if o == InOrder {
				fn(n)
			}
			s.push(iterFrame[K, V]{Node: n, pos: 2})
			if n.right != nil {
				s.push(iterFrame[K, V]{Node: n.right})
			}
		default:
			if o == PostOrder {
				fn(n)
			}
		}
	}
}

// subtreeHeight computes the height of the subtree rooted at n without
// relying on cached heights.
func subtreeHeight[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	var h int
	var s iterStack[K, V]
	s.push(iterFrame[K, V]{Node: n, pos: 1})
	for s.len() > 0 {
		f := s.pop()
		h = max(h, f.pos)
		if f.left != nil {
			s.push(iterFrame[K, V]{Node: f.left, pos: f.pos + 1})
		}
		if f.right != nil {
			s.push(iterFrame[K, V]{Node: f.right, pos: f.pos + 1})
		}
	}
	return h
}

// writeString renders the subtree rooted at n in a format similar to
// https://en.wikipedia.org/wiki/Newick_format: "(left,right)key:value".
func writeString[K, V any](b *strings.Builder, n *Node[K, V]) {
	var s iterStack[K, V]
	s.push(iterFrame[K, V]{Node: n})
	for s.len() > 0 {
		f := s.pop()
		leaf := f.left == nil && f.right == nil
		switch f.pos {
		case 0:
			s.push(iterFrame[K, V]{Node: f.Node, pos: 1})
			if leaf {
				continue
			}
			b.WriteString("(")
			if f.left != nil {
				s.push(iterFrame[K, V]{Node: f.left})
			}
		case 1:
			s.push(iterFrame[K, V]{Node: f.Node, pos: 2})
			if leaf {
				continue
			}
			b.WriteString(",")
			if f.right != nil {
				s.push(iterFrame[K, V]{Node: f.right})
			}
		default:
			if !leaf {
				b.WriteString(")")
			}
			fmt.Fprintf(b, "%v:%v", f.key, f.value)
		}
	}
}
