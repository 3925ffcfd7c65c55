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

// iterStack represents a stack of (node, pos) tuples, which captures
// the state of a depth-first walk without recursing.
type iterStack[K, V any] struct {
	a    iterStackArr[K, V]
	aLen int16 // -1 when using s
	s    []iterFrame[K, V]
}

const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[K, V any] [iterStackDepth]iterFrame[K, V]

// iterFrame is a node together with the phase of its visit, or with its
// depth when computing heights.
type iterFrame[K, V any] struct {
	*Node[K, V]
	pos int
}

func (is *iterStack[K, V]) push(f iterFrame[K, V]) {
	if is.aLen == -1 {
		is.s = append(is.s, f)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]iterFrame[K, V], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = f
		is.aLen = -1
	} else {
		is.a[is.aLen] = f
		is.aLen++
	}
}

func (is *iterStack[K, V]) pop() iterFrame[K, V] {
	if is.aLen == -1 {
		f := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return f
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[K, V]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}
