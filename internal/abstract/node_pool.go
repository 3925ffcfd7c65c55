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

import "sync"

type nodePool[K, V any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

// getNodePool returns the pool shared by every tree instantiated with the
// same key and value types.
func getNodePool[K, V any]() *nodePool[K, V] {
	var nilNode *Node[K, V]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[K, V]())
	}
	return v.(*nodePool[K, V])
}

func newNodePool[K, V any]() *nodePool[K, V] {
	np := nodePool[K, V]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(Node[K, V])
		},
	}
	return &np
}

// get returns a detached leaf holding the given key and value.
func (np *nodePool[K, V]) get(k K, v V) *Node[K, V] {
	n := np.pool.Get().(*Node[K, V])
	n.key = k
	n.value = v
	n.size = 1
	n.height = 1
	return n
}

// put clears n and makes it available for reuse. The caller must not hold
// any other reference to n.
func (np *nodePool[K, V]) put(n *Node[K, V]) {
	*n = Node[K, V]{}
	np.pool.Put(n)
}
