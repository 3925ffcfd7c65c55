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

package bst_test

import (
	"fmt"
	"strings"

	"github.com/ajwerner/bst"
)

func ExampleTree() {
	t := bst.New[string, int](bst.AVL, strings.Compare, nil)
	t.Insert("foo", 1)
	t.Insert("bar", 2)
	t.Insert("baz", 3)
	fmt.Println(t.Find("foo").Value())
	fmt.Println(t.Find("qux") == nil)
	fmt.Println(t.Kth(2).Key())
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// 1
	// true
	// baz
	// bar 2
	// baz 3
	// foo 1
}

func ExampleTree_Split() {
	t := bst.New[int, struct{}](bst.Splay, func(a, b int) int { return a - b }, nil)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		t.Insert(k, struct{}{})
	}
	left, right := t.Split(5)
	show := func(t *bst.Tree[int, struct{}]) {
		var keys []int
		bst.Traverse(t.Root(), bst.InOrder, func(k int, _ struct{}) { keys = append(keys, k) })
		fmt.Println(keys)
	}
	show(left)
	show(right)
	show(bst.Merge(left, right))

	// Output:
	// [1 3 4]
	// [5 7 8 9]
	// [1 3 4 5 7 8 9]
}
