// Package orderstat provides an ordered set which can locate the item at
// a given position, and the position of a given item, in logarithmic time.
package orderstat

import "github.com/ajwerner/bst"

// OrderStatTree is a set of items kept in a height-balanced tree.
type OrderStatTree[T Item[T]] struct {
	t *bst.Tree[T, struct{}]
}

func MakeOrderStatTree[T Item[T]]() *OrderStatTree[T] {
	return &OrderStatTree[T]{
		t: bst.New[T, struct{}](bst.AVL, compare[T], nil),
	}
}

// Set adds v to the set. It returns false, leaving the set unchanged, if an
// equal item is already present.
func (t *OrderStatTree[T]) Set(v T) (inserted bool) {
	if t.t.Find(v) != nil {
		return false
	}
	t.t.Insert(v, struct{}{})
	return true
}

func (t *OrderStatTree[T]) Remove(v T) (removed bool) {
	return t.t.Delete(v)
}

// Len returns the number of items in the set.
func (t *OrderStatTree[T]) Len() int { return t.t.Len() }

// Rank returns the number of items less than v.
func (t *OrderStatTree[T]) Rank(v T) int { return t.t.Rank(v) }

type OrderStatIterator[T Item[T]] struct {
	it bst.Iterator[T, struct{}]
	t  *bst.Tree[T, struct{}]
}

func (t *OrderStatTree[T]) MakeIter() OrderStatIterator[T] {
	return OrderStatIterator[T]{
		it: t.t.MakeIter(),
		t:  t.t,
	}
}

// Nth positions the iterator at the item with i items before it. The
// iterator is invalid if i is out of range.
func (it *OrderStatIterator[T]) Nth(i int) {
	it.it.Seek(it.t.Kth(i + 1))
}

func (it *OrderStatIterator[T]) First()      { it.it.First() }
func (it *OrderStatIterator[T]) Last()       { it.it.Last() }
func (it *OrderStatIterator[T]) Next()       { it.it.Next() }
func (it *OrderStatIterator[T]) Valid() bool { return it.it.Valid() }
func (it *OrderStatIterator[T]) Cur() T      { return it.it.Key() }
