package orderstat

// Item is an element of an OrderStatTree. Two items are considered equal if
// neither is less than the other.
type Item[T any] interface {
	Less(T) bool
}

func compare[T Item[T]](a, b T) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
