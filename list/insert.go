package list

import (
	"cmp"
	"log/slog"
)

// InsertBegin returns a new head holding item, linked in front of head.
func InsertBegin[T any](head *Node[T], item T) *Node[T] {
	return &Node[T]{Value: item, next: head}
}

// InsertEnd appends item after the last node. An empty chain yields a single node.
func InsertEnd[T any](head *Node[T], item T) *Node[T] {
	n := &Node[T]{Value: item}
	if head == nil {
		return n
	}
	last := head
	for last.next != nil {
		last = last.next
	}
	last.next = n
	return head
}

// InsertAt inserts item before the 0-based position index.
// An index past the end appends, same as InsertEnd. A negative index is treated as 0.
func InsertAt[T any](head *Node[T], item T, index int) *Node[T] {
	if index < 0 {
		slog.Debug("InsertAt got a negative index, inserting at the beginning", "index", index)
		index = 0
	}
	if index == 0 || head == nil {
		return InsertBegin(head, item)
	}
	prev := head
	for i := 1; i < index && prev.next != nil; i++ {
		prev = prev.next
	}
	prev.next = &Node[T]{Value: item, next: prev.next}
	return head
}

// InsertInSorted inserts item into an ascending chain before the first value greater than item,
// so equal values keep their insertion order.
func InsertInSorted[T cmp.Ordered](head *Node[T], item T) *Node[T] {
	return InsertInSortedFunc(head, item, cmp.Compare[T])
}

// InsertInSortedFunc is InsertInSorted ordered by compare, which returns a negative number
// when a < b, zero when equal and a positive number when a > b.
func InsertInSortedFunc[T any](head *Node[T], item T, compare func(a, b T) int) *Node[T] {
	if head == nil || compare(head.Value, item) > 0 {
		return InsertBegin(head, item)
	}
	prev := head
	for prev.next != nil && compare(prev.next.Value, item) <= 0 {
		prev = prev.next
	}
	prev.next = &Node[T]{Value: item, next: prev.next}
	return head
}
