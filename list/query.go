package list

import (
	"log/slog"

	sll "github.com/LohitKamble-ECE/Singly-Linked-List"
)

// Begin returns the nth node from the start (0-based), or nil when n is out of range.
func Begin[T any](head *Node[T], n int) *Node[T] {
	if n < 0 {
		slog.Debug("Begin got a negative position", "n", n)
		return nil
	}
	for ; head != nil && n > 0; n-- {
		head = head.next
	}
	return head
}

// End returns the nth node from the end, where 0 is the last node, or nil when the chain is too short.
// A lead pointer is moved n+1 nodes ahead, then both pointers advance until the lead runs off the end.
func End[T any](head *Node[T], n int) *Node[T] {
	if n < 0 {
		slog.Debug("End got a negative position", "n", n)
		return nil
	}
	lead := head
	for i := 0; i <= n; i++ {
		if lead == nil {
			return nil
		}
		lead = lead.next
	}
	trail := head
	for lead != nil {
		trail, lead = trail.next, lead.next
	}
	return trail
}

// Middle returns the node at index floor(n/2), which for even lengths is the first node of the
// second half. Nil for an empty chain.
func Middle[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
	}
	return slow
}

// Count returns how many nodes hold item.
func Count[T comparable](head *Node[T], item T) int {
	return CountFunc(head, func(v T) bool { return v == item })
}

// CountFunc returns how many nodes hold a value satisfying match.
func CountFunc[T any](head *Node[T], match func(T) bool) int {
	c := 0
	for ; head != nil; head = head.next {
		if match(head.Value) {
			c++
		}
	}
	return c
}

// Contains reports whether any node holds item.
func Contains[T comparable](head *Node[T], item T) bool {
	for ; head != nil; head = head.next {
		if head.Value == item {
			return true
		}
	}
	return false
}

// Index returns the 0-based position of the first node holding item.
// When no node holds it, Index returns -1 and an sll.Error with code NotFound.
func Index[T comparable](head *Node[T], item T) (int, error) {
	for i := 0; head != nil; i, head = i+1, head.next {
		if head.Value == item {
			return i, nil
		}
	}
	return -1, sll.Error{
		Code:     sll.NotFound,
		Err:      sll.ErrNotFound,
		UserData: item,
	}
}

// Length returns the number of nodes in the chain.
func Length[T any](head *Node[T]) int {
	l := 0
	for ; head != nil; head = head.next {
		l++
	}
	return l
}
