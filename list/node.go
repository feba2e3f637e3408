// Package list implements classic singly linked list algorithms as free functions over a
// chain of Node values. A list is identified only by its head; every function takes the
// current head and returns the head the caller must keep using afterwards.
//
// Except for HasCycle, CycleBeginsAt and CycleLength, functions assume an acyclic chain.
// Functions whose names mention sorted input do not check that the input is sorted.
package list

import (
	sll "github.com/LohitKamble-ECE/Singly-Linked-List"
)

// Node is one element of a singly linked chain.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// NewNode returns a node holding value whose successor is next, which may be nil.
func NewNode[T any](value T, next *Node[T]) *Node[T] {
	return &Node[T]{Value: value, next: next}
}

// Next returns the successor node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// SetNext replaces the successor node. A nil next makes n the end of the chain.
func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

// SetLink replaces the successor with link, which must be a *Node[T] or nil.
// Any other value is rejected with a TypeMismatch error and n is left untouched.
func (n *Node[T]) SetLink(link any) error {
	switch l := link.(type) {
	case nil:
		n.next = nil
		return nil
	case *Node[T]:
		n.next = l
		return nil
	}
	return sll.Error{
		Code:     sll.TypeMismatch,
		Err:      sll.ErrTypeMismatch,
		UserData: link,
	}
}

// GenList builds a chain holding items in the same order, prepending from the last item backward.
func GenList[T any](items []T) *Node[T] {
	var head *Node[T]
	for i := len(items) - 1; i >= 0; i-- {
		head = InsertBegin(head, items[i])
	}
	return head
}

// Values collects the chain's values, head first.
func Values[T any](head *Node[T]) []T {
	r := make([]T, 0, Length(head))
	for ; head != nil; head = head.next {
		r = append(r, head.Value)
	}
	return r
}
