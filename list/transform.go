package list

import "golang.org/x/exp/constraints"

// Reverse flips every link in place and returns the old last node as the new head.
func Reverse[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	for head != nil {
		next := head.next
		head.next = prev
		prev, head = head, next
	}
	return prev
}

// SplitInMiddle cuts the chain in two at index floor(n/2) and returns both heads.
// The first half keeps floor(n/2) nodes and the second half gets the rest, so for odd
// lengths the second half is one node longer. A single node comes back as (nil, head).
// The chain is modified: the first half's last node loses its successor.
func SplitInMiddle[T any](head *Node[T]) (*Node[T], *Node[T]) {
	var prev *Node[T]
	slow, fast := head, head
	for fast != nil && fast.next != nil {
		prev, slow, fast = slow, slow.next, fast.next.next
	}
	if prev == nil {
		return nil, head
	}
	prev.next = nil
	return head, slow
}

// IsPalindrome reports whether the values read the same in both directions.
// An empty chain is a palindrome. The halves are split and reversed for the
// comparison, then stitched back so the chain is unchanged on return.
func IsPalindrome[T comparable](head *Node[T]) bool {
	first, second := SplitInMiddle(head)
	if first == nil {
		return true
	}
	second = Reverse(second)
	same := true
	for a, b := first, second; a != nil && b != nil; a, b = a.next, b.next {
		if a.Value != b.Value {
			same = false
			break
		}
	}
	tail := first
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = Reverse(second)
	return same
}

// SegregateEvens moves every even value in front of every odd value. Both groups keep their order.
func SegregateEvens[T constraints.Integer](head *Node[T]) *Node[T] {
	return Partition(head, func(v T) bool { return v%2 == 0 })
}

// Partition is a stable partition that relinks the nodes satisfying front ahead of the rest.
func Partition[T any](head *Node[T], front func(T) bool) *Node[T] {
	var ahead, behind Node[T]
	aheadTail, behindTail := &ahead, &behind
	for curr := head; curr != nil; curr = curr.next {
		if front(curr.Value) {
			aheadTail.next = curr
			aheadTail = curr
		} else {
			behindTail.next = curr
			behindTail = curr
		}
	}
	behindTail.next = nil
	aheadTail.next = behind.next
	return ahead.next
}

// PairwiseSwap swaps each adjacent pair of nodes, relinking nodes rather than values.
// With an odd count the last node stays where it is.
func PairwiseSwap[T any](head *Node[T]) *Node[T] {
	sentinel := Node[T]{next: head}
	prev := &sentinel
	for prev.next != nil && prev.next.next != nil {
		first, second := prev.next, prev.next.next
		first.next = second.next
		second.next = first
		prev.next = second
		prev = first
	}
	return sentinel.next
}
