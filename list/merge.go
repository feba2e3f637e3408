package list

import "cmp"

// MergeTwoSorted merges two ascending chains into one ascending chain by relinking their nodes.
// On equal values the node from a comes first. Both inputs are consumed.
func MergeTwoSorted[T cmp.Ordered](a, b *Node[T]) *Node[T] {
	return MergeTwoSortedFunc(a, b, cmp.Compare[T])
}

// MergeTwoSortedFunc is MergeTwoSorted ordered by compare.
func MergeTwoSortedFunc[T any](a, b *Node[T], compare func(x, y T) int) *Node[T] {
	var merged Node[T]
	tail := &merged
	for a != nil && b != nil {
		if compare(a.Value, b.Value) <= 0 {
			tail.next, a = a, a.next
		} else {
			tail.next, b = b, b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return merged.next
}

// MergeSort sorts the chain ascending in O(n log n) and returns the new head.
// The sort is stable: equal values keep their relative order.
func MergeSort[T cmp.Ordered](head *Node[T]) *Node[T] {
	return MergeSortFunc(head, cmp.Compare[T])
}

// MergeSortFunc is MergeSort ordered by compare. It halves with SplitInMiddle and
// recombines with MergeTwoSortedFunc, so recursion depth is log n.
func MergeSortFunc[T any](head *Node[T], compare func(x, y T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	first, second := SplitInMiddle(head)
	return MergeTwoSortedFunc(MergeSortFunc(first, compare), MergeSortFunc(second, compare), compare)
}

// IntersectionNode returns the first node shared by both chains, compared by identity,
// or nil if they never converge. The longer chain is advanced by the length difference
// so both pointers are the same distance from the end, then they walk together.
func IntersectionNode[T any](a, b *Node[T]) *Node[T] {
	lenA, lenB := Length(a), Length(b)
	for ; lenA > lenB; lenA-- {
		a = a.next
	}
	for ; lenB > lenA; lenB-- {
		b = b.next
	}
	for a != nil && b != nil {
		if a == b {
			return a
		}
		a, b = a.next, b.next
	}
	return nil
}
