package list

import "log/slog"

// RemoveBegin drops the head node and returns its successor.
func RemoveBegin[T any](head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}
	return head.next
}

// RemoveEnd drops the last node. Chains of zero or one node are returned unchanged.
func RemoveEnd[T any](head *Node[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	prev := head
	for prev.next.next != nil {
		prev = prev.next
	}
	prev.next = nil
	return head
}

// RemoveAt drops the node at the 0-based index.
//
// An index at or past the end of the chain does not leave the chain alone: the result is nil,
// i.e. the whole list collapses to empty. Callers that need a no-op must check Length first.
// A negative index is out of range too.
func RemoveAt[T any](head *Node[T], index int) *Node[T] {
	if index < 0 {
		slog.Debug("RemoveAt got a negative index, treating it as out of range", "index", index)
		return nil
	}
	if head == nil {
		return nil
	}
	if index == 0 {
		return head.next
	}
	prev := Begin(head, index-1)
	if prev == nil || prev.next == nil {
		return nil
	}
	prev.next = prev.next.next
	return head
}

// RemoveFirstOccurrence drops the first node whose value equals item.
func RemoveFirstOccurrence[T comparable](head *Node[T], item T) *Node[T] {
	if head == nil {
		return nil
	}
	if head.Value == item {
		return head.next
	}
	for prev := head; prev.next != nil; prev = prev.next {
		if prev.next.Value == item {
			prev.next = prev.next.next
			break
		}
	}
	return head
}

// RemoveLastOccurrence drops the last node whose value equals item, in a single pass
// that remembers the latest match and its predecessor.
func RemoveLastOccurrence[T comparable](head *Node[T], item T) *Node[T] {
	var prev, match, matchPrev *Node[T]
	for curr := head; curr != nil; prev, curr = curr, curr.next {
		if curr.Value == item {
			match, matchPrev = curr, prev
		}
	}
	switch {
	case match == nil:
		return head
	case matchPrev == nil:
		return match.next
	}
	matchPrev.next = match.next
	return head
}

// RemoveAllOccurrences drops every node whose value equals item.
func RemoveAllOccurrences[T comparable](head *Node[T], item T) *Node[T] {
	return RemoveAllFunc(head, func(v T) bool { return v == item })
}

// RemoveAllFunc drops every node whose value satisfies match.
func RemoveAllFunc[T any](head *Node[T], match func(T) bool) *Node[T] {
	for head != nil && match(head.Value) {
		head = head.next
	}
	if head == nil {
		return nil
	}
	for prev := head; prev.next != nil; {
		if match(prev.next.Value) {
			prev.next = prev.next.next
			continue
		}
		prev = prev.next
	}
	return head
}

// RemoveDuplicatesFromSorted collapses each run of equal adjacent values to its first node.
func RemoveDuplicatesFromSorted[T comparable](head *Node[T]) *Node[T] {
	for curr := head; curr != nil && curr.next != nil; {
		if curr.next.Value == curr.Value {
			curr.next = curr.next.next
			continue
		}
		curr = curr.next
	}
	return head
}
