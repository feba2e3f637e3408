package list

import (
	"slices"
	"testing"
)

func expectValues[T comparable](t *testing.T, head *Node[T], want ...T) {
	t.Helper()
	if got := Values(head); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// genCyclic builds a chain of values whose last node links back to the node at index k.
func genCyclic(values []int, k int) (*Node[int], *Node[int]) {
	head := GenList(values)
	entry := Begin(head, k)
	last := head
	for last.next != nil {
		last = last.next
	}
	last.next = entry
	return head, entry
}
