package list

import (
	"slices"
	"testing"
)

func TestReverse(t *testing.T) {
	if Reverse[int](nil) != nil {
		t.Fatalf("Reverse(nil) should be nil")
	}
	head := GenList([]int{1, 2, 3, 4})
	last := End(head, 0)
	r := Reverse(head)
	if r != last {
		t.Fatalf("old last node should be the new head")
	}
	expectValues(t, r, 4, 3, 2, 1)
	expectValues(t, Reverse(r), 1, 2, 3, 4)
	expectValues(t, Reverse(GenList([]int{1})), 1)
}

func TestSplitInMiddle(t *testing.T) {
	tests := []struct {
		input  []int
		first  []int
		second []int
	}{
		{nil, nil, nil},
		{[]int{1}, nil, []int{1}},
		{[]int{1, 2}, []int{1}, []int{2}},
		{[]int{1, 2, 3}, []int{1}, []int{2, 3}},
		{[]int{1, 2, 3, 4}, []int{1, 2}, []int{3, 4}},
		{[]int{1, 2, 3, 4, 5}, []int{1, 2}, []int{3, 4, 5}},
	}
	for _, tc := range tests {
		head := GenList(tc.input)
		first, second := SplitInMiddle(head)
		expectValues(t, first, tc.first...)
		expectValues(t, second, tc.second...)
		if got := append(Values(first), Values(second)...); !slices.Equal(got, tc.input) {
			t.Fatalf("halves of %v concatenate to %v", tc.input, got)
		}
	}
}

func TestSplitInMiddle_SecondHalfStartsAtMiddle(t *testing.T) {
	head := GenList([]int{1, 2, 3, 4, 5, 6, 7})
	mid := Middle(head)
	_, second := SplitInMiddle(head)
	if second != mid {
		t.Fatalf("second half should start at Middle()")
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		input []int
		want  bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1}, true},
		{[]int{1, 2}, false},
		{[]int{1, 2, 3, 2, 1}, true},
		{[]int{1, 2, 2, 1}, true},
		{[]int{1, 2, 3}, false},
		{[]int{1, 2, 3, 1}, false},
	}
	for _, tc := range tests {
		head := GenList(tc.input)
		if got := IsPalindrome(head); got != tc.want {
			t.Fatalf("IsPalindrome(%v) = %v", tc.input, got)
		}
		expectValues(t, head, tc.input...)
	}
}

func TestSegregateEvens(t *testing.T) {
	tests := []struct {
		input []int
		want  []int
	}{
		{nil, nil},
		{[]int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6, 1, 3, 5}},
		{[]int{1, 3, 5}, []int{1, 3, 5}},
		{[]int{2, 4}, []int{2, 4}},
		{[]int{-3, -2, 0, 7}, []int{-2, 0, -3, 7}},
	}
	for _, tc := range tests {
		expectValues(t, SegregateEvens(GenList(tc.input)), tc.want...)
	}
	expectValues(t, SegregateEvens(GenList([]uint8{9, 8, 7, 6})), 8, 6, 9, 7)
}

func TestSegregateEvens_ReusesNodes(t *testing.T) {
	head := GenList([]int{1, 2})
	one, two := head, head.Next()
	head = SegregateEvens(head)
	if head != two || head.Next() != one || one.Next() != nil {
		t.Fatalf("nodes should be relinked, not copied")
	}
}

func TestPartition(t *testing.T) {
	head := Partition(GenList([]string{"b1", "a1", "b2", "a2"}), func(s string) bool { return s[0] == 'a' })
	expectValues(t, head, "a1", "a2", "b1", "b2")
}

func TestPairwiseSwap(t *testing.T) {
	tests := []struct {
		input []int
		want  []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{2, 1, 3}},
		{[]int{1, 2, 3, 4}, []int{2, 1, 4, 3}},
		{[]int{1, 2, 3, 4, 5}, []int{2, 1, 4, 3, 5}},
	}
	for _, tc := range tests {
		expectValues(t, PairwiseSwap(GenList(tc.input)), tc.want...)
	}
}

func TestPairwiseSwap_SwapsNodes(t *testing.T) {
	head := GenList([]int{1, 2})
	one, two := head, head.Next()
	if PairwiseSwap(head) != two || two.Next() != one {
		t.Fatalf("nodes should be swapped, not values")
	}
}
