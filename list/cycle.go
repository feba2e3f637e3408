package list

// CycleState tells the three outcomes of cycle detection apart.
type CycleState int

const (
	// EmptyInput means the chain had no head.
	EmptyInput CycleState = iota
	// NoCycle means the chain ends.
	NoCycle
	// CycleAt means the chain loops; CycleResult.Meeting holds where the pointers met.
	CycleAt
)

func (s CycleState) String() string {
	switch s {
	case EmptyInput:
		return "EmptyInput"
	case NoCycle:
		return "NoCycle"
	case CycleAt:
		return "CycleAt"
	}
	return "Unknown"
}

// CycleResult is what HasCycle found.
type CycleResult[T any] struct {
	State CycleState
	// Meeting is the node where the slow and fast pointers met. Only set when State is CycleAt.
	Meeting *Node[T]
}

// Found reports whether a cycle was detected.
func (r CycleResult[T]) Found() bool {
	return r.State == CycleAt
}

// HasCycle runs Floyd's tortoise and hare over the chain. Unlike the other functions
// it accepts cyclic chains.
func HasCycle[T any](head *Node[T]) CycleResult[T] {
	if head == nil {
		return CycleResult[T]{State: EmptyInput}
	}
	slow, fast := head, head
	for fast != nil && fast.next != nil {
		slow, fast = slow.next, fast.next.next
		if slow == fast {
			return CycleResult[T]{State: CycleAt, Meeting: slow}
		}
	}
	return CycleResult[T]{State: NoCycle}
}

// CycleBeginsAt returns the first node of the cycle, or nil if the chain has none.
// The distance from head to the entry equals the distance from the meeting point
// to the entry, so two pointers stepping one node at a time meet there.
func CycleBeginsAt[T any](head *Node[T]) *Node[T] {
	r := HasCycle(head)
	if !r.Found() {
		return nil
	}
	one, two := r.Meeting, head
	for one != two {
		one, two = one.next, two.next
	}
	return one
}

// CycleLength returns the number of nodes on the cycle, or 0 for an empty or acyclic chain.
func CycleLength[T any](head *Node[T]) int {
	r := HasCycle(head)
	if !r.Found() {
		return 0
	}
	l := 1
	for curr := r.Meeting.next; curr != r.Meeting; curr = curr.next {
		l++
	}
	return l
}
