package list

import (
	"cmp"
	"fmt"
	"time"

	"github.com/google/uuid"

	sll "github.com/LohitKamble-ECE/Singly-Linked-List"
)

// Comparer specifies how to compare this value against another value.
type Comparer interface {
	// Compare compares this object with the other and returns -1, 0, or 1.
	// -1 means this < other, 0 means equal, 1 means this > other.
	Compare(other any) int
}

// Compare orders two values of a Node[any] chain. It handles built-in ordered types,
// UUIDs, time.Time and Comparer implementations, and falls back to comparing the
// values' string forms. nil sorts before everything else.
//
// Pass it to the Func variants, e.g. MergeSortFunc(head, Compare).
func Compare(x, y any) int {
	switch x.(type) {
	case int:
		return compareAs[int](x, y)
	case int8:
		return compareAs[int8](x, y)
	case int16:
		return compareAs[int16](x, y)
	case int32:
		return compareAs[int32](x, y)
	case int64:
		return compareAs[int64](x, y)
	case uint:
		return compareAs[uint](x, y)
	case uint8:
		return compareAs[uint8](x, y)
	case uint16:
		return compareAs[uint16](x, y)
	case uint32:
		return compareAs[uint32](x, y)
	case uint64:
		return compareAs[uint64](x, y)
	case uintptr:
		return compareAs[uintptr](x, y)
	case float32:
		return compareAs[float32](x, y)
	case float64:
		return compareAs[float64](x, y)
	case string:
		return compareAs[string](x, y)
	case uuid.UUID:
		x1, _ := x.(uuid.UUID)
		y1, _ := y.(uuid.UUID)
		return sll.UUID(x1).Compare(sll.UUID(y1))
	case sll.UUID:
		x1, _ := x.(sll.UUID)
		y1, _ := y.(sll.UUID)
		return x1.Compare(y1)
	case time.Time:
		x1, _ := x.(time.Time)
		y1, _ := y.(time.Time)
		return x1.Compare(y1)
	default:
		if x == nil && y == nil {
			return 0
		}
		if x == nil {
			return -1
		}
		if y == nil {
			return 1
		}
		if cX, ok := x.(Comparer); ok {
			return cX.Compare(y)
		}
		// Last resort, compare their string values.
		return cmp.Compare(fmt.Sprintf("%v", x), fmt.Sprintf("%v", y))
	}
}

func compareAs[T cmp.Ordered](x, y any) int {
	x1, _ := x.(T)
	y1, _ := y.(T)
	return cmp.Compare(x1, y1)
}
