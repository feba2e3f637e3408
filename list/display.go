package list

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Display prints the values head first, space separated, followed by a newline.
func Display[T any](head *Node[T]) {
	_ = Fdisplay(os.Stdout, head)
}

// RDisplay prints the values last node first, space separated, followed by a newline.
func RDisplay[T any](head *Node[T]) {
	_ = FRDisplay(os.Stdout, head)
}

// Fdisplay writes what Display prints to w.
func Fdisplay[T any](w io.Writer, head *Node[T]) error {
	return writeValues(w, Values(head), false)
}

// FRDisplay writes what RDisplay prints to w.
func FRDisplay[T any](w io.Writer, head *Node[T]) error {
	return writeValues(w, Values(head), true)
}

func writeValues[T any](w io.Writer, values []T, reversed bool) error {
	bw := bufio.NewWriter(w)
	for i := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		v := values[i]
		if reversed {
			v = values[len(values)-1-i]
		}
		fmt.Fprint(bw, v)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
