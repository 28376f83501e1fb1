package format

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
)

// Highlight is the color used by HighlightInts. Setting color.NoColor
// switches highlighting off.
var Highlight = color.New(color.Bold)

// HighlightInts prints a sequence of ints in brackets, highlighting the
// elements at the given indexes, e.g. the elements a sorting step is about to
// swap.
func HighlightInts(w io.Writer, arr []int, indexes ...int) {
	io.WriteString(w, "[ ")
	for i, v := range arr {
		if slices.Contains(indexes, i) {
			Highlight.Fprintf(w, "%d", v)
			io.WriteString(w, " ")
		} else {
			fmt.Fprintf(w, "%d ", v)
		}
	}
	io.WriteString(w, "]\n")
}
