// Package render draws a controller.View as text.
//
// Rows go from index N at the top down to index 1. After the index and
// array columns there is one column per tree level, level b holding the
// nodes whose lowest set bit is 1<<b. Node j is a bar spanning the rows
// of the values it sums, j-lowbit(j)+1 through j, labelled on row j.
package render

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"

	"github.com/caio/go-fenwickviz/internal/controller"
	"github.com/caio/go-fenwickviz/internal/fenwick"
	"github.com/mitchellh/colorstring"
	"github.com/valyala/bytebufferpool"
)

const (
	highlightColor = "[yellow]"
	errorColor     = "[red]"
)

type Renderer struct {
	colorize colorstring.Colorize
}

// New returns a renderer. Without color, highlighted array cells are
// wrapped in asterisks and highlighted tree bars are drawn solid.
func New(color bool) *Renderer {
	return &Renderer{
		colorize: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
			Reset:   true,
		},
	}
}

// Render writes one frame for v to w.
func (r *Renderer) Render(w io.Writer, v controller.View) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	indexWidth := len(strconv.Itoa(v.Len))
	arrayWidth := cellWidth(v.Values)
	nodeWidth := cellWidth(v.Nodes)
	levels := bits.Len(uint(v.Len))

	for row := v.Len; row >= 1; row-- {
		fmt.Fprintf(buf, "%*d │", indexWidth, row)
		buf.WriteString(r.cell(fmt.Sprintf(" %*d ", arrayWidth, v.Values[row-1]), v.ArrayMarks[row-1]))
		buf.WriteString("│")
		for b := 0; b < levels; b++ {
			buf.WriteString(" ")
			buf.WriteString(r.node(v, row, b, nodeWidth))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("\nquery answer:")
	if v.Result != nil {
		fmt.Fprintf(buf, " %d", *v.Result)
	}
	buf.WriteString("\n")
	if v.Err != "" {
		buf.WriteString(r.colorize.Color(errorColor + v.Err))
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.B)
	return err
}

// node draws the cell of level b on row: the bar and label of the node
// covering row at that level, or blanks.
func (r *Renderer) node(v controller.View, row, b, width int) string {
	blank := fmt.Sprintf("  %*s", width, "")

	// The only node of level b that can cover row is the smallest
	// multiple of 1<<b that is >= row, provided its lowest bit is b.
	step := 1 << b
	j := (row + step - 1) / step * step
	if j > v.Len || fenwick.Lowbit(j) != step {
		return blank
	}

	label := fmt.Sprintf("%*s", width, "")
	if j == row {
		label = fmt.Sprintf("%*d", width, v.Nodes[j-1])
	}
	if !v.TreeMarks[j-1] {
		return "┃ " + label
	}
	if r.colorize.Disable {
		return "█ " + label
	}
	return r.colorize.Color(highlightColor + "┃ " + label)
}

// cell draws an array cell, padded with a space on both sides.
func (r *Renderer) cell(s string, highlighted bool) string {
	if !highlighted {
		return s
	}
	if r.colorize.Disable {
		return "*" + s[1:len(s)-1] + "*"
	}
	return r.colorize.Color(highlightColor + s)
}

func cellWidth(values []int64) int {
	width := 1
	for _, v := range values {
		if n := len(strconv.FormatInt(v, 10)); n > width {
			width = n
		}
	}
	return width
}
