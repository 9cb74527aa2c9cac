package treetable

import (
	"io"
	"strings"
)

// Block is a rendered rectangle of text: a cell's lines or a whole grid.
// Once rendered, a grid is just a Block, which is what lets a table be
// placed inside another table's cell.
//
// The zero Block has no lines and renders as the empty string. Parents give
// it no width and no height.
//
// A Block built by hand must pad every line to exactly Width display
// columns. Grids trust Width and never pad or measure a block's lines.
type Block struct {
	Lines []string
	Width int

	// widths holds per-line display widths when they differ from Width.
	// Nil means every line is exactly Width wide.
	widths []int
}

// Height returns the number of lines.
func (b Block) Height() int { return len(b.Lines) }

// IsZero reports whether b has no lines.
func (b Block) IsZero() bool { return len(b.Lines) == 0 }

func (b Block) lineWidth(i int) int {
	if b.widths == nil {
		return b.Width
	}
	return b.widths[i]
}

// String joins the lines with newlines. There is no trailing newline.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n")
}

// WriteTo writes every line followed by a newline. A zero Block writes
// nothing.
func (b Block) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range b.Lines {
		m, err := io.WriteString(w, line+"\n")
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
