package treetable

import (
	"fmt"
	"slices"
	"strings"
)

// Alignment controls horizontal placement of a cell inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment controls vertical placement of a cell inside its row.
type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

var alignNames = map[Alignment]string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"}

var valignNames = map[VerticalAlignment]string{AlignTop: "top", AlignMiddle: "middle", AlignBottom: "bottom"}

// String returns the alignment name.
func (a Alignment) String() string {
	if n, ok := alignNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// String returns the alignment name.
func (v VerticalAlignment) String() string {
	if n, ok := valignNames[v]; ok {
		return n
	}
	return fmt.Sprintf("VerticalAlignment(%d)", int(v))
}

// ParseAlignment parses left, center or right.
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown alignment %q", ErrInvalidOption, s)
}

// ParseVerticalAlignment parses top, middle or bottom.
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	for v, name := range valignNames {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown vertical alignment %q", ErrInvalidOption, s)
}

// Padding is the blank space kept around every cell's content.
type Padding struct {
	Left, Right, Top, Bottom int
}

// Grid lays out a matrix of [Block] values into one bordered Block. Every
// cell in a column is padded to the column width and every cell in a row to
// the row height.
type Grid struct {
	rows    [][]Block
	cfg     config
	numCols int
}

// NewGrid builds a grid over rows. Rows shorter than the widest row are
// padded with zero blocks. Only the border, padding, alignment and trace
// options apply.
func NewGrid(rows [][]Block, opts ...Option) *Grid {
	return newGrid(rows, newConfig(opts))
}

func newGrid(rows [][]Block, cfg config) *Grid {
	g := &Grid{rows: rows, cfg: cfg}
	for _, row := range rows {
		g.numCols = max(g.numCols, len(row))
	}
	return g
}

func (g *Grid) cell(r, c int) Block {
	if c < len(g.rows[r]) {
		return g.rows[r][c]
	}
	return Block{}
}

// Widths returns the width of every column including horizontal padding.
func (g *Grid) Widths() []int {
	pad := g.cfg.padding.Left + g.cfg.padding.Right
	widths := make([]int, g.numCols)
	for c := range widths {
		for r := range g.rows {
			widths[c] = max(widths[c], g.cell(r, c).Width)
		}
		widths[c] += pad
	}
	return widths
}

// Heights returns the height of every row including vertical padding. A row
// holding only zero blocks has height 0 and is not drawn.
func (g *Grid) Heights() []int {
	pad := g.cfg.padding.Top + g.cfg.padding.Bottom
	heights := make([]int, len(g.rows))
	for r := range heights {
		for c := range g.numCols {
			heights[r] = max(heights[r], g.cell(r, c).Height())
		}
		if heights[r] > 0 {
			heights[r] += pad
		}
	}
	return heights
}

// Render draws the grid. A grid with no rows or no columns renders as the
// zero Block; a single cell still gets a full box. Rows holding only zero
// blocks are skipped along with their rule.
func (g *Grid) Render() Block {
	if len(g.rows) == 0 || g.numCols == 0 {
		g.cfg.logger.Debug("grid: empty, rendering zero block")
		return Block{}
	}
	widths := g.Widths()
	heights := g.Heights()
	if !slices.ContainsFunc(heights, func(h int) bool { return h > 0 }) {
		g.cfg.logger.Debug("grid: only empty rows, rendering zero block")
		return Block{}
	}
	g.cfg.logger.Debugf("grid: %dx%d widths=%v heights=%v", len(g.rows), g.numCols, widths, heights)

	bc := g.cfg.border
	rules := bc.Horizontal != ""
	sides := bc.Vertical != ""

	total := 0
	for _, w := range widths {
		total += w
	}
	if sides {
		total += g.numCols + 1
	}

	var lines []string
	if rules {
		lines = append(lines, drawHLine(widths, sides, bc.TopLeft, bc.Horizontal, bc.TopTee, bc.TopRight))
	}
	drawn := false
	for r, height := range heights {
		if height == 0 {
			continue
		}
		if drawn && rules {
			lines = append(lines, drawHLine(widths, sides, bc.LeftTee, bc.Horizontal, bc.Cross, bc.RightTee))
		}
		drawn = true
		for l := range height {
			lines = append(lines, g.drawRowLine(r, l, height, widths, sides))
		}
	}
	if rules {
		lines = append(lines, drawHLine(widths, sides, bc.BottomLeft, bc.Horizontal, bc.BottomTee, bc.BottomRight))
	}
	return Block{Lines: lines, Width: total}
}

func (g *Grid) drawRowLine(r, l, height int, widths []int, sides bool) string {
	var sb strings.Builder
	if sides {
		sb.WriteString(g.cfg.border.Vertical)
	}
	for c, width := range widths {
		sb.WriteString(g.cellLine(g.cell(r, c), l, height, width))
		if sides {
			sb.WriteString(g.cfg.border.Vertical)
		}
	}
	return sb.String()
}

// cellLine returns output line l of block b placed in a cell of the given
// row height and column width, padding included.
func (g *Grid) cellLine(b Block, l, height, width int) string {
	pad := g.cfg.padding
	inner := height - pad.Top - pad.Bottom
	var offset int
	switch g.cfg.valign {
	case AlignMiddle:
		offset = (inner - b.Height()) / 2
	case AlignBottom:
		offset = inner - b.Height()
	}
	i := l - pad.Top - offset
	if i < 0 || i >= b.Height() {
		return strings.Repeat(" ", width)
	}
	content := width - pad.Left - pad.Right
	return strings.Repeat(" ", pad.Left) +
		alignCell(b.Lines[i], b.lineWidth(i), content, g.cfg.align) +
		strings.Repeat(" ", pad.Right)
}

// alignCell pads s, whose display width is sw, to width.
func alignCell(s string, sw, width int, align Alignment) string {
	pad := width - sw
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func drawHLine(widths []int, sides bool, left, fill, mid, right string) string {
	var sb strings.Builder
	if !sides {
		for _, width := range widths {
			sb.WriteString(strings.Repeat(fill, width))
		}
		return sb.String()
	}
	sb.WriteString(orGlyph(left, fill))
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width))
		if i < len(widths)-1 {
			sb.WriteString(orGlyph(mid, fill))
		}
	}
	sb.WriteString(orGlyph(right, fill))
	return sb.String()
}

func orGlyph(glyph, fallback string) string {
	if glyph == "" {
		return fallback
	}
	return glyph
}
