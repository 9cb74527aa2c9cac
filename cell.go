package treetable

import (
	"fmt"
	"strings"
)

// Cell holds the text of one table cell split into display lines, with each
// line's width cached.
//
// Single-line text is the common case and stores no line entries: line 0 is
// the whole text. Cached values are only ever rebuilt as a whole by
// [Cell.Update].
type Cell struct {
	text  string
	lines []cellLine
	width int
}

type cellLine struct {
	text  string
	width int
}

// NewCell splits text into lines and measures each of them once with m.
// Both "\n" and "\r\n" end a line.
func NewCell(text string, m Measurer) *Cell {
	c := &Cell{text: text}
	c.measure(m)
	return c
}

// Update discards the cached lines and widths and recomputes them with m.
func (c *Cell) Update(m Measurer) {
	c.lines = c.lines[:0]
	c.width = 0
	c.measure(m)
}

// Set replaces the cell text and recomputes its lines and widths with m.
func (c *Cell) Set(text string, m Measurer) {
	c.text = text
	c.Update(m)
}

func (c *Cell) measure(m Measurer) {
	first, rest, multi := strings.Cut(c.text, "\n")
	if !multi {
		c.width = m.Width(c.text)
		return
	}
	first = strings.TrimSuffix(first, "\r")
	w := m.Width(first)
	c.lines = append(c.lines, cellLine{text: first, width: w})
	c.width = w
	for {
		line, next, more := strings.Cut(rest, "\n")
		line = strings.TrimSuffix(line, "\r")
		w := m.Width(line)
		c.lines = append(c.lines, cellLine{text: line, width: w})
		c.width = max(c.width, w)
		if !more {
			return
		}
		rest = next
	}
}

// Text returns the raw cell text.
func (c *Cell) Text() string { return c.text }

// IsEmpty reports whether the raw text is empty.
func (c *Cell) IsEmpty() bool { return c.text == "" }

// CountLines returns the number of display lines, never less than 1.
func (c *Cell) CountLines() int { return max(len(c.lines), 1) }

// Width returns the widest line's width.
func (c *Cell) Width() int { return c.width }

// Line returns display line i. It panics if i >= CountLines().
func (c *Cell) Line(i int) string {
	if i == 0 && len(c.lines) == 0 {
		return c.text
	}
	c.check(i)
	return c.lines[i].text
}

// LineWidth returns the width of display line i. It panics if
// i >= CountLines().
func (c *Cell) LineWidth(i int) int {
	if i == 0 && len(c.lines) == 0 {
		return c.width
	}
	c.check(i)
	return c.lines[i].width
}

func (c *Cell) check(i int) {
	if i < 0 || i >= c.CountLines() {
		panic(fmt.Sprintf("treetable: cell line index %d out of range [0:%d]", i, c.CountLines()))
	}
}

// Block returns the cell as a [Block], reusing the cached widths.
func (c *Cell) Block() Block {
	if len(c.lines) == 0 {
		return Block{Lines: []string{c.text}, Width: c.width}
	}
	b := Block{
		Lines:  make([]string, len(c.lines)),
		Width:  c.width,
		widths: make([]int, len(c.lines)),
	}
	for i, l := range c.lines {
		b.Lines[i] = l.text
		b.widths[i] = l.width
	}
	return b
}
