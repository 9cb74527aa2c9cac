package treetable

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Border is the set of glyphs used to draw a grid. Each glyph is expected
// to occupy one terminal column.
type Border struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
	TopTee, BottomTee, LeftTee, RightTee       string
	Cross                                      string
}

// IsZero reports whether b has no glyphs at all, which renders as
// [BorderNone].
func (b Border) IsZero() bool { return b == Border{} }

// BorderFromLipgloss converts a lipgloss border definition, so any of
// lipgloss.NormalBorder, RoundedBorder, ThickBorder and friends can frame a
// grid.
func BorderFromLipgloss(b lipgloss.Border) Border {
	return Border{
		TopLeft: b.TopLeft, TopRight: b.TopRight,
		BottomLeft: b.BottomLeft, BottomRight: b.BottomRight,
		Horizontal: b.Top, Vertical: b.Left,
		TopTee: b.MiddleTop, BottomTee: b.MiddleBottom,
		LeftTee: b.MiddleLeft, RightTee: b.MiddleRight,
		Cross: b.Middle,
	}
}

// BorderStyle selects a built-in [Border].
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, columns separated by padding
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderSets = map[BorderStyle]Border{
	BorderRounded: {
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
		TopTee: "┬", BottomTee: "┴", LeftTee: "├", RightTee: "┤",
		Cross: "┼",
	},
	BorderNone: {},
	BorderASCII: {
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
		TopTee: "+", BottomTee: "+", LeftTee: "+", RightTee: "+",
		Cross: "+",
	},
	BorderHeavy: {
		TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛",
		Horizontal: "━", Vertical: "┃",
		TopTee: "┳", BottomTee: "┻", LeftTee: "┣", RightTee: "┫",
		Cross: "╋",
	},
	BorderDouble: {
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		TopTee: "╦", BottomTee: "╩", LeftTee: "╠", RightTee: "╣",
		Cross: "╬",
	},
}

var borderNames = map[BorderStyle]string{
	BorderRounded: "rounded",
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// Border returns the glyph set for s. Unknown styles fall back to ASCII.
func (s BorderStyle) Border() Border {
	if b, ok := borderSets[s]; ok {
		return b
	}
	return borderSets[BorderASCII]
}

// String returns the style name.
func (s BorderStyle) String() string {
	if n, ok := borderNames[s]; ok {
		return n
	}
	return fmt.Sprintf("BorderStyle(%d)", int(s))
}

// ParseBorderStyle parses a style name as returned by [BorderStyle.String].
func ParseBorderStyle(s string) (BorderStyle, error) {
	for style, name := range borderNames {
		if name == s {
			return style, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown border style %q", ErrInvalidOption, s)
}
