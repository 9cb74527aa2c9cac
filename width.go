package treetable

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

//go:generate mockgen -destination=mock_measurer_test.go -package=treetable_test github.com/bjaus/treetable Measurer

// Measurer reports the display width of a single line of text.
//
// Implementations must be deterministic and free of side effects. The
// package never validates the result; a Measurer returning negative widths
// produces garbage layout.
type Measurer interface {
	Width(s string) int
}

// MeasureFunc adapts an ordinary function to the [Measurer] interface.
type MeasureFunc func(s string) int

// Width calls f(s).
func (f MeasureFunc) Width(s string) int { return f(s) }

var eastAsian = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	return c
}()

var (
	// RuneWidth measures with go-runewidth using the default condition.
	// Wide East Asian characters count as 2 columns. It is the default.
	RuneWidth Measurer = MeasureFunc(runewidth.StringWidth)

	// EastAsianWidth is like RuneWidth but also treats ambiguous-width
	// characters as 2 columns, matching CJK terminal locales.
	EastAsianWidth Measurer = MeasureFunc(eastAsian.StringWidth)

	// GraphemeWidth measures grapheme clusters with uniseg, so emoji ZWJ
	// sequences and flags count once.
	GraphemeWidth Measurer = MeasureFunc(uniseg.StringWidth)

	// ANSIWidth ignores ANSI escape sequences when measuring, for text that
	// was colored before it reached the table.
	ANSIWidth Measurer = MeasureFunc(ansi.StringWidth)

	// CharCount counts every rune as one column.
	CharCount Measurer = MeasureFunc(utf8.RuneCountInString)
)

var measurers = map[string]Measurer{
	"rune":       RuneWidth,
	"east-asian": EastAsianWidth,
	"grapheme":   GraphemeWidth,
	"ansi":       ANSIWidth,
	"char":       CharCount,
}

// ParseMeasurer returns the built-in measurer registered under name. Known
// names are rune, east-asian, grapheme, ansi and char.
func ParseMeasurer(name string) (Measurer, error) {
	if m, ok := measurers[name]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: unknown width function %q", ErrInvalidOption, name)
}
