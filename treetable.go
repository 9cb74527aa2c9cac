package treetable

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidDocument   = errors.New("invalid document")
	ErrInvalidOption     = errors.New("invalid option")
)

// Orientation controls how a container's children are laid out.
type Orientation int

const (
	// Column stacks children vertically, one per row.
	Column Orientation = iota
	// Row places children side by side, one per column.
	Row
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Column:
		return "column"
	case Row:
		return "row"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses row or column.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "column":
		return Column, nil
	case "row":
		return Row, nil
	}
	return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidOption, s)
}

const defaultTabSize = 4

type config struct {
	seq      Orientation
	mapping  Orientation
	border   Border
	padding  Padding
	align    Alignment
	valign   VerticalAlignment
	measurer Measurer
	tabSize  int
	logger   *ll.Logger
}

// Option configures a [Table] or a [Grid].
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		border:   borderSets[BorderASCII],
		padding:  Padding{Left: 1, Right: 1},
		measurer: RuneWidth,
		tabSize:  defaultTabSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = ll.New("treetable")
		cfg.logger.Disable()
		cfg.logger.Suspend()
	}
	return cfg
}

// WithSeqOrientation sets the layout of sequences at every depth.
// Default: Column.
func WithSeqOrientation(o Orientation) Option {
	return func(c *config) { c.seq = o }
}

// WithMapOrientation sets the layout of maps at every depth. Column gives a
// key-value list, Row gives a header row of keys above the values.
// Default: Column.
func WithMapOrientation(o Orientation) Option {
	return func(c *config) { c.mapping = o }
}

// WithBorder selects a built-in border style. Default: BorderASCII.
func WithBorder(s BorderStyle) Option {
	return func(c *config) { c.border = s.Border() }
}

// WithBorderGlyphs sets a custom glyph set, e.g. from [BorderFromLipgloss].
func WithBorderGlyphs(b Border) Option {
	return func(c *config) { c.border = b }
}

// WithPadding sets the space around every cell. Default: one column on
// each side.
func WithPadding(p Padding) Option {
	return func(c *config) { c.padding = p }
}

// WithAlignment sets horizontal alignment of every cell. Default: AlignLeft.
func WithAlignment(a Alignment) Option {
	return func(c *config) { c.align = a }
}

// WithVerticalAlignment sets vertical alignment of every cell.
// Default: AlignTop.
func WithVerticalAlignment(v VerticalAlignment) Option {
	return func(c *config) { c.valign = v }
}

// WithMeasurer sets the width function for cell text. Default: RuneWidth.
func WithMeasurer(m Measurer) Option {
	return func(c *config) { c.measurer = m }
}

// WithTabSize expands tabs in cell text to n spaces before measuring.
// Zero leaves tabs alone. Default: 4.
func WithTabSize(n int) Option {
	return func(c *config) { c.tabSize = max(n, 0) }
}

// WithTrace writes a debug trace of the layout to w.
func WithTrace(w io.Writer) Option {
	return func(c *config) {
		c.logger = ll.New("treetable").Handler(lh.NewTextHandler(w))
		c.logger.Enable()
		c.logger.Resume()
	}
}

// WithLogger traces the layout to an existing logger.
func WithLogger(l *ll.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Table renders one [Value] as nested grids. It is immutable and safe for
// concurrent use.
type Table struct {
	value Value
	cfg   config
}

// New returns a Table for v.
func New(v Value, opts ...Option) *Table {
	return &Table{value: v, cfg: newConfig(opts)}
}

// Render lays out the table. Empty containers render as the zero Block.
func (t *Table) Render() Block {
	t.cfg.logger.Infof("render: %s value, seq=%s map=%s", t.value.Kind(), t.cfg.seq, t.cfg.mapping)
	return t.renderRoot(t.value)
}

// String returns the rendered table without a trailing newline.
func (t *Table) String() string {
	return t.Render().String()
}

// WriteTo writes the rendered table, one newline-terminated line at a time.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return t.Render().WriteTo(w)
}

// Render is shorthand for New(v, opts...).Render().
func Render(v Value, opts ...Option) Block {
	return New(v, opts...).Render()
}

// Write renders v and writes it to w.
func Write(w io.Writer, v Value, opts ...Option) error {
	_, err := New(v, opts...).WriteTo(w)
	return err
}

// Marshal renders v and returns the bytes written by [Write].
func Marshal(v Value, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
