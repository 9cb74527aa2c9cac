// Package treetable renders structured data as nested, border-drawn text
// tables.
//
// A document is a [Value] tree of scalars, sequences and ordered maps. The
// central entry points are [Render], [Write] and [Marshal]:
//
//	v := treetable.Map(
//		treetable.Pair("name", treetable.Scalar("treetable")),
//		treetable.Pair("tags", treetable.Sequence(treetable.Scalar("a"), treetable.Scalar("b"))),
//	)
//	treetable.Write(os.Stdout, v)
//
// prints
//
//	+------+-------------+
//	| name |  treetable  |
//	+------+-------------+
//	| tags | +-----+     |
//	|      | |  a  |     |
//	|      | +-----+     |
//	|      | |  b  |     |
//	|      | +-----+     |
//	+------+-------------+
//
// Containers nested inside containers are rendered into their own boxed
// grid first and then placed in the parent cell as an opaque block.
//
// # Orientation
//
// Sequences and maps each have an [Orientation], fixed for the whole tree:
//
//   - [WithSeqOrientation]: Column stacks items, Row puts them side by side
//   - [WithMapOrientation]: Column gives key-value rows, Row gives a row of
//     keys above a row of values
//
// # Layout
//
// The lower-level pieces are exported for callers that build their own
// grids:
//
//   - [Cell]: one cell's text split into lines and measured once
//   - [Block]: a rendered rectangle of lines, a cell or a whole grid
//   - [Grid]: lays out a matrix of blocks with borders and padding
//
// # Width
//
// Text is measured by a [Measurer]. [RuneWidth] is the default; see also
// [EastAsianWidth], [GraphemeWidth], [ANSIWidth] and [CharCount].
//
// # Borders
//
// [WithBorder] selects a [BorderStyle]. [BorderASCII] is the default.
// [WithBorderGlyphs] accepts any [Border], including lipgloss borders via
// [BorderFromLipgloss].
//
// # Input
//
// [Parse], [Decode] and [Documents] read JSON, YAML and TOML while keeping
// the key order of the source. [WriteDocuments] renders a whole stream.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown input format
//   - [ErrInvalidDocument]: input that does not parse
//   - [ErrInvalidOption]: unknown option name
package treetable
