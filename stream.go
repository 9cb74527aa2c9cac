package treetable

import (
	"io"
	"iter"
)

// WriteIter renders every value from seq and writes the tables to w as they
// arrive, separated by a blank line. Values that render to nothing (empty
// containers) are skipped. Options are resolved once and shared by every
// table.
func WriteIter(w io.Writer, seq iter.Seq[Value], opts ...Option) error {
	cfg := newConfig(opts)
	first := true
	var streamErr error
	seq(func(v Value) bool {
		t := &Table{value: v, cfg: cfg}
		b := t.Render()
		if b.IsZero() {
			return true
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				streamErr = err
				return false
			}
		}
		first = false
		if _, err := b.WriteTo(w); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders values from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, ch <-chan Value, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
}

// WriteDocuments parses every document of r in format f and writes one
// table per document. It stops at the first parse or write error.
func WriteDocuments(w io.Writer, r io.Reader, f Format, opts ...Option) error {
	var parseErr error
	err := WriteIter(w, func(yield func(Value) bool) {
		for v, err := range Documents(r, f) {
			if err != nil {
				parseErr = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}, opts...)
	if parseErr != nil {
		return parseErr
	}
	return err
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
