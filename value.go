package treetable

import "fmt"

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a node of a structured document: a scalar, an ordered sequence,
// or an ordered map. The zero Value is the empty scalar.
//
// Values are read-only once built. Accessors return copies so a rendered
// tree can be shared freely between goroutines.
type Value struct {
	kind    Kind
	text    string
	items   []Value
	entries []Entry
}

// Entry is a single key-value pair of a map [Value].
type Entry struct {
	Key   string
	Value Value
}

// Scalar returns a scalar Value holding s.
func Scalar(s string) Value {
	return Value{kind: KindScalar, text: s}
}

// Sequence returns a sequence Value holding items in order.
func Sequence(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)
	return Value{kind: KindSequence, items: out}
}

// Map returns a map Value holding entries in insertion order. Duplicate keys
// are kept as given.
func Map(entries ...Entry) Value {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return Value{kind: KindMap, entries: out}
}

// Pair is shorthand for Entry{Key: key, Value: v}.
func Pair(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Text returns the scalar text. It is empty for containers.
func (v Value) Text() string { return v.text }

// Items returns a copy of the sequence elements. Nil for non-sequences.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Entries returns a copy of the map entries. Nil for non-maps.
func (v Value) Entries() []Entry {
	if v.kind != KindMap {
		return nil
	}
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Len returns the number of children of a container, or 0 for a scalar.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMap:
		return len(v.entries)
	default:
		return 0
	}
}

// Get returns the value of the first entry with the given key.
func (v Value) Get(key string) (Value, bool) {
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// String renders v compactly for debugging, e.g. {a: [1, 2]}.
func (v Value) String() string {
	switch v.kind {
	case KindSequence:
		s := "["
		for i, item := range v.items {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	case KindMap:
		s := "{"
		for i, e := range v.entries {
			if i > 0 {
				s += ", "
			}
			s += e.Key + ": " + e.Value.String()
		}
		return s + "}"
	default:
		return v.text
	}
}
