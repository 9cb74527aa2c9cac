package treetable

import (
	"fmt"
	"iter"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

func tomlDocuments(data []byte) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		var doc map[string]any
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			yield(Value{}, fmt.Errorf("%w: toml: %s", ErrInvalidDocument, err))
			return
		}
		// Keys lists every key in document order; the first occurrence of a
		// path decides where it sorts among its siblings.
		order := make(map[string]int)
		for i, k := range md.Keys() {
			if _, ok := order[k.String()]; !ok {
				order[k.String()] = i
			}
		}
		yield(fromTOML(doc, nil, order), nil)
	}
}

func fromTOML(x any, path toml.Key, order map[string]int) Value {
	switch x := x.(type) {
	case map[string]any:
		return Value{kind: KindMap, entries: tomlEntries(x, path, order)}
	case []map[string]any:
		items := make([]Value, len(x))
		for i, m := range x {
			items[i] = fromTOML(m, path, order)
		}
		return Value{kind: KindSequence, items: items}
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = fromTOML(item, path, order)
		}
		return Value{kind: KindSequence, items: items}
	case string:
		return Scalar(x)
	case int64:
		return Scalar(strconv.FormatInt(x, 10))
	case float64:
		return Scalar(formatTOMLFloat(x))
	case bool:
		return Scalar(strconv.FormatBool(x))
	case time.Time:
		return Scalar(x.Format(time.RFC3339Nano))
	default:
		return Scalar(fmt.Sprint(x))
	}
}

func tomlEntries(m map[string]any, path toml.Key, order map[string]int) []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	pos := func(k string) (int, bool) {
		i, ok := order[append(path[:len(path):len(path)], k).String()]
		return i, ok
	}
	sort.Slice(keys, func(a, b int) bool {
		ia, oka := pos(keys[a])
		ib, okb := pos(keys[b])
		switch {
		case oka && okb:
			return ia < ib
		case oka != okb:
			return oka
		default:
			return keys[a] < keys[b]
		}
	})
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		child := append(path[:len(path):len(path)], k)
		entries[i] = Entry{Key: k, Value: fromTOML(m[k], child, order)}
	}
	return entries
}

func formatTOMLFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) {
		s += ".0"
	}
	return s
}
