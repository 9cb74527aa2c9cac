package treetable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/tidwall/gjson"
)

// jsonDocuments splits concatenated JSON values with encoding/json and walks
// each one with gjson, whose ForEach visits object keys in source order.
func jsonDocuments(data []byte) iter.Seq2[Value, error] {
	return func(yield func(Value, error) bool) {
		dec := json.NewDecoder(bytes.NewReader(data))
		for {
			var raw json.RawMessage
			err := dec.Decode(&raw)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Value{}, fmt.Errorf("%w: json: %s", ErrInvalidDocument, err))
				return
			}
			if !yield(fromJSON(gjson.ParseBytes(raw)), nil) {
				return
			}
		}
	}
}

func fromJSON(r gjson.Result) Value {
	switch {
	case r.IsObject():
		var entries []Entry
		r.ForEach(func(key, value gjson.Result) bool {
			entries = append(entries, Entry{Key: key.String(), Value: fromJSON(value)})
			return true
		})
		return Value{kind: KindMap, entries: entries}
	case r.IsArray():
		var items []Value
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, fromJSON(value))
			return true
		})
		return Value{kind: KindSequence, items: items}
	case r.Type == gjson.String:
		return Scalar(r.String())
	default:
		// Numbers, booleans and null keep their literal spelling.
		return Scalar(r.Raw)
	}
}
