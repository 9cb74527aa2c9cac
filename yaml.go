package treetable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds alias nesting so a self-referencing anchor fails
// instead of recursing forever.
const maxAliasDepth = 1000

// Alias expansion is charged per visited node. A document may expand to
// yamlNodesPerByte nodes for every input byte, and never less than
// minYAMLNodes, before it is rejected.
const (
	minYAMLNodes     = 10000
	yamlNodesPerByte = 100
)

func yamlDocuments(data []byte) iter.Seq2[Value, error] {
	budget := max(minYAMLNodes, yamlNodesPerByte*len(data))
	return func(yield func(Value, error) bool) {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var node yaml.Node
			err := dec.Decode(&node)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Value{}, fmt.Errorf("%w: yaml: %s", ErrInvalidDocument, err))
				return
			}
			x := &yamlExpander{budget: budget}
			v, err := x.value(&node, 0)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// yamlExpander converts one yaml.Node tree, counting the nodes it visits.
type yamlExpander struct {
	budget int
	nodes  int
}

func (x *yamlExpander) value(n *yaml.Node, aliases int) (Value, error) {
	x.nodes++
	if x.nodes > x.budget {
		return Value{}, fmt.Errorf("%w: yaml: aliases expand past %d nodes", ErrInvalidDocument, x.budget)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Scalar(""), nil
		}
		return x.value(n.Content[0], aliases)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := x.value(c, aliases)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: KindSequence, items: items}, nil
	case yaml.MappingNode:
		entries := make([]Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := x.value(n.Content[i], aliases)
			if err != nil {
				return Value{}, err
			}
			v, err := x.value(n.Content[i+1], aliases)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry{Key: key.String(), Value: v})
		}
		return Value{kind: KindMap, entries: entries}, nil
	case yaml.AliasNode:
		if aliases >= maxAliasDepth || n.Alias == nil {
			return Value{}, fmt.Errorf("%w: yaml: alias *%s nests too deep", ErrInvalidDocument, n.Value)
		}
		return x.value(n.Alias, aliases+1)
	default:
		return Scalar(n.Value), nil
	}
}
