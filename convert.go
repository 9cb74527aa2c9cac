package treetable

import "strings"

// renderRoot renders the top-level value. A bare scalar gets its own box;
// containers are rendered by renderValue.
func (t *Table) renderRoot(v Value) Block {
	if v.kind == KindScalar {
		return newGrid([][]Block{{t.cellBlock(v.text)}}, t.cfg).Render()
	}
	return t.renderValue(v, 0)
}

func (t *Table) renderValue(v Value, depth int) Block {
	var b Block
	switch v.kind {
	case KindSequence:
		b = t.renderSequence(v.items, depth)
	case KindMap:
		b = t.renderMap(v.entries, depth)
	default:
		b = t.renderScalar(v.text)
	}
	t.cfg.logger.Debugf("convert: depth=%d kind=%s children=%d block=%dx%d", depth, v.kind, v.Len(), b.Width, b.Height())
	return b
}

// renderScalar renders a scalar nested in a container: padded like a cell
// but without borders, so it lines up next to boxed siblings.
func (t *Table) renderScalar(s string) Block {
	cfg := t.cfg
	cfg.border = Border{}
	return newGrid([][]Block{{t.cellBlock(s)}}, cfg).Render()
}

func (t *Table) renderSequence(items []Value, depth int) Block {
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		b := t.renderValue(item, depth+1)
		if b.IsZero() {
			continue
		}
		blocks = append(blocks, b)
	}
	if len(blocks) == 0 {
		return Block{}
	}

	var rows [][]Block
	if t.cfg.seq == Row {
		rows = [][]Block{blocks}
	} else {
		rows = make([][]Block, len(blocks))
		for i, b := range blocks {
			rows[i] = []Block{b}
		}
	}
	return newGrid(rows, t.cfg).Render()
}

func (t *Table) renderMap(entries []Entry, depth int) Block {
	if len(entries) == 0 {
		return Block{}
	}

	var rows [][]Block
	if t.cfg.mapping == Row {
		keys := make([]Block, len(entries))
		values := make([]Block, len(entries))
		for i, e := range entries {
			keys[i] = t.cellBlock(e.Key)
			values[i] = t.renderValue(e.Value, depth+1)
		}
		rows = [][]Block{keys, values}
	} else {
		rows = make([][]Block, len(entries))
		for i, e := range entries {
			rows[i] = []Block{t.cellBlock(e.Key), t.renderValue(e.Value, depth+1)}
		}
	}
	return newGrid(rows, t.cfg).Render()
}

func (t *Table) cellBlock(text string) Block {
	if t.cfg.tabSize > 0 && strings.Contains(text, "\t") {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", t.cfg.tabSize))
	}
	return NewCell(text, t.cfg.measurer).Block()
}
