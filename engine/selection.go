package engine

import (
	"go.uber.org/zap"
)

// SetSelectedNodes replaces the selection set wholesale. Membership
// is entirely the caller's decision; there is no per-node toggle.
// Insertion order is kept (it drives SelectedEdges ordering) and
// duplicates keep their first position. Selection never touches the
// edge index.
func (e *Engine) SetSelectedNodes(ids []string) {
	next := make([]string, 0, len(ids))
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if set[id] {
			continue
		}
		set[id] = true
		next = append(next, id)
	}
	e.selected = next
	e.selectedSet = set
	e.selGen++
	e.logger.Debug("Replaced node selection", zap.Int("selected", len(next)))
}

// SelectedNodes returns a copy of the selection in insertion order.
func (e *Engine) SelectedNodes() []string {
	return append([]string(nil), e.selected...)
}

// IsSelected reports whether the node is currently selected.
func (e *Engine) IsSelected(id string) bool {
	return e.selectedSet[id]
}

// SetHighlightedNodes replaces the highlight mapping wholesale. Tag
// order per node is preserved; downstream color assignment depends on
// it being stable.
func (e *Engine) SetHighlightedNodes(nodes map[string][]string) {
	next := make(map[string][]string, len(nodes))
	for id, tags := range nodes {
		next[id] = append([]string(nil), tags...)
	}
	e.highlighted = next
	e.logger.Debug("Replaced node highlights", zap.Int("highlighted", len(next)))
}

// HighlightedNodes returns a copy of the full highlight mapping.
func (e *Engine) HighlightedNodes() map[string][]string {
	out := make(map[string][]string, len(e.highlighted))
	for id, tags := range e.highlighted {
		out[id] = append([]string(nil), tags...)
	}
	return out
}

// HighlightTags returns the node's highlight tags in insertion order.
// Unhighlighted nodes yield nil.
func (e *Engine) HighlightTags(id string) []string {
	tags, ok := e.highlighted[id]
	if !ok {
		return nil
	}
	return append([]string(nil), tags...)
}

// SetManuallySelectedColumn records the explicitly chosen column used
// to seed a manual trace. At most one pair is held at a time.
func (e *Engine) SetManuallySelectedColumn(node, column string) {
	e.manualColumn = &ColumnSelection{Node: node, Column: column}
	e.logger.Debug("Set manually selected column",
		zap.String("node", node),
		zap.String("column", column))
}

// ClearManuallySelectedColumn drops the manual column selection.
func (e *Engine) ClearManuallySelectedColumn() {
	e.manualColumn = nil
}

// ManuallySelectedColumn returns the manual selection, if any.
func (e *Engine) ManuallySelectedColumn() (ColumnSelection, bool) {
	if e.manualColumn == nil {
		return ColumnSelection{}, false
	}
	return *e.manualColumn, true
}
