package engine

import (
	"sort"

	"lineage-engine/connector"
)

// IsActiveColumn reports whether either endpoint of (model, column)
// takes part in any active trace. The rendering layer polls this per
// column per frame, so both the connector encode (LRU) and the edge
// lookup (index) are O(1) amortized. Unknown models and columns are
// simply inactive.
func (e *Engine) IsActiveColumn(model, column string) bool {
	if e.graph.HasEdgeAtConnector(e.ids.ID(connector.SideLeft, model, column)) {
		return true
	}
	return e.graph.HasEdgeAtConnector(e.ids.ID(connector.SideRight, model, column))
}

// ConnectedNodes returns the sorted key set of the adopted analyzer
// adjacency. The result is memoized: it is recomputed only when a
// fresh snapshot is adopted, and repeated reads in between return the
// same instance. Callers must not mutate it.
func (e *Engine) ConnectedNodes() []string {
	if e.connectedNodesGen != e.connGen {
		keys := make([]string, 0, len(e.nodesConnections))
		for id := range e.nodesConnections {
			keys = append(keys, id)
		}
		sort.Strings(keys)
		e.connectedNodes = keys
		e.connectedNodesGen = e.connGen
	}
	return e.connectedNodes
}

// SelectedEdges flattens the precomputed incident lists of every
// selected node: selection insertion order first, then per-node
// incidence order. Memoized against both the selection and the
// adjacency snapshot; callers must not mutate the result. Selected
// nodes absent from the adjacency contribute nothing.
func (e *Engine) SelectedEdges() []string {
	if e.selectedEdgesConnGen != e.connGen || e.selectedEdgesSelGen != e.selGen {
		flat := make([]string, 0, len(e.selected))
		for _, id := range e.selected {
			flat = append(flat, e.nodesConnections[id]...)
		}
		e.selectedEdges = flat
		e.selectedEdgesConnGen = e.connGen
		e.selectedEdgesSelGen = e.selGen
	}
	return e.selectedEdges
}
