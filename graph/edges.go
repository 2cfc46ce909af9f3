package graph

import (
	"go.uber.org/zap"
)

// AddEdges indexes each (l, r) pair under both of its endpoints.
// Batches are processed in array order; a pair that is already
// indexed is skipped, so inserting the same batch twice yields the
// same index. Readers holding previously returned slices never
// observe the mutation (incident lists are copy-on-write).
func (g *Graph) AddEdges(edges []Edge) {
	added := 0
	for _, e := range edges {
		if g.hasExactPair(e) {
			continue
		}
		g.insertAt(e.Left, e)
		if e.Right != e.Left {
			g.insertAt(e.Right, e)
		}
		added++
	}
	if g.debug && added > 0 {
		g.logger.Debug("Added active edges",
			zap.Int("requested", len(edges)),
			zap.Int("added", added))
	}
}

// RemoveEdges drops each exact (l, r) pair from both endpoint lists.
// Only the literally requested pair is removed; other edges sharing
// an endpoint stay indexed. A pair that is not indexed is a no-op.
// Connectivity-cache entries keyed by either endpoint of a removed
// pair are invalidated.
func (g *Graph) RemoveEdges(edges []Edge) {
	removed := 0
	for _, e := range edges {
		found := g.deleteAt(e.Left, e)
		if e.Right != e.Left {
			found = g.deleteAt(e.Right, e) || found
		}
		if !found {
			continue
		}
		delete(g.connections, e.Left)
		delete(g.connections, e.Right)
		removed++
	}
	if g.debug && removed > 0 {
		g.logger.Debug("Removed active edges",
			zap.Int("requested", len(edges)),
			zap.Int("removed", removed))
	}
}

// HasEdge reports whether the exact pair is indexed, in either stored
// orientation, under either endpoint's list.
func (g *Graph) HasEdge(e Edge) bool {
	for _, cur := range g.index[e.Left] {
		if cur == e || (cur.Left == e.Right && cur.Right == e.Left) {
			return true
		}
	}
	for _, cur := range g.index[e.Right] {
		if cur == e || (cur.Left == e.Right && cur.Right == e.Left) {
			return true
		}
	}
	return false
}

// HasEdgeAtConnector reports whether the connector has at least one
// incident edge, regardless of which partner it is paired with.
func (g *Graph) HasEdgeAtConnector(id string) bool {
	return len(g.index[id]) > 0
}

// EdgesAt returns a copy of the edges incident to the connector, in
// insertion order. An unknown connector yields nil.
func (g *Graph) EdgesAt(id string) []Edge {
	edges, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// hasExactPair checks for the pair in its stored orientation only.
// The bidirectional invariant makes checking one endpoint sufficient.
func (g *Graph) hasExactPair(e Edge) bool {
	for _, cur := range g.index[e.Left] {
		if cur == e {
			return true
		}
	}
	return false
}

// insertAt appends the edge to one endpoint's list on a fresh slice,
// leaving any previously handed-out snapshot untouched.
func (g *Graph) insertAt(key string, e Edge) {
	prev := g.index[key]
	next := make([]Edge, len(prev), len(prev)+1)
	copy(next, prev)
	g.index[key] = append(next, e)
}

// deleteAt removes the exact pair from one endpoint's list, again on
// a fresh slice. Returns whether the pair was present.
func (g *Graph) deleteAt(key string, e Edge) bool {
	prev, ok := g.index[key]
	if !ok {
		return false
	}
	kept := make([]Edge, 0, len(prev))
	found := false
	for _, cur := range prev {
		if cur == e {
			found = true
			continue
		}
		kept = append(kept, cur)
	}
	if !found {
		return false
	}
	if len(kept) == 0 {
		delete(g.index, key)
	} else {
		g.index[key] = kept
	}
	return true
}
