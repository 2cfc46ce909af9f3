package graph

import (
	"go.uber.org/zap"
)

// SetConnections adopts the analyzer's connectivity output wholesale,
// replacing any previously cached entries. Keys are node or connector
// IDs. The input is copied; later mutation by the caller is invisible
// to the graph.
func (g *Graph) SetConnections(conns map[string]Connections) {
	next := make(map[string]Connections, len(conns))
	for key, c := range conns {
		next[key] = Connections{
			Left:  append([]string(nil), c.Left...),
			Right: append([]string(nil), c.Right...),
		}
	}
	g.connections = next
	if g.debug {
		g.logger.Debug("Adopted connectivity cache", zap.Int("entries", len(next)))
	}
}

// ConnectionsFor answers "what is this key wired to" from the cache.
// An absent key yields a zero value and false, never an error; the
// rendering layer treats unknown keys as simply not connected.
func (g *Graph) ConnectionsFor(key string) (Connections, bool) {
	c, ok := g.connections[key]
	if !ok {
		return Connections{}, false
	}
	return Connections{
		Left:  append([]string(nil), c.Left...),
		Right: append([]string(nil), c.Right...),
	}, true
}
