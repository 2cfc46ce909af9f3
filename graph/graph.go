package graph

import (
	"go.uber.org/zap"
)

// Edge is one active column-level dependency currently being traced.
// Left and Right are connector IDs; the orientation they were added
// with is preserved for exact-match queries, while indexing treats
// the pair symmetrically.
type Edge struct {
	Left  string
	Right string
}

// Connections lists what a node or connector is wired to on each
// side. The analyzer produces these off the interactive path; the
// graph only caches and invalidates them.
type Connections struct {
	Left  []string
	Right []string
}

// Graph indexes the currently active edges bidirectionally so the
// rendering layer can answer "is this connector part of any trace"
// without scanning the full edge set on every pointer move.
//
// The graph is owned by a single interaction goroutine; mutations are
// turn-based and never overlap, so there is no internal locking.
type Graph struct {
	logger *zap.Logger
	debug  bool

	// index maps a connector ID to the edges incident to it. Every
	// edge (l, r) appears under both l and r.
	index map[string][]Edge

	// connections caches per-key incident-connector lists supplied by
	// the analyzer, keyed by node or connector ID.
	connections map[string]Connections
}

// New creates an empty graph. With debug enabled, every mutation is
// logged at Debug level.
func New(logger *zap.Logger, debug bool) *Graph {
	return &Graph{
		logger:      logger,
		debug:       debug,
		index:       make(map[string][]Edge),
		connections: make(map[string]Connections),
	}
}

// Reset drops all indexed edges and cached connections. Called on
// view teardown and when a fresh lineage generation arrives.
func (g *Graph) Reset() {
	g.index = make(map[string][]Edge)
	g.connections = make(map[string]Connections)
	if g.debug {
		g.logger.Debug("Reset active-edge index")
	}
}

// EdgeCount returns the number of distinct edges currently indexed.
func (g *Graph) EdgeCount() int {
	total := 0
	for key, edges := range g.index {
		for _, e := range edges {
			// Each edge appears under both endpoints; count it at its
			// left key only. Self-loops are stored once.
			if e.Left == key {
				total++
			}
		}
	}
	return total
}
