package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lineage-engine/catalog"
	"lineage-engine/config"
	"lineage-engine/connector"
	apperrors "lineage-engine/errors"
	"lineage-engine/graph"
)

// ColumnSelection is the one explicitly chosen (node, column) pair
// used to seed a manual trace.
type ColumnSelection struct {
	Node   string
	Column string
}

// Engine owns the live interaction state of the lineage view: the
// active-edge index, the current selection, highlight tags, and the
// derived views the rendering layer polls on every repaint.
//
// All mutations are driven synchronously by interaction events on a
// single goroutine; the engine is not safe for concurrent use. Every
// container it returns is either a copy or a memoized instance the
// caller must treat as read-only.
type Engine struct {
	cfg     *config.Config
	logger  *zap.Logger
	session uuid.UUID

	graph   *graph.Graph
	catalog *catalog.Catalog
	ids     *connector.Cache

	// Interaction overlays. Selection order is meaningful: it drives
	// the ordering of SelectedEdges.
	selected     []string
	selectedSet  map[string]bool
	highlighted  map[string][]string
	manualColumn *ColumnSelection

	// Analyzer output, adopted wholesale. connGen/selGen stand in for
	// reference identity: derived views recompute only when the
	// generation they were computed at is stale.
	nodesConnections map[string][]string
	connGen          uint64
	selGen           uint64

	connectedNodes    []string
	connectedNodesGen uint64

	selectedEdges        []string
	selectedEdgesConnGen uint64
	selectedEdgesSelGen  uint64
}

// New creates an engine with empty interaction state. The catalog is
// the external model registry; the engine only reads it.
func New(cfg *config.Config, cat *catalog.Catalog, logger *zap.Logger) (*Engine, error) {
	ids, err := connector.NewCache(cfg.ConnectorCacheSize)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to initialize engine")
	}

	e := &Engine{
		cfg:              cfg,
		logger:           logger,
		session:          uuid.New(),
		graph:            graph.New(logger, cfg.GraphDebug),
		catalog:          cat,
		ids:              ids,
		selectedSet:      make(map[string]bool),
		highlighted:      make(map[string][]string),
		nodesConnections: make(map[string][]string),
		connGen:          1,
		selGen:           1,
	}

	logger.Info("Lineage engine initialized",
		zap.String("session", e.session.String()),
		zap.Int("connector_cache_size", cfg.ConnectorCacheSize))

	return e, nil
}

// Session returns the engine instance's correlation ID.
func (e *Engine) Session() uuid.UUID {
	return e.session
}

// Catalog exposes the external model registry the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// AddActiveEdges indexes a batch of hovered/traced column edges.
func (e *Engine) AddActiveEdges(edges []graph.Edge) {
	e.graph.AddEdges(edges)
}

// RemoveActiveEdges drops a batch of exact edge pairs from the index
// and invalidates the touched connectivity-cache entries.
func (e *Engine) RemoveActiveEdges(edges []graph.Edge) {
	e.graph.RemoveEdges(edges)
}

// HasEdge reports whether the exact pair is currently highlighted.
func (e *Engine) HasEdge(edge graph.Edge) bool {
	return e.graph.HasEdge(edge)
}

// HasEdgeAtConnector reports whether one column endpoint is part of
// any active trace.
func (e *Engine) HasEdgeAtConnector(id string) bool {
	return e.graph.HasEdgeAtConnector(id)
}

// EdgesAt returns a copy of the edges incident to a connector.
func (e *Engine) EdgesAt(id string) []graph.Edge {
	return e.graph.EdgesAt(id)
}

// SetConnections adopts the analyzer's per-endpoint connectivity
// cache wholesale.
func (e *Engine) SetConnections(conns map[string]graph.Connections) {
	e.graph.SetConnections(conns)
}

// ConnectionsFor answers "what is this node or connector wired to"
// from the connectivity cache.
func (e *Engine) ConnectionsFor(key string) (graph.Connections, bool) {
	return e.graph.ConnectionsFor(key)
}

// SetNodesConnections adopts a fresh analyzer adjacency snapshot.
// Derived views depending on it recompute on their next read.
func (e *Engine) SetNodesConnections(nodes map[string][]string) {
	next := make(map[string][]string, len(nodes))
	for id, conns := range nodes {
		next[id] = append([]string(nil), conns...)
	}
	e.nodesConnections = next
	e.connGen++
	e.logger.Debug("Adopted analyzer connections",
		zap.String("session", e.session.String()),
		zap.Int("nodes", len(next)))
}

// Reset clears all interaction state for view teardown, keeping the
// catalog reference.
func (e *Engine) Reset() {
	e.graph.Reset()
	e.selected = nil
	e.selectedSet = make(map[string]bool)
	e.highlighted = make(map[string][]string)
	e.manualColumn = nil
	e.nodesConnections = make(map[string][]string)
	e.connGen++
	e.selGen++
	e.logger.Debug("Engine state reset", zap.String("session", e.session.String()))
}
