package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lineage-engine/catalog"
	"lineage-engine/config"
)

// A -> B -> C -> D chain plus a branch B -> E.
func chainEngine(t *testing.T, maxHops int) *Engine {
	t.Helper()
	cfg := &config.Config{ConnectorCacheSize: 64, TraceMaxHops: maxHops}
	e, err := New(cfg, catalog.New(nil), zap.NewNop())
	require.NoError(t, err)
	e.SetNodesConnections(map[string][]string{
		"A": {"B"},
		"B": {"C", "E"},
		"C": {"D"},
		"D": {},
		"E": {},
	})
	return e
}

func TestTraceUnbounded(t *testing.T) {
	e := chainEngine(t, 0)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, e.Trace("A", 0))
}

func TestTraceHopBound(t *testing.T) {
	e := chainEngine(t, 0)

	tests := []struct {
		name    string
		focal   string
		maxHops int
		want    []string
	}{
		{name: "one_hop", focal: "A", maxHops: 1, want: []string{"A", "B"}},
		{name: "two_hops", focal: "A", maxHops: 2, want: []string{"A", "B", "C", "E"}},
		{name: "mid_chain", focal: "B", maxHops: 1, want: []string{"B", "C", "E"}},
		{name: "leaf", focal: "D", maxHops: 3, want: []string{"D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Trace(tt.focal, tt.maxHops))
		})
	}
}

func TestTraceUsesConfiguredDefault(t *testing.T) {
	e := chainEngine(t, 1)
	assert.Equal(t, []string{"A", "B"}, e.Trace("A", 0))
}

func TestTraceUnknownFocal(t *testing.T) {
	e := chainEngine(t, 0)
	assert.Nil(t, e.Trace("Z", 2))
}

func TestTraceToleratesCycles(t *testing.T) {
	e := chainEngine(t, 0)
	e.SetNodesConnections(map[string][]string{
		"A": {"B"},
		"B": {"A", "C"},
		"C": {"A"},
	})
	assert.Equal(t, []string{"A", "B", "C"}, e.Trace("A", 0))
}
