package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lineage-engine/errors"
)

func TestIDDeterministic(t *testing.T) {
	c := Connector{Side: SideLeft, Model: "orders", Column: "customer_id"}
	require.Equal(t, c.ID(), c.ID())
	require.Equal(t, c.ID(), ID(SideLeft, "orders", "customer_id"))
	require.Equal(t, c.UUID(), c.UUID())
}

func TestIDNoCollisions(t *testing.T) {
	// Triples that a naive separator join would conflate.
	triples := []Connector{
		{SideLeft, "orders", "customer_id"},
		{SideRight, "orders", "customer_id"},
		{SideLeft, "orders", "Customer_ID"},
		{SideLeft, "a:b", "c"},
		{SideLeft, "a", "b:c"},
		{SideLeft, `a"`, "b"},
		{SideLeft, "a", `"b`},
		{SideLeft, "a:", ":c"},
		{SideLeft, "", "col"},
		{SideLeft, "model", ""},
		{SideRight, "model", ""},
	}

	seen := make(map[string]Connector, len(triples))
	for _, c := range triples {
		id := c.ID()
		prev, dup := seen[id]
		require.False(t, dup, "collision between %+v and %+v", prev, c)
		seen[id] = c
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Connector
	}{
		{name: "plain", c: Connector{SideLeft, "orders", "customer_id"}},
		{name: "right_side", c: Connector{SideRight, "db.schema.orders", "total"}},
		{name: "separator_in_model", c: Connector{SideLeft, "a:b", "c"}},
		{name: "quote_in_column", c: Connector{SideLeft, "a", `b"c`}},
		{name: "empty_column", c: Connector{SideLeft, "m", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.c.ID())
			require.NoError(t, err)
			assert.Equal(t, tt.c, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want error
	}{
		{name: "empty", id: "", want: apperrors.ErrMalformedConnector},
		{name: "unquoted", id: "left:orders:id", want: apperrors.ErrMalformedConnector},
		{name: "missing_part", id: `"left":"orders"`, want: apperrors.ErrMalformedConnector},
		{name: "trailing_garbage", id: Connector{SideLeft, "m", "c"}.ID() + "x", want: apperrors.ErrMalformedConnector},
		{name: "bad_side", id: Connector{Side("up"), "m", "c"}.ID(), want: apperrors.ErrUnknownSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.id)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUUIDDistinguishesSides(t *testing.T) {
	left := Connector{SideLeft, "orders", "id"}.UUID()
	right := Connector{SideRight, "orders", "id"}.UUID()
	assert.NotEqual(t, left, right)
}

func TestCacheMatchesDirectEncode(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	triples := []Connector{
		{SideLeft, "a", "x"},
		{SideRight, "a", "x"},
		{SideLeft, "b", "y"}, // evicts the oldest entry
	}

	for _, c := range triples {
		require.Equal(t, c.ID(), cache.ID(c.Side, c.Model, c.Column))
	}
	// Evicted entries are re-encoded transparently.
	require.Equal(t, triples[0].ID(), cache.ID(SideLeft, "a", "x"))
	assert.LessOrEqual(t, cache.Len(), 2)
}

func TestCacheRejectsNonPositiveSize(t *testing.T) {
	_, err := NewCache(0)
	require.Error(t, err)
}
