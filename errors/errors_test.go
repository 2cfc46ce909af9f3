package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := WrapError(ErrMalformedConnector, "decoding hover target")
	require.Error(t, err)
	assert.True(t, IsMalformedConnector(err))
	assert.Contains(t, err.Error(), "decoding hover target")

	err = WrapErrorf(ErrNotFound, "model %q", "orders")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `model "orders"`)
}

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))
	assert.NoError(t, WrapErrorf(nil, "context %d", 1))
}
