package orderid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_NewOrderID_Shape(t *testing.T) {
	gen := NewGenerator()

	id, err := gen.NewOrderID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "ORD"), "id %q should start with ORD", id)
	// ORD + 13-digit unix millis + 9 random base36 characters.
	assert.Len(t, id, 3+13+9)

	for _, r := range id[3:] {
		assert.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(r))
	}
}

func TestGenerator_NewOrderID_Unique(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for range 1000 {
		id, err := gen.NewOrderID()
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
