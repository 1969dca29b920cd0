package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator(t *testing.T) {
	t.Run("rejects out of range node", func(t *testing.T) {
		_, err := NewSnowflakeGenerator(4096)
		assert.Error(t, err)
	})

	t.Run("ids are unique", func(t *testing.T) {
		g, err := NewSnowflakeGenerator(1)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			id := g.SessionID()
			require.NotEmpty(t, id)
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	})
}
