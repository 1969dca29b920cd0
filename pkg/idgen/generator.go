package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out identifiers for browser tabs (listing sessions).
type Generator interface {
	SessionID() string
}

// SnowflakeGenerator implements Generator using Twitter Snowflake
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{
		node: node,
	}, nil
}

// SessionID returns a new unique id in base58, short enough for a header value.
func (g *SnowflakeGenerator) SessionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.node.Generate().Base58()
}
