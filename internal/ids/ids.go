package ids

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Snowflake hands out hotspot ids. Ids from one node strictly increase, and the
// creation time is recovered from the id itself.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("ids.NewSnowflake: %w", err)
	}
	return &Snowflake{node: node}, nil
}

// Next returns a fresh id and its embedded timestamp in epoch milliseconds.
func (s *Snowflake) Next() (string, int64) {
	id := s.node.Generate()
	return id.String(), id.Time()
}
