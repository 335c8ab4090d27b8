package engine

import "fmt"

// MaxDepthCeiling bounds the look-ahead. The tree grows as 7^depth and the
// search cannot be cancelled, so deeper requests would hold a handler for
// minutes.
const MaxDepthCeiling = 8

type Config struct {
	MaxDepth       int  `json:"max_depth"`
	Side           Side `json:"side"`
	LogSearchStats bool `json:"log_search_stats"`
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:       6,
		Side:           SideA,
		LogSearchStats: false,
	}
}

func (c Config) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > MaxDepthCeiling {
		return fmt.Errorf("max depth %d not in [1,%d]: %w", c.MaxDepth, MaxDepthCeiling, ErrDepth)
	}
	if !c.Side.Valid() {
		return fmt.Errorf("side %d: %w", int8(c.Side), ErrSide)
	}
	return nil
}
