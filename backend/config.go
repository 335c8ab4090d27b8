package main

import (
	"sync"

	"github.com/TheKrainBow/connect4/engine"
)

type ConfigStore struct {
	mu     sync.RWMutex
	config engine.Config
}

func NewConfigStore(config engine.Config) *ConfigStore {
	return &ConfigStore{config: config}
}

func (c *ConfigStore) Get() engine.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// Update replaces the current config once it validates.
func (c *ConfigStore) Update(newConfig engine.Config) error {
	if err := newConfig.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
	return nil
}
