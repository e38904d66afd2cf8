package config

import "sync/atomic"

// Live holds the current Config for readers on many goroutines while a
// watcher swaps in reloaded versions.
type Live struct {
	current atomic.Pointer[Config]
}

// NewLive returns a Live seeded with c, or with defaults when c is nil.
func NewLive(c *Config) *Live {
	if c == nil {
		c = DefaultConfig()
	}
	l := &Live{}
	l.current.Store(c)
	return l
}

// Load returns the current Config. Callers must not modify it.
func (l *Live) Load() *Config {
	return l.current.Load()
}

// Store replaces the current Config.
func (l *Live) Store(c *Config) {
	if c != nil {
		l.current.Store(c)
	}
}
