package scanf

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	cacheSize int
	strict    bool
	logger    *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		cacheSize: DefaultCacheSize,
		strict:    false,
		logger:    nil,
	}
}

// WithCacheSize sets the compiled-pattern cache capacity.
// Default: 128
func WithCacheSize(size int) Option {
	return func(c *engineConfig) {
		if size > 0 {
			c.cacheSize = size
		}
	}
}

// WithStrictFormats makes compilation reject formats containing a %
// that does not begin a recognized directive or %% escape. The
// default, permissive grammar lets such text match itself literally.
func WithStrictFormats(strict bool) Option {
	return func(c *engineConfig) {
		c.strict = strict
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
