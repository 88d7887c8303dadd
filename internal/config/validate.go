package config

import (
	"fmt"
	"strings"

	"github.com/az-ai-labs/silabas/rhymeindex"
)

// Validate performs range checks on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be > 0")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Index.validate(); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must be >= 0 (got %d)", c.CORS.MaxAge)
	}
	return nil
}

func (i *IndexConfig) validate() error {
	if i.Workers < 1 || i.Workers > 256 {
		return fmt.Errorf("workers must be in 1..256 (got %d)", i.Workers)
	}
	if i.BatchSize < 1 || i.BatchSize > rhymeindex.MaxBatchSize {
		return fmt.Errorf("batch_size must be in 1..%d (got %d)", rhymeindex.MaxBatchSize, i.BatchSize)
	}
	if i.MaxLimit < 1 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", i.MaxLimit)
	}
	if i.DefaultLimit < 1 || i.DefaultLimit > i.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..max_limit (got %d)", i.DefaultLimit)
	}
	if i.Seed && i.Path == "" {
		return fmt.Errorf("seed requires path")
	}
	return nil
}
