// Package config loads the settings shared by the silabas programs.
package config

import (
	"strings"
	"time"

	"github.com/az-ai-labs/silabas/syllable"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Index  IndexConfig  `yaml:"index"`
	Rhyme  RhymeConfig  `yaml:"rhyme"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IndexConfig holds rhyme index settings.
// An empty Path disables the index endpoints.
type IndexConfig struct {
	Path         string `yaml:"path"          env:"INDEX_PATH"`
	Seed         bool   `yaml:"seed"          env:"INDEX_SEED"          env-default:"false"`
	Workers      int    `yaml:"workers"       env:"INDEX_WORKERS"       env-default:"4"`
	BatchSize    int    `yaml:"batch_size"    env:"INDEX_BATCH_SIZE"    env-default:"500"`
	DefaultLimit int    `yaml:"default_limit" env:"INDEX_DEFAULT_LIMIT" env-default:"20"`
	MaxLimit     int    `yaml:"max_limit"     env:"INDEX_MAX_LIMIT"     env-default:"200"`
}

// RhymeConfig holds the default rhyme options used when a request does not
// set them.
type RhymeConfig struct {
	Seseo    bool `yaml:"seseo"      env:"RHYME_SESEO"      env-default:"false"`
	Yeismo   bool `yaml:"yeismo"     env:"RHYME_YEISMO"     env-default:"true"`
	BEqualsV bool `yaml:"b_equals_v" env:"RHYME_B_EQUALS_V" env-default:"true"`
}

// Options converts the configuration to syllable.RhymeOptions.
func (c RhymeConfig) Options() syllable.RhymeOptions {
	return syllable.RhymeOptions{Seseo: c.Seseo, Yeismo: c.Yeismo, BEqualsV: c.BEqualsV}
}

// CORSConfig holds CORS settings. List values are comma separated.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns AllowedOrigins split on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns AllowedMethods split on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns AllowedHeaders split on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
