package config

import (
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types"
	"go.uber.org/zap"
)

// Config represents the complete xrplcodec configuration
type Config struct {
	Codec CodecConfig `toml:"codec" mapstructure:"codec"`
	Log   LogConfig   `toml:"log" mapstructure:"log"`
	Batch BatchConfig `toml:"batch" mapstructure:"batch"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// CodecConfig controls how the binary codec treats unknown fields and nesting
type CodecConfig struct {
	// Mode is "strict" or "lenient"
	Mode     string `toml:"mode" mapstructure:"mode"`
	MaxDepth int    `toml:"max_depth" mapstructure:"max_depth"`
}

// LogConfig configures the zap logger built by internal/logging
type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
	// File enables a rotating file sink next to stderr when set
	File       string `toml:"file" mapstructure:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" mapstructure:"max_backups"`
}

// BatchConfig sizes the concurrent batch decoder
type BatchConfig struct {
	// Workers is the number of concurrent decodes; 0 means one per CPU
	Workers int `toml:"workers" mapstructure:"workers"`
	// CacheSize is the number of decoded blobs kept for deduplication; 0 disables the cache
	CacheSize int `toml:"cache_size" mapstructure:"cache_size"`
}

// GetConfigPath returns the path the configuration was read from, if any
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Lenient reports whether the codec should skip unknown fields
func (c CodecConfig) Lenient() bool {
	return c.Mode == ModeLenient
}

// Options converts the codec section into codec options using logger
func (c CodecConfig) Options(logger *zap.Logger) types.Options {
	mode := types.ModeStrict
	if c.Lenient() {
		mode = types.ModeLenient
	}
	return types.Options{
		Mode:     mode,
		MaxDepth: c.MaxDepth,
		Logger:   logger,
	}
}
