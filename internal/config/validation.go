package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := config.Codec.Validate(); err != nil {
		return fmt.Errorf("codec validation failed: %w", err)
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}
	if err := config.Batch.Validate(); err != nil {
		return fmt.Errorf("batch validation failed: %w", err)
	}
	return nil
}

// Validate checks the [codec] section
func (c *CodecConfig) Validate() error {
	c.Mode = strings.ToLower(c.Mode)
	if c.Mode != ModeStrict && c.Mode != ModeLenient {
		return fmt.Errorf("%w: mode must be %q or %q, got %q", ErrInvalidConfig, ModeStrict, ModeLenient, c.Mode)
	}
	if c.MaxDepth < 1 || c.MaxDepth > MaxConfigurableDepth {
		return fmt.Errorf("%w: max_depth must be between 1 and %d, got %d", ErrInvalidConfig, MaxConfigurableDepth, c.MaxDepth)
	}
	return nil
}

// Validate checks the [log] section
func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		l.Level = strings.ToLower(l.Level)
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, l.Level)
	}

	if l.Format != FormatConsole && l.Format != FormatJSON {
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatConsole, FormatJSON, l.Format)
	}

	if l.File != "" {
		if l.MaxSizeMB <= 0 {
			return fmt.Errorf("%w: max_size_mb must be positive when a log file is set", ErrInvalidConfig)
		}
		if l.MaxBackups < 0 {
			return fmt.Errorf("%w: max_backups cannot be negative", ErrInvalidConfig)
		}
	}
	return nil
}

// Validate checks the [batch] section
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative", ErrInvalidConfig)
	}
	if b.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size cannot be negative", ErrInvalidConfig)
	}
	return nil
}
