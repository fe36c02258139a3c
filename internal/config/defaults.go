package config

import (
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types"
	"github.com/spf13/viper"
)

// Codec modes accepted in [codec] mode
const (
	ModeStrict  = "strict"
	ModeLenient = "lenient"
)

// Log formats accepted in [log] format
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// MaxConfigurableDepth is the largest [codec] max_depth accepted
const MaxConfigurableDepth = 64

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("codec.mode", ModeStrict)
	v.SetDefault("codec.max_depth", types.DefaultMaxDepth)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", FormatConsole)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("batch.workers", 0) // 0 means one per CPU
	v.SetDefault("batch.cache_size", 1024)
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults always unmarshal cleanly
	_ = v.Unmarshal(&config)
	return &config
}
