package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the engine's tunable settings
type Config struct {
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	ConnectorCacheSize int    `mapstructure:"CONNECTOR_CACHE_SIZE"`
	TraceMaxHops       int    `mapstructure:"TRACE_MAX_HOPS"`
	GraphDebug         bool   `mapstructure:"GRAPH_DEBUG"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CONNECTOR_CACHE_SIZE", 4096)
	viper.SetDefault("TRACE_MAX_HOPS", 0) // 0 = unbounded
	viper.SetDefault("GRAPH_DEBUG", false)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			// Fallback if logger not available (should not happen in practice)
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// The connector cache sits on the hover path; a non-positive size
	// would disable memoization entirely, so fall back to the default.
	if config.ConnectorCacheSize <= 0 {
		if logger != nil {
			logger.Warn("Invalid CONNECTOR_CACHE_SIZE, using default",
				zap.Int("requested", config.ConnectorCacheSize))
		}
		config.ConnectorCacheSize = 4096
	}
	if config.TraceMaxHops < 0 {
		config.TraceMaxHops = 0
	}

	return &config
}
