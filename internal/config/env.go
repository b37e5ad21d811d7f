package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/olivierh59500/netpulse-go/internal/logger"
)

// Environment variables that override the config file.
const (
	EnvGridSize   = "NETPULSE_GRID_SIZE"
	EnvNodeColor  = "NETPULSE_NODE_COLOR"
	EnvIntensity  = "NETPULSE_INTENSITY"
	EnvAnimate    = "NETPULSE_ANIMATE"
	EnvSeed       = "NETPULSE_SEED"
	EnvBackground = "NETPULSE_BACKGROUND"
	EnvDebug      = "NETPULSE_DEBUG"
)

// LoadEnv loads .env files (./.env when none are given) into the process
// environment without overriding variables that are already set.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// ApplyEnv overlays NETPULSE_* variables onto cfg.
func ApplyEnv(cfg *Config) {
	cfg.Engine.GridSize = envFloat(EnvGridSize, cfg.Engine.GridSize)
	cfg.Engine.NodeColor = envString(EnvNodeColor, cfg.Engine.NodeColor)
	cfg.Engine.Intensity = envFloat(EnvIntensity, cfg.Engine.Intensity)
	cfg.Engine.Animate = envBool(EnvAnimate, cfg.Engine.Animate)
	cfg.Engine.Seed = envInt(EnvSeed, cfg.Engine.Seed)
	cfg.Engine.Background = envString(EnvBackground, cfg.Engine.Background)
	cfg.Log.Debug = envBool(EnvDebug, cfg.Log.Debug)
}

// envString returns the value of key, or defaultValue when it is unset.
func envString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// envFloat parses key as a float, falling back to defaultValue when it is
// unset or malformed.
func envFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// envInt parses key as a base-10 int64.
func envInt(key string, defaultValue int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return i
}

// envBool accepts only "true" and "false"; anything else keeps
// defaultValue.
func envBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return defaultValue
}
