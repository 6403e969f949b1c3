// Package worldconfig loads runtime configuration for the wayfind
// binary from WAYFIND_* environment variables, with a .env file as an
// optional source. Every key has a usable default, so an empty
// environment yields a working configuration.
package worldconfig

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWidth         = "WAYFIND_WIDTH"
	EnvHeight        = "WAYFIND_HEIGHT"
	EnvMinNodes      = "WAYFIND_MIN_NODES"
	EnvSeed          = "WAYFIND_SEED"
	EnvBiomeScale    = "WAYFIND_BIOME_SCALE"
	EnvBiomeOctaves  = "WAYFIND_BIOME_OCTAVES"
	EnvMinRewards    = "WAYFIND_MIN_REWARDS"
	EnvRewardRadius  = "WAYFIND_REWARD_RADIUS"
	EnvMaxExpansions = "WAYFIND_MAX_EXPANSIONS"
	EnvReportDir     = "WAYFIND_REPORT_DIR"
)

// Config holds the application's configuration values.
type Config struct {
	Width         int     // World width in cells
	Height        int     // World height in cells
	MinNodes      int     // Passable-node floor before a retry
	Seed          int64   // Generation seed; 0 means pick from the clock
	BiomeScale    float64 // Base noise frequency
	BiomeOctaves  int     // Fractal noise layers
	MinRewards    int     // Lower bound on placed rewards
	RewardRadius  int     // Off-path reward proximity radius
	MaxExpansions int     // Search expansion ceiling
	ReportDir     string  // Directory for saved reports
}

// Default returns the built-in configuration used when no environment
// overrides are present.
func Default() Config {
	return Config{
		Width:         75,
		Height:        75,
		MinNodes:      1000,
		Seed:          0,
		BiomeScale:    0.1,
		BiomeOctaves:  4,
		MinRewards:    5,
		RewardRadius:  5,
		MaxExpansions: 10000,
		ReportDir:     "results",
	}
}

// Load reads the configuration from the environment, merging a .env
// file first if one is present. Unset keys keep their defaults;
// unparsable values are logged and ignored.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[wayfind] .env file could not be loaded: %v", err)
	}

	cfg := Default()
	cfg.Width = getEnvAsInt(EnvWidth, cfg.Width)
	cfg.Height = getEnvAsInt(EnvHeight, cfg.Height)
	cfg.MinNodes = getEnvAsInt(EnvMinNodes, cfg.MinNodes)
	cfg.Seed = getEnvAsInt64(EnvSeed, cfg.Seed)
	cfg.BiomeScale = getEnvAsFloat(EnvBiomeScale, cfg.BiomeScale)
	cfg.BiomeOctaves = getEnvAsInt(EnvBiomeOctaves, cfg.BiomeOctaves)
	cfg.MinRewards = getEnvAsInt(EnvMinRewards, cfg.MinRewards)
	cfg.RewardRadius = getEnvAsInt(EnvRewardRadius, cfg.RewardRadius)
	cfg.MaxExpansions = getEnvAsInt(EnvMaxExpansions, cfg.MaxExpansions)
	cfg.ReportDir = getEnvWithDefault(EnvReportDir, cfg.ReportDir)
	return cfg
}

// getEnvWithDefault retrieves an environment variable or returns the
// default if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer,
// keeping the default on absence or parse failure.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[wayfind] %s must be an integer, got %q; keeping %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// getEnvAsInt64 retrieves an environment variable as an int64,
// keeping the default on absence or parse failure.
func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("[wayfind] %s must be an integer, got %q; keeping %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// getEnvAsFloat retrieves an environment variable as a float64,
// keeping the default on absence or parse failure.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[wayfind] %s must be a number, got %q; keeping %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
