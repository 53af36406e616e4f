// Package config loads game settings from the environment (optionally via a
// .env file). Command-line flags in main override what is loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every tunable setting of a run.
type Config struct {
	Seed               int64 // 0 picks a time-based seed
	MapWidth           int
	MapHeight          int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	HealAmount         int
	FOVRadius          int
	InventoryWidth     int
	LogLevel           string
	LogFormat          string
	LogFile            string // empty discards logs
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MapWidth:           80,
		MapHeight:          43,
		MaxMonstersPerRoom: 3,
		MaxItemsPerRoom:    2,
		HealAmount:         4,
		FOVRadius:          10,
		InventoryWidth:     50,
		LogLevel:           "info",
		LogFormat:          "text",
		LogFile:            "glyph-delve.log",
	}
}

// Load reads settings from GLYPHDELVE_* environment variables, falling back
// to Default for anything unset.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	def := Default()
	cfg := &Config{
		LogLevel:  getEnv("GLYPHDELVE_LOG_LEVEL", def.LogLevel),
		LogFormat: getEnv("GLYPHDELVE_LOG_FORMAT", def.LogFormat),
		LogFile:   getEnv("GLYPHDELVE_LOG_FILE", def.LogFile),
	}

	seed, err := strconv.ParseInt(getEnv("GLYPHDELVE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GLYPHDELVE_SEED value: %w", err)
	}
	cfg.Seed = seed

	ints := []struct {
		key  string
		dst  *int
		dflt int
	}{
		{"GLYPHDELVE_MAP_WIDTH", &cfg.MapWidth, def.MapWidth},
		{"GLYPHDELVE_MAP_HEIGHT", &cfg.MapHeight, def.MapHeight},
		{"GLYPHDELVE_MAX_MONSTERS", &cfg.MaxMonstersPerRoom, def.MaxMonstersPerRoom},
		{"GLYPHDELVE_MAX_ITEMS", &cfg.MaxItemsPerRoom, def.MaxItemsPerRoom},
		{"GLYPHDELVE_HEAL_AMOUNT", &cfg.HealAmount, def.HealAmount},
		{"GLYPHDELVE_FOV_RADIUS", &cfg.FOVRadius, def.FOVRadius},
		{"GLYPHDELVE_INVENTORY_WIDTH", &cfg.InventoryWidth, def.InventoryWidth},
	}
	for _, v := range ints {
		n, err := strconv.Atoi(getEnv(v.key, strconv.Itoa(v.dflt)))
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", v.key, err)
		}
		*v.dst = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.MapWidth < 20 || c.MapHeight < 20 {
		errs = append(errs, fmt.Errorf("map must be at least 20x20, got %dx%d", c.MapWidth, c.MapHeight))
	}
	if c.MaxMonstersPerRoom < 0 || c.MaxItemsPerRoom < 0 {
		errs = append(errs, errors.New("per-room spawn limits must not be negative"))
	}
	if c.HealAmount < 1 {
		errs = append(errs, fmt.Errorf("heal amount must be positive, got %d", c.HealAmount))
	}
	if c.FOVRadius < 1 {
		errs = append(errs, fmt.Errorf("fov radius must be positive, got %d", c.FOVRadius))
	}
	if c.InventoryWidth < 10 {
		errs = append(errs, fmt.Errorf("inventory width must be at least 10, got %d", c.InventoryWidth))
	}
	return errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
