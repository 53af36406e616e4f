package main

import (
	"flag"
	"fmt"
	"os"

	"glyph-delve/internal/config"
	"glyph-delve/internal/game"
	"glyph-delve/internal/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "dungeon seed (0 = random)")
	flag.IntVar(&cfg.MapWidth, "width", cfg.MapWidth, "map width in tiles")
	flag.IntVar(&cfg.MapHeight, "height", cfg.MapHeight, "map height in tiles")
	flag.IntVar(&cfg.MaxMonstersPerRoom, "monsters", cfg.MaxMonstersPerRoom, "maximum monsters per room")
	flag.IntVar(&cfg.MaxItemsPerRoom, "items", cfg.MaxItemsPerRoom, "maximum items per room")
	flag.IntVar(&cfg.HealAmount, "heal", cfg.HealAmount, "hit points restored by a healing potion")
	flag.IntVar(&cfg.FOVRadius, "fov", cfg.FOVRadius, "sight radius in tiles")
	flag.IntVar(&cfg.InventoryWidth, "inventory-width", cfg.InventoryWidth, "inventory menu width in columns")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path (empty disables logging)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log, closeLog, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game.New(screen, cfg, log).Run()
	return nil
}
