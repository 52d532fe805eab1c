// maze-raycaster plays the raycaster in the local terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"maze-raycaster/internal/config"
	"maze-raycaster/internal/game"
)

func main() {
	cfgFile := flag.String("config", "", "Path to a YAML config file")
	mazeFile := flag.String("maze", "", "Maze text file (overrides the config)")
	generate := flag.Bool("generate", false, "Play a generated maze")
	seed := flag.Int64("seed", 0, "Seed for -generate, 0 = random")
	flag.Parse()

	if err := run(*cfgFile, *mazeFile, *generate, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgFile, mazeFile string, generate bool, seed int64) error {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
	}
	applyFlags(cfg, mazeFile, generate, seed)

	log, closer, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	level, err := game.LoadLevel(cfg, log)
	if err != nil {
		return err
	}
	atlas, err := game.LoadAtlas(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	game.New(screen, game.Options{
		Config: cfg,
		Atlas:  atlas,
		Level:  level,
		Logger: log,
	}).Run()
	return nil
}

// applyFlags lays the command-line level choice over cfg. -maze replaces a
// generated maze from the config; -generate wins over both.
func applyFlags(cfg *config.Config, mazeFile string, generate bool, seed int64) {
	if mazeFile != "" {
		cfg.Maze = mazeFile
		cfg.Generate = false
	}
	if generate {
		cfg.Generate = true
		cfg.Seed = seed
	}
}
