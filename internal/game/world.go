package game

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"maze-raycaster/assets"
	"maze-raycaster/internal/config"
	"maze-raycaster/internal/generate"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/texture"
)

// LoadLevel returns the level the config asks for: a generated maze, a maze
// file, or the embedded default.
func LoadLevel(cfg *config.Config, log zerolog.Logger) (*maze.Level, error) {
	switch {
	case cfg.Generate:
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		lvl, err := generate.Generate(generate.DefaultConfig(cfg.MazeWidth, cfg.MazeHeight, seed))
		if err != nil {
			return nil, fmt.Errorf("generate maze: %w", err)
		}
		log.Info().Int64("seed", seed).Int("width", cfg.MazeWidth).Int("height", cfg.MazeHeight).Msg("maze generated")
		return lvl, nil
	case cfg.Maze != "":
		lvl, err := maze.Load(cfg.Maze)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Maze).Msg("maze loaded")
		return lvl, nil
	}
	return assets.DefaultLevel()
}

// LoadAtlas starts from the built-in textures and replaces any the config
// names with files, loaded concurrently.
func LoadAtlas(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*texture.Atlas, error) {
	a := assets.DefaultAtlas()
	m := cfg.Manifest()
	if len(m.Walls) == 0 && len(m.Sprites) == 0 {
		return a, nil
	}
	if err := texture.LoadInto(ctx, a, m); err != nil {
		return nil, err
	}
	log.Info().Int("walls", len(m.Walls)).Int("sprites", len(m.Sprites)).Msg("textures loaded")
	return a, nil
}
