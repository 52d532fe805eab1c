package main

import (
	"testing"

	"maze-raycaster/internal/config"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name         string
		cfgGenerate  bool
		maze         string
		generate     bool
		wantGenerate bool
		wantMaze     string
	}{
		{"no flags keeps config", true, "", false, true, ""},
		{"maze overrides generated config", true, "level.txt", false, false, "level.txt"},
		{"maze over file config", false, "level.txt", false, false, "level.txt"},
		{"generate flag wins", false, "level.txt", true, true, "level.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Generate = tt.cfgGenerate
			applyFlags(cfg, tt.maze, tt.generate, 7)
			if cfg.Generate != tt.wantGenerate {
				t.Errorf("Generate = %v, want %v", cfg.Generate, tt.wantGenerate)
			}
			if cfg.Maze != tt.wantMaze {
				t.Errorf("Maze = %q, want %q", cfg.Maze, tt.wantMaze)
			}
			if tt.generate && cfg.Seed != 7 {
				t.Errorf("Seed = %d, want 7", cfg.Seed)
			}
		})
	}
}
