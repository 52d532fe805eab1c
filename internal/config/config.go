// Package config loads the YAML file that exposes every renderer and game
// tunable. Missing keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/render"
	"maze-raycaster/internal/texture"
)

// ErrInvalid is returned for values the renderer cannot work with.
var ErrInvalid = errors.New("invalid config")

// EnemySprite is the atlas name enemies are drawn with.
const EnemySprite = "enemy"

// Config holds every tunable. Angles are in degrees; the accessors convert.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	FOVDegrees         float64 `yaml:"fov_degrees"`
	Step               float64 `yaml:"step"`
	ProjectionConstant float64 `yaml:"projection_constant"`
	CellSize           float64 `yaml:"cell_size"`
	ViewRays           int     `yaml:"view_rays"`
	SideShade          float64 `yaml:"side_shade"`

	SpriteScale        float64 `yaml:"sprite_scale"`
	MinSpriteDistance  float64 `yaml:"min_sprite_distance"`
	BehindLimitDegrees float64 `yaml:"behind_limit_degrees"`
	TransparentKey     Color   `yaml:"transparent_key"`

	// SpriteSpreadByWidth places sprites using width/fov instead of
	// height/fov pixels per radian.
	SpriteSpreadByWidth bool `yaml:"sprite_spread_by_width"`

	MinimapRays  int     `yaml:"minimap_rays"`
	MinimapStep  float64 `yaml:"minimap_step"`
	MinimapScale int     `yaml:"minimap_scale"`

	MoveSpeed     float64 `yaml:"move_speed"`
	RotateDegrees float64 `yaml:"rotate_degrees"`

	// MouseSensitivity is radians of turn per terminal column of pointer
	// movement. 0 leaves the mouse disabled.
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`

	SkyColor        Color `yaml:"sky_color"`
	FloorColor      Color `yaml:"floor_color"`
	BackgroundColor Color `yaml:"background_color"`

	// Maze is a maze text file; empty means the embedded default.
	Maze string `yaml:"maze"`
	// Generate replaces the maze file with a generated maze.
	Generate   bool  `yaml:"generate"`
	MazeWidth  int   `yaml:"maze_width"`
	MazeHeight int   `yaml:"maze_height"`
	Seed       int64 `yaml:"seed"`

	// Textures maps a wall cell character to an image file.
	Textures map[string]string `yaml:"textures"`
	Sprite   string            `yaml:"sprite"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:              320,
		Height:             200,
		FOVDegrees:         60,
		Step:               1,
		ProjectionConstant: 70,
		CellSize:           100,
		SideShade:          0.25,
		SpriteScale:        70,
		MinSpriteDistance:  10,
		BehindLimitDegrees: 90,
		TransparentKey:     0x980088,
		MinimapRays:        5,
		MinimapStep:        10,
		MinimapScale:       8,
		MoveSpeed:          10,
		RotateDegrees:      9,
		MouseSensitivity:   0.04,
		SkyColor:           0x87CEEB,
		FloorColor:         0x3D3D3D,
		BackgroundColor:    0x333355,
		MazeWidth:          41,
		MazeHeight:         25,
		LogLevel:           "info",
	}
}

// Load reads path over the defaults and validates the result. Relative asset
// paths are resolved against the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.resolve(filepath.Dir(path))
	return c, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Maze = abs(c.Maze)
	c.Sprite = abs(c.Sprite)
	c.LogFile = abs(c.LogFile)
	for k, p := range c.Textures {
		c.Textures[k] = abs(p)
	}
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FOVDegrees <= 0 || c.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v not in (0, 180)", ErrInvalid, c.FOVDegrees)
	case c.Step <= 0:
		return fmt.Errorf("%w: step %v", ErrInvalid, c.Step)
	case c.MinimapStep <= 0:
		return fmt.Errorf("%w: minimap_step %v", ErrInvalid, c.MinimapStep)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %v", ErrInvalid, c.CellSize)
	case c.ProjectionConstant <= 0 || c.SpriteScale <= 0:
		return fmt.Errorf("%w: projection_constant and sprite_scale must be positive", ErrInvalid)
	case c.MinimapScale <= 0:
		return fmt.Errorf("%w: minimap_scale %d", ErrInvalid, c.MinimapScale)
	case c.ViewRays < 0 || c.MinimapRays < 0:
		return fmt.Errorf("%w: ray counts must not be negative", ErrInvalid)
	case c.SideShade < 0 || c.SideShade > 1:
		return fmt.Errorf("%w: side_shade %v not in [0, 1]", ErrInvalid, c.SideShade)
	case c.BehindLimitDegrees <= 0 || c.BehindLimitDegrees > 180:
		return fmt.Errorf("%w: behind_limit_degrees %v not in (0, 180]", ErrInvalid, c.BehindLimitDegrees)
	case c.MoveSpeed <= 0:
		return fmt.Errorf("%w: move_speed %v", ErrInvalid, c.MoveSpeed)
	case c.MouseSensitivity < 0:
		return fmt.Errorf("%w: mouse_sensitivity %v", ErrInvalid, c.MouseSensitivity)
	case c.Generate && (c.MazeWidth < 5 || c.MazeHeight < 5):
		return fmt.Errorf("%w: maze size %dx%d, need at least 5x5", ErrInvalid, c.MazeWidth, c.MazeHeight)
	}
	for k := range c.Textures {
		if len(k) != 1 || !maze.Cell(k[0]).IsWall() {
			return fmt.Errorf("%w: texture key %q is not a wall cell", ErrInvalid, k)
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return nil
}

// FOV returns the field of view in radians.
func (c *Config) FOV() float64 { return radians(c.FOVDegrees) }

// RotateStep returns the per-keypress rotation in radians.
func (c *Config) RotateStep() float64 { return radians(c.RotateDegrees) }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Minimap colors that have no config key.
const (
	minimapWall   = 0x888888
	minimapEmpty  = 0x000000
	minimapGoal   = 0x00C000
	minimapPlayer = 0xFFFF00
	minimapRay    = 0xFF4040
)

// RenderOptions converts the config into renderer settings with every stage
// enabled.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		CellSize:   c.CellSize,
		Boundary:   maze.CellWall,
		Background: c.BackgroundColor.RGB(),
		Features:   render.ModeFull,
		Walls: render.WallOptions{
			ProjectionConstant: c.ProjectionConstant,
			Rays:               c.ViewRays,
			Step:               c.Step,
			Sky:                c.SkyColor.RGB(),
			Floor:              c.FloorColor.RGB(),
			SideShade:          c.SideShade,
		},
		Sprites: render.SpriteOptions{
			Scale:       c.SpriteScale,
			MinDistance: c.MinSpriteDistance,
			BehindLimit: radians(c.BehindLimitDegrees),
			Key:         c.TransparentKey.RGB(),

			SpreadByWidth: c.SpriteSpreadByWidth,
		},
		Minimap: render.MinimapOptions{
			Scale:  c.MinimapScale,
			Rays:   c.MinimapRays,
			Step:   c.MinimapStep,
			Wall:   minimapWall,
			Empty:  minimapEmpty,
			Goal:   minimapGoal,
			Player: minimapPlayer,
			Ray:    minimapRay,
		},
	}
}

// Manifest lists the texture files to load over the built-in atlas.
func (c *Config) Manifest() texture.Manifest {
	m := texture.Manifest{
		Walls:   make(map[maze.Cell]string, len(c.Textures)),
		Sprites: make(map[string]string),
	}
	for k, p := range c.Textures {
		m.Walls[maze.Cell(k[0])] = p
	}
	if c.Sprite != "" {
		m.Sprites[EnemySprite] = c.Sprite
	}
	return m
}
