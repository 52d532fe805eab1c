// Package assets holds the built-in maze and the procedurally drawn textures
// used when the config names no files.
package assets

import (
	_ "embed"
	"strings"

	"maze-raycaster/internal/maze"
)

//go:embed maze.txt
var defaultMaze string

// DefaultLevel parses the embedded maze.
func DefaultLevel() (*maze.Level, error) {
	return maze.Parse(strings.NewReader(defaultMaze))
}
