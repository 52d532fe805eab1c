package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrMissingAsset = errors.New("missing maze asset")
	ErrNoStart      = errors.New("maze has no player start")
)

// Level is a parsed maze plus the positions recorded from its markers.
type Level struct {
	Grid    *Grid
	Start   Point
	Enemies []Point
	Goal    *Point
}

// Load reads and parses the maze file at path.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingAsset, path, err)
	}
	defer f.Close()
	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return lvl, nil
}

// Parse reads a maze description: one row per line, one byte per cell.
// 'p' marks the player start and 'e' an enemy spawn; both become empty cells.
// Trailing blank lines are ignored. Rows must all have the same length.
func Parse(r io.Reader) (*Level, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	lvl := &Level{}
	haveStart := false
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		row := make([]Cell, len(line))
		for x := 0; x < len(line); x++ {
			c := Cell(line[x])
			switch c {
			case MarkStart:
				lvl.Start = Point{X: x, Y: y}
				haveStart = true
				c = CellEmpty
			case MarkEnemy:
				lvl.Enemies = append(lvl.Enemies, Point{X: x, Y: y})
				c = CellEmpty
			case CellGoal:
				p := Point{X: x, Y: y}
				lvl.Goal = &p
			}
			row[x] = c
		}
		rows[y] = row
	}

	grid, err := New(rows)
	if err != nil {
		return nil, err
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	lvl.Grid = grid
	return lvl, nil
}

// Clone returns a deep copy so that independent sessions never share a grid.
func (l *Level) Clone() *Level {
	out := &Level{
		Grid:    l.Grid.Clone(),
		Start:   l.Start,
		Enemies: append([]Point(nil), l.Enemies...),
	}
	if l.Goal != nil {
		g := *l.Goal
		out.Goal = &g
	}
	return out
}

// String renders the grid back to maze text, markers included.
func (l *Level) String() string {
	var b strings.Builder
	enemies := make(map[Point]bool, len(l.Enemies))
	for _, e := range l.Enemies {
		enemies[e] = true
	}
	for y := 0; y < l.Grid.Height; y++ {
		for x := 0; x < l.Grid.Width; x++ {
			p := Point{X: x, Y: y}
			c, _ := l.Grid.At(x, y)
			switch {
			case p == l.Start:
				c = MarkStart
			case enemies[p]:
				c = MarkEnemy
			}
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
