package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"maze-raycaster/internal/maze"
)

// ErrTooSmall is returned when the requested maze cannot hold a single room.
var ErrTooSmall = errors.New("generate: maze too small")

// minSide is the smallest width or height that fits a 3x3 room inside the
// outer wall.
const minSide = 5

// Config drives procedural generation for one maze.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	// Enemies is the number of enemy spawns to scatter through the rooms
	// between the start and goal rooms.
	Enemies int
	Rand    *rand.Rand
}

// DefaultConfig returns the settings used when a maze is generated from the
// command line.
func DefaultConfig(width, height int, seed int64) *Config {
	return &Config{
		Width:         width,
		Height:        height,
		MinLeafSize:   6,
		MaxLeafSize:   14,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		Enemies:       4,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider, random when roughly square.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo := cfg.MinLeafSize
	hi := size - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms recursively carves rooms inside terminal leaves, appending
// them to rooms in left-to-right tree order.
func (l *bspLeaf) createRooms(g *maze.Grid, cfg *Config, rooms []Rect) []Rect {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			rooms = l.left.createRooms(g, cfg, rooms)
		}
		if l.right != nil {
			rooms = l.right.createRooms(g, cfg, rooms)
		}
		return rooms
	}

	pad := cfg.RoomPadding
	minSize := max(cfg.MinRoomSize, 3)
	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := minSize + cfg.Rand.Intn(availW-minSize+1)
	rh := minSize + cfg.Rand.Intn(availH-minSize+1)
	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep a one-cell outer wall.
	rx, ry = max(rx, 1), max(ry, 1)
	rw = min(rw, g.Width-rx-1)
	rh = min(rh, g.Height-ry-1)
	if rw < 3 || rh < 3 {
		return rooms
	}

	room := Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.Set(x, y, maze.CellEmpty)
		}
	}
	return append(rooms, room)
}

// getRoom returns a room from this leaf or its descendants.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(g *maze.Grid, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(g, cfg)
	l.right.connectChildren(g, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	carveCorridor(g, lRoom.Center(), rRoom.Center(), cfg)
}

// Generate builds a connected maze of rooms and corridors. The player starts
// in the center of the first room, the goal sits in the last one, and enemy
// spawns are scattered through the rooms in between.
func Generate(cfg *Config) (*maze.Level, error) {
	if cfg.Width < minSide || cfg.Height < minSide {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, cfg.Width, cfg.Height, minSide, minSide)
	}
	g := maze.Filled(cfg.Width, cfg.Height, maze.CellWall)
	root := &bspLeaf{W: cfg.Width, H: cfg.Height}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	rooms := root.createRooms(g, cfg, nil)
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no room fits %dx%d", ErrTooSmall, cfg.Width, cfg.Height)
	}
	root.connectChildren(g, cfg)
	paintWalls(g, rooms)

	lvl := &maze.Level{Grid: g, Start: rooms[0].Center()}
	last := rooms[len(rooms)-1]
	goal := last.Center()
	if goal == lvl.Start {
		goal = maze.Point{X: last.X2, Y: last.Y2}
	}
	g.Set(goal.X, goal.Y, maze.CellGoal)
	lvl.Goal = &goal
	lvl.Enemies = populate(rooms, lvl, cfg)
	return lvl, nil
}
