package generate

import "maze-raycaster/internal/maze"

// populate picks enemy spawn cells in the rooms between the first (start)
// and last (goal) room, round-robin, never reusing a cell.
func populate(rooms []Rect, lvl *maze.Level, cfg *Config) []maze.Point {
	if cfg.Enemies <= 0 || len(rooms) <= 2 {
		return nil
	}
	placeable := rooms[1 : len(rooms)-1]

	occupied := map[maze.Point]bool{lvl.Start: true}
	if lvl.Goal != nil {
		occupied[*lvl.Goal] = true
	}
	var spawns []maze.Point
	for i := range cfg.Enemies {
		room := placeable[i%len(placeable)]
		p, ok := pickFreeInRoom(room, cfg, occupied)
		if !ok {
			continue
		}
		occupied[p] = true
		spawns = append(spawns, p)
	}
	return spawns
}

func pickFreeInRoom(room Rect, cfg *Config, occupied map[maze.Point]bool) (maze.Point, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		p := randomInRoom(room, cfg)
		if !occupied[p] {
			return p, true
		}
	}
	return maze.Point{}, false
}

func randomInRoom(room Rect, cfg *Config) maze.Point {
	// Shrink by 1 from each edge so nothing lands in a doorway.
	x1, y1 := room.X1+1, room.Y1+1
	x2, y2 := room.X2-1, room.Y2-1
	if x1 > x2 || y1 > y2 {
		x1, y1 = room.X1, room.Y1
		x2, y2 = room.X2, room.Y2
	}
	return maze.Point{
		X: x1 + cfg.Rand.Intn(x2-x1+1),
		Y: y1 + cfg.Rand.Intn(y2-y1+1),
	}
}
