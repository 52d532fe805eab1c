package maze

// Cell is the code stored in one maze grid entry.
type Cell byte

const (
	CellEmpty Cell = ' '
	CellWall  Cell = '#'
	CellCross Cell = '+'
	CellHoriz Cell = '-'
	CellVert  Cell = '|'
	CellGoal  Cell = 'g'
)

// Markers that only appear in maze text. The parser records their position
// and stores CellEmpty in the grid.
const (
	MarkStart Cell = 'p'
	MarkEnemy Cell = 'e'
)

// WallKinds lists every blocking cell code, in texture registration order.
var WallKinds = []Cell{CellWall, CellCross, CellHoriz, CellVert}

// IsWall reports whether c blocks rays and movement.
func (c Cell) IsWall() bool {
	switch c {
	case CellWall, CellCross, CellHoriz, CellVert:
		return true
	}
	return false
}

// IsGoal reports whether c is the level exit.
func (c Cell) IsGoal() bool { return c == CellGoal }

// Known reports whether c may be stored in a grid.
func (c Cell) Known() bool {
	return c == CellEmpty || c == CellGoal || c.IsWall()
}

func (c Cell) String() string {
	if c == CellEmpty {
		return "empty"
	}
	if c == CellGoal {
		return "goal"
	}
	return string(rune(c))
}
