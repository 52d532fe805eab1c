package generate

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"maze-raycaster/internal/maze"
)

func defaultTestConfig(seed int64) *Config {
	return &Config{
		Width:         48,
		Height:        30,
		MinLeafSize:   6,
		MaxLeafSize:   14,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		Enemies:       6,
		Rand:          rand.New(rand.NewSource(seed)),
	}
}

// reachable flood-fills the open cells of g from start.
func reachable(g *maze.Grid, start maze.Point) map[maze.Point]bool {
	seen := map[maze.Point]bool{start: true}
	queue := []maze.Point{start}
	dirs := []maze.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := maze.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if seen[n] {
				continue
			}
			if c, ok := g.At(n.X, n.Y); !ok || c.IsWall() {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestGenerateGoalReachable(t *testing.T) {
	styles := []CorridorStyle{CorridorLShaped, CorridorZShaped, CorridorStraight}
	for seed := int64(0); seed < 10; seed++ {
		for _, style := range styles {
			cfg := defaultTestConfig(seed)
			cfg.CorridorStyle = style
			lvl, err := Generate(cfg)
			if err != nil {
				t.Fatalf("seed=%d: %v", seed, err)
			}
			if lvl.Goal == nil {
				t.Fatalf("seed=%d: no goal", seed)
			}
			seen := reachable(lvl.Grid, lvl.Start)
			if !seen[*lvl.Goal] {
				t.Errorf("seed=%d style=%d: goal %v unreachable from %v", seed, style, *lvl.Goal, lvl.Start)
			}
			for _, e := range lvl.Enemies {
				if !seen[e] {
					t.Errorf("seed=%d style=%d: enemy %v unreachable", seed, style, e)
				}
			}
		}
	}
}

// TestGenerateAllOpenCellsConnected verifies that every open cell is
// reachable from the start.
func TestGenerateAllOpenCellsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		lvl, err := Generate(defaultTestConfig(seed))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		seen := reachable(lvl.Grid, lvl.Start)
		for y := 0; y < lvl.Grid.Height; y++ {
			for x := 0; x < lvl.Grid.Width; x++ {
				if !lvl.Grid.IsWall(x, y) && !seen[maze.Point{X: x, Y: y}] {
					t.Errorf("seed=%d: unreachable cell (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateShape(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		cfg := defaultTestConfig(seed)
		lvl, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		g := lvl.Grid
		if g.Width != cfg.Width || g.Height != cfg.Height {
			t.Fatalf("seed=%d: size %dx%d", seed, g.Width, g.Height)
		}
		for x := 0; x < g.Width; x++ {
			if !g.IsWall(x, 0) || !g.IsWall(x, g.Height-1) {
				t.Errorf("seed=%d: open border at column %d", seed, x)
			}
		}
		for y := 0; y < g.Height; y++ {
			if !g.IsWall(0, y) || !g.IsWall(g.Width-1, y) {
				t.Errorf("seed=%d: open border at row %d", seed, y)
			}
		}
		if g.IsWall(lvl.Start.X, lvl.Start.Y) {
			t.Errorf("seed=%d: start %v inside a wall", seed, lvl.Start)
		}
		if *lvl.Goal == lvl.Start {
			t.Errorf("seed=%d: goal on the start cell", seed)
		}
		if c, _ := g.At(lvl.Goal.X, lvl.Goal.Y); c != maze.CellGoal {
			t.Errorf("seed=%d: goal cell holds %q", seed, c)
		}
	}
}

func TestGenerateEnemiesDistinct(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		lvl, err := Generate(defaultTestConfig(seed))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		seen := map[maze.Point]bool{lvl.Start: true, *lvl.Goal: true}
		for _, e := range lvl.Enemies {
			if seen[e] {
				t.Errorf("seed=%d: enemy %v shares a cell", seed, e)
			}
			seen[e] = true
			if lvl.Grid.IsWall(e.X, e.Y) {
				t.Errorf("seed=%d: enemy %v inside a wall", seed, e)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(defaultTestConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(defaultTestConfig(42))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
}

func TestGenerateRoundTripsThroughParser(t *testing.T) {
	lvl, err := Generate(defaultTestConfig(7))
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := maze.Parse(strings.NewReader(lvl.String()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Start != lvl.Start {
		t.Errorf("start = %v, want %v", parsed.Start, lvl.Start)
	}
	if len(parsed.Enemies) != len(lvl.Enemies) {
		t.Errorf("enemies = %d, want %d", len(parsed.Enemies), len(lvl.Enemies))
	}
}

func TestGenerateSmallest(t *testing.T) {
	cfg := DefaultConfig(5, 5, 1)
	lvl, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if lvl.Grid.IsWall(lvl.Start.X, lvl.Start.Y) {
		t.Error("start inside a wall")
	}
	if lvl.Enemies != nil {
		t.Errorf("single-room maze got enemies %v", lvl.Enemies)
	}
}

func TestGenerateTooSmall(t *testing.T) {
	for _, size := range [][2]int{{4, 10}, {10, 4}, {0, 0}} {
		_, err := Generate(DefaultConfig(size[0], size[1], 1))
		if !errors.Is(err, ErrTooSmall) {
			t.Errorf("%v: expected ErrTooSmall, got %v", size, err)
		}
	}
}
