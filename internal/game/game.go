package game

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"maze-raycaster/internal/config"
	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/render"
	"maze-raycaster/internal/system"
	"maze-raycaster/internal/term"
	"maze-raycaster/internal/texture"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateWon
	StateQuit
)

// Options carries everything a session needs. Level is copied, so one loaded
// level can seed many sessions; Atlas is shared read-only.
type Options struct {
	Config *config.Config
	Atlas  *texture.Atlas
	Level  *maze.Level
	Logger zerolog.Logger
}

// Game is one single-player session driving a screen.
type Game struct {
	screen    tcell.Screen
	presenter *term.Presenter
	renderer  *render.Renderer
	surface   *framebuffer.Surface
	cfg       *config.Config
	log       zerolog.Logger
	timer     *Timer

	initial  *maze.Level
	level    *maze.Level
	pose     raycast.Pose
	entities []render.Entity
	state    GameState
	messages []string
	moves    int
	started  time.Time
	stats    render.FrameStats

	mouseX    int
	mouseSeen bool
}

// New creates a Game on an initialized screen.
func New(screen tcell.Screen, o Options) *Game {
	g := &Game{
		screen:    screen,
		presenter: term.NewPresenter(screen),
		renderer:  render.New(o.Atlas, o.Config.RenderOptions()),
		surface:   framebuffer.New(o.Config.Width, o.Config.Height),
		cfg:       o.Config,
		log:       o.Logger,
		timer:     newTimer(time.Now),
		initial:   o.Level,
	}
	g.reset()
	return g
}

// reset starts a fresh run on a clean copy of the level.
func (g *Game) reset() {
	g.level = g.initial.Clone()
	x, y := maze.WorldCenter(g.level.Start, g.cfg.CellSize)
	g.pose = raycast.Pose{
		Pos:   raycast.Vec{X: x, Y: y},
		Angle: facing(g.level.Grid, g.level.Start),
		FOV:   g.cfg.FOV(),
	}
	g.entities = g.entities[:0]
	for _, e := range g.level.Enemies {
		ex, ey := maze.WorldCenter(e, g.cfg.CellSize)
		g.entities = append(g.entities, render.Entity{Pos: raycast.Vec{X: ex, Y: ey}, Sprite: config.EnemySprite})
	}
	g.state = StatePlaying
	g.messages = nil
	g.moves = 0
	g.mouseSeen = false
	g.started = time.Now()
	g.addMessage("w/s move  a/d strafe  q/e turn  m map  tab mode  esc quit")
}

// facing returns the heading of the first open neighbour of p, trying east,
// south, west and north in turn.
func facing(grid *maze.Grid, p maze.Point) float64 {
	dirs := []struct {
		dx, dy int
		angle  float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, 3 * math.Pi / 2},
	}
	for _, d := range dirs {
		if c, ok := grid.At(p.X+d.dx, p.Y+d.dy); ok && !c.IsWall() {
			return d.angle
		}
	}
	return 0
}

// Run is the main loop. It returns when the player quits or the screen is
// closed, and finalizes the screen.
func (g *Game) Run() {
	defer g.screen.Fini()
	g.log.Info().Int("enemies", len(g.entities)).Msg("session started")

	if g.cfg.MouseSensitivity > 0 {
		g.screen.EnableMouse(tcell.MouseMotionEvents)
	}

	for g.state != StateQuit {
		g.Draw()
		g.handle(g.screen.PollEvent())
	}
	g.log.Info().Int("moves", g.moves).Msg("session ended")
}

func (g *Game) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		// Screen finalized underneath us.
		g.state = StateQuit
	case *tcell.EventError:
		// The input side is gone; no further events will arrive.
		g.log.Warn().Err(ev).Msg("input closed")
		g.state = StateQuit
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		g.Step(keyToAction(ev))
	case *tcell.EventMouse:
		x, _ := ev.Position()
		g.look(x)
	}
}

// look turns the view by the horizontal distance the pointer moved since the
// previous mouse event.
func (g *Game) look(x int) {
	if g.mouseSeen && g.state == StatePlaying {
		system.Rotate(&g.pose, float64(x-g.mouseX)*g.cfg.MouseSensitivity)
	}
	g.mouseX, g.mouseSeen = x, true
}

// Step applies one action to the session.
func (g *Game) Step(a Action) {
	if a == ActionQuit {
		g.state = StateQuit
		return
	}
	if g.state == StateWon {
		if a == ActionRestart {
			g.log.Info().Msg("restart")
			g.reset()
		}
		return
	}

	speed := g.cfg.MoveSpeed
	grid, cs := g.level.Grid, g.cfg.CellSize
	var res system.MoveResult
	switch a {
	case ActionForward:
		res = system.Forward(&g.pose, speed, grid, cs)
	case ActionBack:
		res = system.Forward(&g.pose, -speed, grid, cs)
	case ActionStrafeLeft:
		res = system.Strafe(&g.pose, -speed, grid, cs)
	case ActionStrafeRight:
		res = system.Strafe(&g.pose, speed, grid, cs)
	case ActionTurnLeft:
		system.Rotate(&g.pose, -g.cfg.RotateStep())
		return
	case ActionTurnRight:
		system.Rotate(&g.pose, g.cfg.RotateStep())
		return
	case ActionToggleMinimap:
		g.renderer.Features ^= render.FeatureMinimap
		if g.renderer.Features.Has(render.FeatureOverview) {
			g.renderer.Features = render.ModeFull
		}
		g.log.Debug().Stringer("mode", g.renderer.Features).Msg("minimap toggled")
		return
	case ActionCycleMode:
		g.renderer.Features = g.renderer.Features.Next()
		g.addMessage("mode: " + g.renderer.Features.String())
		g.log.Debug().Stringer("mode", g.renderer.Features).Msg("render mode")
		return
	default:
		return
	}

	switch res {
	case system.MoveOK:
		g.moves++
	case system.MoveGoal:
		g.moves++
		g.state = StateWon
		g.log.Info().
			Int("moves", g.moves).
			Dur("elapsed", time.Since(g.started)).
			Msg("goal reached")
	}
}

// Draw renders and presents one frame, or the win screen.
func (g *Game) Draw() {
	if g.state == StateWon {
		g.presenter.DrawBanner([]string{
			"You found the exit!",
			"",
			"r  play again      esc  quit",
		})
		g.presenter.Show()
		return
	}
	g.stats = g.renderer.Frame(g.surface, g.Scene())
	g.presenter.Blit(g.surface)
	g.timer.Tick()
	g.presenter.DrawHUD(term.Status{
		Mode:    g.renderer.Features.String(),
		X:       g.pose.Pos.X,
		Y:       g.pose.Pos.Y,
		Angle:   g.pose.Angle,
		FPS:     g.timer.FPS(),
		Sprites: g.stats.Sprites,
	}, g.messages)
	g.presenter.Show()
}

// Scene returns the current frame input.
func (g *Game) Scene() render.Scene {
	return render.Scene{Grid: g.level.Grid, Pose: g.pose, Entities: g.entities}
}

// State reports where the session is in its state machine.
func (g *Game) State() GameState { return g.state }

// Pose returns the player's current pose.
func (g *Game) Pose() raycast.Pose { return g.pose }

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}
