// Package linkup adapts the tile matching engine to the platform's
// Game interface: cursor input, scoring, timers and rendering.
package linkup

import (
	"math/rand"

	"github.com/danilvpetrov/linkup/internal/config"
	"github.com/danilvpetrov/linkup/internal/core"
	"github.com/danilvpetrov/linkup/internal/games/linkup/engine"
	"github.com/danilvpetrov/linkup/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeZen   Mode = "zen"   // No timer, play until quit
	ModeTimed Mode = "timed" // Countdown; the clock ending is game over
)

// How long an eliminated pair's connecting path stays visible.
const flashDuration = 12 // ticks

// Game implements the tile matching game.
type Game struct {
	mode Mode
	cfg  config.LinkupConfig
	rng  *rand.Rand
	tick uint64

	board  *engine.Board
	cursor engine.Point

	score         int
	boardsCleared int

	// Timed mode countdown
	tickRate  int
	ticksLeft int

	// Path flash after an elimination
	flashPath  engine.Path
	flashTicks int

	// Board placement on screen
	screenW      int
	screenH      int
	hudHeight    int
	boardOffsetX int
	boardOffsetY int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty overrides set by the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new zen mode game.
func New() *Game {
	return &Game{mode: ModeZen}
}

// NewTimed creates a new timed mode game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("linkup", func() registry.Game {
		return New()
	})
	registry.Register("linkup_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "linkup_timed"
	}
	return "linkup"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Linkup (Timed)"
	}
	return "Linkup"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.boardsCleared = 0
	g.gameOver = false
	g.paused = false
	g.flashPath = nil
	g.flashTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	loaded, err := config.LoadLinkup(configPath)
	if err != nil {
		loaded = config.DefaultLinkupConfig()
	}
	if difficultyPreset != "" && config.ValidPreset(config.DifficultyPreset(difficultyPreset)) {
		config.ApplyLinkupPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	if g.mode == ModeTimed && g.cfg.Scoring.TimeLimitSeconds > 0 {
		g.ticksLeft = g.cfg.Scoring.TimeLimitSeconds * g.tickRate
	} else {
		g.ticksLeft = 0
	}

	g.setupBoard()
	g.layout()
}

// setupBoard builds a fresh board from the loaded configuration.
func (g *Game) setupBoard() {
	board, err := engine.NewBoard(engine.Config{
		Rows:  g.cfg.Board.Rows,
		Cols:  g.cfg.Board.Cols,
		Types: engine.ResourceTypes()[:g.cfg.Board.Types],
		Rules: engine.Rules{
			MaxBends:    g.cfg.Rules.MaxBends,
			OuterBorder: g.cfg.Rules.OuterBorder,
		},
		Rand: g.rng,
	})
	if err != nil {
		// Unusable config slipped through validation; retreat to defaults.
		g.cfg = config.DefaultLinkupConfig()
		board, _ = engine.NewBoard(engine.Config{
			Rows:  g.cfg.Board.Rows,
			Cols:  g.cfg.Board.Cols,
			Types: engine.ResourceTypes()[:g.cfg.Board.Types],
			Rules: engine.DefaultRules(),
			Rand:  g.rng,
		})
	}
	g.board = board
	g.cursor = engine.Pt(0, 0)
}

// layout computes board placement and the too-small flag.
// Each tile occupies two screen columns so the board reads as a grid.
func (g *Game) layout() {
	boardW := g.cfg.Board.Cols * 2
	boardH := g.cfg.Board.Rows

	requiredW := boardW + 4
	requiredH := boardH + g.hudHeight + 3
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardOffsetX = (g.screenW - boardW) / 2
	g.boardOffsetY = g.hudHeight + 1
}

// Resize recomputes the board placement for new screen dimensions.
// The board, score and timer are untouched; a game stuck behind the
// too-small overlay resumes once the terminal grows enough.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Fade out the last elimination's path
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flashPath = nil
		}
	}

	g.processInput(input)

	// Timed mode countdown
	if g.mode == ModeTimed && g.ticksLeft > 0 {
		g.ticksLeft--
		if g.ticksLeft == 0 {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput handles cursor movement and tile selection.
func (g *Game) processInput(input core.InputFrame) {
	rows := g.board.Grid().Rows()
	cols := g.board.Grid().Cols()

	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, rows-1)
	case input.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, rows-1)
	case input.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, cols-1)
	case input.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, cols-1)
	}

	if input.Has(core.ActionSelect) {
		g.tapCursor()
	}
}

// tapCursor selects the tile under the cursor and applies the outcome.
func (g *Game) tapCursor() {
	res, refilled, err := g.board.Tap(g.cursor.Row, g.cursor.Col)
	if err != nil {
		return
	}

	if res.Outcome == engine.OutcomeEliminated {
		g.score += g.cfg.Scoring.PairPoints
		g.flashPath = res.Path
		g.flashTicks = flashDuration
	}
	if refilled {
		g.boardsCleared++
		g.score += g.cfg.Scoring.ClearBonus
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Boards:   g.boardsCleared,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// SecondsLeft returns the remaining time in timed mode, rounded up.
func (g *Game) SecondsLeft() int {
	if g.mode != ModeTimed || g.tickRate <= 0 {
		return 0
	}
	return (g.ticksLeft + g.tickRate - 1) / g.tickRate
}

// Board exposes the underlying board for rendering and tests.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Cursor returns the current cursor position.
func (g *Game) Cursor() engine.Point {
	return g.cursor
}
