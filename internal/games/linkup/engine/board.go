package engine

import "math/rand"

// Config describes a board at construction time. Dimensions, the type
// set and the connectivity rules are fixed for the board's lifetime.
type Config struct {
	Rows  int
	Cols  int
	Types []Type
	Rules Rules

	// Rand is the randomness source for distributions. Tests inject a
	// seeded source to assert exact layouts; nil falls back to the
	// global source.
	Rand *rand.Rand

	// Sink receives gameplay events; nil discards them.
	Sink Sink
}

// DefaultConfig returns the reference 9-column, 7-row, five-type board.
func DefaultConfig() Config {
	return Config{
		Rows:  7,
		Cols:  9,
		Types: ResourceTypes(),
		Rules: DefaultRules(),
	}
}

// Board wires the grid, the distribution generator, the selection
// controller and the refill scheduler into one playable session. All
// methods must be called from a single goroutine; every tap is processed
// to completion before the next (there is nothing blocking anywhere in
// the engine).
type Board struct {
	grid     *Grid
	rules    Rules
	selector *Selector
	refiller *Refiller

	pairs   int // pairs eliminated since construction
	refills int // boards refilled since construction
}

// NewBoard builds, fills and returns a playable board. Configuration
// errors (impossible dimensions or type sets) abort construction.
func NewBoard(cfg Config) (*Board, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, ErrInvalidConfiguration
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NopSink{}
	}

	grid := NewGrid(cfg.Rows, cfg.Cols)
	dist, err := GenerateDistribution(grid.Slots(), cfg.Types, rng)
	if err != nil {
		return nil, err
	}
	if err := grid.Fill(dist); err != nil {
		return nil, err
	}

	return &Board{
		grid:     grid,
		rules:    cfg.Rules,
		selector: NewSelector(grid, cfg.Rules, sink),
		refiller: NewRefiller(grid, cfg.Types, rng, sink),
	}, nil
}

// Grid exposes the board's grid for read access and rendering.
func (b *Board) Grid() *Grid { return b.grid }

// Rules returns the connectivity rules in effect.
func (b *Board) Rules() Rules { return b.rules }

// Pairs returns the number of pairs eliminated since construction.
func (b *Board) Pairs() int { return b.pairs }

// Refills returns how many times the board has been refilled.
func (b *Board) Refills() int { return b.refills }

// Selected returns the coordinate of the pending selection, if any.
func (b *Board) Selected() (Point, bool) {
	return b.selector.Pending()
}

// Tap is the sole gameplay input. The refill check runs after every
// elimination; the second return reports that this tap emptied and then
// repopulated the board.
func (b *Board) Tap(row, col int) (TapResult, bool, error) {
	res, err := b.selector.Tap(row, col)
	if err != nil {
		return res, false, err
	}
	if res.Outcome != OutcomeEliminated {
		return res, false, nil
	}
	b.pairs++
	refilled, err := b.refiller.AfterElimination()
	if err != nil {
		return res, false, err
	}
	if refilled {
		b.refills++
	}
	return res, refilled, nil
}
