package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/danilvpetrov/linkup/internal/core"
	"github.com/danilvpetrov/linkup/internal/games/linkup"
)

// A session starting in a cramped terminal must leave the too-small
// overlay once the window grows.
func TestModelResizeReachesGame(t *testing.T) {
	game := linkup.New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 30}

	m := NewModel(game, nil, cfg)
	m.Init()

	// The overlay text is clipped on the 10-wide screen; its tail
	// still identifies it.
	if !strings.Contains(m.View(), "too small") {
		t.Fatal("a 10x5 terminal should show the too-small overlay")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	view := m.View()
	if strings.Contains(view, "too small") {
		t.Error("overlay still shown after growing the terminal to 80x24")
	}
	if !strings.Contains(view, "Linkup") {
		t.Error("HUD should render once the terminal is large enough")
	}
}

// A mid-game resize keeps the board and score intact.
func TestModelResizePreservesState(t *testing.T) {
	game := linkup.New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 30}

	m := NewModel(game, nil, cfg)
	m.Init()

	before := game.Board().Grid().CountByType()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config size = %dx%d, want 120x40", m.config.ScreenW, m.config.ScreenH)
	}

	after := game.Board().Grid().CountByType()
	for typ, n := range before {
		if after[typ] != n {
			t.Errorf("resize changed the board: type %v count %d -> %d", typ, n, after[typ])
		}
	}
}
