package engine_test

import (
	"testing"

	"github.com/danilvpetrov/linkup/internal/games/linkup/engine"
)

// E, G and S abbreviate types in board literals.
const (
	E = engine.TypeEmpty
	G = engine.TypeGold
	S = engine.TypeStone
)

// checkPathEmptiness walks every segment of the path and fails if any
// slot strictly between waypoints, or any corner, is occupied on-board.
func checkPathEmptiness(t *testing.T, g *engine.Grid, path engine.Path, a, b engine.Point) {
	t.Helper()
	if len(path) < 2 {
		t.Fatalf("path too short: %v", path)
	}
	if path[0] != a || path[len(path)-1] != b {
		t.Fatalf("path endpoints %v..%v, want %v..%v", path[0], path[len(path)-1], a, b)
	}
	for _, corner := range path[1 : len(path)-1] {
		if g.TypeAt(corner.Row, corner.Col) != engine.TypeEmpty {
			t.Errorf("corner %v is occupied", corner)
		}
	}
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		switch {
		case from.Row == to.Row:
			lo, hi := from.Col, to.Col
			if lo > hi {
				lo, hi = hi, lo
			}
			for col := lo + 1; col < hi; col++ {
				if g.TypeAt(from.Row, col) != engine.TypeEmpty {
					t.Errorf("segment %v..%v crosses occupied slot (%d,%d)", from, to, from.Row, col)
				}
			}
		case from.Col == to.Col:
			lo, hi := from.Row, to.Row
			if lo > hi {
				lo, hi = hi, lo
			}
			for row := lo + 1; row < hi; row++ {
				if g.TypeAt(row, from.Col) != engine.TypeEmpty {
					t.Errorf("segment %v..%v crosses occupied slot (%d,%d)", from, to, row, from.Col)
				}
			}
		default:
			t.Errorf("segment %v..%v is not axis-aligned", from, to)
		}
	}
}

func TestFindPathShapes(t *testing.T) {
	rules := engine.DefaultRules()

	testCases := []struct {
		name  string
		board []engine.Type // 4x4 row-major
		a, b  engine.Point
		bends int
	}{
		{
			name: "straight horizontal",
			board: []engine.Type{
				G, E, E, G,
				E, E, E, E,
				E, E, E, E,
				E, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(0, 3), bends: 0,
		},
		{
			name: "straight vertical",
			board: []engine.Type{
				G, E, E, E,
				E, E, E, E,
				E, E, E, E,
				G, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(3, 0), bends: 0,
		},
		{
			name: "one bend L shape",
			board: []engine.Type{
				G, E, E, E,
				E, E, E, E,
				E, E, E, G,
				E, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(2, 3), bends: 1,
		},
		{
			name: "two bends Z shape",
			board: []engine.Type{
				G, S, E, E,
				E, S, E, E,
				E, E, E, S,
				E, S, G, S,
			},
			a: engine.Pt(0, 0), b: engine.Pt(3, 2), bends: 2,
		},
		{
			name: "around the border",
			board: []engine.Type{
				G, S, G, E,
				S, S, S, E,
				E, E, E, E,
				E, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(0, 2), bends: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := engine.NewGrid(4, 4)
			fill(t, g, tc.board...)

			path, ok := rules.FindPath(g, tc.a, tc.b)
			if !ok {
				t.Fatalf("FindPath(%v, %v) found no path", tc.a, tc.b)
			}
			if path.Bends() > 2 {
				t.Errorf("path has %d bends, budget is 2", path.Bends())
			}
			if path.Bends() != tc.bends {
				t.Errorf("path has %d bends, expected %d", path.Bends(), tc.bends)
			}
			checkPathEmptiness(t, g, path, tc.a, tc.b)

			if !rules.CanConnect(g, tc.a, tc.b) {
				t.Error("CanConnect disagrees with FindPath")
			}
		})
	}
}

func TestFindPathNegative(t *testing.T) {
	rules := engine.DefaultRules()

	testCases := []struct {
		name  string
		board []engine.Type // 4x4 row-major
		a, b  engine.Point
	}{
		{
			name: "walled in",
			board: []engine.Type{
				G, S, E, E,
				S, S, E, E,
				E, E, S, S,
				E, E, S, G,
			},
			a: engine.Pt(0, 0), b: engine.Pt(3, 3),
		},
		{
			name: "type mismatch",
			board: []engine.Type{
				G, E, E, S,
				E, E, E, E,
				E, E, E, E,
				E, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(0, 3),
		},
		{
			name: "empty endpoint",
			board: []engine.Type{
				G, E, E, E,
				E, E, E, E,
				E, E, E, E,
				E, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(0, 3),
		},
		{
			name: "same tile twice",
			board: []engine.Type{
				G, E, E, E,
				E, E, E, E,
				E, E, E, E,
				E, E, E, E,
			},
			a: engine.Pt(0, 0), b: engine.Pt(0, 0),
		},
		{
			name: "three bends needed",
			board: []engine.Type{
				S, G, S, E,
				S, S, S, E,
				S, G, S, E,
				S, S, S, E,
			},
			a: engine.Pt(0, 1), b: engine.Pt(2, 1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := engine.NewGrid(4, 4)
			fill(t, g, tc.board...)

			if rules.CanConnect(g, tc.a, tc.b) {
				t.Errorf("CanConnect(%v, %v) = true, want false", tc.a, tc.b)
			}
			if path, ok := rules.FindPath(g, tc.a, tc.b); ok {
				t.Errorf("FindPath(%v, %v) = %v, want none", tc.a, tc.b, path)
			}
		})
	}
}

func TestFindPathOutOfBoundsEndpoint(t *testing.T) {
	g := engine.NewGrid(3, 3)
	fill(t, g, G, E, G, E, E, E, E, E, E)

	rules := engine.DefaultRules()
	if rules.CanConnect(g, engine.Pt(-1, 0), engine.Pt(0, 2)) {
		t.Error("endpoint off the board must never connect")
	}
}

// Blocked direct line on a 3x3 board: with the outer border enabled the
// detour over the top edge works; with it disabled there is no room.
func TestFindPathBorderWrapToggle(t *testing.T) {
	board := []engine.Type{
		G, S, G,
		S, S, S,
		E, E, E,
	}

	g := engine.NewGrid(3, 3)
	fill(t, g, board...)
	a, b := engine.Pt(0, 0), engine.Pt(0, 2)

	withBorder := engine.Rules{MaxBends: 2, OuterBorder: true}
	path, ok := withBorder.FindPath(g, a, b)
	if !ok {
		t.Fatal("border-enabled rules should connect over the edge")
	}
	if path.Bends() != 2 {
		t.Errorf("border detour should have 2 bends, got %d", path.Bends())
	}
	for _, corner := range path[1 : len(path)-1] {
		if g.InBounds(corner.Row, corner.Col) {
			t.Errorf("detour corner %v should lie outside the grid", corner)
		}
	}

	noBorder := engine.Rules{MaxBends: 2, OuterBorder: false}
	if noBorder.CanConnect(g, a, b) {
		t.Error("border-disabled rules must not connect")
	}
}

func TestReducedBendBudget(t *testing.T) {
	// L-shaped connection requires one bend.
	g := engine.NewGrid(3, 3)
	fill(t, g,
		G, E, E,
		E, E, E,
		E, E, G,
	)
	a, b := engine.Pt(0, 0), engine.Pt(2, 2)

	if !(engine.Rules{MaxBends: 1, OuterBorder: true}).CanConnect(g, a, b) {
		t.Error("one-bend budget should allow an L shape")
	}
	if (engine.Rules{MaxBends: 0, OuterBorder: true}).CanConnect(g, a, b) {
		t.Error("zero-bend budget must reject an L shape")
	}
}
