package engine_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/danilvpetrov/linkup/internal/games/linkup/engine"
)

func countTypes(dist engine.Distribution) map[engine.Type]int {
	counts := make(map[engine.Type]int)
	for _, t := range dist {
		counts[t]++
	}
	return counts
}

func TestGenerateDistributionReferenceBoard(t *testing.T) {
	// 9x7 board, five types: 62 usable slots, exactly one reserved empty.
	rng := rand.New(rand.NewSource(1))
	dist, err := engine.GenerateDistribution(63, engine.ResourceTypes(), rng)
	if err != nil {
		t.Fatalf("GenerateDistribution() failed: %v", err)
	}

	if len(dist) != 63 {
		t.Fatalf("expected 63 slots, got %d", len(dist))
	}

	counts := countTypes(dist)
	if counts[engine.TypeEmpty] != 1 {
		t.Errorf("expected exactly 1 empty slot, got %d", counts[engine.TypeEmpty])
	}

	// One type gets 14, the rest 12.
	fourteens, twelves := 0, 0
	for _, typ := range engine.ResourceTypes() {
		switch counts[typ] {
		case 14:
			fourteens++
		case 12:
			twelves++
		default:
			t.Errorf("type %v has unexpected count %d", typ, counts[typ])
		}
	}
	if fourteens != 1 || twelves != 4 {
		t.Errorf("expected counts {14,12,12,12,12}, got %v", counts)
	}
}

func TestGenerateDistributionEvenCounts(t *testing.T) {
	testCases := []struct {
		name  string
		slots int
		types int
	}{
		{"reference 9x7 five types", 63, 5},
		{"even slot count", 64, 5},
		{"tiny board", 9, 2},
		{"single type", 20, 1},
		{"more types than pairs", 7, 5},
		{"wide board", 18 * 11, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			types := engine.ResourceTypes()[:tc.types]

			dist, err := engine.GenerateDistribution(tc.slots, types, rng)
			if err != nil {
				t.Fatalf("GenerateDistribution() failed: %v", err)
			}

			counts := countTypes(dist)
			lo, hi := -1, -1
			for _, typ := range types {
				n := counts[typ]
				if n%2 != 0 {
					t.Errorf("type %v has odd count %d", typ, n)
				}
				if lo == -1 || n < lo {
					lo = n
				}
				if n > hi {
					hi = n
				}
			}
			if hi-lo > 2 {
				t.Errorf("counts spread more than 2: min %d, max %d", lo, hi)
			}
			if counts[engine.TypeEmpty] > 2 || counts[engine.TypeEmpty] < 1 {
				t.Errorf("expected 1 or 2 reserved empty slots, got %d", counts[engine.TypeEmpty])
			}
		})
	}
}

func TestGenerateDistributionErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	testCases := []struct {
		name  string
		slots int
		types []engine.Type
	}{
		{"no types", 63, nil},
		{"single slot", 1, engine.ResourceTypes()},
		{"two slots leave nothing usable", 2, engine.ResourceTypes()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.GenerateDistribution(tc.slots, tc.types, rng)
			if !errors.Is(err, engine.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestGenerateDistributionDeterministic(t *testing.T) {
	a, err := engine.GenerateDistribution(63, engine.ResourceTypes(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateDistribution() failed: %v", err)
	}
	b, err := engine.GenerateDistribution(63, engine.ResourceTypes(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("GenerateDistribution() failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different layouts at slot %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateDistributionShuffles(t *testing.T) {
	a, err := engine.GenerateDistribution(63, engine.ResourceTypes(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("GenerateDistribution() failed: %v", err)
	}
	b, err := engine.GenerateDistribution(63, engine.ResourceTypes(), rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("GenerateDistribution() failed: %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}
