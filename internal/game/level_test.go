package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const (
	testWidth  = 80
	testHeight = 24
)

func testGenerator(mode config.GeneratorMode) config.GeneratorConfig {
	return config.GeneratorConfig{
		Mode:             mode,
		MinSpacing:       14,
		MaxSpacing:       22,
		SafeStartColumns: 20,
		GapMin:           3,
		GapMax:           4,
		Weights: config.ObstacleWeights{
			Spike:       35,
			DoubleSpike: 12,
			LowBlock:    25,
			MidBlock:    10,
			HighBlock:   5,
			MidFloater:  8,
			HighFloater: 5,
			Gap:         18,
		},
	}
}

func testDecor() config.DecorConfig {
	return config.DecorConfig{Seed: 42, StarCount: 15, CloudCount: 5}
}

func newTestLevel(mode config.GeneratorMode, seed int64) *Level {
	return NewLevel(testGenerator(mode), testDecor(), testWidth, testHeight, seed)
}

// columnSignature encodes every cell of the column at window position x.
func columnSignature(l *Level, x int) string {
	var sb strings.Builder
	for y := 0; y < testHeight; y++ {
		sb.WriteRune(l.CharAt(x, y))
	}
	return sb.String()
}

// farPlatformStream scrolls n times and returns the platform-row rune of
// each freshly generated column.
func farPlatformStream(l *Level, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		l.Scroll()
		sb.WriteRune(l.CharAt(l.Width()-1, l.PlatformRow()))
	}
	return sb.String()
}

func TestScrollShiftsColumnsTowardPlayer(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 7)
	for i := 0; i < 100; i++ {
		l.Scroll()
	}

	before := make([]string, testWidth)
	for x := 0; x < testWidth; x++ {
		before[x] = columnSignature(l, x)
	}

	l.Scroll()

	for x := 1; x < testWidth; x++ {
		if got := columnSignature(l, x-1); got != before[x] {
			t.Fatalf("column %d did not shift to %d: got %q, expected %q", x, x-1, got, before[x])
		}
	}
}

func TestFreshWindowIsWalkable(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 1)

	for x := 0; x < testWidth; x++ {
		if l.CharAt(x, l.GroundRow()) != GroundChar {
			t.Fatalf("column %d: expected ground at row %d", x, l.GroundRow())
		}
		if l.CharAt(x, l.PlatformRow()) != PlatformChar {
			t.Fatalf("column %d: expected platform at row %d", x, l.PlatformRow())
		}
		for y := 0; y < testHeight; y++ {
			if l.HasObstacleAt(x, y) {
				t.Fatalf("fresh window has a hazard at (%d, %d)", x, y)
			}
		}
	}
}

func TestSafeStartZone(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 99)

	// No hazard may be generated before the safe start zone runs out.
	for i := 0; i < l.cfg.SafeStartColumns-1; i++ {
		l.Scroll()
		x := l.Width() - 1
		if l.CharAt(x, l.PlatformRow()) != PlatformChar || l.CharAt(x, l.GroundRow()) != GroundChar {
			t.Fatalf("scroll %d: obstacle inside the safe start zone", i+1)
		}
	}
}

func TestPatternModeIsSeedIndependent(t *testing.T) {
	l1 := newTestLevel(config.ModePattern, 1)
	l2 := newTestLevel(config.ModePattern, 424242)

	var s1, s2 strings.Builder
	for i := 0; i < 400; i++ {
		l1.Scroll()
		l2.Scroll()
		s1.WriteString(columnSignature(l1, l1.Width()-1))
		s2.WriteString(columnSignature(l2, l2.Width()-1))
	}

	if s1.String() != s2.String() {
		t.Error("pattern mode emitted different column streams for different seeds")
	}
}

func TestRandomModeDeterministicPerSeed(t *testing.T) {
	l1 := newTestLevel(config.ModeRandom, 12345)
	l2 := newTestLevel(config.ModeRandom, 12345)

	var s1, s2 strings.Builder
	for i := 0; i < 400; i++ {
		l1.Scroll()
		l2.Scroll()
		s1.WriteString(columnSignature(l1, l1.Width()-1))
		s2.WriteString(columnSignature(l2, l2.Width()-1))
	}

	if s1.String() != s2.String() {
		t.Error("same seed produced different column streams")
	}
}

func TestDecorationIndependentOfObstaclePolicy(t *testing.T) {
	l1 := newTestLevel(config.ModeRandom, 1)
	l2 := newTestLevel(config.ModePattern, 999)

	for i := 0; i < 50; i++ {
		l1.Scroll()
		l2.Scroll()
	}

	stars1, stars2 := l1.Stars(), l2.Stars()
	if len(stars1) != len(stars2) {
		t.Fatalf("star counts differ: %d vs %d", len(stars1), len(stars2))
	}
	for i := range stars1 {
		if stars1[i] != stars2[i] {
			t.Errorf("star %d differs: %+v vs %+v", i, stars1[i], stars2[i])
		}
	}

	clouds1, clouds2 := l1.Clouds(), l2.Clouds()
	if len(clouds1) != len(clouds2) {
		t.Fatalf("cloud counts differ: %d vs %d", len(clouds1), len(clouds2))
	}
	for i := range clouds1 {
		if clouds1[i] != clouds2[i] {
			t.Errorf("cloud %d differs: %+v vs %+v", i, clouds1[i], clouds2[i])
		}
	}
}

func TestGapSpansConfiguredColumns(t *testing.T) {
	l := newTestLevel(config.ModePattern, 1)

	stream := farPlatformStream(l, 400)
	idx := strings.IndexRune(stream, rune(EmptyChar))
	if idx < 0 {
		t.Fatal("pattern mode never emitted a gap")
	}

	span := 0
	for i := idx; i < len(stream) && stream[i] == byte(EmptyChar); i++ {
		span++
	}
	if span != l.cfg.GapMin {
		t.Errorf("gap span = %d columns, expected %d", span, l.cfg.GapMin)
	}
}

func TestGapClearsGroundAndPlatform(t *testing.T) {
	l := newTestLevel(config.ModePattern, 1)

	for i := 0; i < 400; i++ {
		l.Scroll()
		x := l.Width() - 1
		if l.CharAt(x, l.PlatformRow()) == EmptyChar {
			if l.CharAt(x, l.GroundRow()) != EmptyChar {
				t.Fatal("gap column kept its ground cell")
			}
			return
		}
	}
	t.Fatal("pattern mode never emitted a gap")
}

func TestDoubleSpikeTrailingSpan(t *testing.T) {
	l := newTestLevel(config.ModePattern, 1)

	stream := farPlatformStream(l, 400)
	if !strings.Contains(stream, "▲──▲") {
		t.Error("double spike did not emit its second spike 3 columns later")
	}
}

func TestFloaterLeavesGroundWalkable(t *testing.T) {
	// Weights pick floaters only, so every obstacle is a floater.
	gen := testGenerator(config.ModeRandom)
	gen.Weights = config.ObstacleWeights{MidFloater: 1}
	l := NewLevel(gen, testDecor(), testWidth, testHeight, 5)

	found := false
	for i := 0; i < 200; i++ {
		l.Scroll()
		x := l.Width() - 1
		hasFloater := false
		for y := 0; y < l.PlatformRow(); y++ {
			if l.CharAt(x, y) == FloaterChar {
				hasFloater = true
			}
		}
		if hasFloater {
			found = true
			if l.CharAt(x, l.PlatformRow()) != PlatformChar {
				t.Fatal("floater column lost its walkable platform")
			}
		}
	}
	if !found {
		t.Fatal("no floater was generated")
	}
}

func TestBlockHeights(t *testing.T) {
	gen := testGenerator(config.ModeRandom)
	gen.Weights = config.ObstacleWeights{HighBlock: 1}
	l := NewLevel(gen, testDecor(), testWidth, testHeight, 5)

	for i := 0; i < 200; i++ {
		l.Scroll()
		x := l.Width() - 1
		if l.CharAt(x, l.PlatformRow()) == BlockChar {
			// A high block occupies 4 rows from the platform upward.
			for dy := 0; dy < 4; dy++ {
				if l.CharAt(x, l.PlatformRow()-dy) != BlockChar {
					t.Fatalf("high block missing its cell %d rows up", dy)
				}
			}
			if l.CharAt(x, l.PlatformRow()-4) == BlockChar {
				t.Fatal("high block taller than its declared footprint")
			}
			return
		}
	}
	t.Fatal("no high block was generated")
}

func TestOutOfWindowQueriesAreEmpty(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 1)

	if l.CharAt(-1, l.PlatformRow()) != EmptyChar {
		t.Error("negative x should read as empty")
	}
	if l.CharAt(testWidth, l.PlatformRow()) != EmptyChar {
		t.Error("x past the window should read as empty")
	}
	if l.CharAt(0, -1) != EmptyChar || l.CharAt(0, testHeight) != EmptyChar {
		t.Error("out-of-range rows should read as empty")
	}
	if l.HasObstacleAt(testWidth+5, l.PlatformRow()) {
		t.Error("out-of-window hazard query should be false")
	}
}

func TestResetRestoresFreshWindow(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 77)
	for i := 0; i < 300; i++ {
		l.Scroll()
	}

	l.Reset(77)

	fresh := newTestLevel(config.ModeRandom, 77)
	for x := 0; x < testWidth; x++ {
		if columnSignature(l, x) != columnSignature(fresh, x) {
			t.Fatalf("column %d differs from a fresh level after reset", x)
		}
	}

	// The generated streams must match too.
	if farPlatformStream(l, 100) != farPlatformStream(fresh, 100) {
		t.Error("post-reset generation differs from a fresh level")
	}
}
