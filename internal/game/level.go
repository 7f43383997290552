package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Column is one vertical slice of the level grid at a single scroll position.
// Hazard cells above the platform row are kept sparse; the slice is recycled
// when the column is regenerated.
type Column struct {
	Ground   rune // Cell at the ground row
	Platform rune // Cell at the platform row (walkable, hazard, or gap)
	Hazards  []HazardCell
}

// HazardCell is a lethal cell at an absolute screen row above the platform.
type HazardCell struct {
	Row  int
	Char rune
}

// Star is a background decoration point.
type Star struct {
	X, Y int
}

// Cloud is a background decoration band.
type Cloud struct {
	X, Y, W int
}

// Level owns the scrolling window of columns ahead of the player and
// procedurally appends new columns as old ones scroll off.
//
// The window is a fixed-capacity ring buffer indexed by a rolling head
// offset, so a scroll is an O(1) rotation plus one column regeneration
// rather than a whole-grid copy.
type Level struct {
	width       int // Window width = visible columns
	height      int
	groundRow   int
	platformRow int

	cols []Column
	head int // Index of the column at x=0

	// Obstacle generation state
	colsUntilNext int
	gapRemaining  int // Gap columns still to emit
	trailingSpike int // Columns until a double spike's second spike
	rng           *rand.Rand
	pool          []ObstacleKind // Weighted pool for random mode
	patternIdx    int

	// Parallax decoration, scrolled at its own cadence and seeded
	// independently of obstacle placement.
	stars         []Star
	clouds        []Cloud
	scrollCounter int

	cfg   config.GeneratorConfig
	decor config.DecorConfig
}

// NewLevel creates a level window covering width x height cells.
func NewLevel(cfg config.GeneratorConfig, decor config.DecorConfig, width, height int, seed int64) *Level {
	l := &Level{
		width:       width,
		height:      height,
		groundRow:   height - 2,
		platformRow: height - 3,
		cols:        make([]Column, width),
		cfg:         cfg,
		decor:       decor,
	}
	l.buildPool()
	l.Reset(seed)
	return l
}

// buildPool expands the configured weights into a flat pool for uniform draws.
func (l *Level) buildPool() {
	w := l.cfg.Weights
	l.pool = l.pool[:0]
	add := func(kind ObstacleKind, weight int) {
		for i := 0; i < weight; i++ {
			l.pool = append(l.pool, kind)
		}
	}
	add(Spike, w.Spike)
	add(DoubleSpike, w.DoubleSpike)
	add(LowBlock, w.LowBlock)
	add(MidBlock, w.MidBlock)
	add(HighBlock, w.HighBlock)
	add(MidFloater, w.MidFloater)
	add(HighFloater, w.HighFloater)
	add(GapKind, w.Gap)
}

// Reset clears the window to the default walkable pattern, re-seeds
// decoration, and resets all generation counters.
func (l *Level) Reset(seed int64) {
	l.head = 0
	l.colsUntilNext = l.cfg.SafeStartColumns
	l.gapRemaining = 0
	l.trailingSpike = 0
	l.patternIdx = 0
	l.scrollCounter = 0
	l.rng = rand.New(rand.NewSource(seed))

	for i := range l.cols {
		c := &l.cols[i]
		c.Ground = GroundChar
		c.Platform = PlatformChar
		c.Hazards = c.Hazards[:0]
	}

	l.initDecor()
}

// initDecor places stars and clouds with the decoration's own seed so the
// background is reproducible regardless of the obstacle policy.
func (l *Level) initDecor() {
	bgRng := rand.New(rand.NewSource(l.decor.Seed))

	l.stars = l.stars[:0]
	for i := 0; i < l.decor.StarCount; i++ {
		l.stars = append(l.stars, Star{
			X: bgRng.Intn(l.width),
			Y: 1 + bgRng.Intn(atLeast1(l.height/3)),
		})
	}

	l.clouds = l.clouds[:0]
	for i := 0; i < l.decor.CloudCount; i++ {
		l.clouds = append(l.clouds, Cloud{
			X: bgRng.Intn(l.width),
			Y: 1 + bgRng.Intn(atLeast1(l.height/2)),
			W: 3 + bgRng.Intn(4),
		})
	}
}

// atLeast1 guards Intn against degenerate tiny screens.
func atLeast1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Scroll shifts the window one step toward the player and appends a fresh
// column at the far end. Decoration advances at its own slower cadence.
func (l *Level) Scroll() {
	// Rotate: the column at x=0 is evicted and becomes the new far column.
	newest := &l.cols[l.head]
	l.head = (l.head + 1) % l.width
	l.generateColumn(newest)

	l.scrollCounter++
	if l.scrollCounter%3 == 0 {
		for i := range l.stars {
			l.stars[i].X--
			if l.stars[i].X < 0 {
				l.stars[i].X = l.width - 1
			}
		}
	}
	if l.scrollCounter%2 == 0 {
		for i := range l.clouds {
			l.clouds[i].X--
			if l.clouds[i].X < -l.clouds[i].W {
				l.clouds[i].X = l.width - 1
			}
		}
	}
}

// generateColumn fills c with the next column of the level.
func (l *Level) generateColumn(c *Column) {
	c.Hazards = c.Hazards[:0]

	// A gap in progress keeps both ground and platform empty.
	if l.gapRemaining > 0 {
		c.Ground = EmptyChar
		c.Platform = EmptyChar
		l.gapRemaining--
		return
	}

	// Default walkable cells.
	c.Ground = GroundChar
	c.Platform = PlatformChar

	// A double spike in progress emits its second spike after the gap.
	if l.trailingSpike > 0 {
		l.trailingSpike--
		if l.trailingSpike == 0 {
			c.Platform = SpikeChar
		}
		return
	}

	l.colsUntilNext--
	if l.colsUntilNext > 0 {
		return
	}

	kind, spacing := l.nextObstacle()
	l.placeObstacle(kind, c)
	l.colsUntilNext = spacing
}

// nextObstacle selects the next obstacle kind and the spacing to follow it,
// according to the configured policy.
func (l *Level) nextObstacle() (ObstacleKind, int) {
	if l.cfg.Mode == config.ModePattern {
		step := defaultPattern[l.patternIdx%len(defaultPattern)]
		l.patternIdx++
		return step.kind, step.spacing
	}

	kind := l.pool[l.rng.Intn(len(l.pool))]
	spacing := l.cfg.MinSpacing + l.rng.Intn(l.cfg.MaxSpacing-l.cfg.MinSpacing+1)
	return kind, spacing
}

// placeObstacle writes the variant's cells into c at the rows its footprint
// declares. Ground hazards sit on the platform row and extend upward;
// floaters occupy mid-air rows only, leaving the platform walkable.
func (l *Level) placeObstacle(kind ObstacleKind, c *Column) {
	switch kind {
	case Spike:
		c.Platform = SpikeChar

	case DoubleSpike:
		c.Platform = SpikeChar
		l.trailingSpike = 3 // Second spike lands 3 columns later

	case LowBlock, MidBlock, HighBlock:
		spec := kindSpecs[kind]
		c.Platform = spec.footprint.char
		for _, dy := range spec.footprint.rows[1:] {
			row := l.platformRow - dy
			if row >= 1 {
				c.Hazards = append(c.Hazards, HazardCell{Row: row, Char: spec.footprint.char})
			}
		}

	case MidFloater, HighFloater:
		spec := kindSpecs[kind]
		for _, dy := range spec.footprint.rows {
			row := l.platformRow - dy
			if row >= 1 {
				c.Hazards = append(c.Hazards, HazardCell{Row: row, Char: spec.footprint.char})
			}
		}

	case GapKind:
		span := l.cfg.GapMin
		if l.cfg.Mode == config.ModeRandom && l.cfg.GapMax > l.cfg.GapMin {
			span = l.cfg.GapMin + l.rng.Intn(l.cfg.GapMax-l.cfg.GapMin+1)
		}
		c.Ground = EmptyChar
		c.Platform = EmptyChar
		l.gapRemaining = span - 1
	}
}

// column returns the column at window position x. Callers must bounds-check.
func (l *Level) column(x int) *Column {
	return &l.cols[(l.head+x)%l.width]
}

// HasObstacleAt reports whether a lethal cell occupies (x, y).
// Out-of-window coordinates are empty, not an error.
func (l *Level) HasObstacleAt(x, y int) bool {
	return isHazardRune(l.CharAt(x, y))
}

// CharAt returns the cell rune at (x, y), or space when out of window.
func (l *Level) CharAt(x, y int) rune {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return EmptyChar
	}
	c := l.column(x)
	switch y {
	case l.groundRow:
		return c.Ground
	case l.platformRow:
		return c.Platform
	}
	for _, h := range c.Hazards {
		if h.Row == y {
			return h.Char
		}
	}
	return EmptyChar
}

// Width returns the number of visible columns.
func (l *Level) Width() int {
	return l.width
}

// GroundRow returns the absolute row of the ground line.
func (l *Level) GroundRow() int {
	return l.groundRow
}

// PlatformRow returns the absolute row the player walks on.
func (l *Level) PlatformRow() int {
	return l.platformRow
}

// Stars returns the current background star positions.
func (l *Level) Stars() []Star {
	return l.stars
}

// Clouds returns the current background cloud positions.
func (l *Level) Clouds() []Cloud {
	return l.clouds
}
