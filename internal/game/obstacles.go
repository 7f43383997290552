package game

// Visual characters for level cells.
const (
	GroundChar   = '='
	PlatformChar = '─'
	SpikeChar    = '▲'
	BlockChar    = '█'
	FloaterChar  = '◆'
	EmptyChar    = ' '
	StarChar     = '·'
	CloudChar    = '░'
)

// ObstacleKind is the closed set of obstacle variants the generator places.
type ObstacleKind int

const (
	Spike ObstacleKind = iota
	DoubleSpike
	LowBlock
	MidBlock
	HighBlock
	MidFloater
	HighFloater
	GapKind
)

// String returns the variant name used in configs and logs.
func (k ObstacleKind) String() string {
	switch k {
	case Spike:
		return "spike"
	case DoubleSpike:
		return "double_spike"
	case LowBlock:
		return "low_block"
	case MidBlock:
		return "mid_block"
	case HighBlock:
		return "high_block"
	case MidFloater:
		return "mid_floater"
	case HighFloater:
		return "high_floater"
	case GapKind:
		return "gap"
	default:
		return "unknown"
	}
}

// obstacleFootprint describes the cells a variant occupies, as row offsets
// above the platform row (0 = the platform row itself), plus the rune drawn.
type obstacleFootprint struct {
	rows []int
	char rune
}

// kindSpec carries the data attached to each obstacle variant: its cell
// footprint and the jump-height category required to clear it.
type kindSpec struct {
	required  HeightCategory
	footprint obstacleFootprint
}

// kindSpecs is the variant table. Floaters occupy mid-air rows only, leaving
// the ground walkable beneath them, so they require no jump at all.
var kindSpecs = map[ObstacleKind]kindSpec{
	Spike:       {HeightShort, obstacleFootprint{rows: []int{0}, char: SpikeChar}},
	DoubleSpike: {HeightShort, obstacleFootprint{rows: []int{0}, char: SpikeChar}},
	LowBlock:    {HeightShort, obstacleFootprint{rows: []int{0, 1}, char: BlockChar}},
	MidBlock:    {HeightMedium, obstacleFootprint{rows: []int{0, 1, 2}, char: BlockChar}},
	HighBlock:   {HeightFull, obstacleFootprint{rows: []int{0, 1, 2, 3}, char: BlockChar}},
	MidFloater:  {HeightNone, obstacleFootprint{rows: []int{2, 3}, char: FloaterChar}},
	HighFloater: {HeightNone, obstacleFootprint{rows: []int{4, 5}, char: FloaterChar}},
	GapKind:     {HeightMedium, obstacleFootprint{}},
}

// RequiredHeight returns the jump-height category needed to clear the variant.
func (k ObstacleKind) RequiredHeight() HeightCategory {
	return kindSpecs[k].required
}

// isHazardRune reports whether a cell rune is lethal on contact.
func isHazardRune(r rune) bool {
	return r == SpikeChar || r == BlockChar || r == FloaterChar
}

// patternStep is one entry of the deterministic generation sequence:
// emit the kind after the given number of plain columns.
type patternStep struct {
	spacing int
	kind    ObstacleKind
}

// defaultPattern is the fixed cyclic sequence used in pattern mode.
// Identical across runs regardless of seed.
var defaultPattern = []patternStep{
	{16, Spike},
	{18, LowBlock},
	{15, Spike},
	{20, MidBlock},
	{14, GapKind},
	{17, DoubleSpike},
	{19, HighBlock},
	{16, MidFloater},
	{21, Spike},
	{15, HighFloater},
	{18, LowBlock},
	{20, GapKind},
}
