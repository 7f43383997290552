package game

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// HeightCategory classifies how high a jump reaches based on hold duration.
// Obstacle variants declare the category required to clear them, keeping
// level difficulty keyed to what the physics can actually do.
//
// Thresholds are defined over simulation ticks. Input sources that cannot
// sustain a held signal (terminal key repeat starts only after the typematic
// delay) may not reach the top category in practice; no variant requires
// more height than such input can produce.
type HeightCategory int

const (
	HeightNone HeightCategory = iota // No jump required
	HeightShort
	HeightMedium
	HeightFull
)

// String returns a human-readable name for the category.
func (h HeightCategory) String() string {
	switch h {
	case HeightNone:
		return "none"
	case HeightShort:
		return "short"
	case HeightMedium:
		return "medium"
	case HeightFull:
		return "full"
	default:
		return "unknown"
	}
}

// VisualState is the symbolic player state tag exposed for rendering.
type VisualState int

const (
	VisualGrounded VisualState = iota
	VisualCharging
	VisualAirborne
)

// Player owns the vertical motion of the runner: the hold-charge jump,
// asymmetric gravity, and the landing cooldown. Horizontal position is fixed.
//
// Holding the jump input keeps feeding upward velocity for up to
// MaxHoldTicks, so a tap gives a short hop and a full hold a tall arc.
// Gravity on the way down is stronger than the rise acceleration: floaty
// rise, fast fall.
type Player struct {
	y           float64 // Row position; smaller = higher
	velY        float64 // Signed; negative = upward
	onGround    bool
	holdingJump bool
	holdTicks   int // Ticks of active ascent-charge this jump
	landTick    int // Tick of the last landing, for the cooldown

	x         int // Fixed horizontal position
	groundRow int // Row the player stands on (the platform row)
	cfg       config.PhysicsConfig
}

// NewPlayer creates a player standing on groundRow.
func NewPlayer(cfg config.PhysicsConfig, groundRow int) *Player {
	p := &Player{cfg: cfg, x: cfg.PlayerX, groundRow: groundRow}
	p.Reset(groundRow)
	return p
}

// Reset returns the player to its initial grounded state.
func (p *Player) Reset(groundRow int) {
	p.groundRow = groundRow
	p.y = float64(groundRow)
	p.velY = 0
	p.onGround = true
	p.holdingJump = false
	p.holdTicks = 0
	// Backdate the last landing so a jump at tick 0 is allowed.
	p.landTick = -p.cfg.CooldownTicks
}

// PressJump starts a jump if the player is grounded and the landing cooldown
// has elapsed. Presses that arrive too early are dropped, not queued.
// Returns true if the jump started.
func (p *Player) PressJump(currentTick int) bool {
	if !p.onGround {
		return false
	}
	if currentTick-p.landTick < p.cfg.CooldownTicks {
		return false
	}
	p.onGround = false
	p.holdingJump = true
	p.holdTicks = 0
	p.velY = -p.cfg.RiseSpeed // Initial upward impulse
	return true
}

// ReleaseJump ends the ascent charge. No-op if not charging.
func (p *Player) ReleaseJump() {
	p.holdingJump = false
}

// Advance moves the player one tick. Call exactly once per tick.
func (p *Player) Advance(currentTick int) {
	if p.onGround {
		return
	}

	if p.holdingJump && p.holdTicks < p.cfg.MaxHoldTicks {
		// Active ascent-charge: upward speed grows with hold duration.
		p.holdTicks++
		p.velY = -(p.cfg.RiseSpeed + p.cfg.RiseAccel*float64(p.holdTicks))
	} else {
		// Released early or charge cap reached: fall.
		p.holdingJump = false
		p.velY += p.cfg.Gravity
		if p.velY > p.cfg.MaxFallSpeed {
			p.velY = p.cfg.MaxFallSpeed
		}
	}

	p.y += p.velY

	// Hard ceiling: cannot fly arbitrarily high.
	if p.y < float64(p.cfg.CeilingRow) {
		p.y = float64(p.cfg.CeilingRow)
		p.velY = 0
	}

	// Ground clamp and landing.
	if p.y >= float64(p.groundRow) {
		p.y = float64(p.groundRow)
		p.velY = 0
		p.onGround = true
		p.holdingJump = false
		p.landTick = currentTick
	}
}

// HeightCategoryFor maps a hold duration to its jump-height category.
// Pure; used for obstacle-clearance reasoning, not gameplay.
func HeightCategoryFor(holdTicks int) HeightCategory {
	switch {
	case holdTicks <= 2:
		return HeightShort
	case holdTicks <= 4:
		return HeightMedium
	default:
		return HeightFull
	}
}

// HeightCategory returns the category of the current (or last) jump charge.
func (p *Player) HeightCategory() HeightCategory {
	return HeightCategoryFor(p.holdTicks)
}

// Row returns the player's current integer row.
func (p *Player) Row() int {
	return int(p.y)
}

// X returns the player's fixed horizontal position.
func (p *Player) X() int {
	return p.x
}

// OnGround reports whether the player is standing on the platform row.
func (p *Player) OnGround() bool {
	return p.onGround
}

// Visual returns the symbolic state tag for rendering.
func (p *Player) Visual() VisualState {
	if p.onGround {
		return VisualGrounded
	}
	if p.holdingJump {
		return VisualCharging
	}
	return VisualAirborne
}
