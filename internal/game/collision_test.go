package game

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestIsDeadOnHazardCell(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 1)
	x := 5

	l.column(x).Hazards = append(l.column(x).Hazards, HazardCell{Row: 15, Char: FloaterChar})

	if !IsDead(x, 15, l) {
		t.Error("player on a hazard cell should be dead")
	}
	if IsDead(x, 14, l) {
		t.Error("player one row above a hazard should be alive")
	}
	if IsDead(x, 16, l) {
		t.Error("player one row below a hazard should be alive")
	}
	if IsDead(x+1, 15, l) {
		t.Error("hazard in a neighboring column should not kill")
	}
}

func TestIsDeadOnPlatformSpike(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 1)
	x := 5

	l.column(x).Platform = SpikeChar

	if !IsDead(x, l.PlatformRow(), l) {
		t.Error("grounded player on a spike should be dead")
	}
	if IsDead(x, l.PlatformRow()-1, l) {
		t.Error("player one row above a spike should be alive")
	}
}

func TestIsDeadInGap(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 1)
	x := 5

	l.column(x).Platform = EmptyChar
	l.column(x).Ground = EmptyChar

	if !IsDead(x, l.PlatformRow(), l) {
		t.Error("player at platform level over a gap should be dead")
	}
	if !IsDead(x, l.GroundRow(), l) {
		t.Error("player below platform level over a gap should be dead")
	}
	if IsDead(x, l.PlatformRow()-1, l) {
		t.Error("airborne player above a gap should be alive")
	}
}

func TestIsDeadOnWalkableColumn(t *testing.T) {
	l := newTestLevel(config.ModeRandom, 1)
	x := 5

	for y := 0; y <= l.PlatformRow(); y++ {
		if IsDead(x, y, l) {
			t.Errorf("row %d of a plain walkable column should not kill", y)
		}
	}
}
