package game

// IsDead is the per-tick death predicate, evaluated at the player's fixed
// column after both the physics advance and the level scroll, so an obstacle
// entering the player's column is checked the same tick it becomes adjacent.
//
// Two distinct lethal conditions:
//  1. the player's row coincides with a hazard cell;
//  2. the player is at or below the platform row over an empty platform
//     cell (fell into a gap).
//
// No other rows are lethal.
func IsDead(playerX, playerRow int, lvl *Level) bool {
	if lvl.HasObstacleAt(playerX, playerRow) {
		return true
	}
	if playerRow >= lvl.PlatformRow() && lvl.CharAt(playerX, lvl.PlatformRow()) == EmptyChar {
		return true
	}
	return false
}
