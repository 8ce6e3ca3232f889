package domain

// pitcherPositionType is the provider's position type string for pitchers.
const pitcherPositionType = "Pitcher"

// ClassifyKind maps a primary position type to the two-way hitter/pitcher split.
// Anything that is not exactly "Pitcher" counts as a hitter.
func ClassifyKind(positionType string) PlayerKind {
	if positionType == pitcherPositionType {
		return KindPitcher
	}
	return KindHitter
}

// ClassifyPitcherRole derives a pitcher's usage role from seasonal counts.
// A pitcher with no starts is a reliever; one whose starts account for at
// least half of his appearances is a starter; the rest are hybrids.
// The zero-starts branch is checked first so gamesPitched == 0 never divides.
func ClassifyPitcherRole(gamesStarted, gamesPitched int) PitcherRole {
	if gamesStarted == 0 {
		return RoleReliever
	}
	if float64(gamesStarted) >= float64(gamesPitched)/2 {
		return RoleStarter
	}
	return RoleHybrid
}
