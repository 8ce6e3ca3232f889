package enrich

import (
	"sort"
	"strconv"

	"mlb-roster-service/internal/domain"
)

// missingERA ranks pitchers with no stat record at all below every pitcher
// that has one, including those whose record normalized to "0.00". The
// sentinel exists only for ordering and never appears in output.
const missingERA = 99.99

// SortHitters orders hitters by batting average descending, in place.
// Equal averages keep their incoming relative order.
func SortHitters(players []domain.EnrichedPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return hitterAvg(players[i]) > hitterAvg(players[j])
	})
}

// SortPitchers orders pitchers by ERA ascending, in place. Pitchers with no
// snapshot sort last; equal ERAs keep their incoming relative order.
func SortPitchers(players []domain.EnrichedPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return pitcherERA(players[i]) < pitcherERA(players[j])
	})
}

func hitterAvg(p domain.EnrichedPlayer) float64 {
	if p.Snapshot == nil {
		return 0
	}
	return parseStat(p.Snapshot.Avg)
}

func pitcherERA(p domain.EnrichedPlayer) float64 {
	if p.Snapshot == nil {
		return missingERA
	}
	return parseStat(p.Snapshot.ERA)
}

// parseStat parses display-formatted stat strings like ".305" or "2.63".
// Unparseable values rank as zero.
func parseStat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
