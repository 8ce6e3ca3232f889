package domain

// Display defaults applied when the provider omits a stat field. These are
// rendering values only; ranking missing pitchers uses a separate sentinel
// (see the enrich package's sorters) so a genuine 0.00 ERA never collides
// with "no data at all".
const (
	defaultAvg = ".000"
	defaultOPS = ".000"
	defaultSLG = ".000"
	defaultERA = "0.00"
)

// Normalize maps a raw stat line into the fixed-shape snapshot, filling
// documented defaults for every missing field. A nil line yields the full
// default record, so normalization is total.
func Normalize(line *StatLine, season string) SeasonStatSnapshot {
	snap := SeasonStatSnapshot{
		Season: season,
		Avg:    defaultAvg,
		OPS:    defaultOPS,
		SLG:    defaultSLG,
		ERA:    defaultERA,
	}
	if line == nil {
		return snap
	}

	if line.Avg != "" {
		snap.Avg = line.Avg
	}
	if line.OPS != "" {
		snap.OPS = line.OPS
	}
	if line.SLG != "" {
		snap.SLG = line.SLG
	}
	if line.ERA != "" {
		snap.ERA = line.ERA
	}
	snap.HomeRuns = line.HomeRuns
	snap.Wins = line.Wins
	snap.Losses = line.Losses
	snap.StrikeOuts = line.StrikeOuts
	snap.GamesPitched = line.GamesPitched
	snap.GamesStarted = line.GamesStarted
	return snap
}
