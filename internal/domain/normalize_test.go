package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeNilLineYieldsDefaultRecord(t *testing.T) {
	got := Normalize(nil, "")
	want := SeasonStatSnapshot{
		Avg: ".000",
		OPS: ".000",
		SLG: ".000",
		ERA: "0.00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize(nil) = %+v, want %+v", got, want)
	}
}

func TestNormalizeEmptyLineMatchesDefaults(t *testing.T) {
	got := Normalize(&StatLine{}, "2025")
	if got.Avg != ".000" || got.OPS != ".000" || got.SLG != ".000" || got.ERA != "0.00" {
		t.Fatalf("expected display defaults, got %+v", got)
	}
	if got.HomeRuns != 0 || got.Wins != 0 || got.Losses != 0 || got.StrikeOuts != 0 {
		t.Fatalf("expected zero counting stats, got %+v", got)
	}
	if got.Season != "2025" {
		t.Fatalf("expected season carried through, got %q", got.Season)
	}
}

func TestNormalizeKeepsRecordedValues(t *testing.T) {
	line := &StatLine{
		Avg:          ".305",
		HomeRuns:     42,
		OPS:          ".988",
		SLG:          ".610",
		ERA:          "2.43",
		Wins:         15,
		Losses:       4,
		StrikeOuts:   208,
		GamesPitched: 31,
		GamesStarted: 31,
	}
	got := Normalize(line, "2025")
	if got.Avg != ".305" || got.HomeRuns != 42 || got.OPS != ".988" || got.SLG != ".610" {
		t.Fatalf("hitting fields not preserved: %+v", got)
	}
	if got.ERA != "2.43" || got.Wins != 15 || got.Losses != 4 || got.StrikeOuts != 208 {
		t.Fatalf("pitching fields not preserved: %+v", got)
	}
	if got.GamesPitched != 31 || got.GamesStarted != 31 {
		t.Fatalf("usage counts not preserved: %+v", got)
	}
}

func TestNormalizePartialLineFillsOnlyMissing(t *testing.T) {
	got := Normalize(&StatLine{Avg: ".271", HomeRuns: 9}, "2024")
	if got.Avg != ".271" {
		t.Fatalf("expected recorded avg, got %q", got.Avg)
	}
	if got.OPS != ".000" || got.SLG != ".000" || got.ERA != "0.00" {
		t.Fatalf("expected defaults for absent fields, got %+v", got)
	}
}
