package search

import (
	"context"
	"errors"
	"testing"

	"mlb-roster-service/internal/domain"
)

type fakeSearchProvider struct {
	candidates []domain.PlayerIdentity
	searchErr  error
	details    map[int]domain.PlayerDetail
	detailErr  map[int]error
}

func (f *fakeSearchProvider) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerIdentity, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.candidates, nil
}

func (f *fakeSearchProvider) FetchPlayerDetail(ctx context.Context, playerID int) (domain.PlayerDetail, error) {
	if err, ok := f.detailErr[playerID]; ok {
		return domain.PlayerDetail{}, err
	}
	return f.details[playerID], nil
}

func (f *fakeSearchProvider) FetchSeasonStats(ctx context.Context, playerID int, group domain.StatGroup, season string) (domain.PlayerSeasonStats, error) {
	return domain.PlayerSeasonStats{}, errors.New("not implemented")
}

func identity(id int, name, positionType string) domain.PlayerIdentity {
	return domain.PlayerIdentity{ID: id, FullName: name, PositionType: positionType}
}

func detailFor(id int, name, positionType string, splits ...domain.SeasonSplit) domain.PlayerDetail {
	return domain.PlayerDetail{
		Identity: identity(id, name, positionType),
		Splits:   splits,
	}
}

func TestSearchHydratesAndExtractsMostRecentSeason(t *testing.T) {
	provider := &fakeSearchProvider{
		candidates: []domain.PlayerIdentity{identity(1, "Pete Alonso", "Infielder")},
		details: map[int]domain.PlayerDetail{
			1: detailFor(1, "Pete Alonso", "Infielder",
				domain.SeasonSplit{Season: "2023", Stat: domain.StatLine{Avg: ".217"}},
				domain.SeasonSplit{Season: "2024", Stat: domain.StatLine{Avg: ".240"}},
			),
		},
	}
	p := NewPipeline(provider, nil)

	results := p.Search(context.Background(), "alonso")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Kind != domain.KindHitter {
		t.Fatalf("expected hitter, got %s", r.Kind)
	}
	if r.Snapshot == nil || r.Snapshot.Season != "2024" || r.Snapshot.Avg != ".240" {
		t.Fatalf("expected most recent split, got %+v", r.Snapshot)
	}
	if r.HeadshotURL != domain.HeadshotURL(1) {
		t.Fatalf("unexpected headshot url %q", r.HeadshotURL)
	}
}

func TestSearchDropsFailedCandidates(t *testing.T) {
	provider := &fakeSearchProvider{
		candidates: []domain.PlayerIdentity{
			identity(1, "Pete Alonso", "Infielder"),
			identity(2, "Jorge Alonso", "Pitcher"),
		},
		details: map[int]domain.PlayerDetail{
			1: detailFor(1, "Pete Alonso", "Infielder"),
		},
		detailErr: map[int]error{2: errors.New("upstream 500")},
	}
	p := NewPipeline(provider, nil)

	results := p.Search(context.Background(), "alonso")
	if len(results) != 1 || results[0].Identity.ID != 1 {
		t.Fatalf("expected failed candidate dropped, got %+v", results)
	}
}

func TestSearchTopLevelFailureYieldsEmpty(t *testing.T) {
	p := NewPipeline(&fakeSearchProvider{searchErr: errors.New("upstream down")}, nil)
	if results := p.Search(context.Background(), "alonso"); len(results) != 0 {
		t.Fatalf("expected empty results, got %+v", results)
	}
}

func TestSearchCandidateWithNoSplitsKeepsNilSnapshot(t *testing.T) {
	provider := &fakeSearchProvider{
		candidates: []domain.PlayerIdentity{identity(1, "Rook Prospect", "Outfielder")},
		details: map[int]domain.PlayerDetail{
			1: detailFor(1, "Rook Prospect", "Outfielder"),
		},
	}
	p := NewPipeline(provider, nil)

	results := p.Search(context.Background(), "prospect")
	if len(results) != 1 || results[0].Snapshot != nil {
		t.Fatalf("expected nil snapshot, got %+v", results)
	}
}

func TestSearchRanksByNameCloseness(t *testing.T) {
	provider := &fakeSearchProvider{
		candidates: []domain.PlayerIdentity{
			identity(1, "Jorge Alonso Fernandez", "Pitcher"),
			identity(2, "Pete Alonso", "Infielder"),
		},
		details: map[int]domain.PlayerDetail{
			1: detailFor(1, "Jorge Alonso Fernandez", "Pitcher"),
			2: detailFor(2, "Pete Alonso", "Infielder"),
		},
	}
	p := NewPipeline(provider, nil)

	results := p.Search(context.Background(), "pete alonso")
	if results[0].Identity.ID != 2 {
		t.Fatalf("expected closest name first, got %+v", results[0].Identity)
	}
}
