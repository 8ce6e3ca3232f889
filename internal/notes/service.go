package notes

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/logging"
)

// Service is the annotation layer over a Store. Player data is frozen at save
// time: it is written once by AddPlayer and never touched again, so notes
// always describe the stats the scout actually looked at.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a notes service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// CreateSection creates a named section. Blank names are rejected.
func (s *Service) CreateSection(ctx context.Context, name string) (domain.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Section{}, NewValidationError("name", "must not be blank")
	}

	section, err := s.store.CreateSection(ctx, name)
	if err != nil {
		return domain.Section{}, err
	}
	logging.Info(s.logger, "section created", slog.Int64(logging.FieldSectionID, section.ID))
	return section, nil
}

// ListSections lists all sections with their saved-player counts, newest first.
func (s *Service) ListSections(ctx context.Context) ([]domain.SectionSummary, error) {
	return s.store.ListSections(ctx)
}

// GetSection returns one section with its saved players.
func (s *Service) GetSection(ctx context.Context, id int64) (domain.SectionDetail, error) {
	return s.store.GetSection(ctx, id)
}

// RenameSection changes a section's name. Blank names are rejected.
func (s *Service) RenameSection(ctx context.Context, id int64, name string) (domain.Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Section{}, NewValidationError("name", "must not be blank")
	}
	return s.store.RenameSection(ctx, id, name)
}

// DeleteSection removes a section and every note saved in it.
func (s *Service) DeleteSection(ctx context.Context, id int64) error {
	if err := s.store.DeleteSection(ctx, id); err != nil {
		return err
	}
	logging.Info(s.logger, "section deleted", slog.Int64(logging.FieldSectionID, id))
	return nil
}

// AddPlayer saves a player into a section with their enriched data frozen as
// given and empty notes. Saving the same player twice in one section is a
// DuplicateError.
func (s *Service) AddPlayer(ctx context.Context, sectionID int64, playerID int, playerData json.RawMessage) (domain.PlayerNote, error) {
	if playerID <= 0 {
		return domain.PlayerNote{}, NewValidationError("playerId", "must be positive")
	}
	if len(playerData) == 0 || !json.Valid(playerData) {
		return domain.PlayerNote{}, NewValidationError("playerData", "must be a JSON document")
	}

	note, err := s.store.AddPlayer(ctx, sectionID, playerID, playerData)
	if err != nil {
		return domain.PlayerNote{}, err
	}
	logging.Info(s.logger, "player saved",
		slog.Int64(logging.FieldSectionID, sectionID),
		slog.Int(logging.FieldPlayerID, playerID),
	)
	return note, nil
}

// UpdateNotes replaces a note's text verbatim. Empty text is allowed; the
// frozen player data is left untouched.
func (s *Service) UpdateNotes(ctx context.Context, noteID int64, text string) (domain.PlayerNote, error) {
	return s.store.UpdateNotes(ctx, noteID, text)
}

// RemovePlayer deletes one saved player by note id.
func (s *Service) RemovePlayer(ctx context.Context, noteID int64) error {
	return s.store.RemovePlayer(ctx, noteID)
}
