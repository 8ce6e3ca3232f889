package notes

import (
	"context"
	"encoding/json"

	"mlb-roster-service/internal/domain"
)

// Store persists sections and saved player notes. Implementations return the
// typed errors of this package: NotFoundError for absent ids, DuplicateError
// when a player is already saved in a section.
type Store interface {
	CreateSection(ctx context.Context, name string) (domain.Section, error)
	ListSections(ctx context.Context) ([]domain.SectionSummary, error)
	GetSection(ctx context.Context, id int64) (domain.SectionDetail, error)
	RenameSection(ctx context.Context, id int64, name string) (domain.Section, error)
	DeleteSection(ctx context.Context, id int64) error

	AddPlayer(ctx context.Context, sectionID int64, playerID int, playerData json.RawMessage) (domain.PlayerNote, error)
	UpdateNotes(ctx context.Context, noteID int64, notes string) (domain.PlayerNote, error)
	RemovePlayer(ctx context.Context, noteID int64) error
}
