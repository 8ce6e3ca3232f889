package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/notes"
)

// Store keeps sections and saved player notes in memory. It is the default
// backend when no database path is configured, and the one tests use.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	nextSectionID int64
	nextNoteID    int64
	sections      map[int64]domain.Section
	notes         map[int64]domain.PlayerNote
}

// NewStore constructs an empty memory store.
func NewStore() *Store {
	return &Store{
		now:      time.Now,
		sections: make(map[int64]domain.Section),
		notes:    make(map[int64]domain.PlayerNote),
	}
}

// CreateSection creates a named section.
func (s *Store) CreateSection(ctx context.Context, name string) (domain.Section, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSectionID++
	section := domain.Section{
		ID:        s.nextSectionID,
		Name:      name,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.sections[section.ID] = section
	return section, nil
}

// ListSections returns all sections with player counts, newest first.
func (s *Store) ListSections(ctx context.Context) ([]domain.SectionSummary, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]domain.SectionSummary, 0, len(s.sections))
	for _, section := range s.sections {
		summary := domain.SectionSummary{Section: section}
		for _, note := range s.notes {
			if note.SectionID == section.ID {
				summary.PlayerCount++
			}
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

// GetSection returns one section with its saved players in save order.
func (s *Store) GetSection(ctx context.Context, id int64) (domain.SectionDetail, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	section, ok := s.sections[id]
	if !ok {
		return domain.SectionDetail{}, notes.NewNotFoundError("section", id)
	}

	detail := domain.SectionDetail{Section: section}
	for _, note := range s.notes {
		if note.SectionID == id {
			detail.Players = append(detail.Players, note)
		}
	}
	sort.Slice(detail.Players, func(i, j int) bool {
		return detail.Players[i].ID < detail.Players[j].ID
	})
	return detail, nil
}

// RenameSection changes a section's name.
func (s *Store) RenameSection(ctx context.Context, id int64, name string) (domain.Section, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	section, ok := s.sections[id]
	if !ok {
		return domain.Section{}, notes.NewNotFoundError("section", id)
	}
	section.Name = name
	s.sections[id] = section
	return section, nil
}

// DeleteSection removes a section and cascades to its saved players.
func (s *Store) DeleteSection(ctx context.Context, id int64) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[id]; !ok {
		return notes.NewNotFoundError("section", id)
	}
	delete(s.sections, id)
	for noteID, note := range s.notes {
		if note.SectionID == id {
			delete(s.notes, noteID)
		}
	}
	return nil
}

// AddPlayer saves a player into a section, freezing the given data.
func (s *Store) AddPlayer(ctx context.Context, sectionID int64, playerID int, playerData json.RawMessage) (domain.PlayerNote, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[sectionID]; !ok {
		return domain.PlayerNote{}, notes.NewNotFoundError("section", sectionID)
	}
	for _, note := range s.notes {
		if note.SectionID == sectionID && note.PlayerID == playerID {
			return domain.PlayerNote{}, notes.NewDuplicateError(sectionID, playerID)
		}
	}

	s.nextNoteID++
	note := domain.PlayerNote{
		ID:         s.nextNoteID,
		SectionID:  sectionID,
		PlayerID:   playerID,
		PlayerData: append(json.RawMessage(nil), playerData...),
	}
	s.notes[note.ID] = note
	return note, nil
}

// UpdateNotes replaces one note's text verbatim.
func (s *Store) UpdateNotes(ctx context.Context, noteID int64, text string) (domain.PlayerNote, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok {
		return domain.PlayerNote{}, notes.NewNotFoundError("player note", noteID)
	}
	note.Notes = text
	s.notes[noteID] = note
	return note, nil
}

// RemovePlayer deletes one saved player by note id.
func (s *Store) RemovePlayer(ctx context.Context, noteID int64) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[noteID]; !ok {
		return notes.NewNotFoundError("player note", noteID)
	}
	delete(s.notes, noteID)
	return nil
}
