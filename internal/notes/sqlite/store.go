package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"mlb-roster-service/internal/domain"
	"mlb-roster-service/internal/notes"
)

// Store persists sections and player notes in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func applySchema(db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func isUniqueConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "constraint failed")
}

// CreateSection creates a named section.
func (s *Store) CreateSection(ctx context.Context, name string) (domain.Section, error) {
	createdAt := s.now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sections (name, created_at) VALUES (?, ?)`, name, createdAt)
	if err != nil {
		return domain.Section{}, fmt.Errorf("insert section: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Section{}, err
	}
	return domain.Section{ID: id, Name: name, CreatedAt: createdAt}, nil
}

// ListSections returns all sections with player counts, newest first.
func (s *Store) ListSections(ctx context.Context) ([]domain.SectionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.created_at, COUNT(n.id)
		FROM sections s
		LEFT JOIN player_notes n ON n.section_id = s.id
		GROUP BY s.id
		ORDER BY s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var out []domain.SectionSummary
	for rows.Next() {
		var summary domain.SectionSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.CreatedAt, &summary.PlayerCount); err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// GetSection returns one section with its saved players in save order.
func (s *Store) GetSection(ctx context.Context, id int64) (domain.SectionDetail, error) {
	var detail domain.SectionDetail
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM sections WHERE id = ?`, id).
		Scan(&detail.ID, &detail.Name, &detail.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.SectionDetail{}, notes.NewNotFoundError("section", id)
	}
	if err != nil {
		return domain.SectionDetail{}, fmt.Errorf("get section: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, section_id, player_id, player_data, notes
		FROM player_notes WHERE section_id = ? ORDER BY id`, id)
	if err != nil {
		return domain.SectionDetail{}, fmt.Errorf("list section players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var note domain.PlayerNote
		var data string
		if err := rows.Scan(&note.ID, &note.SectionID, &note.PlayerID, &data, &note.Notes); err != nil {
			return domain.SectionDetail{}, err
		}
		note.PlayerData = json.RawMessage(data)
		detail.Players = append(detail.Players, note)
	}
	return detail, rows.Err()
}

// RenameSection changes a section's name.
func (s *Store) RenameSection(ctx context.Context, id int64, name string) (domain.Section, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sections SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return domain.Section{}, fmt.Errorf("rename section: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.Section{}, notes.NewNotFoundError("section", id)
	}

	var section domain.Section
	err = s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM sections WHERE id = ?`, id).
		Scan(&section.ID, &section.Name, &section.CreatedAt)
	if err != nil {
		return domain.Section{}, err
	}
	return section, nil
}

// DeleteSection removes a section; the cascade removes its saved players.
func (s *Store) DeleteSection(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return notes.NewNotFoundError("section", id)
	}
	return nil
}

// AddPlayer saves a player into a section, freezing the given data.
func (s *Store) AddPlayer(ctx context.Context, sectionID int64, playerID int, playerData json.RawMessage) (domain.PlayerNote, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM sections WHERE id = ?`, sectionID).Scan(&exists)
	if err == sql.ErrNoRows {
		return domain.PlayerNote{}, notes.NewNotFoundError("section", sectionID)
	}
	if err != nil {
		return domain.PlayerNote{}, fmt.Errorf("check section: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO player_notes (section_id, player_id, player_data, notes)
		VALUES (?, ?, ?, '')`,
		sectionID, playerID, string(playerData))
	if err != nil {
		if isUniqueConstraintErr(err) {
			return domain.PlayerNote{}, notes.NewDuplicateError(sectionID, playerID)
		}
		return domain.PlayerNote{}, fmt.Errorf("insert player note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.PlayerNote{}, err
	}
	return domain.PlayerNote{
		ID:         id,
		SectionID:  sectionID,
		PlayerID:   playerID,
		PlayerData: append(json.RawMessage(nil), playerData...),
	}, nil
}

// UpdateNotes replaces one note's text verbatim.
func (s *Store) UpdateNotes(ctx context.Context, noteID int64, text string) (domain.PlayerNote, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE player_notes SET notes = ? WHERE id = ?`, text, noteID)
	if err != nil {
		return domain.PlayerNote{}, fmt.Errorf("update notes: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.PlayerNote{}, notes.NewNotFoundError("player note", noteID)
	}

	var note domain.PlayerNote
	var data string
	err = s.db.QueryRowContext(ctx, `
		SELECT id, section_id, player_id, player_data, notes
		FROM player_notes WHERE id = ?`, noteID).
		Scan(&note.ID, &note.SectionID, &note.PlayerID, &data, &note.Notes)
	if err != nil {
		return domain.PlayerNote{}, err
	}
	note.PlayerData = json.RawMessage(data)
	return note, nil
}

// RemovePlayer deletes one saved player by note id.
func (s *Store) RemovePlayer(ctx context.Context, noteID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM player_notes WHERE id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("remove player note: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return notes.NewNotFoundError("player note", noteID)
	}
	return nil
}
