package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"mlb-roster-service/internal/notes"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSectionCRUD(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.CreateSection(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 || first.CreatedAt == "" {
		t.Fatalf("section not populated: %+v", first)
	}
	second, err := store.CreateSection(ctx, "Trade Targets")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	summaries, err := store.ListSections(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 || summaries[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", summaries)
	}

	renamed, err := store.RenameSection(ctx, first.ID, "Prospects")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Name != "Prospects" || renamed.CreatedAt != first.CreatedAt {
		t.Fatalf("rename result wrong: %+v", renamed)
	}

	if err := store.DeleteSection(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetSection(ctx, first.ID); err == nil {
		t.Fatalf("expected not found after delete")
	} else if _, ok := notes.AsNotFoundError(err); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestPlayerNotesRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	section, err := store.CreateSection(ctx, "Watchlist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	data := json.RawMessage(`{"identity":{"id":7},"snapshot":{"avg":".305"}}`)
	note, err := store.AddPlayer(ctx, section.ID, 7, data)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if note.Notes != "" {
		t.Fatalf("new note must start empty, got %q", note.Notes)
	}

	if _, err := store.AddPlayer(ctx, section.ID, 7, data); err == nil {
		t.Fatalf("expected duplicate error")
	} else if _, ok := notes.AsDuplicateError(err); !ok {
		t.Fatalf("expected DuplicateError, got %v", err)
	}

	updated, err := store.UpdateNotes(ctx, note.ID, "patient hitter")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Notes != "patient hitter" || string(updated.PlayerData) != string(data) {
		t.Fatalf("update wrong: %+v", updated)
	}

	detail, err := store.GetSection(ctx, section.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.Players) != 1 || detail.Players[0].Notes != "patient hitter" {
		t.Fatalf("unexpected players: %+v", detail.Players)
	}

	summaries, _ := store.ListSections(ctx)
	if summaries[0].PlayerCount != 1 {
		t.Fatalf("expected player count 1, got %d", summaries[0].PlayerCount)
	}

	if err := store.RemovePlayer(ctx, note.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.RemovePlayer(ctx, note.ID); err == nil {
		t.Fatalf("expected not found on second remove")
	}
}

func TestAddPlayerUnknownSection(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.AddPlayer(context.Background(), 42, 7, json.RawMessage(`{}`)); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestDeleteSectionCascadesToNotes(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	section, _ := store.CreateSection(ctx, "Watchlist")
	note, err := store.AddPlayer(ctx, section.ID, 7, json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.DeleteSection(ctx, section.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.UpdateNotes(ctx, note.ID, "x"); err == nil {
		t.Fatalf("expected cascaded note to be gone")
	}
}
