package sqlite

// schemaSQL is applied statement by statement on open. Cascade delete keeps
// player notes from outliving their section.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS sections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS player_notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	section_id INTEGER NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
	player_id INTEGER NOT NULL,
	player_data TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	UNIQUE(section_id, player_id)
);

CREATE INDEX IF NOT EXISTS idx_player_notes_section ON player_notes(section_id);
`
