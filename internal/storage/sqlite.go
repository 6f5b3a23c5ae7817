// Package storage provides SQLite-based persistence for session records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout sorts lexicographically in UTC.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for session records.
type Store struct {
	db *sql.DB
}

// SessionRecord summarizes one finished play session.
type SessionRecord struct {
	ID            uuid.UUID
	StartedAt     time.Time
	EndedAt       time.Time
	Ticks         int
	ItemsObtained int
	LevelUps      int
	Skills        []SkillRecord
}

// Duration returns the wall-clock length of the session.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// SkillRecord is a skill's state at the end of a session.
type SkillRecord struct {
	Skill      string
	Level      int
	Experience int
	Gained     int // Experience earned during the session
}

// SkillEntry is one row of a per-skill leaderboard.
type SkillEntry struct {
	SessionID  uuid.UUID
	Skill      string
	Level      int
	Experience int
	EndedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			items_obtained INTEGER NOT NULL DEFAULT 0,
			level_ups INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at DESC);

		CREATE TABLE IF NOT EXISTS session_skills (
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			skill TEXT NOT NULL,
			level INTEGER NOT NULL,
			experience INTEGER NOT NULL,
			gained INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (session_id, skill)
		);
		CREATE INDEX IF NOT EXISTS idx_session_skills_top ON session_skills(skill, experience DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession stores a finished session with its skills. A nil ID is
// replaced by a fresh random one. Returns the stored ID.
func (s *Store) SaveSession(rec SessionRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (id, started_at, ended_at, ticks, items_obtained, level_ups)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		formatTime(rec.StartedAt),
		formatTime(rec.EndedAt),
		rec.Ticks,
		rec.ItemsObtained,
		rec.LevelUps,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save session: %w", err)
	}

	for _, sk := range rec.Skills {
		_, err := tx.Exec(
			`INSERT INTO session_skills (session_id, skill, level, experience, gained)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID.String(), sk.Skill, sk.Level, sk.Experience, sk.Gained,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("storage: cannot save skill %s: %w", sk.Skill, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return rec.ID, nil
}

// RecentSessions retrieves the most recently ended sessions with skills.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, ended_at, ticks, items_obtained, level_ups
		 FROM sessions
		 ORDER BY ended_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var id string
		var started, ended any
		if err := rows.Scan(&id, &started, &ended, &rec.Ticks, &rec.ItemsObtained, &rec.LevelUps); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad session id %q: %w", id, err)
		}
		rec.StartedAt = parseTime(started)
		rec.EndedAt = parseTime(ended)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range records {
		skills, err := s.sessionSkills(records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Skills = skills
	}
	return records, nil
}

// Session retrieves one session by ID. Returns nil if it does not exist.
func (s *Store) Session(id uuid.UUID) (*SessionRecord, error) {
	rec := SessionRecord{ID: id}
	var started, ended any

	err := s.db.QueryRow(
		`SELECT started_at, ended_at, ticks, items_obtained, level_ups
		 FROM sessions WHERE id = ?`,
		id.String(),
	).Scan(&started, &ended, &rec.Ticks, &rec.ItemsObtained, &rec.LevelUps)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	rec.StartedAt = parseTime(started)
	rec.EndedAt = parseTime(ended)

	if rec.Skills, err = s.sessionSkills(id); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) sessionSkills(id uuid.UUID) ([]SkillRecord, error) {
	rows, err := s.db.Query(
		`SELECT skill, level, experience, gained
		 FROM session_skills
		 WHERE session_id = ?
		 ORDER BY skill`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session skills: %w", err)
	}
	defer rows.Close()

	var skills []SkillRecord
	for rows.Next() {
		var sk SkillRecord
		if err := rows.Scan(&sk.Skill, &sk.Level, &sk.Experience, &sk.Gained); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return skills, nil
}

// TopSkills retrieves the best N sessions for a skill by final experience.
func (s *Store) TopSkills(skill string, limit int) ([]SkillEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT k.session_id, k.skill, k.level, k.experience, s.ended_at
		 FROM session_skills k
		 JOIN sessions s ON s.id = k.session_id
		 WHERE k.skill = ?
		 ORDER BY k.experience DESC, s.ended_at DESC
		 LIMIT ?`,
		skill, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query skills: %w", err)
	}
	defer rows.Close()

	var entries []SkillEntry
	for rows.Next() {
		var e SkillEntry
		var id string
		var ended any
		if err := rows.Scan(&id, &e.Skill, &e.Level, &e.Experience, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.SessionID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad session id %q: %w", id, err)
		}
		e.EndedAt = parseTime(ended)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestLevel returns the highest recorded level for a skill.
// Returns 0 if no sessions exist.
func (s *Store) BestLevel(skill string) (int, error) {
	var level sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(level) FROM session_skills WHERE skill = ?",
		skill,
	).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best level: %w", err)
	}
	if !level.Valid {
		return 0, nil
	}
	return int(level.Int64), nil
}

// SessionCount returns the number of stored sessions.
func (s *Store) SessionCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return n, nil
}

// ClearSessions deletes every stored session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM session_skills"); err != nil {
		return fmt.Errorf("storage: cannot clear skills: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles both time.Time and string, depending on what the
// driver returns for the column.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
