package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CachedTerm is one persisted food-term verdict.
type CachedTerm struct {
	Term   string
	IsFood bool
}

// ChatLogEntry records one routed exchange for later inspection.
type ChatLogEntry struct {
	ID        int64
	Message   string
	Response  string
	Route     string // "chat" or "exit"
	CreatedAt time.Time
}

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS food_terms (
		term       TEXT PRIMARY KEY,
		is_food    INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS chat_log (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		message    TEXT NOT NULL,
		response   TEXT NOT NULL,
		route      TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_chat_log_created_at ON chat_log(created_at);
	`
	if _, err = db.Exec(schema); err != nil {
		return nil, err
	}

	return db, nil
}

// SaveCachedTerms upserts a cache snapshot. Terms already present keep
// their original created_at so insertion order survives restarts.
func SaveCachedTerms(db *sql.DB, terms []CachedTerm) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO food_terms (term, is_food) VALUES (?, ?)
		 ON CONFLICT(term) DO UPDATE SET is_food = excluded.is_food`)
	if err != nil {
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range terms {
		if _, err := stmt.Exec(t.Term, boolToInt(t.IsFood)); err != nil {
			return fmt.Errorf("insert term %q: %w", t.Term, err)
		}
	}
	return tx.Commit()
}

// LoadCachedTerms returns persisted verdicts oldest first, so warming the
// cache with them reproduces the original insertion order.
func LoadCachedTerms(db *sql.DB) ([]CachedTerm, error) {
	rows, err := db.Query(`SELECT term, is_food FROM food_terms ORDER BY created_at, term`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []CachedTerm
	for rows.Next() {
		var t CachedTerm
		var isFood int
		if err := rows.Scan(&t.Term, &isFood); err != nil {
			return nil, err
		}
		t.IsFood = isFood != 0
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func InsertChatLog(db *sql.DB, entry ChatLogEntry) error {
	_, err := db.Exec(
		`INSERT INTO chat_log (message, response, route) VALUES (?, ?, ?)`,
		entry.Message, entry.Response, entry.Route)
	return err
}

// RecentChatLog returns the latest entries, newest first.
func RecentChatLog(db *sql.DB, limit int) ([]ChatLogEntry, error) {
	if limit < 1 {
		limit = 50
	}
	rows, err := db.Query(
		`SELECT id, message, response, route, created_at
		 FROM chat_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ChatLogEntry
	for rows.Next() {
		var e ChatLogEntry
		if err := rows.Scan(&e.ID, &e.Message, &e.Response, &e.Route, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
