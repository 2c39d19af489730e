package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder stores events in a single sqlite table. Each append is
// one INSERT, so concurrent writers do not race.
type SQLiteRecorder struct {
	db *sql.DB
}

const interactionsSchema = `
	CREATE TABLE IF NOT EXISTS interactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_message TEXT NOT NULL,
		bot_reply TEXT NOT NULL
	)
`

func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(interactionsSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create interactions table: %w", err)
	}
	return &SQLiteRecorder{db: db}, nil
}

func (r *SQLiteRecorder) AppendInteraction(event Event) error {
	_, err := r.db.Exec(
		"INSERT INTO interactions (timestamp, user_id, user_message, bot_reply) VALUES (?, ?, ?, ?)",
		event.Timestamp.UTC().Format(time.RFC3339Nano),
		event.UserID,
		event.UserMessage,
		event.BotReply,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) LoadInteractions() ([]Event, error) {
	rows, err := r.db.Query(
		"SELECT timestamp, user_id, user_message, bot_reply FROM interactions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var events []Event
	for rows.Next() {
		var ev Event
		var ts string
		if err := rows.Scan(&ts, &ev.UserID, &ev.UserMessage, &ev.BotReply); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		ev.Timestamp = t
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return events, nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
