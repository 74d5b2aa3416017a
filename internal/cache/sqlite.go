package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

const defaultSQLitePath = "data/splits.db"

// The table holds the single current snapshot; Set replaces the row.
const snapshotSchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	captured_at TEXT NOT NULL,
	games_json TEXT NOT NULL
);`

type sqliteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore creates (if needed) and opens a SQLite-backed
// snapshot store.
func NewSQLiteStore(path string) (Store, error) {
	if path == "" {
		path = defaultSQLitePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureWAL(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(snapshotSchemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure snapshot table: %w", err)
	}
	return &sqliteStore{path: path, db: db}, nil
}

func ensureWAL(db *sql.DB) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	for i := 0; i < maxAttempts; i++ {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				time.Sleep(delay)
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("database is locked after retries")
}

func (s *sqliteStore) Get(ctx context.Context) (*splits.Snapshot, bool, error) {
	var capturedAt, gamesJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT captured_at, games_json FROM snapshot WHERE id = 1`,
	).Scan(&capturedAt, &gamesJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	ts, err := time.Parse(time.RFC3339Nano, capturedAt)
	if err != nil {
		return nil, false, fmt.Errorf("parse captured_at: %w", err)
	}
	var games []splits.Game
	if err := json.Unmarshal([]byte(gamesJSON), &games); err != nil {
		return nil, false, fmt.Errorf("unmarshal games: %w", err)
	}
	return &splits.Snapshot{Games: games, CapturedAt: ts}, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, snap splits.Snapshot) error {
	payload, err := json.Marshal(snap.Games)
	if err != nil {
		return fmt.Errorf("marshal games: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot`); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot (id, captured_at, games_json) VALUES (1, ?, ?)`,
		snap.CapturedAt.UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshot`)
	return err
}

func (s *sqliteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
