// Package store holds durable GameStore implementations for the table
// engine. The engine only sees the opaque key-value contract: two JSON
// entries, each read once at startup and rewritten in full after every
// mutation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/weedbox/teenpattitable"
)

type sqliteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

type SQLiteStoreOpt func(*sqliteStore)

func WithLogger(logger *zap.Logger) SQLiteStoreOpt {
	return func(ss *sqliteStore) {
		ss.logger = logger
	}
}

// NewSQLiteStore keeps both entries as JSON blobs in a single key-value
// table, so the schema stays as opaque as the contract demands.
func NewSQLiteStore(dbPath string, opts ...SQLiteStoreOpt) (teenpattitable.GameStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create kv table: %w", err)
	}

	ss := &sqliteStore{
		db:     db,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ss)
	}
	return ss, nil
}

func (ss *sqliteStore) LoadHistory() ([]*teenpattitable.GameResult, error) {
	history := make([]*teenpattitable.GameResult, 0)
	raw, found, err := ss.get(teenpattitable.StoreKey_GameHistory)
	if err != nil {
		return nil, err
	}
	if !found {
		return history, nil
	}

	// malformed entries fall back to empty, never fatal
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		ss.logger.Warn("malformed game history entry, using empty history",
			zap.String("key", teenpattitable.StoreKey_GameHistory),
			zap.Error(err))
		return make([]*teenpattitable.GameResult, 0), nil
	}
	return history, nil
}

func (ss *sqliteStore) SaveHistory(history []*teenpattitable.GameResult) error {
	encoded, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("store: encode game history: %w", err)
	}
	return ss.set(teenpattitable.StoreKey_GameHistory, string(encoded))
}

func (ss *sqliteStore) LoadStats() (*teenpattitable.GameStats, error) {
	raw, found, err := ss.get(teenpattitable.StoreKey_GameStats)
	if err != nil {
		return nil, err
	}
	if !found {
		return teenpattitable.NewGameStats(), nil
	}

	stats := teenpattitable.NewGameStats()
	if err := json.Unmarshal([]byte(raw), stats); err != nil {
		ss.logger.Warn("malformed game stats entry, using defaults",
			zap.String("key", teenpattitable.StoreKey_GameStats),
			zap.Error(err))
		return teenpattitable.NewGameStats(), nil
	}
	return stats, nil
}

func (ss *sqliteStore) SaveStats(stats *teenpattitable.GameStats) error {
	encoded, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("store: encode game stats: %w", err)
	}
	return ss.set(teenpattitable.StoreKey_GameStats, string(encoded))
}

func (ss *sqliteStore) Close() error {
	return ss.db.Close()
}

func (ss *sqliteStore) get(key string) (string, bool, error) {
	var value string
	err := ss.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: read %q: %w", key, err)
	}
	return value, true, nil
}

func (ss *sqliteStore) set(key, value string) error {
	_, err := ss.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}
