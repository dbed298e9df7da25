package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/weedbox/teenpattitable"
)

func newTestStore(t *testing.T) (teenpattitable.GameStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "teenpatti.db")
	s, err := NewSQLiteStore(dbPath)
	assert.Nil(t, err)
	return s, dbPath
}

func TestSQLiteStore_EmptyDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	history, err := s.LoadHistory()
	assert.Nil(t, err)
	assert.Empty(t, history)

	stats, err := s.LoadStats()
	assert.Nil(t, err)
	assert.Equal(t, teenpattitable.NewGameStats(), stats)
}

func TestSQLiteStore_HistoryRoundTrip(t *testing.T) {
	s, dbPath := newTestStore(t)

	history := []*teenpattitable.GameResult{
		{
			ID:        "game-1",
			Date:      time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
			Players:   []string{"Jeffrey", "Chuck", "Fred"},
			Winner:    "Chuck",
			PotAmount: 150,
			Rounds:    3,
		},
		{
			ID:        "game-2",
			Date:      time.Date(2023, 11, 14, 22, 15, 0, 0, time.UTC),
			Players:   []string{"Jeffrey", "Chuck"},
			Winner:    "Jeffrey",
			PotAmount: 60,
			Rounds:    1,
		},
	}
	assert.Nil(t, s.SaveHistory(history))
	assert.Nil(t, s.Close())

	// reopen, the entry survives the process
	reopened, err := NewSQLiteStore(dbPath)
	assert.Nil(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadHistory()
	assert.Nil(t, err)
	assert.Equal(t, history, loaded)
}

func TestSQLiteStore_StatsRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	stats := teenpattitable.NewGameStats()
	stats.ApplyResult(&teenpattitable.GameResult{PotAmount: 150}, 100, 60, teenpattitable.HandRank_Trail)

	assert.Nil(t, s.SaveStats(stats))
	loaded, err := s.LoadStats()
	assert.Nil(t, err)
	assert.Equal(t, stats, loaded)
}

func TestSQLiteStore_RewriteReplacesEntry(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	assert.Nil(t, s.SaveHistory([]*teenpattitable.GameResult{{ID: "game-1"}}))
	assert.Nil(t, s.SaveHistory([]*teenpattitable.GameResult{{ID: "game-1"}, {ID: "game-2"}}))

	loaded, err := s.LoadHistory()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(loaded))
}

func TestSQLiteStore_MalformedEntriesFallBack(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "teenpatti.db")
	s, err := NewSQLiteStore(dbPath)
	assert.Nil(t, err)
	defer s.Close()

	raw := s.(*sqliteStore)
	assert.Nil(t, raw.set(teenpattitable.StoreKey_GameHistory, "not json"))
	assert.Nil(t, raw.set(teenpattitable.StoreKey_GameStats, "{broken"))

	history, err := s.LoadHistory()
	assert.Nil(t, err)
	assert.Empty(t, history)

	stats, err := s.LoadStats()
	assert.Nil(t, err)
	assert.Equal(t, teenpattitable.NewGameStats(), stats)
}
