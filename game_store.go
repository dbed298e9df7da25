package teenpattitable

import (
	"sync"
)

// GameStore is the durable side of the engine: two independent entries,
// the settled-game history and the aggregate stats. Both are read once
// when a game is created and rewritten in full after every settlement,
// last write wins. Implementations live outside the engine; see the
// store package for a sqlite-backed one.
type GameStore interface {
	LoadHistory() ([]*GameResult, error)
	SaveHistory(history []*GameResult) error
	LoadStats() (*GameStats, error)
	SaveStats(stats *GameStats) error
	Close() error
}

type memoryGameStore struct {
	mu      sync.Mutex
	history []*GameResult
	stats   *GameStats
}

// NewMemoryGameStore forgets everything on process exit. It backs engines
// created without an explicit store, and tests.
func NewMemoryGameStore() GameStore {
	return &memoryGameStore{}
}

func (ms *memoryGameStore) LoadHistory() ([]*GameResult, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	history := make([]*GameResult, len(ms.history))
	copy(history, ms.history)
	return history, nil
}

func (ms *memoryGameStore) SaveHistory(history []*GameResult) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.history = make([]*GameResult, len(history))
	copy(ms.history, history)
	return nil
}

func (ms *memoryGameStore) LoadStats() (*GameStats, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.stats == nil {
		return NewGameStats(), nil
	}
	clone := *ms.stats
	return &clone, nil
}

func (ms *memoryGameStore) SaveStats(stats *GameStats) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	clone := *stats
	ms.stats = &clone
	return nil
}

func (ms *memoryGameStore) Close() error {
	return nil
}
