package teenpattitable

import (
	"errors"
	"sync"
)

var (
	ErrManagerGameNotFound = errors.New("manager: game not found")
)

// Manager tracks table engines by game ID for hosts running several
// sessions at once.
type Manager interface {
	Reset()

	// GameEngine Actions
	GetGameEngine(gameID string) (GameEngine, error)
	CreateGame(options *GameEngineOptions, callbacks *GameEngineCallbacks, setting GameSetting) (*Game, error)
	CloseGame(gameID string) error
	StartGame(gameID string) error
	NewRound(gameID string) error
	SelectWinner(gameID, playerID string) error
	FinalizeGame(gameID string) error
	EndGame(gameID string) error

	// Player Table Actions
	PlayerJoin(gameID string, joinPlayer JoinPlayer) error
	SetPlayerHand(gameID, playerID string, cards []Card) error

	// Player Game Actions
	PlayerBoot(gameID, playerID string) error
	PlayerBlind(gameID, playerID string, amount int64) error
	PlayerChaal(gameID, playerID string, amount int64) error
	PlayerSee(gameID, playerID string) error
	PlayerShow(gameID, playerID string, amount int64) error
	PlayerFold(gameID, playerID string) error
}

type manager struct {
	gameEngines sync.Map
}

func NewManager() Manager {
	return &manager{
		gameEngines: sync.Map{},
	}
}

func (m *manager) Reset() {
	m.gameEngines = sync.Map{}
}

func (m *manager) GetGameEngine(gameID string) (GameEngine, error) {
	gameEngine, exist := m.gameEngines.Load(gameID)
	if !exist {
		return nil, ErrManagerGameNotFound
	}
	return gameEngine.(GameEngine), nil
}

func (m *manager) CreateGame(options *GameEngineOptions, callbacks *GameEngineCallbacks, setting GameSetting) (*Game, error) {
	var engineOptions *GameEngineOptions
	if options != nil {
		engineOptions = options
	} else {
		engineOptions = NewGameEngineOptions()
	}

	var engineCallbacks *GameEngineCallbacks
	if callbacks != nil {
		engineCallbacks = callbacks
	} else {
		engineCallbacks = NewGameEngineCallbacks()
	}

	gameEngine := NewGameEngine(engineOptions)
	gameEngine.OnGameUpdated(engineCallbacks.OnGameUpdated)
	gameEngine.OnGameErrorUpdated(engineCallbacks.OnGameErrorUpdated)
	gameEngine.OnGamePhaseUpdated(engineCallbacks.OnGamePhaseUpdated)
	gameEngine.OnBettingRoundSettled(engineCallbacks.OnBettingRoundSettled)
	gameEngine.OnGameSettled(engineCallbacks.OnGameSettled)
	game, err := gameEngine.CreateGame(setting)
	if err != nil {
		return nil, err
	}

	m.gameEngines.Store(game.ID, gameEngine)
	return game, nil
}

func (m *manager) CloseGame(gameID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}

	if err := gameEngine.EndGame(); err != nil {
		return err
	}

	m.gameEngines.Delete(gameID)
	return nil
}

func (m *manager) StartGame(gameID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.StartGame()
}

func (m *manager) NewRound(gameID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.NewRound()
}

func (m *manager) SelectWinner(gameID, playerID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.SelectWinner(playerID)
}

func (m *manager) FinalizeGame(gameID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.FinalizeGame()
}

func (m *manager) EndGame(gameID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.EndGame()
}

func (m *manager) PlayerJoin(gameID string, joinPlayer JoinPlayer) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerJoin(joinPlayer)
}

func (m *manager) SetPlayerHand(gameID, playerID string, cards []Card) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.SetPlayerHand(playerID, cards)
}

func (m *manager) PlayerBoot(gameID, playerID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerBoot(playerID)
}

func (m *manager) PlayerBlind(gameID, playerID string, amount int64) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerBlind(playerID, amount)
}

func (m *manager) PlayerChaal(gameID, playerID string, amount int64) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerChaal(playerID, amount)
}

func (m *manager) PlayerSee(gameID, playerID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerSee(playerID)
}

func (m *manager) PlayerShow(gameID, playerID string, amount int64) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerShow(playerID, amount)
}

func (m *manager) PlayerFold(gameID, playerID string) error {
	gameEngine, err := m.GetGameEngine(gameID)
	if err != nil {
		return err
	}
	return gameEngine.PlayerFold(playerID)
}
