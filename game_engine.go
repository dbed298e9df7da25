package teenpattitable

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/weedbox/syncsaga"
	"github.com/weedbox/timebank"
	"go.uber.org/zap"
)

var (
	ErrGameInvalidCreateSetting = errors.New("game: invalid create game setting")
	ErrGamePlayerNotFound       = errors.New("game: player not found")
	ErrGamePlayerAlreadyJoined  = errors.New("game: player already joined")
	ErrGameNoSeatsAvailable     = errors.New("game: no seats available")
	ErrGameAlreadyStarted       = errors.New("game: game already started")
	ErrGameNotEnoughPlayers     = errors.New("game: at least 2 players required")
	ErrGameNotActive            = errors.New("game: game is not active")
	ErrGameInvalidPhase         = errors.New("game: action not available in this phase")
)

type GameEngineOpt func(*gameEngine)

type GameEngine interface {
	// Events
	OnGameUpdated(fn func(*Game))                 // game state listener
	OnGameErrorUpdated(fn func(*Game, error))     // error listener
	OnGamePhaseUpdated(fn func(GamePhase, *Game)) // phase transition listener
	OnBettingRoundSettled(fn func(*Game))         // every un-folded bet matched
	OnGameSettled(fn func(*Game, *GameResult))    // settlement listener

	// Game actions
	GetGame() *Game                                // current game snapshot
	GetStats() *GameStats                          // aggregate stats
	CreateGame(setting GameSetting) (*Game, error) // create the session
	StartGame() error                              // collect boots and start betting
	NewRound() error                               // manual round bump
	SelectWinner(playerID string) error            // declare the winner and settle
	FinalizeGame() error                           // showdown -> finished
	EndGame() error                                // abort without settlement

	// Player table actions
	PlayerJoin(joinPlayer JoinPlayer) error            // join before the game starts
	SetPlayerHand(playerID string, cards []Card) error // record a player's physical cards

	// Player game actions
	PlayerBoot(playerID string) error                // post the boot
	PlayerBlind(playerID string, amount int64) error // bet without having seen cards
	PlayerChaal(playerID string, amount int64) error // bet after seeing cards
	PlayerSee(playerID string) error                 // look at cards, free
	PlayerShow(playerID string, amount int64) error  // force the final comparison
	PlayerFold(playerID string) error                // withdraw from the hand
}

type gameEngine struct {
	lock                  sync.Mutex
	options               *GameEngineOptions
	game                  *Game
	stats                 *GameStats
	gameStore             GameStore
	rg                    *syncsaga.ReadyGroup
	tb                    *timebank.TimeBank
	logger                *zap.Logger
	onGameUpdated         func(*Game)
	onGameErrorUpdated    func(*Game, error)
	onGamePhaseUpdated    func(GamePhase, *Game)
	onBettingRoundSettled func(*Game)
	onGameSettled         func(*Game, *GameResult)
}

func NewGameEngine(options *GameEngineOptions, opts ...GameEngineOpt) GameEngine {
	callbacks := NewGameEngineCallbacks()
	ge := &gameEngine{
		options:               options,
		rg:                    syncsaga.NewReadyGroup(),
		tb:                    timebank.NewTimeBank(),
		logger:                zap.NewNop(),
		onGameUpdated:         callbacks.OnGameUpdated,
		onGameErrorUpdated:    callbacks.OnGameErrorUpdated,
		onGamePhaseUpdated:    callbacks.OnGamePhaseUpdated,
		onBettingRoundSettled: callbacks.OnBettingRoundSettled,
		onGameSettled:         callbacks.OnGameSettled,
	}

	for _, opt := range opts {
		opt(ge)
	}

	if ge.gameStore == nil {
		ge.gameStore = NewMemoryGameStore()
	}

	return ge
}

func WithGameStore(gs GameStore) GameEngineOpt {
	return func(ge *gameEngine) {
		ge.gameStore = gs
	}
}

func WithLogger(logger *zap.Logger) GameEngineOpt {
	return func(ge *gameEngine) {
		ge.logger = logger
	}
}

func (ge *gameEngine) OnGameUpdated(fn func(*Game)) {
	ge.onGameUpdated = fn
}

func (ge *gameEngine) OnGameErrorUpdated(fn func(*Game, error)) {
	ge.onGameErrorUpdated = fn
}

func (ge *gameEngine) OnGamePhaseUpdated(fn func(GamePhase, *Game)) {
	ge.onGamePhaseUpdated = fn
}

func (ge *gameEngine) OnBettingRoundSettled(fn func(*Game)) {
	ge.onBettingRoundSettled = fn
}

func (ge *gameEngine) OnGameSettled(fn func(*Game, *GameResult)) {
	ge.onGameSettled = fn
}

func (ge *gameEngine) GetGame() *Game {
	return ge.game
}

func (ge *gameEngine) GetStats() *GameStats {
	return ge.stats
}

func (ge *gameEngine) CreateGame(setting GameSetting) (*Game, error) {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if len(setting.JoinPlayers) > setting.Rules.MaxPlayers {
		return nil, ErrGameInvalidCreateSetting
	}

	gameID := setting.GameID
	if gameID == "" {
		gameID = uuid.New().String()
	}

	game := &Game{
		ID: gameID,
		Meta: GameMeta{
			Name:  setting.Name,
			Rules: setting.Rules,
		},
	}

	state := GameState{
		Players:            make([]*PlayerState, 0),
		Pot:                0,
		CurrentRound:       0,
		BootAmount:         setting.Rules.BootAmount,
		CurrentBet:         setting.Rules.BootAmount,
		MinBet:             setting.Rules.BootAmount,
		CurrentPlayerIndex: UnsetValue,
		DealerIndex:        0,
		Phase:              GamePhase_Boot,
		IsGameActive:       false,
		GameHistory:        make([]*GameResult, 0),
	}
	game.State = &state
	ge.game = game

	// Durable entries load once per session. Load failures fall back to
	// empty defaults, the session still starts.
	history, err := ge.gameStore.LoadHistory()
	if err != nil {
		ge.logger.Warn("failed to load game history", zap.Error(err))
		history = make([]*GameResult, 0)
	}
	ge.game.State.GameHistory = history

	stats, err := ge.gameStore.LoadStats()
	if err != nil {
		ge.logger.Warn("failed to load game stats", zap.Error(err))
		stats = NewGameStats()
	}
	ge.stats = stats

	for _, joinPlayer := range setting.JoinPlayers {
		if err := ge.playerJoin(joinPlayer); err != nil {
			return nil, err
		}
	}

	ge.emitEvent("CreateGame", "")
	return ge.game, nil
}

func (ge *gameEngine) PlayerJoin(joinPlayer JoinPlayer) error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if err := ge.playerJoin(joinPlayer); err != nil {
		return err
	}

	ge.emitEvent("PlayerJoin", joinPlayer.PlayerID)
	return nil
}

func (ge *gameEngine) SetPlayerHand(playerID string, cards []Card) error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if len(cards) != 3 {
		return ErrHandInvalidSize
	}

	playerIdx := ge.game.FindPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return ErrGamePlayerNotFound
	}

	hand := make([]Card, len(cards))
	copy(hand, cards)
	ge.game.State.Players[playerIdx].Hand = hand

	ge.emitEvent("SetPlayerHand", playerID)
	return nil
}

/*
StartGame resets every player for a fresh game and collects boots. With a
boot timeout configured, each player posts their own boot through
PlayerBoot and stragglers are auto-posted when the timeout fires.
Without one, every boot is posted immediately and betting starts at once.
*/
func (ge *gameEngine) StartGame() error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if ge.game.State.IsGameActive {
		return ErrGameAlreadyStarted
	}
	if len(ge.game.State.Players) < 2 {
		return ErrGameNotEnoughPlayers
	}

	ge.game.ResetPlayersForNewGame()
	ge.game.State.CurrentRound = 1
	ge.game.State.WinnerID = ""
	ge.game.State.CurrentBet = ge.game.Meta.Rules.BootAmount
	ge.game.State.MinBet = ge.game.Meta.Rules.BootAmount
	ge.game.State.IsGameActive = true
	ge.game.State.CurrentPlayerIndex = UnsetValue
	ge.updatePhase(GamePhase_Boot)

	if ge.options.BootTimeoutSeconds <= 0 {
		for _, player := range ge.game.State.Players {
			if err := ge.applyBoot(player.PlayerID); err != nil {
				return err
			}
		}
		ge.enterBettingPhase()
		ge.emitEvent("StartGame", "")
		return nil
	}

	ge.runBootReadinessCheck()
	ge.emitEvent("StartGame", "")
	return nil
}

func (ge *gameEngine) PlayerBoot(playerID string) error {
	ge.lock.Lock()

	if !ge.game.State.IsGameActive || ge.game.State.Phase != GamePhase_Boot {
		ge.lock.Unlock()
		return ErrGameInvalidPhase
	}

	playerIdx := ge.game.FindPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		ge.lock.Unlock()
		return ErrGamePlayerNotFound
	}

	if err := ge.applyBoot(playerID); err != nil {
		ge.lock.Unlock()
		return err
	}

	ge.emitEvent("PlayerBoot", playerID)
	ge.lock.Unlock()

	// the ready group completion callback re-acquires the lock
	ge.rg.Ready(int64(playerIdx))
	return nil
}

func (ge *gameEngine) PlayerBlind(playerID string, amount int64) error {
	action := NewAction(ActionType_Blind, playerID, amount)
	action.IsBlindAction = true
	return ge.handleAction(action)
}

func (ge *gameEngine) PlayerChaal(playerID string, amount int64) error {
	return ge.handleAction(NewAction(ActionType_Chaal, playerID, amount))
}

func (ge *gameEngine) PlayerSee(playerID string) error {
	return ge.handleAction(NewAction(ActionType_See, playerID, 0))
}

func (ge *gameEngine) PlayerShow(playerID string, amount int64) error {
	return ge.handleAction(NewAction(ActionType_Show, playerID, amount))
}

func (ge *gameEngine) PlayerFold(playerID string) error {
	return ge.handleAction(NewAction(ActionType_Pack, playerID, 0))
}

func (ge *gameEngine) NewRound() error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if !ge.game.State.IsGameActive {
		return ErrGameNotActive
	}

	ge.game.State.CurrentRound++
	ge.game.State.WinnerID = ""

	ge.emitEvent("NewRound", "")
	return nil
}

/*
SelectWinner settles the pot on a manually declared winner: pays the pot
(plus blind bonus), recomputes profits, appends the result to history,
folds it into the stats and rewrites both durable entries. The phase
moves to showdown; FinalizeGame (or the display timer, when configured)
moves it to finished.
*/
func (ge *gameEngine) SelectWinner(playerID string) error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	state := ge.game.State
	if !state.IsGameActive {
		return ErrGameNotActive
	}
	pot := TotalPot(state.Players)

	updatedPlayers, result, err := Settle(state.Players, playerID, pot, state.CurrentRound)
	if err != nil {
		ge.emitError(err)
		return err
	}

	winnerIdx := ge.game.FindPlayerIdx(playerID)
	winningRank := HandRank(UnsetValue)
	if hand := state.Players[winnerIdx].Hand; len(hand) == 3 {
		if eval, evalErr := EvaluateHand(hand); evalErr == nil {
			winningRank = eval.Rank
		}
	}

	var losingBets int64
	for idx, player := range state.Players {
		if idx != winnerIdx {
			losingBets += player.TotalBet
		}
	}

	state.Players = updatedPlayers
	state.WinnerID = playerID
	state.IsGameActive = false
	state.GameHistory = append(state.GameHistory, result)
	ge.game.RefreshPot()
	ge.stats.ApplyResult(result, pot, losingBets, winningRank)

	ge.persist()
	ge.updatePhase(GamePhase_Showdown)
	ge.emitEvent("SelectWinner", playerID)
	ge.onGameSettled(ge.game, result)

	// optional display window before the session closes on its own
	if ge.options.ShowdownDisplaySeconds > 0 {
		_ = ge.tb.NewTask(time.Duration(ge.options.ShowdownDisplaySeconds)*time.Second, func(isCancelled bool) {
			if isCancelled {
				return
			}
			_ = ge.FinalizeGame()
		})
	}

	return nil
}

func (ge *gameEngine) FinalizeGame() error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if ge.game.State.Phase != GamePhase_Showdown {
		return ErrGameInvalidPhase
	}

	ge.updatePhase(GamePhase_Finished)
	ge.emitEvent("FinalizeGame", "")
	return nil
}

func (ge *gameEngine) EndGame() error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	ge.game.State.IsGameActive = false
	ge.game.State.WinnerID = ""
	ge.updatePhase(GamePhase_Finished)

	ge.emitEvent("EndGame", "")
	return nil
}
