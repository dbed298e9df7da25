package teenpattitable

import (
	"encoding/json"
	"time"

	"github.com/thoas/go-funk"
)

type GamePhase string

const (
	GamePhase_Boot     GamePhase = "boot"     // boots being collected
	GamePhase_Betting  GamePhase = "betting"  // players acting in turn
	GamePhase_Showdown GamePhase = "showdown" // winner declared, results on display
	GamePhase_Finished GamePhase = "finished" // session settled and closed
)

type Game struct {
	ID           string     `json:"id"`
	Meta         GameMeta   `json:"meta"`
	State        *GameState `json:"state"`
	UpdateAt     int64      `json:"update_at"`     // Seconds
	UpdateSerial int64      `json:"update_serial"` // monotonically increasing per mutation
}

type GameMeta struct {
	Name  string `json:"name"`
	Rules Rules  `json:"rules"`
}

type GameState struct {
	Players            []*PlayerState `json:"players"` // order = seating/turn order
	Pot                int64          `json:"pot"`     // always sum of players' TotalBet
	CurrentRound       int            `json:"current_round"`
	BootAmount         int64          `json:"boot_amount"`
	CurrentBet         int64          `json:"current_bet"` // current stake for bet limits
	MinBet             int64          `json:"min_bet"`
	CurrentPlayerIndex int            `json:"current_player_index"`
	DealerIndex        int            `json:"dealer_index"`
	Phase              GamePhase      `json:"phase"`
	IsGameActive       bool           `json:"is_game_active"`
	WinnerID           string         `json:"winner_id,omitempty"` // cleared at round/game start
	GameHistory        []*GameResult  `json:"game_history"`        // append-only
}

type PlayerState struct {
	PlayerID       string `json:"player_id"`
	Name           string `json:"name"`
	TotalBet       int64  `json:"total_bet"`   // cumulative amount wagered this game
	CurrentBet     int64  `json:"current_bet"` // most recent single bet
	IsActive       bool   `json:"is_active"`
	IsFolded       bool   `json:"is_folded"`
	IsBlind        bool   `json:"is_blind"` // playing without seeing cards
	HasSeen        bool   `json:"has_seen"`
	TotalWins      int    `json:"total_wins"`
	TotalPoints    int64  `json:"total_points"`    // lifetime points won
	InitialBalance int64  `json:"initial_balance"` // constant per player for the session
	NetProfit      int64  `json:"net_profit"`      // TotalPoints - TotalBet, recomputed on settlement
	Hand           []Card `json:"hand,omitempty"`  // recorded physical cards, 3 when present
	TurnOrder      int    `json:"turn_order"`      // creation-order position
}

// IsBlindPlaying reports whether blind-rate betting still applies. Once a
// player has seen their cards the blind multiplier no longer applies,
// whatever the IsBlind label says.
func (p PlayerState) IsBlindPlaying() bool {
	return p.IsBlind && !p.HasSeen
}

// Game Setters
func (g *Game) RefreshUpdateAt() {
	g.UpdateAt = time.Now().Unix()
	g.UpdateSerial++
}

// RefreshPot recomputes the cached pot from the players' total bets. The
// pot is never tracked independently of that sum.
func (g *Game) RefreshPot() {
	g.State.Pot = TotalPot(g.State.Players)
}

// ResetPlayersForNewGame zeroes every player's per-game state and posts
// nothing; bets, folds and seen flags start clean while lifetime counters
// (wins, points) are kept.
func (g *Game) ResetPlayersForNewGame() {
	for _, player := range g.State.Players {
		player.TotalBet = 0
		player.CurrentBet = 0
		player.IsFolded = false
		player.IsActive = true
		player.IsBlind = true
		player.HasSeen = false
		player.Hand = nil
	}
	g.RefreshPot()
}

// Game Getters
func (g Game) GetJSON() (string, error) {
	encoded, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (g Game) UnfoldedPlayers() []*PlayerState {
	return UnfoldedPlayers(g.State.Players)
}

func (g Game) CurrentPlayer() *PlayerState {
	if g.State.CurrentPlayerIndex == UnsetValue || g.State.CurrentPlayerIndex >= len(g.State.Players) {
		return nil
	}
	return g.State.Players[g.State.CurrentPlayerIndex]
}

func (g Game) PlayerNames() []string {
	return funk.Map(g.State.Players, func(p *PlayerState) string {
		return p.Name
	}).([]string)
}

func (g Game) FindPlayerIdx(playerID string) int {
	for idx, player := range g.State.Players {
		if player.PlayerID == playerID {
			return idx
		}
	}
	return UnsetValue
}

func TotalPot(players []*PlayerState) int64 {
	var total int64
	for _, player := range players {
		total += player.TotalBet
	}
	return total
}
