package teenpattitable

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"
)

var (
	ErrSettlementUnknownWinner = errors.New("settlement: winner is not a player of this game")
)

// GameResult is the immutable record appended to history on settlement.
// Date marshals to RFC 3339 so the persisted entry stays ISO-8601
// parseable for other readers of the store.
type GameResult struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Players   []string  `json:"players"`
	Winner    string    `json:"winner"`
	PotAmount int64     `json:"pot_amount"` // pot plus any blind-winner bonus
	Rounds    int       `json:"rounds"`
}

/*
Settle pays the declared winner and recomputes every player's running
profit. A blind winner collects a 50% bonus on top of the pot. The winner
gains the full winning amount as points; losers keep their points, but
everyone's NetProfit is recomputed as TotalPoints - TotalBet.

The input players are not touched; updated copies and a GameResult
snapshot come back, and persisting the result is the caller's business.
*/
func Settle(players []*PlayerState, winnerID string, pot int64, round int) ([]*PlayerState, *GameResult, error) {
	winnerIdx := UnsetValue
	for idx, player := range players {
		if player.PlayerID == winnerID {
			winnerIdx = idx
			break
		}
	}
	if winnerIdx == UnsetValue {
		return nil, nil, ErrSettlementUnknownWinner
	}

	var blindBonus int64
	if players[winnerIdx].IsBlind {
		blindBonus = pot / 2
	}
	totalWinning := pot + blindBonus

	updated := make([]*PlayerState, len(players))
	for idx, player := range players {
		clone := *player
		if idx == winnerIdx {
			clone.TotalWins++
			clone.TotalPoints += totalWinning
		}
		clone.NetProfit = clone.TotalPoints - clone.TotalBet
		updated[idx] = &clone
	}

	result := &GameResult{
		ID:   uuid.New().String(),
		Date: time.Now(),
		Players: funk.Map(players, func(p *PlayerState) string {
			return p.Name
		}).([]string),
		Winner:    players[winnerIdx].Name,
		PotAmount: totalWinning,
		Rounds:    round,
	}

	return updated, result, nil
}
