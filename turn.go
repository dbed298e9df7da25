package teenpattitable

import (
	"github.com/thoas/go-funk"
)

// NextPlayerIndex scans forward cyclically from currentIndex+1 and returns
// the first un-folded player's index. It returns UnsetValue when one or
// zero un-folded players remain, which signals the caller to stop
// advancing turns and move the game toward settlement.
func NextPlayerIndex(players []*PlayerState, currentIndex int) int {
	unfolded := UnfoldedPlayers(players)
	if len(unfolded) <= 1 {
		return UnsetValue
	}

	nextIndex := (currentIndex + 1) % len(players)
	for attempts := 0; attempts < len(players); attempts++ {
		if !players[nextIndex].IsFolded {
			return nextIndex
		}
		nextIndex = (nextIndex + 1) % len(players)
	}

	// unreachable given the check above, but never loop forever
	return UnsetValue
}

// ShouldEndBettingRound is true when one or zero un-folded players remain,
// or when every un-folded player has matched the same non-zero bet. A
// round where nobody has bet yet is never settled.
func ShouldEndBettingRound(players []*PlayerState) bool {
	unfolded := UnfoldedPlayers(players)
	if len(unfolded) <= 1 {
		return true
	}

	commonBet := unfolded[0].CurrentBet
	for _, player := range unfolded {
		if player.CurrentBet != commonBet {
			return false
		}
	}
	return commonBet > 0
}

// PlaySequence lists the un-folded players in acting order, starting from
// the seat after the dealer.
func PlaySequence(players []*PlayerState, dealerIndex int) []*PlayerState {
	sequence := make([]*PlayerState, 0, len(players))
	for i := 1; i <= len(players); i++ {
		playerIndex := (dealerIndex + i) % len(players)
		if !players[playerIndex].IsFolded {
			sequence = append(sequence, players[playerIndex])
		}
	}
	return sequence
}

func UnfoldedPlayers(players []*PlayerState) []*PlayerState {
	return funk.Filter(players, func(p *PlayerState) bool {
		return !p.IsFolded
	}).([]*PlayerState)
}
