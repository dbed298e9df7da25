package teenpattitable

import (
	"errors"

	"github.com/thoas/go-funk"
)

var (
	ErrRulesPlayerFolded           = errors.New("rules: folded players cannot act")
	ErrRulesInvalidBootAmount      = errors.New("rules: boot amount does not match the configured boot")
	ErrRulesBetBelowMinimum        = errors.New("rules: bet is below the minimum for this stake")
	ErrRulesBetAboveMaximum        = errors.New("rules: bet is above the maximum for this stake")
	ErrRulesShowCostMismatch       = errors.New("rules: show cost does not match the current stake")
	ErrRulesShowRequiresTwoPlayers = errors.New("rules: show is only allowed between the last 2 players")
	ErrRulesSeeingIsFree           = errors.New("rules: seeing cards is free")
	ErrRulesAlreadySeen            = errors.New("rules: player has already seen cards")
)

type Rules struct {
	MaxPlayers         int   `json:"max_players"`
	BootAmount         int64 `json:"boot_amount"`
	BlindBetMultiplier int64 `json:"blind_bet_multiplier"` // blind players bet 1x
	SeenBetMultiplier  int64 `json:"seen_bet_multiplier"`  // seen players bet 2x
	MaxBetLimit        int64 `json:"max_bet_limit"`        // maximum bet as a multiple of the minimum
	ShowCost           int64 `json:"show_cost"`            // show cost as a multiple of the current stake
}

func NewDefaultRules() Rules {
	return Rules{
		MaxPlayers:         6,
		BootAmount:         10,
		BlindBetMultiplier: 1,
		SeenBetMultiplier:  2,
		MaxBetLimit:        2,
		ShowCost:           2,
	}
}

// BetLimits computes the legal bet range for the current stake. The
// blind/seen multiplier applies to the minimum, and the maximum is
// MaxBetLimit times that already-multiplied minimum.
func (r Rules) BetLimits(currentStake int64, isBlindPlayer bool) (minBet, maxBet int64) {
	multiplier := r.SeenBetMultiplier
	if isBlindPlayer {
		multiplier = r.BlindBetMultiplier
	}

	minBet = currentStake * multiplier
	maxBet = currentStake * r.MaxBetLimit * multiplier
	return minBet, maxBet
}

/*
ValidateAction checks a proposed action against the betting rules and the
current table. It never mutates anything; effects are applied by the
caller only after a nil result.

Checks in order:
 1. folded players may never act
 2. boot must match the configured boot amount
 3. chaal/blind must be inside BetLimits for the player's blind status
 4. show must cost exactly stake * ShowCost, and only with 2 players left
 5. see is free and only available once
*/
func (r Rules) ValidateAction(player *PlayerState, action Action, currentStake int64, players []*PlayerState) error {
	if player.IsFolded {
		return ErrRulesPlayerFolded
	}

	minBet, maxBet := r.BetLimits(currentStake, player.IsBlindPlaying())

	switch action.Type {
	case ActionType_Boot:
		if action.Amount != r.BootAmount {
			return ErrRulesInvalidBootAmount
		}
	case ActionType_Chaal, ActionType_Blind:
		if action.Amount < minBet {
			return ErrRulesBetBelowMinimum
		}
		if action.Amount > maxBet {
			return ErrRulesBetAboveMaximum
		}
	case ActionType_Show:
		if action.Amount != currentStake*r.ShowCost {
			return ErrRulesShowCostMismatch
		}
		unfolded := funk.Filter(players, func(p *PlayerState) bool {
			return !p.IsFolded
		}).([]*PlayerState)
		if len(unfolded) > 2 {
			return ErrRulesShowRequiresTwoPlayers
		}
	case ActionType_See:
		if action.Amount != 0 {
			return ErrRulesSeeingIsFree
		}
		if player.HasSeen {
			return ErrRulesAlreadySeen
		}
	case ActionType_Fold, ActionType_Pack:
		// always legal for an un-folded player
	}

	return nil
}
