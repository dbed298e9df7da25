package teenpattitable

import (
	"github.com/weedbox/syncsaga"
	"go.uber.org/zap"
)

func (ge *gameEngine) emitEvent(eventName string, playerID string) {
	ge.game.RefreshUpdateAt()
	ge.logger.Debug("game event",
		zap.String("event", eventName),
		zap.String("player_id", playerID),
		zap.Int64("serial", ge.game.UpdateSerial))
	ge.onGameUpdated(ge.game)
}

func (ge *gameEngine) emitError(err error) {
	ge.onGameErrorUpdated(ge.game, err)
}

func (ge *gameEngine) updatePhase(phase GamePhase) {
	ge.game.State.Phase = phase
	ge.onGamePhaseUpdated(phase, ge.game)
}

func (ge *gameEngine) playerJoin(joinPlayer JoinPlayer) error {
	if ge.game.State.IsGameActive {
		return ErrGameAlreadyStarted
	}
	if len(ge.game.State.Players) == ge.game.Meta.Rules.MaxPlayers {
		return ErrGameNoSeatsAvailable
	}
	if ge.game.FindPlayerIdx(joinPlayer.PlayerID) != UnsetValue {
		return ErrGamePlayerAlreadyJoined
	}

	player := PlayerState{
		PlayerID:       joinPlayer.PlayerID,
		Name:           joinPlayer.Name,
		IsActive:       true,
		IsBlind:        true,
		InitialBalance: joinPlayer.InitialBalance,
		TurnOrder:      len(ge.game.State.Players),
	}
	ge.game.State.Players = append(ge.game.State.Players, &player)
	return nil
}

// applyBoot posts the boot for one player. Posting twice is a no-op so
// the timeout path can sweep every seat safely.
func (ge *gameEngine) applyBoot(playerID string) error {
	playerIdx := ge.game.FindPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return ErrGamePlayerNotFound
	}
	player := ge.game.State.Players[playerIdx]
	if player.CurrentBet > 0 {
		return nil
	}

	action := NewAction(ActionType_Boot, playerID, ge.game.Meta.Rules.BootAmount)
	if err := ge.game.Meta.Rules.ValidateAction(player, action, ge.game.State.CurrentBet, ge.game.State.Players); err != nil {
		ge.emitError(err)
		return err
	}

	player.TotalBet += action.Amount
	player.CurrentBet = action.Amount
	ge.game.RefreshPot()
	return nil
}

func (ge *gameEngine) enterBettingPhase() {
	ge.game.State.CurrentPlayerIndex = NextPlayerIndex(ge.game.State.Players, ge.game.State.DealerIndex)
	ge.updatePhase(GamePhase_Betting)
}

// runBootReadinessCheck arms the ready group for the boot phase: every
// seat that posts its boot reports ready, the timeout sweeps the rest,
// and completion opens betting.
func (ge *gameEngine) runBootReadinessCheck() {
	ge.rg.Stop()
	ge.rg.SetTimeoutInterval(ge.options.BootTimeoutSeconds)
	ge.rg.OnTimeout(func(rg *syncsaga.ReadyGroup) {
		states := rg.GetParticipantStates()
		for playerIdx, isReady := range states {
			if !isReady {
				ge.lock.Lock()
				_ = ge.applyBoot(ge.game.State.Players[playerIdx].PlayerID)
				ge.emitEvent("AutoBoot", ge.game.State.Players[playerIdx].PlayerID)
				ge.lock.Unlock()
				rg.Ready(playerIdx)
			}
		}
	})
	ge.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		ge.lock.Lock()
		defer ge.lock.Unlock()
		if ge.game.State.Phase != GamePhase_Boot {
			return
		}
		ge.enterBettingPhase()
		ge.emitEvent("BootCompleted", "")
	})

	ge.rg.ResetParticipants()
	for playerIdx := 0; playerIdx < len(ge.game.State.Players); playerIdx++ {
		ge.rg.Add(int64(playerIdx), false)
	}
	ge.rg.Start()
}

/*
handleAction is the single path for betting-phase actions: validate
against the rules first, apply only on success, then move the turn
pointer for every action type except see. The pot is recomputed from the
players' total bets on every transition.
*/
func (ge *gameEngine) handleAction(action Action) error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	state := ge.game.State
	if !state.IsGameActive || state.Phase != GamePhase_Betting {
		return ErrGameInvalidPhase
	}

	playerIdx := ge.game.FindPlayerIdx(action.PlayerID)
	if playerIdx == UnsetValue {
		return ErrGamePlayerNotFound
	}
	player := state.Players[playerIdx]

	if err := ge.game.Meta.Rules.ValidateAction(player, action, state.CurrentBet, state.Players); err != nil {
		ge.emitError(err)
		return err
	}

	switch action.Type {
	case ActionType_See:
		player.HasSeen = true
		player.IsBlind = false
	case ActionType_Fold, ActionType_Pack:
		player.IsFolded = true
		player.IsActive = false
	case ActionType_Blind, ActionType_Chaal, ActionType_Show, ActionType_Boot:
		player.TotalBet += action.Amount
		player.CurrentBet = action.Amount
		player.IsActive = true
		if action.Amount > state.CurrentBet {
			state.CurrentBet = action.Amount
		}
	}

	ge.game.RefreshPot()

	if action.Type == ActionType_Show {
		// a show always forces the comparison and ends the betting
		ge.updatePhase(GamePhase_Showdown)
	} else if action.EndsTurn() {
		ge.advanceTurn()
	}

	// every un-folded stake matched means the round can close; seeing
	// cards changes no stakes so it never raises the signal
	if state.Phase == GamePhase_Betting && action.EndsTurn() && ShouldEndBettingRound(state.Players) {
		ge.onBettingRoundSettled(ge.game)
	}

	ge.emitEvent("PlayerAction:"+string(action.Type), action.PlayerID)
	return nil
}

// advanceTurn moves the turn pointer to the next un-folded player. When
// none is left to act against, the game heads to showdown for manual
// winner selection instead of looping.
func (ge *gameEngine) advanceTurn() {
	nextIdx := NextPlayerIndex(ge.game.State.Players, ge.game.State.CurrentPlayerIndex)
	if nextIdx == UnsetValue {
		ge.updatePhase(GamePhase_Showdown)
		return
	}
	ge.game.State.CurrentPlayerIndex = nextIdx
}

// persist rewrites both durable entries. History first, stats second;
// there is no transactional coordination between the two.
func (ge *gameEngine) persist() {
	if err := ge.gameStore.SaveHistory(ge.game.State.GameHistory); err != nil {
		ge.logger.Warn("failed to save game history", zap.Error(err))
		ge.emitError(err)
	}
	if err := ge.gameStore.SaveStats(ge.stats); err != nil {
		ge.logger.Warn("failed to save game stats", zap.Error(err))
		ge.emitError(err)
	}
}
