package teenpattitable

import (
	"time"
)

type ActionType string

const (
	ActionType_Boot  ActionType = "boot"
	ActionType_Blind ActionType = "blind"
	ActionType_Chaal ActionType = "chaal"
	ActionType_Fold  ActionType = "fold"
	ActionType_Show  ActionType = "show"
	ActionType_See   ActionType = "see"
	ActionType_Pack  ActionType = "pack" // synonym of fold
)

type Action struct {
	Type          ActionType `json:"type"`
	PlayerID      string     `json:"player_id"`
	Amount        int64      `json:"amount"`
	Timestamp     int64      `json:"timestamp"` // Seconds
	IsBlindAction bool       `json:"is_blind_action"`
}

func NewAction(actionType ActionType, playerID string, amount int64) Action {
	return Action{
		Type:      actionType,
		PlayerID:  playerID,
		Amount:    amount,
		Timestamp: time.Now().Unix(),
	}
}

// EndsTurn reports whether the action hands the turn to the next player.
// Seeing cards keeps the turn with the acting player.
func (a Action) EndsTurn() bool {
	return a.Type != ActionType_See
}
