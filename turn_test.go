package teenpattitable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPlayerIndex_SkipsFolded(t *testing.T) {
	players := []*PlayerState{
		{PlayerID: "a"},
		{PlayerID: "b", IsFolded: true},
		{PlayerID: "c"},
	}

	assert.Equal(t, 2, NextPlayerIndex(players, 0))
	assert.Equal(t, 0, NextPlayerIndex(players, 2))
}

func TestNextPlayerIndex_NoNextPlayer(t *testing.T) {
	players := []*PlayerState{
		{PlayerID: "a"},
		{PlayerID: "b", IsFolded: true},
		{PlayerID: "c", IsFolded: true},
	}

	assert.Equal(t, UnsetValue, NextPlayerIndex(players, 0))

	allFolded := []*PlayerState{
		{PlayerID: "a", IsFolded: true},
		{PlayerID: "b", IsFolded: true},
	}
	assert.Equal(t, UnsetValue, NextPlayerIndex(allFolded, 0))
}

func TestNextPlayerIndex_WrapsAround(t *testing.T) {
	players := []*PlayerState{
		{PlayerID: "a"},
		{PlayerID: "b"},
		{PlayerID: "c", IsFolded: true},
	}

	assert.Equal(t, 0, NextPlayerIndex(players, 1))
}

func TestShouldEndBettingRound(t *testing.T) {
	// one player left
	assert.True(t, ShouldEndBettingRound([]*PlayerState{
		{PlayerID: "a", CurrentBet: 10},
		{PlayerID: "b", IsFolded: true},
	}))

	// equal non-zero bets
	assert.True(t, ShouldEndBettingRound([]*PlayerState{
		{PlayerID: "a", CurrentBet: 20},
		{PlayerID: "b", CurrentBet: 20},
		{PlayerID: "c", IsFolded: true, CurrentBet: 10},
	}))

	// unequal bets
	assert.False(t, ShouldEndBettingRound([]*PlayerState{
		{PlayerID: "a", CurrentBet: 20},
		{PlayerID: "b", CurrentBet: 10},
	}))

	// a round with no bets placed is never settled
	assert.False(t, ShouldEndBettingRound([]*PlayerState{
		{PlayerID: "a"},
		{PlayerID: "b"},
	}))
}

func TestPlaySequence(t *testing.T) {
	players := []*PlayerState{
		{PlayerID: "a"},
		{PlayerID: "b", IsFolded: true},
		{PlayerID: "c"},
		{PlayerID: "d"},
	}

	sequence := PlaySequence(players, 0)
	ids := make([]string, 0, len(sequence))
	for _, player := range sequence {
		ids = append(ids, player.PlayerID)
	}
	assert.Equal(t, []string{"c", "d", "a"}, ids)
}
