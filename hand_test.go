package teenpattitable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hand(cards ...Card) []Card {
	return cards
}

func TestEvaluateHand_InvalidSize(t *testing.T) {
	_, err := EvaluateHand(hand(NewCard(CardSuit_Hearts, CardRank_Ace)))
	assert.ErrorIs(t, err, ErrHandInvalidSize)

	_, err = EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Ace),
		NewCard(CardSuit_Spades, CardRank_Two),
		NewCard(CardSuit_Clubs, CardRank_Three),
		NewCard(CardSuit_Diamonds, CardRank_Four),
	))
	assert.ErrorIs(t, err, ErrHandInvalidSize)
}

func TestEvaluateHand_Trail(t *testing.T) {
	eval, err := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_King),
		NewCard(CardSuit_Spades, CardRank_King),
		NewCard(CardSuit_Clubs, CardRank_King),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_Trail, eval.Rank)
	assert.Equal(t, 6000+13*100, eval.Score)
}

func TestEvaluateHand_PureSequence(t *testing.T) {
	eval, err := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Four),
		NewCard(CardSuit_Hearts, CardRank_Five),
		NewCard(CardSuit_Hearts, CardRank_Six),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_PureSequence, eval.Rank)
	assert.Equal(t, 5006, eval.Score)
}

func TestEvaluateHand_SequenceSpecialCases(t *testing.T) {
	qka, err := EvaluateHand(hand(
		NewCard(CardSuit_Spades, CardRank_Queen),
		NewCard(CardSuit_Spades, CardRank_King),
		NewCard(CardSuit_Spades, CardRank_Ace),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_PureSequence, qka.Rank)

	a23, err := EvaluateHand(hand(
		NewCard(CardSuit_Spades, CardRank_Ace),
		NewCard(CardSuit_Spades, CardRank_Two),
		NewCard(CardSuit_Spades, CardRank_Three),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_PureSequence, a23.Rank)

	kqj, err := EvaluateHand(hand(
		NewCard(CardSuit_Spades, CardRank_King),
		NewCard(CardSuit_Spades, CardRank_Queen),
		NewCard(CardSuit_Spades, CardRank_Jack),
	))
	assert.Nil(t, err)

	fourFiveSix, err := EvaluateHand(hand(
		NewCard(CardSuit_Spades, CardRank_Four),
		NewCard(CardSuit_Spades, CardRank_Five),
		NewCard(CardSuit_Spades, CardRank_Six),
	))
	assert.Nil(t, err)

	// Q-K-A is the highest sequence, A-2-3 the second highest
	assert.Greater(t, qka.Score, a23.Score)
	assert.Greater(t, a23.Score, kqj.Score)
	assert.Greater(t, kqj.Score, fourFiveSix.Score)
}

func TestEvaluateHand_SequenceVsPureSequence(t *testing.T) {
	mixed, err := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Four),
		NewCard(CardSuit_Spades, CardRank_Five),
		NewCard(CardSuit_Clubs, CardRank_Six),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_Sequence, mixed.Rank)

	suited, err := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Four),
		NewCard(CardSuit_Hearts, CardRank_Five),
		NewCard(CardSuit_Hearts, CardRank_Six),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_PureSequence, suited.Rank)
	assert.Greater(t, CompareHands(suited, mixed), 0)
}

func TestEvaluateHand_Color(t *testing.T) {
	eval, err := EvaluateHand(hand(
		NewCard(CardSuit_Clubs, CardRank_King),
		NewCard(CardSuit_Clubs, CardRank_Nine),
		NewCard(CardSuit_Clubs, CardRank_Two),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_Color, eval.Rank)
	assert.Equal(t, 3000+13*10000+9*100+2, eval.Score)
}

func TestEvaluateHand_Pair(t *testing.T) {
	eval, err := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Nine),
		NewCard(CardSuit_Spades, CardRank_Nine),
		NewCard(CardSuit_Clubs, CardRank_Four),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_Pair, eval.Rank)
	assert.Equal(t, 2000+9*100+4, eval.Score)
}

func TestEvaluateHand_HighCard(t *testing.T) {
	eval, err := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_King),
		NewCard(CardSuit_Spades, CardRank_Nine),
		NewCard(CardSuit_Clubs, CardRank_Two),
	))
	assert.Nil(t, err)
	assert.Equal(t, HandRank_HighCard, eval.Rank)
	assert.Equal(t, 1000+13*10000+9*100+2, eval.Score)
}

func TestCompareHands_CategoryOrder(t *testing.T) {
	trail, _ := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Two),
		NewCard(CardSuit_Spades, CardRank_Two),
		NewCard(CardSuit_Clubs, CardRank_Two),
	))
	pureSequence, _ := EvaluateHand(hand(
		NewCard(CardSuit_Spades, CardRank_Queen),
		NewCard(CardSuit_Spades, CardRank_King),
		NewCard(CardSuit_Spades, CardRank_Ace),
	))
	sequence, _ := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Queen),
		NewCard(CardSuit_Spades, CardRank_King),
		NewCard(CardSuit_Clubs, CardRank_Ace),
	))
	color, _ := EvaluateHand(hand(
		NewCard(CardSuit_Clubs, CardRank_Ace),
		NewCard(CardSuit_Clubs, CardRank_King),
		NewCard(CardSuit_Clubs, CardRank_Nine),
	))
	pair, _ := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Ace),
		NewCard(CardSuit_Spades, CardRank_Ace),
		NewCard(CardSuit_Clubs, CardRank_King),
	))
	highCard, _ := EvaluateHand(hand(
		NewCard(CardSuit_Hearts, CardRank_Ace),
		NewCard(CardSuit_Spades, CardRank_King),
		NewCard(CardSuit_Clubs, CardRank_Nine),
	))

	// even the weakest trail beats the strongest hand of every lower category
	ordered := []*HandEvaluation{trail, pureSequence, sequence, color, pair, highCard}
	for i := 0; i < len(ordered)-1; i++ {
		assert.Greater(t, CompareHands(ordered[i], ordered[i+1]), 0)
		assert.Less(t, CompareHands(ordered[i+1], ordered[i]), 0)
	}
	for _, eval := range ordered {
		assert.GreaterOrEqual(t, int(eval.Rank), 1)
		assert.LessOrEqual(t, int(eval.Rank), 6)
	}
}

func TestFindWinner(t *testing.T) {
	players := []*PlayerState{
		{PlayerID: "p1", Name: "Jeffrey", Hand: hand(
			NewCard(CardSuit_Hearts, CardRank_Nine),
			NewCard(CardSuit_Spades, CardRank_Nine),
			NewCard(CardSuit_Clubs, CardRank_Four),
		)},
		{PlayerID: "p2", Name: "Chuck", Hand: hand(
			NewCard(CardSuit_Spades, CardRank_Queen),
			NewCard(CardSuit_Spades, CardRank_King),
			NewCard(CardSuit_Spades, CardRank_Ace),
		)},
		{PlayerID: "p3", Name: "Fred", IsFolded: true, Hand: hand(
			NewCard(CardSuit_Hearts, CardRank_Two),
			NewCard(CardSuit_Spades, CardRank_Two),
			NewCard(CardSuit_Clubs, CardRank_Two),
		)},
	}

	// the folded trail never competes
	winner := FindWinner(players)
	assert.NotNil(t, winner)
	assert.Equal(t, "p2", winner.PlayerID)
}

func TestFindWinner_NoEligiblePlayers(t *testing.T) {
	players := []*PlayerState{
		{PlayerID: "p1", IsFolded: true},
		{PlayerID: "p2"},
	}
	assert.Nil(t, FindWinner(players))
}
