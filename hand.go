package teenpattitable

import (
	"errors"
	"sort"
)

var (
	ErrHandInvalidSize = errors.New("hand: must have exactly 3 cards")
)

type HandRank int

const (
	HandRank_HighCard     HandRank = 1
	HandRank_Pair         HandRank = 2
	HandRank_Color        HandRank = 3
	HandRank_Sequence     HandRank = 4
	HandRank_PureSequence HandRank = 5
	HandRank_Trail        HandRank = 6
)

func (hr HandRank) String() string {
	switch hr {
	case HandRank_Trail:
		return "Trail (Three of a Kind)"
	case HandRank_PureSequence:
		return "Pure Sequence (Straight Flush)"
	case HandRank_Sequence:
		return "Sequence (Straight)"
	case HandRank_Color:
		return "Color (Flush)"
	case HandRank_Pair:
		return "Pair"
	case HandRank_HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

type HandEvaluation struct {
	Rank  HandRank `json:"rank"`
	Score int      `json:"score"`
	Cards []Card   `json:"cards"`
}

// Sentinel sequence scores. Q-K-A is the highest sequence, A-2-3 the
// second highest, every natural sequence scores by its top card (<= 13).
const (
	sequenceScoreQKA = 200
	sequenceScoreA23 = 199
)

/*
EvaluateHand scores a 3-card hand into a rank category and a tie-break
score. Hands compare by category first, then by score within the same
category:
  - Trail:         6000 + rank*100
  - PureSequence:  5000 + sequence score
  - Sequence:      4000 + sequence score
  - Color:         3000 + descending ranks encoded r0*10000 + r1*100 + r2
  - Pair:          2000 + pairRank*100 + kicker
  - HighCard:      1000 + same encoding as Color
*/
func EvaluateHand(cards []Card) (*HandEvaluation, error) {
	if len(cards) != 3 {
		return nil, ErrHandInvalidSize
	}

	ranks := make([]int, 3)
	for i, card := range cards {
		ranks[i] = card.Value
	}
	sort.Ints(ranks)

	isFlush := cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit

	// Trail
	if ranks[0] == ranks[1] && ranks[1] == ranks[2] {
		return &HandEvaluation{
			Rank:  HandRank_Trail,
			Score: 6000 + ranks[0]*100,
			Cards: cards,
		}, nil
	}

	if isSequence(ranks) {
		rank := HandRank_Sequence
		base := 4000
		if isFlush {
			rank = HandRank_PureSequence
			base = 5000
		}
		return &HandEvaluation{
			Rank:  rank,
			Score: base + sequenceScore(ranks),
			Cards: cards,
		}, nil
	}

	if isFlush {
		return &HandEvaluation{
			Rank:  HandRank_Color,
			Score: 3000 + highCardScore(ranks),
			Cards: cards,
		}, nil
	}

	// Pair
	if pairRank, kicker, ok := findPair(ranks); ok {
		return &HandEvaluation{
			Rank:  HandRank_Pair,
			Score: 2000 + pairRank*100 + kicker,
			Cards: cards,
		}, nil
	}

	return &HandEvaluation{
		Rank:  HandRank_HighCard,
		Score: 1000 + highCardScore(ranks),
		Cards: cards,
	}, nil
}

// CompareHands returns a positive value when a beats b, negative when b
// beats a and zero on a tie. Rank category decides first, then score.
func CompareHands(a, b *HandEvaluation) int {
	if a.Rank != b.Rank {
		return int(a.Rank) - int(b.Rank)
	}
	return a.Score - b.Score
}

// FindWinner picks the best hand among un-folded players that have 3
// recorded cards. Returns nil when no such player exists.
func FindWinner(players []*PlayerState) *PlayerState {
	var best *PlayerState
	var bestEval *HandEvaluation

	for _, player := range players {
		if player.IsFolded || len(player.Hand) != 3 {
			continue
		}
		eval, err := EvaluateHand(player.Hand)
		if err != nil {
			continue
		}
		if bestEval == nil || CompareHands(eval, bestEval) > 0 {
			best = player
			bestEval = eval
		}
	}
	return best
}

// ranks must be sorted ascending
func isSequence(ranks []int) bool {
	// A-2-3
	if ranks[0] == 1 && ranks[1] == 2 && ranks[2] == 3 {
		return true
	}
	// Q-K-A, ace high
	if ranks[0] == 1 && ranks[1] == 12 && ranks[2] == 13 {
		return true
	}
	return ranks[1] == ranks[0]+1 && ranks[2] == ranks[1]+1
}

func sequenceScore(ranks []int) int {
	if ranks[0] == 1 && ranks[1] == 12 && ranks[2] == 13 {
		return sequenceScoreQKA
	}
	if ranks[0] == 1 && ranks[1] == 2 && ranks[2] == 3 {
		return sequenceScoreA23
	}
	return ranks[2]
}

func highCardScore(ranks []int) int {
	return ranks[2]*10000 + ranks[1]*100 + ranks[0]
}

func findPair(ranks []int) (pairRank, kicker int, ok bool) {
	switch {
	case ranks[0] == ranks[1]:
		return ranks[0], ranks[2], true
	case ranks[1] == ranks[2]:
		return ranks[1], ranks[0], true
	case ranks[0] == ranks[2]:
		return ranks[0], ranks[1], true
	}
	return 0, 0, false
}
