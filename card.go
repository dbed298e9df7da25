package teenpattitable

import (
	"math/rand"
)

type CardSuit string

const (
	CardSuit_Hearts   CardSuit = "hearts"
	CardSuit_Diamonds CardSuit = "diamonds"
	CardSuit_Clubs    CardSuit = "clubs"
	CardSuit_Spades   CardSuit = "spades"
)

type CardRank string

const (
	CardRank_Ace   CardRank = "A"
	CardRank_Two   CardRank = "2"
	CardRank_Three CardRank = "3"
	CardRank_Four  CardRank = "4"
	CardRank_Five  CardRank = "5"
	CardRank_Six   CardRank = "6"
	CardRank_Seven CardRank = "7"
	CardRank_Eight CardRank = "8"
	CardRank_Nine  CardRank = "9"
	CardRank_Ten   CardRank = "10"
	CardRank_Jack  CardRank = "J"
	CardRank_Queen CardRank = "Q"
	CardRank_King  CardRank = "K"
)

// Numeric values for comparison (A=1, J=11, Q=12, K=13)
var CardRankValues = map[CardRank]int{
	CardRank_Ace:   1,
	CardRank_Two:   2,
	CardRank_Three: 3,
	CardRank_Four:  4,
	CardRank_Five:  5,
	CardRank_Six:   6,
	CardRank_Seven: 7,
	CardRank_Eight: 8,
	CardRank_Nine:  9,
	CardRank_Ten:   10,
	CardRank_Jack:  11,
	CardRank_Queen: 12,
	CardRank_King:  13,
}

type Card struct {
	Suit  CardSuit `json:"suit"`
	Rank  CardRank `json:"rank"`
	Value int      `json:"value"`
}

func NewCard(suit CardSuit, rank CardRank) Card {
	return Card{
		Suit:  suit,
		Rank:  rank,
		Value: CardRankValues[rank],
	}
}

// NewDeck builds a standard 52-card deck. The play flow never deals from
// it (hands are physical cards recorded after the fact), it exists for
// tooling and tests.
func NewDeck() []Card {
	suits := []CardSuit{CardSuit_Hearts, CardSuit_Diamonds, CardSuit_Clubs, CardSuit_Spades}
	ranks := []CardRank{
		CardRank_Ace, CardRank_Two, CardRank_Three, CardRank_Four, CardRank_Five,
		CardRank_Six, CardRank_Seven, CardRank_Eight, CardRank_Nine, CardRank_Ten,
		CardRank_Jack, CardRank_Queen, CardRank_King,
	}

	deck := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, NewCard(suit, rank))
		}
	}
	return deck
}

func ShuffleDeck(deck []Card) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
