package teenpattitable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	assert.Equal(t, 52, len(deck))

	seen := make(map[Card]bool)
	for _, card := range deck {
		assert.False(t, seen[card])
		seen[card] = true
		assert.Equal(t, CardRankValues[card.Rank], card.Value)
	}
}

func TestShuffleDeck(t *testing.T) {
	deck := NewDeck()
	shuffled := ShuffleDeck(deck)

	assert.Equal(t, len(deck), len(shuffled))

	// same multiset of cards, original untouched
	counts := make(map[Card]int)
	for _, card := range deck {
		counts[card]++
	}
	for _, card := range shuffled {
		counts[card]--
	}
	for _, count := range counts {
		assert.Equal(t, 0, count)
	}
	assert.Equal(t, NewDeck(), deck)
}
