package domain

import (
	"fmt"
	"math"
	"math/rand"
)

// HighRankingValue is the lowest value counted as a high-ranking card (Jack).
const HighRankingValue = 11

// Deck is an ordered card sequence. Index 0 is the top of the deck.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding a copy of cards in the given order.
func NewDeck(cards ...Card) *Deck {
	return &Deck{cards: append([]Card{}, cards...)}
}

// Cards returns a copy of the deck contents, top first.
func (d *Deck) Cards() []Card {
	return append([]Card{}, d.cards...)
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// RankOf returns the value of the card at index, or 0 when no card is there.
func (d *Deck) RankOf(index int) int {
	if index < 0 || index >= len(d.cards) {
		return 0
	}
	return d.cards[index].Value
}

// RemoveCards takes exactly n cards off the top. The deck is left untouched
// when it holds fewer than n.
func (d *Deck) RemoveCards(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}
	removed := append([]Card{}, d.cards[:n]...)
	d.cards = d.cards[n:]
	return removed, nil
}

// Discard removes up to n cards from the top and returns them.
func (d *Deck) Discard(n int) []Card {
	switch {
	case n < 0:
		n = 0
	case n > len(d.cards):
		n = len(d.cards)
	}
	removed, _ := d.RemoveCards(n)
	return removed
}

// AddCards appends cards to the bottom of the deck.
func (d *Deck) AddCards(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// HighRankingCards returns the cards worth a Jack or more, in deck order.
func (d *Deck) HighRankingCards() []Card {
	var high []Card
	for _, c := range d.cards {
		if c.Value >= HighRankingValue {
			high = append(high, c)
		}
	}
	return high
}

// PercentHighRanking returns the share of high-ranking cards as a percentage
// rounded to two decimals. An empty deck reports 0.
func (d *Deck) PercentHighRanking() float64 {
	if len(d.cards) == 0 {
		return 0
	}
	pct := float64(len(d.HighRankingCards())) / float64(len(d.cards)) * 100
	return math.Round(pct*100) / 100
}

// Shuffle reorders the deck in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}
