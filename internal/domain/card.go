package domain

import "fmt"

// Suit is the enumerated suit of a playing card.
type Suit string

const (
	Heart   Suit = "heart"
	Diamond Suit = "diamond"
	Club    Suit = "club"
	Spade   Suit = "spade"
)

var suitSymbols = map[Suit]string{
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
	Spade:   "♠",
}

// Valid reports whether s is one of the four known suits.
func (s Suit) Valid() bool {
	_, ok := suitSymbols[s]
	return ok
}

// Card is an immutable playing card. Value is the only comparison key; two
// cards of different suits may share a value.
type Card struct {
	Suit  Suit
	Rank  string // display label, e.g. "Jack" or "10"
	Value int
}

// NewCard builds a card after validating its suit and value.
func NewCard(suit Suit, rank string, value int) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suit)
	}
	if value <= 0 {
		return Card{}, fmt.Errorf("%w: value %d must be positive", ErrInvalidCard, value)
	}
	if rank == "" {
		return Card{}, fmt.Errorf("%w: empty rank", ErrInvalidCard)
	}
	return Card{Suit: suit, Rank: rank, Value: value}, nil
}

func (c Card) String() string {
	return c.Rank + suitSymbols[c.Suit]
}

var standardRanks = []struct {
	label string
	value int
}{
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7}, {"8", 8},
	{"9", 9}, {"10", 10}, {"Jack", 11}, {"Queen", 12}, {"King", 13}, {"Ace", 14},
}

// NewStandardDeck produces an ordered 52-card deck, suit by suit.
func NewStandardDeck() []Card {
	suits := []Suit{Heart, Diamond, Club, Spade}
	deck := make([]Card, 0, len(suits)*len(standardRanks))
	for _, s := range suits {
		for _, r := range standardRanks {
			deck = append(deck, Card{Suit: s, Rank: r.label, Value: r.value})
		}
	}
	return deck
}
