package domain

import "github.com/google/uuid"

// Player owns a deck for the duration of a game. Turns borrow players and
// mutate their decks directly.
type Player struct {
	ID   uuid.UUID
	Name string
	Deck *Deck
}

// NewPlayer creates a player with a fresh ID. A nil deck becomes an empty one.
func NewPlayer(name string, deck *Deck) *Player {
	if deck == nil {
		deck = NewDeck()
	}
	return &Player{ID: uuid.New(), Name: name, Deck: deck}
}

// HasLost reports whether the player has run out of cards.
func (p *Player) HasLost() bool {
	return p.Deck.Len() == 0
}
