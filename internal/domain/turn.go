package domain

import "fmt"

// TurnType classifies a turn from the cards currently on top of both decks.
type TurnType int

const (
	Basic TurnType = iota
	War
	MutuallyAssuredDestruction
)

func (tt TurnType) String() string {
	switch tt {
	case Basic:
		return "basic"
	case War:
		return "war"
	case MutuallyAssuredDestruction:
		return "mutually_assured_destruction"
	default:
		return fmt.Sprintf("TurnType(%d)", int(tt))
	}
}

// Outcome is the result of Winner: either a player of the turn or NoWinner.
type Outcome struct {
	player *Player
}

// NoWinner is the outcome of a turn nobody can win.
var NoWinner = Outcome{}

// WonBy returns the outcome naming p as the winner.
func WonBy(p *Player) Outcome {
	return Outcome{player: p}
}

// Player returns the winning player, or false for NoWinner.
func (o Outcome) Player() (*Player, bool) {
	return o.player, o.player != nil
}

func (o Outcome) String() string {
	if o.player == nil {
		return "No Winner"
	}
	return o.player.Name
}

// Turn resolves one turn between two borrowed players. Its type and winner
// are recomputed from the decks on every call, so a caller that needs the
// winner must ask before PileCards moves the cards.
type Turn struct {
	player1     *Player
	player2     *Player
	rules       Rules
	spoilsOfWar []Card
	// committed1 is how many cards at the front of spoilsOfWar came from player1.
	committed1 int
}

// NewTurn starts a turn under StandardRules.
func NewTurn(player1, player2 *Player) *Turn {
	return &Turn{player1: player1, player2: player2, rules: StandardRules()}
}

// NewTurnWithRules starts a turn under the given rules.
func NewTurnWithRules(player1, player2 *Player, rules Rules) (*Turn, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Turn{player1: player1, player2: player2, rules: rules}, nil
}

func (t *Turn) Player1() *Player { return t.player1 }
func (t *Turn) Player2() *Player { return t.player2 }

// SpoilsOfWar returns a copy of the contested pile in the order it was built.
func (t *Turn) SpoilsOfWar() []Card {
	return append([]Card{}, t.spoilsOfWar...)
}

// Type classifies the turn. A missing top card counts as value 0, so an
// empty deck loses a basic turn to any card.
func (t *Turn) Type() TurnType {
	d1, d2 := t.player1.Deck, t.player2.Deck
	if d1.RankOf(0) != d2.RankOf(0) {
		return Basic
	}
	if d1.Len() < t.rules.WarDepth || d2.Len() < t.rules.WarDepth {
		return MutuallyAssuredDestruction
	}
	faceUp := t.rules.faceUpIndex()
	if t.rules.MADOnFaceUpTie && d1.RankOf(faceUp) == d2.RankOf(faceUp) {
		return MutuallyAssuredDestruction
	}
	return War
}

// Winner decides the turn without touching the decks.
func (t *Turn) Winner() Outcome {
	switch t.Type() {
	case Basic:
		return t.higherAt(0)
	case War:
		return t.higherAt(t.rules.faceUpIndex())
	default:
		return NoWinner
	}
}

func (t *Turn) higherAt(index int) Outcome {
	v1, v2 := t.player1.Deck.RankOf(index), t.player2.Deck.RankOf(index)
	switch {
	case v1 > v2:
		return WonBy(t.player1)
	case v2 > v1:
		return WonBy(t.player2)
	default:
		return NoWinner
	}
}

// PileCards moves the contested cards off both decks. Basic and war turns
// put them on the spoils pile, player1's cards first, and fail without
// touching either deck when one is too short. Mutually assured destruction
// throws away up to WarDepth cards per player and leaves the pile empty.
func (t *Turn) PileCards() error {
	switch tt := t.Type(); tt {
	case Basic:
		return t.pile(1)
	case War:
		return t.pile(t.rules.WarDepth)
	case MutuallyAssuredDestruction:
		t.player1.Deck.Discard(t.rules.WarDepth)
		t.player2.Deck.Discard(t.rules.WarDepth)
		return nil
	default:
		return fmt.Errorf("unhandled turn type %s", tt)
	}
}

func (t *Turn) pile(n int) error {
	for _, p := range []*Player{t.player1, t.player2} {
		if p.Deck.Len() < n {
			return fmt.Errorf("%w: player %s holds %d cards, turn needs %d", ErrInsufficientCards, p.Name, p.Deck.Len(), n)
		}
	}
	for _, p := range []*Player{t.player1, t.player2} {
		cards, err := p.Deck.RemoveCards(n)
		if err != nil {
			return err
		}
		if p == t.player1 {
			t.committed1 += len(cards)
		}
		t.spoilsOfWar = append(t.spoilsOfWar, cards...)
	}
	return nil
}

// AwardSpoils hands the whole pile, in order, to the bottom of the winner's
// deck and empties it. winner must be one of the turn's players.
func (t *Turn) AwardSpoils(winner *Player) error {
	if winner == nil || (winner != t.player1 && winner != t.player2) {
		return ErrInvalidWinner
	}
	winner.Deck.AddCards(t.spoilsOfWar...)
	t.clearSpoils()
	return nil
}

// ReturnSpoils gives every player back the cards they committed, in order,
// at the bottom of their own deck. It settles a war whose face-up cards tie.
func (t *Turn) ReturnSpoils() {
	t.player1.Deck.AddCards(t.spoilsOfWar[:t.committed1]...)
	t.player2.Deck.AddCards(t.spoilsOfWar[t.committed1:]...)
	t.clearSpoils()
}

func (t *Turn) clearSpoils() {
	t.spoilsOfWar = nil
	t.committed1 = 0
}
