package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"war/internal/domain"
)

// Service contains War use-cases operating on domain state.
type Service struct {
	rng   *rand.Rand
	rules domain.Rules
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, rules domain.Rules) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, rules: rules}
}

var (
	ErrUnknownPlayer = errors.New("player not found")
	ErrSamePlayer    = errors.New("player cannot play against itself")
	ErrPlayerLost    = errors.New("player has no cards left")
)

// TurnReport summarizes a resolved turn.
type TurnReport struct {
	Type domain.TurnType
	// Winner is nil when the turn had no winner.
	Winner *domain.Player
	// Spoils are the cards awarded to Winner, in the order they were added.
	Spoils []domain.Card
	// Discarded counts cards removed from play.
	Discarded int
	// Returned counts piled cards handed back to their owners after a tied war.
	Returned int
}

// Deal shuffles a standard deck and splits it between two new players.
func (s *Service) Deal(name1, name2 string) (*domain.Player, *domain.Player, []Event) {
	deck := domain.NewDeck(domain.NewStandardDeck()...)
	deck.Shuffle(s.rng)
	cards := deck.Cards()

	p1 := domain.NewPlayer(name1, domain.NewDeck(cards[:HandSize]...))
	p2 := domain.NewPlayer(name2, domain.NewDeck(cards[HandSize:2*HandSize]...))

	events := make([]Event, 0, 2)
	for _, p := range []*domain.Player{p1, p2} {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{PlayerID: p.ID.String(), Cards: p.Deck.Len()},
			Recipients: []string{p.ID.String()},
		})
	}
	return p1, p2, events
}

// PlayTurn resolves one full turn: it classifies the turn, captures the
// winner, piles the contested cards and awards them. Cards piled in a war
// nobody wins go back to the players who committed them; only mutually
// assured destruction removes cards from play.
func (s *Service) PlayTurn(p1, p2 *domain.Player) (TurnReport, []Event, error) {
	if p1 == nil || p2 == nil {
		return TurnReport{}, nil, ErrUnknownPlayer
	}
	if p1 == p2 {
		return TurnReport{}, nil, ErrSamePlayer
	}
	for _, p := range []*domain.Player{p1, p2} {
		if p.HasLost() {
			return TurnReport{}, nil, fmt.Errorf("%w: %s", ErrPlayerLost, p.Name)
		}
	}

	turn, err := domain.NewTurnWithRules(p1, p2, s.rules)
	if err != nil {
		return TurnReport{}, nil, err
	}

	report := TurnReport{Type: turn.Type()}
	outcome := turn.Winner()
	before := p1.Deck.Len() + p2.Deck.Len()

	if err := turn.PileCards(); err != nil {
		return report, nil, fmt.Errorf("failed to pile cards: %w", err)
	}

	resolved := TurnResolvedPayload{Type: report.Type}
	var events []Event

	if winner, ok := outcome.Player(); ok {
		report.Winner = winner
		report.Spoils = turn.SpoilsOfWar()
		if err := turn.AwardSpoils(winner); err != nil {
			return report, nil, fmt.Errorf("failed to award spoils: %w", err)
		}
		resolved.WinnerID = winner.ID.String()
		events = append(events,
			Event{Kind: EventTurnResolved, Payload: resolved},
			Event{Kind: EventSpoilsAwarded, Payload: SpoilsAwardedPayload{WinnerID: resolved.WinnerID, Cards: report.Spoils}},
		)
	} else if report.Returned = len(turn.SpoilsOfWar()); report.Returned > 0 {
		turn.ReturnSpoils()
		events = append(events,
			Event{Kind: EventTurnResolved, Payload: resolved},
			Event{Kind: EventSpoilsReturned, Payload: SpoilsReturnedPayload{Count: report.Returned}},
		)
	} else {
		report.Discarded = before - p1.Deck.Len() - p2.Deck.Len()
		events = append(events,
			Event{Kind: EventTurnResolved, Payload: resolved},
			Event{Kind: EventCardsDiscarded, Payload: CardsDiscardedPayload{Count: report.Discarded}},
		)
	}

	for _, p := range []*domain.Player{p1, p2} {
		if p.HasLost() {
			events = append(events, Event{Kind: EventPlayerLost, Payload: PlayerLostPayload{PlayerID: p.ID.String()}})
		}
	}

	return report, events, nil
}
