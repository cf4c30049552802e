package app

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"war/internal/domain"
)

func card(suit domain.Suit, rank string, value int) domain.Card {
	return domain.Card{Suit: suit, Rank: rank, Value: value}
}

func players(cards1, cards2 []domain.Card) (*domain.Player, *domain.Player) {
	return domain.NewPlayer("Megan", domain.NewDeck(cards1...)), domain.NewPlayer("Aurora", domain.NewDeck(cards2...))
}

func eventKinds(evs []Event) []EventKind {
	kinds := make([]EventKind, 0, len(evs))
	for _, ev := range evs {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func TestDealSplitsStandardDeck(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(42)), domain.StandardRules())

	p1, p2, evs := svc.Deal("Megan", "Aurora")
	if p1.Deck.Len() != HandSize || p2.Deck.Len() != HandSize {
		t.Fatalf("hand sizes = %d/%d, want %d", p1.Deck.Len(), p2.Deck.Len(), HandSize)
	}

	seen := make(map[domain.Card]bool)
	for _, c := range append(p1.Deck.Cards(), p2.Deck.Cards()...) {
		if seen[c] {
			t.Fatalf("card dealt twice: %s", c)
		}
		seen[c] = true
	}

	if len(evs) != 2 {
		t.Fatalf("events = %d, want 2", len(evs))
	}
	for i, p := range []*domain.Player{p1, p2} {
		payload := evs[i].Payload.(HandDealtPayload)
		if evs[i].Kind != EventHandDealt || payload.PlayerID != p.ID.String() || payload.Cards != HandSize {
			t.Fatalf("event %d = %+v", i, evs[i])
		}
		if len(evs[i].Recipients) != 1 || evs[i].Recipients[0] != p.ID.String() {
			t.Fatalf("event %d recipients = %v", i, evs[i].Recipients)
		}
	}
}

func TestDealIsDeterministicForSeed(t *testing.T) {
	a, _, _ := NewService(rand.New(rand.NewSource(7)), domain.StandardRules()).Deal("a", "b")
	b, _, _ := NewService(rand.New(rand.NewSource(7)), domain.StandardRules()).Deal("a", "b")
	ca, cb := a.Deck.Cards(), b.Deck.Cards()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("card %d differs: %s vs %s", i, ca[i], cb[i])
		}
	}
}

func TestPlayTurnBasicAwardsSpoils(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)), domain.StandardRules())
	p1, p2 := players(
		[]domain.Card{card(domain.Heart, "Jack", 11), card(domain.Heart, "10", 10)},
		[]domain.Card{card(domain.Heart, "9", 9), card(domain.Diamond, "Jack", 11)},
	)

	report, evs, err := svc.PlayTurn(p1, p2)
	if err != nil {
		t.Fatalf("PlayTurn error: %v", err)
	}
	if report.Type != domain.Basic || report.Winner != p1 {
		t.Fatalf("report = %+v, want basic won by player1", report)
	}
	if len(report.Spoils) != 2 || report.Discarded != 0 {
		t.Fatalf("spoils = %v discarded = %d", report.Spoils, report.Discarded)
	}
	if p1.Deck.Len() != 3 || p2.Deck.Len() != 1 {
		t.Fatalf("decks = %d/%d, want 3/1", p1.Deck.Len(), p2.Deck.Len())
	}

	kinds := eventKinds(evs)
	if len(kinds) != 2 || kinds[0] != EventTurnResolved || kinds[1] != EventSpoilsAwarded {
		t.Fatalf("events = %v", kinds)
	}
	if got := evs[0].Payload.(TurnResolvedPayload).WinnerID; got != p1.ID.String() {
		t.Fatalf("winner id = %s, want %s", got, p1.ID)
	}
}

func TestPlayTurnWarEmptiesLoser(t *testing.T) {
	svc := NewService(nil, domain.StandardRules())
	p1, p2 := players(
		[]domain.Card{card(domain.Heart, "Jack", 11), card(domain.Heart, "10", 10), card(domain.Heart, "8", 8), card(domain.Diamond, "2", 2)},
		[]domain.Card{card(domain.Diamond, "Jack", 11), card(domain.Heart, "9", 9), card(domain.Diamond, "Queen", 12), card(domain.Heart, "3", 3)},
	)

	report, evs, err := svc.PlayTurn(p1, p2)
	if err != nil {
		t.Fatalf("PlayTurn error: %v", err)
	}
	if report.Type != domain.War || report.Winner != p2 || len(report.Spoils) != 8 {
		t.Fatalf("report = %+v", report)
	}
	if p2.Deck.Len() != 8 || !p1.HasLost() {
		t.Fatalf("decks = %d/%d, want 0/8", p1.Deck.Len(), p2.Deck.Len())
	}

	kinds := eventKinds(evs)
	if kinds[len(kinds)-1] != EventPlayerLost {
		t.Fatalf("events = %v, want trailing player_lost", kinds)
	}
	if got := evs[len(evs)-1].Payload.(PlayerLostPayload).PlayerID; got != p1.ID.String() {
		t.Fatalf("lost player = %s, want %s", got, p1.ID)
	}
}

func TestPlayTurnMutuallyAssuredDestruction(t *testing.T) {
	svc := NewService(nil, domain.ClassicRules())
	p1, p2 := players(
		[]domain.Card{card(domain.Heart, "Jack", 11), card(domain.Heart, "10", 10), card(domain.Heart, "8", 8), card(domain.Diamond, "2", 2)},
		[]domain.Card{card(domain.Diamond, "Jack", 11), card(domain.Heart, "9", 9), card(domain.Diamond, "8", 8), card(domain.Heart, "3", 3)},
	)

	report, evs, err := svc.PlayTurn(p1, p2)
	if err != nil {
		t.Fatalf("PlayTurn error: %v", err)
	}
	if report.Type != domain.MutuallyAssuredDestruction || report.Winner != nil {
		t.Fatalf("report = %+v", report)
	}
	if report.Discarded != 6 {
		t.Fatalf("discarded = %d, want 6", report.Discarded)
	}
	kinds := eventKinds(evs)
	if len(kinds) != 2 || kinds[1] != EventCardsDiscarded {
		t.Fatalf("events = %v", kinds)
	}
}

func TestPlayTurnReturnsSpoilsOfTiedWar(t *testing.T) {
	svc := NewService(nil, domain.StandardRules())
	c1 := []domain.Card{card(domain.Heart, "Jack", 11), card(domain.Heart, "10", 10), card(domain.Heart, "8", 8), card(domain.Diamond, "2", 2)}
	c2 := []domain.Card{card(domain.Diamond, "Jack", 11), card(domain.Heart, "9", 9), card(domain.Diamond, "Queen", 12), card(domain.Heart, "2", 2)}
	p1, p2 := players(c1, c2)

	report, evs, err := svc.PlayTurn(p1, p2)
	if err != nil {
		t.Fatalf("PlayTurn error: %v", err)
	}
	if report.Type != domain.War || report.Winner != nil {
		t.Fatalf("report = %+v, want war without winner", report)
	}
	if report.Discarded != 0 || report.Returned != 8 {
		t.Fatalf("discarded/returned = %d/%d, want 0/8", report.Discarded, report.Returned)
	}
	if got := p1.Deck.Len() + p2.Deck.Len() + len(report.Spoils); got != 8 {
		t.Fatalf("cards in play = %d, want 8", got)
	}
	if !reflect.DeepEqual(p1.Deck.Cards(), c1) || !reflect.DeepEqual(p2.Deck.Cards(), c2) {
		t.Fatalf("decks = %v / %v, want each player's own cards back", p1.Deck.Cards(), p2.Deck.Cards())
	}
	want := []EventKind{EventTurnResolved, EventSpoilsReturned}
	if got := eventKinds(evs); !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if evs[1].Payload.(SpoilsReturnedPayload).Count != 8 {
		t.Fatalf("returned payload = %+v", evs[1].Payload)
	}
}

func TestPlayTurnRejectsInvalidPlayers(t *testing.T) {
	svc := NewService(nil, domain.StandardRules())
	full := domain.NewPlayer("Megan", domain.NewDeck(card(domain.Heart, "3", 3)))
	empty := domain.NewPlayer("Aurora", nil)

	tests := []struct {
		name   string
		p1, p2 *domain.Player
		want   error
	}{
		{name: "nil player", p1: full, p2: nil, want: ErrUnknownPlayer},
		{name: "same player", p1: full, p2: full, want: ErrSamePlayer},
		{name: "lost player", p1: full, p2: empty, want: ErrPlayerLost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.PlayTurn(tt.p1, tt.p2); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlayTurnRejectsInvalidRules(t *testing.T) {
	svc := NewService(nil, domain.Rules{WarDepth: 0})
	p1, p2 := players([]domain.Card{card(domain.Heart, "3", 3)}, []domain.Card{card(domain.Heart, "4", 4)})
	if _, _, err := svc.PlayTurn(p1, p2); !errors.Is(err, domain.ErrInvalidRules) {
		t.Fatalf("err = %v, want ErrInvalidRules", err)
	}
}
