package nakama

import (
	"fmt"

	"war/internal/app"
	"war/internal/domain"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// CardMessage is the wire shape of a card.
type CardMessage struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

// PlayerMessage is the wire shape of a player and its deck, top card first.
type PlayerMessage struct {
	ID    string        `json:"id,omitempty"`
	Name  string        `json:"name"`
	Cards []CardMessage `json:"cards"`
}

func cardsFromMessages(msgs []CardMessage) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(msgs))
	for i, m := range msgs {
		c, err := domain.NewCard(domain.Suit(m.Suit), m.Rank, m.Value)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func playerFromMessage(m PlayerMessage) (*domain.Player, error) {
	cards, err := cardsFromMessages(m.Cards)
	if err != nil {
		return nil, fmt.Errorf("player %q: %w", m.Name, err)
	}
	p := domain.NewPlayer(m.Name, domain.NewDeck(cards...))
	if m.ID != "" {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return nil, fmt.Errorf("player %q: invalid id: %w", m.Name, err)
		}
		p.ID = id
	}
	return p, nil
}

func cardsToValue(cards []domain.Card) []interface{} {
	out := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		out = append(out, map[string]interface{}{
			"suit":  string(c.Suit),
			"rank":  c.Rank,
			"value": c.Value,
		})
	}
	return out
}

func playerToValue(p *domain.Player) map[string]interface{} {
	return map[string]interface{}{
		"id":                   p.ID.String(),
		"name":                 p.Name,
		"cards":                cardsToValue(p.Deck.Cards()),
		"high_ranking_cards":   len(p.Deck.HighRankingCards()),
		"percent_high_ranking": p.Deck.PercentHighRanking(),
	}
}

func eventsToValue(events []app.Event) []interface{} {
	out := make([]interface{}, 0, len(events))
	for _, ev := range events {
		entry := map[string]interface{}{"kind": string(ev.Kind)}
		switch p := ev.Payload.(type) {
		case app.TurnResolvedPayload:
			entry["type"] = p.Type.String()
			entry["winner_id"] = p.WinnerID
		case app.SpoilsAwardedPayload:
			entry["winner_id"] = p.WinnerID
			entry["cards"] = cardsToValue(p.Cards)
		case app.CardsDiscardedPayload:
			entry["count"] = p.Count
		case app.SpoilsReturnedPayload:
			entry["count"] = p.Count
		case app.PlayerLostPayload:
			entry["player_id"] = p.PlayerID
		case app.HandDealtPayload:
			entry["player_id"] = p.PlayerID
			entry["count"] = p.Cards
		}
		out = append(out, entry)
	}
	return out
}

func turnReportToValue(report app.TurnReport, p1, p2 *domain.Player, events []app.Event) map[string]interface{} {
	winner, winnerID := "", ""
	if report.Winner != nil {
		winner, winnerID = report.Winner.Name, report.Winner.ID.String()
	}
	return map[string]interface{}{
		"type":      report.Type.String(),
		"winner":    winner,
		"winner_id": winnerID,
		"spoils":    cardsToValue(report.Spoils),
		"discarded": report.Discarded,
		"returned":  report.Returned,
		"player1":   playerToValue(p1),
		"player2":   playerToValue(p2),
		"events":    eventsToValue(events),
	}
}

// marshalResponse renders a response through a protobuf Struct.
func marshalResponse(v map[string]interface{}) (string, error) {
	s, err := structpb.NewStruct(v)
	if err != nil {
		return "", fmt.Errorf("failed to build response: %w", err)
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(b), nil
}
