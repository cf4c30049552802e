package app

import "war/internal/domain"

// EventKind identifies emitted events for Nakama dispatch.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventTurnResolved   EventKind = "turn_resolved"
	EventSpoilsAwarded  EventKind = "spoils_awarded"
	EventCardsDiscarded EventKind = "cards_discarded"
	EventSpoilsReturned EventKind = "spoils_returned"
	EventPlayerLost     EventKind = "player_lost"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    interface{}
	Recipients []string // player IDs; empty means broadcast
}

type HandDealtPayload struct {
	PlayerID string
	Cards    int
}

type TurnResolvedPayload struct {
	Type     domain.TurnType
	WinnerID string // empty when nobody won
}

type SpoilsAwardedPayload struct {
	WinnerID string
	Cards    []domain.Card
}

type CardsDiscardedPayload struct {
	Count int
}

// SpoilsReturnedPayload reports a tied war whose piled cards went back to their owners.
type SpoilsReturnedPayload struct {
	Count int
}

type PlayerLostPayload struct {
	PlayerID string
}
