package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"war/internal/app"
	"war/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// DealRequest is the payload of the war_deal RPC.
type DealRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// RpcDeal shuffles a standard deck and deals half of it to each named player.
//
// Payload: (Optional) {"player1": "...", "player2": "..."}; missing names default to "Player 1"/"Player 2".
// Returns: both players with their dealt decks, ready to be sent back to war_turn.
func RpcDeal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req DealRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}
	if req.Player1 == "" {
		req.Player1 = "Player 1"
	}
	if req.Player2 == "" {
		req.Player2 = "Player 2"
	}

	// Rules do not matter for dealing.
	svc := app.NewService(nil, domain.StandardRules())
	p1, p2, events := svc.Deal(req.Player1, req.Player2)

	resp, err := marshalResponse(map[string]interface{}{
		"player1": playerToValue(p1),
		"player2": playerToValue(p2),
		"events":  eventsToValue(events),
	})
	if err != nil {
		logger.Error("RpcDeal: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.WithField("player1", p1.Name).WithField("player2", p2.Name).Debug("RpcDeal: Dealt %d cards each", app.HandSize)
	return resp, nil
}
