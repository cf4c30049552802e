package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"war/internal/app"
	"war/internal/config"
	"war/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// TurnRequest is the payload of the war_turn RPC.
type TurnRequest struct {
	Ruleset string        `json:"ruleset"`
	Player1 PlayerMessage `json:"player1"`
	Player2 PlayerMessage `json:"player2"`
}

// RpcPlayTurn resolves one turn between the two decks in the payload.
//
// Payload: {"ruleset": "classic", "player1": {"name": "...", "cards": [...]}, "player2": {...}}
// Returns: the turn type, winner, awarded spoils, discarded and returned counts, both final
// decks and the emitted events.
func RpcPlayTurn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req TurnRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	rules, err := config.ResolveRules(req.Ruleset, env[EnvRuleset])
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	p1, err := playerFromMessage(req.Player1)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	p2, err := playerFromMessage(req.Player2)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	turnLogger := logger.WithFields(map[string]interface{}{
		"player1":   p1.Name,
		"player2":   p2.Name,
		"war_depth": rules.WarDepth,
	})

	svc := app.NewService(nil, rules)
	report, events, err := svc.PlayTurn(p1, p2)
	if err != nil {
		if errors.Is(err, app.ErrPlayerLost) || errors.Is(err, app.ErrUnknownPlayer) || errors.Is(err, domain.ErrInsufficientCards) {
			turnLogger.Warn("RpcPlayTurn: Rejected turn: %v", err)
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		turnLogger.Error("RpcPlayTurn: Failed to resolve turn: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	winner := domain.NoWinner
	if report.Winner != nil {
		winner = domain.WonBy(report.Winner)
	}
	turnLogger.Info("RpcPlayTurn: %s turn, winner: %s", report.Type, winner)

	resp, err := marshalResponse(turnReportToValue(report, p1, p2, events))
	if err != nil {
		turnLogger.Error("RpcPlayTurn: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return resp, nil
}
