package nakama

import (
	"context"
	"database/sql"

	"war/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads the game configuration and wires RPCs for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig(config.DefaultPath); err != nil {
		logger.Warn("InitModule: Could not load game config, using standard rules: %v", err)
	} else if c := config.GetGameConfig(); c != nil {
		logger.WithFields(map[string]interface{}{
			"ruleset":            c.Ruleset,
			"war_depth":          c.WarDepth,
			"mad_on_face_up_tie": c.MADOnFaceUpTie != nil && *c.MADOnFaceUpTie,
		}).Info("InitModule: Loaded game config")
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("War Go module loaded.")
	return nil
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcWarTurn, RpcPlayTurn); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcWarDeal, RpcDeal)
}
