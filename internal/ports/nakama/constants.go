package nakama

const (
	// RpcWarTurn is the Nakama RPC id clients call to resolve a single turn.
	RpcWarTurn = "war_turn"

	// RpcWarDeal is the Nakama RPC id clients call to deal two fresh decks.
	RpcWarDeal = "war_deal"

	// EnvRuleset is the runtime env key selecting the default ruleset.
	EnvRuleset = "war_ruleset"
)

// gRPC status codes returned through runtime.NewError.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
