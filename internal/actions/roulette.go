package actions

import (
	"context"
	"encoding/json"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
)

// RouletteInput são os parâmetros aceitos pela action casino.roulette.
type RouletteInput struct {
	Numbers   []int  `json:"numbers"` // 0..36, sem repetição
	BetAmount string `json:"betAmount"`
	Token     string `json:"token,omitempty"`
	BetCount  int    `json:"betCount,omitempty"`
	StopGain  string `json:"stopGain,omitempty"`
	StopLoss  string `json:"stopLoss,omitempty"`
	Receiver  string `json:"receiver,omitempty"`
}

const rouletteSchema = `{
  "type": "object",
  "properties": {
    "numbers": {"type": "array", "items": {"type": "integer", "minimum": 0, "maximum": 36}, "minItems": 1, "maxItems": 36, "description": "Numbers to bet on"},
    "betAmount": {"type": "string", "description": "Bet amount per bet, decimal string"},
    "token": {"type": "string", "description": "Token symbol; defaults to the chain gas token"},
    "betCount": {"type": "integer", "minimum": 1, "maximum": 50},
    "stopGain": {"type": "string"},
    "stopLoss": {"type": "string"},
    "receiver": {"type": "string", "pattern": "^0x[0-9a-fA-F]{40}$"}
  },
  "required": ["numbers", "betAmount"]
}`

func (d *Deps) roulette(ctx context.Context, raw json.RawMessage) (any, error) {
	var in RouletteInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, badPayload(err)
	}

	if err := casino.Validate(
		casino.RequireRouletteNumbers("numbers", in.Numbers),
		casino.RequireAmount("betAmount", in.BetAmount),
		casino.RequireBetCount("betCount", in.BetCount, casino.GameRoulette),
		casino.OptionalAmount("stopGain", in.StopGain),
		casino.OptionalAmount("stopLoss", in.StopLoss),
		casino.RequireAddress("receiver", in.Receiver, true),
	); err != nil {
		return nil, err
	}

	return d.placeBet(ctx, betRequest{
		game:        casino.GameRoulette,
		input:       casino.EncodeRouletteNumbers(in.Numbers),
		tokenSymbol: in.Token,
		amount:      in.BetAmount,
		betCount:    in.BetCount,
		stopGain:    in.StopGain,
		stopLoss:    in.StopLoss,
		receiver:    in.Receiver,
	})
}
