package actions

import (
	"context"
	"encoding/json"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
)

// DiceInput são os parâmetros aceitos pela action casino.dice.
// A aposta ganha se o número sorteado ficar acima do teto escolhido.
type DiceInput struct {
	Number    int    `json:"number"` // teto, 1..99
	BetAmount string `json:"betAmount"`
	Token     string `json:"token,omitempty"`
	BetCount  int    `json:"betCount,omitempty"`
	StopGain  string `json:"stopGain,omitempty"`
	StopLoss  string `json:"stopLoss,omitempty"`
	Receiver  string `json:"receiver,omitempty"`
}

const diceSchema = `{
  "type": "object",
  "properties": {
    "number": {"type": "integer", "minimum": 1, "maximum": 99, "description": "Cap number; the bet wins when the rolled number is above it"},
    "betAmount": {"type": "string", "description": "Bet amount per bet, decimal string"},
    "token": {"type": "string", "description": "Token symbol; defaults to the chain gas token"},
    "betCount": {"type": "integer", "minimum": 1, "maximum": 100},
    "stopGain": {"type": "string"},
    "stopLoss": {"type": "string"},
    "receiver": {"type": "string", "pattern": "^0x[0-9a-fA-F]{40}$"}
  },
  "required": ["number", "betAmount"]
}`

func (d *Deps) dice(ctx context.Context, raw json.RawMessage) (any, error) {
	var in DiceInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, badPayload(err)
	}

	if err := casino.Validate(
		casino.RequireDiceCap("number", in.Number),
		casino.RequireAmount("betAmount", in.BetAmount),
		casino.RequireBetCount("betCount", in.BetCount, casino.GameDice),
		casino.OptionalAmount("stopGain", in.StopGain),
		casino.OptionalAmount("stopLoss", in.StopLoss),
		casino.RequireAddress("receiver", in.Receiver, true),
	); err != nil {
		return nil, err
	}

	return d.placeBet(ctx, betRequest{
		game:        casino.GameDice,
		input:       casino.EncodeDiceCap(in.Number),
		tokenSymbol: in.Token,
		amount:      in.BetAmount,
		betCount:    in.BetCount,
		stopGain:    in.StopGain,
		stopLoss:    in.StopLoss,
		receiver:    in.Receiver,
	})
}
