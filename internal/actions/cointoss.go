package actions

import (
	"context"
	"encoding/json"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
)

// CoinTossInput são os parâmetros aceitos pela action casino.coin-toss.
type CoinTossInput struct {
	Face      string `json:"face"`                // HEADS | TAILS
	BetAmount string `json:"betAmount"`           // decimal, por aposta
	Token     string `json:"token,omitempty"`     // default: moeda nativa da rede
	BetCount  int    `json:"betCount,omitempty"`  // default: 1
	StopGain  string `json:"stopGain,omitempty"`
	StopLoss  string `json:"stopLoss,omitempty"`
	Receiver  string `json:"receiver,omitempty"` // default: conta da carteira
}

const coinTossSchema = `{
  "type": "object",
  "properties": {
    "face": {"type": "string", "enum": ["HEADS", "TAILS"], "description": "Coin face to bet on"},
    "betAmount": {"type": "string", "description": "Bet amount per bet, decimal string (e.g. \"0.01\")"},
    "token": {"type": "string", "description": "Token symbol; defaults to the chain gas token"},
    "betCount": {"type": "integer", "minimum": 1, "maximum": 100, "description": "Number of bets in one transaction"},
    "stopGain": {"type": "string", "description": "Optional cumulative profit threshold that stops the bet series"},
    "stopLoss": {"type": "string", "description": "Optional cumulative loss threshold that stops the bet series"},
    "receiver": {"type": "string", "pattern": "^0x[0-9a-fA-F]{40}$", "description": "Optional payout receiver address"}
  },
  "required": ["face", "betAmount"]
}`

func (d *Deps) coinToss(ctx context.Context, raw json.RawMessage) (any, error) {
	var in CoinTossInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, badPayload(err)
	}

	if err := casino.Validate(
		casino.RequireCoinFace("face", in.Face),
		casino.RequireAmount("betAmount", in.BetAmount),
		casino.RequireBetCount("betCount", in.BetCount, casino.GameCoinToss),
		casino.OptionalAmount("stopGain", in.StopGain),
		casino.OptionalAmount("stopLoss", in.StopLoss),
		casino.RequireAddress("receiver", in.Receiver, true),
	); err != nil {
		return nil, err
	}

	return d.placeBet(ctx, betRequest{
		game:        casino.GameCoinToss,
		input:       casino.EncodeCoinFace(casino.CoinFace(in.Face)),
		tokenSymbol: in.Token,
		amount:      in.BetAmount,
		betCount:    in.BetCount,
		stopGain:    in.StopGain,
		stopLoss:    in.StopLoss,
		receiver:    in.Receiver,
	})
}
