package actions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/internal/subgraph"
)

// Tamanho fixo da página de listagem.
const betsPageSize = 10

// GetBetsInput são os filtros opcionais da action casino.get-bets.
type GetBetsInput struct {
	Bettor string `json:"bettor,omitempty"` // endereço do apostador
	Game   string `json:"game,omitempty"`   // coin-toss | dice | roulette
}

const getBetsSchema = `{
  "type": "object",
  "properties": {
    "bettor": {"type": "string", "pattern": "^0x[0-9a-fA-F]{40}$", "description": "Optional bettor address filter"},
    "game": {"type": "string", "enum": ["coin-toss", "dice", "roulette"], "description": "Optional game filter"}
  }
}`

func (d *Deps) getBets(ctx context.Context, raw json.RawMessage) (any, error) {
	var in GetBetsInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, badPayload(err)
	}

	rules := []casino.Rule{
		casino.RequireAddress("bettor", in.Bettor, true),
	}
	var game casino.Game
	if in.Game != "" {
		parsed, err := casino.ParseGame(in.Game)
		if err != nil {
			return nil, &casino.ValidationError{Fields: []casino.FieldError{{Field: "game", Detail: err.Error()}}}
		}
		game = parsed
	}
	if err := casino.Validate(rules...); err != nil {
		return nil, err
	}

	chainID, err := d.Wallet.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve active network: %w", err)
	}
	chain, err := casino.ChainByID(chainID)
	if err != nil {
		return nil, err
	}

	bets, err := d.IndexerFor(chain).Bets(ctx, subgraph.Filter{
		Bettor: in.Bettor,
		Game:   string(game),
		First:  betsPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}

	results := make([]*BetResult, 0, len(bets))
	for i := range bets {
		r, err := formatBet(chain, d.DappBaseURL, &bets[i])
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
