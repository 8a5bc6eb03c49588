package actions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
)

// GetBetInput são os parâmetros da action casino.get-bet.
type GetBetInput struct {
	TxHash string `json:"txHash"` // hash da transação de colocação
}

const getBetSchema = `{
  "type": "object",
  "properties": {
    "txHash": {"type": "string", "pattern": "^0x[0-9a-fA-F]{64}$", "description": "Hash of the bet placement transaction"}
  },
  "required": ["txHash"]
}`

func (d *Deps) getBet(ctx context.Context, raw json.RawMessage) (any, error) {
	var in GetBetInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, badPayload(err)
	}

	if err := casino.Validate(
		casino.RequireTxHash("txHash", in.TxHash),
	); err != nil {
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

	bet, err := d.IndexerFor(chain).BetByHash(ctx, in.TxHash)
	if err != nil {
		return nil, fmt.Errorf("fetch bet %s: %w", in.TxHash, err)
	}
	if bet == nil {
		return nil, fmt.Errorf("no bet found for transaction %s on %s", in.TxHash, chain.Name)
	}

	return formatBet(chain, d.DappBaseURL, bet)
}
