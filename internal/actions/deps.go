package actions

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/bank"
	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/internal/subgraph"
	"github.com/gmeireles/casino-actions-poc/pkg/contracts/events"
)

// Bank é o que as actions precisam do contrato do banco do cassino.
type Bank interface {
	casino.TokenLister
	Requirements(ctx context.Context, game casino.Game, token common.Address) (casino.BetRequirements, error)
	PlaceBet(ctx context.Context, p bank.PlaceBetParams) (common.Hash, error)
}

// Indexer é o que as actions precisam do subgraph.
type Indexer interface {
	BetByHash(ctx context.Context, txHash string) (*subgraph.Bet, error)
	Bets(ctx context.Context, f subgraph.Filter) ([]subgraph.Bet, error)
}

// FeeEstimator estima o custo de VRF (já com margem).
type FeeEstimator interface {
	VRFCost(ctx context.Context, game casino.Game, token string, betCount int, chainID uint64) (*big.Int, error)
}

// Publisher emite os eventos de aposta no Kafka. Nil desliga a emissão.
type Publisher interface {
	PublishBetPlaced(ctx context.Context, e events.CasinoBetPlaced) error
	PublishBetResolved(ctx context.Context, e events.CasinoBetResolved) error
}

// Deps agrupa os colaboradores das actions. Bank e Indexer são resolvidos
// por rede, já que endereço do banco e URL do subgraph mudam por chain.
type Deps struct {
	Wallet     casino.Wallet
	Fees       FeeEstimator
	Publisher  Publisher
	Log        *zap.Logger
	BankFor    func(chain *casino.ChainConfig) (Bank, error)
	IndexerFor func(chain *casino.ChainConfig) Indexer

	DappBaseURL    string
	SubgraphAPIKey string
	PollInterval   time.Duration
	PollTimeout    time.Duration
}

// normalize preenche defaults: implementações reais e a cadência 1s/60s do
// poller de resolução.
func (d *Deps) normalize() {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.BankFor == nil {
		d.BankFor = func(chain *casino.ChainConfig) (Bank, error) {
			return bank.New(d.Wallet, chain)
		}
	}
	if d.IndexerFor == nil {
		d.IndexerFor = func(chain *casino.ChainConfig) Indexer {
			return subgraph.New(chain.SubgraphURL, d.SubgraphAPIKey)
		}
	}
	if d.PollInterval <= 0 {
		d.PollInterval = time.Second
	}
	if d.PollTimeout <= 0 {
		d.PollTimeout = 60 * time.Second
	}
}
