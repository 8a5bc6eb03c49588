package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gmeireles/casino-actions-poc/internal/shared/metrics"
	"github.com/gmeireles/casino-actions-poc/internal/subgraph"
)

// waitRolled espera o subgraph marcar a aposta como resolvida: consulta a
// cada PollInterval até PollTimeout. Dois estados (pendente/resolvida), três
// saídas: resolvida, erro do indexador (imediato) ou timeout. Sem backoff
// nem jitter; o chamador bloqueia até uma das três.
func (d *Deps) waitRolled(ctx context.Context, idx Indexer, txHash string) (*subgraph.Bet, error) {
	start := time.Now()
	for {
		bet, err := idx.BetByHash(ctx, txHash)
		if err != nil {
			return nil, fmt.Errorf("indexer error while waiting for bet %s: %w", txHash, err)
		}
		if bet != nil && bet.Resolved {
			return bet, nil
		}

		if time.Since(start) >= d.PollTimeout {
			metrics.PollTimeouts.Inc()
			return nil, fmt.Errorf("bet %s was not resolved within %s; the bet is placed, fetch it later with casino.get-bet and try again", txHash, d.PollTimeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.PollInterval):
		}
	}
}
