package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL do cache de apostas resolvidas. O registro é imutável depois de
// resolvido, o TTL só limita o tamanho do keyspace.
const resolvedBetTTL = time.Hour

// Bets cacheia SOMENTE apostas já resolvidas, na borda HTTP. Token,
// requisitos e fee continuam sendo resolvidos frescos a cada request.
type Bets struct {
	Rdb *redis.Client
}

func NewBets(rdb *redis.Client) *Bets { return &Bets{Rdb: rdb} }

func key(chainID uint64, txHash string) string {
	return fmt.Sprintf("casino:bet:%d:%s", chainID, txHash)
}

// Get preenche v com o resultado cacheado; (false, nil) em cache miss.
func (c *Bets) Get(ctx context.Context, chainID uint64, txHash string, v any) (bool, error) {
	if c == nil || c.Rdb == nil {
		return false, nil
	}
	raw, err := c.Rdb.Get(ctx, key(chainID, txHash)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, v)
}

// Set grava o resultado resolvido. Falha de cache não derruba o request.
func (c *Bets) Set(ctx context.Context, chainID uint64, txHash string, v any) error {
	if c == nil || c.Rdb == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Rdb.Set(ctx, key(chainID, txHash), raw, resolvedBetTTL).Err()
}
