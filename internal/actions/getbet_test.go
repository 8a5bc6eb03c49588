package actions

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmeireles/casino-actions-poc/internal/subgraph"
)

func lookupRegistry(idx *fakeIndexer) *Registry {
	return NewRegistry(newTestDeps(
		&fakeWallet{chainID: 137, addr: testBettor},
		&fakeBank{}, idx, &fakeFees{fee: big.NewInt(1)}, nil,
	))
}

func TestGetBetFound(t *testing.T) {
	idx := &fakeIndexer{bet: resolvedBet("coin-toss", "1")}

	out, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bet",
		json.RawMessage(`{"txHash":"`+testBetHash+`"}`))
	require.NoError(t, err)

	r := out.(*BetResult)
	assert.Equal(t, "bet-1", r.ID)
	assert.Equal(t, 1, idx.byHashCalls)
}

func TestGetBetNotFound(t *testing.T) {
	idx := &fakeIndexer{pendingPolls: 1} // primeira consulta devolve nada

	_, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bet",
		json.RawMessage(`{"txHash":"`+testBetHash+`"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bet found for transaction")
	assert.Contains(t, err.Error(), "Polygon")
	// lookup não espera resolução: uma consulta só
	assert.Equal(t, 1, idx.byHashCalls)
}

func TestGetBetRejectsBadHash(t *testing.T) {
	idx := &fakeIndexer{}
	_, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bet",
		json.RawMessage(`{"txHash":"0x123"}`))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Zero(t, idx.byHashCalls)
}

func TestGetBetsUsesFixedPageSize(t *testing.T) {
	idx := &fakeIndexer{betsOut: []subgraph.Bet{*resolvedBet("dice", "42")}}

	out, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bets",
		json.RawMessage(`{"bettor":"`+testBettor.Hex()+`","game":"dice"}`))
	require.NoError(t, err)

	assert.Equal(t, subgraph.Filter{
		Bettor: testBettor.Hex(),
		Game:   "dice",
		First:  10,
	}, idx.lastFilter)

	results := out.([]*BetResult)
	require.Len(t, results, 1)
	assert.Equal(t, "42", results[0].Input)
}

func TestGetBetsEmptyFilters(t *testing.T) {
	idx := &fakeIndexer{}
	out, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bets", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Empty(t, out.([]*BetResult))
	assert.Equal(t, 10, idx.lastFilter.First)
}

func TestGetBetsRejectsUnknownGame(t *testing.T) {
	idx := &fakeIndexer{}
	_, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bets",
		json.RawMessage(`{"game":"poker"}`))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Zero(t, idx.betsCalls)
}

func TestGetBetsIndexerError(t *testing.T) {
	idx := &fakeIndexer{betsErr: errors.New("subgraph http 500")}
	_, err := lookupRegistry(idx).Invoke(context.Background(), "casino.get-bets", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subgraph http 500")
}
