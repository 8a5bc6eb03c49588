package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func pollDeps(interval, timeout time.Duration) *Deps {
	return &Deps{
		Log:          zap.NewNop(),
		PollInterval: interval,
		PollTimeout:  timeout,
	}
}

func TestWaitRolledResolves(t *testing.T) {
	idx := &fakeIndexer{bet: resolvedBet("coin-toss", "1"), pendingPolls: 2}
	d := pollDeps(time.Millisecond, time.Second)

	bet, err := d.waitRolled(context.Background(), idx, testBetHash)
	require.NoError(t, err)
	require.NotNil(t, bet)
	assert.True(t, bet.Resolved)
	assert.Equal(t, 3, idx.byHashCalls)
}

func TestWaitRolledIndexerErrorFailsImmediately(t *testing.T) {
	idx := &fakeIndexer{betErr: errors.New("subgraph http 503")}
	d := pollDeps(time.Millisecond, time.Second)

	_, err := d.waitRolled(context.Background(), idx, testBetHash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subgraph http 503")
	// sem retry: uma consulta só
	assert.Equal(t, 1, idx.byHashCalls)
}

func TestWaitRolledTimeout(t *testing.T) {
	idx := &fakeIndexer{pendingPolls: 1 << 30} // pendente pra sempre
	d := pollDeps(2*time.Millisecond, 20*time.Millisecond)

	_, err := d.waitRolled(context.Background(), idx, testBetHash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "was not resolved within")
	// a aposta está colocada; o erro aponta o caminho de recuperação
	assert.Contains(t, err.Error(), "casino.get-bet")
	assert.GreaterOrEqual(t, idx.byHashCalls, 2)
}

func TestWaitRolledContextCancel(t *testing.T) {
	idx := &fakeIndexer{pendingPolls: 1 << 30}
	d := pollDeps(50*time.Millisecond, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := d.waitRolled(ctx, idx, testBetHash)
	require.ErrorIs(t, err, context.Canceled)
}
