package casino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	for _, id := range []uint64{137, 8453, 42161, 43114, 56} {
		assert.True(t, Supported(id), "chain %d", id)
	}

	// rede desconhecida (ou não-EVM) responde false, sem erro
	assert.False(t, Supported(1))
	assert.False(t, Supported(999999))
	assert.False(t, Supported(0))
}

func TestChainByID(t *testing.T) {
	c, err := ChainByID(8453)
	require.NoError(t, err)
	assert.Equal(t, "base", c.Slug)
	assert.Equal(t, "ETH", c.NativeSymbol)

	_, err = ChainByID(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported chain id 1")
	assert.Contains(t, err.Error(), "137")
}

func TestExplorerTxLink(t *testing.T) {
	c, _ := ChainByID(137)
	hash := "0x" + "11" + "11111111111111111111111111111111111111111111111111111111111111"
	assert.Equal(t, "https://polygonscan.com/tx/"+hash, c.ExplorerTxLink(hash))
}

func TestBetURL(t *testing.T) {
	c, _ := ChainByID(42161)
	assert.Equal(t,
		"https://app.casino.local/arbitrum/casino/dice/bet-42",
		BetURL("https://app.casino.local/", c, GameDice, "bet-42"))
	assert.Equal(t,
		"https://app.casino.local/arbitrum/casino/dice/bet-42",
		BetURL("https://app.casino.local", c, GameDice, "bet-42"))
}
