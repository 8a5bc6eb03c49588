package actions

import (
	"context"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(newTestDeps(
		&fakeWallet{chainID: 137, addr: testBettor},
		&fakeBank{},
		&fakeIndexer{},
		&fakeFees{fee: big.NewInt(1)},
		nil,
	))
}

func TestRegistryListsActionsInOrder(t *testing.T) {
	list := testRegistry().List()

	names := make([]string, len(list))
	for i, a := range list {
		names[i] = a.Name
	}
	assert.Equal(t, []string{
		"casino.coin-toss",
		"casino.dice",
		"casino.roulette",
		"casino.get-bet",
		"casino.get-bets",
	}, names)

	for _, a := range list {
		assert.NotEmpty(t, a.Description, a.Name)
		assert.True(t, json.Valid(a.Schema), "schema of %s", a.Name)
	}
}

func TestInvokeUnknownAction(t *testing.T) {
	_, err := testRegistry().Invoke(context.Background(), "casino.poker", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown action "casino.poker"`)
}

func TestInvokeBadJSONIsValidationError(t *testing.T) {
	for _, name := range []string{"casino.coin-toss", "casino.dice", "casino.roulette", "casino.get-bet", "casino.get-bets"} {
		_, err := testRegistry().Invoke(context.Background(), name, json.RawMessage(`{not json`))
		require.Error(t, err, name)
		assert.True(t, IsValidationError(err), name)
	}
}
