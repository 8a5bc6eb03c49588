package subgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHash = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func betsServer(t *testing.T, bets []map[string]any, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if capture != nil {
			*capture = req.Query
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"bets": bets}})
	}))
}

func TestBetByHashFound(t *testing.T) {
	var query string
	srv := betsServer(t, []map[string]any{{
		"id":          "bet-1",
		"bettor":      "0x9f8e7d6c5b4a39281706f5e4d3c2b1a098765432",
		"game":        "coin-toss",
		"token":       map[string]any{"address": "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE", "symbol": "POL", "decimals": "18"},
		"amount":      "1000000000000000000",
		"totalAmount": "1000000000000000000",
		"betCount":    "1",
		"input":       "1",
		"rolled":      []string{"1"},
		"betTxnHash":  sampleHash,
		"rollTxnHash": "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		"resolved":    true,
		"payout":      "1960000000000000000",
	}}, &query)
	defer srv.Close()

	bet, err := New(srv.URL, "").BetByHash(context.Background(), strings.ToUpper(sampleHash[:10])+sampleHash[10:])
	require.NoError(t, err)
	require.NotNil(t, bet)

	assert.Equal(t, "bet-1", bet.ID)
	assert.Equal(t, 1, bet.BetCount)
	assert.Equal(t, uint8(18), bet.Token.Decimals)
	assert.True(t, bet.Resolved)

	// o hash vai lowercased na query, do jeito que o indexador armazena
	assert.Contains(t, query, sampleHash)
	assert.Contains(t, query, "first: 1")
}

func TestBetByHashNotIndexedYet(t *testing.T) {
	srv := betsServer(t, nil, nil)
	defer srv.Close()

	bet, err := New(srv.URL, "").BetByHash(context.Background(), sampleHash)
	require.NoError(t, err)
	assert.Nil(t, bet)
}

func TestBetsFilterAndPageSize(t *testing.T) {
	var query string
	srv := betsServer(t, nil, &query)
	defer srv.Close()

	_, err := New(srv.URL, "").Bets(context.Background(), Filter{
		Bettor: "0x9F8E7d6C5b4A39281706F5e4D3c2b1a098765432",
		Game:   "dice",
	})
	require.NoError(t, err)

	assert.Contains(t, query, `bettor: "0x9f8e7d6c5b4a39281706f5e4d3c2b1a098765432"`)
	assert.Contains(t, query, `game: "dice"`)
	assert.Contains(t, query, "first: 10")
	assert.Contains(t, query, "orderBy: blockTimestamp")
}

func TestBetsNoFilterOmitsWhere(t *testing.T) {
	var query string
	srv := betsServer(t, nil, &query)
	defer srv.Close()

	_, err := New(srv.URL, "").Bets(context.Background(), Filter{})
	require.NoError(t, err)
	assert.NotContains(t, query, "where")
}

func TestQuerySendsBearerWhenKeySet(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"bets": []any{}}})
	}))
	defer srv.Close()

	_, err := New(srv.URL, "graph-key").Bets(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer graph-key", auth)
}

func TestQueryGraphQLErrorsPropagate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "indexing in progress"}},
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").BetByHash(context.Background(), sampleHash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexing in progress")
}

func TestQueryNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").BetByHash(context.Background(), sampleHash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
