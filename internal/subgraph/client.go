package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Campos pedidos em toda query de aposta.
const betFields = `
    id
    bettor
    game
    token { address symbol decimals }
    amount
    totalAmount
    betCount
    stopGain
    stopLoss
    input
    rolled
    betTxnHash
    rollTxnHash
    resolved
    payout
    payoutMultiplier
    blockTimestamp`

// Client fala GraphQL-sobre-HTTP com o indexador da rede.
type Client struct {
	URL    string
	APIKey string // opcional; vai no header quando presente
	HTTP   *http.Client
}

func New(url, apiKey string) *Client {
	return &Client{
		URL:    url,
		APIKey: apiKey,
		HTTP:   &http.Client{Timeout: 10 * time.Second},
	}
}

type BetToken struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals,string"`
}

// Filter restringe a listagem de apostas. Campos vazios não filtram.
type Filter struct {
	Bettor string
	Game   string
	First  int
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data struct {
		Bets []Bet `json:"bets"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

func (c *Client) query(ctx context.Context, q string) ([]Bet, error) {
	body, err := json.Marshal(map[string]string{"query": q})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subgraph request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("subgraph http %d", res.StatusCode)
	}

	var out gqlResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("subgraph decode: %w", err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, len(out.Errors))
		for i, e := range out.Errors {
			msgs[i] = e.Message
		}
		return nil, fmt.Errorf("subgraph error: %s", strings.Join(msgs, "; "))
	}
	return out.Data.Bets, nil
}

// BetByHash busca a aposta pelo hash da transação de colocação.
// Devolve (nil, nil) enquanto o indexador não viu a transação.
func (c *Client) BetByHash(ctx context.Context, txHash string) (*Bet, error) {
	q := fmt.Sprintf(`{ bets(where: { betTxnHash: %q }, first: 1) {%s
  } }`, strings.ToLower(txHash), betFields)

	bets, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(bets) == 0 {
		return nil, nil
	}
	return &bets[0], nil
}

// Bets lista a primeira página de apostas que casam com o filtro,
// mais recentes primeiro.
func (c *Client) Bets(ctx context.Context, f Filter) ([]Bet, error) {
	var where []string
	if f.Bettor != "" {
		where = append(where, fmt.Sprintf("bettor: %q", strings.ToLower(f.Bettor)))
	}
	if f.Game != "" {
		where = append(where, fmt.Sprintf("game: %q", f.Game))
	}
	first := f.First
	if first <= 0 {
		first = 10
	}

	clause := ""
	if len(where) > 0 {
		clause = fmt.Sprintf("where: { %s }, ", strings.Join(where, ", "))
	}
	q := fmt.Sprintf(`{ bets(%sfirst: %d, orderBy: blockTimestamp, orderDirection: desc) {%s
  } }`, clause, first, betFields)

	return c.query(ctx, q)
}
