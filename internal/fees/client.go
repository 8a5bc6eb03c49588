package fees

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
)

// Margem de segurança aplicada sobre a estimativa do custo de VRF.
const vrfFeeMarginPercent = 20

// Client consulta a API HTTP de estimativa do custo de VRF.
//
// Limitação conhecida: o custo poderia ser lido direto do contrato, mas o
// gas price usado na estimativa on-chain não é garantido de bater com o gas
// price da submissão. Enquanto a interface do contrato não mudar, fica a API
// off-chain + margem de 20%. Não "consertar" silenciosamente.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// VRFCost estima o custo de provisão de aleatoriedade pra aposta e devolve o
// valor já inflado pela margem de segurança, em wei.
func (c *Client) VRFCost(ctx context.Context, game casino.Game, token string, betCount int, chainID uint64) (*big.Int, error) {
	q := url.Values{}
	q.Set("game", string(game))
	q.Set("tokenAddress", token)
	q.Set("betCount", strconv.Itoa(betCount))
	q.Set("chainId", strconv.FormatUint(chainID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/vrf-fee?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vrf fee request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("vrf fee http %d", res.StatusCode)
	}

	// corpo é um inteiro-como-string JSON, ex: "250000000000000"
	var raw string
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("vrf fee decode: %w", err)
	}
	fee, ok := new(big.Int).SetString(raw, 10)
	if !ok || fee.Sign() < 0 {
		return nil, fmt.Errorf("vrf fee invalid value %q", raw)
	}

	return withMargin(fee), nil
}

func withMargin(fee *big.Int) *big.Int {
	out := new(big.Int).Mul(fee, big.NewInt(100+vrfFeeMarginPercent))
	return out.Div(out, big.NewInt(100))
}
