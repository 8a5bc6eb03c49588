package actions

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/internal/subgraph"
)

// BetResult é o registro plano devolvido pras actions. Construído uma vez
// após a resolução, nunca mutado.
type BetResult struct {
	ID       string `json:"id"`
	Game     string `json:"game"`
	ChainID  uint64 `json:"chainId"`
	Bettor   string `json:"bettor"`
	Token    string `json:"token"`
	Input    string `json:"input"` // input decodificado (HEADS, 42, "0,12,35")
	BetCount int    `json:"betCount"`

	Amount      string `json:"amount"`      // decimal, por aposta
	TotalAmount string `json:"totalAmount"` // decimal
	StopGain    string `json:"stopGain,omitempty"`
	StopLoss    string `json:"stopLoss,omitempty"`

	BetTxnHash  string `json:"betTxnHash"`
	BetTxnLink  string `json:"betTxnLink"`
	RollTxnHash string `json:"rollTxnHash,omitempty"` // vazio se o roll não aconteceu
	RollTxnLink string `json:"rollTxnLink,omitempty"`

	IsWin            bool     `json:"isWin"`
	Rolled           []string `json:"rolled"` // resultados decodificados, um por aposta
	PayoutMultiplier string   `json:"payoutMultiplier"`
	Payout           string   `json:"payout"` // decimal

	URL string `json:"url"` // exibição no dapp
}

// formatBet mapeia o registro cru do subgraph pro formato público.
// Puro: só copia, renomeia, decodifica e monta links.
func formatBet(chain *casino.ChainConfig, dappBase string, b *subgraph.Bet) (*BetResult, error) {
	game, err := casino.ParseGame(b.Game)
	if err != nil {
		return nil, fmt.Errorf("bet %s: %w", b.ID, err)
	}

	input, err := decodeInput(game, b.EncodedInput)
	if err != nil {
		return nil, fmt.Errorf("bet %s: %w", b.ID, err)
	}

	rolled := make([]string, 0, len(b.EncodedRolled))
	for _, r := range b.EncodedRolled {
		rolled = append(rolled, decodeRolled(game, r))
	}

	decimals := b.Token.Decimals

	out := &BetResult{
		ID:       b.ID,
		Game:     string(game),
		ChainID:  chain.ID,
		Bettor:   b.Bettor,
		Token:    b.Token.Symbol,
		Input:    input,
		BetCount: b.BetCount,

		Amount:      formatRaw(b.Amount, decimals),
		TotalAmount: formatRaw(b.TotalAmount, decimals),

		BetTxnHash: b.BetTxnHash,
		BetTxnLink: chain.ExplorerTxLink(b.BetTxnHash),

		IsWin:            isWin(b),
		Rolled:           rolled,
		PayoutMultiplier: b.PayoutMultiplier,
		Payout:           formatRaw(b.Payout, decimals),

		URL: casino.BetURL(dappBase, chain, game, b.ID),
	}

	if b.StopGain != "" && b.StopGain != "0" {
		out.StopGain = formatRaw(b.StopGain, decimals)
	}
	if b.StopLoss != "" && b.StopLoss != "0" {
		out.StopLoss = formatRaw(b.StopLoss, decimals)
	}

	// Campos de roll ficam vazios quando o roll ainda não existe.
	if b.RollTxnHash != "" {
		out.RollTxnHash = b.RollTxnHash
		out.RollTxnLink = chain.ExplorerTxLink(b.RollTxnHash)
	}

	return out, nil
}

// decodeInput traduz o input codificado do contrato pro formato humano.
func decodeInput(game casino.Game, encoded string) (string, error) {
	switch game {
	case casino.GameCoinToss:
		face, err := casino.DecodeCoinFace(encoded)
		return string(face), err
	case casino.GameDice:
		n, err := casino.DecodeDiceCap(encoded)
		return fmt.Sprintf("%d", n), err
	case casino.GameRoulette:
		numbers, err := casino.DecodeRouletteNumbers(encoded)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(numbers))
		for i, n := range numbers {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return strings.Join(parts, ","), nil
	}
	return encoded, nil
}

// decodeRolled traduz um resultado individual. Dice e roleta já vêm como o
// número sorteado; cara-ou-coroa vira o nome da face.
func decodeRolled(game casino.Game, encoded string) string {
	if game == casino.GameCoinToss {
		if face, err := casino.DecodeCoinFace(encoded); err == nil {
			return string(face)
		}
	}
	return encoded
}

// isWin: pagou mais do que o total apostado.
func isWin(b *subgraph.Bet) bool {
	payout, ok1 := new(big.Int).SetString(b.Payout, 10)
	total, ok2 := new(big.Int).SetString(b.TotalAmount, 10)
	if !ok1 || !ok2 {
		return false
	}
	return payout.Cmp(total) > 0
}

func formatRaw(raw string, decimals uint8) string {
	wei, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return raw
	}
	return casino.FormatAmount(wei, decimals)
}
