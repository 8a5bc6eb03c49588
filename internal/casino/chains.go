package casino

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConfig agrupa tudo que muda por rede: moeda nativa, endereço do banco
// do cassino, subgraph e template de link do explorer.
type ChainConfig struct {
	ID             uint64
	Slug           string // usado nas URLs de exibição
	Name           string
	NativeSymbol   string
	NativeDecimals uint8
	BankAddress    common.Address
	SubgraphURL    string
	ExplorerTxURL  string // template, recebe o hash via fmt.Sprintf
}

// Catálogo fixo das redes suportadas, no estilo tabela-por-chain.
var chains = map[uint64]*ChainConfig{
	137: {
		ID:             137,
		Slug:           "polygon",
		Name:           "Polygon",
		NativeSymbol:   "POL",
		NativeDecimals: 18,
		BankAddress:    common.HexToAddress("0x9d2aB26dB9a1fCC8a1E7Fb06b5AE1bb349f9C14e"),
		SubgraphURL:    "https://indexer.casino.local/subgraphs/name/casino-polygon",
		ExplorerTxURL:  "https://polygonscan.com/tx/%s",
	},
	8453: {
		ID:             8453,
		Slug:           "base",
		Name:           "Base",
		NativeSymbol:   "ETH",
		NativeDecimals: 18,
		BankAddress:    common.HexToAddress("0x4b1A6eCEb8F8E2d9A87B3e8dDb0aD6b257C5a9F1"),
		SubgraphURL:    "https://indexer.casino.local/subgraphs/name/casino-base",
		ExplorerTxURL:  "https://basescan.org/tx/%s",
	},
	42161: {
		ID:             42161,
		Slug:           "arbitrum",
		Name:           "Arbitrum One",
		NativeSymbol:   "ETH",
		NativeDecimals: 18,
		BankAddress:    common.HexToAddress("0x7Fb92dC5a9E0bB04C1E66Ab1E335cA42809a3cE8"),
		SubgraphURL:    "https://indexer.casino.local/subgraphs/name/casino-arbitrum",
		ExplorerTxURL:  "https://arbiscan.io/tx/%s",
	},
	43114: {
		ID:             43114,
		Slug:           "avalanche",
		Name:           "Avalanche",
		NativeSymbol:   "AVAX",
		NativeDecimals: 18,
		BankAddress:    common.HexToAddress("0xA30FbE2d10CbEe6C0Bcc8e674001a07fD077bF23"),
		SubgraphURL:    "https://indexer.casino.local/subgraphs/name/casino-avalanche",
		ExplorerTxURL:  "https://snowtrace.io/tx/%s",
	},
	56: {
		ID:             56,
		Slug:           "bsc",
		Name:           "BNB Smart Chain",
		NativeSymbol:   "BNB",
		NativeDecimals: 18,
		BankAddress:    common.HexToAddress("0xD81b0Ae5E6aF536E95a2E6A231D0b1e58A077cC4"),
		SubgraphURL:    "https://indexer.casino.local/subgraphs/name/casino-bsc",
		ExplorerTxURL:  "https://bscscan.com/tx/%s",
	},
}

// Supported responde se a rede é conhecida, sem erro. Redes não-EVM ou
// desconhecidas simplesmente retornam false.
func Supported(chainID uint64) bool {
	_, ok := chains[chainID]
	return ok
}

// ChainByID devolve a config da rede, listando as suportadas no erro.
func ChainByID(chainID uint64) (*ChainConfig, error) {
	if c, ok := chains[chainID]; ok {
		return c, nil
	}
	ids := make([]string, 0, len(chains))
	for id := range chains {
		ids = append(ids, fmt.Sprintf("%d", id))
	}
	sort.Strings(ids)
	return nil, fmt.Errorf("unsupported chain id %d (supported: %s)", chainID, strings.Join(ids, ", "))
}

// ExplorerTxLink monta o link do explorer pro hash da transação.
func (c *ChainConfig) ExplorerTxLink(txHash string) string {
	return fmt.Sprintf(c.ExplorerTxURL, txHash)
}

// BetURL monta a URL de exibição da aposta no dapp.
func BetURL(dappBase string, c *ChainConfig, game Game, betID string) string {
	return fmt.Sprintf("%s/%s/casino/%s/%s", strings.TrimSuffix(dappBase, "/"), c.Slug, game, betID)
}
