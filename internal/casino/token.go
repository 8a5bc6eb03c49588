package casino

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinela pro gas token da rede (convenção EIP-7528).
var NativeTokenAddress = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

// Token é o descritor mínimo do token apostado. Resolvido a cada request,
// nunca cacheado entre chamadas.
type Token struct {
	Symbol   string
	Address  common.Address
	Decimals uint8
}

// TokenLister expõe a lista de tokens aceitos pelo banco do cassino.
// Implementado pelo client do contrato.
type TokenLister interface {
	Tokens(ctx context.Context) ([]Token, error)
}

// NativeToken devolve o descritor da moeda nativa da rede.
func NativeToken(c *ChainConfig) Token {
	return Token{
		Symbol:   c.NativeSymbol,
		Address:  NativeTokenAddress,
		Decimals: c.NativeDecimals,
	}
}

// ResolveToken resolve o símbolo informado pro token apostado. Símbolo vazio
// ou igual à moeda nativa devolve o descritor nativo sem consultar o
// contrato; fora isso a lista do banco é consultada e o match é exato.
func ResolveToken(ctx context.Context, chain *ChainConfig, symbol string, lister TokenLister) (Token, error) {
	if symbol == "" || strings.EqualFold(symbol, chain.NativeSymbol) {
		return NativeToken(chain), nil
	}

	tokens, err := lister.Tokens(ctx)
	if err != nil {
		return Token{}, fmt.Errorf("failed to list casino tokens: %w", err)
	}

	available := make([]string, 0, len(tokens)+1)
	available = append(available, chain.NativeSymbol)
	for _, t := range tokens {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, nil
		}
		available = append(available, t.Symbol)
	}
	sort.Strings(available)

	return Token{}, fmt.Errorf("token %q not supported on %s, available tokens: %s",
		symbol, chain.Name, strings.Join(available, ", "))
}
