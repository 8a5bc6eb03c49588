package bank

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
)

// Fragmento mínimo do ABI do banco do cassino: só o que este serviço chama.
// A codificação dos jogos em si (multiplicadores, payout) fica no contrato.
const bankABIJSON = `[
  {"inputs":[{"internalType":"bytes32","name":"game","type":"bytes32"},{"internalType":"address","name":"token","type":"address"}],"name":"getBetRequirements","outputs":[{"internalType":"bool","name":"isAllowed","type":"bool"},{"internalType":"uint256","name":"maxBetAmount","type":"uint256"},{"internalType":"uint256","name":"maxBetCount","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"getTokens","outputs":[{"components":[{"internalType":"address","name":"tokenAddress","type":"address"},{"internalType":"string","name":"symbol","type":"string"},{"internalType":"uint8","name":"decimals","type":"uint8"}],"internalType":"struct Bank.TokenInfo[]","name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
  {"inputs":[{"internalType":"bytes32","name":"game","type":"bytes32"},{"internalType":"uint256","name":"input","type":"uint256"},{"internalType":"address","name":"token","type":"address"},{"internalType":"uint256","name":"tokenAmount","type":"uint256"},{"internalType":"uint16","name":"betCount","type":"uint16"},{"internalType":"uint256","name":"stopGain","type":"uint256"},{"internalType":"uint256","name":"stopLoss","type":"uint256"},{"internalType":"address","name":"receiver","type":"address"}],"name":"wager","outputs":[],"stateMutability":"payable","type":"function"}
]`

// Client encapsula as leituras e a colocação de aposta no contrato do banco,
// sempre através da Wallet fornecida pelo chamador.
type Client struct {
	wallet casino.Wallet
	addr   common.Address
	abi    abi.ABI
}

func New(wallet casino.Wallet, chain *casino.ChainConfig) (*Client, error) {
	parsed, err := abi.JSON(strings.NewReader(bankABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse bank abi: %w", err)
	}
	return &Client{wallet: wallet, addr: chain.BankAddress, abi: parsed}, nil
}

// gameKey é o identificador bytes32 do jogo no contrato.
func gameKey(g casino.Game) [32]byte {
	return crypto.Keccak256Hash([]byte(g))
}

// Tokens lista os tokens aceitos pelo banco. Implementa casino.TokenLister.
func (c *Client) Tokens(ctx context.Context) ([]casino.Token, error) {
	data, err := c.abi.Pack("getTokens")
	if err != nil {
		return nil, fmt.Errorf("pack getTokens: %w", err)
	}
	res, err := c.wallet.ReadContract(ctx, c.addr, data)
	if err != nil {
		return nil, fmt.Errorf("read getTokens: %w", err)
	}
	out, err := c.abi.Unpack("getTokens", res)
	if err != nil {
		return nil, fmt.Errorf("unpack getTokens: %w", err)
	}

	raw := *abi.ConvertType(out[0], new([]struct {
		TokenAddress common.Address
		Symbol       string
		Decimals     uint8
	})).(*[]struct {
		TokenAddress common.Address
		Symbol       string
		Decimals     uint8
	})

	tokens := make([]casino.Token, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, casino.Token{
			Symbol:   t.Symbol,
			Address:  t.TokenAddress,
			Decimals: t.Decimals,
		})
	}
	return tokens, nil
}

// Requirements busca os limites atuais do jogo/token numa leitura só.
// isAllowed cobre token desabilitado E jogo pausado. Sempre fresco, sem cache.
func (c *Client) Requirements(ctx context.Context, game casino.Game, token common.Address) (casino.BetRequirements, error) {
	data, err := c.abi.Pack("getBetRequirements", gameKey(game), token)
	if err != nil {
		return casino.BetRequirements{}, fmt.Errorf("pack getBetRequirements: %w", err)
	}
	res, err := c.wallet.ReadContract(ctx, c.addr, data)
	if err != nil {
		return casino.BetRequirements{}, fmt.Errorf("read getBetRequirements: %w", err)
	}
	out, err := c.abi.Unpack("getBetRequirements", res)
	if err != nil {
		return casino.BetRequirements{}, fmt.Errorf("unpack getBetRequirements: %w", err)
	}

	maxCount := out[2].(*big.Int)
	return casino.BetRequirements{
		Allowed:      out[0].(bool),
		MaxBetAmount: out[1].(*big.Int),
		MaxBetCount:  int(maxCount.Int64()),
	}, nil
}

// PlaceBetParams é a chamada de wager já resolvida (token, valores em wei,
// input do jogo codificado).
type PlaceBetParams struct {
	Game      casino.Game
	Input     *big.Int // input codificado do jogo (face, teto, bitmask)
	Token     casino.Token
	AmountWei *big.Int // por aposta
	BetCount  int
	StopGain  *big.Int // zero desliga
	StopLoss  *big.Int
	Receiver  common.Address
	VRFFeeWei *big.Int // custo de VRF já com margem, vai no value
}

// PlaceBet monta e envia a transação de wager. Sem retry: qualquer falha
// sobe embrulhada pro chamador.
func (c *Client) PlaceBet(ctx context.Context, p PlaceBetParams) (common.Hash, error) {
	stopGain := p.StopGain
	if stopGain == nil {
		stopGain = big.NewInt(0)
	}
	stopLoss := p.StopLoss
	if stopLoss == nil {
		stopLoss = big.NewInt(0)
	}

	data, err := c.abi.Pack("wager",
		gameKey(p.Game), p.Input, p.Token.Address, p.AmountWei,
		uint16(p.BetCount), stopGain, stopLoss, p.Receiver,
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack wager: %w", err)
	}

	// value = custo de VRF; apostas no gas token embutem o total apostado.
	value := new(big.Int).Set(p.VRFFeeWei)
	if p.Token.Address == casino.NativeTokenAddress {
		total := new(big.Int).Mul(p.AmountWei, big.NewInt(int64(p.BetCount)))
		value.Add(value, total)
	}

	hash, err := c.wallet.SendTransaction(ctx, c.addr, value, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("send wager transaction: %w", err)
	}
	return hash, nil
}
