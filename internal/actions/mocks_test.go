package actions

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/bank"
	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/internal/subgraph"
	"github.com/gmeireles/casino-actions-poc/pkg/contracts/events"
)

// Fakes dos colaboradores do pipeline. Contadores de chamada deixam os testes
// afirmarem quantas vezes cada fronteira foi tocada.

const (
	testBetHash  = "0x0101010101010101010101010101010101010101010101010101010101010101"
	testRollHash = "0x0202020202020202020202020202020202020202020202020202020202020202"
)

var testBettor = common.HexToAddress("0x9f8E7d6C5b4A39281706F5e4D3c2b1a098765432")

type fakeWallet struct {
	chainID      uint64
	addr         common.Address
	chainIDCalls int
	addrCalls    int
}

func (w *fakeWallet) ChainID(context.Context) (uint64, error) {
	w.chainIDCalls++
	return w.chainID, nil
}

func (w *fakeWallet) Address(context.Context) (common.Address, error) {
	w.addrCalls++
	return w.addr, nil
}

func (w *fakeWallet) ReadContract(context.Context, common.Address, []byte) ([]byte, error) {
	return nil, errors.New("unexpected raw contract read")
}

func (w *fakeWallet) SendTransaction(context.Context, common.Address, *big.Int, []byte) (common.Hash, error) {
	return common.Hash{}, errors.New("unexpected raw transaction")
}

type fakeBank struct {
	tokens  []casino.Token
	reqs    casino.BetRequirements
	reqsErr error

	placeErr   error
	lastParams bank.PlaceBetParams

	tokenCalls int
	reqCalls   int
	placeCalls int
}

func (b *fakeBank) Tokens(context.Context) ([]casino.Token, error) {
	b.tokenCalls++
	return b.tokens, nil
}

func (b *fakeBank) Requirements(context.Context, casino.Game, common.Address) (casino.BetRequirements, error) {
	b.reqCalls++
	return b.reqs, b.reqsErr
}

func (b *fakeBank) PlaceBet(_ context.Context, p bank.PlaceBetParams) (common.Hash, error) {
	b.placeCalls++
	b.lastParams = p
	if b.placeErr != nil {
		return common.Hash{}, b.placeErr
	}
	return common.HexToHash(testBetHash), nil
}

type fakeIndexer struct {
	bet          *subgraph.Bet
	betErr       error
	pendingPolls int // consultas que devolvem pendente antes da resolvida

	betsOut    []subgraph.Bet
	betsErr    error
	lastFilter subgraph.Filter

	byHashCalls int
	betsCalls   int
}

func (i *fakeIndexer) BetByHash(context.Context, string) (*subgraph.Bet, error) {
	i.byHashCalls++
	if i.betErr != nil {
		return nil, i.betErr
	}
	if i.byHashCalls <= i.pendingPolls {
		return nil, nil
	}
	return i.bet, nil
}

func (i *fakeIndexer) Bets(_ context.Context, f subgraph.Filter) ([]subgraph.Bet, error) {
	i.betsCalls++
	i.lastFilter = f
	return i.betsOut, i.betsErr
}

type fakeFees struct {
	fee   *big.Int
	err   error
	calls int

	lastGame     casino.Game
	lastToken    string
	lastBetCount int
}

func (f *fakeFees) VRFCost(_ context.Context, game casino.Game, token string, betCount int, _ uint64) (*big.Int, error) {
	f.calls++
	f.lastGame = game
	f.lastToken = token
	f.lastBetCount = betCount
	if f.err != nil {
		return nil, f.err
	}
	return new(big.Int).Set(f.fee), nil
}

type fakePublisher struct {
	placed   []events.CasinoBetPlaced
	resolved []events.CasinoBetResolved
}

func (p *fakePublisher) PublishBetPlaced(_ context.Context, e events.CasinoBetPlaced) error {
	p.placed = append(p.placed, e)
	return nil
}

func (p *fakePublisher) PublishBetResolved(_ context.Context, e events.CasinoBetResolved) error {
	p.resolved = append(p.resolved, e)
	return nil
}

// resolvedBet monta o registro do subgraph como o indexador o devolve depois
// do roll, num jogo/input parametrizável.
func resolvedBet(game, input string) *subgraph.Bet {
	return &subgraph.Bet{
		ID:     "bet-1",
		Bettor: testBettor.Hex(),
		Game:   game,
		Token: subgraph.BetToken{
			Address:  casino.NativeTokenAddress.Hex(),
			Symbol:   "POL",
			Decimals: 18,
		},
		Amount:           "1000000000000000000",
		TotalAmount:      "1000000000000000000",
		BetCount:         1,
		StopGain:         "0",
		StopLoss:         "0",
		EncodedInput:     input,
		EncodedRolled:    []string{"1"},
		BetTxnHash:       testBetHash,
		RollTxnHash:      testRollHash,
		Resolved:         true,
		Payout:           "1960000000000000000",
		PayoutMultiplier: "1.94",
		BlockTimestamp:   "1724400000",
	}
}

// newTestDeps liga os fakes no lugar das fronteiras reais, com o poller em
// cadência de teste.
func newTestDeps(w *fakeWallet, b *fakeBank, idx *fakeIndexer, fees *fakeFees, pub *fakePublisher) Deps {
	return Deps{
		Wallet:       w,
		Fees:         fees,
		Publisher:    pub,
		Log:          zap.NewNop(),
		BankFor:      func(*casino.ChainConfig) (Bank, error) { return b, nil },
		IndexerFor:   func(*casino.ChainConfig) Indexer { return idx },
		DappBaseURL:  "https://app.casino.local",
		PollInterval: time.Millisecond,
		PollTimeout:  250 * time.Millisecond,
	}
}
