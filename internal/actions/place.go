package actions

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/bank"
	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/pkg/contracts/events"
)

// betRequest é a aposta já validada, pronta pro pipeline de colocação.
type betRequest struct {
	game        casino.Game
	input       *big.Int // input do jogo codificado
	tokenSymbol string
	amount      string // decimal, por aposta
	betCount    int    // 0 vira 1
	stopGain    string // decimal, opcional
	stopLoss    string
	receiver    string // opcional, default = conta da carteira
}

// placeBet executa o fluxo único de colocação: resolve chain e token,
// converte valores, checa requisitos e custo de VRF, envia a transação e
// espera a resolução no subgraph. Sem retry em nenhuma etapa.
func (d *Deps) placeBet(ctx context.Context, req betRequest) (*BetResult, error) {
	chainID, err := d.Wallet.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve active network: %w", err)
	}
	chain, err := casino.ChainByID(chainID)
	if err != nil {
		return nil, err
	}

	bankCli, err := d.BankFor(chain)
	if err != nil {
		return nil, fmt.Errorf("bank client for %s: %w", chain.Name, err)
	}

	token, err := casino.ResolveToken(ctx, chain, req.tokenSymbol, bankCli)
	if err != nil {
		return nil, err
	}

	amountWei, err := casino.ToSmallestUnit(req.amount, token.Decimals)
	if err != nil {
		return nil, err
	}

	betCount := req.betCount
	if betCount == 0 {
		betCount = 1
	}

	var stopGain, stopLoss *big.Int
	if req.stopGain != "" {
		if stopGain, err = casino.ToSmallestUnit(req.stopGain, token.Decimals); err != nil {
			return nil, fmt.Errorf("stopGain: %w", err)
		}
	}
	if req.stopLoss != "" {
		if stopLoss, err = casino.ToSmallestUnit(req.stopLoss, token.Decimals); err != nil {
			return nil, fmt.Errorf("stopLoss: %w", err)
		}
	}

	bettor, err := d.Wallet.Address(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve bettor address: %w", err)
	}
	receiver := bettor
	if req.receiver != "" {
		receiver = common.HexToAddress(req.receiver)
	}

	// Gate de requisitos: uma leitura fresca por colocação.
	reqs, err := bankCli.Requirements(ctx, req.game, token.Address)
	if err != nil {
		return nil, fmt.Errorf("fetch bet requirements: %w", err)
	}
	if !reqs.Allowed {
		return nil, fmt.Errorf("betting with %s on %s is currently disabled (token not allowed or game paused)", token.Symbol, req.game)
	}
	if reqs.MaxBetAmount != nil && amountWei.Cmp(reqs.MaxBetAmount) > 0 {
		return nil, fmt.Errorf("bet amount %s exceeds the maximum of %s %s",
			casino.FormatAmount(amountWei, token.Decimals),
			casino.FormatAmount(reqs.MaxBetAmount, token.Decimals), token.Symbol)
	}
	if reqs.MaxBetCount > 0 && betCount > reqs.MaxBetCount {
		return nil, fmt.Errorf("bet count %d exceeds the contract maximum of %d", betCount, reqs.MaxBetCount)
	}

	vrfFee, err := d.Fees.VRFCost(ctx, req.game, token.Address.Hex(), betCount, chainID)
	if err != nil {
		return nil, fmt.Errorf("fetch vrf cost: %w", err)
	}

	txHash, err := bankCli.PlaceBet(ctx, bank.PlaceBetParams{
		Game:      req.game,
		Input:     req.input,
		Token:     token,
		AmountWei: amountWei,
		BetCount:  betCount,
		StopGain:  stopGain,
		StopLoss:  stopLoss,
		Receiver:  receiver,
		VRFFeeWei: vrfFee,
	})
	if err != nil {
		return nil, fmt.Errorf("place %s bet: %w", req.game, err)
	}

	d.Log.Info("bet placed",
		zap.String("game", string(req.game)),
		zap.Uint64("chain_id", chainID),
		zap.String("tx", txHash.Hex()),
	)
	d.publishPlaced(ctx, chainID, req.game, bettor.Hex(), token.Symbol, amountWei.String(), betCount, txHash.Hex())

	bet, err := d.waitRolled(ctx, d.IndexerFor(chain), txHash.Hex())
	if err != nil {
		return nil, err
	}

	result, err := formatBet(chain, d.DappBaseURL, bet)
	if err != nil {
		return nil, err
	}
	d.publishResolved(ctx, chainID, bet.Payout, result)

	return result, nil
}

func (d *Deps) publishPlaced(ctx context.Context, chainID uint64, game casino.Game, bettor, symbol, amountWei string, betCount int, txHash string) {
	if d.Publisher == nil {
		return
	}
	err := d.Publisher.PublishBetPlaced(ctx, events.CasinoBetPlaced{
		ChainID:     chainID,
		Game:        string(game),
		Bettor:      bettor,
		TokenSymbol: symbol,
		AmountWei:   amountWei,
		BetCount:    betCount,
		BetTxnHash:  txHash,
		TsUnixMs:    time.Now().UnixMilli(),
	})
	if err != nil {
		d.Log.Warn("publish bet_placed", zap.Error(err))
	}
}

func (d *Deps) publishResolved(ctx context.Context, chainID uint64, payoutWei string, r *BetResult) {
	if d.Publisher == nil {
		return
	}
	err := d.Publisher.PublishBetResolved(ctx, events.CasinoBetResolved{
		ChainID:     chainID,
		Game:        r.Game,
		BetID:       r.ID,
		BetTxnHash:  r.BetTxnHash,
		RollTxnHash: r.RollTxnHash,
		IsWin:       r.IsWin,
		PayoutWei:   payoutWei,
		TsUnixMs:    time.Now().UnixMilli(),
	})
	if err != nil {
		d.Log.Warn("publish bet_resolved", zap.Error(err))
	}
}
