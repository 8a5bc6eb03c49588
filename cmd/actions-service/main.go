package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/actions"
	"github.com/gmeireles/casino-actions-poc/internal/fees"
	"github.com/gmeireles/casino-actions-poc/internal/service/cache"
	shttp "github.com/gmeireles/casino-actions-poc/internal/service/http"
	"github.com/gmeireles/casino-actions-poc/internal/service/producer"
	scache "github.com/gmeireles/casino-actions-poc/internal/shared/cache"
	"github.com/gmeireles/casino-actions-poc/internal/shared/config"
	skafka "github.com/gmeireles/casino-actions-poc/internal/shared/kafka"
	"github.com/gmeireles/casino-actions-poc/internal/shared/logger"
	"github.com/gmeireles/casino-actions-poc/internal/shared/metrics"
	"github.com/gmeireles/casino-actions-poc/internal/wallet"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	metrics.Register()

	ctx := context.Background()

	// Carteira server-side: nó RPC + chave local
	w, err := wallet.NewEVM(ctx, cfg.RPCURL, cfg.PrivateKey)
	if err != nil {
		log.Fatal("wallet", zap.Error(err))
	}
	chainID, err := w.ChainID(ctx)
	if err != nil {
		log.Fatal("chain id", zap.Error(err))
	}
	log.Info("wallet ready", zap.Uint64("chain_id", chainID))

	// Kafka writers (bet_placed / bet_resolved)
	placedWriter := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced)
	defer placedWriter.Close()
	resolvedWriter := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetResolved)
	defer resolvedWriter.Close()
	publ := producer.NewKafkaPublisher(placedWriter, resolvedWriter)

	// Redis opcional: cache das apostas já resolvidas na borda HTTP
	var betsCache *cache.Bets
	if cfg.RedisAddr != "" {
		rdb, rerr := scache.ConnectRedis(cfg.RedisAddr)
		if rerr != nil {
			log.Warn("redis off, serving without resolved-bet cache", zap.Error(rerr))
		} else {
			betsCache = cache.NewBets(rdb)
		}
	}

	reg := actions.NewRegistry(actions.Deps{
		Wallet:         w,
		Fees:           fees.New(cfg.VRFFeeAPIURL),
		Publisher:      publ,
		Log:            log,
		DappBaseURL:    cfg.DappBaseURL,
		SubgraphAPIKey: cfg.SubgraphAPIKey,
	})

	api := shttp.NewServer(log, reg, w, betsCache)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health em porta separada
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		_, herr := w.ChainID(ctx)
		return herr
	})
	log.Info("metrics/health", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("actions-service listening", zap.String("addr", ":"+cfg.HTTPPort))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
