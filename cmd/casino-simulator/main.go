package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/shared/config"
	"github.com/gmeireles/casino-actions-poc/internal/shared/logger"
)

// Simulador local dos dois colaboradores externos do actions-service:
// a API de custo de VRF e o subgraph. Só pra desenvolvimento; resolve
// qualquer aposta ~3s depois da primeira consulta.

var (
	feeRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_vrf_fee_requests_total",
		Help: "consultas de custo de VRF atendidas",
	})
	graphQueries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_subgraph_queries_total",
		Help: "queries GraphQL atendidas",
	})
)

var txHashRe = regexp.MustCompile(`betTxnHash:\s*"(0x[0-9a-fA-F]{64})"`)

const resolveAfter = 3 * time.Second

// store guarda quando cada hash foi visto pela primeira vez, pra simular a
// latência de indexação + roll.
type store struct {
	mu    sync.Mutex
	seen  map[string]time.Time
	games map[string]string
}

func (s *store) firstSeen(hash string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.seen[hash]; ok {
		return t
	}
	t := time.Now()
	s.seen[hash] = t
	s.games[hash] = "coin-toss"
	return t
}

// syntheticBet monta um registro resolvido no formato do subgraph.
func syntheticBet(hash string) map[string]any {
	win := rand.Intn(2) == 1
	payout := "0"
	if win {
		payout = "1960000000000000000" // ~1.96x de 1 POL
	}
	rolled := "0"
	if rand.Intn(2) == 1 {
		rolled = "1"
	}
	return map[string]any{
		"id":               "bet-" + hash[2:10],
		"bettor":           "0x9f8e7d6c5b4a39281706f5e4d3c2b1a098765432",
		"game":             "coin-toss",
		"token":            map[string]any{"address": "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE", "symbol": "POL", "decimals": "18"},
		"amount":           "1000000000000000000",
		"totalAmount":      "1000000000000000000",
		"betCount":         "1",
		"stopGain":         "0",
		"stopLoss":         "0",
		"input":            "1",
		"rolled":           []string{rolled},
		"betTxnHash":       hash,
		"rollTxnHash":      "0x" + fmt.Sprintf("%064x", rand.Int63()),
		"resolved":         true,
		"payout":           payout,
		"payoutMultiplier": "1.94",
		"blockTimestamp":   strconv.FormatInt(time.Now().Unix(), 10),
	}
}

func main() {
	cfg := config.Load()
	log, err := logger.New("casino-simulator", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	prometheus.MustRegister(feeRequests, graphQueries)

	st := &store{seen: map[string]time.Time{}, games: map[string]string{}}

	mux := http.NewServeMux()

	// API de custo de VRF: inteiro-como-string JSON, com ruído pra imitar
	// a variação de gas price.
	mux.HandleFunc("/vrf-fee", func(w http.ResponseWriter, r *http.Request) {
		feeRequests.Inc()
		betCount, _ := strconv.Atoi(r.URL.Query().Get("betCount"))
		if betCount <= 0 {
			betCount = 1
		}
		base := int64(250_000_000_000_000) // 0.00025 no gas token
		fee := base*int64(betCount) + rand.Int63n(base/10)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(strconv.FormatInt(fee, 10))
	})

	// Subgraph: só entende as duas queries que o serviço faz.
	mux.HandleFunc("/subgraph", func(w http.ResponseWriter, r *http.Request) {
		graphQueries.Inc()
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		var bets []map[string]any
		if m := txHashRe.FindStringSubmatch(req.Query); m != nil {
			hash := m[1]
			if time.Since(st.firstSeen(hash)) >= resolveAfter {
				bets = append(bets, syntheticBet(hash))
			}
			// pendente = lista vazia, igual ao indexador de verdade
		} else {
			st.mu.Lock()
			for hash := range st.seen {
				bets = append(bets, syntheticBet(hash))
			}
			st.mu.Unlock()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"bets": bets}})
	})

	go func() {
		mmux := http.NewServeMux()
		mmux.Handle("/metrics", promhttp.Handler())
		mmux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		addr := ":" + cfg.MetricsPort
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, mmux)
	}()

	addr := ":" + cfg.HTTPPort
	log.Info("casino-simulator listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("http", zap.Error(err))
	}
}
