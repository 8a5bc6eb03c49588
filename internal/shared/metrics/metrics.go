package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Métricas das actions do cassino, registradas uma vez no main.
var (
	ActionsInvoked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_actions_invoked_total",
		Help: "invocações por action",
	}, []string{"action"})

	ActionsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_actions_failed_total",
		Help: "falhas por action",
	}, []string{"action"})

	PollTimeouts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "casino_bet_poll_timeouts_total",
		Help: "apostas que estouraram os 60s de polling no subgraph",
	})
)

func Register() {
	prometheus.MustRegister(ActionsInvoked, ActionsFailed, PollTimeouts)
}

type HealthFunc func(ctx context.Context) error

// StartMetricsServer sobe um servidor HTTP leve só pra /metrics e /healthz.
// Executável numa goroutine no main de cada serviço.
func StartMetricsServer(port string, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()

		if healthFn != nil {
			if err := healthFn(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		_ = srv.ListenAndServe()
	}()

	return srv
}
