package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/actions"
	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/internal/service/cache"
)

// Server expõe o registro de actions por HTTP. O roteamento de verdade
// (LLM/CLI) fica com o framework que embutir o registro; isto aqui é a
// superfície REST do serviço standalone.
type Server struct {
	log    *zap.Logger
	reg    *actions.Registry
	wallet casino.Wallet
	bets   *cache.Bets // nil desliga o cache
}

func NewServer(log *zap.Logger, reg *actions.Registry, wallet casino.Wallet, bets *cache.Bets) *Server {
	return &Server{log: log, reg: reg, wallet: wallet, bets: bets}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/actions", s.listActions)
	r.Post("/v1/actions/{name}", s.invokeAction)
	r.Get("/v1/bets", s.listBets)
	r.Get("/v1/bets/{txHash}", s.getBet)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if actions.IsValidationError(err) {
		status = http.StatusBadRequest
	} else if strings.HasPrefix(err.Error(), "unknown action") {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) listActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.List())
}

func (s *Server) invokeAction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body"})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	out, err := s.reg.Invoke(r.Context(), name, body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// getBet atende GET /v1/bets/{txHash} com cache de resolvidas na frente.
func (s *Server) getBet(w http.ResponseWriter, r *http.Request) {
	txHash := chi.URLParam(r, "txHash")

	chainID, err := s.wallet.ChainID(r.Context())
	if err == nil && s.bets != nil {
		var cached actions.BetResult
		if ok, cerr := s.bets.Get(r.Context(), chainID, txHash, &cached); cerr == nil && ok {
			writeJSON(w, http.StatusOK, &cached)
			return
		}
	}

	input, _ := json.Marshal(actions.GetBetInput{TxHash: txHash})
	out, err := s.reg.Invoke(r.Context(), "casino.get-bet", input)
	if err != nil {
		writeError(w, err)
		return
	}

	// Só cacheia depois do roll; aposta pendente ainda muda.
	if res, ok := out.(*actions.BetResult); ok && res.RollTxnHash != "" && s.bets != nil {
		if cerr := s.bets.Set(r.Context(), chainID, txHash, res); cerr != nil {
			s.log.Warn("bet cache set", zap.Error(cerr))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	input, _ := json.Marshal(actions.GetBetsInput{
		Bettor: r.URL.Query().Get("bettor"),
		Game:   r.URL.Query().Get("game"),
	})
	out, err := s.reg.Invoke(r.Context(), "casino.get-bets", input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
