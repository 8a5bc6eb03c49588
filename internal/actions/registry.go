package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gmeireles/casino-actions-poc/internal/casino"
	"github.com/gmeireles/casino-actions-poc/internal/shared/metrics"
)

// Handler executa uma action com o payload JSON cru do chamador.
type Handler func(ctx context.Context, input json.RawMessage) (any, error)

// Action junta o metadado exposto pro framework que embute o serviço
// (nome, descrição, schema de input) com o handler.
type Action struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema"`

	handler Handler
}

// Registry mapeia nome da action pro par (schema/validação, handler).
// Montado uma vez no startup; imutável depois.
type Registry struct {
	actions map[string]Action
	order   []string
	log     *zap.Logger
}

// NewRegistry constrói o registro com as cinco actions do cassino.
func NewRegistry(deps Deps) *Registry {
	deps.normalize()

	r := &Registry{
		actions: map[string]Action{},
		log:     deps.Log,
	}

	r.register(Action{
		Name:        "casino.coin-toss",
		Description: "Flip a coin on-chain: bet on HEADS or TAILS, wait for the VRF roll and get the payout result.",
		Schema:      json.RawMessage(coinTossSchema),
		handler:     deps.coinToss,
	})
	r.register(Action{
		Name:        "casino.dice",
		Description: "Roll a dice on-chain: pick a cap number from 1 to 99, win when the rolled number is above it.",
		Schema:      json.RawMessage(diceSchema),
		handler:     deps.dice,
	})
	r.register(Action{
		Name:        "casino.roulette",
		Description: "Spin an on-chain roulette: bet on any set of numbers from 0 to 36.",
		Schema:      json.RawMessage(rouletteSchema),
		handler:     deps.roulette,
	})
	r.register(Action{
		Name:        "casino.get-bet",
		Description: "Fetch a single casino bet by the hash of its placement transaction.",
		Schema:      json.RawMessage(getBetSchema),
		handler:     deps.getBet,
	})
	r.register(Action{
		Name:        "casino.get-bets",
		Description: "List the most recent casino bets, optionally filtered by bettor address and/or game.",
		Schema:      json.RawMessage(getBetsSchema),
		handler:     deps.getBets,
	})

	return r
}

func (r *Registry) register(a Action) {
	r.actions[a.Name] = a
	r.order = append(r.order, a.Name)
}

// List devolve o metadado das actions na ordem de registro.
func (r *Registry) List() []Action {
	out := make([]Action, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.actions[name])
	}
	return out
}

// Invoke roda a action pelo nome. Toda falha volta como erro descritivo;
// nenhum retry automático em camada nenhuma.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (any, error) {
	a, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", name)
	}

	metrics.ActionsInvoked.WithLabelValues(name).Inc()
	out, err := a.handler(ctx, input)
	if err != nil {
		metrics.ActionsFailed.WithLabelValues(name).Inc()
		r.log.Warn("action failed", zap.String("action", name), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// badPayload padroniza o erro de JSON inválido como falha de validação.
func badPayload(err error) error {
	return &casino.ValidationError{Fields: []casino.FieldError{{Field: "payload", Detail: "invalid json: " + err.Error()}}}
}

// IsValidationError diz se o erro é de validação de input (pra HTTP 400).
func IsValidationError(err error) bool {
	var ve *casino.ValidationError
	return errors.As(err, &ve)
}
