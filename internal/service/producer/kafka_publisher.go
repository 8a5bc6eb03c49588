package producer

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	skafka "github.com/gmeireles/casino-actions-poc/internal/shared/kafka"
	"github.com/gmeireles/casino-actions-poc/pkg/contracts/events"
)

// KafkaPublisher emite os eventos de aposta. Um writer por tópico.
type KafkaPublisher struct {
	PlacedWriter   *kafka.Writer
	ResolvedWriter *kafka.Writer
}

func NewKafkaPublisher(placed, resolved *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{PlacedWriter: placed, ResolvedWriter: resolved}
}

func (p *KafkaPublisher) PublishBetPlaced(ctx context.Context, e events.CasinoBetPlaced) error {
	e.EventID = uuid.NewString()
	b, _ := json.Marshal(e)
	return skafka.WriteJSON(ctx, p.PlacedWriter, e.BetTxnHash, b)
}

func (p *KafkaPublisher) PublishBetResolved(ctx context.Context, e events.CasinoBetResolved) error {
	e.EventID = uuid.NewString()
	b, _ := json.Marshal(e)
	return skafka.WriteJSON(ctx, p.ResolvedWriter, e.BetTxnHash, b)
}
