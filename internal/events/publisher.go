package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/commercerack/commercerack-go/internal/cart"
	"github.com/commercerack/commercerack-go/internal/contracts"
)

// CartEventsPublisher emits enveloped cart events to the topic exchange.
// Sequences are taken per cart id so consumers can order events within
// one cart.
type CartEventsPublisher struct {
	ch  *amqp.Channel
	seq SequenceRepository
}

func NewCartEventsPublisher(conn *amqp.Connection, seq SequenceRepository) (*CartEventsPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the exchange so publish never fails due to missing infra.
	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &CartEventsPublisher{ch: ch, seq: seq}, nil
}

func (p *CartEventsPublisher) Close() error {
	return p.ch.Close()
}

func (p *CartEventsPublisher) PublishCartCheckedOut(ctx context.Context, c *cart.Cart, orderID string) error {
	seq, err := p.seq.NextSequence(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	env := contracts.BuildCartCheckedOutEvent(c, orderID, contracts.EnvelopeOptions{
		PartitionKey: c.ID,
		Sequence:     seq,
	})

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", contracts.CartCheckedOutEventName, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		CartCheckedOutRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    env.EventID,
			Timestamp:    env.OccurredAt,
			Body:         body,
		},
	)
}
