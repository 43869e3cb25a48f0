// Package service holds outbound collaborators that sit between handlers
// and external systems.  The Publisher pushes catalog audit events onto the
// message broker; failures are logged and returned so callers can ignore
// them without interrupting the request flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"movies-api/internal/queue"
)

// Publisher publishes CatalogEvents to the catalog.events queue.  A zero
// URL falls back to the environment/default resolution in queue.BrokerURL.
type Publisher struct {
	url string
	log *zap.Logger
}

// NewPublisher constructs a Publisher.
func NewPublisher(log *zap.Logger) *Publisher {
	return &Publisher{url: queue.BrokerURL(), log: log}
}

// Publish sends one event to the catalog.events queue.  The connection is
// short-lived per call, which keeps the publisher robust against broker
// restarts at the cost of throughput that an audit stream does not need.
// Messages are marked persistent.  Errors never panic; they are logged and
// returned for callers that want to ignore them.
func (p *Publisher) Publish(ctx context.Context, event queue.CatalogEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("rabbitmq: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("rabbitmq: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		"catalog.events", // name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // args
	); err != nil {
		p.log.Warn("rabbitmq: queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("rabbitmq: marshal event failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",               // default exchange
		"catalog.events", // routing key = queue name
		false,            // mandatory
		false,            // immediate
		pub,
	); err != nil {
		p.log.Warn("rabbitmq: publish failed", zap.Error(err))
		return err
	}
	return nil
}
