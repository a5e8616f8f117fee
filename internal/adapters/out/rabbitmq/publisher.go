// Package rabbitmq publishes stored notifications to a durable fanout exchange so that
// external subscribers (push, e-mail, SMS gateways) can deliver them.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"fueltrack/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	DefaultExchange = "notifications"
	publishTimeout  = 5 * time.Second
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Message is the JSON body of a published notification.
type Message struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	RelatedOrderID *int64    `json:"related_order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Publisher implements ports.NotificationPublisher.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	logger   *zap.Logger
}

// Dial connects to url and declares exchange as a durable fanout exchange.
func Dial(url, exchange string, logger *zap.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	p := NewPublisher(ch, exchange, logger)
	p.conn = conn
	p.logger.Info("connected to rabbitmq", zap.String("exchange", exchange))
	return p, nil
}

// NewPublisher wraps an already opened channel.
func NewPublisher(ch Channel, exchange string, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{ch: ch, exchange: exchange, logger: logger}
}

// Publish sends every notification as its own persistent message. It keeps going after
// a failed message and reports all failures together.
func (p *Publisher) Publish(ctx context.Context, notifications ...*notification.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var failures []error
	for _, n := range notifications {
		if n == nil {
			continue
		}
		if err := p.publishOne(ctx, n); err != nil {
			failures = append(failures, fmt.Errorf("notification %s: %w", n.ID(), err))
		}
	}
	return errors.Join(failures...)
}

func (p *Publisher) publishOne(ctx context.Context, n *notification.Notification) error {
	body, err := json.Marshal(toMessage(n))
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(ctx,
		p.exchange, // exchange
		"",         // routing key, ignored by fanout
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    strconv.FormatInt(n.ID().Int64(), 10),
			Type:         n.Type().String(),
			Timestamp:    n.CreatedAt(),
			Body:         body,
		})
}

func toMessage(n *notification.Notification) Message {
	msg := Message{
		ID:        n.ID().Int64(),
		UserID:    n.UserID().Int64(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type().String(),
		CreatedAt: n.CreatedAt(),
	}
	if related := n.RelatedOrderID(); related != nil {
		id := related.Int64()
		msg.RelatedOrderID = &id
	}
	return msg
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var closeErrs []error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("close rabbitmq channel: %w", err))
		}
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("close rabbitmq connection: %w", err))
		}
	}
	return errors.Join(closeErrs...)
}
