// Package event notifies collaborator services (badge evaluation, ranking)
// when a session reaches a terminal state. Publication is best-effort: a
// broker outage never affects the training flow.
package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Routing keys for session lifecycle events.
const (
	SessionCompleted = "session.completed"
	SessionAbandoned = "session.abandoned"
)

// SessionEvent is the payload published when a session terminates.
type SessionEvent struct {
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	Status        string    `json:"status"`
	QuestionCount int       `json:"question_count"`
	AnsweredCount int       `json:"answered_count"`
	CorrectCount  int       `json:"correct_count"`
	Score         float64   `json:"score"`
	DurationSecs  int       `json:"duration_secs"`
	FinishedAt    time.Time `json:"finished_at"`
}

// Publisher delivers session events to interested collaborators.
type Publisher interface {
	Publish(routingKey string, evt SessionEvent) error
	Close() error
}

// AMQPPublisher publishes events on a durable topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewAMQPPublisher connects to the broker and declares the exchange.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(routingKey string, evt SessionEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = p.channel.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(routingKey string, evt SessionEvent) error { return nil }
func (NopPublisher) Close() error                                      { return nil }
