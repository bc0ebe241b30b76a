// Package reward publishes completion reward deltas to the external
// gamification system over AMQP. The engine only emits the signal; point
// accounting happens on the consumer side.
package reward

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "rewards"
	routingKey   = "reward.delta"
)

type Delta struct {
	HabitID uuid.UUID `json:"habit_id"`
	Delta   int       `json:"delta"`
	At      time.Time `json:"at"`
}

type AMQPSink struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewAMQPSink(url string) (*AMQPSink, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, errors.New("connecting to broker error: " + err.Error())
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.New("opening channel error: " + err.Error())
	}
	err = ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, errors.New("declaring exchange error: " + err.Error())
	}
	return &AMQPSink{
		conn:    conn,
		channel: ch,
	}, nil
}

func (s *AMQPSink) Award(ctx context.Context, habitID uuid.UUID, delta int) error {
	body, err := sonic.Marshal(Delta{
		HabitID: habitID,
		Delta:   delta,
		At:      time.Now().UTC(),
	})
	if err != nil {
		return errors.New("marshalling reward delta error: " + err.Error())
	}
	err = s.channel.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	})
	if err != nil {
		return errors.New("publishing reward delta error: " + err.Error())
	}
	return nil
}

func (s *AMQPSink) Close() error {
	if s.channel != nil {
		_ = s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
