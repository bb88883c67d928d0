package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/tamirse/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	NotificationExchange   = "notification_exchange"
	NotificationQueue      = "notification_queue"
	NotificationRoutingKey = "notification.created"
)

// NotificationPublisher hands notification events to the broker
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, msg *model.CreateNotificationRequest) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishNotification(ctx context.Context, msg *model.CreateNotificationRequest) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		NotificationExchange,   // exchange
		NotificationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// dial opens a channel and declares the notification topology
func dial(url string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err == nil {
		_, err = channel.QueueDeclare(
			NotificationQueue, // name
			true,              // durable
			false,             // auto-delete
			false,             // exclusive
			false,             // no-wait
			nil,               // arguments
		)
	}
	if err == nil {
		err = channel.QueueBind(NotificationQueue, NotificationRoutingKey, NotificationExchange, false, nil)
	}
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}
