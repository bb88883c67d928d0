package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/tamirse/model"
	"github.com/muhammadheryan/tamirse/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	retryBaseDelay = time.Second
	retryMaxDelay  = 30 * time.Second
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	client  *http.Client
	apiURL  string
	apiKey  string

	// failures counts consecutive retryable delivery errors; the delivery
	// loop is the only writer
	failures  int
	baseDelay time.Duration
	maxDelay  time.Duration
}

func NewConsumer(url, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:    apiURL,
		apiKey:    apiKey,
		baseDelay: retryBaseDelay,
		maxDelay:  retryMaxDelay,
	}, nil
}

// Start begins consuming. The returned channel is closed once the delivery
// loop ends, either because ctx is done or because the broker closed the
// channel; callers tell the two apart with ctx.Err().
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		NotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.consume(ctx, msgs)
	}()
	return done, nil
}

func (c *Consumer) consume(ctx context.Context, msgs <-chan amqp091.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Warn("[Consumer] delivery channel closed")
				return
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.CreateNotificationRequest
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("[Consumer] err unmarshal notification", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.PostNotification(ctx, &event); err != nil {
		logger.Error("[Consumer] err PostNotification", zap.String("user_id", event.UserID), zap.String("error", err.Error()))
		if isPermanent(err) {
			c.failures = 0
			_ = msg.Nack(false, false)
			return
		}
		// requeue only when the API may recover, after backing off
		c.failures++
		delay := c.backoff()
		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
		_ = msg.Nack(false, true)
		return
	}

	c.failures = 0
	_ = msg.Ack(false)
	logger.Info("notification delivered", zap.String("user_id", event.UserID), zap.String("type", string(event.Type)))
}

// backoff doubles the delay per consecutive failure, capped at maxDelay
func (c *Consumer) backoff() time.Duration {
	delay := c.baseDelay
	for i := 1; i < c.failures && delay < c.maxDelay; i++ {
		delay *= 2
	}
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	return delay
}

type permanentError struct{ status int }

func (e permanentError) Error() string { return fmt.Sprintf("API rejected notification with status %d", e.status) }

func isPermanent(err error) bool {
	_, ok := err.(permanentError)
	return ok
}

// PostNotification calls the internal notification API with the service key
func (c *Consumer) PostNotification(ctx context.Context, event *model.CreateNotificationRequest) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/internal/v1/notifications", c.apiURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "notification-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	case resp.StatusCode >= 400:
		return permanentError{status: resp.StatusCode}
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
