package rabbitmq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/muhammadheryan/tamirse/constant"
	"github.com/muhammadheryan/tamirse/model"
	"github.com/rabbitmq/amqp091-go"
)

func TestConsumer_PostNotification(t *testing.T) {
	event := &model.CreateNotificationRequest{
		UserID:    "9e8d7c6b-5a4f-4e3d-2c1b-0a9f8e7d6c5b",
		Type:      constant.NotificationRequestUpdate,
		Message:   "Your request \"Phone Repair\" has been approved",
		ActionURL: "/requests/3f2e1d0c-9b8a-4765-a432-10fedcba9876",
	}

	tests := []struct {
		name          string
		status        int
		wantErr       bool
		wantPermanent bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "server error is retried", status: http.StatusBadGateway, wantErr: true},
		{name: "rejected payload is dropped", status: http.StatusBadRequest, wantErr: true, wantPermanent: true},
		{name: "bad key is dropped", status: http.StatusForbidden, wantErr: true, wantPermanent: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got model.CreateNotificationRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/internal/v1/notifications" {
					t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
				}
				if auth := r.Header.Get("Authorization"); auth != "Bearer service-key" {
					t.Errorf("Authorization = %q", auth)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q", ct)
				}
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Errorf("decode body: %v", err)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{client: srv.Client(), apiURL: srv.URL, apiKey: "service-key"}
			err := c.PostNotification(context.Background(), event)

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && isPermanent(err) != tt.wantPermanent {
				t.Fatalf("isPermanent = %v, want %v", isPermanent(err), tt.wantPermanent)
			}
			if got != *event {
				t.Fatalf("payload = %+v, want %+v", got, *event)
			}
		})
	}
}

func TestConsumer_PostNotificationUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := &Consumer{client: http.DefaultClient, apiURL: url, apiKey: "service-key"}
	err := c.PostNotification(context.Background(), &model.CreateNotificationRequest{UserID: "u", Type: constant.NotificationSystem, Message: "m"})
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if isPermanent(err) {
		t.Fatal("transport errors must be retried")
	}
}

type ackRecord struct {
	acked   bool
	nacked  bool
	requeue bool
}

// recordingAcker captures how a delivery was settled
type recordingAcker struct {
	mu  sync.Mutex
	got []ackRecord
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.got = append(a.got, ackRecord{acked: true})
	return nil
}

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.got = append(a.got, ackRecord{nacked: true, requeue: requeue})
	return nil
}

func (a *recordingAcker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *recordingAcker) records() []ackRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]ackRecord(nil), a.got...)
}

func notificationBody(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(model.CreateNotificationRequest{
		UserID:  "9e8d7c6b-5a4f-4e3d-2c1b-0a9f8e7d6c5b",
		Type:    constant.NotificationPayment,
		Message: "Payment of 150.50 received",
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestConsumer_Handle(t *testing.T) {
	tests := []struct {
		name      string
		body      []byte
		status    int
		failures  int
		want      ackRecord
		wantFails int
		minWait   time.Duration
	}{
		{name: "delivered", status: http.StatusCreated, failures: 3, want: ackRecord{acked: true}},
		{name: "malformed body is dropped", body: []byte("{"), want: ackRecord{acked: true}},
		{name: "rejected event is dropped", status: http.StatusBadRequest, failures: 2, want: ackRecord{nacked: true}},
		{
			name:      "server error requeues after backoff",
			status:    http.StatusServiceUnavailable,
			want:      ackRecord{nacked: true, requeue: true},
			wantFails: 1,
			minWait:   20 * time.Millisecond,
		},
		{
			name:      "repeated server errors back off longer",
			status:    http.StatusInternalServerError,
			failures:  2,
			want:      ackRecord{nacked: true, requeue: true},
			wantFails: 3,
			minWait:   80 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := &Consumer{
				client:    srv.Client(),
				apiURL:    srv.URL,
				apiKey:    "service-key",
				failures:  tt.failures,
				baseDelay: 20 * time.Millisecond,
				maxDelay:  time.Second,
			}
			body := tt.body
			if body == nil {
				body = notificationBody(t)
			}
			acker := &recordingAcker{}

			start := time.Now()
			c.handle(context.Background(), amqp091.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: body})
			elapsed := time.Since(start)

			got := acker.records()
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("settled = %+v, want %+v", got, tt.want)
			}
			if c.failures != tt.wantFails {
				t.Fatalf("failures = %d, want %d", c.failures, tt.wantFails)
			}
			if elapsed < tt.minWait {
				t.Fatalf("requeued after %v, want at least %v", elapsed, tt.minWait)
			}
		})
	}
}

func TestConsumer_HandleBackoffStopsOnShutdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Consumer{client: srv.Client(), apiURL: srv.URL, apiKey: "k", baseDelay: time.Hour, maxDelay: time.Hour}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	acker := &recordingAcker{}
	start := time.Now()
	c.handle(ctx, amqp091.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: notificationBody(t)})
	if time.Since(start) > 5*time.Second {
		t.Fatal("backoff ignored context cancellation")
	}
	if got := acker.records(); len(got) != 1 || !got[0].requeue {
		t.Fatalf("settled = %+v, want requeue", got)
	}
}

func TestConsumer_Backoff(t *testing.T) {
	c := &Consumer{baseDelay: time.Second, maxDelay: 30 * time.Second}

	tests := []struct {
		failures int
		want     time.Duration
	}{
		{failures: 1, want: time.Second},
		{failures: 2, want: 2 * time.Second},
		{failures: 4, want: 8 * time.Second},
		{failures: 6, want: 30 * time.Second},
		{failures: 50, want: 30 * time.Second},
	}

	for _, tt := range tests {
		c.failures = tt.failures
		if got := c.backoff(); got != tt.want {
			t.Fatalf("backoff(%d) = %v, want %v", tt.failures, got, tt.want)
		}
	}
}

func TestConsumer_ConsumeEndsWhenDeliveriesClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := &Consumer{client: srv.Client(), apiURL: srv.URL, apiKey: "k", baseDelay: time.Millisecond, maxDelay: time.Millisecond}
	msgs := make(chan amqp091.Delivery, 1)
	acker := &recordingAcker{}
	msgs <- amqp091.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: notificationBody(t)}
	close(msgs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.consume(ctx, msgs)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consume did not return after the delivery channel closed")
	}
	if ctx.Err() != nil {
		t.Fatal("context should still be live; the loop ended on its own")
	}
	if got := acker.records(); len(got) != 1 || !got[0].acked {
		t.Fatalf("settled = %+v, want one ack", got)
	}
}
