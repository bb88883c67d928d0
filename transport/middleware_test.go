package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadheryan/tamirse/cmd/config"
	"github.com/muhammadheryan/tamirse/constant"
	usermocks "github.com/muhammadheryan/tamirse/mocks/application/user"
	"github.com/muhammadheryan/tamirse/model"
	utilsContext "github.com/muhammadheryan/tamirse/utils/context"
	"github.com/muhammadheryan/tamirse/utils/errors"
	"github.com/muhammadheryan/tamirse/utils/metrics"
	"github.com/stretchr/testify/mock"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func statusHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "custom error",
			err:        errors.SetCustomError(constant.ErrRequestNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   constant.ErrorTypeCode[constant.ErrRequestNotFound],
		},
		{
			name:       "conflict",
			err:        errors.SetCustomError(constant.ErrEmailExists),
			wantStatus: http.StatusConflict,
			wantCode:   constant.ErrorTypeCode[constant.ErrEmailExists],
		},
		{
			name:       "plain error is hidden",
			err:        stderrors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("content type = %q", ct)
			}
			body := decodeError(t, rec)
			if body.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s", body.Code, tt.wantCode)
			}
			if tt.wantStatus == http.StatusInternalServerError && body.Message != constant.ErrorTypeMessage[constant.ErrInternal] {
				t.Fatalf("internal message leaked: %q", body.Message)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	caller := &model.AuthUser{ID: "9e8d7c6b-5a4f-4e3d-2c1b-0a9f8e7d6c5b", Name: "Ayse", Type: constant.UserTypeCustomer}

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		mock       func(m *usermocks.UserApp)
		wantStatus int
		wantCode   string
	}{
		{
			name: "cookie token",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constant.AccessTokenCookie, Value: "cookie-token"})
			},
			mock: func(m *usermocks.UserApp) {
				m.On("ValidateToken", mock.Anything, "cookie-token").Return(caller, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			mock: func(m *usermocks.UserApp) {
				m.On("ValidateToken", mock.Anything, "header-token").Return(caller, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cookie wins over header",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: constant.AccessTokenCookie, Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			mock: func(m *usermocks.UserApp) {
				m.On("ValidateToken", mock.Anything, "cookie-token").Return(caller, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			prepare:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name: "non bearer scheme",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name: "invalid token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired")
			},
			mock: func(m *usermocks.UserApp) {
				m.On("ValidateToken", mock.Anything, "expired").
					Return(nil, errors.SetCustomError(constant.ErrUnauthorize)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userApp := usermocks.NewUserApp(t)
			if tt.mock != nil {
				tt.mock(userApp)
			}

			var got *model.AuthUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utilsContext.GetAuthUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			AuthMiddleware(userApp)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				if body := decodeError(t, rec); body.Code != tt.wantCode {
					t.Fatalf("code = %s, want %s", body.Code, tt.wantCode)
				}
				return
			}
			if got == nil || got.ID != caller.ID {
				t.Fatalf("auth user not in context: %+v", got)
			}
		})
	}
}

func TestInternalMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}{
		{name: "valid key", apiKey: "s3cret", header: "Bearer s3cret", wantStatus: http.StatusCreated},
		{name: "wrong key", apiKey: "s3cret", header: "Bearer guess", wantStatus: http.StatusForbidden},
		{name: "missing header", apiKey: "s3cret", header: "", wantStatus: http.StatusForbidden},
		{name: "unconfigured key", apiKey: "", header: "Bearer ", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal/v1/notifications", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			InternalMiddleware(tt.apiKey)(statusHandler(http.StatusCreated)).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rule := config.RateLimitRule{Max: 2, Window: time.Hour}

	tests := []struct {
		name           string
		enabled        bool
		skipSuccessful bool
		rule           config.RateLimitRule
		status         int
		want           []int
	}{
		{
			name:    "blocks after max",
			enabled: true,
			rule:    rule,
			status:  http.StatusOK,
			want:    []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:    "disabled",
			enabled: false,
			rule:    rule,
			status:  http.StatusOK,
			want:    []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:    "zero rule disables",
			enabled: true,
			rule:    config.RateLimitRule{},
			status:  http.StatusOK,
			want:    []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:           "successful requests are free",
			enabled:        true,
			skipSuccessful: true,
			rule:           rule,
			status:         http.StatusOK,
			want:           []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name:           "failed requests consume",
			enabled:        true,
			skipSuccessful: true,
			rule:           rule,
			status:         http.StatusUnauthorized,
			want:           []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter("test", tt.rule, config.RateLimitConfig{Enabled: tt.enabled}, tt.skipSuccessful, metrics.New())
			h := rl.Wrap(statusHandler(tt.status))

			for i, want := range tt.want {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
				req.RemoteAddr = "203.0.113.7:5555"
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)

				if rec.Code != want {
					t.Fatalf("request %d: status = %d, want %d", i+1, rec.Code, want)
				}
				if want == http.StatusTooManyRequests {
					if ra := rec.Header().Get("Retry-After"); ra != "1800" {
						t.Fatalf("Retry-After = %q, want 1800", ra)
					}
					if body := decodeError(t, rec); body.Code != constant.ErrorTypeCode[constant.ErrTooManyRequests] {
						t.Fatalf("code = %s", body.Code)
					}
				}
			}
		})
	}
}

func TestRateLimiter_ClientKey(t *testing.T) {
	rule := config.RateLimitRule{Max: 1, Window: time.Hour}

	type call struct {
		addr      string
		forwarded string
		want      int
	}
	tests := []struct {
		name       string
		trustProxy bool
		calls      []call
	}{
		{
			name: "keys on peer address",
			calls: []call{
				{addr: "198.51.100.1:1000", want: http.StatusOK},
				{addr: "198.51.100.1:2000", want: http.StatusTooManyRequests},
				{addr: "198.51.100.2:1000", want: http.StatusOK},
			},
		},
		{
			name: "rotating forwarded header is ignored without trusted proxy",
			calls: []call{
				{addr: "203.0.113.7:1000", forwarded: "192.0.2.1", want: http.StatusOK},
				{addr: "203.0.113.7:1000", forwarded: "192.0.2.2", want: http.StatusTooManyRequests},
				{addr: "203.0.113.7:1000", forwarded: "192.0.2.3", want: http.StatusTooManyRequests},
			},
		},
		{
			name:       "trusted proxy keys on first forwarded hop",
			trustProxy: true,
			calls: []call{
				{addr: "10.0.0.1:1000", forwarded: "192.0.2.9, 10.0.0.1", want: http.StatusOK},
				{addr: "10.0.0.2:1000", forwarded: "192.0.2.9", want: http.StatusTooManyRequests},
				{addr: "10.0.0.1:1000", forwarded: "192.0.2.10", want: http.StatusOK},
				{addr: "10.0.0.1:1000", want: http.StatusOK},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.RateLimitConfig{Enabled: true, TrustProxy: tt.trustProxy}
			h := NewRateLimiter("test", rule, cfg, false, nil).Middleware()(statusHandler(http.StatusOK))

			for i, c := range tt.calls {
				req := httptest.NewRequest(http.MethodGet, "/api/businesses", nil)
				req.RemoteAddr = c.addr
				if c.forwarded != "" {
					req.Header.Set("X-Forwarded-For", c.forwarded)
				}
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				if rec.Code != c.want {
					t.Fatalf("call %d: status = %d, want %d", i+1, rec.Code, c.want)
				}
			}
		})
	}
}

func TestRateLimiter_FailedLoginsWithSpoofedForwarding(t *testing.T) {
	rl := NewRateLimiter("auth", config.RateLimitRule{Max: 5, Window: 15 * time.Minute}, config.RateLimitConfig{Enabled: true}, true, nil)
	h := rl.Wrap(statusHandler(http.StatusUnauthorized))

	throttled := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:4444"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("192.0.2.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			throttled++
		}
	}
	if throttled != 45 {
		t.Fatalf("throttled = %d, want 45", throttled)
	}
}

func TestRateLimiter_ConcurrentFailuresStayWithinMax(t *testing.T) {
	const clients = 6
	rl := NewRateLimiter("auth", config.RateLimitRule{Max: 2, Window: time.Hour}, config.RateLimitConfig{Enabled: true}, true, nil)

	var entered int32
	unblock := make(chan struct{})
	h := rl.Wrap(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&entered, 1)
		<-unblock
		w.WriteHeader(http.StatusUnauthorized)
	})

	results := make(chan int, clients)
	for i := 0; i < clients; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = "203.0.113.7:4444"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			results <- rec.Code
		}()
	}

	timeout := time.After(5 * time.Second)
	denied := 0
	for denied < clients-2 {
		select {
		case code := <-results:
			if code != http.StatusTooManyRequests {
				t.Fatalf("status = %d before handlers finished, want 429", code)
			}
			denied++
		case <-timeout:
			t.Fatalf("only %d requests denied while %d in flight", denied, atomic.LoadInt32(&entered))
		}
	}
	close(unblock)

	for i := 0; i < 2; i++ {
		select {
		case code := <-results:
			if code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", code)
			}
		case <-timeout:
			t.Fatal("in-flight requests did not finish")
		}
	}
	if got := atomic.LoadInt32(&entered); got != 2 {
		t.Fatalf("handlers entered = %d, want 2", got)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:4444"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status after burst = %d, want 429", rec.Code)
	}
}

func TestRateLimiter_SuccessReleasesSlot(t *testing.T) {
	rl := NewRateLimiter("auth", config.RateLimitRule{Max: 1, Window: time.Hour}, config.RateLimitConfig{Enabled: true}, true, nil)
	h := rl.Wrap(statusHandler(http.StatusOK))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:4444"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}
