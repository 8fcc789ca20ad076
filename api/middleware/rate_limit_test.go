package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubLimiterStore struct {
	counts map[string]int64
	err    error
}

func (s *stubLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[key]++
	return s.counts[key], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWriteRateLimitBlocksAfterLimit(t *testing.T) {
	store := &stubLimiterStore{}
	policy := NewWriteRateLimitPolicy("stock", time.Minute, 2)
	handler := WriteRateLimit(policy, store, nil)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stock/in", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stock/in", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestWriteRateLimitSeparatesClients(t *testing.T) {
	store := &stubLimiterStore{}
	policy := NewWriteRateLimitPolicy("stock", time.Minute, 1)
	handler := WriteRateLimit(policy, store, nil)(okHandler())

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/stock/in", nil)
		req.Header.Set("X-Forwarded-For", ip)
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("ip %s: expected 200, got %d", ip, rec.Code)
		}
	}
}

func TestWriteRateLimitFailsOpen(t *testing.T) {
	store := &stubLimiterStore{err: errors.New("redis down")}
	policy := NewWriteRateLimitPolicy("stock", time.Minute, 1)
	handler := WriteRateLimit(policy, store, nil)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stock/in", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected fail-open 200, got %d", rec.Code)
	}
}

func TestWriteRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	handler := WriteRateLimit(WriteRateLimitPolicy{}, &stubLimiterStore{}, nil)(okHandler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stock/in", nil)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
