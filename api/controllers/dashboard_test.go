package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stocklight/stocklight-backend/internal/dashboard"
	"github.com/stocklight/stocklight-backend/internal/stock"
)

type stubDashboardService struct {
	summary *dashboard.SummaryDTO
	err     error
}

func (s *stubDashboardService) Summary(ctx context.Context) (*dashboard.SummaryDTO, error) {
	return s.summary, s.err
}

func TestDashboardSummary(t *testing.T) {
	logg := testLogger()

	t.Run("success", func(t *testing.T) {
		stub := &stubDashboardService{summary: &dashboard.SummaryDTO{
			TotalItems:         2,
			LowStockCount:      1,
			RecentTransactions: []stock.EntryDTO{},
		}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
		DashboardSummary(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var body struct {
			Data dashboard.SummaryDTO `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Data.TotalItems != 2 || body.Data.LowStockCount != 1 {
			t.Fatalf("unexpected payload %+v", body.Data)
		}
	})

	t.Run("dependency failure", func(t *testing.T) {
		stub := &stubDashboardService{err: errors.New("db down")}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
		DashboardSummary(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
