package controllers

import (
	"net/http"

	"github.com/stocklight/stocklight-backend/api/responses"
	"github.com/stocklight/stocklight-backend/internal/dashboard"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
	"github.com/stocklight/stocklight-backend/pkg/logger"
)

// DashboardSummary returns the point-in-time inventory snapshot.
func DashboardSummary(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}
