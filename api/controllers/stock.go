package controllers

import (
	"net/http"

	"github.com/stocklight/stocklight-backend/api/responses"
	"github.com/stocklight/stocklight-backend/api/validators"
	"github.com/stocklight/stocklight-backend/internal/stock"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
	"github.com/stocklight/stocklight-backend/pkg/logger"
)

const (
	defaultLedgerLimit = 20
	maxLedgerLimit     = 100
)

type adjustStockRequest struct {
	ItemID   int64   `json:"item_id" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=200"`
}

func (req adjustStockRequest) toInput() stock.AdjustInput {
	return stock.AdjustInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Note:     req.Note,
	}
}

// StockIn records a stock receipt.
func StockIn(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return adjustHandler(svc, logg, func(r *http.Request, input stock.AdjustInput) (*stock.AdjustmentDTO, error) {
		return svc.AdjustIn(r.Context(), input)
	})
}

// StockOut records a stock withdrawal.
func StockOut(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return adjustHandler(svc, logg, func(r *http.Request, input stock.AdjustInput) (*stock.AdjustmentDTO, error) {
		return svc.AdjustOut(r.Context(), input)
	})
}

func adjustHandler(svc stock.Service, logg *logger.Logger, apply func(*http.Request, stock.AdjustInput) (*stock.AdjustmentDTO, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		var payload adjustStockRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out, err := apply(r, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, out)
	}
}

// StockLedger lists recent ledger entries, newest first.
func StockLedger(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultLedgerLimit, 0, maxLedgerLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := svc.Recent(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, entries)
	}
}
