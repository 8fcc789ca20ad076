package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/stocklight/stocklight-backend/internal/inventory"
	"github.com/stocklight/stocklight-backend/pkg/db/models"
	"github.com/stocklight/stocklight-backend/pkg/enums"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
	"github.com/stocklight/stocklight-backend/pkg/metrics"
)

const maxNoteLength = 200

// txRunner runs a function inside a database transaction.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service applies stock adjustments and reads the ledger.
type Service interface {
	AdjustIn(ctx context.Context, input AdjustInput) (*AdjustmentDTO, error)
	AdjustOut(ctx context.Context, input AdjustInput) (*AdjustmentDTO, error)
	Recent(ctx context.Context, limit int) ([]EntryDTO, error)
}

type service struct {
	tx      txRunner
	items   *inventory.Repository
	entries *Repository
	metrics *metrics.StockMetrics
	now     func() time.Time
}

// NewService wires the adjustment engine. A nil clock defaults to UTC wall
// time; a nil metrics handle disables instrumentation.
func NewService(tx txRunner, items *inventory.Repository, entries *Repository, m *metrics.StockMetrics, now func() time.Time) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if items == nil || entries == nil {
		return nil, fmt.Errorf("item and ledger repositories required")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if m == nil {
		m = metrics.NewStockMetrics(nil)
	}
	return &service{tx: tx, items: items, entries: entries, metrics: m, now: now}, nil
}

func (s *service) AdjustIn(ctx context.Context, input AdjustInput) (*AdjustmentDTO, error) {
	return s.adjust(ctx, enums.StockEntryKindIn, input)
}

func (s *service) AdjustOut(ctx context.Context, input AdjustInput) (*AdjustmentDTO, error) {
	return s.adjust(ctx, enums.StockEntryKindOut, input)
}

func (s *service) adjust(ctx context.Context, kind enums.StockEntryKind, input AdjustInput) (*AdjustmentDTO, error) {
	if input.ItemID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item_id must be positive")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if input.Note != nil {
		trimmed := strings.TrimSpace(*input.Note)
		if len(trimmed) > maxNoteLength {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "note must be at most 200 characters")
		}
		if trimmed == "" {
			input.Note = nil
		} else {
			input.Note = &trimmed
		}
	}

	recordedAt := s.now()
	delta := input.Quantity
	if kind == enums.StockEntryKindOut {
		delta = -input.Quantity
	}

	var newQuantity int
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		items := s.items.WithTx(tx)
		entries := s.entries.WithTx(tx)

		item, err := items.FindByID(ctx, input.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading inventory item")
		}
		if kind == enums.StockEntryKindOut && item.Quantity < input.Quantity {
			return insufficientStock(item.Quantity, input.Quantity)
		}

		rows, err := items.ApplyQuantityDelta(ctx, item.ID, delta, recordedAt)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating item quantity")
		}
		if rows == 0 {
			// Another writer drained the stock between our read and the
			// guarded update. Re-read so the rejection reports live numbers.
			fresh, err := items.FindByID(ctx, item.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "re-reading inventory item")
			}
			return insufficientStock(fresh.Quantity, input.Quantity)
		}

		updated, err := items.FindByID(ctx, item.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading updated quantity")
		}
		newQuantity = updated.Quantity

		entry := &models.StockEntry{
			ItemID:    item.ID,
			Kind:      kind,
			Quantity:  input.Quantity,
			Note:      input.Note,
			CreatedAt: recordedAt,
		}
		if err := entries.Append(ctx, entry); err != nil {
			var coded *pkgerrors.Error
			if errors.As(err, &coded) {
				return err
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "recording ledger entry")
		}
		return nil
	})
	if err != nil {
		var coded *pkgerrors.Error
		if !errors.As(err, &coded) {
			err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "committing stock adjustment")
		} else if coded.Code() == pkgerrors.CodeInsufficientStock {
			s.metrics.IncRejected(kind.String())
		}
		return nil, err
	}

	s.metrics.IncCommitted(kind.String(), input.Quantity)
	return &AdjustmentDTO{
		ItemID:      input.ItemID,
		Kind:        kind,
		Quantity:    input.Quantity,
		NewQuantity: newQuantity,
		RecordedAt:  recordedAt,
	}, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]EntryDTO, error) {
	rows, err := s.entries.Recent(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing ledger entries")
	}
	out := make([]EntryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromRecentEntry(row))
	}
	return out, nil
}

func insufficientStock(current, requested int) error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock for withdrawal").
		WithDetails(map[string]any{
			"current":   current,
			"requested": requested,
		})
}
