package dashboard

import (
	"context"
	"fmt"

	"github.com/stocklight/stocklight-backend/internal/inventory"
	"github.com/stocklight/stocklight-backend/internal/stock"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
)

// recentTransactionCount caps the ledger slice shown on the dashboard.
const recentTransactionCount = 5

// SummaryDTO is the dashboard snapshot returned to the API.
type SummaryDTO struct {
	TotalItems         int64            `json:"total_items"`
	LowStockCount      int64            `json:"low_stock_count"`
	RecentTransactions []stock.EntryDTO `json:"recent_transactions"`
}

// Service assembles the dashboard summary.
type Service interface {
	Summary(ctx context.Context) (*SummaryDTO, error)
}

type service struct {
	items   *inventory.Repository
	entries *stock.Repository
}

// NewService constructs a dashboard service over the item and ledger
// repositories.
func NewService(items *inventory.Repository, entries *stock.Repository) (Service, error) {
	if items == nil || entries == nil {
		return nil, fmt.Errorf("item and ledger repositories required")
	}
	return &service{items: items, entries: entries}, nil
}

// Summary reads three point-in-time counts. The reads are not wrapped in a
// transaction; a dashboard snapshot tolerates skew between them.
func (s *service) Summary(ctx context.Context) (*SummaryDTO, error) {
	total, err := s.items.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting inventory items")
	}
	lowStock, err := s.items.CountLowStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting low-stock items")
	}
	rows, err := s.entries.Recent(ctx, recentTransactionCount)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing recent ledger entries")
	}

	recent := make([]stock.EntryDTO, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, stock.FromRecentEntry(row))
	}
	return &SummaryDTO{
		TotalItems:         total,
		LowStockCount:      lowStock,
		RecentTransactions: recent,
	}, nil
}
