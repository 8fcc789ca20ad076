package stock

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stocklight/stocklight-backend/pkg/db/models"
	"github.com/stocklight/stocklight-backend/pkg/enums"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
)

// Repository manages persistence for the append-only stock ledger.
type Repository struct {
	db *gorm.DB
}

// NewRepository returns a ledger repository bound to the provided database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Append writes one immutable ledger entry. Item existence is the caller's
// concern; the adjustment transaction has already read the item row.
func (r *Repository) Append(ctx context.Context, entry *models.StockEntry) error {
	if entry.Quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "ledger quantity must be positive")
	}
	if !entry.Kind.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "ledger kind must be IN or OUT")
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// RecentEntry is one ledger row joined with the item's current name. ItemName
// is nil when the item has since been removed.
type RecentEntry struct {
	ID        int64
	ItemID    int64
	Kind      enums.StockEntryKind
	Quantity  int
	Note      *string
	CreatedAt time.Time
	ItemName  *string
}

// Recent returns at most limit entries, newest first by transaction timestamp
// with ties broken by insertion order (latest insert wins).
func (r *Repository) Recent(ctx context.Context, limit int) ([]RecentEntry, error) {
	if limit <= 0 {
		return []RecentEntry{}, nil
	}
	var rows []RecentEntry
	if err := r.db.WithContext(ctx).
		Model(&models.StockEntry{}).
		Select("stock_entries.id, stock_entries.item_id, stock_entries.kind, stock_entries.quantity, stock_entries.note, stock_entries.created_at, inventory_items.name AS item_name").
		Joins("LEFT JOIN inventory_items ON inventory_items.id = stock_entries.item_id").
		Order("stock_entries.created_at DESC, stock_entries.id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByItem returns the number of entries recorded for an item.
func (r *Repository) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StockEntry{}).
		Where("item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
