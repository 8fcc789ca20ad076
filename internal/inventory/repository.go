package inventory

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stocklight/stocklight-backend/pkg/db/models"
)

// Repository provides persistence for inventory items.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
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

// List returns all items ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a single item. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item row.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteIfEmpty removes an item only while its quantity is still zero. The
// guard closes the window between a caller's read and the delete: an item
// restocked in between keeps its row. Returns the number of rows removed.
func (r *Repository) DeleteIfEmpty(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND quantity = 0", id).
		Delete(&models.InventoryItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Count returns the number of tracked items.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountLowStock counts items at or below their low-stock threshold. The
// comparison must match models.InventoryItem.IsLowStock.
func (r *Repository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("quantity <= low_stock_threshold").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ApplyQuantityDelta shifts an item's quantity inside the caller's transaction.
// The WHERE guard re-checks the resulting quantity against zero so concurrent
// writers cannot drive it negative at read-committed isolation. Returns the
// number of rows updated; zero means the item is missing or the guard failed.
func (r *Repository) ApplyQuantityDelta(ctx context.Context, id int64, delta int, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Updates(map[string]any{
			"quantity":     gorm.Expr("quantity + ?", delta),
			"last_updated": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
