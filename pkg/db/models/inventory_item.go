package models

import (
	"time"
)

// InventoryItem is a tracked SKU with a single mutable quantity counter.
// Quantity is only ever changed by the stock adjustment transaction.
type InventoryItem struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name              string    `gorm:"column:name;size:100;not null;uniqueIndex:idx_inventory_items_name"`
	Description       *string   `gorm:"column:description;size:255"`
	Quantity          int       `gorm:"column:quantity;not null;default:0"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold;not null;default:0"`
	LastUpdated       time.Time `gorm:"column:last_updated;not null"`
}

// IsLowStock reports whether the item sits at or below its threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
