package models

import (
	"time"

	"github.com/stocklight/stocklight-backend/pkg/enums"
)

// StockEntry records one immutable stock movement. The item reference is
// advisory rather than an enforced foreign key: drained items may be deleted
// while their movement history remains readable.
type StockEntry struct {
	ID        int64                `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID    int64                `gorm:"column:item_id;not null;index:idx_stock_entries_item_id"`
	Kind      enums.StockEntryKind `gorm:"column:kind;size:10;not null"`
	Quantity  int                  `gorm:"column:quantity;not null"`
	Note      *string              `gorm:"column:note;size:200"`
	CreatedAt time.Time            `gorm:"column:created_at;not null;index:idx_stock_entries_created_at"`
}
