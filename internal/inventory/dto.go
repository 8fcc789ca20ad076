package inventory

import (
	"time"

	"github.com/stocklight/stocklight-backend/pkg/db/models"
)

// ItemDTO exposes item data in API responses, including the derived
// low-stock flag.
type ItemDTO struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	IsLowStock        bool      `json:"is_low_stock"`
	LastUpdated       time.Time `json:"last_updated"`
}

// CreateItemInput holds the validated payload to register a new item.
// Quantity is intentionally absent: new items always start at zero.
type CreateItemInput struct {
	Name              string
	Description       *string
	LowStockThreshold int
}

// FromModel maps the persisted item into a DTO.
func FromModel(m *models.InventoryItem) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		IsLowStock:        m.IsLowStock(),
		LastUpdated:       m.LastUpdated,
	}
}
