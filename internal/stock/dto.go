package stock

import (
	"time"

	"github.com/stocklight/stocklight-backend/pkg/enums"
)

// UnknownItemName is reported for ledger entries whose item was removed
// after its stock drained to zero.
const UnknownItemName = "Unknown"

// AdjustInput carries one stock adjustment request.
type AdjustInput struct {
	ItemID   int64   `json:"item_id" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=200"`
}

// AdjustmentDTO is the API shape of a committed adjustment.
type AdjustmentDTO struct {
	ItemID      int64                `json:"item_id"`
	Kind        enums.StockEntryKind `json:"kind"`
	Quantity    int                  `json:"quantity"`
	NewQuantity int                  `json:"new_quantity"`
	RecordedAt  time.Time            `json:"recorded_at"`
}

// EntryDTO is the API shape of one ledger entry.
type EntryDTO struct {
	ID        int64                `json:"id"`
	ItemID    int64                `json:"item_id"`
	ItemName  string               `json:"item_name"`
	Kind      enums.StockEntryKind `json:"kind"`
	Quantity  int                  `json:"quantity"`
	Note      *string              `json:"note,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// FromRecentEntry maps a joined ledger row onto its API shape, substituting
// the unknown-item placeholder when the item no longer exists.
func FromRecentEntry(row RecentEntry) EntryDTO {
	name := UnknownItemName
	if row.ItemName != nil && *row.ItemName != "" {
		name = *row.ItemName
	}
	return EntryDTO{
		ID:        row.ID,
		ItemID:    row.ItemID,
		ItemName:  name,
		Kind:      row.Kind,
		Quantity:  row.Quantity,
		Note:      row.Note,
		CreatedAt: row.CreatedAt,
	}
}
