package enums

// StockEntryKind describes the direction of a stock movement.
type StockEntryKind string

const (
	StockEntryKindIn  StockEntryKind = "IN"
	StockEntryKindOut StockEntryKind = "OUT"
)

func (k StockEntryKind) IsValid() bool {
	switch k {
	case StockEntryKindIn, StockEntryKindOut:
		return true
	}
	return false
}

func (k StockEntryKind) String() string {
	return string(k)
}
