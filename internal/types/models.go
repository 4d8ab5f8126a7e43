package types

// RawTransaction is one point-of-sale record as delivered by a dataset
// export or the transactions API. TotalPrice stays untyped because sources
// disagree: spreadsheet cells arrive as strings, the API sends numbers.
type RawTransaction struct {
	Brand      string `json:"brand"`
	Product    string `json:"product,omitempty"`
	Category   string `json:"category,omitempty"`
	TotalPrice any    `json:"total_price,omitempty"`
	BoughtWith string `json:"bought_with_other_brands,omitempty"`
}

// Transaction is the normalized engine input.
type Transaction struct {
	Brand      string  `json:"brand"`
	Product    string  `json:"product,omitempty"`
	Category   string  `json:"category,omitempty"`
	TotalPrice float64 `json:"total_price"`
	BoughtWith string  `json:"bought_with_other_brands,omitempty"`
}

// PrimaryItem is the anchor item of the transaction: the brand when
// recorded, otherwise the product name.
func (t Transaction) PrimaryItem() string {
	if t.Brand != "" {
		return t.Brand
	}
	return t.Product
}

// IsBundle reports whether the record carries a co-purchased item.
func (t Transaction) IsBundle() bool {
	return t.BoughtWith != ""
}
