package domain

// Asset is one tracked cryptocurrency. Identity and display metadata are
// immutable after creation; Balance changes only through ledger deltas and
// Price is supplied externally between operations.
type Asset struct {
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Price    float64 `json:"price"`
	ColorTag string  `json:"colorTag"`
}

// Value returns the reference-currency value of the holding.
func (a Asset) Value() float64 {
	return a.Balance * a.Price
}
