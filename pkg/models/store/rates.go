package store

// CurrencyRate is one entry of the bank's rate feed. MidRate may be absent
// for currencies the bank quotes one-sided.
type CurrencyRate struct {
	Currency string   `json:"currency"`
	Name     string   `json:"name,omitempty"`
	BuyRate  *float64 `json:"buyRate,omitempty"`
	SellRate *float64 `json:"sellRate,omitempty"`
	MidRate  *float64 `json:"midRate,omitempty"`
}
