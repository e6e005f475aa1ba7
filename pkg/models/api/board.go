package api

import "time"

// Rate is the exchange rate used for dual-currency display. Fallback marks
// the hardcoded degrade value used when the bank feed was unreachable.
type Rate struct {
	Value     float64   `json:"value"`
	Fallback  bool      `json:"fallback"`
	FetchedAt time.Time `json:"fetched_at"`
}

// PackageCard is one package of the board with display labels derived and
// the resale price, when set, joined in.
type PackageCard struct {
	PID          int    `json:"pid"`
	PriceID      int    `json:"priceid"`
	Name         string `json:"name"`
	DataAmount   string `json:"data_amount"`
	Duration     string `json:"duration"`
	Discount     string `json:"discount,omitempty"`
	DollarPrice  string `json:"dollar_price"`
	TugrikPrice  string `json:"tugrik_price"`
	SellingPrice string `json:"selling_price,omitempty"`
	PriceSet     bool   `json:"price_set"`
	DayPass      bool   `json:"day_pass"`
	Popular      bool   `json:"popular"`
}

// PackageBoard is the package screen for one country.
type PackageBoard struct {
	SkuID           int           `json:"skuid"`
	CountryName     string        `json:"country_name"`
	ImageURL        string        `json:"image_url,omitempty"`
	Networks        []string      `json:"networks,omitempty"`
	Rate            Rate          `json:"rate"`
	Packages        []PackageCard `json:"packages"`
	PricesAvailable bool          `json:"prices_available"`
}
