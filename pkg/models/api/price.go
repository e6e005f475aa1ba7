package api

// SellingPrice is one persisted resale-price record as served to the
// dashboard.
type SellingPrice struct {
	RowID       string `json:"rowid"`
	PackageID   string `json:"packageid"`
	Price       string `json:"price"`
	SkuID       string `json:"skuid"`
	CountryName string `json:"country_name"`
	Duration    string `json:"duration"`
	DataGB      string `json:"datagb"`
	PackageName string `json:"package_name"`
}

// PricesResponse lists the resale prices of one sku. Available false means
// the price store could not be reached and the list is degraded, not empty
// by choice.
type PricesResponse struct {
	Prices    []SellingPrice `json:"prices"`
	Available bool           `json:"available"`
}

// SetPriceRequest is the operator's price-setting input. CountryName is
// optional; the board's display name wins when the package catalog answers.
type SetPriceRequest struct {
	PriceID     int    `json:"priceid"`
	Price       int    `json:"price"`
	CountryName string `json:"country_name,omitempty"`
}

// Status is the generic mutation acknowledgement.
type Status struct {
	Message string `json:"message"`
}

// Error is the error body for failed requests. Retryable marks upstream
// fetch failures worth retrying from the dashboard.
type Error struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}
