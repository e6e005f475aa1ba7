package domain

import "time"

// SellingPrice is one operator-set resale price. Price is an integer amount
// of tugriks kept string-typed, exactly as the store persists it.
type SellingPrice struct {
	RowID       string
	PackageID   string
	Price       string
	SkuID       string
	CountryName string
	Duration    string
	DataGB      string
	PackageName string
}

// PriceDraft is the operator's input for setting a resale price on one
// package variant. The denormalized descriptive fields of the stored record
// are derived, not entered.
type PriceDraft struct {
	SkuID       int
	CountryName string
	PriceID     int
	Price       int
}

// ExchangeRate is the USD to MNT conversion factor used for dual-currency
// display. Fallback marks the hardcoded degrade value.
type ExchangeRate struct {
	Rate      float64
	Fallback  bool
	FetchedAt time.Time
}
