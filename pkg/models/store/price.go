package store

// SellingPrice is one persisted resale-price record. PackageID holds the
// package's priceid rendered as a string; RowID is assigned by the store and
// is required for update and delete.
type SellingPrice struct {
	RowID       string `json:"rowid"`
	SkuID       string `json:"skuid"`
	CountryName string `json:"countryname"`
	Duration    string `json:"duration"`
	DataGB      string `json:"datagb"`
	Price       string `json:"price"`
	PackageID   string `json:"packageid"`
	PackageName string `json:"packagename"`
}

// SavePriceRequest is the create/update body for the selling-price store.
// RowID is set only on update.
type SavePriceRequest struct {
	SkuID       string `json:"skuid"`
	CountryName string `json:"countryname"`
	Duration    string `json:"duration"`
	DataGB      string `json:"datagb"`
	Price       string `json:"price"`
	PackageID   string `json:"packageid"`
	PackageName string `json:"packagename"`
	RowID       string `json:"rowid,omitempty"`
}

// SavePriceResponse carries the store's success marker.
type SavePriceResponse struct {
	Message string `json:"message"`
}
